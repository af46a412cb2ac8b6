// internal/web/params.go
//
// Request-parameter coercion and error-to-status mapping shared by the
// components.
//
// Context
// -------
// A malformed integer parameter (`?seite=abc`) is its own condition,
// reported with the parameter name and raw value.  Everything else comes
// from the headline core and is mapped by kind:
//
//   - ParamError, ErrInvalidParameter → 400
//   - ErrNotFound                     → 404
//   - anything else                   → 500
package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yanizio/badnews/internal/headline"
)

// ParamError reports a URL parameter that could not be converted.
type ParamError struct {
	Name  string
	Value string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf(`Ungültiger Wert für URL-Parameter "%s" übergeben: "%s"`, e.Name, e.Value)
}

// IntParam reads query parameter name, returning def when it is absent or
// empty.
func IntParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ParamError{Name: name, Value: raw}
	}
	return n, nil
}

// PathInt64 reads chi path parameter name.
func PathInt64(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &ParamError{Name: name, Value: raw}
	}
	return n, nil
}

// Status maps err to an HTTP status code.
func Status(err error) int {
	var pe *ParamError
	switch {
	case errors.As(err, &pe), errors.Is(err, headline.ErrInvalidParameter):
		return http.StatusBadRequest
	case errors.Is(err, headline.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// Message returns the text shown to the user.  Only messages of known
// kinds are passed through; other errors are logged, not displayed.
func Message(err error) string {
	var pe *ParamError
	var he *headline.Error
	switch {
	case errors.As(err, &pe):
		return pe.Error()
	case errors.As(err, &he):
		return he.Msg
	}
	return "Interner Fehler bei der Verarbeitung der Anfrage."
}
