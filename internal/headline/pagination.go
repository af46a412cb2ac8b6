// internal/headline/pagination.go
//
// Request-parameter checks around paginated queries.
//
// Callers run CheckPageAndSize before the query and CheckResultPage on the
// page the query returned.  Both are pure and only signal failure through
// an ErrInvalidParameter-kind *Error.
package headline

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	MinPageSize     = 1
	MaxPageSize     = 500
	DefaultPageSize = 10
)

// numberPrinter inserts German thousands separators ("1.234").
var numberPrinter = message.NewPrinter(language.German)

// FormatNumber renders n with German digit grouping.
func FormatNumber(n int64) string {
	return numberPrinter.Sprintf("%d", n)
}

// CheckPageAndSize validates a 1-based page number and a page size.
func CheckPageAndSize(page, size int) error {
	if page < 1 {
		return invalidParameter("Ungültige Seite %d als URL-Parameter übergeben.", page)
	}
	if size < MinPageSize || size > MaxPageSize {
		return invalidParameter(
			"Ungültiger Wert %d für Anzahl Schlagzeilen pro Seite übergeben.", size)
	}
	return nil
}

// CheckResultPage rejects a page number beyond the last page and an empty
// result page, in that order.
func CheckResultPage(page int, p Page) error {
	if page > p.TotalPages {
		return invalidParameter("Seite Nr. %s angefordert, aber letzte Seite ist %s.",
			FormatNumber(int64(page)), FormatNumber(int64(p.TotalPages)))
	}
	if len(p.Content) == 0 {
		return invalidParameter("Leere Liste mit Schlagzeilen bekommen.")
	}
	return nil
}
