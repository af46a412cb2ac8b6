// components/suche/suche.go
//
// Search API component.
//
//	GET /api/v1/suche?query=<begriff>&seite=1&anzahl=10
//
// 200 → JSON array of {"id", "schlagzeile"} plus the headers
// X-Anzahl-Treffer-Gesamt, X-Anzahl-Treffer-Seite, and X-Anzahl-Seiten.
// Failures → text/plain "Fehler bei Suchanfrage: <meldung>" with the
// status from web.Status (400 for anything the caller got wrong).
package suche

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/yanizio/badnews/internal/component"
	"github.com/yanizio/badnews/internal/headline"
	"github.com/yanizio/badnews/internal/web"
)

var _ component.Component = (*Component)(nil)

// Component serves the JSON search endpoint.
type Component struct {
	svc *headline.Service
	log *zap.SugaredLogger
}

func (c *Component) Name() string                        { return "suche" }
func (c *Component) Migrations(string) ([]string, error) { return nil, nil }

// Init stores the service; it must run before Routes is served.
func (c *Component) Init(d component.Deps) error {
	c.svc = d.Service
	c.log = d.Log
	if c.log == nil {
		c.log = zap.S()
	}
	return nil
}

// Routes builds the router mounted at "/".
func (c *Component) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/api/v1/suche", c.suche)
	return r
}

func init() { component.Register(&Component{}) }

/*──────────────────────────── Handlers ─────────────────────────────────────*/

func (c *Component) suche(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("query") {
		c.fail(w, r, &web.ParamError{Name: "query", Value: ""})
		return
	}
	seite, err := web.IntParam(r, "seite", 1)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	anzahl, err := web.IntParam(r, "anzahl", headline.DefaultPageSize)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	res, err := c.svc.Search(r.Context(), q.Get("query"), seite, anzahl)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "application/json; charset=utf-8")
	h.Set("X-Anzahl-Treffer-Gesamt", strconv.FormatInt(res.TotalElements, 10))
	h.Set("X-Anzahl-Treffer-Seite", strconv.Itoa(res.PageElements))
	h.Set("X-Anzahl-Seiten", strconv.Itoa(res.TotalPages))
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(res.Hits); err != nil {
		c.log.Warnw("search response write failed", "err", err)
	}
}

func (c *Component) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := web.Status(err)
	if status >= http.StatusInternalServerError {
		c.log.Errorw("search failed", "query", r.URL.RawQuery, "err", err)
	} else {
		c.log.Warnw("search rejected", "query", r.URL.RawQuery, "err", err)
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte("Fehler bei Suchanfrage: " + web.Message(err)))
}
