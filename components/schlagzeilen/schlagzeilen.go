// components/schlagzeilen/schlagzeilen.go
//
// Server-rendered pages.
//
// Context
// -------
//	GET /app/schlagzeilen?seite=1&anzahl=10  – paged list, ascending IDs
//	GET /app/schlagzeile/{id}                – one headline
//	GET /app/statistik                       – count per category and sum
//	GET /app/suche                           – search form (static/suche.js)
//	GET /static/*                            – embedded assets
//
// Every failure renders fehler.html with the status from web.Status.  The
// component owns the `schlagzeilen` table, so its Migrations return the
// headline DDL for the configured driver.
//
// Notes
// -----
// • Templates are embedded; a theme may override any of them on disk.
package schlagzeilen

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/yanizio/badnews/internal/component"
	"github.com/yanizio/badnews/internal/headline"
	"github.com/yanizio/badnews/internal/view"
	"github.com/yanizio/badnews/internal/web"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed static
var static embed.FS

var _ component.Component = (*Component)(nil)

// Component renders the HTML pages.
type Component struct {
	svc *headline.Service
	rnd *view.Renderer
	log *zap.SugaredLogger
}

// Name returns the component key; theme overrides live under this name.
func (c *Component) Name() string { return "schlagzeilen" }

// Migrations returns the headline table DDL.
func (c *Component) Migrations(driver string) ([]string, error) {
	return headline.Migrations(driver)
}

// Init stores the collaborators.
func (c *Component) Init(d component.Deps) error {
	c.svc, c.rnd, c.log = d.Service, d.Renderer, d.Log
	if c.log == nil {
		c.log = zap.S()
	}
	return nil
}

// Routes builds the router mounted at "/".
func (c *Component) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/app/schlagzeilen", c.liste)
	r.Get("/app/schlagzeile/{id}", c.einzeln)
	r.Get("/app/statistik", c.statistik)
	r.Get("/app/suche", c.suche)

	assets, _ := fs.Sub(static, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(assets))))
	return r
}

func init() { component.Register(&Component{}) }

/*──────────────────────────── Handlers ─────────────────────────────────────*/

func (c *Component) liste(w http.ResponseWriter, r *http.Request) {
	seite, err := web.IntParam(r, "seite", 1)
	if err != nil {
		c.fehler(w, r, err)
		return
	}
	anzahl, err := web.IntParam(r, "anzahl", headline.DefaultPageSize)
	if err != nil {
		c.fehler(w, r, err)
		return
	}

	page, err := c.svc.ListPage(r.Context(), seite, anzahl)
	if err != nil {
		c.fehler(w, r, err)
		return
	}

	c.render(w, r, http.StatusOK, "liste", map[string]any{
		"Titel":        "Schlagzeilen",
		"Schlagzeilen": page.Content,
		"Seite":        seite,
		"MaxSeite":     page.TotalPages,
		"Anzahl":       anzahl,
		"Gesamt":       page.TotalElements,
	})
}

func (c *Component) einzeln(w http.ResponseWriter, r *http.Request) {
	id, err := web.PathInt64(r, "id")
	if err != nil {
		c.fehler(w, r, err)
		return
	}
	h, err := c.svc.Get(r.Context(), id)
	if err != nil {
		c.fehler(w, r, err)
		return
	}
	c.render(w, r, http.StatusOK, "einzeln", map[string]any{
		"Titel":       "Schlagzeile",
		"Schlagzeile": h,
	})
}

func (c *Component) statistik(w http.ResponseWriter, r *http.Request) {
	stats, err := c.svc.Statistics(r.Context())
	if err != nil {
		c.fehler(w, r, err)
		return
	}
	c.render(w, r, http.StatusOK, "statistik", map[string]any{
		"Titel":  "Statistik",
		"Zeilen": stats.Rows,
		"Summe":  stats.Sum,
	})
}

func (c *Component) suche(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, http.StatusOK, "suche", map[string]any{
		"Titel":         "Suche",
		"MinSuchLaenge": headline.MinSearchLength,
	})
}

/*──────────────────────────── helpers ──────────────────────────────────────*/

func (c *Component) fehler(w http.ResponseWriter, r *http.Request, err error) {
	status := web.Status(err)
	if status >= http.StatusInternalServerError {
		c.log.Errorw("page failed", "path", r.URL.Path, "err", err)
	} else {
		c.log.Warnw("page rejected", "path", r.URL.Path, "status", status, "err", err)
	}
	c.render(w, r, status, "fehler", map[string]any{
		"Titel":         "Fehler",
		"Fehlermeldung": web.Message(err),
	})
}

func (c *Component) render(w http.ResponseWriter, r *http.Request, status int, name string, data map[string]any) {
	if err := c.rnd.Render(w, status, c.Name(), templates, name, data, view.CacheDefault); err != nil {
		c.log.Errorw("render failed", "template", name, "path", r.URL.Path, "err", err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}
