// internal/view/render.go
//
// Central view engine: template lookup, override chain, func-map injection,
// and an LRU of parsed *template.Template* sets.
//
// Public helpers
// --------------
//   - Render         – buffer, then write HTML with a status code.
//   - RenderToString – return template.HTML.
//
// Lookup precedence (first hit wins):
//  1. <theme dir>/<theme>/components/<comp>/templates/<name>.html  (disk)
//  2. templates/<name>.html inside the component's embedded FS
//
// All templates in the same directory are parsed as one set, so partials
// ({{ template "kopf" . }}) work out of the box.  execName() runs
// "<name>.html" when the set has it, else the root template "<name>".
//
// Notes
// -----
// • Rendering goes to a buffer first; a failing template never leaves a
//   half-written 200 behind.

package view

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

//
// cache definitions
//

// CachePolicy hints how the caller wants this template cached.
type CachePolicy int

const (
	CacheDefault CachePolicy = iota // parse once, keep in the LRU
	CacheSkip                       // re-parse on every call (template development)
)

// DefaultCacheSize bounds the number of parsed sets kept.
const DefaultCacheSize = 256

// ErrTemplateNotFound is returned when no layer has the template.
var ErrTemplateNotFound = errors.New("view: template not found")

// Renderer resolves, parses, caches, and executes template sets.
type Renderer struct {
	themeFS fs.FS // nil when no theme directory exists
	theme   string
	funcs   template.FuncMap
	sets    *lru.Cache[string, *template.Template]
}

// New returns a Renderer.  themeDir may be empty or missing, in which case
// only embedded component templates are used.
func New(themeDir, theme string, size int) (*Renderer, error) {
	if size < 1 {
		size = DefaultCacheSize
	}
	sets, err := lru.New[string, *template.Template](size)
	if err != nil {
		return nil, err
	}

	r := &Renderer{theme: theme, funcs: FuncMap(), sets: sets}
	if themeDir != "" {
		if fi, err := os.Stat(themeDir); err == nil && fi.IsDir() {
			r.themeFS = os.DirFS(themeDir)
		}
	}
	zap.S().Debugw("view renderer ready", "theme", theme, "theme_dir", themeDir,
		"overrides", r.themeFS != nil)
	return r, nil
}

//
// public helpers
//

// Render executes template name of component comp and writes it with the
// given status.  defaults is the component's embedded FS holding
// templates/*.html.
func (r *Renderer) Render(w http.ResponseWriter, status int, comp string, defaults fs.FS,
	name string, data any, policy CachePolicy) error {

	var buf bytes.Buffer
	if err := r.execute(&buf, comp, defaults, name, data, policy); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// RenderToString executes and returns HTML.
func (r *Renderer) RenderToString(comp string, defaults fs.FS, name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.execute(&buf, comp, defaults, name, data, CacheDefault); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func (r *Renderer) execute(buf *bytes.Buffer, comp string, defaults fs.FS,
	name string, data any, policy CachePolicy) error {

	t, err := r.load(comp, defaults, name, policy)
	if err != nil {
		return err
	}
	return t.ExecuteTemplate(buf, execName(t, name), data)
}

//
// internal: load
//

// load finds and, if necessary, parses the template set for comp and name.
func (r *Renderer) load(comp string, defaults fs.FS, name string, policy CachePolicy) (*template.Template, error) {
	key := strings.Join([]string{r.theme, comp, name}, "::")

	if policy != CacheSkip {
		if t, ok := r.sets.Get(key); ok {
			return t, nil
		}
	}

	fsys, dir, ok := r.locate(comp, defaults, name)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrTemplateNotFound, comp, name)
	}

	t, err := template.New(name).Funcs(r.funcs).ParseFS(fsys, path.Join(dir, "*.html"))
	if err != nil {
		return nil, err
	}

	if policy != CacheSkip {
		r.sets.Add(key, t)
	}
	return t, nil
}

// locate returns the first layer holding <name>.html.
func (r *Renderer) locate(comp string, defaults fs.FS, name string) (fs.FS, string, bool) {
	if r.themeFS != nil {
		dir := path.Join(r.theme, "components", comp, "templates")
		if _, err := fs.Stat(r.themeFS, path.Join(dir, name+".html")); err == nil {
			return r.themeFS, dir, true
		}
	}
	if defaults != nil {
		if _, err := fs.Stat(defaults, path.Join("templates", name+".html")); err == nil {
			return defaults, "templates", true
		}
	}
	return nil, "", false
}

// execName picks the template name to execute.
//
// Priority:
//  1. If the set has "<name>.html" (file-based template), run that.
//  2. Otherwise, fall back to "<name>" (root template defined via define).
func execName(t *template.Template, name string) string {
	if t.Lookup(name+".html") != nil {
		return name + ".html"
	}
	return name
}
