// internal/component/registry.go
//
// Component registry (cycle-free).
//
// Each concrete component lives under components/<name> and calls
// component.Register() in an init() function.  cmd/web blank-imports the
// components, runs every component's Migrations() for the configured
// driver, calls Init(deps) once, and mounts Routes() at "/".

package component

import (
	"fmt"
	"net/http"
	"sort"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Component contract.
//
// Migrations may return nil if the component owns no schema.  Routes
// should mount both page and API endpoints, e.g.:
//
//	r := chi.NewRouter()
//	r.Get("/app/statistik", c.statistik)
//	return r
type Component interface {
	Name() string
	Routes() chi.Router
	Migrations(driver string) ([]string, error)
	Init(Deps) error
}

var (
	mu       sync.RWMutex
	registry = map[string]Component{}
)

// Register is invoked from component init() functions.  A second
// registration under the same name replaces the first.
func Register(c Component) {
	mu.Lock()
	registry[c.Name()] = c
	mu.Unlock()
}

// All returns every registered component sorted by name, so migrations and
// mounts run in a stable order.
func All() []Component {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Component, 0, len(registry))
	for _, c := range registry {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// MountAll copies every route of every component onto r.  chi refuses to
// Mount two sub-routers at "/", so routes are re-registered one by one
// together with their inline middlewares.
func MountAll(r chi.Router, comps []Component) error {
	for _, c := range comps {
		err := chi.Walk(c.Routes(), func(method, route string, h http.Handler,
			mws ...func(http.Handler) http.Handler) error {
			r.With(mws...).Method(method, route, h)
			return nil
		})
		if err != nil {
			return fmt.Errorf("mount component %s: %w", c.Name(), err)
		}
	}
	return nil
}
