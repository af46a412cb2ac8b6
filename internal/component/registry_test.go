package component

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

type fake struct{ name string }

func (f fake) Name() string { return f.name }
func (f fake) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/"+f.name+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(f.name + ":" + chi.URLParam(r, "id")))
	})
	return r
}
func (f fake) Migrations(string) ([]string, error) { return nil, nil }
func (f fake) Init(Deps) error                     { return nil }

func TestRegistry_SortedAndReplacing(t *testing.T) {
	mu.Lock()
	saved := registry
	registry = map[string]Component{}
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		registry = saved
		mu.Unlock()
	})

	Register(fake{"zeta"})
	Register(fake{"alpha"})
	Register(fake{"alpha"})

	all := All()
	if len(all) != 2 {
		t.Fatalf("len(All()) = %d, want 2", len(all))
	}
	if all[0].Name() != "alpha" || all[1].Name() != "zeta" {
		t.Fatalf("order = %s, %s", all[0].Name(), all[1].Name())
	}
}

func TestMountAll_TwoComponentsShareRoot(t *testing.T) {
	r := chi.NewRouter()
	if err := MountAll(r, []Component{fake{"alpha"}, fake{"beta"}}); err != nil {
		t.Fatalf("MountAll: %v", err)
	}

	for path, want := range map[string]string{"/alpha/1": "alpha:1", "/beta/2": "beta:2"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Body.String() != want {
			t.Errorf("GET %s = %q, want %q", path, rec.Body.String(), want)
		}
	}
}
