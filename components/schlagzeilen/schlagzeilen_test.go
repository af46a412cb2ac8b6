package schlagzeilen

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yanizio/badnews/internal/component"
	"github.com/yanizio/badnews/internal/database"
	"github.com/yanizio/badnews/internal/headline"
	"github.com/yanizio/badnews/internal/view"
)

func newRouter(t *testing.T, hs ...headline.Headline) http.Handler {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(database.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	c := &Component{}
	stmts, err := c.Migrations(database.DriverSQLite)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(ctx, db, stmts))

	store := headline.NewSQLStore(db)
	require.NoError(t, store.SaveAll(ctx, hs))

	rnd, err := view.New("", "default", 0)
	require.NoError(t, err)
	require.NoError(t, c.Init(component.Deps{
		Service:  headline.NewService(store, nil, nil, nil),
		Renderer: rnd,
	}))

	r := chi.NewRouter()
	require.NoError(t, component.MountAll(r, []component.Component{c}))
	return r
}

func get(h http.Handler, url string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func many(n int) []headline.Headline {
	out := make([]headline.Headline, n)
	for i := range out {
		out[i] = headline.Headline{Text: fmt.Sprintf("Meldung %d", i+1), Domestic: i%3 == 0}
	}
	return out
}

func TestListe(t *testing.T) {
	r := newRouter(t, many(25)...)

	rec := get(r, "/app/schlagzeilen")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := rec.Body.String()
	assert.Contains(t, body, "Seite 1 von 3 (25 Schlagzeilen insgesamt)")
	assert.Contains(t, body, `<a href="/app/schlagzeile/1">Meldung 1</a>`)
	assert.Contains(t, body, "Meldung 10")
	assert.NotContains(t, body, "Meldung 11<")
	assert.Contains(t, body, "Nächste Seite")
	assert.NotContains(t, body, "Vorherige Seite")

	rec = get(r, "/app/schlagzeilen?seite=3&anzahl=10")
	require.Equal(t, http.StatusOK, rec.Code)
	body = rec.Body.String()
	assert.Contains(t, body, "Meldung 25")
	assert.Equal(t, 5, strings.Count(body, "<li>"))
	assert.Contains(t, body, "Vorherige Seite")
	assert.NotContains(t, body, "Nächste Seite")
}

func TestListe_Errors(t *testing.T) {
	r := newRouter(t, many(3)...)

	cases := []struct {
		url    string
		status int
		msg    string
	}{
		{"/app/schlagzeilen?seite=2", 400, "Seite Nr. 2 angefordert, aber letzte Seite ist 1."},
		{"/app/schlagzeilen?seite=0", 400, "Ungültige Seite 0 als URL-Parameter übergeben."},
		{"/app/schlagzeilen?anzahl=501", 400, "Ungültiger Wert 501 für Anzahl Schlagzeilen pro Seite übergeben."},
		{"/app/schlagzeilen?seite=eins", 400, "Ungültiger Wert für URL-Parameter &#34;seite&#34; übergeben: &#34;eins&#34;"},
	}
	for _, c := range cases {
		rec := get(r, c.url)
		assert.Equal(t, c.status, rec.Code, c.url)
		assert.Contains(t, rec.Body.String(), `<p class="fehler">`+c.msg+`</p>`, c.url)
	}
}

func TestListe_EmptyTable(t *testing.T) {
	r := newRouter(t)

	rec := get(r, "/app/schlagzeilen")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Seite Nr. 1 angefordert, aber letzte Seite ist 0.")
}

func TestEinzeln(t *testing.T) {
	r := newRouter(t,
		headline.Headline{Text: "Hagel in Sachsen", Domestic: true},
		headline.Headline{Text: "Erdbeben in Japan"},
	)

	rec := get(r, "/app/schlagzeile/1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hagel in Sachsen")
	assert.Contains(t, rec.Body.String(), "<dd>Inland</dd>")

	rec = get(r, "/app/schlagzeile/2")
	assert.Contains(t, rec.Body.String(), "<dd>Ausland</dd>")

	rec = get(r, "/app/schlagzeile/999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Keine Schlagzeile mit ID=999 gefunden.")

	rec = get(r, "/app/schlagzeile/abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "URL-Parameter &#34;id&#34;")
}

func TestStatistik(t *testing.T) {
	r := newRouter(t, many(1500)...)

	rec := get(r, "/app/statistik")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<td>Inland</td><td>500</td>")
	assert.Contains(t, body, "<td>Ausland</td><td>1.000</td>")
	assert.Contains(t, body, "<th>Summe</th><th>1.500</th>")
}

func TestSucheAndStatic(t *testing.T) {
	r := newRouter(t)

	rec := get(r, "/app/suche")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<script src="/static/suche.js"></script>`)

	rec = get(r, "/static/suche.js")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/v1/suche?query=")
}
