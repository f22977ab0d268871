package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KurtErsin/perfume/internal/catalog"
	"github.com/KurtErsin/perfume/internal/filter"
	"github.com/KurtErsin/perfume/internal/session"
	"github.com/KurtErsin/perfume/internal/shoplink"
	"github.com/KurtErsin/perfume/internal/testutil"
	pkgcatalog "github.com/KurtErsin/perfume/pkg/catalog"
	"github.com/KurtErsin/perfume/pkg/models"
)

type fixture struct {
	mux      *http.ServeMux
	sessions *session.Store
	engine   *catalog.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	engine := catalog.NewEngine(pkgcatalog.NewCatalog())
	sessions := session.NewStore()
	shop, err := shoplink.NewStatic(map[string]string{"1": "https://shop.example.com/bleu"})
	require.NoError(t, err)

	h, err := NewHandler(engine, sessions, shop, nil, testutil.Logger())
	require.NoError(t, err)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return &fixture{mux: mux, sessions: sessions, engine: engine}
}

func (f *fixture) do(req *http.Request, cookie *http.Cookie) *httptest.ResponseRecorder {
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) get(target string, cookie *http.Cookie) *httptest.ResponseRecorder {
	return f.do(httptest.NewRequest(http.MethodGet, target, nil), cookie)
}

func (f *fixture) post(action, value string, cookie *http.Cookie) *httptest.ResponseRecorder {
	form := url.Values{"action": {action}, "value": {value}}
	req := httptest.NewRequest(http.MethodPost, "/discover/filters", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return f.do(req, cookie)
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestDiscover_StartsSession(t *testing.T) {
	f := newFixture(t)
	rec := f.get("/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	c := sessionCookie(t, rec)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, 1, f.sessions.Len())

	full, err := f.engine.Query(filter.Default())
	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), full.Summary())

	again := f.get("/discover", c)
	assert.Empty(t, again.Result().Cookies(), "existing session is reused")
	assert.Equal(t, 1, f.sessions.Len())
}

func TestDiscover_SearchParamSyncsState(t *testing.T) {
	f := newFixture(t)
	c := sessionCookie(t, f.get("/discover", nil))

	rec := f.get("/discover?search=chanel", c)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Showing 3 perfumes in 1 brand")

	sess, err := f.sessions.Get(c.Value)
	require.NoError(t, err)
	assert.Equal(t, "chanel", sess.Filters.State().Search)

	f.get("/discover", c)
	assert.Equal(t, "", sess.Filters.State().Search, "dropping the parameter clears the search")
}

func TestDiscover_EmptyState(t *testing.T) {
	f := newFixture(t)
	rec := f.get("/discover?search=zzzz-no-match", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "No perfumes found")
	assert.Contains(t, body, "Clear Filters")
}

func TestFilters_ApplyAndRedirect(t *testing.T) {
	f := newFixture(t)
	c := sessionCookie(t, f.get("/discover", nil))

	rec := f.post(ActionToggleNote, "woody", c)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/discover", rec.Header().Get("Location"))

	rec = f.post(ActionSetSearch, " tom ford ", c)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/discover?search=tom+ford", rec.Header().Get("Location"))

	sess, err := f.sessions.Get(c.Value)
	require.NoError(t, err)
	state := sess.Filters.State()
	assert.True(t, state.HasNote(models.NoteWoody))
	assert.Equal(t, "tom ford", state.Search)

	f.post(ActionClear, "", c)
	assert.True(t, sess.Filters.State().Equal(filter.Default()))
}

func TestFilters_Rejects(t *testing.T) {
	f := newFixture(t)
	c := sessionCookie(t, f.get("/discover", nil))

	for _, tc := range [][2]string{
		{"explode", ""},
		{ActionToggleNote, "gasoline"},
		{ActionToggleGender, "all"},
		{ActionNiche, "maybe"},
	} {
		rec := f.post(tc[0], tc[1], c)
		assert.Equal(t, http.StatusBadRequest, rec.Code, tc)
	}
}

func TestApply(t *testing.T) {
	m := filter.NewManager()

	s, err := apply(m, ActionToggleGender, "male")
	require.NoError(t, err)
	assert.Equal(t, filter.GenderMale, s.Gender)

	s, _ = apply(m, ActionToggleGender, "male")
	assert.Equal(t, filter.GenderAny, s.Gender, "toggling twice deselects")

	s, _ = apply(m, ActionSetBrand, "Dior")
	assert.Equal(t, "Dior", s.Brand)

	s, _ = apply(m, ActionSize100ml, "true")
	assert.True(t, s.Size100ml)
	s, _ = apply(m, ActionNiche, "true")
	assert.True(t, s.Niche)
	s, _ = apply(m, ActionNew, "1")
	assert.True(t, s.New)
	s, _ = apply(m, ActionNew, "false")
	assert.False(t, s.New)
}

func TestDiscoverURL(t *testing.T) {
	assert.Equal(t, "/discover", DiscoverURL(""))
	assert.Equal(t, "/discover?search=tom+ford", DiscoverURL("tom ford"))
	assert.Equal(t, "/discover?search=a%26b", DiscoverURL("a&b"))
}

func TestDetail(t *testing.T) {
	f := newFixture(t)

	rec := f.get("/perfume/bleu-de-chanel", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Bleu de Chanel")
	assert.Contains(t, body, "Go to Shop")
	assert.Contains(t, body, "https://shop.example.com/bleu")
	assert.Contains(t, body, "You Might Also Like")
	assert.Contains(t, body, "badge-fresh-spicy")

	rec = f.get("/perfume/creed-aventus", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Go to Shop")
}

func TestDetail_NotFound(t *testing.T) {
	f := newFixture(t)
	rec := f.get("/perfume/no-such-thing", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Perfume not found")
	assert.Contains(t, body, "Back to Discover")
}

func TestNews(t *testing.T) {
	f := newFixture(t)

	rec := f.get("/news", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Featured New Arrivals")
	assert.Contains(t, body, "Trending Notes in New Perfumes")

	rec = f.get("/news?category=male&search=zzzz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No new perfumes found")
}

func TestHome(t *testing.T) {
	f := newFixture(t)
	rec := f.get("/home", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Popular searches:")
	assert.Contains(t, body, "/discover?search=Chanel")
	assert.Contains(t, body, "/perfume/bleu-de-chanel")
}

func TestNotFound(t *testing.T) {
	f := newFixture(t)
	rec := f.get("/definitely/not/here", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}

func TestWrongMethod(t *testing.T) {
	f := newFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodPost, "/discover", nil), nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Header().Get("Allow"), http.MethodGet)

	rec = f.do(httptest.NewRequest(http.MethodPost, "/perfume/bleu-de-chanel", nil), nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
