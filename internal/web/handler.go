// Package web renders the HTML storefront pages: browse, detail, new
// arrivals, home and not-found.
package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/KurtErsin/perfume/internal/catalog"
	"github.com/KurtErsin/perfume/internal/filter"
	"github.com/KurtErsin/perfume/internal/metrics"
	"github.com/KurtErsin/perfume/internal/session"
	"github.com/KurtErsin/perfume/internal/shoplink"
	pkgcatalog "github.com/KurtErsin/perfume/pkg/catalog"
	"github.com/KurtErsin/perfume/pkg/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// CookieName is the session cookie set on first visit.
const CookieName = "perfume_session"

// HomeFeaturedCount is how many perfumes the home page shows.
const HomeFeaturedCount = 4

// PopularSearches are offered as one-click searches on the home page.
var PopularSearches = []string{"Chanel", "Dior", "woody", "fresh", "sweet"}

// Filter actions accepted by POST /discover/filters.
const (
	ActionToggleGender = "toggle_gender"
	ActionSetBrand     = "set_brand"
	ActionSetSearch    = "set_search"
	ActionToggleNote   = "toggle_note"
	ActionSize100ml    = "set_size100ml"
	ActionNiche        = "set_niche"
	ActionNew          = "set_new"
	ActionClear        = "clear"
)

var pages = []string{"discover", "detail", "news", "home", "notfound"}

// Handler serves the HTML pages.
type Handler struct {
	engine   *catalog.Engine
	sessions *session.Store
	shop     shoplink.Resolver
	metrics  *metrics.Metrics
	logger   *zap.Logger
	tmpl     map[string]*template.Template
}

// NewHandler parses the embedded templates. shop and m may be nil.
func NewHandler(engine *catalog.Engine, sessions *session.Store, shop shoplink.Resolver, m *metrics.Metrics, logger *zap.Logger) (*Handler, error) {
	if shop == nil {
		shop = shoplink.None{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{
		engine:   engine,
		sessions: sessions,
		shop:     shop,
		metrics:  m,
		logger:   logger,
		tmpl:     make(map[string]*template.Template, len(pages)),
	}
	for _, name := range pages {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		h.tmpl[name] = t
	}
	return h, nil
}

// RegisterRoutes implements server.Registrar. The catch-all pattern renders
// the not-found page for every GET nothing else claims; other methods on
// known paths get 405 from the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.handleDiscover)
	mux.HandleFunc("GET /discover", h.handleDiscover)
	mux.HandleFunc("POST /discover/filters", h.handleFilters)
	mux.HandleFunc("GET /perfume/{slug}", h.handleDetail)
	mux.HandleFunc("GET /news", h.handleNews)
	mux.HandleFunc("GET /home", h.handleHome)
	mux.HandleFunc("GET /", h.handleNotFound)
}

type page struct {
	Title string
	Nav   string
}

type genderOption struct {
	Value  filter.GenderFilter
	Label  string
	Active bool
}

type discoverPage struct {
	page
	State       filter.State
	Result      catalog.Result
	Brands      []string
	NoteGroups  []models.NoteGroup
	Genders     []genderOption
	ActiveCount int
	HasActive   bool
}

type detailPage struct {
	page
	Found           bool
	Perfume         models.Perfume
	ShopURL         string
	Recommendations []models.Perfume
}

type category struct {
	Value string
	Label string
}

type newsPage struct {
	page
	Query      catalog.NewsQuery
	Category   string
	Categories []category
	News       catalog.NewsResult
}

type homePage struct {
	page
	Featured []models.Perfume
	Popular  []string
}

var newsCategories = []category{
	{Value: string(models.GenderMale), Label: "Male Fragrances"},
	{Value: string(models.GenderFemale), Label: "Female Fragrances"},
	{Value: string(models.GenderUnisex), Label: "Unisex Fragrances"},
}

// handleDiscover renders the browse view. The search query parameter is
// authoritative: an absent parameter clears the session's search.
func (h *Handler) handleDiscover(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)

	state := sess.Filters.State()
	if want := r.URL.Query().Get(filter.ParamSearch); want != state.Search {
		state = sess.Filters.SetSearch(want)
	}

	res, err := h.engine.Query(state)
	if err != nil {
		h.fail(w, "query catalog", err)
		return
	}
	h.metrics.ObserveQuery(res.Total)

	brands, err := h.engine.Brands()
	if err != nil {
		h.fail(w, "load brands", err)
		return
	}

	genders := []genderOption{
		{Value: filter.GenderMale, Label: "Male"},
		{Value: filter.GenderFemale, Label: "Female"},
		{Value: filter.GenderUnisex, Label: "Unisex"},
	}
	for i := range genders {
		genders[i].Active = state.GenderActive(genders[i].Value)
	}

	h.render(w, http.StatusOK, "discover", discoverPage{
		page:        page{Title: "Discover", Nav: "discover"},
		State:       state,
		Result:      res,
		Brands:      brands,
		NoteGroups:  models.NoteGroups(),
		Genders:     genders,
		ActiveCount: state.ActiveCount(),
		HasActive:   state.HasActiveFilters(),
	})
}

// handleFilters applies one filter action to the session and redirects back
// to the browse view with the search parameter matching the new state.
func (h *Handler) handleFilters(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	sess := h.session(w, r)

	state, err := apply(sess.Filters, r.PostForm.Get("action"), r.PostForm.Get("value"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, DiscoverURL(state.Search), http.StatusSeeOther)
}

// apply maps a form action onto the manager's mutators.
func apply(m *filter.Manager, action, value string) (filter.State, error) {
	switch action {
	case ActionToggleGender:
		g, ok := filter.ParseGenderFilter(value)
		if !ok || g == filter.GenderAny {
			return filter.State{}, fmt.Errorf("unknown gender %q", value)
		}
		return m.ToggleGender(g), nil
	case ActionSetBrand:
		return m.SetBrand(value), nil
	case ActionSetSearch:
		return m.SetSearch(strings.TrimSpace(value)), nil
	case ActionToggleNote:
		n, ok := models.ParseNote(value)
		if !ok {
			return filter.State{}, fmt.Errorf("unknown note %q", value)
		}
		return m.ToggleNote(n), nil
	case ActionSize100ml, ActionNiche, ActionNew:
		on, err := strconv.ParseBool(value)
		if err != nil {
			return filter.State{}, fmt.Errorf("invalid value %q for %s", value, action)
		}
		switch action {
		case ActionSize100ml:
			return m.SetSize100ml(on), nil
		case ActionNiche:
			return m.SetNiche(on), nil
		default:
			return m.SetNew(on), nil
		}
	case ActionClear:
		return m.Clear(), nil
	}
	return filter.State{}, fmt.Errorf("unknown action %q", action)
}

// DiscoverURL is the browse view location for search; empty search drops
// the parameter.
func DiscoverURL(search string) string {
	if search == "" {
		return "/discover"
	}
	return "/discover?" + url.Values{filter.ParamSearch: {search}}.Encode()
}

// handleDetail renders one perfume with its recommendations, or the
// not-found state for unknown slugs.
func (h *Handler) handleDetail(w http.ResponseWriter, r *http.Request) {
	p, recs, err := h.engine.RecommendBySlug(r.PathValue("slug"))
	if errors.Is(err, pkgcatalog.ErrNotFound) {
		h.render(w, http.StatusNotFound, "detail", detailPage{page: page{Title: "Perfume not found", Nav: "discover"}})
		return
	}
	if err != nil {
		h.fail(w, "load perfume", err)
		return
	}

	u, _ := h.shop.URL(p.ID)
	h.render(w, http.StatusOK, "detail", detailPage{
		page:            page{Title: p.DisplayName(), Nav: "discover"},
		Found:           true,
		Perfume:         p,
		ShopURL:         u,
		Recommendations: recs,
	})
}

// handleNews renders the new arrivals page. Unknown categories show all.
func (h *Handler) handleNews(w http.ResponseWriter, r *http.Request) {
	q := catalog.NewsQuery{Search: r.URL.Query().Get("search")}
	cat := "all"
	if g, ok := models.ParseGender(r.URL.Query().Get("category")); ok {
		q.Gender = g
		cat = string(g)
	}

	res, err := h.engine.NewArrivals(q)
	if err != nil {
		h.fail(w, "load new arrivals", err)
		return
	}
	h.render(w, http.StatusOK, "news", newsPage{
		page:       page{Title: "New Arrivals", Nav: "news"},
		Query:      q,
		Category:   cat,
		Categories: newsCategories,
		News:       res,
	})
}

// handleHome renders the landing page.
func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	featured, err := h.engine.Featured(HomeFeaturedCount)
	if err != nil {
		h.fail(w, "load featured", err)
		return
	}
	h.render(w, http.StatusOK, "home", homePage{
		page:     page{Title: "Home", Nav: "home"},
		Featured: featured,
		Popular:  PopularSearches,
	})
}

func (h *Handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("page not found", zap.String("path", r.URL.Path))
	h.render(w, http.StatusNotFound, "notfound", page{Title: "Not Found"})
}

// session returns the caller's session, starting one and setting the cookie
// when the request carries none or an expired one.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) *session.Session {
	var id string
	if c, err := r.Cookie(CookieName); err == nil {
		id = c.Value
	}
	sess, created := h.sessions.GetOrCreate(id)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    sess.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return sess
}

// render executes into a buffer first so template errors still produce a
// clean 500.
func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.tmpl[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		h.fail(w, "render "+name, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) fail(w http.ResponseWriter, op string, err error) {
	h.logger.Error("web request failed", zap.String("op", op), zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
