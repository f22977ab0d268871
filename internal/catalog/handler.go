package catalog

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/KurtErsin/perfume/internal/filter"
	"github.com/KurtErsin/perfume/internal/metrics"
	"github.com/KurtErsin/perfume/internal/server"
	"github.com/KurtErsin/perfume/internal/shoplink"
	pkgcatalog "github.com/KurtErsin/perfume/pkg/catalog"
	"github.com/KurtErsin/perfume/pkg/models"
)

// QueryResponse is the response for GET /api/v1/catalog/perfumes.
type QueryResponse struct {
	Filters filter.State `json:"filters"`
	Summary string       `json:"summary"`
	Brands  int          `json:"brand_count"`
	Result
}

// PerfumeResponse is one perfume with its derived presentation fields.
type PerfumeResponse struct {
	models.Perfume
	DisplayName string `json:"display_name"`
	SizeCode    string `json:"size_code,omitempty"`
	ShopURL     string `json:"shop_url,omitempty"`
}

// RecommendationResponse is the response for
// GET /api/v1/catalog/perfumes/{slug}/recommendations.
type RecommendationResponse struct {
	Reference string           `json:"reference"`
	Count     int              `json:"count"`
	Entries   []models.Perfume `json:"entries"`
}

// NewsResponse is the response for GET /api/v1/catalog/news.
type NewsResponse struct {
	Summary string `json:"summary"`
	NewsResult
}

// Handler serves the catalog JSON API.
type Handler struct {
	engine  *Engine
	shop    shoplink.Resolver
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewHandler creates a new catalog API handler. shop and m may be nil.
func NewHandler(engine *Engine, shop shoplink.Resolver, m *metrics.Metrics, logger *zap.Logger) *Handler {
	if shop == nil {
		shop = shoplink.None{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{engine: engine, shop: shop, metrics: m, logger: logger}
}

// RegisterRoutes implements server.Registrar.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/catalog/perfumes", h.handleQuery)
	mux.HandleFunc("GET /api/v1/catalog/perfumes/{slug}", h.handlePerfume)
	mux.HandleFunc("GET /api/v1/catalog/perfumes/{slug}/recommendations", h.handleRecommendations)
	mux.HandleFunc("GET /api/v1/catalog/brands", h.handleBrands)
	mux.HandleFunc("GET /api/v1/catalog/notes", h.handleNotes)
	mux.HandleFunc("GET /api/v1/catalog/news", h.handleNews)
}

// handleQuery filters, sorts and groups the catalog from query parameters.
func (h *Handler) handleQuery(w http.ResponseWriter, r *http.Request) {
	state, err := filter.FromValues(r.URL.Query())
	if err != nil {
		server.BadRequest(w, err.Error(), r.URL.Path)
		return
	}

	res, err := h.engine.Query(state)
	if err != nil {
		h.logger.Error("failed to query catalog", zap.Error(err))
		server.InternalError(w, "failed to load catalog", r.URL.Path)
		return
	}
	h.metrics.ObserveQuery(res.Total)

	server.WriteJSON(w, http.StatusOK, QueryResponse{
		Filters: state,
		Summary: res.Summary(),
		Brands:  res.BrandCount(),
		Result:  res,
	})
}

// handlePerfume returns a single perfume by slug.
func (h *Handler) handlePerfume(w http.ResponseWriter, r *http.Request) {
	p, err := h.engine.Perfume(r.PathValue("slug"))
	if err != nil {
		h.lookupError(w, r, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, h.perfumeResponse(p))
}

// handleRecommendations returns the perfumes most similar to the one named by slug.
func (h *Handler) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	ref, recs, err := h.engine.RecommendBySlug(r.PathValue("slug"))
	if err != nil {
		h.lookupError(w, r, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, RecommendationResponse{
		Reference: ref.Slug,
		Count:     len(recs),
		Entries:   recs,
	})
}

// handleBrands returns every brand in collation order.
func (h *Handler) handleBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.engine.Brands()
	if err != nil {
		h.logger.Error("failed to load brands", zap.Error(err))
		server.InternalError(w, "failed to load catalog", r.URL.Path)
		return
	}
	server.WriteJSON(w, http.StatusOK, brands)
}

// handleNotes returns the closed note vocabulary in display order.
func (h *Handler) handleNotes(w http.ResponseWriter, r *http.Request) {
	server.WriteJSON(w, http.StatusOK, models.AllNotes())
}

// handleNews returns the new arrivals, narrowed by ?search= and ?gender=.
// The gender match is exact; "", "all" and "none" keep every gender.
func (h *Handler) handleNews(w http.ResponseWriter, r *http.Request) {
	q := NewsQuery{Search: r.URL.Query().Get("search")}
	raw := r.URL.Query().Get("gender")
	g, ok := filter.ParseGenderFilter(raw)
	if !ok {
		server.BadRequest(w, "unknown gender \""+raw+"\"", r.URL.Path)
		return
	}
	q.Gender = models.Gender(g)

	res, err := h.engine.NewArrivals(q)
	if err != nil {
		h.logger.Error("failed to load new arrivals", zap.Error(err))
		server.InternalError(w, "failed to load catalog", r.URL.Path)
		return
	}
	server.WriteJSON(w, http.StatusOK, NewsResponse{Summary: res.Summary(), NewsResult: res})
}

func (h *Handler) perfumeResponse(p models.Perfume) PerfumeResponse {
	u, _ := h.shop.URL(p.ID)
	return PerfumeResponse{
		Perfume:     p,
		DisplayName: p.DisplayName(),
		SizeCode:    p.SizeCode(),
		ShopURL:     u,
	}
}

func (h *Handler) lookupError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, pkgcatalog.ErrNotFound) {
		server.NotFound(w, "perfume "+r.PathValue("slug")+" not found", r.URL.Path)
		return
	}
	h.logger.Error("failed to load perfume", zap.String("slug", r.PathValue("slug")), zap.Error(err))
	server.InternalError(w, "failed to load catalog", r.URL.Path)
}
