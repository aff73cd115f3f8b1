package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"solarcatalog/internal/catalog"
	"solarcatalog/internal/models"
)

const (
	panelID     = "3f6c2b7e-1a54-4c1e-9a0b-6d2f8e4c7a11"
	inverterID  = "8d1e5a90-2b3c-4f7d-8e6a-1c9b0f2d3e22"
	hybridID    = "c2a7f4e1-6b8d-4a3c-b5e9-0d1f2a3b4c33"
	missingUUID = "00000000-0000-4000-8000-000000000000"
)

func init() {
	gin.SetMode(gin.TestMode)
	log.SetOutput(io.Discard)
}

// fakeStore is an in-memory catalog.Store.
type fakeStore struct {
	mu            sync.Mutex
	products      []models.ProductRecord
	categories    []models.CategoryRecord
	brands        []models.BrandRecord
	err           error
	pingErr       error
	categoryCalls int
}

func (s *fakeStore) Ping(context.Context) error { return s.pingErr }

func (s *fakeStore) Categories(context.Context) ([]models.CategoryRecord, error) {
	s.mu.Lock()
	s.categoryCalls++
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.categories, nil
}

func (s *fakeStore) Brands(context.Context) ([]models.BrandRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.brands, nil
}

func (s *fakeStore) FindProducts(_ context.Context, q catalog.ProductQuery) ([]models.ProductRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.ProductRecord
	for _, p := range s.products {
		switch {
		case q.Featured && !p.Featured,
			q.Popular && !p.Popular,
			q.InStock && !p.InStock,
			q.Category != "" && (p.Category == nil || p.Category.Slug != q.Category),
			q.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q.Search)):
			continue
		}
		out = append(out, p)
	}
	if q.Limit > 0 && int64(len(out)) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (s *fakeStore) ProductByID(_ context.Context, id string) (*models.ProductRecord, error) {
	return s.find(func(p models.ProductRecord) bool { return p.ID == id })
}

func (s *fakeStore) ProductBySlug(_ context.Context, slug string) (*models.ProductRecord, error) {
	return s.find(func(p models.ProductRecord) bool { return p.Slug == slug })
}

func (s *fakeStore) find(match func(models.ProductRecord) bool) (*models.ProductRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	i := slices.IndexFunc(s.products, match)
	if i < 0 {
		return nil, catalog.ErrNotFound
	}
	p := s.products[i]
	return &p, nil
}

func (s *fakeStore) RelatedProducts(_ context.Context, q catalog.RelatedQuery) ([]models.ProductRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.ProductRecord
	for _, p := range s.products {
		if p.ID == q.ProductID {
			continue
		}
		if p.CategoryID == q.CategoryID || p.BrandID == q.BrandID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakeStore) Stats(context.Context) (models.StatsRecord, error) {
	if s.err != nil {
		return models.StatsRecord{}, s.err
	}
	return models.StatsRecord{
		TotalProducts: int64(len(s.products)),
		Categories:    int64(len(s.categories)),
		Brands:        int64(len(s.brands)),
		AverageRating: 4.6,
	}, nil
}

var errStoreDown = errors.New("server selection timeout")

func seededStore() *fakeStore {
	panels := &models.CategoryRecord{ID: "cat-panels", Slug: "solar-panels", Name: "Solar Panels"}
	inverters := &models.CategoryRecord{ID: "cat-inverters", Slug: "inverters", Name: "Inverters"}

	return &fakeStore{
		products: []models.ProductRecord{
			{
				ID: panelID, Slug: "tiger-neo-580", Name: "Tiger Neo 580W Panel",
				CategoryID: panels.ID, Category: panels,
				BrandID: "brand-jinko", Brand: &models.BrandRecord{ID: "brand-jinko", Name: "JinkoSolar"},
				Rating: 4.8, Featured: true, Popular: true, InStock: true,
			},
			{
				ID: inverterID, Slug: "sunny-tripower-x", Name: "Sunny Tripower X",
				CategoryID: inverters.ID, Category: inverters,
				BrandID: "brand-sma", Brand: &models.BrandRecord{ID: "brand-sma", Name: "SMA"},
				Rating: 4.6, InStock: true,
			},
			{
				ID: hybridID, Slug: "sun2000-10ktl", Name: "SUN2000 10KTL Hybrid",
				CategoryID: inverters.ID, Category: inverters,
				BrandID: "brand-huawei", Brand: &models.BrandRecord{ID: "brand-huawei", Name: "Huawei"},
				Rating: 4.4, Popular: true,
			},
		},
		categories: []models.CategoryRecord{*panels, *inverters},
		brands: []models.BrandRecord{
			{ID: "brand-sma", Name: "SMA"},
			{ID: "brand-jinko", Name: "JinkoSolar"},
			{ID: "brand-huawei", Name: "Huawei"},
		},
	}
}

func newCatalogService(store catalog.Store) *catalog.Service {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return catalog.NewService(store, catalog.WithLogger(logger))
}

func publicRouter(svc *catalog.Service) *gin.Engine {
	r := gin.New()
	r.GET("/products", GetProducts(svc))
	r.GET("/products/featured", GetFeaturedProducts(svc))
	r.GET("/products/popular", GetPopularProducts(svc))
	r.GET("/products/in-stock", GetInStockProducts(svc))
	r.GET("/products/slug/:slug", GetProductBySlug(svc))
	r.GET("/products/:id", GetProduct(svc))
	r.GET("/products/:id/related", GetRelatedProducts(svc))
	r.GET("/categories", GetCategories(svc))
	r.GET("/brands", GetBrands(svc))
	r.GET("/stats", GetStats(svc))
	r.GET("/catalog/overview", GetCatalogOverview(svc))
	return r
}

func do(r http.Handler, method, target string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func productIDs(products []models.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}
