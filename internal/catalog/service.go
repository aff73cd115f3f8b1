package catalog

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"solarcatalog/internal/models"
)

const (
	defaultProductLimit = 100
	defaultRelatedLimit = 4
)

// Service answers catalog queries for the website. Category, brand and stats
// lookups are cached; every other query goes to the store.
//
// Methods returning an error expose store failures. The remaining methods log
// failures and return an empty or fallback value so a page always renders.
type Service struct {
	store        Store
	logger       log.FieldLogger
	productLimit int64

	categories *cache[[]models.ProductCategory]
	brands     *cache[[]string]
	stats      *cache[models.ProductStats]
}

type settings struct {
	cacheTTL     time.Duration
	now          func() time.Time
	productLimit int64
	logger       log.FieldLogger
}

type Option func(*settings)

// WithCacheTTL expires cached lookups after ttl. Zero keeps them until
// ClearCache.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *settings) { s.cacheTTL = ttl }
}

// WithClock replaces time.Now for cache expiry.
func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

// WithProductLimit caps the number of rows returned by AllProducts.
func WithProductLimit(limit int64) Option {
	return func(s *settings) {
		if limit > 0 {
			s.productLimit = limit
		}
	}
}

func WithLogger(logger log.FieldLogger) Option {
	return func(s *settings) { s.logger = logger }
}

func NewService(store Store, opts ...Option) *Service {
	cfg := settings{
		now:          time.Now,
		productLimit: defaultProductLimit,
		logger:       log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Service{
		store:        store,
		logger:       cfg.logger.WithField("component", "catalog"),
		productLimit: cfg.productLimit,
		categories:   newCache[[]models.ProductCategory]("categories", cfg.cacheTTL, cfg.now),
		brands:       newCache[[]string]("brands", cfg.cacheTTL, cfg.now),
		stats:        newCache[models.ProductStats]("stats", cfg.cacheTTL, cfg.now),
	}
}

// ClearCache drops the cached categories, brands and stats.
func (s *Service) ClearCache() {
	s.categories.clear()
	s.brands.clear()
	s.stats.clear()
	s.logger.Info("catalog cache cleared")
}

/* =======================
   CATEGORIES / BRANDS / STATS
======================= */

func (s *Service) LoadCategories(ctx context.Context) ([]models.ProductCategory, error) {
	categories, err := s.categories.load(ctx, func(ctx context.Context) ([]models.ProductCategory, error) {
		records, err := s.store.Categories(ctx)
		if err != nil {
			return nil, fmt.Errorf("load categories: %w", err)
		}
		out := make([]models.ProductCategory, 0, len(records))
		for _, r := range records {
			out = append(out, ToProductCategory(r))
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return cloneCategories(categories), nil
}

// cloneCategories copies the nested slices too; the cached list is shared.
func cloneCategories(categories []models.ProductCategory) []models.ProductCategory {
	out := make([]models.ProductCategory, len(categories))
	for i, c := range categories {
		c.Features = slices.Clone(c.Features)
		c.Products = slices.Clone(c.Products)
		out[i] = c
	}
	return out
}

// ProductCategories returns the categories, or the built-in list when the
// store fails.
func (s *Service) ProductCategories(ctx context.Context) []models.ProductCategory {
	categories, err := s.LoadCategories(ctx)
	if err != nil {
		s.logger.WithError(err).Error("categories unavailable, serving fallback")
		return fallbackCategories()
	}
	return categories
}

func (s *Service) LoadBrands(ctx context.Context) ([]string, error) {
	brands, err := s.brands.load(ctx, func(ctx context.Context) ([]string, error) {
		records, err := s.store.Brands(ctx)
		if err != nil {
			return nil, fmt.Errorf("load brands: %w", err)
		}
		names := make([]string, 0, len(records))
		for _, r := range records {
			if name := strings.TrimSpace(r.Name); name != "" {
				names = append(names, name)
			}
		}
		slices.Sort(names)
		return slices.Compact(names), nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(brands), nil
}

// Brands returns the sorted brand names, or the built-in list when the store
// fails.
func (s *Service) Brands(ctx context.Context) []string {
	brands, err := s.LoadBrands(ctx)
	if err != nil {
		s.logger.WithError(err).Error("brands unavailable, serving fallback")
		return fallbackBrands()
	}
	return brands
}

func (s *Service) LoadStats(ctx context.Context) (models.ProductStats, error) {
	return s.stats.load(ctx, func(ctx context.Context) (models.ProductStats, error) {
		record, err := s.store.Stats(ctx)
		if err != nil {
			return models.ProductStats{}, fmt.Errorf("load stats: %w", err)
		}
		return models.ProductStats{
			TotalProducts: int(record.TotalProducts),
			Categories:    int(record.Categories),
			Brands:        int(record.Brands),
			AverageRating: math.Round(record.AverageRating*10) / 10,
		}, nil
	})
}

func (s *Service) ProductStats(ctx context.Context) models.ProductStats {
	stats, err := s.LoadStats(ctx)
	if err != nil {
		s.logger.WithError(err).Error("stats unavailable, serving fallback")
		return fallbackStats()
	}
	return stats
}

// Overview fetches categories, brands and stats concurrently.
func (s *Service) Overview(ctx context.Context) models.CatalogOverview {
	var overview models.CatalogOverview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		overview.Categories = s.ProductCategories(gctx)
		return nil
	})
	g.Go(func() error {
		overview.Brands = s.Brands(gctx)
		return nil
	})
	g.Go(func() error {
		overview.Stats = s.ProductStats(gctx)
		return nil
	})
	_ = g.Wait()

	return overview
}

/* =======================
   PRODUCT LISTS
======================= */

// FindProducts runs q against the store and converts the rows.
func (s *Service) FindProducts(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	records, err := s.store.FindProducts(ctx, q)
	if err != nil {
		return nil, err
	}
	return toLegacyProducts(records), nil
}

func (s *Service) listProducts(ctx context.Context, op string, q ProductQuery) []models.Product {
	products, err := s.FindProducts(ctx, q)
	if err != nil {
		s.logger.WithError(err).WithField("op", op).Error("product query failed")
		return []models.Product{}
	}
	return products
}

// ProductsByCategory lists the products of one category. An empty category or
// "all" lists every product.
func (s *Service) ProductsByCategory(ctx context.Context, category string) []models.Product {
	category = strings.TrimSpace(category)
	if category == "" || category == models.FilterAll {
		return s.AllProducts(ctx)
	}
	return s.listProducts(ctx, "products_by_category", ProductQuery{Category: category})
}

func (s *Service) FeaturedProducts(ctx context.Context) []models.Product {
	return s.listProducts(ctx, "featured_products", ProductQuery{Featured: true})
}

func (s *Service) PopularProducts(ctx context.Context) []models.Product {
	return s.listProducts(ctx, "popular_products", ProductQuery{Popular: true})
}

func (s *Service) InStockProducts(ctx context.Context) []models.Product {
	return s.listProducts(ctx, "in_stock_products", ProductQuery{InStock: true})
}

// SearchProducts matches query against product text fields. A blank query
// matches nothing.
func (s *Service) SearchProducts(ctx context.Context, query string) []models.Product {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Product{}
	}
	return s.listProducts(ctx, "search_products", ProductQuery{Search: query})
}

func (s *Service) AllProducts(ctx context.Context) []models.Product {
	return s.listProducts(ctx, "all_products", ProductQuery{Limit: s.productLimit})
}

/* =======================
   SINGLE PRODUCT
======================= */

// LookupProductByID accepts UUIDs and the 24 hex digit ids of documents keyed
// by ObjectID. Anything else is ErrNotFound without querying the store.
func (s *Service) LookupProductByID(ctx context.Context, id string) (models.Product, error) {
	id = strings.TrimSpace(id)
	if !isProductID(id) {
		return models.Product{}, fmt.Errorf("product id %q: %w", id, ErrNotFound)
	}
	record, err := s.store.ProductByID(ctx, id)
	if err != nil {
		return models.Product{}, err
	}
	if record == nil {
		return models.Product{}, ErrNotFound
	}
	return ToLegacyProduct(*record), nil
}

func (s *Service) LookupProductBySlug(ctx context.Context, slug string) (models.Product, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return models.Product{}, fmt.Errorf("empty slug: %w", ErrNotFound)
	}
	record, err := s.store.ProductBySlug(ctx, slug)
	if err != nil {
		return models.Product{}, err
	}
	if record == nil {
		return models.Product{}, ErrNotFound
	}
	return ToLegacyProduct(*record), nil
}

// ProductByID reports false when the product is missing or the lookup fails.
func (s *Service) ProductByID(ctx context.Context, id string) (models.Product, bool) {
	product, err := s.LookupProductByID(ctx, id)
	return s.collapseLookup("product_by_id", id, product, err)
}

func (s *Service) ProductBySlug(ctx context.Context, slug string) (models.Product, bool) {
	product, err := s.LookupProductBySlug(ctx, slug)
	return s.collapseLookup("product_by_slug", slug, product, err)
}

func (s *Service) collapseLookup(op, key string, product models.Product, err error) (models.Product, bool) {
	if err == nil {
		return product, true
	}
	entry := s.logger.WithFields(log.Fields{"op": op, "key": key})
	if errors.Is(err, ErrNotFound) {
		entry.Debug("product not found")
	} else {
		entry.WithError(err).Error("product lookup failed")
	}
	return models.Product{}, false
}

// LoadRelatedProducts returns up to limit products sharing the category or
// brand of product. The product itself is never part of the result.
func (s *Service) LoadRelatedProducts(ctx context.Context, product models.Product, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = defaultRelatedLimit
	}
	if product.CategoryID == "" && product.BrandID == "" {
		return []models.Product{}, nil
	}

	records, err := s.store.RelatedProducts(ctx, RelatedQuery{
		ProductID:  product.ID,
		CategoryID: product.CategoryID,
		BrandID:    product.BrandID,
		Limit:      int64(limit),
	})
	if err != nil {
		return nil, err
	}

	related := make([]models.Product, 0, min(len(records), limit))
	for _, r := range records {
		if r.ID == product.ID {
			continue
		}
		related = append(related, ToLegacyProduct(r))
		if len(related) == limit {
			break
		}
	}
	return related, nil
}

func (s *Service) RelatedProducts(ctx context.Context, product models.Product, limit int) []models.Product {
	if strings.TrimSpace(product.ID) == "" {
		s.logger.Warn("related products requested without a product id")
		return []models.Product{}
	}
	related, err := s.LoadRelatedProducts(ctx, product, limit)
	if err != nil {
		s.logger.WithError(err).WithField("product", product.ID).Error("related products query failed")
		return []models.Product{}
	}
	return related
}

func isProductID(id string) bool {
	if _, err := uuid.Parse(id); err == nil {
		return true
	}
	if len(id) != 24 {
		return false
	}
	_, err := hex.DecodeString(id)
	return err == nil
}

func toLegacyProducts(records []models.ProductRecord) []models.Product {
	products := make([]models.Product, 0, len(records))
	for _, r := range records {
		products = append(products, ToLegacyProduct(r))
	}
	return products
}
