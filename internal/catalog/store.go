package catalog

import (
	"context"
	"errors"

	"solarcatalog/internal/models"
)

// ErrNotFound is returned by a Store when a lookup matches no document.
var ErrNotFound = errors.New("catalog: not found")

// Store is the read side of the catalog database.
type Store interface {
	Categories(ctx context.Context) ([]models.CategoryRecord, error)
	Brands(ctx context.Context) ([]models.BrandRecord, error)
	FindProducts(ctx context.Context, q ProductQuery) ([]models.ProductRecord, error)
	ProductByID(ctx context.Context, id string) (*models.ProductRecord, error)
	ProductBySlug(ctx context.Context, slug string) (*models.ProductRecord, error)
	RelatedProducts(ctx context.Context, q RelatedQuery) ([]models.ProductRecord, error)
	Stats(ctx context.Context) (models.StatsRecord, error)
}

// ProductQuery selects products. Zero-valued fields add no condition; Limit 0
// means no limit.
type ProductQuery struct {
	Category string
	Featured bool
	Popular  bool
	InStock  bool
	Search   string
	Limit    int64
}

// RelatedQuery selects products that share the category or the brand of
// ProductID, excluding ProductID itself.
type RelatedQuery struct {
	ProductID  string
	CategoryID string
	BrandID    string
	Limit      int64
}
