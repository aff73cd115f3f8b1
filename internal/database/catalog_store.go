package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"solarcatalog/internal/catalog"
	"solarcatalog/internal/models"
)

// CatalogStore reads the normalized catalog collections.
type CatalogStore struct {
	db      *mongo.Database
	timeout time.Duration
}

var _ catalog.Store = (*CatalogStore)(nil)

func NewCatalogStore(db *mongo.Database) *CatalogStore {
	return &CatalogStore{db: db, timeout: defaultTimeout}
}

func (s *CatalogStore) Ping(ctx context.Context) error {
	return Ping(ctx, s.db)
}

func (s *CatalogStore) Categories(ctx context.Context) ([]models.CategoryRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cursor, err := s.db.Collection(categoriesCollection).Aggregate(ctx, categoryPipeline())
	if err != nil {
		return nil, fmt.Errorf("aggregate categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := make([]models.CategoryRecord, 0)
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return categories, nil
}

func (s *CatalogStore) Brands(ctx context.Context) ([]models.BrandRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := s.db.Collection(brandsCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find brands: %w", err)
	}
	defer cursor.Close(ctx)

	brands := make([]models.BrandRecord, 0)
	if err := cursor.All(ctx, &brands); err != nil {
		return nil, fmt.Errorf("decode brands: %w", err)
	}
	return brands, nil
}

func (s *CatalogStore) FindProducts(ctx context.Context, q catalog.ProductQuery) ([]models.ProductRecord, error) {
	return s.aggregateProducts(ctx, productListPipeline(q))
}

func (s *CatalogStore) ProductByID(ctx context.Context, id string) (*models.ProductRecord, error) {
	return s.findProduct(ctx, "_id", id)
}

func (s *CatalogStore) ProductBySlug(ctx context.Context, slug string) (*models.ProductRecord, error) {
	return s.findProduct(ctx, "slug", slug)
}

func (s *CatalogStore) RelatedProducts(ctx context.Context, q catalog.RelatedQuery) ([]models.ProductRecord, error) {
	return s.aggregateProducts(ctx, relatedPipeline(q))
}

func (s *CatalogStore) Stats(ctx context.Context) (models.StatsRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var stats models.StatsRecord
	var err error

	stats.TotalProducts, err = s.db.Collection(productsCollection).
		CountDocuments(ctx, bson.M{"isActive": activeFilter})
	if err != nil {
		return models.StatsRecord{}, fmt.Errorf("count products: %w", err)
	}
	stats.Categories, err = s.db.Collection(categoriesCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return models.StatsRecord{}, fmt.Errorf("count categories: %w", err)
	}
	stats.Brands, err = s.db.Collection(brandsCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return models.StatsRecord{}, fmt.Errorf("count brands: %w", err)
	}

	cursor, err := s.db.Collection(productsCollection).Aggregate(ctx, averageRatingPipeline())
	if err != nil {
		return models.StatsRecord{}, fmt.Errorf("aggregate rating: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		AverageRating float64 `bson:"averageRating"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return models.StatsRecord{}, fmt.Errorf("decode rating: %w", err)
	}
	if len(rows) > 0 {
		stats.AverageRating = rows[0].AverageRating
	}

	return stats, nil
}

func (s *CatalogStore) aggregateProducts(ctx context.Context, pipeline mongo.Pipeline) ([]models.ProductRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cursor, err := s.db.Collection(productsCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate products: %w", err)
	}
	defer cursor.Close(ctx)

	products, err := decodeProducts(ctx, cursor)
	if err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func (s *CatalogStore) findProduct(ctx context.Context, field, value string) (*models.ProductRecord, error) {
	products, err := s.aggregateProducts(ctx, productDetailPipeline(field, value))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, catalog.ErrNotFound
		}
		return nil, err
	}
	if len(products) == 0 {
		return nil, catalog.ErrNotFound
	}
	return &products[0], nil
}
