package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"solarcatalog/internal/models"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Categories(ctx context.Context) ([]models.CategoryRecord, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]models.CategoryRecord)
	return records, args.Error(1)
}

func (m *mockStore) Brands(ctx context.Context) ([]models.BrandRecord, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]models.BrandRecord)
	return records, args.Error(1)
}

func (m *mockStore) FindProducts(ctx context.Context, q ProductQuery) ([]models.ProductRecord, error) {
	args := m.Called(ctx, q)
	records, _ := args.Get(0).([]models.ProductRecord)
	return records, args.Error(1)
}

func (m *mockStore) ProductByID(ctx context.Context, id string) (*models.ProductRecord, error) {
	args := m.Called(ctx, id)
	record, _ := args.Get(0).(*models.ProductRecord)
	return record, args.Error(1)
}

func (m *mockStore) ProductBySlug(ctx context.Context, slug string) (*models.ProductRecord, error) {
	args := m.Called(ctx, slug)
	record, _ := args.Get(0).(*models.ProductRecord)
	return record, args.Error(1)
}

func (m *mockStore) RelatedProducts(ctx context.Context, q RelatedQuery) ([]models.ProductRecord, error) {
	args := m.Called(ctx, q)
	records, _ := args.Get(0).([]models.ProductRecord)
	return records, args.Error(1)
}

func (m *mockStore) Stats(ctx context.Context) (models.StatsRecord, error) {
	args := m.Called(ctx)
	record, _ := args.Get(0).(models.StatsRecord)
	return record, args.Error(1)
}
