package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solarcatalog/internal/models"
)

func TestToLegacyProductDefaultsMissingFields(t *testing.T) {
	p := ToLegacyProduct(models.ProductRecord{ID: "p1", Name: "Bare"})

	assert.Equal(t, "p1", p.ID)
	assert.NotNil(t, p.Specifications)
	assert.NotNil(t, p.Features)
	assert.NotNil(t, p.Images)
	assert.NotNil(t, p.Certifications)
	assert.NotNil(t, p.Applications)
	assert.NotNil(t, p.TechnicalDocs.Certificates)
	assert.NotNil(t, p.Media.Videos)
	assert.NotNil(t, p.Media.PDFs)
	assert.Zero(t, p.Rating)
	assert.Zero(t, p.ReviewCount)
	assert.Empty(t, p.Category)
	assert.Nil(t, p.Reviews)
}

func TestToLegacyProductFlattensJoins(t *testing.T) {
	created := time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)
	record := models.ProductRecord{
		ID:             "p1",
		Name:           "Hybrid 5kW",
		CategoryID:     "cat-1",
		Category:       &models.CategoryRecord{ID: "cat-1", Slug: "inverters", Name: "Inverters"},
		Brand:          &models.BrandRecord{ID: "brand-1", Name: "Huawei"},
		ImageURL:       "https://cdn.example.com/legacy.jpg",
		CompatibleWith: models.StringList{"LFP 10kWh"},
		Images: []models.ImageRecord{
			{URL: "https://cdn.example.com/side.jpg", SortOrder: 2},
			{URL: "https://cdn.example.com/front.jpg", SortOrder: 1, IsPrimary: true},
			{URL: "https://cdn.example.com/back.jpg", SortOrder: 0},
		},
		Specifications: []models.SpecificationRecord{
			{Name: "Max efficiency", Value: "98.4%", SortOrder: 2},
			{Name: "Rated power", Value: "5 kW", SortOrder: 1},
			{Name: " ", Value: "ignored"},
		},
		Features: []models.FeatureRecord{
			{Feature: "Battery ready", SortOrder: 2},
			{Feature: "Dual MPPT", SortOrder: 1},
		},
		Certifications: []models.NamedRecord{{Name: "IEC 62109"}, {Name: ""}},
		Applications:   []models.NamedRecord{{Name: "Residential"}},
		Documents: []models.DocumentRecord{
			{Type: "Datasheet", URL: "https://cdn.example.com/ds.pdf"},
			{Type: "installation", URL: "https://cdn.example.com/install.pdf"},
			{Type: "certificate", URL: "https://cdn.example.com/iec.pdf"},
		},
		Videos: []models.VideoRecord{{URL: "https://video.example.com/1"}},
		Reviews: []models.ReviewRecord{
			{ID: "r1", CustomerName: "Ana", Content: "Great", Rating: 5, CreatedAt: created},
		},
	}

	p := ToLegacyProduct(record)

	assert.Equal(t, models.CategoryInverters, p.Category)
	assert.Equal(t, "cat-1", p.CategoryID)
	assert.Equal(t, "Huawei", p.Brand)
	assert.Equal(t, "brand-1", p.BrandID)
	assert.Equal(t, "https://cdn.example.com/front.jpg", p.Image)
	assert.Equal(t, []string{"https://cdn.example.com/back.jpg", "https://cdn.example.com/side.jpg"}, p.Images)
	assert.Equal(t, map[string]string{"Rated power": "5 kW", "Max efficiency": "98.4%"}, p.Specifications)
	assert.Equal(t, []string{"Dual MPPT", "Battery ready"}, p.Features)
	assert.Equal(t, []string{"IEC 62109"}, p.Certifications)
	assert.Equal(t, []string{"Residential"}, p.Applications)
	assert.Equal(t, []string{"LFP 10kWh"}, p.CompatibleWith)
	assert.Equal(t, "https://cdn.example.com/ds.pdf", p.TechnicalDocs.Datasheet)
	assert.Equal(t, "https://cdn.example.com/install.pdf", p.TechnicalDocs.InstallationGuide)
	assert.Equal(t, []string{"https://cdn.example.com/iec.pdf"}, p.TechnicalDocs.Certificates)
	assert.Len(t, p.Media.PDFs, 3)
	assert.Equal(t, []string{"https://video.example.com/1"}, p.Media.Videos)
	require.Len(t, p.Reviews, 1)
	assert.Equal(t, "Ana", p.Reviews[0].Name)
	assert.Equal(t, "2024-03-09", p.Reviews[0].Date)
}

func TestToLegacyProductKeepsLegacyImageWithoutRows(t *testing.T) {
	p := ToLegacyProduct(models.ProductRecord{ID: "p1", ImageURL: "https://cdn.example.com/a.jpg"})
	assert.Equal(t, "https://cdn.example.com/a.jpg", p.Image)
	assert.Empty(t, p.Images)
}

func TestToProductCategoryAttachesIcon(t *testing.T) {
	known := ToProductCategory(models.CategoryRecord{Slug: "batteries", Name: "Batteries", ProductCount: 7})
	assert.Equal(t, "batteries", known.ID)
	assert.Equal(t, "battery-charging", known.Icon)
	assert.Equal(t, 7, known.TotalProducts)
	assert.NotNil(t, known.Products)
	assert.NotNil(t, known.Features)

	unknown := ToProductCategory(models.CategoryRecord{Slug: "ev-chargers"})
	assert.Equal(t, "package", unknown.Icon)
}
