package models

import "time"

// Records mirror the normalized documents kept in MongoDB. Joined collections
// reference their product through productId and are attached by $lookup.

type CategoryRecord struct {
	ID           string   `bson:"_id"`
	Slug         string   `bson:"slug"`
	Name         string   `bson:"name"`
	Description  string   `bson:"description,omitempty"`
	Features     []string `bson:"features,omitempty"`
	SortOrder    int      `bson:"sortOrder"`
	ProductCount int      `bson:"productCount,omitempty"`
	ProductIDs   []string `bson:"productIds,omitempty"`
}

type BrandRecord struct {
	ID      string `bson:"_id"`
	Name    string `bson:"name"`
	Slug    string `bson:"slug,omitempty"`
	Country string `bson:"country,omitempty"`
	Website string `bson:"website,omitempty"`
}

type ImageRecord struct {
	URL       string `bson:"url"`
	Alt       string `bson:"alt,omitempty"`
	IsPrimary bool   `bson:"isPrimary"`
	SortOrder int    `bson:"sortOrder"`
}

type SpecificationRecord struct {
	Name      string `bson:"name"`
	Value     string `bson:"value"`
	SortOrder int    `bson:"sortOrder"`
}

type FeatureRecord struct {
	Feature   string `bson:"feature"`
	SortOrder int    `bson:"sortOrder"`
}

// NamedRecord is the row shape of certifications and applications.
type NamedRecord struct {
	Name string `bson:"name"`
}

// DocumentRecord is a downloadable file. Type is one of datasheet, manual,
// installation, warranty or certificate.
type DocumentRecord struct {
	Type  string `bson:"type"`
	Title string `bson:"title,omitempty"`
	URL   string `bson:"url"`
}

type VideoRecord struct {
	Title string `bson:"title,omitempty"`
	URL   string `bson:"url"`
}

type ReviewRecord struct {
	ID           string    `bson:"_id"`
	CustomerName string    `bson:"customerName"`
	CustomerRole string    `bson:"customerRole,omitempty"`
	Location     string    `bson:"location,omitempty"`
	Content      string    `bson:"content"`
	Rating       float64   `bson:"rating"`
	Verified     bool      `bson:"verified"`
	CreatedAt    time.Time `bson:"createdAt"`
}

type ProductRecord struct {
	ID               string          `bson:"_id"`
	Slug             string          `bson:"slug"`
	Name             string          `bson:"name"`
	ShortDescription string          `bson:"shortDescription,omitempty"`
	Description      string          `bson:"description,omitempty"`
	CategoryID       string          `bson:"categoryId,omitempty"`
	BrandID          string          `bson:"brandId,omitempty"`
	Subcategory      string          `bson:"subcategory,omitempty"`
	Model            string          `bson:"model,omitempty"`
	PriceRange       string          `bson:"priceRange,omitempty"`
	MinOrderQuantity string          `bson:"moq,omitempty"`
	Warranty         string          `bson:"warranty,omitempty"`
	Efficiency       string          `bson:"efficiency,omitempty"`
	Capacity         string          `bson:"capacity,omitempty"`
	ImageURL         string          `bson:"imageUrl,omitempty"`
	Rating           float64         `bson:"rating"`
	ReviewCount      int             `bson:"reviewCount"`
	Popular          bool            `bson:"popular"`
	Featured         bool            `bson:"featured"`
	InStock          bool            `bson:"inStock"`
	LeadTime         string          `bson:"leadTime,omitempty"`
	CompatibleWith   StringList      `bson:"compatibleWith,omitempty"`
	CreatedAt        time.Time       `bson:"createdAt"`
	Category         *CategoryRecord `bson:"category,omitempty"`
	Brand            *BrandRecord    `bson:"brand,omitempty"`

	Images         []ImageRecord         `bson:"images,omitempty"`
	Specifications []SpecificationRecord `bson:"specifications,omitempty"`
	Features       []FeatureRecord       `bson:"features,omitempty"`
	Certifications []NamedRecord         `bson:"certifications,omitempty"`
	Applications   []NamedRecord         `bson:"applications,omitempty"`
	Documents      []DocumentRecord      `bson:"documents,omitempty"`
	Videos         []VideoRecord         `bson:"videos,omitempty"`
	Reviews        []ReviewRecord        `bson:"reviews,omitempty"`
}

// StatsRecord is the result of the catalog stats aggregation.
type StatsRecord struct {
	TotalProducts int64
	Categories    int64
	Brands        int64
	AverageRating float64
}
