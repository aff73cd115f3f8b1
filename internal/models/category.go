package models

// ProductCategory is a catalog category with its display metadata.
type ProductCategory struct {
	ID            string   `json:"id"`
	Label         string   `json:"label"`
	Description   string   `json:"description"`
	Icon          string   `json:"icon"`
	Features      []string `json:"features"`
	Products      []string `json:"products"`
	TotalProducts int      `json:"totalProducts"`
}

// ProductStats holds aggregate catalog counts.
type ProductStats struct {
	TotalProducts int     `json:"totalProducts"`
	Categories    int     `json:"categories"`
	Brands        int     `json:"brands"`
	AverageRating float64 `json:"averageRating"`
}

// CatalogOverview bundles the cached catalog lookups for landing pages.
type CatalogOverview struct {
	Categories []ProductCategory `json:"categories"`
	Brands     []string          `json:"brands"`
	Stats      ProductStats      `json:"stats"`
}
