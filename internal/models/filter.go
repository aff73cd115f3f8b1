package models

// FilterAll disables the category or brand constraint of a ProductFilter.
const FilterAll = "all"

// ProductFilter narrows a product list. Zero-valued fields add no constraint.
type ProductFilter struct {
	Category   string     `json:"category,omitempty"`
	Brand      string     `json:"brand,omitempty"`
	PriceRange *[2]string `json:"priceRange,omitempty"`
	InStock    *bool      `json:"inStock,omitempty"`
	MinRating  *float64   `json:"rating,omitempty"`
	Capacity   string     `json:"capacity,omitempty"`
	Efficiency string     `json:"efficiency,omitempty"`
}
