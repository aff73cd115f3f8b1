package catalog

import "solarcatalog/internal/models"

// FilterProducts returns the products matching every constraint set on f, in
// input order. PriceRange, Capacity and Efficiency are free text in the
// catalog and are not used for matching.
func FilterProducts(products []models.Product, f models.ProductFilter) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matchesFilter(p, f) {
			out = append(out, p)
		}
	}
	return out
}

func matchesFilter(p models.Product, f models.ProductFilter) bool {
	if f.Category != "" && f.Category != models.FilterAll && string(p.Category) != f.Category {
		return false
	}
	if f.Brand != "" && f.Brand != models.FilterAll && p.Brand != f.Brand {
		return false
	}
	if f.InStock != nil && p.InStock != *f.InStock {
		return false
	}
	if f.MinRating != nil && p.Rating < *f.MinRating {
		return false
	}
	return true
}
