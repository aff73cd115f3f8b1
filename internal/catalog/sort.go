package catalog

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"solarcatalog/internal/models"
)

// Sort keys accepted by SortProducts. The name keys order by English
// collation, so case is ignored ("battery" sorts before "Cable").
const (
	SortNameAsc    = "name-asc"
	SortNameDesc   = "name-desc"
	SortRatingDesc = "rating-desc"
	SortRatingAsc  = "rating-asc"
	SortPopular    = "popular"
	SortFeatured   = "featured"
	SortReviews    = "reviews"
)

// SortProducts returns a sorted copy of products. Ties keep their input
// order. An unknown key returns the copy unchanged.
func SortProducts(products []models.Product, sortBy string) []models.Product {
	out := slices.Clone(products)
	if out == nil {
		out = []models.Product{}
	}

	switch sortBy {
	case SortNameAsc:
		col := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return col.CompareString(a.Name, b.Name)
		})
	case SortNameDesc:
		col := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return col.CompareString(b.Name, a.Name)
		})
	case SortRatingDesc:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	case SortRatingAsc:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return cmp.Compare(a.Rating, b.Rating)
		})
	case SortPopular:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return flagFirst(a.Popular, b.Popular)
		})
	case SortFeatured:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return flagFirst(a.Featured, b.Featured)
		})
	case SortReviews:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return cmp.Compare(b.ReviewCount, a.ReviewCount)
		})
	}
	return out
}

func flagFirst(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return -1
	default:
		return 1
	}
}

// IsSortKey reports whether key selects an ordering.
func IsSortKey(key string) bool {
	switch key {
	case SortNameAsc, SortNameDesc, SortRatingDesc, SortRatingAsc, SortPopular, SortFeatured, SortReviews:
		return true
	}
	return false
}
