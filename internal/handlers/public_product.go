package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"solarcatalog/internal/catalog"
	"solarcatalog/internal/models"
)

const (
	defaultRelatedLimit = 4
	maxRelatedLimit     = 12
)

/*
GET /products
- search OR category selects the base list
- brand, inStock, minRating narrow it, sort orders it
- page + limit are optional; without them every product is returned
*/
func GetProducts(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		defer handlePanic(c, route)

		log.Printf(
			"[%s] hit page=%s limit=%s category=%s search=%s sort=%s",
			route,
			c.Query("page"),
			c.Query("limit"),
			c.Query("category"),
			c.Query("search"),
			c.Query("sort"),
		)

		filter, err := parseProductFilter(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		sortBy := strings.TrimSpace(c.Query("sort"))
		if sortBy != "" && !catalog.IsSortKey(sortBy) {
			respondWithError(c, http.StatusBadRequest, route, "invalid sort")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		category := strings.TrimSpace(c.Query("category"))
		var products []models.Product
		if search := strings.TrimSpace(c.Query("search")); search != "" {
			products = svc.SearchProducts(ctx, search)
			filter.Category = category
		} else {
			products = svc.ProductsByCategory(ctx, category)
		}

		products = catalog.FilterProducts(products, filter)
		if sortBy != "" {
			products = catalog.SortProducts(products, sortBy)
		}

		pageStr := c.Query("page")
		limitStr := c.Query("limit")

		if pageStr != "" && limitStr != "" {
			page, limit, err := parsePaginationParams(pageStr, limitStr)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, err.Error())
				return
			}

			c.Header("X-Total-Count", strconv.Itoa(len(products)))
			products = paginate(products, page, limit)
		}

		log.Printf("[%s] returning %d products", route, len(products))
		c.JSON(http.StatusOK, products)
	}
}

func parseProductFilter(c *gin.Context) (models.ProductFilter, error) {
	filter := models.ProductFilter{
		Brand: strings.TrimSpace(c.Query("brand")),
	}

	if raw := strings.TrimSpace(c.Query("inStock")); raw != "" {
		inStock, err := strconv.ParseBool(raw)
		if err != nil {
			return models.ProductFilter{}, errors.New("invalid inStock")
		}
		filter.InStock = &inStock
	}

	if raw := strings.TrimSpace(c.Query("minRating")); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil || rating < 0 || rating > 5 {
			return models.ProductFilter{}, errors.New("invalid minRating")
		}
		filter.MinRating = &rating
	}

	return filter, nil
}

func productList(route string, list func(context.Context) []models.Product) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		products := list(ctx)

		log.Printf("[%s] returning %d products", route, len(products))
		c.JSON(http.StatusOK, products)
	}
}

func GetFeaturedProducts(svc *catalog.Service) gin.HandlerFunc {
	return productList("GET /products/featured", svc.FeaturedProducts)
}

func GetPopularProducts(svc *catalog.Service) gin.HandlerFunc {
	return productList("GET /products/popular", svc.PopularProducts)
}

func GetInStockProducts(svc *catalog.Service) gin.HandlerFunc {
	return productList("GET /products/in-stock", svc.InStockProducts)
}

/*
GET /products/:id
*/
func GetProduct(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products/:id"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		product, err := svc.LookupProductByID(ctx, c.Param("id"))
		if err != nil {
			respondLookupError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

/*
GET /products/slug/:slug
*/
func GetProductBySlug(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products/slug/:slug"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		product, err := svc.LookupProductBySlug(ctx, c.Param("slug"))
		if err != nil {
			respondLookupError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

/*
GET /products/:id/related?limit=
*/
func GetRelatedProducts(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products/:id/related"
		defer handlePanic(c, route)

		limit := defaultRelatedLimit
		if raw := c.Query("limit"); raw != "" {
			l, err := strconv.Atoi(raw)
			if err != nil || l < 1 {
				respondWithError(c, http.StatusBadRequest, route, "invalid limit")
				return
			}
			limit = min(l, maxRelatedLimit)
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		product, err := svc.LookupProductByID(ctx, c.Param("id"))
		if err != nil {
			respondLookupError(c, route, err)
			return
		}

		related := svc.RelatedProducts(ctx, product, limit)

		log.Printf("[%s] returning %d products", route, len(related))
		c.JSON(http.StatusOK, related)
	}
}

func respondLookupError(c *gin.Context, route string, err error) {
	if errors.Is(err, catalog.ErrNotFound) {
		respondWithError(c, http.StatusNotFound, route, "product not found")
		return
	}
	log.WithError(err).Errorf("[%s] lookup failed", route)
	respondWithError(c, http.StatusInternalServerError, route, "db error")
}
