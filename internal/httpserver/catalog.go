package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nutribites-storefront/internal/catalog"
	"nutribites-storefront/internal/domain"
)

func listProductsHandler(src catalog.Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		first := intQuery(c, "first", 20)

		var (
			products []domain.Product
			err      error
		)
		if q := c.Query("q"); q != "" {
			products, err = src.SearchProducts(c.Request.Context(), q, first)
		} else {
			products, err = src.Products(c.Request.Context(), first)
		}
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
			return
		}

		products = catalog.Apply(products, catalog.Filter{
			Tag:      c.Query("tag"),
			MinPrice: c.Query("minPrice"),
			MaxPrice: c.Query("maxPrice"),
			Sort:     c.Query("sort"),
		})
		c.JSON(http.StatusOK, gin.H{"products": products, "total": len(products)})
	}
}

func productHandler(src catalog.Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := src.ProductByHandle(c.Request.Context(), c.Param("handle"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func listCollectionsHandler(src catalog.Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		first := intQuery(c, "first", 10)
		collections, err := src.Collections(c.Request.Context(), first)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
			return
		}
		if c.Query("featured") != "" {
			collections = featuredCollections(collections, 4)
		}
		c.JSON(http.StatusOK, gin.H{"collections": collections})
	}
}

// featuredCollections keeps the main shopping categories, dropping the
// derived bestseller/new-arrival groupings.
func featuredCollections(collections []domain.Collection, count int) []domain.Collection {
	out := make([]domain.Collection, 0, count)
	for _, coll := range collections {
		if coll.Handle == "bestsellers" || coll.Handle == "new-arrivals" {
			continue
		}
		out = append(out, coll)
		if len(out) == count {
			break
		}
	}
	return out
}

func collectionHandler(src catalog.Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		first := intQuery(c, "first", 20)
		coll, err := src.CollectionByHandle(c.Request.Context(), c.Param("handle"), first)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "collection not found"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
			return
		}
		c.JSON(http.StatusOK, coll)
	}
}

// collectionProductsHandler responds with an empty product list for an
// unknown collection rather than a 404.
func collectionProductsHandler(src catalog.Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		first := intQuery(c, "first", 20)
		products, err := src.CollectionProducts(c.Request.Context(), c.Param("handle"), first)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func intQuery(c *gin.Context, key string, def int) int {
	if v := c.Query(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
