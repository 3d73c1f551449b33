package handlers

import (
	"net/http"

	"suuq-storefront/catalog"
	"suuq-storefront/search"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	Catalog  *catalog.Client
	Searches *search.History
}

func (h *CatalogHandler) GetProducts(c *gin.Context) {
	products, err := h.Catalog.Products(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, found, err := h.Catalog.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch products"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product":        product,
		"average_rating": product.AverageRating(),
	})
}

// SearchProducts filters the catalog by the q parameter and records the
// term in the recent-search history.
func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	query := c.Query("q")

	products, err := h.Catalog.Products(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch products"})
		return
	}

	h.Searches.Record(query)

	matched := catalog.Filter(products, query)
	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"results": matched,
	})
}

func (h *CatalogHandler) GetRecentSearches(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"searches": h.Searches.Terms()})
}

func (h *CatalogHandler) ClearRecentSearches(c *gin.Context) {
	h.Searches.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "Search history cleared"})
}
