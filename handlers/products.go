package handlers

import (
	"net/http"

	"storefront/models"
	"storefront/store"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type ProductHandler struct {
	products *store.ProductStore
	logger   *zap.Logger
}

func NewProductHandler(products *store.ProductStore, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		logger:   logger,
	}
}

// GetProducts returns the debounced filtered view plus the filter inputs
// that produced it. While a filter change is pending, loading is true and
// the previous view is still served.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	_, span := otel.Tracer("storefront").Start(c.Request.Context(), "GetProducts")
	defer span.End()

	filtered := h.products.FilteredProducts()
	span.SetAttributes(attribute.Int("products.count", len(filtered)))

	c.JSON(http.StatusOK, gin.H{
		"products":    filtered,
		"search_term": h.products.SearchTerm(),
		"category":    h.products.SelectedCategory(),
		"loading":     h.products.IsLoading(),
	})
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	_, span := otel.Tracer("storefront").Start(c.Request.Context(), "GetProduct")
	defer span.End()

	id := c.Param("id")
	span.SetAttributes(attribute.String("product.id", id))

	product, ok := h.products.Product(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// Filter updates the search term and/or selected category. The commit is
// debounced, so the response only acknowledges the pending recompute.
func (h *ProductHandler) Filter(c *gin.Context) {
	_, span := otel.Tracer("storefront").Start(c.Request.Context(), "FilterProducts")
	defer span.End()

	var req models.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.SearchTerm == nil && req.Category == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "search_term or category is required"})
		return
	}

	if req.SearchTerm != nil {
		h.products.SetSearchTerm(*req.SearchTerm)
		span.SetAttributes(attribute.String("filter.search_term", *req.SearchTerm))
	}
	if req.Category != nil {
		h.products.SetSelectedCategory(*req.Category)
		span.SetAttributes(attribute.String("filter.category", *req.Category))
	}

	c.JSON(http.StatusAccepted, gin.H{"loading": true})
}

func (h *ProductHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.products.Categories()})
}
