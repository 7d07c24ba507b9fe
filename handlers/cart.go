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

type CartHandler struct {
	cart     *store.CartStore
	products *store.ProductStore
	logger   *zap.Logger
}

func NewCartHandler(cart *store.CartStore, products *store.ProductStore, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		cart:     cart,
		products: products,
		logger:   logger,
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cart.State())
}

func (h *CartHandler) AddItem(c *gin.Context) {
	_, span := otel.Tracer("storefront").Start(c.Request.Context(), "AddCartItem")
	defer span.End()

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	span.SetAttributes(attribute.String("product.id", req.ProductID))

	product, ok := h.products.Product(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	h.cart.AddItem(product)
	c.JSON(http.StatusOK, h.cart.State())
}

// UpdateQuantity sets a line's quantity exactly; zero or below removes the
// line, so the request never fails on small values.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	_, span := otel.Tracer("storefront").Start(c.Request.Context(), "UpdateCartQuantity")
	defer span.End()

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	span.SetAttributes(
		attribute.String("product.id", id),
		attribute.Int("quantity", *req.Quantity),
	)

	h.cart.UpdateQuantity(id, *req.Quantity)
	c.JSON(http.StatusOK, h.cart.State())
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	h.cart.RemoveItem(c.Param("id"))
	c.JSON(http.StatusOK, h.cart.State())
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cart.Clear()
	c.JSON(http.StatusOK, h.cart.State())
}
