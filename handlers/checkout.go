package handlers

import (
	"net/http"
	"time"

	"storefront/events"
	"storefront/middleware"
	"storefront/models"
	"storefront/store"

	"github.com/IBM/sarama"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type CheckoutHandler struct {
	cart     *store.CartStore
	auth     *store.AuthStore
	producer sarama.SyncProducer
	topic    string
	logger   *zap.Logger
}

// NewCheckoutHandler wires the checkout sequence. producer may be nil, in
// which case no order event is published.
func NewCheckoutHandler(cart *store.CartStore, auth *store.AuthStore, producer sarama.SyncProducer, topic string, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		cart:     cart,
		auth:     auth,
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// Checkout snapshots the cart into a new order, records it in the order
// history, and only then clears the cart. The order keeps a value copy of
// the items, so the clear (or any later cart edit) cannot touch it.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	ctx, span := otel.Tracer("storefront").Start(c.Request.Context(), "Checkout")
	defer span.End()

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cartState := h.cart.State()
	if len(cartState.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	order := models.Order{
		ID:    uuid.NewString(),
		Items: cartState.Items,
		Total: cartState.Total,
		CustomerInfo: models.CustomerInfo{
			Name:          req.Name,
			Email:         req.Email,
			Address:       req.Address,
			PaymentMethod: req.PaymentMethod,
		},
		OrderDate: time.Now().UTC(),
		Status:    models.OrderStatusConfirmed,
	}

	span.SetAttributes(
		attribute.String("order.id", order.ID),
		attribute.Int64("order.total", order.Total),
		attribute.Int("order.items", len(order.Items)),
	)

	// The order must be recorded before the cart is cleared.
	h.auth.AddOrder(ctx, order)
	h.cart.Clear()

	middleware.RecordOrderPlaced(req.PaymentMethod)

	if h.producer != nil {
		event := models.OrderEvent{
			OrderID:       order.ID,
			CustomerEmail: order.CustomerInfo.Email,
			Total:         order.Total,
			ItemCount:     cartState.ItemCount,
			Status:        order.Status,
			EventType:     "order_created",
		}
		if err := events.PublishOrderCreated(ctx, h.producer, h.topic, event, h.logger); err != nil {
			h.logger.Error("Failed to publish order_created event", zap.Error(err))
		}
	}

	h.logger.Info("Order placed",
		zap.String("order_id", order.ID),
		zap.Int64("total", order.Total),
		zap.String("payment_method", req.PaymentMethod),
	)
	c.JSON(http.StatusCreated, order)
}
