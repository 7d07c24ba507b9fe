package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

type CustomerInfo struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
}

// Order is created exactly once at checkout and never mutated. Items is a
// value snapshot of the cart at order time; clearing or editing the cart
// afterwards must not affect it.
type Order struct {
	ID           string       `json:"id"`
	Items        []CartItem   `json:"items"`
	Total        int64        `json:"total"`
	CustomerInfo CustomerInfo `json:"customer_info"`
	OrderDate    time.Time    `json:"order_date"`
	Status       OrderStatus  `json:"status"`
}

type CheckoutRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required"`
	Address       string `json:"address" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}

type OrderEvent struct {
	OrderID       string      `json:"order_id"`
	CustomerEmail string      `json:"customer_email"`
	Total         int64       `json:"total"`
	ItemCount     int         `json:"item_count"`
	Status        OrderStatus `json:"status"`
	EventType     string      `json:"event_type"` // order_created
}
