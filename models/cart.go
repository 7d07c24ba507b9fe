package models

// CartItem holds a copy of the product so later catalog changes cannot
// retroactively alter a cart line. Quantity is always >= 1; a quantity
// update to zero or below removes the line instead.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartState is the full cart snapshot. Total and ItemCount are derived
// from Items on every transition and are never stored independently.
type CartState struct {
	Items     []CartItem `json:"items"`
	Total     int64      `json:"total"`
	ItemCount int        `json:"item_count"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
