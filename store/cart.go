package store

import (
	"sync"

	"storefront/models"

	"go.uber.org/zap"
)

// CartStore holds the shopper's line items. Every operation is total: there
// are no error conditions, and the derived total and item count are
// recomputed from the items on each transition.
type CartStore struct {
	mu     sync.RWMutex
	state  models.CartState
	logger *zap.Logger
}

func NewCartStore(logger *zap.Logger) *CartStore {
	return &CartStore{
		state:  models.CartState{Items: []models.CartItem{}},
		logger: logger,
	}
}

// AddItem inserts a line with quantity 1, or bumps the existing line's
// quantity when the product is already in the cart.
func (s *CartStore) AddItem(product models.Product) {
	s.dispatch(addItem{product: product})
	s.logger.Info("Item added to cart", zap.String("product_id", product.ID))
}

// RemoveItem deletes the line for productID; absent lines are a no-op.
func (s *CartStore) RemoveItem(productID string) {
	s.dispatch(removeItem{productID: productID})
}

// UpdateQuantity sets the line's quantity exactly. A quantity of zero or
// below removes the line.
func (s *CartStore) UpdateQuantity(productID string, quantity int) {
	s.dispatch(updateQuantity{productID: productID, quantity: quantity})
}

// Clear resets the cart to the empty state.
func (s *CartStore) Clear() {
	s.dispatch(clearCart{})
	s.logger.Info("Cart cleared")
}

func (s *CartStore) dispatch(action cartAction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = reduceCart(s.state, action)
}

// State returns a snapshot safe to hand to callers; the item slice is
// copied so cart transitions after the read cannot alias into it.
func (s *CartStore) State() models.CartState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := s.state
	snapshot.Items = append([]models.CartItem(nil), s.state.Items...)
	return snapshot
}

func (s *CartStore) Items() []models.CartItem {
	return s.State().Items
}

func (s *CartStore) Total() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Total
}

func (s *CartStore) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ItemCount
}

func reduceCart(state models.CartState, action cartAction) models.CartState {
	items := state.Items

	switch a := action.(type) {
	case addItem:
		next := make([]models.CartItem, 0, len(items)+1)
		found := false
		for _, item := range items {
			if item.Product.ID == a.product.ID {
				item.Quantity++
				found = true
			}
			next = append(next, item)
		}
		if !found {
			next = append(next, models.CartItem{Product: a.product, Quantity: 1})
		}
		items = next

	case removeItem:
		items = withoutItem(items, a.productID)

	case updateQuantity:
		if a.quantity <= 0 {
			items = withoutItem(items, a.productID)
			break
		}
		next := make([]models.CartItem, 0, len(items))
		for _, item := range items {
			if item.Product.ID == a.productID {
				item.Quantity = a.quantity
			}
			next = append(next, item)
		}
		items = next

	case clearCart:
		items = []models.CartItem{}
	}

	total, count := sumItems(items)
	return models.CartState{Items: items, Total: total, ItemCount: count}
}

func withoutItem(items []models.CartItem, productID string) []models.CartItem {
	next := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.Product.ID != productID {
			next = append(next, item)
		}
	}
	return next
}

func sumItems(items []models.CartItem) (total int64, count int) {
	for _, item := range items {
		total += item.Product.Price * int64(item.Quantity)
		count += item.Quantity
	}
	return total, count
}
