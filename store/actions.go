package store

import "storefront/models"

// Each store reduces a closed set of tagged actions. The reduce functions
// are pure: they never touch the gateway, the clock, or the logger, so the
// full transition space is testable without a store instance.

type cartAction interface{ isCartAction() }

type addItem struct{ product models.Product }
type removeItem struct{ productID string }
type updateQuantity struct {
	productID string
	quantity  int
}
type clearCart struct{}

func (addItem) isCartAction()        {}
func (removeItem) isCartAction()     {}
func (updateQuantity) isCartAction() {}
func (clearCart) isCartAction()      {}

type authAction interface{ isAuthAction() }

type loginStart struct{}
type loginSuccess struct{ user models.User }
type loginFailure struct{}
type logout struct{}
type addToWishlist struct{ productID string }
type removeFromWishlist struct{ productID string }
type addOrder struct{ order models.Order }
type loadUser struct{ user *models.User }
type loadWishlist struct{ wishlist []string }
type loadOrders struct{ orders []models.Order }

func (loginStart) isAuthAction()         {}
func (loginSuccess) isAuthAction()       {}
func (loginFailure) isAuthAction()       {}
func (logout) isAuthAction()             {}
func (addToWishlist) isAuthAction()      {}
func (removeFromWishlist) isAuthAction() {}
func (addOrder) isAuthAction()           {}
func (loadUser) isAuthAction()           {}
func (loadWishlist) isAuthAction()       {}
func (loadOrders) isAuthAction()         {}
