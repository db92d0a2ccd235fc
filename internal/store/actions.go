package store

import "storefront-core/internal/domain"

// Action is the closed set of state transitions the store recognizes.
// Anything else dispatched is a no-op.
type Action interface {
	isAction()
}

type ToggleDarkMode struct{}

// AddCartItem merges Item into the cart by product ID. Item carries the
// already-combined target quantity; stock validation happens before
// dispatch, not here.
type AddCartItem struct {
	Item domain.CartItem
}

type RemoveCartItem struct {
	ID string
}

type ClearCart struct{}

type Login struct {
	Session domain.Session
}

type Logout struct{}

type SaveShippingAddress struct {
	Address domain.Address
}

type SavePaymentMethod struct {
	Method domain.PaymentMethod
}

func (ToggleDarkMode) isAction()      {}
func (AddCartItem) isAction()         {}
func (RemoveCartItem) isAction()      {}
func (ClearCart) isAction()           {}
func (Login) isAction()               {}
func (Logout) isAction()              {}
func (SaveShippingAddress) isAction() {}
func (SavePaymentMethod) isAction()   {}
