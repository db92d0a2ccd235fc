package store

import (
	"storefront-core/internal/cart"
	"storefront-core/internal/domain"
)

// GlobalState is the single cross-screen state tree. It is only ever
// replaced as a whole by Reduce; nested fields are never mutated in place.
type GlobalState struct {
	DarkMode bool
	Cart     domain.CartState
	Session  *domain.Session
}

func emptyCart() domain.CartState {
	return domain.CartState{
		CartItems:       []domain.CartItem{},
		ShippingAddress: domain.Address{},
		PaymentMethod:   domain.PaymentMethodNone,
	}
}

// Reduce is the pure, total transition function. Unrecognized actions
// (including nil) return the input state unchanged.
func Reduce(state GlobalState, action Action) GlobalState {
	switch a := action.(type) {
	case ToggleDarkMode:
		state.DarkMode = !state.DarkMode
		return state

	case AddCartItem:
		state.Cart.CartItems = cart.MergeItem(state.Cart.CartItems, a.Item)
		return state

	case RemoveCartItem:
		state.Cart.CartItems = cart.RemoveItem(state.Cart.CartItems, a.ID)
		return state

	case ClearCart:
		state.Cart.CartItems = []domain.CartItem{}
		return state

	case Login:
		session := a.Session
		state.Session = &session
		return state

	case Logout:
		state.Session = nil
		state.Cart = emptyCart()
		return state

	case SaveShippingAddress:
		state.Cart.ShippingAddress = a.Address
		return state

	case SavePaymentMethod:
		state.Cart.PaymentMethod = a.Method
		return state

	default:
		return state
	}
}
