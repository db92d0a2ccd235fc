package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront-core/internal/cart"
	"storefront-core/internal/domain"
	"storefront-core/internal/kvstore"
)

type unknownAction struct{}

func (unknownAction) isAction() {}

func newTestStore(t *testing.T, seed map[string]string) (*Store, *kvstore.Memory) {
	t.Helper()
	ctx := context.Background()
	kv := kvstore.NewMemory()
	for k, v := range seed {
		require.NoError(t, kv.Set(ctx, k, v, 0))
	}
	return New(ctx, kv, zap.NewNop()), kv
}

func TestInitializeDefaults(t *testing.T) {
	s, _ := newTestStore(t, nil)

	state := s.State()
	assert.False(t, state.DarkMode)
	assert.Empty(t, state.Cart.CartItems)
	assert.True(t, state.Cart.ShippingAddress.Empty())
	assert.Equal(t, domain.PaymentMethodNone, state.Cart.PaymentMethod)
	assert.Nil(t, state.Session)
}

func TestInitializeFromPersistedState(t *testing.T) {
	items, err := json.Marshal([]domain.CartItem{{ID: "p1", Quantity: 2, PriceCents: 1000}})
	require.NoError(t, err)
	addr, err := json.Marshal(domain.Address{FullName: "Jo Doe", City: "Riga"})
	require.NoError(t, err)
	session, err := json.Marshal(domain.Session{ID: "u1", Name: "Jo", Token: "tok"})
	require.NoError(t, err)

	s, _ := newTestStore(t, map[string]string{
		"darkMode":        "On",
		"cartItems":       string(items),
		"shippingAddress": string(addr),
		"paymentMethod":   "PayPal",
		"session":         string(session),
	})

	state := s.State()
	assert.True(t, state.DarkMode)
	require.Len(t, state.Cart.CartItems, 1)
	assert.Equal(t, "p1", state.Cart.CartItems[0].ID)
	assert.Equal(t, "Riga", state.Cart.ShippingAddress.City)
	assert.Equal(t, domain.PaymentMethodPayPal, state.Cart.PaymentMethod)
	require.NotNil(t, state.Session)
	assert.Equal(t, "tok", state.Session.Token)
}

func TestInitializeIgnoresCorruptEntries(t *testing.T) {
	s, _ := newTestStore(t, map[string]string{
		"darkMode":  "definitely",
		"cartItems": "{not json",
		"session":   "also not json",
	})

	state := s.State()
	assert.False(t, state.DarkMode)
	assert.Empty(t, state.Cart.CartItems)
	assert.Nil(t, state.Session)
}

func TestToggleDarkModeMirrors(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t, nil)

	require.NoError(t, s.Dispatch(ctx, ToggleDarkMode{}))
	assert.True(t, s.State().DarkMode)
	v, ok, err := kv.Get(ctx, "darkMode")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "On", v)

	require.NoError(t, s.Dispatch(ctx, ToggleDarkMode{}))
	assert.False(t, s.State().DarkMode)
	v, _, _ = kv.Get(ctx, "darkMode")
	assert.Equal(t, "Off", v)
}

func TestAddCartItemMergesAndMirrors(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t, nil)

	require.NoError(t, s.Dispatch(ctx, AddCartItem{Item: domain.CartItem{ID: "p1", PriceCents: 1000, Quantity: 1}}))
	require.NoError(t, s.Dispatch(ctx, AddCartItem{Item: domain.CartItem{ID: "p1", PriceCents: 1000, Quantity: 2}}))

	state := s.State()
	require.Len(t, state.Cart.CartItems, 1)
	assert.Equal(t, 2, state.Cart.CartItems[0].Quantity)
	assert.Equal(t, int64(2000), cart.Subtotal(state.Cart.CartItems))

	raw, ok, err := kv.Get(ctx, "cartItems")
	require.NoError(t, err)
	require.True(t, ok)
	var mirrored []domain.CartItem
	require.NoError(t, json.Unmarshal([]byte(raw), &mirrored))
	assert.Equal(t, state.Cart.CartItems, mirrored)
}

func TestRemoveCartItemMirrors(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t, nil)
	require.NoError(t, s.Dispatch(ctx, AddCartItem{Item: domain.CartItem{ID: "p1", Quantity: 1}}))
	require.NoError(t, s.Dispatch(ctx, AddCartItem{Item: domain.CartItem{ID: "p2", Quantity: 1}}))

	require.NoError(t, s.Dispatch(ctx, RemoveCartItem{ID: "p1"}))

	state := s.State()
	require.Len(t, state.Cart.CartItems, 1)
	assert.Equal(t, "p2", state.Cart.CartItems[0].ID)

	raw, _, _ := kv.Get(ctx, "cartItems")
	var mirrored []domain.CartItem
	require.NoError(t, json.Unmarshal([]byte(raw), &mirrored))
	require.Len(t, mirrored, 1)
}

func TestClearCartEmptiesItems(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, nil)
	require.NoError(t, s.Dispatch(ctx, AddCartItem{Item: domain.CartItem{ID: "p1", Quantity: 1}}))
	require.NoError(t, s.Dispatch(ctx, SavePaymentMethod{Method: domain.PaymentMethodCash}))

	require.NoError(t, s.Dispatch(ctx, ClearCart{}))

	state := s.State()
	assert.Empty(t, state.Cart.CartItems)
	// Address and payment method survive a cart clear.
	assert.Equal(t, domain.PaymentMethodCash, state.Cart.PaymentMethod)
}

func TestLoginLogout(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t, nil)

	require.NoError(t, s.Dispatch(ctx, Login{Session: domain.Session{ID: "u1", Token: "tok", IsAdmin: true}}))
	state := s.State()
	require.NotNil(t, state.Session)
	assert.True(t, state.Session.IsAdmin)
	_, ok, err := kv.Get(ctx, "session")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.Dispatch(ctx, AddCartItem{Item: domain.CartItem{ID: "p1", Quantity: 1}}))
	require.NoError(t, s.Dispatch(ctx, SaveShippingAddress{Address: domain.Address{City: "Riga"}}))
	require.NoError(t, s.Dispatch(ctx, SavePaymentMethod{Method: domain.PaymentMethodStripe}))

	require.NoError(t, s.Dispatch(ctx, Logout{}))

	state = s.State()
	assert.Nil(t, state.Session)
	assert.Empty(t, state.Cart.CartItems)
	assert.True(t, state.Cart.ShippingAddress.Empty())
	assert.Equal(t, domain.PaymentMethodNone, state.Cart.PaymentMethod)

	for _, key := range []string{"session", "cartItems", "shippingAddress", "paymentMethod"} {
		_, ok, err := kv.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, "key %s must be cleared on logout", key)
	}
}

func TestSaveShippingAddressAndPaymentMethodMirror(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t, nil)

	require.NoError(t, s.Dispatch(ctx, SaveShippingAddress{Address: domain.Address{FullName: "Jo Doe", City: "Riga"}}))
	raw, ok, err := kv.Get(ctx, "shippingAddress")
	require.NoError(t, err)
	require.True(t, ok)
	var addr domain.Address
	require.NoError(t, json.Unmarshal([]byte(raw), &addr))
	assert.Equal(t, "Riga", addr.City)

	require.NoError(t, s.Dispatch(ctx, SavePaymentMethod{Method: domain.PaymentMethodPayPal}))
	v, ok, err := kv.Get(ctx, "paymentMethod")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "PayPal", v)
}

func TestUnknownActionIsNoOp(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, nil)
	require.NoError(t, s.Dispatch(ctx, AddCartItem{Item: domain.CartItem{ID: "p1", Quantity: 1}}))
	before := s.State()

	require.NoError(t, s.Dispatch(ctx, unknownAction{}))
	assert.Equal(t, before, s.State())

	require.NoError(t, s.Dispatch(ctx, nil))
	assert.Equal(t, before, s.State())
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, nil)

	var calls int
	unsubscribe := s.Subscribe(func(state GlobalState) {
		calls++
	})

	require.NoError(t, s.Dispatch(ctx, ToggleDarkMode{}))
	assert.Equal(t, 1, calls)

	unsubscribe()
	require.NoError(t, s.Dispatch(ctx, ToggleDarkMode{}))
	assert.Equal(t, 1, calls)
}

func TestSnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, nil)
	require.NoError(t, s.Dispatch(ctx, AddCartItem{Item: domain.CartItem{ID: "p1", Quantity: 1}}))

	snapshot := s.State()
	snapshot.Cart.CartItems[0].Quantity = 99

	assert.Equal(t, 1, s.State().Cart.CartItems[0].Quantity)
}

func TestAddRemoveScenario(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, nil)

	require.NoError(t, s.Dispatch(ctx, AddCartItem{Item: domain.CartItem{ID: "p1", PriceCents: 1000, Quantity: 1}}))
	state := s.State()
	require.Len(t, state.Cart.CartItems, 1)
	assert.Equal(t, 1, state.Cart.CartItems[0].Quantity)

	require.NoError(t, s.Dispatch(ctx, AddCartItem{Item: domain.CartItem{ID: "p1", PriceCents: 1000, Quantity: 2}}))
	state = s.State()
	require.Len(t, state.Cart.CartItems, 1)
	assert.Equal(t, 2, state.Cart.CartItems[0].Quantity)
	assert.Equal(t, int64(2000), cart.Subtotal(state.Cart.CartItems))
}
