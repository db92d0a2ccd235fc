// Package store owns the shared client state tree: a pure reducer, a
// dispatch/subscription container, and the mirroring of selected fields to
// the persistent key-value capability.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"storefront-core/internal/domain"
	"storefront-core/internal/kvstore"
)

// Persisted key layout, shared with whatever seeded the store previously.
const (
	keyDarkMode        = "darkMode"
	keyCartItems       = "cartItems"
	keyShippingAddress = "shippingAddress"
	keyPaymentMethod   = "paymentMethod"
	keySession         = "session"
)

const darkModeOn = "On"

// Store is the single owner of GlobalState. All mutation goes through
// Dispatch; readers get consistent snapshots from State.
type Store struct {
	mu     sync.Mutex
	kv     kvstore.Store
	logger *zap.Logger
	state  GlobalState
	subs   []func(GlobalState)
}

// New seeds the state tree from the key-value capability. Absent or
// unparsable entries fall back to defaults rather than failing.
func New(ctx context.Context, kv kvstore.Store, logger *zap.Logger) *Store {
	s := &Store{kv: kv, logger: logger}
	s.state = s.initialState(ctx)
	return s
}

func (s *Store) initialState(ctx context.Context) GlobalState {
	state := GlobalState{Cart: emptyCart()}

	if v, ok := s.get(ctx, keyDarkMode); ok {
		state.DarkMode = v == darkModeOn
	}
	if v, ok := s.get(ctx, keyCartItems); ok {
		var items []domain.CartItem
		if err := json.Unmarshal([]byte(v), &items); err != nil {
			s.logger.Warn("discarding persisted cart items", zap.Error(err))
		} else {
			state.Cart.CartItems = items
		}
	}
	if v, ok := s.get(ctx, keyShippingAddress); ok {
		var addr domain.Address
		if err := json.Unmarshal([]byte(v), &addr); err != nil {
			s.logger.Warn("discarding persisted shipping address", zap.Error(err))
		} else {
			state.Cart.ShippingAddress = addr
		}
	}
	if v, ok := s.get(ctx, keyPaymentMethod); ok {
		state.Cart.PaymentMethod = domain.PaymentMethod(v)
	}
	if v, ok := s.get(ctx, keySession); ok {
		var session domain.Session
		if err := json.Unmarshal([]byte(v), &session); err != nil {
			s.logger.Warn("discarding persisted session", zap.Error(err))
		} else {
			state.Session = &session
		}
	}
	return state
}

func (s *Store) get(ctx context.Context, key string) (string, bool) {
	v, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.logger.Warn("read persisted state", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return v, ok
}

// State returns a snapshot safe to hold across dispatches.
func (s *Store) State() GlobalState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.state)
}

// Subscribe registers fn to run after every applied action. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func(GlobalState)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
	idx := len(s.subs) - 1
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.subs[idx] = nil
	}
}

// Dispatch applies the action and synchronously mirrors the changed fields.
// The in-memory transition always commits; a failed mirror write is
// surfaced so the caller knows persistence lagged behind.
func (s *Store) Dispatch(ctx context.Context, action Action) error {
	s.mu.Lock()
	next := Reduce(s.state, action)
	s.state = next
	mirrorErr := s.mirror(ctx, action, next)
	snapshot := cloneState(next)
	subs := make([]func(GlobalState), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		if fn != nil {
			fn(snapshot)
		}
	}
	return mirrorErr
}

func (s *Store) mirror(ctx context.Context, action Action, state GlobalState) error {
	switch action.(type) {
	case ToggleDarkMode:
		v := "Off"
		if state.DarkMode {
			v = darkModeOn
		}
		return s.set(ctx, keyDarkMode, v)

	case AddCartItem, RemoveCartItem:
		return s.setJSON(ctx, keyCartItems, state.Cart.CartItems)

	case Login:
		return s.setJSON(ctx, keySession, state.Session)

	case Logout:
		return errors.Join(
			s.remove(ctx, keySession),
			s.remove(ctx, keyCartItems),
			s.remove(ctx, keyShippingAddress),
			s.remove(ctx, keyPaymentMethod),
		)

	case SaveShippingAddress:
		return s.setJSON(ctx, keyShippingAddress, state.Cart.ShippingAddress)

	case SavePaymentMethod:
		return s.set(ctx, keyPaymentMethod, string(state.Cart.PaymentMethod))
	}
	return nil
}

func (s *Store) set(ctx context.Context, key, value string) error {
	if err := s.kv.Set(ctx, key, value, 0); err != nil {
		return fmt.Errorf("mirror %s: %w", key, err)
	}
	return nil
}

func (s *Store) setJSON(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.set(ctx, key, string(raw))
}

func (s *Store) remove(ctx context.Context, key string) error {
	if err := s.kv.Remove(ctx, key); err != nil {
		return fmt.Errorf("clear %s: %w", key, err)
	}
	return nil
}

func cloneState(state GlobalState) GlobalState {
	out := state
	out.Cart.CartItems = make([]domain.CartItem, len(state.Cart.CartItems))
	copy(out.Cart.CartItems, state.Cart.CartItems)
	if state.Session != nil {
		session := *state.Session
		out.Session = &session
	}
	return out
}
