// Package cart holds the pure merge and pricing functions for cart lines.
package cart

import (
	"errors"

	"storefront-core/internal/domain"
)

// MergeItem inserts newItem keyed by product ID. An existing line with the
// same ID is replaced in place (newItem carries the already-combined target
// quantity); otherwise the item is appended. Untouched lines keep their
// positions. The input slice is never mutated.
func MergeItem(items []domain.CartItem, newItem domain.CartItem) []domain.CartItem {
	out := make([]domain.CartItem, len(items))
	copy(out, items)
	for i, item := range out {
		if item.ID == newItem.ID {
			out[i] = newItem
			return out
		}
	}
	return append(out, newItem)
}

// RemoveItem filters out the line with the given product ID, preserving the
// order of the remaining lines.
func RemoveItem(items []domain.CartItem, id string) []domain.CartItem {
	out := make([]domain.CartItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}

// Subtotal is the sum of quantity times unit price over all lines.
func Subtotal(items []domain.CartItem) int64 {
	var total int64
	for _, item := range items {
		total += int64(item.Quantity) * item.PriceCents
	}
	return total
}

// ItemCount is the sum of quantities over all lines.
func ItemCount(items []domain.CartItem) int {
	var count int
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// CheckStock validates a requested quantity against the externally supplied
// stock count before the item may be dispatched into the cart. The merge
// functions themselves never validate stock.
func CheckStock(item domain.CartItem, requested int) error {
	if requested <= 0 {
		return errors.New("quantity must be positive")
	}
	if requested > item.CountInStock {
		return domain.ErrInsufficientStock
	}
	return nil
}

const (
	taxRatePercent        = 15
	freeShippingOverCents = 20000
	shippingFlatCents     = 1500
)

// Totals is the checkout price breakdown, all in cents.
type Totals struct {
	ItemsCents    int64
	TaxCents      int64
	ShippingCents int64
	TotalCents    int64
}

// ComputeTotals derives the checkout breakdown: 15% tax rounded to the cent,
// flat shipping waived above the free-shipping threshold.
func ComputeTotals(items []domain.CartItem) Totals {
	t := Totals{ItemsCents: Subtotal(items)}
	t.TaxCents = (t.ItemsCents*taxRatePercent + 50) / 100
	if t.ItemsCents <= freeShippingOverCents {
		t.ShippingCents = shippingFlatCents
	}
	t.TotalCents = t.ItemsCents + t.TaxCents + t.ShippingCents
	return t
}
