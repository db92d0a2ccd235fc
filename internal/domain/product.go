package domain

import "time"

type Product struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	Category     string    `json:"category,omitempty"`
	Image        string    `json:"image,omitempty"`
	Brand        string    `json:"brand,omitempty"`
	PriceCents   int64     `json:"priceCents"`
	CountInStock int       `json:"countInStock"`
	Description  string    `json:"description,omitempty"`
	Rating       float64   `json:"rating"`
	NumReviews   int       `json:"numReviews"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CartItem converts a product into a cart line with the requested quantity.
func (p Product) CartItem(quantity int) CartItem {
	return CartItem{
		ID:           p.ID,
		Slug:         p.Slug,
		Name:         p.Name,
		Image:        p.Image,
		PriceCents:   p.PriceCents,
		Quantity:     quantity,
		CountInStock: p.CountInStock,
	}
}
