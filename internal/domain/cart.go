package domain

// Location is an optional geolocation attached to a shipping address.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Address struct {
	FullName   string    `json:"fullName"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	PostalCode string    `json:"postalCode"`
	Country    string    `json:"country"`
	Location   *Location `json:"location,omitempty"`
}

// Empty reports whether no address has been captured yet.
func (a Address) Empty() bool {
	return a.FullName == "" && a.Address == "" && a.City == "" && a.PostalCode == "" && a.Country == ""
}

type PaymentMethod string

const (
	PaymentMethodNone   PaymentMethod = ""
	PaymentMethodPayPal PaymentMethod = "PayPal"
	PaymentMethodStripe PaymentMethod = "Stripe"
	PaymentMethodCash   PaymentMethod = "Cash"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodPayPal, PaymentMethodStripe, PaymentMethodCash:
		return true
	}
	return false
}

// CartItem is a product snapshot held in the cart. Identity for merge and
// removal is the product ID, never the display name.
type CartItem struct {
	ID           string `json:"id"`
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	Image        string `json:"image,omitempty"`
	PriceCents   int64  `json:"priceCents"`
	Quantity     int    `json:"quantity"`
	CountInStock int    `json:"countInStock"`
}

type CartState struct {
	CartItems       []CartItem    `json:"cartItems"`
	ShippingAddress Address       `json:"shippingAddress"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
}
