package domain

import "time"

type Order struct {
	ID                 string        `json:"id"`
	Items              []CartItem    `json:"orderItems"`
	ShippingAddress    Address       `json:"shippingAddress"`
	PaymentMethod      PaymentMethod `json:"paymentMethod"`
	ItemsPriceCents    int64         `json:"itemsPriceCents"`
	TaxPriceCents      int64         `json:"taxPriceCents"`
	ShippingPriceCents int64         `json:"shippingPriceCents"`
	TotalPriceCents    int64         `json:"totalPriceCents"`
	IsPaid             bool          `json:"isPaid"`
	PaidAt             *time.Time    `json:"paidAt,omitempty"`
	IsDelivered        bool          `json:"isDelivered"`
	DeliveredAt        *time.Time    `json:"deliveredAt,omitempty"`
	CreatedAt          time.Time     `json:"createdAt"`
}

type MonthlySales struct {
	Month      string `json:"month"`
	TotalCents int64  `json:"totalCents"`
}

// DashboardSummary aggregates the admin dashboard figures.
type DashboardSummary struct {
	OrdersCount      int            `json:"ordersCount"`
	ProductsCount    int            `json:"productsCount"`
	UsersCount       int            `json:"usersCount"`
	OrdersPriceCents int64          `json:"ordersPriceCents"`
	SalesData        []MonthlySales `json:"salesData"`
}
