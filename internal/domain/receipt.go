package domain

import "time"

// Breakdown captures the four price components of an order. Amounts are in
// the store's single currency, rounded to two decimals.
type Breakdown struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// Receipt is the write-once record of a placed order: a frozen copy of the
// cart lines plus the resolved address, shipping method and price breakdown.
// It is the sole data source for the confirmation screen and the printable
// invoice.
type Receipt struct {
	OrderID        string         `json:"orderId"`
	PlacedAt       time.Time      `json:"placedAt"`
	Items          []CartLine     `json:"items"`
	Address        Address        `json:"address"`
	ShippingMethod ShippingMethod `json:"shippingMethod"`
	PaymentMethod  string         `json:"paymentMethod"`
	Pricing        Breakdown      `json:"pricing"`
}
