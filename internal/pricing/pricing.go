// Package pricing computes the order price breakdown: subtotal, shipping
// under the free-shipping threshold rule, flat-rate tax and coupon discount.
// Everything here is a pure function of its inputs.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/mfetisov/storefront/internal/domain"
)

const (
	// FreeShippingThreshold is the subtotal at or above which shipping is
	// waived, in currency units.
	FreeShippingThreshold = 100.0

	// FlatShippingRate applies below the threshold regardless of the chosen
	// method's own price field.
	FlatShippingRate = 10.0

	// TaxRate is a flat 8%. Single jurisdiction only.
	TaxRate = 0.08
)

// ShippingCost implements the flat rule: subtotal >= threshold means free,
// anything below pays the flat rate. The selected method's price does not
// participate; a method's price only matters for catalog display.
func ShippingCost(subtotal float64) float64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return FlatShippingRate
}

// Tax returns the flat-rate tax on the subtotal, rounded to two decimals.
func Tax(subtotal float64) float64 {
	tax := decimal.NewFromFloat(subtotal).Mul(decimal.NewFromFloat(TaxRate))
	result, _ := tax.Round(2).Float64()
	return result
}

// Quote assembles the full breakdown. The total never goes below zero even if
// a discount exceeds the other components.
func Quote(subtotal, discount float64) domain.Breakdown {
	shipping := ShippingCost(subtotal)
	tax := Tax(subtotal)

	total := decimal.NewFromFloat(subtotal).
		Add(decimal.NewFromFloat(shipping)).
		Add(decimal.NewFromFloat(tax)).
		Sub(decimal.NewFromFloat(discount)).
		Round(2)
	if total.IsNegative() {
		total = decimal.Zero
	}
	totalF, _ := total.Float64()

	return domain.Breakdown{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Discount: discount,
		Total:    totalF,
	}
}
