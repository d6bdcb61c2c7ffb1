package pricing

import "github.com/mfetisov/storefront/internal/domain"

// The shipping catalog is static. The free method is threshold-gated: it only
// becomes selectable once the cart subtotal reaches FreeShippingThreshold.
const FreeMethodID = "free"

var methods = []domain.ShippingMethod{
	{ID: "standard", Name: "Standard", Description: "Tracked parcel delivery", Price: 10, Days: "3-5 days"},
	{ID: "express", Name: "Express", Description: "Courier delivery", Price: 25, Days: "1-2 days"},
	{ID: FreeMethodID, Name: "Free", Description: "Economy delivery on qualifying orders", Price: 0, Days: "5-7 days"},
}

// Methods returns the full catalog.
func Methods() []domain.ShippingMethod {
	out := make([]domain.ShippingMethod, len(methods))
	copy(out, methods)
	return out
}

func MethodByID(id string) (domain.ShippingMethod, bool) {
	for _, m := range methods {
		if m.ID == id {
			return m, true
		}
	}
	return domain.ShippingMethod{}, false
}

// Selectable reports whether a method may be chosen at the given subtotal.
func Selectable(method domain.ShippingMethod, subtotal float64) bool {
	if method.ID == FreeMethodID {
		return subtotal >= FreeShippingThreshold
	}
	return true
}

// SelectableMethods filters the catalog down to what the given subtotal is
// allowed to choose. The UI disables the rest, it does not merely warn.
func SelectableMethods(subtotal float64) []domain.ShippingMethod {
	var out []domain.ShippingMethod
	for _, m := range methods {
		if Selectable(m, subtotal) {
			out = append(out, m)
		}
	}
	return out
}
