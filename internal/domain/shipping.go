package domain

// ShippingMethod is a static catalog entry. Days is a human-readable delivery
// window ("3-5 days") whose upper bound feeds the estimated delivery date.
type ShippingMethod struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Days        string  `json:"days"`
}
