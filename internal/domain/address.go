package domain

// Address mirrors the address service's response shape. Once selected during
// checkout it is carried as an opaque value.
type Address struct {
	ID            string `json:"id"`
	RecipientName string `json:"recipientName"`
	PhoneNumber   string `json:"phoneNumber"`
	Street1       string `json:"street1"`
	Street2       string `json:"street2,omitempty"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zipCode,omitempty"`
	Country       string `json:"country"`
	IsDefault     bool   `json:"isDefault"`
}
