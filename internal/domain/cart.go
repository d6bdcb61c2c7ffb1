package domain

// CartLine is one product entry in a cart. Subtotal and the cart's TotalPrice
// are computed server-side; the client treats them as authoritative and never
// recomputes them from unit price and quantity.
type CartLine struct {
	CartItemID  string  `json:"cartItemId"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

type Cart struct {
	ID         string     `json:"cartId"`
	UserID     string     `json:"userId"`
	Items      []CartLine `json:"items"`
	TotalPrice float64    `json:"totalPrice"`
}

// ItemCount sums line quantities. Recomputed on every call, never cached.
func (c *Cart) ItemCount() int {
	if c == nil {
		return 0
	}
	count := 0
	for _, line := range c.Items {
		count += line.Quantity
	}
	return count
}

func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// Clone returns a deep copy so a snapshot handed out of the store cannot be
// mutated behind its back.
func (c *Cart) Clone() *Cart {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Items = make([]CartLine, len(c.Items))
	copy(cp.Items, c.Items)
	return &cp
}
