package confirmation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfetisov/storefront/internal/domain"
	"github.com/mfetisov/storefront/internal/receipt"
)

func storedReceipt(t *testing.T) receipt.Store {
	t.Helper()
	store := receipt.NewMemoryStore()
	require.NoError(t, store.Put(context.Background(), &domain.Receipt{
		OrderID:  "ord-1",
		PlacedAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		Items: []domain.CartLine{
			{CartItemID: "ci-1", ProductID: "p-1", ProductName: "Enamel Mug", Quantity: 2, UnitPrice: 20, Subtotal: 40},
			{CartItemID: "ci-2", ProductID: "p-2", ProductName: "Field Notebook", Quantity: 1, UnitPrice: 12.5, Subtotal: 12.5},
		},
		Address: domain.Address{
			ID: "addr-1", RecipientName: "Ada Lovelace", PhoneNumber: "+1-555-0100",
			Street1: "1 Analytical Way", City: "London", State: "LDN", Country: "UK",
		},
		ShippingMethod: domain.ShippingMethod{ID: "standard", Name: "Standard", Price: 10, Days: "3-5 days"},
		PaymentMethod:  domain.PaymentMethodCashOnDelivery,
		Pricing:        domain.Breakdown{Subtotal: 52.5, Shipping: 10, Tax: 4.2, Total: 66.7},
	}))
	return store
}

func TestBuild_WithReceipt(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	view, err := Build(context.Background(), storedReceipt(t), now)

	require.NoError(t, err)
	assert.False(t, view.Degraded)
	require.NotNil(t, view.Receipt)
	assert.Equal(t, "ord-1", view.Receipt.OrderID)

	// "3-5 days" -> upper bound 5
	require.NotNil(t, view.EstimatedDelivery)
	assert.Equal(t, now.AddDate(0, 0, 5), *view.EstimatedDelivery)
}

func TestBuild_DegradedWithoutReceipt(t *testing.T) {
	view, err := Build(context.Background(), receipt.NewMemoryStore(), time.Now())

	require.NoError(t, err, "a missing snapshot degrades, it does not fail")
	assert.True(t, view.Degraded)
	assert.Nil(t, view.Receipt)
	assert.Nil(t, view.EstimatedDelivery)
}

func TestUpperBoundDays(t *testing.T) {
	cases := []struct {
		window string
		days   int
		ok     bool
	}{
		{"3-5 days", 5, true},
		{"1-2 business days", 2, true},
		{"7 days", 7, true},
		{"overnight", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		days, ok := upperBoundDays(tc.window)
		assert.Equal(t, tc.ok, ok, tc.window)
		if tc.ok {
			assert.Equal(t, tc.days, days, tc.window)
		}
	}
}

func TestBuildInvoice_DerivedFromReceipt(t *testing.T) {
	store := storedReceipt(t)
	rec, err := store.Get(context.Background())
	require.NoError(t, err)

	now := time.Date(2026, 3, 14, 16, 0, 0, 0, time.UTC)
	inv := BuildInvoice(rec, now)

	assert.Equal(t, "INV-ORD-1", inv.Number)
	assert.Equal(t, "ord-1", inv.OrderID)
	assert.Equal(t, "Standard (3-5 days)", inv.Shipping)
	assert.Len(t, inv.Lines, 2)
	assert.Equal(t, 66.7, inv.Pricing.Total)

	// pure: same inputs, same document
	assert.Equal(t, inv, BuildInvoice(rec, now))
}

func TestInvoiceRender_ContainsLinesAndTotals(t *testing.T) {
	store := storedReceipt(t)
	rec, err := store.Get(context.Background())
	require.NoError(t, err)

	inv := BuildInvoice(rec, time.Date(2026, 3, 14, 16, 0, 0, 0, time.UTC))
	doc, err := inv.Render()

	require.NoError(t, err)
	assert.Contains(t, doc, "INVOICE INV-ORD-1")
	assert.Contains(t, doc, "Enamel Mug")
	assert.Contains(t, doc, "Field Notebook")
	assert.Contains(t, doc, "Ada Lovelace")
	assert.Contains(t, doc, "CASH_ON_DELIVERY")
	assert.Contains(t, doc, "66.70")
}
