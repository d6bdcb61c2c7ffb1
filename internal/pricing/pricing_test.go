package pricing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShippingCost_FlatRule(t *testing.T) {
	assert.Equal(t, 10.0, ShippingCost(0))
	assert.Equal(t, 10.0, ShippingCost(40))
	assert.Equal(t, 10.0, ShippingCost(99.99))
	assert.Equal(t, 0.0, ShippingCost(100))
	assert.Equal(t, 0.0, ShippingCost(150))
}

func TestTax_FlatEightPercentRoundedToTwoDecimals(t *testing.T) {
	assert.Equal(t, 3.2, Tax(40))
	assert.Equal(t, 12.0, Tax(150))
	// 33.33 * 0.08 = 2.6664 -> 2.67
	assert.Equal(t, 2.67, Tax(33.33))
}

func TestQuote_SubtotalFortyStandardShipping(t *testing.T) {
	bd := Quote(40, 0)

	assert.Equal(t, 40.0, bd.Subtotal)
	assert.Equal(t, 10.0, bd.Shipping)
	assert.Equal(t, 3.2, bd.Tax)
	assert.Equal(t, 0.0, bd.Discount)
	assert.Equal(t, 53.2, bd.Total)
}

func TestQuote_SubtotalOneFiftyFreeShipping(t *testing.T) {
	bd := Quote(150, 0)

	assert.Equal(t, 0.0, bd.Shipping)
	assert.Equal(t, 12.0, bd.Tax)
	assert.Equal(t, 162.0, bd.Total)
}

func TestQuote_DiscountReducesTotal(t *testing.T) {
	bd := Quote(40, 5)
	assert.Equal(t, 48.2, bd.Total)
}

func TestQuote_TotalNeverNegative(t *testing.T) {
	bd := Quote(10, 1000)
	assert.Equal(t, 0.0, bd.Total)
}

func TestMethodByID(t *testing.T) {
	m, ok := MethodByID("standard")
	require.True(t, ok)
	assert.Equal(t, "Standard", m.Name)
	assert.Equal(t, "3-5 days", m.Days)

	_, ok = MethodByID("teleport")
	assert.False(t, ok)
}

func TestSelectable_FreeMethodGatedByThreshold(t *testing.T) {
	free, ok := MethodByID(FreeMethodID)
	require.True(t, ok)

	assert.False(t, Selectable(free, 40))
	assert.False(t, Selectable(free, 99.99))
	assert.True(t, Selectable(free, 100))
	assert.True(t, Selectable(free, 150))
}

func TestSelectableMethods_BelowThresholdExcludesFree(t *testing.T) {
	below := SelectableMethods(40)
	for _, m := range below {
		assert.NotEqual(t, FreeMethodID, m.ID)
	}
	assert.Len(t, below, 2)

	above := SelectableMethods(120)
	assert.Len(t, above, 3)
}

func TestAcceptAllCoupons(t *testing.T) {
	v := AcceptAllCoupons{}

	_, err := v.Validate(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyCouponCode)

	discount, err := v.Validate(context.Background(), "ANYTHING")
	require.NoError(t, err)
	assert.Zero(t, discount)
}
