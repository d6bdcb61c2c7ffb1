package pricing

import (
	"context"
	"errors"
)

var ErrEmptyCouponCode = errors.New("coupon code is empty")

// CouponValidator resolves a coupon code to a discount amount. The real
// implementation belongs to an external pricing authority; this package only
// defines the seam.
type CouponValidator interface {
	Validate(ctx context.Context, code string) (float64, error)
}

// AcceptAllCoupons accepts any non-empty code with a zero discount. It is a
// stand-in until the discount service exists, not a discount engine.
type AcceptAllCoupons struct{}

func (AcceptAllCoupons) Validate(_ context.Context, code string) (float64, error) {
	if code == "" {
		return 0, ErrEmptyCouponCode
	}
	return 0, nil
}
