// Package checkout drives the shipping -> payment -> review -> placed state
// machine for one checkout attempt. Each step is its own type carrying only
// the data valid at that step, so a review state without a resolved address
// cannot be constructed at all.
package checkout

import (
	"context"

	"github.com/mfetisov/storefront/internal/domain"
	"github.com/mfetisov/storefront/internal/pricing"
)

const (
	StepShipping = 1
	StepPayment  = 2
	StepReview   = 3
	StepPlaced   = 4
)

// CartReader is the read-only slice of the cart store the orchestrator needs.
type CartReader interface {
	Current() *domain.Cart
}

// OrderPlacer runs the placement handoff sequence. Implemented by the
// placement package; mocked in tests.
type OrderPlacer interface {
	Place(ctx context.Context, addressID string, address domain.Address, method domain.ShippingMethod, discount float64) (*domain.Receipt, error)
}

type state interface {
	step() int
}

// shippingState optionally carries prefill from a previous visit, so backing
// out of step 2 re-enters step 1 with the form filled in.
type shippingState struct {
	prefillAddress *domain.Address
	prefillMethod  *domain.ShippingMethod
}

type paymentState struct {
	address domain.Address
	method  domain.ShippingMethod
}

type reviewState struct {
	address       domain.Address
	method        domain.ShippingMethod
	paymentMethod string
}

type placedState struct {
	receipt *domain.Receipt
}

func (shippingState) step() int { return StepShipping }
func (paymentState) step() int  { return StepPayment }
func (reviewState) step() int   { return StepReview }
func (placedState) step() int   { return StepPlaced }

// Orchestrator owns one checkout draft. It is not safe for concurrent use;
// one checkout attempt belongs to one session.
type Orchestrator struct {
	carts   CartReader
	coupons pricing.CouponValidator

	state      state
	couponCode string
	discount   float64
}

// Begin enters step 1, refusing outright when the cart has no lines.
func Begin(carts CartReader, coupons pricing.CouponValidator) (*Orchestrator, error) {
	if carts.Current().IsEmpty() {
		return nil, ErrEmptyCart
	}
	if coupons == nil {
		coupons = pricing.AcceptAllCoupons{}
	}
	return &Orchestrator{
		carts:   carts,
		coupons: coupons,
		state:   shippingState{},
	}, nil
}

func (o *Orchestrator) Step() int {
	return o.state.step()
}

// ShippingPrefill returns previously entered address and method for
// re-rendering step 1 after back-navigation. Nil pointers mean a blank form.
func (o *Orchestrator) ShippingPrefill() (*domain.Address, *domain.ShippingMethod) {
	s, ok := o.state.(shippingState)
	if !ok {
		return nil, nil
	}
	return s.prefillAddress, s.prefillMethod
}

func (o *Orchestrator) subtotal() float64 {
	if cart := o.carts.Current(); cart != nil {
		return cart.TotalPrice
	}
	return 0
}

// SubmitShipping validates the address and method and advances to payment.
// All address fields are required except street2 and zipCode. The free method
// is rejected below the free-shipping threshold.
func (o *Orchestrator) SubmitShipping(address domain.Address, methodID string) error {
	if _, ok := o.state.(shippingState); !ok {
		return ErrIllegalTransition
	}
	if err := validateAddress(address); err != nil {
		return err
	}
	method, ok := pricing.MethodByID(methodID)
	if !ok {
		return &ValidationError{Field: "shippingMethod", Reason: "unknown shipping method"}
	}
	if !pricing.Selectable(method, o.subtotal()) {
		return &ValidationError{Field: "shippingMethod", Reason: "method not available below free-shipping threshold"}
	}

	o.state = paymentState{address: address, method: method}
	return nil
}

// SubmitPayment advances to review. The payment method is fixed to cash on
// delivery in this version, so there is nothing to choose.
func (o *Orchestrator) SubmitPayment() error {
	s, ok := o.state.(paymentState)
	if !ok {
		return ErrIllegalTransition
	}
	o.state = reviewState{
		address:       s.address,
		method:        s.method,
		paymentMethod: domain.PaymentMethodCashOnDelivery,
	}
	return nil
}

// Back moves one step towards shipping, preserving everything already
// entered. Backing out of step 1 is not a transition, it is leaving checkout.
func (o *Orchestrator) Back() error {
	switch s := o.state.(type) {
	case paymentState:
		addr, method := s.address, s.method
		o.state = shippingState{prefillAddress: &addr, prefillMethod: &method}
		return nil
	case reviewState:
		o.state = paymentState{address: s.address, method: s.method}
		return nil
	default:
		return ErrIllegalTransition
	}
}

// ApplyCoupon validates the code against the coupon authority and records
// the resulting discount on the draft.
func (o *Orchestrator) ApplyCoupon(ctx context.Context, code string) error {
	if _, ok := o.state.(placedState); ok {
		return ErrIllegalTransition
	}
	discount, err := o.coupons.Validate(ctx, code)
	if err != nil {
		return err
	}
	o.couponCode = code
	o.discount = discount
	return nil
}

func (o *Orchestrator) CouponCode() string {
	return o.couponCode
}

// ReviewView is what step 3 renders: the resolved selections plus the live
// price breakdown.
type ReviewView struct {
	Address       domain.Address
	Method        domain.ShippingMethod
	PaymentMethod string
	Pricing       domain.Breakdown
}

// Review fails closed: outside step 3 there is nothing to render.
func (o *Orchestrator) Review() (ReviewView, error) {
	s, ok := o.state.(reviewState)
	if !ok {
		return ReviewView{}, ErrIllegalTransition
	}
	return ReviewView{
		Address:       s.address,
		Method:        s.method,
		PaymentMethod: s.paymentMethod,
		Pricing:       pricing.Quote(o.subtotal(), o.discount),
	}, nil
}

// Place runs the handoff from step 3. On success the machine reaches its
// terminal state; on failure it stays on review with the cart untouched so a
// retry is a fresh, independent attempt.
func (o *Orchestrator) Place(ctx context.Context, placer OrderPlacer) (*domain.Receipt, error) {
	s, ok := o.state.(reviewState)
	if !ok {
		return nil, ErrIllegalTransition
	}
	receipt, err := placer.Place(ctx, s.address.ID, s.address, s.method, o.discount)
	if err != nil {
		return nil, err
	}
	o.state = placedState{receipt: receipt}
	return receipt, nil
}

// Receipt returns the placement result once the machine is terminal.
func (o *Orchestrator) Receipt() (*domain.Receipt, bool) {
	s, ok := o.state.(placedState)
	if !ok {
		return nil, false
	}
	return s.receipt, true
}

func validateAddress(a domain.Address) error {
	required := []struct {
		field, value string
	}{
		{"addressId", a.ID},
		{"recipientName", a.RecipientName},
		{"phoneNumber", a.PhoneNumber},
		{"street1", a.Street1},
		{"city", a.City},
		{"state", a.State},
		{"country", a.Country},
	}
	for _, r := range required {
		if r.value == "" {
			return &ValidationError{Field: r.field, Reason: "required"}
		}
	}
	return nil
}
