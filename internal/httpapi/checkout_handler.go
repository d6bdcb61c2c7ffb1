package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mfetisov/storefront/internal/checkout"
	"github.com/mfetisov/storefront/internal/domain"
	"github.com/mfetisov/storefront/internal/placement"
	"github.com/mfetisov/storefront/internal/pricing"
)

type CheckoutHandler struct {
	sessions *Sessions
	orders   placement.OrderGateway
	carts    CartGateway
	coupons  pricing.CouponValidator
	log      *slog.Logger
}

func NewCheckoutHandler(sessions *Sessions, orders placement.OrderGateway, carts CartGateway, coupons pricing.CouponValidator, log *slog.Logger) *CheckoutHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CheckoutHandler{sessions: sessions, orders: orders, carts: carts, coupons: coupons, log: log}
}

type checkoutView struct {
	Step           int                    `json:"step"`
	PrefillAddress *domain.Address        `json:"prefillAddress,omitempty"`
	PrefillMethod  *domain.ShippingMethod `json:"prefillMethod,omitempty"`
	Review         *checkout.ReviewView   `json:"review,omitempty"`
	CouponCode     string                 `json:"couponCode,omitempty"`
}

func viewOf(o *checkout.Orchestrator) checkoutView {
	view := checkoutView{Step: o.Step(), CouponCode: o.CouponCode()}
	if o.Step() == checkout.StepShipping {
		view.PrefillAddress, view.PrefillMethod = o.ShippingPrefill()
	}
	if o.Step() == checkout.StepReview {
		if review, err := o.Review(); err == nil {
			view.Review = &review
		}
	}
	return view
}

// Begin refetches the cart and enters step 1. An empty cart is refused with
// the cart_empty exit state.
func (h *CheckoutHandler) Begin(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.For(userID(r.Context()))
	if err := sess.Store.Refetch(r.Context()); err != nil && sess.Store.Current() == nil {
		respondMappedError(w, err)
		return
	}

	o, err := checkout.Begin(sess.Store, h.coupons)
	if err != nil {
		respondMappedError(w, err)
		return
	}
	sess.SetCheckout(o)
	respondJSON(w, http.StatusCreated, viewOf(o))
}

// current returns the in-progress orchestrator or responds with 409.
func (h *CheckoutHandler) current(w http.ResponseWriter, r *http.Request) *checkout.Orchestrator {
	o := h.sessions.For(userID(r.Context())).Checkout()
	if o == nil {
		respondError(w, http.StatusConflict, "no_checkout", "no checkout in progress")
	}
	return o
}

func (h *CheckoutHandler) State(w http.ResponseWriter, r *http.Request) {
	o := h.current(w, r)
	if o == nil {
		return
	}
	respondJSON(w, http.StatusOK, viewOf(o))
}

type submitShippingRequest struct {
	Address          domain.Address `json:"address"`
	ShippingMethodID string         `json:"shippingMethodId"`
}

func (h *CheckoutHandler) SubmitShipping(w http.ResponseWriter, r *http.Request) {
	o := h.current(w, r)
	if o == nil {
		return
	}
	var req submitShippingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if err := o.SubmitShipping(req.Address, req.ShippingMethodID); err != nil {
		respondMappedError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewOf(o))
}

func (h *CheckoutHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	o := h.current(w, r)
	if o == nil {
		return
	}
	if err := o.SubmitPayment(); err != nil {
		respondMappedError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewOf(o))
}

func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	o := h.current(w, r)
	if o == nil {
		return
	}
	if err := o.Back(); err != nil {
		respondMappedError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewOf(o))
}

type applyCouponRequest struct {
	Code string `json:"code"`
}

func (h *CheckoutHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	o := h.current(w, r)
	if o == nil {
		return
	}
	var req applyCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if err := o.ApplyCoupon(r.Context(), req.Code); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_coupon", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, viewOf(o))
}

// Place runs the handoff from step 3. On failure the draft stays on review
// and the cart is untouched, so the client may retry.
func (h *CheckoutHandler) Place(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.For(userID(r.Context()))
	o := sess.Checkout()
	if o == nil {
		respondError(w, http.StatusConflict, "no_checkout", "no checkout in progress")
		return
	}

	handoff := placement.NewHandoff(h.orders, h.carts, sess.Store, sess.Receipts, h.log)
	rec, err := o.Place(r.Context(), handoff)
	if err != nil {
		respondMappedError(w, err)
		return
	}
	sess.SetCheckout(nil)
	respondJSON(w, http.StatusCreated, rec)
}

// ShippingMethods lists what the current subtotal may select.
func (h *CheckoutHandler) ShippingMethods(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.For(userID(r.Context()))
	subtotal := 0.0
	if cart := sess.Store.Current(); cart != nil {
		subtotal = cart.TotalPrice
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"methods":               pricing.SelectableMethods(subtotal),
		"freeShippingThreshold": pricing.FreeShippingThreshold,
	})
}
