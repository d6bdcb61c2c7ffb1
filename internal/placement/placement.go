// Package placement turns a reviewed checkout draft into a placed order and
// runs the handoff that follows: freeze the receipt snapshot, clear the
// remote cart, clear the local view. The ordering is load-bearing; see Place.
package placement

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mfetisov/storefront/internal/domain"
	"github.com/mfetisov/storefront/internal/pricing"
	"github.com/mfetisov/storefront/internal/receipt"
)

// OrderGateway is the slice of the order client used here.
type OrderGateway interface {
	PlaceOrder(ctx context.Context, shippingAddressID, idempotencyKey string) (*domain.Order, error)
}

// CartClearer is the slice of the cart gateway used here.
type CartClearer interface {
	ClearCart(ctx context.Context, cartID string) error
}

// LocalCart is the slice of the cart store used here.
type LocalCart interface {
	Current() *domain.Cart
	ClearLocally()
}

type Handoff struct {
	orders   OrderGateway
	carts    CartClearer
	local    LocalCart
	receipts receipt.Store
	log      *slog.Logger
	now      func() time.Time
}

func NewHandoff(orders OrderGateway, carts CartClearer, local LocalCart, receipts receipt.Store, log *slog.Logger) *Handoff {
	if log == nil {
		log = slog.Default()
	}
	return &Handoff{
		orders:   orders,
		carts:    carts,
		local:    local,
		receipts: receipts,
		log:      log,
		now:      time.Now,
	}
}

// Place runs the placement sequence:
//
//  1. create the order (cart contents resolve server-side)
//  2. write the receipt snapshot from the pre-placement cart
//  3. clear the remote cart
//  4. clear the local snapshot
//
// Failure at step 1 aborts everything: no snapshot, no clears, cart intact,
// so a retry is safe. Each attempt carries a fresh idempotency key so the
// order service can deduplicate a retried transient failure.
func (h *Handoff) Place(ctx context.Context, addressID string, address domain.Address, method domain.ShippingMethod, discount float64) (*domain.Receipt, error) {
	snapshot := h.local.Current()
	if snapshot.IsEmpty() {
		return nil, domain.ErrNothingToPlace
	}

	idempotencyKey := uuid.NewString()
	order, err := h.orders.PlaceOrder(ctx, addressID, idempotencyKey)
	if err != nil {
		return nil, err
	}
	h.log.Info("order placed",
		"order_id", order.ID,
		"idempotency_key", idempotencyKey,
		"total", order.TotalAmount,
	)

	rec := &domain.Receipt{
		OrderID:        order.ID,
		PlacedAt:       h.now(),
		Items:          snapshot.Items,
		Address:        address,
		ShippingMethod: method,
		PaymentMethod:  domain.PaymentMethodCashOnDelivery,
		Pricing:        pricing.Quote(snapshot.TotalPrice, discount),
	}
	if err := h.receipts.Put(ctx, rec); err != nil {
		// The order exists; losing the snapshot only degrades the
		// confirmation page, it must not block the clears.
		h.log.Error("failed to persist receipt snapshot", "order_id", order.ID, "error", err)
	}

	if err := h.carts.ClearCart(ctx, snapshot.ID); err != nil {
		// Also non-fatal: the server consumed the cart into the order and a
		// later refetch reconciles whatever state the clear left behind.
		h.log.Warn("remote cart clear failed after placement", "cart_id", snapshot.ID, "error", err)
	}

	h.local.ClearLocally()
	return rec, nil
}
