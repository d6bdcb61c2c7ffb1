// Package httpapi exposes the cart and checkout engine to the UI over HTTP:
// store reads, facade mutations, checkout step submits, and the confirmation
// and invoice views.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mfetisov/storefront/internal/placement"
	"github.com/mfetisov/storefront/internal/pricing"
)

type RouterConfig struct {
	Carts    CartGateway
	Orders   placement.OrderGateway
	OrderRds OrderReader
	Receipts ReceiptStoreFactory
	Identity Identity
	Coupons  pricing.CouponValidator
	Log      *slog.Logger
}

func NewRouter(cfg RouterConfig) http.Handler {
	sessions := NewSessions(cfg.Carts, cfg.Receipts)

	cartHandler := NewCartHandler(sessions)
	checkoutHandler := NewCheckoutHandler(sessions, cfg.Orders, cfg.Carts, cfg.Coupons, cfg.Log)
	confirmationHandler := NewConfirmationHandler(sessions)
	ordersHandler := NewOrdersHandler(cfg.OrderRds)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(AuthMiddleware(cfg.Identity))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Post("/items", cartHandler.AddItem)
			r.Patch("/items/{cartItemID}", cartHandler.UpdateItem)
			r.Delete("/items/{cartItemID}", cartHandler.RemoveItem)
			r.Delete("/", cartHandler.ClearCart)
		})

		r.Get("/shipping-methods", checkoutHandler.ShippingMethods)

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", checkoutHandler.Begin)
			r.Get("/", checkoutHandler.State)
			r.Post("/shipping", checkoutHandler.SubmitShipping)
			r.Post("/payment", checkoutHandler.SubmitPayment)
			r.Post("/back", checkoutHandler.Back)
			r.Post("/coupon", checkoutHandler.ApplyCoupon)
			r.Post("/place", checkoutHandler.Place)
		})

		r.Get("/confirmation", confirmationHandler.View)
		r.Get("/confirmation/invoice", confirmationHandler.Invoice)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", ordersHandler.List)
			r.Get("/{orderID}", ordersHandler.Get)
		})
	})

	return r
}
