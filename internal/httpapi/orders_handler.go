package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mfetisov/storefront/internal/domain"
)

// OrderReader is the read side of the order service.
type OrderReader interface {
	FetchMyOrders(ctx context.Context) ([]domain.Order, error)
	FetchOrder(ctx context.Context, orderID string) (*domain.Order, error)
}

type OrdersHandler struct {
	orders OrderReader
}

func NewOrdersHandler(orders OrderReader) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.FetchMyOrders(r.Context())
	if err != nil {
		respondMappedError(w, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.FetchOrder(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		respondMappedError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}
