package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mfetisov/storefront/internal/domain"
)

type CartHandler struct {
	sessions *Sessions
}

func NewCartHandler(sessions *Sessions) *CartHandler {
	return &CartHandler{sessions: sessions}
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

type cartResponse struct {
	Cart      *domain.Cart `json:"cart"`
	ItemCount int          `json:"itemCount"`
	Stale     bool         `json:"stale,omitempty"`
}

func (h *CartHandler) session(r *http.Request) *Session {
	return h.sessions.For(userID(r.Context()))
}

func (h *CartHandler) respondCart(w http.ResponseWriter, sess *Session, stale bool) {
	respondJSON(w, http.StatusOK, cartResponse{
		Cart:      sess.Store.Current(),
		ItemCount: sess.Store.ItemCount(),
		Stale:     stale,
	})
}

// GetCart refetches and returns the snapshot. When the refetch fails but a
// previous snapshot exists, the stale snapshot is served instead of an error:
// stale-but-present beats an empty flash.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	if err := sess.Store.Refetch(r.Context()); err != nil {
		if sess.Store.Current() == nil {
			respondMappedError(w, err)
			return
		}
		h.respondCart(w, sess, true)
		return
	}
	h.respondCart(w, sess, false)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "productId is required")
		return
	}
	if req.Quantity < 1 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be a positive integer")
		return
	}

	sess := h.session(r)
	if err := sess.Ops.Add(r.Context(), req.ProductID, req.Quantity); err != nil {
		respondMappedError(w, err)
		return
	}
	h.respondCart(w, sess, false)
}

// UpdateItem accepts any integer quantity; zero and below route to removal
// inside the facade.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	cartItemID := chi.URLParam(r, "cartItemID")
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	sess := h.session(r)
	if err := sess.Ops.UpdateQuantity(r.Context(), cartItemID, req.Quantity); err != nil {
		respondMappedError(w, err)
		return
	}
	h.respondCart(w, sess, false)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	if err := sess.Ops.Remove(r.Context(), chi.URLParam(r, "cartItemID")); err != nil {
		respondMappedError(w, err)
		return
	}
	h.respondCart(w, sess, false)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	if err := sess.Ops.Clear(r.Context()); err != nil {
		respondMappedError(w, err)
		return
	}
	h.respondCart(w, sess, false)
}
