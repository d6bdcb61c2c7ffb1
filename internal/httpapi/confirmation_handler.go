package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/mfetisov/storefront/internal/confirmation"
	"github.com/mfetisov/storefront/internal/receipt"
)

type ConfirmationHandler struct {
	sessions *Sessions
	now      func() time.Time
}

func NewConfirmationHandler(sessions *Sessions) *ConfirmationHandler {
	return &ConfirmationHandler{sessions: sessions, now: time.Now}
}

// View renders the confirmation model. Without a stored receipt it degrades
// to a bare success shell rather than failing.
func (h *ConfirmationHandler) View(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.For(userID(r.Context()))
	view, err := confirmation.Build(r.Context(), sess.Receipts, h.now())
	if err != nil {
		respondMappedError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// Invoice produces the printable plain-text document on demand.
func (h *ConfirmationHandler) Invoice(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.For(userID(r.Context()))
	rec, err := sess.Receipts.Get(r.Context())
	if errors.Is(err, receipt.ErrNoReceipt) {
		respondError(w, http.StatusNotFound, "no_receipt", "no order has been placed")
		return
	}
	if err != nil {
		respondMappedError(w, err)
		return
	}

	doc, err := confirmation.BuildInvoice(rec, h.now()).Render()
	if err != nil {
		respondMappedError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}
