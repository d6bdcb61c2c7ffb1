package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mfetisov/storefront/internal/checkout"
	"github.com/mfetisov/storefront/internal/domain"
	"github.com/mfetisov/storefront/internal/gateway"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// respondMappedError converts the engine's error taxonomy to HTTP. The UI
// maps codes to human copy; not_authenticated doubles as the
// redirect-to-login signal.
func respondMappedError(w http.ResponseWriter, err error) {
	var (
		validationErr *checkout.ValidationError
		networkErr    *gateway.NetworkError
		serverErr     *gateway.ServerError
	)
	switch {
	case errors.Is(err, gateway.ErrNotAuthenticated):
		respondError(w, http.StatusUnauthorized, "not_authenticated", "sign in to continue")
	case errors.As(err, &validationErr):
		respondError(w, http.StatusBadRequest, "validation_error", validationErr.Error())
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusConflict, "cart_empty", "your cart is empty, continue shopping first")
	case errors.Is(err, checkout.ErrIllegalTransition):
		respondError(w, http.StatusConflict, "illegal_step", "that action is not available at this checkout step")
	case errors.Is(err, domain.ErrNothingToPlace):
		respondError(w, http.StatusConflict, "cart_empty", "your cart is empty, continue shopping first")
	case errors.As(err, &networkErr):
		respondError(w, http.StatusBadGateway, "network_error", "could not reach the store, check your connection and try again")
	case errors.As(err, &serverErr):
		respondError(w, http.StatusBadGateway, "upstream_error", serverErr.Message)
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}
