// Package confirmation renders the post-order success view and the printable
// invoice. Everything is derived from the receipt snapshot; the package holds
// no state of its own.
package confirmation

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/mfetisov/storefront/internal/domain"
	"github.com/mfetisov/storefront/internal/receipt"
)

// View is the confirmation screen model. Degraded means no snapshot was
// found (direct navigation without a placed order): the page still renders a
// success shell, just without item and price details.
type View struct {
	Degraded          bool            `json:"degraded"`
	Receipt           *domain.Receipt `json:"receipt,omitempty"`
	EstimatedDelivery *time.Time      `json:"estimatedDelivery,omitempty"`
}

// Build reads the snapshot once. Absence is not an error.
func Build(ctx context.Context, store receipt.Store, now time.Time) (*View, error) {
	rec, err := store.Get(ctx)
	if errors.Is(err, receipt.ErrNoReceipt) {
		return &View{Degraded: true}, nil
	}
	if err != nil {
		return nil, err
	}

	view := &View{Receipt: rec}
	if days, ok := upperBoundDays(rec.ShippingMethod.Days); ok {
		eta := now.AddDate(0, 0, days)
		view.EstimatedDelivery = &eta
	}
	return view, nil
}

// upperBoundDays parses the upper bound out of a human-readable window such
// as "3-5 days" or "1-2 business days". The largest number wins.
func upperBoundDays(window string) (int, bool) {
	max, found := 0, false
	for _, field := range strings.FieldsFunc(window, func(r rune) bool {
		return r < '0' || r > '9'
	}) {
		n, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		if !found || n > max {
			max, found = n, true
		}
	}
	return max, found
}
