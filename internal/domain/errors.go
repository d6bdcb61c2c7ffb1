package domain

import "errors"

// ErrNothingToPlace means placement was invoked without a local cart
// snapshot to freeze. The checkout entry guard makes this unreachable in the
// normal flow; it exists so the handoff fails closed instead of writing an
// empty receipt.
var ErrNothingToPlace = errors.New("no cart snapshot to place an order from")
