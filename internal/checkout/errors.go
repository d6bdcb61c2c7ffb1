package checkout

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart guards checkout entry: a cart with zero lines never
	// reaches step 1, the caller offers a continue-shopping exit instead.
	ErrEmptyCart = errors.New("cart is empty, nothing to check out")

	// ErrIllegalTransition is returned when a submit or back call does not
	// apply to the current step.
	ErrIllegalTransition = errors.New("illegal checkout step transition")
)

// ValidationError is a client-side check failure. It blocks the step
// transition and never reaches the network.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}
