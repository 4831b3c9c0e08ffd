package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalAccess is carried by panics raised when a terminal read hits the
	// variant that does not hold the requested slot.
	ErrIllegalAccess = errors.New("illegal access")
	// ErrInvalidState is carried by panics raised when a constructor invariant
	// is violated, e.g. nil handed to a cell that forbids it.
	ErrInvalidState = errors.New("invalid state")
	// ErrReentrantUpdate is carried by panics raised by guarded references
	// when a subscriber updates the reference it is being notified by.
	ErrReentrantUpdate = errors.New("reentrant update")
)

// AttemptFailedError wraps a failure that fell outside the category an
// attempt declared as expected.
type AttemptFailedError struct {
	Cause error
}

func (e *AttemptFailedError) Error() string {
	return fmt.Sprintf("attempt failed: %v", e.Cause)
}

func (e *AttemptFailedError) Unwrap() error {
	return e.Cause
}

// IllegalAccess panics with ErrIllegalAccess wrapped in msg.
func IllegalAccess(msg string) {
	panic(fmt.Errorf("%w: %s", ErrIllegalAccess, msg))
}

// InvalidState panics with ErrInvalidState wrapped in msg.
func InvalidState(msg string) {
	panic(fmt.Errorf("%w: %s", ErrInvalidState, msg))
}
