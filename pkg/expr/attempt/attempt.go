package attempt

import (
	"errors"
	"fmt"

	"github.com/ib-77/expressible/pkg/expr"
)

// Category reports whether err belongs to the failures a caller expects.
type Category func(err error) bool

// Any accepts every failure.
func Any() Category {
	return func(err error) bool {
		return err != nil
	}
}

// Is accepts failures matching any of targets under errors.Is.
func Is(targets ...error) Category {
	return func(err error) bool {
		for _, target := range targets {
			if errors.Is(err, target) {
				return true
			}
		}
		return false
	}
}

// As accepts failures that errors.As can extract as E.
func As[E error]() Category {
	return func(err error) bool {
		var target E
		return errors.As(err, &target)
	}
}

// Not inverts c.
func Not(c Category) Category {
	return func(err error) bool {
		return err != nil && !c(err)
	}
}

// Supply calls supplier and returns its value. A failure accepted by category
// is returned as the error; any other failure panics with
// *expr.AttemptFailedError.
func Supply[V any](category Category, supplier func() (V, error)) (V, error) {
	v, err := call(supplier)
	if err == nil {
		return v, nil
	}

	if category != nil && category(err) {
		var zero V
		return zero, err
	}

	panic(&expr.AttemptFailedError{Cause: err})
}

// Run is Supply for operations without a value.
func Run(category Category, runnable func() error) error {
	_, err := Supply(category, func() (expr.Blank, error) {
		return expr.BlankValue, runnable()
	})
	return err
}

func call[V any](supplier func() (V, error)) (v V, err error) {
	defer func() {
		if r := recover(); r != nil {
			if failed, ok := r.(*expr.AttemptFailedError); ok {
				panic(failed)
			}
			if e, ok := r.(error); ok {
				// contract violations are never categorized
				if isContractViolation(e) {
					panic(e)
				}
				err = e
			} else {
				err = fmt.Errorf("panic: %v", r)
			}
		}
	}()

	return supplier()
}

func isContractViolation(err error) bool {
	return errors.Is(err, expr.ErrIllegalAccess) ||
		errors.Is(err, expr.ErrInvalidState) ||
		errors.Is(err, expr.ErrReentrantUpdate)
}
