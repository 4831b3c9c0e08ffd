package option

import (
	"github.com/ib-77/expressible/pkg/expr/attempt"
)

// Case pairs a condition with the transform applied when it holds.
type Case[T, R any] struct {
	Condition func(T) bool
	Value     func(T) R
}

func CaseOf[T, R any](condition func(T) bool, value func(T) R) Case[T, R] {
	return Case[T, R]{Condition: condition, Value: value}
}

// Default matches any value; place it last.
func Default[T, R any](value func(T) R) Case[T, R] {
	return Case[T, R]{Condition: func(T) bool { return true }, Value: value}
}

// Map applies fn to a defined value. A nil result becomes None.
func Map[T, R any](o Option[T], fn func(T) R) Option[R] {
	if !o.defined {
		return None[R]()
	}
	return Of(fn(o.value))
}

func FlatMap[T, R any](o Option[T], fn func(T) Option[R]) Option[R] {
	if !o.defined {
		return None[R]()
	}
	return fn(o.value)
}

func Flatten[T any](o Option[Option[T]]) Option[T] {
	if !o.defined {
		return None[T]()
	}
	return o.value
}

// Match returns the transform of the first case whose condition holds. An
// empty Option or no matching case yields None.
func Match[T, R any](o Option[T], cases ...Case[T, R]) Option[R] {
	if !o.defined {
		return None[R]()
	}

	for _, c := range cases {
		if c.Condition(o.value) {
			return Of(c.Value(o.value))
		}
	}
	return None[R]()
}

// Is narrows the value to R, yielding None when it is not an R.
func Is[R, T any](o Option[T]) Option[R] {
	if !o.defined {
		return None[R]()
	}

	r, ok := any(o.value).(R)
	if !ok {
		return None[R]()
	}
	return Of(r)
}

func When[T any](condition bool, value T) Option[T] {
	if !condition {
		return None[T]()
	}
	return Of(value)
}

func WhenFunc[T any](condition bool, supplier func() T) Option[T] {
	if !condition {
		return None[T]()
	}
	return Of(supplier())
}

func FlatWhen[T any](condition bool, value Option[T]) Option[T] {
	if !condition {
		return None[T]()
	}
	return value
}

func FlatWhenFunc[T any](condition bool, supplier func() Option[T]) Option[T] {
	if !condition {
		return None[T]()
	}
	return supplier()
}

// Attempt calls supplier; a failure accepted by category yields None, any
// other failure panics with *expr.AttemptFailedError.
func Attempt[T any](category attempt.Category, supplier func() (T, error)) Option[T] {
	v, err := attempt.Supply(category, supplier)
	if err != nil {
		return None[T]()
	}
	return Of(v)
}
