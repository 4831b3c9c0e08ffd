package option

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/ib-77/expressible/pkg/expr"
)

// Option is either Some(value) or None. The zero value is None.
type Option[T any] struct {
	value   T
	defined bool
}

// None returns the canonical empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Of returns Some(value), or None when value is nil.
func Of[T any](value T) Option[T] {
	if expr.IsNil(value) {
		return None[T]()
	}
	return Option[T]{value: value, defined: true}
}

// Some is an alias of Of; Some(nil) is None.
func Some[T any](value T) Option[T] {
	return Of(value)
}

// OfPtr dereferences p, treating a nil pointer as None.
func OfPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Of(*p)
}

// OfOk bridges the comma-ok idiom: v, ok := m[k]; option.OfOk(v, ok).
func OfOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Of(value)
}

func (o Option[T]) IsDefined() bool {
	return o.defined
}

func (o Option[T]) IsPresent() bool {
	return o.defined
}

func (o Option[T]) IsEmpty() bool {
	return !o.defined
}

// Get returns the value and panics with expr.ErrIllegalAccess on None.
func (o Option[T]) Get() T {
	if !o.defined {
		expr.IllegalAccess("option is empty")
	}
	return o.value
}

// Unwrap returns the value and whether it is present.
func (o Option[T]) Unwrap() (T, bool) {
	return o.value, o.defined
}

// GetOrZero returns the value, or the zero value of T on None.
func (o Option[T]) GetOrZero() T {
	return o.value
}

func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.defined && predicate(o.value) {
		return o
	}
	return None[T]()
}

func (o Option[T]) FilterNot(predicate func(T) bool) Option[T] {
	return o.Filter(func(v T) bool { return !predicate(v) })
}

func (o Option[T]) Peek(consumer func(T)) Option[T] {
	if o.defined {
		consumer(o.value)
	}
	return o
}

func (o Option[T]) OnEmpty(action func()) Option[T] {
	if !o.defined {
		action()
	}
	return o
}

// OrElse substitutes Of(value) when empty.
func (o Option[T]) OrElse(value T) Option[T] {
	if o.defined {
		return o
	}
	return Of(value)
}

func (o Option[T]) OrElseOption(other Option[T]) Option[T] {
	if o.defined {
		return o
	}
	return other
}

// OrElseFunc defers the substitute to supplier, which is only called when empty.
func (o Option[T]) OrElseFunc(supplier func() Option[T]) Option[T] {
	if o.defined {
		return o
	}
	return supplier()
}

func (o Option[T]) OrElseGet(value T) T {
	if o.defined {
		return o.value
	}
	return value
}

func (o Option[T]) OrElseGetFunc(supplier func() T) T {
	if o.defined {
		return o.value
	}
	return supplier()
}

// OrThrow returns the value, or the error built by failure when empty.
func (o Option[T]) OrThrow(failure func() error) (T, error) {
	if o.defined {
		return o.value, nil
	}
	var zero T
	return zero, failure()
}

// All yields the value once when defined. The sequence can be ranged over
// any number of times.
func (o Option[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.defined {
			yield(o.value)
		}
	}
}

func (o Option[T]) ToSlice() []T {
	if !o.defined {
		return []T{}
	}
	return []T{o.value}
}

// Equal compares structurally, including payloads that are not comparable
// with ==.
func (o Option[T]) Equal(other Option[T]) bool {
	if o.defined != other.defined {
		return false
	}
	return !o.defined || reflect.DeepEqual(o.value, other.value)
}

func (o Option[T]) String() string {
	if !o.defined {
		return "Option{EMPTY}"
	}
	return fmt.Sprintf("Option{'%v'}", o.value)
}
