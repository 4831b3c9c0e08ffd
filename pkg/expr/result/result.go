package result

import (
	"fmt"
	"reflect"

	"github.com/ib-77/expressible/pkg/expr"
	"github.com/ib-77/expressible/pkg/expr/option"
)

type State int

const (
	StateErr State = iota
	StateOk
)

func (s State) String() string {
	if s == StateOk {
		return "OK"
	}
	return "ERROR"
}

// Result holds either a value (Ok) or an error (Err).
type Result[V, E any] struct {
	value V
	err   E
	ok    bool
}

func Ok[V, E any](value V) Result[V, E] {
	return Result[V, E]{value: value, ok: true}
}

func Error[V, E any](err E) Result[V, E] {
	return Result[V, E]{err: err}
}

// OkBlank is Ok for operations that produce nothing worth returning.
func OkBlank[E any]() Result[expr.Blank, E] {
	return Ok[expr.Blank, E](expr.BlankValue)
}

// ErrorBlank is Error for failures that carry no detail.
func ErrorBlank[V any]() Result[V, expr.Blank] {
	return Error[V](expr.BlankValue)
}

func (r Result[V, E]) IsOk() bool {
	return r.ok
}

func (r Result[V, E]) IsErr() bool {
	return !r.ok
}

func (r Result[V, E]) State() State {
	if r.ok {
		return StateOk
	}
	return StateErr
}

// Get returns the value and panics with expr.ErrIllegalAccess on Err.
func (r Result[V, E]) Get() V {
	if !r.ok {
		expr.IllegalAccess("result contains error - cannot get the success value")
	}
	return r.value
}

// GetError returns the error and panics with expr.ErrIllegalAccess on Ok.
func (r Result[V, E]) GetError() E {
	if r.ok {
		expr.IllegalAccess("result completed successfully - cannot get the error value")
	}
	return r.err
}

// Unwrap returns both slots and whether the Result is Ok. The unpopulated
// slot holds its zero value.
func (r Result[V, E]) Unwrap() (V, E, bool) {
	return r.value, r.err, r.ok
}

// OrZero returns the value, or the zero V on Err.
func (r Result[V, E]) OrZero() V {
	return r.value
}

// Any returns whichever slot is populated.
func (r Result[V, E]) Any() any {
	if r.ok {
		return r.value
	}
	return r.err
}

// Filter turns an Ok whose value fails predicate into Err(errorFn(value)).
func (r Result[V, E]) Filter(predicate func(V) bool, errorFn func(V) E) Result[V, E] {
	if r.ok && !predicate(r.value) {
		return Error[V](errorFn(r.value))
	}
	return r
}

func (r Result[V, E]) FilterNot(predicate func(V) bool, errorFn func(V) E) Result[V, E] {
	return r.Filter(func(v V) bool { return !predicate(v) }, errorFn)
}

// FilterFunc runs check on an Ok value; a returned error turns it into Err.
func (r Result[V, E]) FilterFunc(check func(V) option.Option[E]) Result[V, E] {
	if !r.ok {
		return r
	}
	if e, failed := check(r.value).Unwrap(); failed {
		return Error[V](e)
	}
	return r
}

func (r Result[V, E]) Matches(condition func(V) bool) bool {
	return r.ok && condition(r.value)
}

func (r Result[V, E]) Peek(consumer func(V)) Result[V, E] {
	if r.ok {
		consumer(r.value)
	}
	return r
}

func (r Result[V, E]) OnError(consumer func(E)) Result[V, E] {
	if !r.ok {
		consumer(r.err)
	}
	return r
}

// Consume hands whichever slot is populated to its consumer.
func (r Result[V, E]) Consume(valueConsumer func(V), errorConsumer func(E)) Result[V, E] {
	return r.Peek(valueConsumer).OnError(errorConsumer)
}

func (r Result[V, E]) OrElse(fn func(E) Result[V, E]) Result[V, E] {
	if r.ok {
		return r
	}
	return fn(r.err)
}

func (r Result[V, E]) OrElseGet(fn func(E) V) V {
	if r.ok {
		return r.value
	}
	return fn(r.err)
}

// OrThrow returns the value, or the error fn builds from E.
func (r Result[V, E]) OrThrow(fn func(E) error) (V, error) {
	if r.ok {
		return r.value, nil
	}
	var zero V
	return zero, fn(r.err)
}

func (r Result[V, E]) ToOption() option.Option[V] {
	if !r.ok {
		return option.None[V]()
	}
	return option.Of(r.value)
}

func (r Result[V, E]) ErrorToOption() option.Option[E] {
	if r.ok {
		return option.None[E]()
	}
	return option.Of(r.err)
}

// Equal compares the populated slot structurally.
func (r Result[V, E]) Equal(other Result[V, E]) bool {
	if r.ok != other.ok {
		return false
	}
	if r.ok {
		return reflect.DeepEqual(r.value, other.value)
	}
	return reflect.DeepEqual(r.err, other.err)
}

func (r Result[V, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Result{VALUE=%v}", r.value)
	}
	return fmt.Sprintf("Result{ERR=%v}", r.err)
}
