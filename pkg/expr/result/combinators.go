package result

import (
	"errors"

	"github.com/ib-77/expressible/pkg/expr"
	"github.com/ib-77/expressible/pkg/expr/attempt"
	"github.com/ib-77/expressible/pkg/expr/option"
)

func When[V, E any](condition bool, value V, err E) Result[V, E] {
	if condition {
		return Ok[V, E](value)
	}
	return Error[V](err)
}

// WhenFunc only calls the supplier of the selected variant.
func WhenFunc[V, E any](condition bool, value func() V, err func() E) Result[V, E] {
	if condition {
		return Ok[V, E](value())
	}
	return Error[V](err())
}

// FromTuple converts a Go (value, error) pair.
func FromTuple[V any](value V, err error) Result[V, error] {
	if err != nil {
		return Error[V](err)
	}
	return Ok[V, error](value)
}

// FromOption returns Ok with the value of o, or Err(err) when o is empty.
func FromOption[V, E any](o option.Option[V], err E) Result[V, E] {
	if v, ok := o.Unwrap(); ok {
		return Ok[V, E](v)
	}
	return Error[V](err)
}

// FromOptionFunc is FromOption with a lazily built error.
func FromOptionFunc[V, E any](o option.Option[V], err func() E) Result[V, E] {
	if v, ok := o.Unwrap(); ok {
		return Ok[V, E](v)
	}
	return Error[V](err())
}

func Map[V, R, E any](r Result[V, E], fn func(V) R) Result[R, E] {
	if !r.ok {
		return ProjectToError[R](r)
	}
	return Ok[R, E](fn(r.value))
}

func MapErr[V, E, R any](r Result[V, E], fn func(E) R) Result[V, R] {
	if r.ok {
		return ProjectToValue[R](r)
	}
	return Error[V](fn(r.err))
}

func MapToBlank[V, E any](r Result[V, E]) Result[expr.Blank, E] {
	return Map(r, func(V) expr.Blank { return expr.BlankValue })
}

func MapErrToBlank[V, E any](r Result[V, E]) Result[V, expr.Blank] {
	return MapErr(r, func(E) expr.Blank { return expr.BlankValue })
}

// FlatMap chains a failable step. An Err short-circuits without calling fn.
func FlatMap[V, R, E any](r Result[V, E], fn func(V) Result[R, E]) Result[R, E] {
	if !r.ok {
		return ProjectToError[R](r)
	}
	return fn(r.value)
}

// FlatMapErr chains a recovery step over the error slot.
func FlatMapErr[V, E, R any](r Result[V, E], fn func(E) Result[V, R]) Result[V, R] {
	if r.ok {
		return ProjectToValue[R](r)
	}
	return fn(r.err)
}

// Fold collapses both variants into a common type.
func Fold[V, E, C any](r Result[V, E], valueFn func(V) C, errorFn func(E) C) C {
	if r.ok {
		return valueFn(r.value)
	}
	return errorFn(r.err)
}

func Swap[V, E any](r Result[V, E]) Result[E, V] {
	if r.ok {
		return Error[E](r.value)
	}
	return Ok[E, V](r.err)
}

// Merge combines two Ok values; the first Err encountered wins.
func Merge[V, S, R, E any](first Result[V, E], second Result[S, E], fn func(V, S) R) Result[R, E] {
	return FlatMap(first, func(v V) Result[R, E] {
		return Map(second, func(s S) R { return fn(v, s) })
	})
}

// ProjectToValue re-types the error slot of an Ok. It panics with
// expr.ErrIllegalAccess on Err.
func ProjectToValue[R, V, E any](r Result[V, E]) Result[V, R] {
	if !r.ok {
		expr.IllegalAccess("cannot project an error result to its value")
	}
	return Ok[V, R](r.value)
}

// ProjectToError re-types the value slot of an Err. It panics with
// expr.ErrIllegalAccess on Ok.
func ProjectToError[R, V, E any](r Result[V, E]) Result[R, E] {
	if r.ok {
		expr.IllegalAccess("cannot project a successful result to its error")
	}
	return Error[R](r.err)
}

// Is narrows an Ok value to R; a value of another type becomes Err(errorFn(v)).
func Is[R, V, E any](r Result[V, E], errorFn func(V) E) Result[R, E] {
	if !r.ok {
		return ProjectToError[R](r)
	}
	if narrowed, ok := any(r.value).(R); ok {
		return Ok[R, E](narrowed)
	}
	return Error[R](errorFn(r.value))
}

// SupplyThrowing calls supplier; failures accepted by category become Err,
// any other failure panics with *expr.AttemptFailedError.
func SupplyThrowing[V any](category attempt.Category, supplier func() (V, error)) Result[V, error] {
	v, err := attempt.Supply(category, supplier)
	return FromTuple(v, err)
}

func RunThrowing(category attempt.Category, runnable func() error) Result[expr.Blank, error] {
	if err := attempt.Run(category, runnable); err != nil {
		return Error[expr.Blank](err)
	}
	return OkBlank[error]()
}

// Attempt is SupplyThrowing that accepts every failure as expected.
func Attempt[V any](supplier func() (V, error)) Result[V, error] {
	return SupplyThrowing(attempt.Any(), supplier)
}

// AttemptAs accepts failures that errors.As can extract as E and returns
// them typed.
func AttemptAs[V any, E error](supplier func() (V, error)) Result[V, E] {
	v, err := attempt.Supply(attempt.As[E](), supplier)
	if err != nil {
		var target E
		errors.As(err, &target)
		return Error[V](target)
	}
	return Ok[V, E](v)
}
