package stream

import (
	"iter"

	"github.com/ib-77/expressible/pkg/expr/option"
	"github.com/ib-77/expressible/pkg/expr/result"
)

// MapOpt yields the values of the defined Options fn returns.
func MapOpt[T, R any](seq iter.Seq[T], fn func(T) option.Option[R]) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if r, ok := fn(v).Unwrap(); ok {
				if !yield(r) {
					return
				}
			}
		}
	}
}

// FilterToResult returns the first error check reports, or Ok with every
// element when none was rejected. Iteration stops at the first error.
func FilterToResult[T, E any](seq iter.Seq[T], check func(T) option.Option[E]) result.Result[[]T, E] {
	collected := make([]T, 0)
	for v := range seq {
		if e, failed := check(v).Unwrap(); failed {
			return result.Error[[]T](e)
		}
		collected = append(collected, v)
	}
	return result.Ok[[]T, E](collected)
}

// Search returns the first Ok produced by fn and stops there. When no
// element succeeds it returns every error in encounter order, so it should
// not be used on unbounded sequences.
func Search[T, R, E any](seq iter.Seq[T], fn func(T) result.Result[R, E]) result.Result[R, []E] {
	errs := make([]E, 0)
	for v := range seq {
		r := fn(v)
		if r.IsOk() {
			return result.ProjectToValue[[]E](r)
		}
		errs = append(errs, r.GetError())
	}
	return result.Error[R](errs)
}

func Head[T any](seq iter.Seq[T]) option.Option[T] {
	for v := range seq {
		return option.Of(v)
	}
	return option.None[T]()
}

func Find[T any](seq iter.Seq[T], predicate func(T) bool) option.Option[T] {
	for v := range seq {
		if predicate(v) {
			return option.Of(v)
		}
	}
	return option.None[T]()
}
