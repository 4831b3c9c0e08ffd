package completable

import (
	"context"

	"github.com/google/uuid"
	"github.com/ib-77/expressible/pkg/expr"
	"github.com/ib-77/expressible/pkg/expr/option"
)

// Future is the read and subscribe side of a Completable. Hand it out to
// code that consumes the value so only the owner can complete the cell.
type Future[T any] struct {
	c *Completable[T]
}

func (f Future[T]) ID() uuid.UUID {
	return f.c.ID()
}

func (f Future[T]) IsReady() bool {
	return f.c.IsReady()
}

func (f Future[T]) Subscribe(subscriber expr.Subscriber[T]) Future[T] {
	f.c.Subscribe(subscriber)
	return f
}

func (f Future[T]) Then(consumer func(T)) Future[T] {
	f.c.Then(consumer)
	return f
}

func (f Future[T]) Get() T {
	return f.c.Get()
}

func (f Future[T]) OrThrow(failure func() error) (T, error) {
	return f.c.OrThrow(failure)
}

func (f Future[T]) ToOption() option.Option[T] {
	return f.c.ToOption()
}

func (f Future[T]) ToChan() <-chan T {
	return f.c.ToChan()
}

func (f Future[T]) Await(ctx context.Context) (T, error) {
	return f.c.Await(ctx)
}

func (f Future[T]) String() string {
	return f.c.String()
}

// Apply is ThenApply over a Future.
func Apply[T, R any](f Future[T], fn func(T) R) Future[R] {
	return ThenApply(f.c, fn).Future()
}
