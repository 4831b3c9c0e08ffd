package completable

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/eapache/queue"
	"github.com/google/uuid"
	"github.com/ib-77/expressible/pkg/expr"
	"github.com/ib-77/expressible/pkg/expr/option"
)

var _ expr.Publisher[*Completable[int], int] = (*Completable[int])(nil)

// Completable is built with Create or Completed. The zero value is a usable
// pending cell without an ID.
type Completable[T any] struct {
	id        uuid.UUID
	createdAt time.Time

	mu          sync.Mutex
	value       T
	ready       bool
	subscribers *queue.Queue // of expr.Subscriber[T]; nil until first queued and once ready
}

func Create[T any]() *Completable[T] {
	return &Completable[T]{
		id:          uuid.New(),
		createdAt:   time.Now().UTC(),
		subscribers: queue.New(),
	}
}

func Completed[T any](value T) *Completable[T] {
	return Create[T]().Complete(value)
}

// WithCompleted wraps an already completed cell in an Option.
func WithCompleted[T any](value T) option.Option[*Completable[T]] {
	return option.Of(Completed(value))
}

func (c *Completable[T]) ID() uuid.UUID {
	return c.id
}

// CreatedAt time creation (UTC)
func (c *Completable[T]) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Completable[T]) IsReady() bool {
	_, ready := c.load()
	return ready
}

func (c *Completable[T]) IsUnprepared() bool {
	return !c.IsReady()
}

func (c *Completable[T]) load() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.ready
}

// Complete moves a pending cell to completed and delivers value to the
// queued subscribers in subscription order. It is a no-op on a completed
// cell. A nil value panics with expr.ErrInvalidState.
func (c *Completable[T]) Complete(value T) *Completable[T] {
	if expr.IsNil(value) && c.IsUnprepared() {
		expr.InvalidState("completable does not support nil values")
	}

	c.mu.Lock()
	if c.ready {
		c.mu.Unlock()
		return c
	}
	c.ready = true
	c.value = value
	pending := c.subscribers
	c.subscribers = nil
	c.mu.Unlock()

	// delivery runs unlocked so subscribers can read or subscribe to c
	for pending != nil && pending.Length() > 0 {
		pending.Remove().(expr.Subscriber[T]).OnComplete(value)
	}

	return c
}

// Subscribe queues subscriber, or delivers to it before returning when the
// cell is already completed. It may be called from any goroutine.
func (c *Completable[T]) Subscribe(subscriber expr.Subscriber[T]) *Completable[T] {
	c.mu.Lock()
	if !c.ready {
		if c.subscribers == nil {
			c.subscribers = queue.New()
		}
		c.subscribers.Add(subscriber)
		c.mu.Unlock()
		return c
	}
	value := c.value
	c.mu.Unlock()

	subscriber.OnComplete(value)
	return c
}

func (c *Completable[T]) Then(consumer func(T)) *Completable[T] {
	return c.Subscribe(expr.SubscriberFunc[T](consumer))
}

// Get returns the value and panics with expr.ErrIllegalAccess while pending.
func (c *Completable[T]) Get() T {
	value, ready := c.load()
	if !ready {
		expr.IllegalAccess("completable has not been completed")
	}
	return value
}

// OrThrow returns the value, or the error built by failure while pending.
func (c *Completable[T]) OrThrow(failure func() error) (T, error) {
	value, ready := c.load()
	if !ready {
		var zero T
		return zero, failure()
	}
	return value, nil
}

func (c *Completable[T]) ToOption() option.Option[T] {
	value, ready := c.load()
	if !ready {
		return option.None[T]()
	}
	return option.Of(value)
}

// ToChan returns a channel that receives the value once the cell completes
// and is closed afterwards. The channel is buffered, so Complete never
// blocks on it. ToChan and Complete may run on different goroutines.
func (c *Completable[T]) ToChan() <-chan T {
	out := make(chan T, 1)
	c.Then(func(v T) {
		out <- v
		close(out)
	})
	return out
}

// Await blocks until the cell completes or ctx is done. It is meant to be
// called on a goroutine other than the one that calls Complete.
func (c *Completable[T]) Await(ctx context.Context) (T, error) {
	ch := c.ToChan()

	select {
	case v := <-ch:
		return v, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Future returns a view of c that can read and subscribe but not complete.
func (c *Completable[T]) Future() Future[T] {
	return Future[T]{c: c}
}

func (c *Completable[T]) String() string {
	value, ready := c.load()
	if !ready {
		return fmt.Sprintf("Completable{%s PENDING}", c.id)
	}
	return fmt.Sprintf("Completable{%s '%v'}", c.id, value)
}

// ThenApply returns a cell completed with fn(value) once c completes.
func ThenApply[T, R any](c *Completable[T], fn func(T) R) *Completable[R] {
	mapped := Create[R]()
	c.Then(func(v T) {
		mapped.Complete(fn(v))
	})
	return mapped
}

// ThenCompose returns a cell completed with the value of the cell fn
// returns, once both have completed.
func ThenCompose[T, R any](c *Completable[T], fn func(T) *Completable[R]) *Completable[R] {
	composed := Create[R]()
	c.Then(func(v T) {
		fn(v).Then(func(r R) {
			composed.Complete(r)
		})
	})
	return composed
}
