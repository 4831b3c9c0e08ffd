package reactive

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/ib-77/expressible/pkg/expr"
	"github.com/ib-77/expressible/pkg/expr/option"
)

var _ expr.Publisher[*Reference[int], int] = (*Reference[int])(nil)

// Reference holds a value that is never nil. It has no exported setter:
// owners update it through MutableReference or SetValue.
type Reference[T any] struct {
	id          uuid.UUID
	value       T
	subscribers []expr.DetailedSubscriber[T]
	config      config
	notifying   bool
}

// NewReference panics with expr.ErrInvalidState when value is nil.
func NewReference[T any](value T, opts ...ReferenceOption) *Reference[T] {
	if expr.IsNil(value) {
		expr.InvalidState("reference does not support nil values")
	}

	return &Reference[T]{
		id:     uuid.New(),
		value:  value,
		config: newConfig(opts),
	}
}

// SetValue replaces the value of ref. It bypasses the read-only surface of
// Reference and must not be exposed to consumers of ref.
func SetValue[T any](ref *Reference[T], value T) {
	ref.set(value)
}

func (r *Reference[T]) set(newValue T) {
	if expr.IsNil(newValue) {
		expr.InvalidState("reference does not support nil values")
	}

	if r.config.guarded {
		if r.notifying {
			panic(fmt.Errorf("%w: reference %s updated while notifying subscribers",
				expr.ErrReentrantUpdate, r.id))
		}
		r.notifying = true
		defer func() { r.notifying = false }()
	}

	oldValue := r.value
	r.value = newValue
	r.notifySubscribers(oldValue, newValue)
}

// subscribers added during a round are first notified on the next change
func (r *Reference[T]) notifySubscribers(oldValue, newValue T) {
	for _, subscriber := range r.subscribers {
		subscriber.OnChange(oldValue, newValue)
	}
}

func (r *Reference[T]) ID() uuid.UUID {
	return r.id
}

func (r *Reference[T]) Get() T {
	return r.value
}

func (r *Reference[T]) Peek(consumer func(T)) *Reference[T] {
	consumer(r.value)
	return r
}

// ToOption is always Some.
func (r *Reference[T]) ToOption() option.Option[T] {
	return option.Of(r.value)
}

// Subscribe registers subscriber for every future replacement.
func (r *Reference[T]) Subscribe(subscriber expr.Subscriber[T]) *Reference[T] {
	return r.SubscribeDetailed(newValueOnly(subscriber), false)
}

// SubscribeImmediately also delivers the current value before returning.
func (r *Reference[T]) SubscribeImmediately(subscriber expr.Subscriber[T]) *Reference[T] {
	return r.SubscribeDetailed(newValueOnly(subscriber), true)
}

// SubscribeDetailed registers subscriber for (old, new) pairs. With
// immediately set, it first receives (current, current).
func (r *Reference[T]) SubscribeDetailed(subscriber expr.DetailedSubscriber[T], immediately bool) *Reference[T] {
	if immediately {
		subscriber.OnChange(r.value, r.value)
	}
	r.subscribers = append(r.subscribers, subscriber)
	return r
}

func (r *Reference[T]) String() string {
	return fmt.Sprintf("Reference{%s '%v'}", r.id, r.value)
}

func (r *Reference[T]) subscribeChange(onChange func()) {
	r.SubscribeDetailed(expr.DetailedSubscriberFunc[T](func(_, _ T) {
		onChange()
	}), false)
}

// Apply returns fn applied to the current value of r.
func Apply[T, R any](r *Reference[T], fn func(T) R) R {
	return fn(r.Get())
}

func newValueOnly[T any](subscriber expr.Subscriber[T]) expr.DetailedSubscriber[T] {
	return expr.DetailedSubscriberFunc[T](func(_, newValue T) {
		subscriber.OnComplete(newValue)
	})
}
