package expr

//go:generate mockgen -source inter.go -destination inter_mocks.go -package expr

// Subscriber receives a delivered value.
type Subscriber[T any] interface {
	// OnComplete is called with the completed or replaced value
	OnComplete(value T)
}

// SubscriberFunc adapts a plain function to Subscriber.
type SubscriberFunc[T any] func(value T)

func (f SubscriberFunc[T]) OnComplete(value T) {
	f(value)
}

// DetailedSubscriber receives both sides of a value replacement.
type DetailedSubscriber[T any] interface {
	// OnChange is called with the replaced and the new value
	OnChange(oldValue, newValue T)
}

// DetailedSubscriberFunc adapts a plain function to DetailedSubscriber.
type DetailedSubscriberFunc[T any] func(oldValue, newValue T)

func (f DetailedSubscriberFunc[T]) OnChange(oldValue, newValue T) {
	f(oldValue, newValue)
}

// Publisher accepts subscribers and returns itself as P for chaining.
type Publisher[P any, T any] interface {
	Subscribe(subscriber Subscriber[T]) P
}
