package stream

import (
	"context"
	"iter"
)

// ToChan feeds seq into an unbuffered channel from a new goroutine. The
// channel is closed when seq ends or ctx is done.
func ToChan[T any](ctx context.Context, seq iter.Seq[T]) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			return
		}

		for v := range seq {
			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// FromChan yields values received from ch until it is closed or ctx is done.
func FromChan[T any](ctx context.Context, ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			select {
			case v, ok := <-ch:
				if !ok || !yield(v) {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}
}
