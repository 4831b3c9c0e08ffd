package completable

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ib-77/expressible/pkg/expr"
	"github.com/ib-77/expressible/pkg/expr/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreate_IsPending(t *testing.T) {
	t.Parallel()

	c := Create[string]()
	assert.False(t, c.IsReady())
	assert.True(t, c.IsUnprepared())
	assert.Equal(t, option.None[string](), c.ToOption())
	assert.NotEqual(t, Create[string]().ID(), c.ID())
	assert.Equal(t, time.UTC, c.CreatedAt().Location())
	assert.Contains(t, c.String(), "PENDING")

	defer func() {
		r := recover()
		require.NotNil(t, r)
		assert.ErrorIs(t, r.(error), expr.ErrIllegalAccess)
	}()
	c.Get()
}

func TestSubscribers_BeforeAndAfterSeeValueOnce(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	before := expr.NewMockSubscriber[int](ctrl)
	after := expr.NewMockSubscriber[int](ctrl)

	before.EXPECT().OnComplete(7).Times(1)
	after.EXPECT().OnComplete(7).Times(1)

	c := Create[int]()
	c.Subscribe(before)
	c.Complete(7)
	c.Subscribe(after)

	// a second completion neither re-delivers nor replaces the value
	c.Complete(8)
	assert.Equal(t, 7, c.Get())
}

func TestComplete_DeliversInSubscriptionOrder(t *testing.T) {
	t.Parallel()

	var order []string
	c := Create[string]()
	c.Then(func(v string) { order = append(order, "first:"+v) })
	c.Then(func(v string) { order = append(order, "second:"+v) })
	c.Then(func(v string) { order = append(order, "third:"+v) })

	assert.Empty(t, order)
	c.Complete("x")
	assert.Equal(t, []string{"first:x", "second:x", "third:x"}, order)
}

func TestSubscribe_AfterCompletionIsSynchronous(t *testing.T) {
	t.Parallel()

	delivered := false
	Completed(1).Then(func(int) { delivered = true })
	assert.True(t, delivered, "delivery must happen before Subscribe returns")
}

func TestSubscribe_DuringDeliveryIsImmediate(t *testing.T) {
	t.Parallel()

	c := Create[int]()
	var got []int
	c.Then(func(v int) {
		c.Then(func(v int) { got = append(got, v*10) })
		got = append(got, v)
	})
	c.Complete(2)

	assert.Equal(t, []int{20, 2}, got)
}

func TestComplete_NilIsInvalidState(t *testing.T) {
	t.Parallel()

	c := Create[*int]()
	defer func() {
		r := recover()
		require.NotNil(t, r)
		assert.ErrorIs(t, r.(error), expr.ErrInvalidState)
		assert.False(t, c.IsReady())
	}()
	c.Complete(nil)
}

func TestThenApply(t *testing.T) {
	t.Parallel()

	source := Create[int]()
	mapped := ThenApply(source, func(v int) string { return strings.Repeat("a", v) })

	assert.False(t, mapped.IsReady())
	source.Complete(3)
	assert.Equal(t, "aaa", mapped.Get())
}

func TestThenCompose(t *testing.T) {
	t.Parallel()

	source := Create[int]()
	inner := Create[string]()
	composed := ThenCompose(source, func(int) *Completable[string] { return inner })

	source.Complete(1)
	assert.False(t, composed.IsReady(), "composed waits for the inner cell")

	inner.Complete("done")
	assert.Equal(t, "done", composed.Get())
}

func TestDerivedCells_StayPendingWithoutSource(t *testing.T) {
	t.Parallel()

	source := Create[int]()
	applied := ThenApply(source, func(v int) int { return v })
	composed := ThenCompose(source, func(v int) *Completable[int] { return Completed(v) })

	assert.False(t, applied.IsReady())
	assert.False(t, composed.IsReady())
}

func TestOrThrowAndToOption(t *testing.T) {
	t.Parallel()

	errPending := errors.New("pending")

	_, err := Create[int]().OrThrow(func() error { return errPending })
	assert.ErrorIs(t, err, errPending)

	v, err := Completed(4).OrThrow(func() error { return errPending })
	require.NoError(t, err)
	assert.Equal(t, 4, v)
	assert.Equal(t, option.Of(4), Completed(4).ToOption())

	wrapped := WithCompleted("v")
	require.True(t, wrapped.IsDefined())
	assert.Equal(t, "v", wrapped.Get().Get())
}

func TestToChan(t *testing.T) {
	t.Parallel()

	c := Create[int]()
	ch := c.ToChan()
	c.Complete(5)

	v, ok := <-ch
	assert.True(t, ok)
	assert.Equal(t, 5, v)
	_, ok = <-ch
	assert.False(t, ok)
}

func TestAwait(t *testing.T) {
	t.Parallel()

	v, err := Completed("ready").Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ready", v)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = Create[string]().Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAwait_CompletedFromAnotherGoroutine(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	const waiters = 8
	c := Create[int]()
	results := make(chan int, waiters)
	errs := make(chan error, waiters)

	var wg sync.WaitGroup
	for range waiters {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.Future().Await(ctx)
			if err != nil {
				errs <- err
				return
			}
			results <- v
		}()
	}

	c.Complete(9)
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	got := 0
	for v := range results {
		assert.Equal(t, 9, v)
		got++
	}
	assert.Equal(t, waiters, got)
	assert.Equal(t, 9, c.Get())
}

func TestSubscribeAndComplete_Concurrently(t *testing.T) {
	t.Parallel()

	c := Create[string]()
	var delivered atomic.Int32

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Then(func(string) { delivered.Add(1) })
			_ = c.IsReady()
			_ = c.String()
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Complete("done")
	}()
	wg.Wait()

	assert.Equal(t, int32(16), delivered.Load())
	assert.Equal(t, "done", c.Get())
}

func TestZeroValue_IsPendingCell(t *testing.T) {
	t.Parallel()

	var c Completable[int]
	var got []int
	c.Then(func(v int) { got = append(got, v) })

	assert.True(t, c.IsUnprepared())
	c.Complete(3)
	c.Then(func(v int) { got = append(got, v*10) })

	assert.Equal(t, []int{3, 30}, got)
	assert.Equal(t, option.Of(3), c.ToOption())
}

func TestFuture_IsReadOnlyView(t *testing.T) {
	t.Parallel()

	c := Create[int]()
	f := c.Future()
	lengths := Apply(f, func(v int) string { return strings.Repeat("x", v) })

	var got int
	f.Then(func(v int) { got = v })

	assert.False(t, f.IsReady())
	assert.Equal(t, c.ID(), f.ID())

	c.Complete(2)
	assert.True(t, f.IsReady())
	assert.Equal(t, 2, got)
	assert.Equal(t, 2, f.Get())
	assert.Equal(t, "xx", lengths.Get())
	assert.Equal(t, option.Of(2), f.ToOption())
	assert.Equal(t, c.String(), f.String())
}
