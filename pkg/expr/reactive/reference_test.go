package reactive

import (
	"fmt"
	"testing"

	"github.com/ib-77/expressible/pkg/expr"
	"github.com/ib-77/expressible/pkg/expr/attempt"
	"github.com/ib-77/expressible/pkg/expr/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func requirePanicWith(t *testing.T, target error, f func()) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, target)
	}()
	f()
}

func TestNewReference_RejectsNil(t *testing.T) {
	t.Parallel()

	requirePanicWith(t, expr.ErrInvalidState, func() {
		NewReference[*int](nil)
	})
	requirePanicWith(t, expr.ErrInvalidState, func() {
		NewMutableReference[map[string]int](nil)
	})
}

func TestReference_Reads(t *testing.T) {
	t.Parallel()

	ref := NewReference("value")
	assert.Equal(t, "value", ref.Get())
	assert.Equal(t, option.Of("value"), ref.ToOption())
	assert.Equal(t, 5, Apply(ref, func(s string) int { return len(s) }))
	assert.Contains(t, ref.String(), "'value'")
	assert.NotEqual(t, NewReference("value").ID(), ref.ID())

	seen := ""
	ref.Peek(func(s string) { seen = s })
	assert.Equal(t, "value", seen)
}

func TestUpdate_NotifiesInSubscriptionOrder(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	first := expr.NewMockDetailedSubscriber[int](ctrl)
	second := expr.NewMockDetailedSubscriber[int](ctrl)

	gomock.InOrder(
		first.EXPECT().OnChange(1, 2),
		second.EXPECT().OnChange(1, 2),
		first.EXPECT().OnChange(2, 3),
		second.EXPECT().OnChange(2, 3),
	)

	ref := NewMutableReference(1)
	ref.SubscribeDetailed(first, false)
	ref.SubscribeDetailed(second, false)

	ref.Update(2).UpdateFunc(func(v int) int { return v + 1 })
	assert.Equal(t, 3, ref.Get())
}

func TestSubscribe_ReceivesNewValues(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	sub := expr.NewMockSubscriber[string](ctrl)
	sub.EXPECT().OnComplete("b").Times(1)

	ref := NewMutableReference("a")
	ref.Subscribe(sub)
	ref.Update("b")
}

func TestSubscribeImmediately_DeliversCurrentValue(t *testing.T) {
	t.Parallel()

	ref := NewMutableReference(10)

	var values []int
	ref.SubscribeImmediately(expr.SubscriberFunc[int](func(v int) { values = append(values, v) }))
	assert.Equal(t, []int{10}, values)

	var changes [][2]int
	ref.SubscribeDetailed(expr.DetailedSubscriberFunc[int](func(o, n int) {
		changes = append(changes, [2]int{o, n})
	}), true)
	assert.Equal(t, [][2]int{{10, 10}}, changes)

	ref.Update(11)
	assert.Equal(t, []int{10, 11}, values)
	assert.Equal(t, [][2]int{{10, 10}, {10, 11}}, changes)
}

func TestSet_RejectsNil(t *testing.T) {
	t.Parallel()

	v := 1
	ref := NewReference(&v)
	requirePanicWith(t, expr.ErrInvalidState, func() {
		SetValue(ref, nil)
	})
	assert.Equal(t, &v, ref.Get())
}

func TestSetValue_UpdatesReadOnlyReference(t *testing.T) {
	t.Parallel()

	ref := NewReference("a")
	var got []string
	ref.Subscribe(expr.SubscriberFunc[string](func(v string) { got = append(got, v) }))

	SetValue(ref, "b")
	assert.Equal(t, "b", ref.Get())
	assert.Equal(t, []string{"b"}, got)
}

func TestUpdate_ReentrantSubscriberRecurses(t *testing.T) {
	t.Parallel()

	ref := NewMutableReference(0)
	var log []string
	ref.SubscribeDetailed(expr.DetailedSubscriberFunc[int](func(o, n int) {
		log = append(log, fmt.Sprintf("%d->%d", o, n))
		if n < 3 {
			ref.Update(n + 1)
		}
	}), false)

	ref.Update(1)
	assert.Equal(t, 3, ref.Get())
	assert.Equal(t, []string{"0->1", "1->2", "2->3"}, log)
}

func TestUpdate_GuardFailsFastOnReentry(t *testing.T) {
	t.Parallel()

	ref := NewMutableReference(0, WithReentrancyGuard())
	ref.Subscribe(expr.SubscriberFunc[int](func(v int) {
		if v == 1 {
			ref.Update(2)
		}
	}))

	requirePanicWith(t, expr.ErrReentrantUpdate, func() {
		ref.Update(1)
	})
	assert.Equal(t, 1, ref.Get())

	// the guard is released after the failed round
	ref.Update(5)
	assert.Equal(t, 5, ref.Get())
}

func TestMutableReference_SharesReadView(t *testing.T) {
	t.Parallel()

	owner := NewMutableReference("draft")
	var view *Reference[string] = owner.Reference

	var seen []string
	view.Subscribe(expr.SubscriberFunc[string](func(v string) { seen = append(seen, v) }))

	owner.Update("final")
	assert.Equal(t, "final", view.Get())
	assert.Equal(t, []string{"final"}, seen)
	assert.Equal(t, owner.ID(), view.ID())
}

func TestReentrancyGuard_NotCategorizedByAttempt(t *testing.T) {
	t.Parallel()

	ref := NewMutableReference(0, WithReentrancyGuard())
	ref.Subscribe(expr.SubscriberFunc[int](func(v int) {
		ref.Update(v + 1)
	}))

	requirePanicWith(t, expr.ErrReentrantUpdate, func() {
		_ = attempt.Run(attempt.Any(), func() error {
			ref.Update(1)
			return nil
		})
	})
}
