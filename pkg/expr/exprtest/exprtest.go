package exprtest

import (
	"github.com/ib-77/expressible/pkg/expr/option"
	"github.com/ib-77/expressible/pkg/expr/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tHelper interface {
	Helper()
}

func helper(t any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
}

// AssertOk checks that r is Ok and holds want.
func AssertOk[V, E any](t assert.TestingT, r result.Result[V, E], want V, msgAndArgs ...any) bool {
	helper(t)
	if !assert.True(t, r.IsOk(), "expected Ok, got %v", r) {
		return false
	}
	return assert.Equal(t, want, r.Get(), msgAndArgs...)
}

// AssertErr checks that r is Err and holds want.
func AssertErr[V, E any](t assert.TestingT, r result.Result[V, E], want E, msgAndArgs ...any) bool {
	helper(t)
	if !assert.True(t, r.IsErr(), "expected Err, got %v", r) {
		return false
	}
	return assert.Equal(t, want, r.GetError(), msgAndArgs...)
}

// AssertErrorIs checks that r is Err with an error matching target.
func AssertErrorIs[V any](t assert.TestingT, r result.Result[V, error], target error, msgAndArgs ...any) bool {
	helper(t)
	if !assert.True(t, r.IsErr(), "expected Err, got %v", r) {
		return false
	}
	return assert.ErrorIs(t, r.GetError(), target, msgAndArgs...)
}

func AssertSome[T any](t assert.TestingT, o option.Option[T], want T, msgAndArgs ...any) bool {
	helper(t)
	if !assert.True(t, o.IsDefined(), "expected Some, got %v", o) {
		return false
	}
	return assert.Equal(t, want, o.Get(), msgAndArgs...)
}

func AssertNone[T any](t assert.TestingT, o option.Option[T], msgAndArgs ...any) bool {
	helper(t)
	if len(msgAndArgs) == 0 {
		msgAndArgs = []any{"expected None, got %v", o}
	}
	return assert.True(t, o.IsEmpty(), msgAndArgs...)
}

// RequireOk stops the test unless r is Ok and returns its value.
func RequireOk[V, E any](t require.TestingT, r result.Result[V, E]) V {
	helper(t)
	require.True(t, r.IsOk(), "expected Ok, got %v", r)
	return r.Get()
}

// RequireErr stops the test unless r is Err and returns its error.
func RequireErr[V, E any](t require.TestingT, r result.Result[V, E]) E {
	helper(t)
	require.True(t, r.IsErr(), "expected Err, got %v", r)
	return r.GetError()
}

// RequireSome stops the test unless o is defined and returns its value.
func RequireSome[T any](t require.TestingT, o option.Option[T]) T {
	helper(t)
	require.True(t, o.IsDefined(), "expected Some, got %v", o)
	return o.Get()
}
