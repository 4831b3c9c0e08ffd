// Package option provides Option[T], a container that either holds a value
// (Some) or holds nothing (None). It replaces nil pointers and comma-ok
// pairs at API boundaries where absence is an expected outcome.
//
// Highlights:
// - Of/Some/None/When/OfPtr/OfOk: construct an Option; nil is always None
// - Filter/Peek/OnEmpty/OrElse*: same-type combinators as methods
// - Map/FlatMap/Match/Is/Flatten: type-changing combinators as functions
// - Get/OrThrow/Unwrap: pull the value out at a boundary that can reject None
// - All: iterate the zero or one contained values
// - Attempt: run a failable supplier, mapping expected failures to None
//
// The zero value of Option[T] is None, so a None is safe to share and to
// compare with ==.
package option
