// Package result provides Result[V, E], the outcome of an operation that
// either succeeded with a V (Ok) or failed with an E (Err). Domain failures
// are data in E; they are recovered with Fold, OrElse or FlatMapErr rather
// than returned as Go errors or raised as panics.
//
// Highlights:
// - Ok/Error/OkBlank/When/FromTuple/FromOption: construct a Result
// - Filter/Peek/OnError/Consume/OrElse*: same-type combinators as methods
// - Map/MapErr/FlatMap/FlatMapErr/Merge/Swap: type-changing combinators
// - Fold: the total collapse that never panics
// - Get/GetError: terminal reads that panic with expr.ErrIllegalAccess on
//   the wrong variant
// - SupplyThrowing/RunThrowing/Attempt/AttemptAs: wrap failable calls through
//   the attempt package
//
// A Result can only be built through Ok or Error, so exactly one slot is
// ever populated. The zero value is an Err holding the zero E; do not rely on it.
package result
