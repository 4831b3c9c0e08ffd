// Package attempt runs failable operations against a declared category of
// expected failures. A failure inside the category is handed back to the
// caller as a value; anything else, including a panic that is not a
// categorized error, is re-raised as a panic carrying
// *expr.AttemptFailedError.
//
// Highlights:
// - Category: predicate deciding whether a failure is expected
// - Any/Is/As/Not: category builders over errors.Is and errors.As
// - Supply/Run: execute a supplier or a runnable under a category
//
// The option and result packages build their Attempt-style constructors on
// top of this package and never translate failures themselves.
package attempt
