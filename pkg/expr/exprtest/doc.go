// Package exprtest contains testify-backed assertions for Option and Result
// values, for use in tests of code built on the containers.
//
// Assert* helpers report and continue, Require* helpers stop the test and
// return the unwrapped value.
package exprtest
