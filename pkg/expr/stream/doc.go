// Package stream is the sequence boundary of the containers: helpers over
// iter.Seq that consume Option and Result values element by element.
//
// Highlights:
// - MapOpt: map and drop the elements mapped to None in one step
// - FilterToResult: stop at the first element a check rejects
// - Search: first Ok wins, otherwise every error is returned
// - Head/Find: first element as an Option
// - FromChan/ToChan: bridge sequences and channels under a context
package stream
