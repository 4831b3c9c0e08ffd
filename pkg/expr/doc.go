// Package expr holds what the container and cell packages share: the error
// taxonomy, the subscriber capability used by the reactive cells, and absence
// detection for values that enter a container.
//
// Highlights:
// - ErrIllegalAccess/ErrInvalidState: sentinels carried by contract panics
// - AttemptFailedError: wraps failures outside a declared category
// - Subscriber/DetailedSubscriber/Publisher: minimal observer capability
// - IsNil: absence-marker detection used by option.Of and the cells
// - Blank: payload for variants that carry no meaningful value
//
// The algebra itself lives in the option and result subpackages, the cells in
// completable and reactive.
package expr
