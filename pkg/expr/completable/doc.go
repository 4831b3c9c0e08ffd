// Package completable provides Completable[T], a one-shot cell that starts
// pending and is completed with a single value exactly once. Every
// subscriber sees that value exactly once, whether it subscribed before or
// after completion.
//
// Highlights:
// - Create/Completed: build a pending or an already completed cell
// - Complete: the one permitted transition; later calls are no-ops
// - Subscribe/Then: queue a delivery, or deliver at once when ready
// - ThenApply/ThenCompose: derived cells completed from this one
// - Get/OrThrow/ToOption: synchronous reads
// - ToChan/Await: hand the value to another goroutine
// - Future: a read-only view for code that must not complete the cell
//
// Delivery is synchronous and runs on the goroutine that calls Complete, or
// on the subscribing goroutine when the cell is already completed. The
// cell's state is guarded by a mutex, so Complete, Subscribe and the reads
// may run on different goroutines; the lock is never held while a
// subscriber runs. A cell that never completes keeps its queued subscribers
// alive; there is no timeout or cancellation at this layer.
package completable
