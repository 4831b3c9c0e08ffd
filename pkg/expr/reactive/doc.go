// Package reactive provides Reference[T], a cell that always holds a value
// and notifies its subscribers every time the value is replaced, and
// computed references derived from other references.
//
// Highlights:
// - NewReference/Get/Peek/ToOption: read side, handed out freely
// - Subscribe/SubscribeImmediately/SubscribeDetailed: change notification
// - MutableReference/Update/UpdateFunc: write side, kept by the owner
// - SetValue: escape hatch for owners that only hold a *Reference
// - Computed/DependenciesOf: cells re-derived whenever a dependency changes
// - WithReentrancyGuard: fail fast instead of recursing on nested updates
//
// Notification is synchronous and runs in subscription order on the
// goroutine that replaced the value. It is re-entrant: a subscriber that
// updates the reference it is notified by recurses into a new round of
// notifications before the current one finishes, unless the reference was
// built with WithReentrancyGuard. Computed references re-derive once per
// dependency change, in subscription order; there is no batching,
// topological ordering or cycle detection. References are not safe for
// concurrent use without external synchronization.
package reactive
