// Package bulk provides the building blocks for bulk (multi-record) REST
// mutations on top of GORM-backed resources.
//
// It contains four independent pieces that a feature composes into its
// create/update/destroy handlers:
//
//   - Resolve: the reconciliation engine that matches a list of payload
//     items to persisted records by a configurable identifier field,
//     rejecting duplicates, invalid values, and unresolved targets before
//     any write happens.
//   - DestroyAllowed: the safety predicate that blocks a bulk delete when
//     the caller applied no real filtering to the base collection
//     (ordering-only changes do not count as filtering).
//   - Atomically: an optional transaction wrapper. All writes of one batch
//     either commit together or roll back together when enabled, or commit
//     individually when disabled.
//   - Schema / ValidateAll: the validation contract for payload items with
//     an explicit validation mode (create, update, partial update).
//
// All failures are batch-scoped: one bad item rejects the whole request
// with a structured *BatchError and no partial application occurs.
package bulk
