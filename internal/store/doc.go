// Package store holds all User and Person state for the farewell page service.
//
// The [Storage] interface is the only way the rest of the application reads or
// mutates records. Two implementations exist:
//
//   - [MemStore] : process-memory maps with per-kind id counters, the default
//   - [SQLiteStore] : the same contract persisted through database/sql
//
// Both share the identity semantics the HTTP layer depends on: integer ids
// assigned by the store, monotonically increasing from 1, never reused after a
// delete. Absent records are reported through boolean results rather than
// errors; the error returns are reserved for backend failures, which the
// in-memory implementation never produces.
package store
