// Package plan implements the in-memory plan store, the single-cell edit
// session state machine, and the optimistic update engine.
//
// # Overview
//
// This package is the consistency core of stride. It owns the client-held
// copy of one training plan and defines how inline edits flow through it:
//
//	key press → Editor transition → Commit → Store mutation → pending Update
//	                                              ↓
//	                                     table re-renders instantly
//	                                              ↓
//	                        caller issues the backend call asynchronously
//
// # Store
//
// Store is an ordered workout collection with an id index (O(1) Lookup),
// scoped to an explicit plan id. Two mutation shapes exist:
//
//   - ReplaceWorkouts: wholesale swap after any reload
//   - field mutation via ApplyEdit: one field of one workout, synchronous
//
// Reads return copies, so a snapshot handed to the renderer can
// never be changed underneath it. The mutex exists because Bubble Tea
// commands complete on separate goroutines; within one message handler all
// mutation is synchronous and non-interleaved.
//
// # Edit Sessions
//
// Editor models the Idle → Editing → Idle state machine. Invariants:
//
//   - at most one Session exists at any time
//   - Start while Editing discards the previous session with no
//     persistence call (switching cells needs no confirmation)
//   - Take/Cancel both return to Idle; Take is used by the commit path so
//     the session is closed before any network dispatch
//
// # Fields
//
// Field is a tagged variant: each editable cell kind carries its parse
// rule, its payload key, and whether it routes to the workout resource or
// the note sub-resource. The commit path resolves a field once through the
// lookup table instead of branching on strings.
//
// Parse policy: empty input and malformed numeric input both yield nil,
// which clears the field locally and serializes as JSON null in the patch.
// Negative distances pass through unclamped.
//
// # Optimistic Commit
//
// Commit and ApplyEdit apply the parsed value to the Store before any
// network traffic and return an Update describing the one-field patch to
// send. On success the local value is trusted as-is; on failure the caller
// reloads the whole plan from the backend (full refetch, not field-level
// rollback). Edits whose workout id no longer resolves are silently
// dropped, with the session still closed.
//
// Notes on a workout that has no note yet are constructed locally as an
// explicit new record; only the edited field ever travels to the backend,
// so the local record's missing server id is irrelevant until the upsert
// response round-trips on the next reload.
//
// # Projection
//
// Rows derives the week-grouped view model: store order preserved within a
// week, week label visible on the first row of each week, completed and
// rest-day flags precomputed per row. It is pure and side-effect free.
package plan
