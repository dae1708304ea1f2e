// Package ui implements the stride terminal interface with Bubble Tea.
//
// # Architecture
//
// The package follows the standard Bubble Tea shape: a single Model value,
// messages for every asynchronous result, and commands for every backend
// call. Update never blocks; all HTTP work happens inside tea.Cmd closures
// and comes back as typed messages.
//
// # Optimistic editing
//
// Edits apply to the plan store before any network call is issued. A commit
// closes the edit session, mutates the store through the plan package, and
// dispatches a saveCmd. When the save fails the UI does not roll back the
// one field; it schedules a full reload, so the table converges on whatever
// the backend holds.
//
// # Table rendering
//
// The table body lives in a viewport. Rows are projected from the store via
// plan.Rows, which groups workouts by week. Column layout adapts to the
// terminal width: below compactWidth the secondary columns (fueling, heart
// rate, audio) drop out.
//
// # Sync
//
// The Garmin connection state is checked once at startup. Triggering a sync
// reports "N synced", "Up to date", or "Failed" in the header bar, and every
// outcome is followed by a full reload because the backend may have created
// or re-matched actual runs either way.
package ui
