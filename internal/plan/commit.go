package plan

import (
	"github.com/rkeller/stride/internal/trainer"
)

// Update describes the persistence call pending after an optimistic edit.
type Update struct {
	WorkoutID int64
	Note      bool
	Patch     map[string]any
}

// WorkoutPatch returns the update body for the workout resource.
func (u Update) WorkoutPatch() trainer.WorkoutPatch {
	return trainer.WorkoutPatch(u.Patch)
}

// NotePatch returns the update body for the note sub-resource.
func (u Update) NotePatch() trainer.NotePatch {
	return trainer.NotePatch(u.Patch)
}

// Commit closes the editor's session and applies its value optimistically.
// The session always transitions to Idle, even when the target workout has
// vanished; in that case the update is silently dropped and ok is false.
func Commit(store *Store, editor *Editor) (Update, bool) {
	sess, active := editor.Take()
	if !active {
		return Update{}, false
	}
	return ApplyEdit(store, sess.WorkoutID, sess.Field, sess.Value)
}

// ApplyEdit parses raw input for a field, mutates the store immediately,
// and returns the backend call to issue. Selector-style fields call this
// directly, bypassing the editor. The local mutation happens before the
// caller dispatches anything, so the table reflects the edit instantly.
func ApplyEdit(store *Store, workoutID int64, field Field, raw string) (Update, bool) {
	value := field.Parse(raw)
	applied := store.mutate(workoutID, func(w *trainer.Workout) {
		fieldSpecs[field].apply(w, value)
	})
	if !applied {
		return Update{}, false
	}
	return Update{
		WorkoutID: workoutID,
		Note:      field.NoteField(),
		Patch:     map[string]any{field.Key(): value},
	}, true
}
