package plan

// Session identifies the single cell currently being edited and holds its
// uncommitted text value.
type Session struct {
	WorkoutID int64
	Field     Field
	Value     string
}

// Editor is the single-cell edit state machine. The zero value is Idle.
// At most one session exists at a time: starting a new edit while one is
// active discards the previous session without persisting it.
type Editor struct {
	session *Session
}

// Editing reports whether a session is active.
func (e *Editor) Editing() bool {
	return e.session != nil
}

// Session returns the active session, if any.
func (e *Editor) Session() (Session, bool) {
	if e.session == nil {
		return Session{}, false
	}
	return *e.session, true
}

// Start opens a session for (workoutID, field), seeded with the cell's
// current display value. Any previous session is implicitly cancelled.
func (e *Editor) Start(workoutID int64, field Field, current string) {
	e.session = &Session{WorkoutID: workoutID, Field: field, Value: current}
}

// SetValue updates the uncommitted text of the active session.
func (e *Editor) SetValue(value string) {
	if e.session == nil {
		return
	}
	e.session.Value = value
}

// Cancel discards the active session. No persistence call follows.
func (e *Editor) Cancel() {
	e.session = nil
}

// Take returns the active session and transitions to Idle. The commit path
// uses it so the editor closes before any backend call is issued.
func (e *Editor) Take() (Session, bool) {
	if e.session == nil {
		return Session{}, false
	}
	sess := *e.session
	e.session = nil
	return sess, true
}
