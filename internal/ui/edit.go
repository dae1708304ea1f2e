package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rkeller/stride/internal/plan"
	"github.com/rkeller/stride/internal/trainer"
)

// editTarget describes one editable column. Selector columns cycle through a
// fixed option list on activation instead of opening a text session.
type editTarget struct {
	title         string
	field         plan.Field
	selector      bool
	completedOnly bool
}

// editTargets lists the editable columns in display order. selectedCol
// indexes into this slice.
var editTargets = []editTarget{
	{title: "Type", field: plan.FieldWorkoutType, selector: true},
	{title: "Plan mi", field: plan.FieldTargetDistance},
	{title: "Plan pace", field: plan.FieldTargetPace},
	{title: "Fuel", field: plan.FieldFueling},
	{title: "RPE", field: plan.FieldEffort, selector: true, completedOnly: true},
	{title: "Audio", field: plan.FieldAudio, selector: true, completedOnly: true},
	{title: "Notes", field: plan.FieldNotes},
}

// effortOptions is the RPE cycle: unset, then 1 through 10.
var effortOptions = func() []string {
	opts := []string{""}
	for i := 1; i <= 10; i++ {
		opts = append(opts, strconv.Itoa(i))
	}
	return opts
}()

// activateCell starts a text edit or cycles a selector for the selected cell.
func (m Model) activateCell() (tea.Model, tea.Cmd) {
	row, ok := m.currentRow()
	if !ok {
		return m, nil
	}
	target := editTargets[m.selectedCol]
	if target.completedOnly && !row.Completed {
		return m, nil
	}

	if target.selector {
		return m.cycleSelector(row, target)
	}

	seed := seedValue(row, target.field)
	m.editor.Start(row.Workout.ID, target.field, seed)
	m.input.SetValue(seed)
	m.input.CursorEnd()
	m.input.Focus()
	m.renderBody()
	return m, textinput.Blink
}

// cycleSelector advances a selector cell to the next option, applies it
// optimistically, and persists.
func (m Model) cycleSelector(row plan.Row, target editTarget) (tea.Model, tea.Cmd) {
	next := nextOption(selectorOptions(target.field), seedValue(row, target.field))
	update, ok := plan.ApplyEdit(m.store, row.Workout.ID, target.field, next)
	if !ok {
		return m, nil
	}
	m.refreshRows()
	m.renderBody()
	return m, m.saveCmd(update)
}

// handleEditKey processes keys while a text session is active.
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Blur):
		return m.commitEdit()
	case key.Matches(msg, m.keys.Cancel):
		m.editor.Cancel()
		m.input.Blur()
		m.renderBody()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.editor.SetValue(m.input.Value())
	m.renderBody()
	return m, cmd
}

// commitEdit closes the session, applies the value locally, and kicks off
// the persistence call. The session closes even when the apply fails.
func (m Model) commitEdit() (tea.Model, tea.Cmd) {
	m.editor.SetValue(m.input.Value())
	m.input.Blur()
	update, ok := plan.Commit(m.store, &m.editor)
	m.refreshRows()
	m.renderBody()
	if !ok {
		return m, nil
	}
	return m, m.saveCmd(update)
}

func (m Model) currentRow() (plan.Row, bool) {
	if m.selectedRow < 0 || m.selectedRow >= len(m.rows) {
		return plan.Row{}, false
	}
	return m.rows[m.selectedRow], true
}

// seedValue returns the raw text a cell currently holds, used to seed edit
// sessions and selector cycling.
func seedValue(row plan.Row, field plan.Field) string {
	w := row.Workout
	switch field {
	case plan.FieldWorkoutType:
		return w.WorkoutType
	case plan.FieldTargetDistance:
		if w.TargetDistance == nil {
			return ""
		}
		return strconv.FormatFloat(*w.TargetDistance, 'f', -1, 64)
	case plan.FieldTargetPace:
		return deref(w.TargetPace)
	case plan.FieldFueling:
		return deref(w.Fueling)
	case plan.FieldNotes:
		if w.Note == nil {
			return ""
		}
		return deref(w.Note.Content)
	case plan.FieldEffort:
		if w.Note == nil || w.Note.EffortRating == nil {
			return ""
		}
		return strconv.Itoa(*w.Note.EffortRating)
	case plan.FieldAudio:
		if w.Note == nil {
			return ""
		}
		return deref(w.Note.Audio)
	}
	return ""
}

func selectorOptions(field plan.Field) []string {
	switch field {
	case plan.FieldWorkoutType:
		return trainer.WorkoutTypes
	case plan.FieldEffort:
		return effortOptions
	case plan.FieldAudio:
		return trainer.AudioOptions
	}
	return nil
}

// nextOption returns the option after current, wrapping around. An unknown
// current value restarts the cycle.
func nextOption(options []string, current string) string {
	if len(options) == 0 {
		return current
	}
	for i, opt := range options {
		if opt == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
