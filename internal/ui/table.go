package ui

import (
	"strconv"
	"strings"

	"github.com/rkeller/stride/internal/format"
	"github.com/rkeller/stride/internal/plan"
)

// column is one rendered table column. edit indexes into editTargets for
// editable columns, -1 for read-only ones.
type column struct {
	title string
	width int
	edit  int
	value func(row plan.Row) string
}

// compactWidth is the terminal width below which secondary columns drop out.
const compactWidth = 140

func (m Model) columns() []column {
	cols := []column{
		{title: "Wk", width: 3, edit: -1, value: func(r plan.Row) string {
			if r.ShowWeek {
				return strconv.Itoa(r.Week)
			}
			return ""
		}},
		{title: "Day", width: 4, edit: -1, value: func(r plan.Row) string {
			return shortDay(r.Workout.DayOfWeek)
		}},
		{title: "Date", width: 7, edit: -1, value: func(r plan.Row) string {
			return format.Day(r.Workout.Date)
		}},
		{title: "Type", width: 9, edit: editIndex(plan.FieldWorkoutType), value: func(r plan.Row) string {
			return r.Workout.WorkoutType
		}},
		{title: "Plan", width: 6, edit: editIndex(plan.FieldTargetDistance), value: func(r plan.Row) string {
			return blankFloat(r.Workout.TargetDistance)
		}},
		{title: "Pace", width: 9, edit: editIndex(plan.FieldTargetPace), value: func(r plan.Row) string {
			return blankString(r.Workout.TargetPace)
		}},
	}

	if !m.compact() {
		cols = append(cols, column{title: "Fuel", width: 12, edit: editIndex(plan.FieldFueling), value: func(r plan.Row) string {
			return blankString(r.Workout.Fueling)
		}})
	}

	cols = append(cols,
		column{title: "Ran", width: 6, edit: -1, value: func(r plan.Row) string {
			if r.Workout.ActualRun == nil {
				return format.Blank
			}
			return format.Miles(r.Workout.ActualRun.Distance)
		}},
		column{title: "Ran pace", width: 9, edit: -1, value: func(r plan.Row) string {
			if r.Workout.ActualRun == nil || r.Workout.ActualRun.Pace == "" {
				return format.Blank
			}
			return r.Workout.ActualRun.Pace
		}},
	)

	if !m.compact() {
		cols = append(cols,
			column{title: "Time", width: 8, edit: -1, value: func(r plan.Row) string {
				if r.Workout.ActualRun == nil {
					return format.Blank
				}
				return format.Duration(r.Workout.ActualRun.DurationSeconds)
			}},
			column{title: "Start", width: 7, edit: -1, value: func(r plan.Row) string {
				if r.Workout.ActualRun == nil {
					return format.Blank
				}
				return format.Clock(r.Workout.ActualRun.ParsedStartedAt())
			}},
			column{title: "HR", width: 4, edit: -1, value: func(r plan.Row) string {
				if r.Workout.ActualRun == nil || r.Workout.ActualRun.AvgHR == nil {
					return format.Blank
				}
				return strconv.Itoa(*r.Workout.ActualRun.AvgHR)
			}},
			column{title: "Sleep", width: 7, edit: -1, value: func(r plan.Row) string {
				if r.Workout.SleepHours == nil {
					return format.Blank
				}
				return format.Sleep(*r.Workout.SleepHours)
			}},
			column{title: "Temp", width: 5, edit: -1, value: func(r plan.Row) string {
				run := r.Workout.ActualRun
				if run == nil || run.Weather == nil || run.Weather.Temperature == nil {
					return format.Blank
				}
				return format.Temp(*run.Weather.Temperature)
			}},
		)
	}

	cols = append(cols, column{title: "RPE", width: 4, edit: editIndex(plan.FieldEffort), value: func(r plan.Row) string {
		if r.Workout.Note == nil || r.Workout.Note.EffortRating == nil {
			return format.Blank
		}
		return strconv.Itoa(*r.Workout.Note.EffortRating)
	}})

	if !m.compact() {
		cols = append(cols, column{title: "Audio", width: 9, edit: editIndex(plan.FieldAudio), value: func(r plan.Row) string {
			if r.Workout.Note == nil {
				return format.Blank
			}
			return blankString(r.Workout.Note.Audio)
		}})
	}

	cols = append(cols, column{title: "Notes", width: m.notesWidth(cols), edit: editIndex(plan.FieldNotes), value: func(r plan.Row) string {
		if r.Workout.Note == nil {
			return ""
		}
		return blankString(r.Workout.Note.Content)
	}})

	return cols
}

func (m Model) compact() bool {
	return m.width > 0 && m.width < compactWidth
}

// notesWidth gives the Notes column the remaining terminal width.
func (m Model) notesWidth(fixed []column) int {
	used := 0
	for _, c := range fixed {
		used += c.width + 1
	}
	w := m.width - used
	if w < 10 {
		w = 10
	}
	return w
}

// editIndex maps a field back to its position in editTargets.
func editIndex(field plan.Field) int {
	for i, t := range editTargets {
		if t.field == field {
			return i
		}
	}
	return -1
}

// renderColumnHeader renders the table's column title line.
func (m Model) renderColumnHeader() string {
	styles := m.theme.Styles()
	var b strings.Builder
	for _, col := range m.columns() {
		b.WriteString(styles.ColumnHeader.Render(pad(col.title, col.width)))
		b.WriteString(" ")
	}
	return b.String()
}

// renderBody rebuilds the viewport content from the current rows.
func (m *Model) renderBody() {
	if !m.ready {
		return
	}
	cols := m.columns()
	styles := m.theme.Styles()

	session, editing := m.editor.Session()

	lines := make([]string, 0, len(m.rows))
	for i, row := range m.rows {
		lines = append(lines, m.renderRow(cols, styles, row, i == m.selectedRow, session, editing))
	}
	m.body.SetContent(strings.Join(lines, "\n"))
}

func (m Model) renderRow(cols []column, styles Styles, row plan.Row, selected bool, session plan.Session, editing bool) string {
	var b strings.Builder
	for colIdx, col := range cols {
		cellEditing := editing &&
			session.WorkoutID == row.Workout.ID &&
			col.edit >= 0 &&
			editTargets[col.edit].field == session.Field

		if cellEditing {
			b.WriteString(pad(m.input.View(), col.width))
			b.WriteString(" ")
			continue
		}

		text := pad(col.value(row), col.width)
		switch {
		case selected && col.edit == m.selectedCol && col.edit >= 0:
			text = styles.Selected.Render(text)
		case colIdx == typeColumnIndex(cols):
			text = styles.TypeStyle(row.Workout.WorkoutType).Render(text)
		case row.RestDay:
			text = styles.FaintText.Render(text)
		case row.Completed:
			text = styles.Text.Render(text)
		default:
			text = styles.MutedText.Render(text)
		}
		b.WriteString(text)
		b.WriteString(" ")
	}
	return b.String()
}

func typeColumnIndex(cols []column) int {
	for i, c := range cols {
		if c.title == "Type" {
			return i
		}
	}
	return -1
}

// pad right-pads or truncates a cell to the column width.
func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		if width <= 1 {
			return string(runes[:width])
		}
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}

func shortDay(day string) string {
	if len(day) > 3 {
		return day[:3]
	}
	return day
}

func blankString(s *string) string {
	if s == nil || *s == "" {
		return format.Blank
	}
	return *s
}

func blankFloat(f *float64) string {
	if f == nil {
		return format.Blank
	}
	return format.Miles(*f)
}
