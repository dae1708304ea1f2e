package plan

import (
	"github.com/rkeller/stride/internal/trainer"
)

// Row is the per-workout view model derived for the table.
type Row struct {
	Workout   trainer.Workout
	Week      int
	ShowWeek  bool // true only for the first row of each week
	Completed bool
	RestDay   bool
}

// Rows derives the week-grouped table rows from a workout list. Weeks are
// walked 1..weeks in order; within a week the list order is preserved. The
// week number is flagged visible on the first row of each week only, a
// grouping device for rendering rather than a data property.
func Rows(workouts []trainer.Workout, weeks int) []Row {
	rows := make([]Row, 0, len(workouts))
	for week := 1; week <= weeks; week++ {
		first := true
		for _, w := range workouts {
			if w.Week != week {
				continue
			}
			rows = append(rows, Row{
				Workout:   w,
				Week:      week,
				ShowWeek:  first,
				Completed: w.Completed(),
				RestDay:   w.WorkoutType == trainer.TypeRest,
			})
			first = false
		}
	}
	return rows
}
