package ui

import (
	"strings"
	"testing"

	"github.com/rkeller/stride/internal/plan"
)

func TestPad(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"abc", 5, "abc  "},
		{"abcdef", 4, "abc…"},
		{"", 3, "   "},
		{"exact", 5, "exact"},
	}
	for _, tt := range tests {
		if got := pad(tt.in, tt.width); got != tt.want {
			t.Errorf("pad(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello world", 5); got != "hell…" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("hi", 5); got != "hi" {
		t.Fatalf("truncate short = %q", got)
	}
	if got := truncate("anything", 0); got != "anything" {
		t.Fatalf("truncate with zero width = %q", got)
	}
}

func TestShortDay(t *testing.T) {
	if got := shortDay("Wednesday"); got != "Wed" {
		t.Fatalf("shortDay = %q", got)
	}
	if got := shortDay("Mon"); got != "Mon" {
		t.Fatalf("shortDay = %q", got)
	}
}

func TestCompactModeDropsSecondaryColumns(t *testing.T) {
	api := &fakeAPI{workouts: sampleWorkouts()}
	m := newTestModel(t, api)

	m.width = 180
	wide := columnTitles(m)
	for _, title := range []string{"Fuel", "Time", "Start", "HR", "Sleep", "Temp", "Audio"} {
		if !strings.Contains(wide, title) {
			t.Fatalf("wide layout missing %q: %q", title, wide)
		}
	}

	m.width = 80
	narrow := columnTitles(m)
	for _, title := range []string{"Fuel", "Time", "Sleep", "Audio"} {
		if strings.Contains(narrow, title) {
			t.Fatalf("compact layout should drop %q: %q", title, narrow)
		}
	}
	for _, title := range []string{"Type", "Plan", "Notes"} {
		if !strings.Contains(narrow, title) {
			t.Fatalf("compact layout missing %q: %q", title, narrow)
		}
	}
}

func columnTitles(m Model) string {
	titles := make([]string, 0)
	for _, c := range m.columns() {
		titles = append(titles, c.title)
	}
	return strings.Join(titles, "|")
}

func TestEditIndexCoversEveryEditableColumn(t *testing.T) {
	fields := []plan.Field{
		plan.FieldWorkoutType,
		plan.FieldTargetDistance,
		plan.FieldTargetPace,
		plan.FieldFueling,
		plan.FieldEffort,
		plan.FieldAudio,
		plan.FieldNotes,
	}
	seen := map[int]bool{}
	for _, f := range fields {
		idx := editIndex(f)
		if idx < 0 || idx >= len(editTargets) {
			t.Fatalf("editIndex(%v) = %d out of range", f, idx)
		}
		if seen[idx] {
			t.Fatalf("editIndex(%v) = %d collides", f, idx)
		}
		seen[idx] = true
	}
}
