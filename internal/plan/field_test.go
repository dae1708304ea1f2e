package plan

import (
	"testing"
)

func TestField_ParseText(t *testing.T) {
	cases := []struct {
		name  string
		field Field
		raw   string
		want  any
	}{
		{"pace passthrough", FieldTargetPace, "8:45", "8:45"},
		{"pace empty nulls", FieldTargetPace, "", nil},
		{"pace whitespace nulls", FieldTargetPace, "   ", nil},
		{"fueling passthrough", FieldFueling, "2 gels", "2 gels"},
		{"fueling empty nulls", FieldFueling, "", nil},
		{"type passthrough", FieldWorkoutType, "Long", "Long"},
		{"notes passthrough", FieldNotes, "felt strong", "felt strong"},
		{"notes empty nulls", FieldNotes, "", nil},
		{"audio passthrough", FieldAudio, "music", "music"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.field.Parse(tc.raw)
			if got != tc.want {
				t.Fatalf("Parse(%q) = %#v, want %#v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestField_ParseDecimal(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want any
	}{
		{"decimal", "10.5", 10.5},
		{"integer", "16", 16.0},
		{"negative unclamped", "-3", -3.0},
		{"empty nulls", "", nil},
		// Malformed input follows the same path as empty input.
		{"malformed nulls", "abc", nil},
		{"trailing junk nulls", "10.5mi", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FieldTargetDistance.Parse(tc.raw)
			if got != tc.want {
				t.Fatalf("Parse(%q) = %#v, want %#v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestField_ParseRating(t *testing.T) {
	cases := []struct {
		raw  string
		want any
	}{
		{"7", 7},
		{"1", 1},
		{"10", 10},
		{"0", nil},
		{"11", nil},
		{"", nil},
		{"hard", nil},
	}
	for _, tc := range cases {
		got := FieldEffort.Parse(tc.raw)
		if got != tc.want {
			t.Fatalf("Parse(%q) = %#v, want %#v", tc.raw, got, tc.want)
		}
	}
}

func TestField_KeysAndRouting(t *testing.T) {
	cases := []struct {
		field Field
		key   string
		note  bool
	}{
		{FieldWorkoutType, "workout_type", false},
		{FieldTargetDistance, "target_distance", false},
		{FieldTargetPace, "target_pace", false},
		{FieldFueling, "fueling", false},
		{FieldNotes, "content", true},
		{FieldEffort, "effort_rating", true},
		{FieldAudio, "audio", true},
	}
	for _, tc := range cases {
		if tc.field.Key() != tc.key {
			t.Fatalf("Key() = %q, want %q", tc.field.Key(), tc.key)
		}
		if tc.field.NoteField() != tc.note {
			t.Fatalf("NoteField() for %q = %v, want %v", tc.key, tc.field.NoteField(), tc.note)
		}
	}
}
