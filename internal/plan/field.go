package plan

import (
	"strconv"
	"strings"

	"github.com/rkeller/stride/internal/trainer"
)

// Field identifies one editable cell kind. Each field carries its own parse
// rule, payload key, and routing (workout resource vs note sub-resource) via
// the lookup table below, so the commit path never branches on raw strings.
type Field int

const (
	FieldWorkoutType Field = iota
	FieldTargetDistance
	FieldTargetPace
	FieldFueling
	FieldNotes
	FieldEffort
	FieldAudio
)

type fieldSpec struct {
	key   string
	note  bool
	parse func(raw string) any
	apply func(w *trainer.Workout, value any)
}

var fieldSpecs = map[Field]fieldSpec{
	FieldWorkoutType: {
		key:   "workout_type",
		parse: parseText,
		apply: func(w *trainer.Workout, v any) {
			if s, ok := v.(string); ok {
				w.WorkoutType = s
			}
		},
	},
	FieldTargetDistance: {
		key:   "target_distance",
		parse: parseDecimal,
		apply: func(w *trainer.Workout, v any) {
			w.TargetDistance = asFloatPtr(v)
		},
	},
	FieldTargetPace: {
		key:   "target_pace",
		parse: parseText,
		apply: func(w *trainer.Workout, v any) {
			w.TargetPace = asStringPtr(v)
		},
	},
	FieldFueling: {
		key:   "fueling",
		parse: parseText,
		apply: func(w *trainer.Workout, v any) {
			w.Fueling = asStringPtr(v)
		},
	},
	FieldNotes: {
		key:   "content",
		note:  true,
		parse: parseText,
		apply: func(w *trainer.Workout, v any) {
			note := localNote(w)
			note.Content = asStringPtr(v)
			w.Note = note
		},
	},
	FieldEffort: {
		key:   "effort_rating",
		note:  true,
		parse: parseRating,
		apply: func(w *trainer.Workout, v any) {
			note := localNote(w)
			note.EffortRating = asIntPtr(v)
			w.Note = note
		},
	},
	FieldAudio: {
		key:   "audio",
		note:  true,
		parse: parseText,
		apply: func(w *trainer.Workout, v any) {
			note := localNote(w)
			note.Audio = asStringPtr(v)
			w.Note = note
		},
	},
}

// Key returns the payload key used in partial-update requests.
func (f Field) Key() string {
	return fieldSpecs[f].key
}

// NoteField reports whether the field routes to the note sub-resource
// instead of the workout resource.
func (f Field) NoteField() bool {
	return fieldSpecs[f].note
}

// Parse converts raw input text into the typed value stored locally and
// sent on the wire. Empty and malformed input both yield nil, which clears
// the field (serialized as JSON null).
func (f Field) Parse(raw string) any {
	return fieldSpecs[f].parse(raw)
}

// parseText passes a string through, nulling when empty.
func parseText(raw string) any {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return raw
}

// parseDecimal parses a decimal value. Negative values pass through
// unclamped; unparsable input clears the field like empty input does.
func parseDecimal(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}
	return v
}

// parseRating parses a 1-10 effort rating; anything else clears it.
func parseRating(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	v, err := strconv.Atoi(trimmed)
	if err != nil || v < 1 || v > 10 {
		return nil
	}
	return v
}

// localNote returns a copy of the workout's note, or a new local note when
// none exists yet. The local note has no server id until the first upsert
// round-trips; it is never sent to the backend as a whole record.
func localNote(w *trainer.Workout) *trainer.RunNote {
	if w.Note != nil {
		note := *w.Note
		return &note
	}
	return &trainer.RunNote{PlannedWorkoutID: w.ID}
}

func asFloatPtr(v any) *float64 {
	if f, ok := v.(float64); ok {
		return &f
	}
	return nil
}

func asIntPtr(v any) *int {
	if i, ok := v.(int); ok {
		return &i
	}
	return nil
}

func asStringPtr(v any) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}
