package trainer

import (
	"encoding/json"
	"time"
)

// Workout types recognized by the backend.
const (
	TypeRest     = "Rest"
	TypeEasy     = "Easy"
	TypeRecovery = "Recovery"
	TypeLong     = "Long"
	TypeShakeout = "Shakeout"
	TypeRace     = "Race"
)

// WorkoutTypes lists the selectable workout types in display order.
var WorkoutTypes = []string{TypeRest, TypeEasy, TypeRecovery, TypeLong, TypeShakeout, TypeRace}

// AudioOptions lists the selectable audio-context values in display order.
// The empty string clears the field.
var AudioOptions = []string{"", "music", "audiobook", "conversation", "none"}

// Workout is one planned training session in a plan.
type Workout struct {
	ID             int64      `json:"id"`
	PlanID         int64      `json:"plan_id"`
	Week           int        `json:"week"`
	DayOfWeek      string     `json:"day_of_week"`
	Date           string     `json:"date"`
	WorkoutType    string     `json:"workout_type"`
	TargetDistance *float64   `json:"target_distance"`
	TargetPace     *string    `json:"target_pace"`
	Description    *string    `json:"description"`
	Fueling        *string    `json:"fueling"`
	SleepHours     *float64   `json:"sleep_hours"`
	HRV            *int       `json:"hrv"`
	ActualRun      *ActualRun `json:"actual_run"`
	Note           *RunNote   `json:"note"`
}

// Completed reports whether a synced or manually recorded run exists.
func (w Workout) Completed() bool {
	return w.ActualRun != nil
}

// ParsedDate returns the calendar date as time.Time when possible.
func (w Workout) ParsedDate() time.Time {
	return parseDay(w.Date)
}

// ActualRun is the recorded outcome of a completed run. It is sourced from
// the sync provider and never edited by stride.
type ActualRun struct {
	ID                      int64           `json:"id"`
	PlannedWorkoutID        *int64          `json:"planned_workout_id"`
	GarminActivityID        *string         `json:"garmin_activity_id"`
	Distance                float64         `json:"distance"`
	DurationSeconds         int             `json:"duration_seconds"`
	Pace                    string          `json:"pace"`
	PaceSeconds             int             `json:"pace_seconds"`
	AvgHR                   *int            `json:"avg_hr"`
	MaxHR                   *int            `json:"max_hr"`
	HRZones                 json.RawMessage `json:"hr_zones"`
	ElevationGain           *float64        `json:"elevation_gain"`
	Cadence                 *float64        `json:"cadence"`
	Calories                *int            `json:"calories"`
	TrainingEffectAerobic   *float64        `json:"training_effect_aerobic"`
	TrainingEffectAnaerobic *float64        `json:"training_effect_anaerobic"`
	VO2Max                  *float64        `json:"vo2max"`
	StartLat                *float64        `json:"start_lat"`
	StartLon                *float64        `json:"start_lon"`
	StartedAt               *string         `json:"started_at"`
	Splits                  []RunSplit      `json:"splits,omitempty"`
	Weather                 *RunWeather     `json:"weather,omitempty"`
}

// ParsedStartedAt returns the run start timestamp as time.Time when possible.
func (r ActualRun) ParsedStartedAt() time.Time {
	if r.StartedAt == nil {
		return time.Time{}
	}
	return parseTime(*r.StartedAt)
}

// RunSplit is one per-mile (or per-km) segment of an actual run.
type RunSplit struct {
	ID              int64    `json:"id"`
	SplitNumber     int      `json:"split_number"`
	Distance        float64  `json:"distance"`
	DurationSeconds int      `json:"duration_seconds"`
	Pace            string   `json:"pace"`
	PaceSeconds     int      `json:"pace_seconds"`
	AvgHR           *int     `json:"avg_hr"`
	ElevationGain   *float64 `json:"elevation_gain"`
	Cadence         *float64 `json:"cadence"`
}

// RunWeather captures conditions at run start.
type RunWeather struct {
	ID            int64    `json:"id"`
	Temperature   *float64 `json:"temperature"`
	FeelsLike     *float64 `json:"feels_like"`
	Humidity      *float64 `json:"humidity"`
	WindSpeed     *float64 `json:"wind_speed"`
	WindDirection *string  `json:"wind_direction"`
	Conditions    *string  `json:"conditions"`
	Precipitation *float64 `json:"precipitation"`
}

// RunNote is a user-authored annotation attached to a workout.
type RunNote struct {
	ID               int64           `json:"id"`
	PlannedWorkoutID int64           `json:"planned_workout_id"`
	Content          *string         `json:"content"`
	MoodRating       *int            `json:"mood_rating"`
	EffortRating     *int            `json:"effort_rating"`
	Audio            *string         `json:"audio"`
	Tags             []string        `json:"tags"`
	FuelingLog       json.RawMessage `json:"fueling_log"`
	CreatedAt        string          `json:"created_at"`
	UpdatedAt        string          `json:"updated_at"`
}

// Countdown mirrors /stats/countdown.
type Countdown struct {
	RaceDate      string  `json:"race_date"`
	RaceName      string  `json:"race_name"`
	DaysLeft      int     `json:"days_left"`
	WeeksLeft     int     `json:"weeks_left"`
	DaysRemainder int     `json:"days_remainder"`
	TargetPace    *string `json:"target_pace"`
	TargetTime    *string `json:"target_time"`
}

// SyncStatus mirrors /sync/garmin/status.
type SyncStatus struct {
	Status string `json:"status"`
}

// Connected reports whether the sync provider session is usable.
func (s SyncStatus) Connected() bool {
	return s.Status == "connected"
}

// SyncResult mirrors the /sync/garmin/activities response.
type SyncResult struct {
	Status           string `json:"status"`
	ActivitiesSynced int    `json:"activities_synced"`
}

// WorkoutPatch is a partial update for a workout resource. Only the edited
// keys are present; a nil value serializes as an explicit JSON null.
type WorkoutPatch map[string]any

// NotePatch is a partial update for a workout's note sub-resource.
type NotePatch map[string]any

const dayLayout = "2006-01-02"

func parseDay(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	if t, err := time.ParseInLocation(dayLayout, value, time.Local); err == nil {
		return t
	}
	return parseTime(value)
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}
