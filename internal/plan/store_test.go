package plan

import (
	"testing"

	"github.com/rkeller/stride/internal/trainer"
)

func testWorkouts() []trainer.Workout {
	dist := 10.0
	return []trainer.Workout{
		{ID: 1, Week: 1, WorkoutType: trainer.TypeEasy, TargetDistance: &dist},
		{ID: 2, Week: 1, WorkoutType: trainer.TypeRest},
		{ID: 3, Week: 2, WorkoutType: trainer.TypeLong},
	}
}

func TestStore_ReplaceAndLookup(t *testing.T) {
	s := NewStore(1)
	if s.Loaded() {
		t.Fatal("Loaded() = true before first replace")
	}

	s.ReplaceWorkouts(testWorkouts())
	if !s.Loaded() {
		t.Fatal("Loaded() = false after replace")
	}

	// Identity invariant: lookup(w.id) == w for every stored workout.
	for _, w := range s.Workouts() {
		got, ok := s.Lookup(w.ID)
		if !ok {
			t.Fatalf("Lookup(%d) missing", w.ID)
		}
		if got.ID != w.ID || got.Week != w.Week || got.WorkoutType != w.WorkoutType {
			t.Fatalf("Lookup(%d) = %#v, want %#v", w.ID, got, w)
		}
	}

	if _, ok := s.Lookup(999); ok {
		t.Fatal("Lookup(999) = ok, want missing")
	}
}

func TestStore_WorkoutsReturnsClone(t *testing.T) {
	s := NewStore(1)
	s.ReplaceWorkouts(testWorkouts())

	snap := s.Workouts()
	snap[0].WorkoutType = trainer.TypeRace

	again, _ := s.Lookup(1)
	if again.WorkoutType != trainer.TypeEasy {
		t.Fatalf("store mutated through snapshot: %q", again.WorkoutType)
	}
}

func TestStore_ReplaceDropsStaleIDs(t *testing.T) {
	s := NewStore(1)
	s.ReplaceWorkouts(testWorkouts())
	s.ReplaceWorkouts([]trainer.Workout{{ID: 7, Week: 1}})

	if _, ok := s.Lookup(1); ok {
		t.Fatal("Lookup(1) = ok after wholesale replace, want missing")
	}
	if _, ok := s.Lookup(7); !ok {
		t.Fatal("Lookup(7) missing after replace")
	}
	if got := len(s.Workouts()); got != 1 {
		t.Fatalf("len(Workouts) = %d, want 1", got)
	}
}

func TestStore_CountdownCopies(t *testing.T) {
	s := NewStore(1)
	if s.Countdown() != nil {
		t.Fatal("Countdown() != nil before set")
	}

	s.SetCountdown(&trainer.Countdown{RaceName: "Paris Marathon", DaysLeft: 42})
	cd := s.Countdown()
	if cd == nil || cd.DaysLeft != 42 {
		t.Fatalf("Countdown = %#v, want 42 days", cd)
	}
	cd.DaysLeft = 0
	if s.Countdown().DaysLeft != 42 {
		t.Fatal("store countdown mutated through copy")
	}
}

func TestStore_PlanIDThreaded(t *testing.T) {
	s := NewStore(5)
	if s.PlanID() != 5 {
		t.Fatalf("PlanID = %d, want 5", s.PlanID())
	}
}
