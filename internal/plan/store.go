package plan

import (
	"sync"

	"github.com/rkeller/stride/internal/trainer"
)

// Store holds the workouts and countdown of a single plan. It is the only
// source of truth for the rendered table: reloads replace the workout set
// wholesale, optimistic edits mutate one field at a time.
type Store struct {
	mu        sync.RWMutex
	planID    int64
	workouts  []trainer.Workout
	index     map[int64]int
	countdown *trainer.Countdown
	loaded    bool
}

// NewStore creates an empty store scoped to one plan.
func NewStore(planID int64) *Store {
	return &Store{planID: planID, index: make(map[int64]int)}
}

// PlanID returns the plan this store is scoped to.
func (s *Store) PlanID() int64 {
	return s.planID
}

// Loaded reports whether a workout list has ever been applied.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// ReplaceWorkouts swaps in a freshly fetched workout list, preserving its
// order and rebuilding the id index.
func (s *Store) ReplaceWorkouts(workouts []trainer.Workout) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.workouts = cloneWorkouts(workouts)
	s.index = make(map[int64]int, len(s.workouts))
	for i, w := range s.workouts {
		s.index[w.ID] = i
	}
	s.loaded = true
}

// SetCountdown stores the latest countdown stats.
func (s *Store) SetCountdown(countdown *trainer.Countdown) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if countdown == nil {
		s.countdown = nil
		return
	}
	cd := *countdown
	s.countdown = &cd
}

// Workouts returns a copy of the current workout list in store order.
func (s *Store) Workouts() []trainer.Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneWorkouts(s.workouts)
}

// Countdown returns a copy of the countdown stats, or nil before first load.
func (s *Store) Countdown() *trainer.Countdown {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.countdown == nil {
		return nil
	}
	cd := *s.countdown
	return &cd
}

// Lookup finds a workout by id.
func (s *Store) Lookup(id int64) (trainer.Workout, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return trainer.Workout{}, false
	}
	return s.workouts[i], true
}

// mutate applies fn to the workout with the given id. Returns false when the
// workout is no longer in the store.
func (s *Store) mutate(id int64, fn func(*trainer.Workout)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return false
	}
	fn(&s.workouts[i])
	return true
}

func cloneWorkouts(workouts []trainer.Workout) []trainer.Workout {
	if len(workouts) == 0 {
		return nil
	}
	dup := make([]trainer.Workout, len(workouts))
	copy(dup, workouts)
	return dup
}
