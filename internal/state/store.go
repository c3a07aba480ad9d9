package state

import (
	"sync"
	"time"

	"github.com/five82/handydiet/internal/diet"
)

// Phase describes how far the one-shot dataset load has progressed.
type Phase int

const (
	// Loading means the fetch has not settled yet.
	Loading Phase = iota
	// Ready means Dataset holds the plan.
	Ready
	// Failed means the load gave up; Err explains why.
	Failed
)

func (p Phase) String() string {
	switch p {
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "loading"
	}
}

// Snapshot represents the load result available to the UI.
type Snapshot struct {
	Phase     Phase
	Dataset   diet.Dataset
	Err       error
	SettledAt time.Time
}

// Ready reports whether a dataset is available.
func (s Snapshot) Ready() bool {
	return s.Phase == Ready
}

// Store records the dataset load. It settles exactly once; later calls to
// Settle are ignored.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Settle records the outcome of the dataset fetch. A non-nil err is terminal
// for the session. It returns false when the store had already settled.
func (s *Store) Settle(data diet.Dataset, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Phase != Loading {
		return false
	}
	s.snapshot.SettledAt = time.Now()
	if err != nil {
		s.snapshot.Phase = Failed
		s.snapshot.Err = err
		return true
	}
	s.snapshot.Phase = Ready
	s.snapshot.Dataset = cloneDataset(data)
	return true
}

// Snapshot returns a copy of the current load state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Dataset = cloneDataset(s.snapshot.Dataset)
	return snap
}

// cloneDataset copies the day and meal slices so callers cannot reorder the
// stored plan. Dishes are shared; they are never mutated.
func cloneDataset(d diet.Dataset) diet.Dataset {
	if len(d.Days) == 0 {
		return diet.Dataset{}
	}
	days := make([]diet.Day, len(d.Days))
	for i, day := range d.Days {
		meals := make([]diet.Meal, len(day.Meals))
		copy(meals, day.Meals)
		days[i] = diet.Day{Name: day.Name, Meals: meals}
	}
	return diet.Dataset{Days: days}
}
