// ABOUTME: Badger-backed persistent state store for profile and food log.
// ABOUTME: Whole-document read-modify-write with read-your-writes visibility.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	badger "github.com/dgraph-io/badger/v3"

	"github.com/sehatsense/sehat/internal/models"
	"github.com/sehatsense/sehat/pkg/logger"
)

// stateKey is the single namespaced record holding all persisted state.
const stateKey = "sehat:state"

// State is the full persisted document: one profile, one food log.
type State struct {
	Profile *models.UserProfile `json:"profile"`
	FoodLog models.FoodLog      `json:"foodLog"`
}

// ErrNoProfile is returned by mutations that require an existing profile.
var ErrNoProfile = fmt.Errorf("no profile exists yet; run setup first")

// Store owns the profile and food log for the lifetime of the process.
// Views read through its accessors and route every mutation through its
// write API; retrieved objects are deep copies.
type Store struct {
	db  *badger.DB
	log *logger.Logger

	mu    sync.RWMutex
	state State
	subs  []func(State)
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "sehat")
}

// Open opens or creates the store in the given directory and loads the
// persisted state. Missing or corrupt state is treated as a first run,
// never an error.
func Open(dir string, log *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).
		WithSyncWrites(true).
		WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	s := &Store{db: db, log: log}
	s.state = s.loadState()
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// loadState reads the state record. Absent or undecodable content yields
// empty defaults.
func (s *Store) loadState() State {
	empty := State{FoodLog: models.FoodLog{}}

	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(stateKey))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return empty
	}
	if err != nil {
		s.log.Warnw("failed to read persisted state, starting fresh", "error", err)
		return empty
	}

	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		s.log.Warnw("persisted state is corrupt, starting fresh", "error", err)
		return empty
	}
	if st.FoodLog == nil {
		st.FoodLog = models.FoodLog{}
	}
	return st
}

// Subscribe registers a callback invoked after every successful mutation
// with a snapshot of the new state.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Profile returns a copy of the current profile, or nil if none exists.
func (s *Store) Profile() *models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Profile.Clone()
}

// FoodLog returns a copy of the current food log.
func (s *Store) FoodLog() models.FoodLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.FoodLog.Clone()
}

func (s *Store) snapshotLocked() State {
	return State{
		Profile: s.state.Profile.Clone(),
		FoodLog: s.state.FoodLog.Clone(),
	}
}

// mutate applies fn to a copy of the state, persists it durably, then
// swaps the in-memory state and notifies subscribers before returning.
func (s *Store) mutate(fn func(*State) error) error {
	s.mu.Lock()

	next := s.snapshotLocked()
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		return err
	}

	raw, err := json.Marshal(next)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("encode state: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(stateKey), raw)
	})
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("persist state: %w", err)
	}

	s.state = next
	subs := append([](func(State))(nil), s.subs...)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
	return nil
}

// SetProfile replaces the profile wholesale and resets the food log.
// A new profile invalidates the scoring context of prior meals.
func (s *Store) SetProfile(p *models.UserProfile) error {
	if p == nil {
		return fmt.Errorf("profile must not be nil")
	}
	return s.mutate(func(st *State) error {
		np := p.Clone()
		np.Normalize()
		st.Profile = np
		st.FoodLog = models.FoodLog{}
		return nil
	})
}

// ProfileUpdate is a partial profile change. Nil fields are left as-is.
// Metrics entries are merged into the existing map; Conditions, when
// non-nil, replaces the condition set.
type ProfileUpdate struct {
	Name              *string
	Age               *int
	Gender            *models.Gender
	Conditions        []models.Condition
	Metrics           map[string]float64
	DietaryPreference *models.DietaryPreference
	Allergies         []string
	CurrentWeight     *float64
	TargetWeight      *float64
	Height            *float64
	WaterIntake       *int
	ActivityLevel     *models.ActivityLevel
	SleepHours        *float64
}

// UpdateProfile merges the update into the existing profile and
// re-derives bmi and the weight-loss-goal flag. Errors if no profile
// exists yet.
func (s *Store) UpdateProfile(u ProfileUpdate) error {
	return s.mutate(func(st *State) error {
		if st.Profile == nil {
			return ErrNoProfile
		}
		p := st.Profile
		if u.Name != nil {
			p.Name = *u.Name
		}
		if u.Age != nil {
			p.Age = *u.Age
		}
		if u.Gender != nil {
			p.Gender = *u.Gender
		}
		if u.Conditions != nil {
			p.Conditions = append([]models.Condition(nil), u.Conditions...)
		}
		if u.Metrics != nil {
			if p.Metrics == nil {
				p.Metrics = map[string]float64{}
			}
			for k, v := range u.Metrics {
				p.Metrics[k] = v
			}
		}
		if u.DietaryPreference != nil {
			p.DietaryPreference = *u.DietaryPreference
		}
		if u.Allergies != nil {
			p.Allergies = append([]string(nil), u.Allergies...)
		}
		if u.CurrentWeight != nil {
			p.CurrentWeight = *u.CurrentWeight
		}
		if u.TargetWeight != nil {
			p.TargetWeight = *u.TargetWeight
		}
		if u.Height != nil {
			p.Height = *u.Height
		}
		if u.WaterIntake != nil {
			p.WaterIntake = *u.WaterIntake
		}
		if u.ActivityLevel != nil {
			p.ActivityLevel = *u.ActivityLevel
		}
		if u.SleepHours != nil {
			p.SleepHours = *u.SleepHours
		}
		p.Normalize()
		return nil
	})
}

// AddMeal prepends the meal to its local-date bucket.
func (s *Store) AddMeal(m *models.LoggedMeal) error {
	if m == nil {
		return fmt.Errorf("meal must not be nil")
	}
	return s.mutate(func(st *State) error {
		date := models.DateKey(m.Timestamp)
		st.FoodLog[date] = append([]models.LoggedMeal{*m}, st.FoodLog[date]...)
		return nil
	})
}

// DeleteMeal removes the meal with the given id from whichever bucket
// contains it, pruning the bucket if it becomes empty. Unknown ids are
// a no-op.
func (s *Store) DeleteMeal(mealID string) error {
	return s.mutate(func(st *State) error {
		for date, meals := range st.FoodLog {
			for i, m := range meals {
				if m.ID != mealID {
					continue
				}
				remaining := append(append([]models.LoggedMeal(nil), meals[:i]...), meals[i+1:]...)
				if len(remaining) == 0 {
					delete(st.FoodLog, date)
				} else {
					st.FoodLog[date] = remaining
				}
				return nil
			}
		}
		return nil
	})
}
