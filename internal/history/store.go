package history

import (
	"sync"

	"github.com/dharmasatrya/flightpredict/internal/models"
)

const DefaultCapacity = 10

// Store keeps the most recent predictions, newest first.
type Store struct {
	mu       sync.RWMutex
	entries  []models.PredictionResult
	capacity int
}

func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{capacity: capacity}
}

func (s *Store) Add(result models.PredictionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]models.PredictionResult, 0, s.capacity)
	entries = append(entries, result)
	for _, e := range s.entries {
		if len(entries) == s.capacity {
			break
		}
		entries = append(entries, e)
	}
	s.entries = entries
}

func (s *Store) Get(id string) (models.PredictionResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return models.PredictionResult{}, false
}

func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Clear() {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// List returns a filtered, sorted copy of the history.
func (s *Store) List(filter *Filter) []models.PredictionResult {
	s.mu.RLock()
	snapshot := make([]models.PredictionResult, len(s.entries))
	copy(snapshot, s.entries)
	s.mu.RUnlock()

	return Apply(snapshot, filter)
}
