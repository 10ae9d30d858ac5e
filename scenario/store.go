package scenario

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("scenario not found")

// Store keeps scenarios in memory, in insertion order.
type Store struct {
	mu        sync.RWMutex
	scenarios []Config
}

// NewStore returns a store seeded with the default presets.
func NewStore() *Store {
	return &Store{scenarios: []Config{Conservative, Aggressive}}
}

// Save inserts c or replaces the scenario with the same ID. An empty ID is
// filled with a fresh uuid. The stored value is returned.
func (s *Store) Save(c Config) Config {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	for i := range s.scenarios {
		if s.scenarios[i].ID == c.ID {
			s.scenarios[i] = c
			return c
		}
	}
	s.scenarios = append(s.scenarios, c)
	return c
}

func (s *Store) Get(id string) (Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.scenarios {
		if c.ID == id {
			return c, nil
		}
	}
	return Config{}, ErrNotFound
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.scenarios {
		if c.ID == id {
			s.scenarios = append(s.scenarios[:i], s.scenarios[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) List() []Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]Config, len(s.scenarios))
	copy(res, s.scenarios)
	return res
}
