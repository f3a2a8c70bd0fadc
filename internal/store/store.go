// Package store holds the application state in memory and persists it
// as a single JSON document.
//
// All reads and writes go through one mutex, so callers always observe
// a consistent state. Persistence is asynchronous: mutations enqueue a
// snapshot for a background writer, and consecutive snapshots coalesce
// so only the newest one is written.
package store

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/budgetcopain/backend/internal/models"
	"github.com/budgetcopain/backend/internal/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultKey is the storage key the application state is persisted under.
const DefaultKey = "@budgetcopain_data"

type Store struct {
	backend storage.Backend
	key     string
	log     zerolog.Logger

	mu    sync.Mutex
	state models.AppState

	writes chan write
	quit   chan struct{}
	done   chan struct{}
}

// write is one job for the background writer: either a snapshot to save
// or the removal of the document. When done is set, the job's result is
// delivered on it.
type write struct {
	data   []byte
	remove bool
	done   chan error
}

type Option func(*Store)

// WithKey overrides the storage key. Used by tests to isolate documents.
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.log = logger
	}
}

// New creates a Store and starts its background writer. Call Load before
// serving requests and Close on shutdown.
func New(backend storage.Backend, options ...Option) *Store {
	s := &Store{
		backend: backend,
		key:     DefaultKey,
		log:     log.Logger,
		writes:  make(chan write, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}

	for _, option := range options {
		option(s)
	}

	go s.persistLoop()

	return s
}

// Load reads the persisted document into memory. A missing or corrupt
// document is not an error: the state is bootstrapped with the default
// categories instead, a parse failure is only logged.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.backend.Load(s.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.state = models.Bootstrap()
			return nil
		}
		return err
	}

	var state models.AppState
	err = json.Unmarshal(data, &state)
	if err != nil {
		s.log.Error().Err(err).Msg("could not parse the persisted application state, starting over with the defaults")
		s.state = models.Bootstrap()
		return nil
	}

	// Documents written before a feature existed can miss whole
	// collections, fill those with their defaults
	if state.Transactions == nil {
		state.Transactions = []models.Transaction{}
	}
	if len(state.Categories) == 0 {
		state.Categories = models.DefaultCategories()
	}
	if state.MonthlyBudgets == nil {
		state.MonthlyBudgets = map[string]models.MonthlyBudget{}
	}

	s.state = state
	return nil
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Clone()
}

// Reset discards all state and deletes the persisted document. The
// in-memory state is bootstrapped again with the default categories.
//
// The removal runs on the background writer so it is ordered after any
// write that is already in flight. Reset waits for it to finish.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Drop any pending write of the old state
	select {
	case <-s.writes:
	default:
	}

	job := write{remove: true, done: make(chan error, 1)}
	s.writes <- job
	err := <-job.done
	if err != nil {
		s.log.Error().Err(err).Msg("could not delete the persisted document")
		return err
	}

	s.state = models.Bootstrap()
	return nil
}

// Close flushes any pending write and stops the background writer.
func (s *Store) Close() {
	close(s.quit)
	<-s.done
}

// persist enqueues a snapshot of the state for the background writer,
// replacing any snapshot that has not been written yet. The caller must
// hold the mutex.
//
// Nothing is written before onboarding created the user configuration,
// an empty shell of a document would otherwise shadow the bootstrap
// defaults forever.
func (s *Store) persist() {
	if s.state.UserConfig == nil {
		return
	}

	data, err := json.Marshal(s.state)
	if err != nil {
		s.log.Error().Err(err).Msg("could not serialize application state")
		return
	}

	select {
	case <-s.writes:
	default:
	}

	s.writes <- write{data: data}
}

func (s *Store) persistLoop() {
	for {
		select {
		case job := <-s.writes:
			s.run(job)

		case <-s.quit:
			select {
			case job := <-s.writes:
				s.run(job)
			default:
			}

			close(s.done)
			return
		}
	}
}

func (s *Store) run(job write) {
	var err error
	if job.remove {
		err = s.backend.Delete(s.key)
	} else {
		err = s.backend.Save(s.key, job.data)
	}

	if err != nil {
		s.log.Error().Err(err).Str("key", s.key).Msg("could not persist application state")
	}

	if job.done != nil {
		job.done <- err
	}
}
