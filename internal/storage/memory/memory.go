// Package memory provides an in-memory storage.Store for tests and
// sessions that should not outlive the process.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/mmynk/yardsale/internal/models"
	"github.com/mmynk/yardsale/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store closed")

// Store keeps each slot as encoded JSON, the same shape the SQLite store persists.
type Store struct {
	mu     sync.Mutex
	slots  map[storage.Slot][]byte
	closed bool

	// FailWrites makes every Write fail with the given error.
	FailWrites error
}

// New returns an empty store.
func New() *Store {
	return &Store{slots: make(map[storage.Slot][]byte)}
}

// Load decodes every stored slot.
func (s *Store) Load(_ context.Context) (*models.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}

	ds := &models.Dataset{}
	for _, slot := range storage.AllSlots {
		data, ok := s.slots[slot]
		if !ok {
			continue
		}
		if err := storage.DecodeSlot(ds, slot, data); err != nil {
			return nil, err
		}
	}
	loaded := ds.Clone()
	return &loaded, nil
}

// Write encodes all slots before storing any of them.
func (s *Store) Write(_ context.Context, ds *models.Dataset, slots ...storage.Slot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if s.FailWrites != nil {
		return s.FailWrites
	}

	encoded := make(map[storage.Slot][]byte, len(slots))
	for _, slot := range slots {
		data, err := storage.EncodeSlot(ds, slot)
		if err != nil {
			return err
		}
		encoded[slot] = data
	}
	for slot, data := range encoded {
		s.slots[slot] = data
	}
	return nil
}

// Raw returns the stored JSON of a slot.
func (s *Store) Raw(slot storage.Slot) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.slots[slot]
	return string(data), ok
}

// Close marks the store closed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
