package store

import (
	"fmt"
	"sync"

	"github.com/contactapp/backend/internal/domain"
	"github.com/contactapp/backend/internal/pkg/dbctx"
)

// memoryStore is the transient backend used when a service is reached through
// its global accessor before the managed runtime has wired the durable one.
// One generic implementation backs all three aggregate types; the id and copy
// functions are the only per-type pieces.
//
// All map access happens under the mutex, so exists/save/delete are atomic
// per key. Save reports insert-vs-overwrite from inside the critical section,
// which is what lets two racing adds resolve to a single winner.
type memoryStore[T any] struct {
	mu    sync.RWMutex
	data  map[string]*T
	label string
	id    func(*T) string
	copy  func(*T) (*T, error)
}

func NewMemoryContactStore() ContactStore {
	return &memoryStore[domain.Contact]{
		data:  make(map[string]*domain.Contact),
		label: "contact",
		id:    (*domain.Contact).ID,
		copy:  (*domain.Contact).Copy,
	}
}

func NewMemoryTaskStore() TaskStore {
	return &memoryStore[domain.Task]{
		data:  make(map[string]*domain.Task),
		label: "task",
		id:    (*domain.Task).ID,
		copy:  (*domain.Task).Copy,
	}
}

func NewMemoryAppointmentStore() AppointmentStore {
	return &memoryStore[domain.Appointment]{
		data:  make(map[string]*domain.Appointment),
		label: "appointment",
		id:    (*domain.Appointment).ID,
		copy:  (*domain.Appointment).Copy,
	}
}

func (m *memoryStore[T]) ExistsByID(_ dbctx.Context, id string) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("%sId must not be empty: %w", m.label, domain.ErrInvalidArgument)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[id]
	return ok, nil
}

func (m *memoryStore[T]) Save(_ dbctx.Context, aggregate *T) (bool, error) {
	if aggregate == nil {
		return false, fmt.Errorf("%s must not be nil: %w", m.label, domain.ErrInvalidArgument)
	}
	id := m.id(aggregate)
	if id == "" {
		return false, fmt.Errorf("%sId must not be empty: %w", m.label, domain.ErrInvalidArgument)
	}
	// Copy before taking the lock; a corrupt source fails here as illegal state.
	cp, err := m.copy(aggregate)
	if err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, existed := m.data[id]
	m.data[id] = cp
	return !existed, nil
}

func (m *memoryStore[T]) FindByID(_ dbctx.Context, id string) (*T, error) {
	if id == "" {
		return nil, fmt.Errorf("%sId must not be empty: %w", m.label, domain.ErrInvalidArgument)
	}
	m.mu.RLock()
	stored, ok := m.data[id]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return m.copy(stored)
}

func (m *memoryStore[T]) FindAll(_ dbctx.Context) ([]*T, error) {
	m.mu.RLock()
	snapshot := make([]*T, 0, len(m.data))
	for _, stored := range m.data {
		snapshot = append(snapshot, stored)
	}
	m.mu.RUnlock()

	results := make([]*T, 0, len(snapshot))
	for _, stored := range snapshot {
		cp, err := m.copy(stored)
		if err != nil {
			return nil, err
		}
		results = append(results, cp)
	}
	return results, nil
}

func (m *memoryStore[T]) DeleteByID(_ dbctx.Context, id string) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("%sId must not be empty: %w", m.label, domain.ErrInvalidArgument)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[id]
	delete(m.data, id)
	return ok, nil
}

func (m *memoryStore[T]) DeleteAll(_ dbctx.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]*T)
	return nil
}
