package services

import (
	"sync"

	"github.com/contactapp/backend/internal/pkg/dbctx"
)

// registry holds the one "current" service reference per aggregate type plus
// whether that reference is the legacy transient-backed instance or a managed
// one. Lazy access and registration share a single mutex, so two concurrent
// managed constructions cannot both read-and-migrate against the same
// disappearing legacy state.
type registry[T any] struct {
	mu      sync.Mutex
	current T
	present bool
	legacy  bool
}

// instance returns the current reference, lazily creating and publishing a
// legacy instance when nothing has been registered yet.
func (r *registry[T]) instance(create func() T) T {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.present {
		return r.current
	}
	r.current = create()
	r.present = true
	r.legacy = true
	return r.current
}

// register publishes candidate as the current reference. When the previous
// reference was the legacy instance, migrateFrom runs against it before the
// swap, so no caller ever observes a managed instance holding partial data.
// replacedManaged reports a second managed registration, which swaps the
// reference without migrating.
func (r *registry[T]) register(candidate T, legacy bool, migrateFrom func(previous T) error) (replacedManaged bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.present && r.legacy && !legacy && migrateFrom != nil {
		if err := migrateFrom(r.current); err != nil {
			return false, err
		}
	}
	replacedManaged = r.present && !r.legacy && !legacy
	r.current = candidate
	r.present = true
	r.legacy = legacy
	return replacedManaged, nil
}

// reset clears the reference entirely. Test isolation only.
func (r *registry[T]) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	var zero T
	r.current = zero
	r.present = false
	r.legacy = false
}

// migrate writes every aggregate of a legacy snapshot through add, insert
// semantics. Duplicates are not expected during the one-time handoff; an
// aggregate the target already holds is skipped, not an error. Returns how
// many aggregates were actually inserted.
func migrate[T any](dbc dbctx.Context, snapshot []*T, add func(dbctx.Context, *T) (bool, error)) (int, error) {
	migrated := 0
	for _, aggregate := range snapshot {
		added, err := add(dbc, aggregate)
		if err != nil {
			return migrated, err
		}
		if added {
			migrated++
		}
	}
	return migrated, nil
}
