package inmemory

import (
	"context"
	"sync"

	"github.com/janhq/chat-server/internal/domain/identifier"
	"github.com/janhq/chat-server/internal/domain/repository"
	"github.com/janhq/chat-server/internal/utils/platformerrors"
)

// Repository is a thread-safe repository.Repository kept in insertion order.
// Entities are copied on the way in and out so callers never share state with the store.
type Repository[E repository.Entity] struct {
	mu      sync.RWMutex
	entries []E
	clone   func(E) E
}

// NewRepository creates an empty repository. clone deep-copies an entity; nil
// means the entity is safe to copy by value.
func NewRepository[E repository.Entity](clone func(E) E) *Repository[E] {
	if clone == nil {
		clone = func(e E) E { return e }
	}
	return &Repository[E]{clone: clone}
}

func (r *Repository[E]) Create(ctx context.Context, entity E) (E, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(entity.EntityID()) >= 0 {
		var zero E
		return zero, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeConflict,
			"Entity already exists", nil, "e2b7d4f9-1c6a-4e38-9f05-a8d3c6b1e472",
			map[string]any{"entity_id": entity.EntityID().String()})
	}

	r.entries = append(r.entries, r.clone(entity))
	return entity, nil
}

func (r *Repository[E]) Update(ctx context.Context, entity E) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(entity.EntityID())
	if idx < 0 {
		return repository.NewNotFoundError(ctx, entity.EntityID())
	}
	r.entries[idx] = r.clone(entity)
	return nil
}

func (r *Repository[E]) Delete(ctx context.Context, id identifier.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return repository.NewNotFoundError(ctx, id)
	}
	r.entries = append(r.entries[:idx], r.entries[idx+1:]...)
	return nil
}

func (r *Repository[E]) Get(_ context.Context, id identifier.ID) (E, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		var zero E
		return zero, false, nil
	}
	return r.clone(r.entries[idx]), true, nil
}

func (r *Repository[E]) List(_ context.Context, opts repository.ListOptions) (int64, []E, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	skip, limit := opts.Window()
	page := repository.Slice(r.entries, skip, limit)
	return int64(len(r.entries)), r.cloneAll(page), nil
}

// Filter returns copies of the entries matching keep, in insertion order.
func (r *Repository[E]) Filter(keep func(E) bool) []E {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]E, 0)
	for _, e := range r.entries {
		if keep(e) {
			out = append(out, r.clone(e))
		}
	}
	return out
}

// indexOf expects the caller to hold the lock.
func (r *Repository[E]) indexOf(id identifier.ID) int {
	for i, e := range r.entries {
		if e.EntityID() == id {
			return i
		}
	}
	return -1
}

func (r *Repository[E]) cloneAll(items []E) []E {
	out := make([]E, len(items))
	for i, e := range items {
		out[i] = r.clone(e)
	}
	return out
}
