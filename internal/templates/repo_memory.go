package templates

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Template
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Template)}
}

// Seed inserts or replaces a template record. Used at startup to register the
// templates found on disk when no database is configured.
func (r *MemoryRepo) Seed(tpl Template) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[tpl.ID] = tpl
}

// List returns all template records sorted by slug.
func (r *MemoryRepo) List(ctx context.Context) ([]Template, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]Template, 0, len(r.data))
	for _, tpl := range r.data {
		out = append(out, tpl)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out, nil
}

// GetByID returns a template record by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Template, error) {
	if err := ctx.Err(); err != nil {
		return Template{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	tpl, ok := r.data[id]
	if !ok {
		return Template{}, ErrNotFound
	}
	return tpl, nil
}

// Update applies a partial update to a template record.
func (r *MemoryRepo) Update(ctx context.Context, id string, name, description *string) (Template, error) {
	if err := ctx.Err(); err != nil {
		return Template{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	tpl, ok := r.data[id]
	if !ok {
		return Template{}, ErrNotFound
	}
	if name != nil {
		tpl.Name = *name
	}
	if description != nil {
		tpl.Description = *description
	}
	tpl.UpdatedAt = time.Now().UTC()
	r.data[id] = tpl
	return tpl, nil
}

var _ Repo = (*MemoryRepo)(nil)
