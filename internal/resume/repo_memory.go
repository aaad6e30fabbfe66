package resume

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Snapshot
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Snapshot)}
}

// Get returns the user's stored snapshot.
func (r *MemoryRepo) Get(ctx context.Context, userID string) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	snap, ok := r.data[userID]
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	return copySnapshot(snap), nil
}

// Replace stores the snapshot wholesale.
func (r *MemoryRepo) Replace(ctx context.Context, userID string, snap Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[userID] = copySnapshot(snap)
	return nil
}

func copySnapshot(snap Snapshot) Snapshot {
	out := snap
	out.Experience = append([]Experience(nil), snap.Experience...)
	out.Skills = append([]Skill(nil), snap.Skills...)
	if snap.Education != nil {
		edu := *snap.Education
		out.Education = &edu
	}
	return out
}

var _ Repo = (*MemoryRepo)(nil)
