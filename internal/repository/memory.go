package repository

import (
	"context"
	"sync"
)

// memoryBlobRepo is the reference in-memory backend.
type memoryBlobRepo struct {
	mu    sync.RWMutex
	blobs map[string]string
}

func NewMemoryBlobRepository() BlobRepository {
	return &memoryBlobRepo{blobs: make(map[string]string)}
}

func (r *memoryBlobRepo) Put(ctx context.Context, id string, blob string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blobs[id] = blob
	return nil
}

func (r *memoryBlobRepo) Get(ctx context.Context, id string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	blob, ok := r.blobs[id]
	return blob, ok, nil
}

func (r *memoryBlobRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.blobs, id)
	return nil
}

func (r *memoryBlobRepo) IDs(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.blobs))
	for id := range r.blobs {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *memoryBlobRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.blobs), nil
}
