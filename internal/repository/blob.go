package repository

import (
	"context"
)

// BlobRepository stores one opaque encrypted blob per session id. Every
// implementation is a dumb byte shelf: expiry, locking and secure cleanup
// are owned by the session store on top.
type BlobRepository interface {
	// Put stores or replaces the blob for id in a single atomic swap.
	Put(ctx context.Context, id string, blob string) error
	// Get returns the blob and true, or ("", false, nil) when id is unknown.
	Get(ctx context.Context, id string) (string, bool, error)
	// Delete removes the blob; deleting an unknown id is a no-op.
	Delete(ctx context.Context, id string) error
	// IDs returns a snapshot of every stored session id.
	IDs(ctx context.Context) ([]string, error)
	// Count returns the number of stored blobs.
	Count(ctx context.Context) (int, error)
}
