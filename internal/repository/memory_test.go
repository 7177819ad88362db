package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBlobRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("get of unknown id reports not found", func(t *testing.T) {
		repo := NewMemoryBlobRepository()
		_, ok, err := repo.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("put then get returns blob", func(t *testing.T) {
		repo := NewMemoryBlobRepository()
		require.NoError(t, repo.Put(ctx, "s1", "ciphertext-1"))

		blob, ok, err := repo.Get(ctx, "s1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "ciphertext-1", blob)
	})

	t.Run("put replaces existing blob", func(t *testing.T) {
		repo := NewMemoryBlobRepository()
		require.NoError(t, repo.Put(ctx, "s1", "v1"))
		require.NoError(t, repo.Put(ctx, "s1", "v2"))

		blob, ok, _ := repo.Get(ctx, "s1")
		assert.True(t, ok)
		assert.Equal(t, "v2", blob)
	})

	t.Run("delete removes blob and tolerates unknown ids", func(t *testing.T) {
		repo := NewMemoryBlobRepository()
		require.NoError(t, repo.Put(ctx, "s1", "v1"))
		require.NoError(t, repo.Delete(ctx, "s1"))
		require.NoError(t, repo.Delete(ctx, "s1"))

		_, ok, _ := repo.Get(ctx, "s1")
		assert.False(t, ok)
	})

	t.Run("ids and count reflect contents", func(t *testing.T) {
		repo := NewMemoryBlobRepository()
		require.NoError(t, repo.Put(ctx, "a", "1"))
		require.NoError(t, repo.Put(ctx, "b", "2"))

		ids, err := repo.IDs(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a", "b"}, ids)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}
