package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/audit"
	apperrors "github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/errors"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/model"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/privacy"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/repository"
)

func newTestStore(t *testing.T, cfg Config) (*Store, repository.BlobRepository) {
	t.Helper()

	enc, err := privacy.NewManager()
	require.NoError(t, err)

	if cfg.TempDir == "" {
		cfg.TempDir = t.TempDir()
	}
	repo := repository.NewMemoryBlobRepository()
	store, err := NewStore(repo, enc, audit.NewTrail(), cfg)
	require.NoError(t, err)
	return store, repo
}

func strPtr(s string) *string { return &s }

func TestStoreLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("create returns unique ids and empty sessions", func(t *testing.T) {
		store, _ := newTestStore(t, Config{})

		id1, err := store.Create(ctx)
		require.NoError(t, err)
		id2, err := store.Create(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, id1, id2)

		sess, err := store.Get(ctx, id1)
		require.NoError(t, err)
		assert.Equal(t, id1, sess.ID)
		assert.Empty(t, sess.History)
		assert.Equal(t, "en", sess.Language)
		assert.False(t, sess.DisclaimerAcknowledged)
		assert.False(t, sess.LastActivity.Before(sess.StartTime))
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		store, _ := newTestStore(t, Config{})

		_, err := store.Get(ctx, "no-such-session")
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeSessionNotFound))
	})

	t.Run("end purges the session", func(t *testing.T) {
		store, _ := newTestStore(t, Config{})

		id, err := store.Create(ctx)
		require.NoError(t, err)
		require.NoError(t, store.End(ctx, id))

		_, err = store.Get(ctx, id)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeSessionNotFound))
		assert.True(t, apperrors.IsCode(store.End(ctx, id), apperrors.ErrCodeSessionNotFound))
	})

	t.Run("active count and id snapshot track stored sessions", func(t *testing.T) {
		store, _ := newTestStore(t, Config{})

		id1, err := store.Create(ctx)
		require.NoError(t, err)
		id2, err := store.Create(ctx)
		require.NoError(t, err)

		n, err := store.ActiveCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		ids, err := store.IDs(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{id1, id2}, ids)

		require.NoError(t, store.End(ctx, id1))
		n, err = store.ActiveCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		ids, err = store.IDs(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{id2}, ids)
	})
}

func TestStoreUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update merges user context fields", func(t *testing.T) {
		store, _ := newTestStore(t, Config{})
		id, err := store.Create(ctx)
		require.NoError(t, err)

		issue := model.IssueTenantRights
		require.NoError(t, store.Update(ctx, id, model.SessionUpdate{
			UserContext: &model.UserContextUpdate{IssueType: &issue},
		}))

		urgency := model.UrgencyHigh
		require.NoError(t, store.Update(ctx, id, model.SessionUpdate{
			UserContext: &model.UserContextUpdate{UrgencyLevel: &urgency},
		}))

		sess, err := store.Get(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, sess.UserContext.IssueType)
		assert.Equal(t, model.IssueTenantRights, *sess.UserContext.IssueType)
		require.NotNil(t, sess.UserContext.UrgencyLevel)
		assert.Equal(t, model.UrgencyHigh, *sess.UserContext.UrgencyLevel)
	})

	t.Run("append turn grows history in order", func(t *testing.T) {
		store, _ := newTestStore(t, Config{})
		id, err := store.Create(ctx)
		require.NoError(t, err)

		for _, input := range []string{"first message", "second message"} {
			require.NoError(t, store.Update(ctx, id, model.SessionUpdate{
				AppendTurn: &model.ConversationTurn{
					Timestamp: time.Now(),
					UserInput: input,
					Response:  model.SystemResponse{Text: "ok"},
				},
			}))
		}

		sess, err := store.Get(ctx, id)
		require.NoError(t, err)
		require.Len(t, sess.History, 2)
		assert.Equal(t, "first message", sess.History[0].UserInput)
		assert.Equal(t, "second message", sess.History[1].UserInput)
	})

	t.Run("invalid update leaves stored state untouched", func(t *testing.T) {
		store, _ := newTestStore(t, Config{})
		id, err := store.Create(ctx)
		require.NoError(t, err)

		bad := model.IssueType("parking_ticket")
		err = store.Update(ctx, id, model.SessionUpdate{
			Language:    strPtr("es"),
			UserContext: &model.UserContextUpdate{IssueType: &bad},
		})
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidInput))

		sess, err := store.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "en", sess.Language)
		assert.Nil(t, sess.UserContext.IssueType)
	})

	t.Run("stored history is anonymized at rest", func(t *testing.T) {
		store, _ := newTestStore(t, Config{})
		id, err := store.Create(ctx)
		require.NoError(t, err)

		require.NoError(t, store.Update(ctx, id, model.SessionUpdate{
			AppendTurn: &model.ConversationTurn{
				Timestamp: time.Now(),
				UserInput: "Contact me at jane.doe@example.com or 555-123-4567",
			},
		}))

		sess, err := store.Get(ctx, id)
		require.NoError(t, err)
		require.Len(t, sess.History, 1)
		assert.NotContains(t, sess.History[0].UserInput, "jane.doe@example.com")
		assert.NotContains(t, sess.History[0].UserInput, "555-123-4567")
		assert.Contains(t, sess.History[0].UserInput, "[EMAIL_")
		assert.Contains(t, sess.History[0].UserInput, "[PHONE_")
	})
}

func TestStoreExpiration(t *testing.T) {
	ctx := context.Background()

	t.Run("expired session reads like an unknown one", func(t *testing.T) {
		store, repo := newTestStore(t, Config{Timeout: 10 * time.Millisecond})
		id, err := store.Create(ctx)
		require.NoError(t, err)

		time.Sleep(30 * time.Millisecond)

		_, err = store.Get(ctx, id)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeSessionNotFound))

		// Lazy expiration purged the record itself.
		_, ok, err := repo.Get(ctx, id)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("cleanup sweeps only expired sessions", func(t *testing.T) {
		store, _ := newTestStore(t, Config{Timeout: 50 * time.Millisecond})

		stale, err := store.Create(ctx)
		require.NoError(t, err)
		time.Sleep(80 * time.Millisecond)
		fresh, err := store.Create(ctx)
		require.NoError(t, err)

		n, err := store.CleanupExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		_, err = store.Get(ctx, stale)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeSessionNotFound))
		_, err = store.Get(ctx, fresh)
		assert.NoError(t, err)
	})

	t.Run("corrupt blob is purged as expired", func(t *testing.T) {
		store, repo := newTestStore(t, Config{})
		id, err := store.Create(ctx)
		require.NoError(t, err)

		require.NoError(t, repo.Put(ctx, id, "not-a-valid-blob"))

		n, err := store.CleanupExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		_, err = store.Get(ctx, id)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeSessionNotFound))
	})

	t.Run("activity keeps a session alive", func(t *testing.T) {
		store, _ := newTestStore(t, Config{Timeout: 150 * time.Millisecond})
		id, err := store.Create(ctx)
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			time.Sleep(60 * time.Millisecond)
			require.NoError(t, store.Update(ctx, id, model.SessionUpdate{Language: strPtr("en")}))
		}

		_, err = store.Get(ctx, id)
		assert.NoError(t, err)
	})
}

func TestStoreConcurrency(t *testing.T) {
	ctx := context.Background()

	t.Run("concurrent updates on one session all land", func(t *testing.T) {
		store, _ := newTestStore(t, Config{})
		id, err := store.Create(ctx)
		require.NoError(t, err)

		const writers = 16
		var wg sync.WaitGroup
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				assert.NoError(t, store.Update(ctx, id, model.SessionUpdate{
					AppendTurn: &model.ConversationTurn{
						Timestamp: time.Now(),
						UserInput: fmt.Sprintf("message %d", n),
					},
				}))
			}(i)
		}
		wg.Wait()

		sess, err := store.Get(ctx, id)
		require.NoError(t, err)
		assert.Len(t, sess.History, writers)
	})

	t.Run("distinct sessions update independently", func(t *testing.T) {
		store, _ := newTestStore(t, Config{})

		const sessions = 8
		ids := make([]string, sessions)
		for i := range ids {
			id, err := store.Create(ctx)
			require.NoError(t, err)
			ids[i] = id
		}

		var wg sync.WaitGroup
		for _, id := range ids {
			wg.Add(1)
			go func(id string) {
				defer wg.Done()
				for j := 0; j < 5; j++ {
					assert.NoError(t, store.Update(ctx, id, model.SessionUpdate{
						AppendTurn: &model.ConversationTurn{
							Timestamp: time.Now(),
							UserInput: "turn",
						},
					}))
				}
			}(id)
		}
		wg.Wait()

		for _, id := range ids {
			sess, err := store.Get(ctx, id)
			require.NoError(t, err)
			assert.Len(t, sess.History, 5)
		}
	})

	t.Run("sweep does not race live updates", func(t *testing.T) {
		store, _ := newTestStore(t, Config{})
		id, err := store.Create(ctx)
		require.NoError(t, err)

		done := make(chan struct{})
		go func() {
			defer close(done)
			for i := 0; i < 10; i++ {
				_, err := store.CleanupExpired(ctx)
				assert.NoError(t, err)
			}
		}()

		for i := 0; i < 10; i++ {
			require.NoError(t, store.Update(ctx, id, model.SessionUpdate{
				AppendTurn: &model.ConversationTurn{
					Timestamp: time.Now(),
					UserInput: "still here",
				},
			}))
		}
		<-done

		sess, err := store.Get(ctx, id)
		require.NoError(t, err)
		assert.Len(t, sess.History, 10)
	})
}

func TestStoreTempBlobs(t *testing.T) {
	ctx := context.Background()

	t.Run("store and retrieve round trip", func(t *testing.T) {
		store, _ := newTestStore(t, Config{})
		id, err := store.Create(ctx)
		require.NoError(t, err)

		payload := []byte("transient audio payload")
		handle, err := store.StoreTempBlob(ctx, id, payload)
		require.NoError(t, err)
		assert.NotEmpty(t, handle)

		got, err := store.RetrieveTempBlob(ctx, id, handle)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("blob file holds ciphertext", func(t *testing.T) {
		dir := t.TempDir()
		store, _ := newTestStore(t, Config{TempDir: dir})
		id, err := store.Create(ctx)
		require.NoError(t, err)

		_, err = store.StoreTempBlob(ctx, id, []byte("sensitive recording"))
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		raw, err := os.ReadFile(dir + "/" + entries[0].Name())
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "sensitive recording")
	})

	t.Run("handle is scoped to its session", func(t *testing.T) {
		store, _ := newTestStore(t, Config{})
		owner, err := store.Create(ctx)
		require.NoError(t, err)
		other, err := store.Create(ctx)
		require.NoError(t, err)

		handle, err := store.StoreTempBlob(ctx, owner, []byte("data"))
		require.NoError(t, err)

		_, err = store.RetrieveTempBlob(ctx, other, handle)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeBlobNotFound))
	})

	t.Run("delete removes the file", func(t *testing.T) {
		dir := t.TempDir()
		store, _ := newTestStore(t, Config{TempDir: dir})
		id, err := store.Create(ctx)
		require.NoError(t, err)

		handle, err := store.StoreTempBlob(ctx, id, []byte("data"))
		require.NoError(t, err)
		require.NoError(t, store.DeleteTempBlob(ctx, id, handle))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)

		_, err = store.RetrieveTempBlob(ctx, id, handle)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeBlobNotFound))
	})

	t.Run("failed secure delete keeps the handle tracked", func(t *testing.T) {
		dir := t.TempDir()
		store, _ := newTestStore(t, Config{TempDir: dir})
		id, err := store.Create(ctx)
		require.NoError(t, err)

		handle, err := store.StoreTempBlob(ctx, id, []byte("data"))
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		path := filepath.Join(dir, entries[0].Name())

		// Replace the blob file with a directory so the overwrite fails.
		require.NoError(t, os.Remove(path))
		require.NoError(t, os.Mkdir(path, 0o700))
		require.Error(t, store.DeleteTempBlob(ctx, id, handle))

		// The handle still resolves, so a retry after the file is restored
		// succeeds instead of reporting an unknown blob.
		require.NoError(t, os.Remove(path))
		require.NoError(t, os.WriteFile(path, []byte("ciphertext"), 0o600))
		require.NoError(t, store.DeleteTempBlob(ctx, id, handle))

		_, err = store.RetrieveTempBlob(ctx, id, handle)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeBlobNotFound))
	})

	t.Run("ending a session deletes its blobs", func(t *testing.T) {
		dir := t.TempDir()
		store, _ := newTestStore(t, Config{TempDir: dir})
		id, err := store.Create(ctx)
		require.NoError(t, err)

		_, err = store.StoreTempBlob(ctx, id, []byte("one"))
		require.NoError(t, err)
		_, err = store.StoreTempBlob(ctx, id, []byte("two"))
		require.NoError(t, err)

		require.NoError(t, store.End(ctx, id))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestStorePrivacyReport(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, Config{})

	id, err := store.Create(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Update(ctx, id, model.SessionUpdate{
		AppendTurn: &model.ConversationTurn{
			Timestamp: time.Now(),
			UserInput: "My email is jane@example.com and my SSN is 123-45-6789",
		},
	}))
	_, err = store.StoreTempBlob(ctx, id, []byte("blob"))
	require.NoError(t, err)

	report, err := store.Privacy(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, report.SessionID)
	assert.True(t, report.DataEncrypted)
	assert.True(t, report.PIIAnonymized)
	assert.GreaterOrEqual(t, report.AnonymizedItemCount, 2)
	assert.Equal(t, 1, report.TotalTurns)
	assert.Equal(t, 1, report.TempBlobCount)
}
