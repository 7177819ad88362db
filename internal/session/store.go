package session

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/audit"
	apperrors "github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/errors"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/model"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/privacy"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/repository"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/util"
)

// Config controls store behavior. Zero values fall back to the defaults
// below.
type Config struct {
	Timeout         time.Duration
	CleanupInterval time.Duration
	TempDir         string
	OverwritePasses int
	DefaultLanguage string
}

const (
	defaultTimeout         = 60 * time.Minute
	defaultCleanupInterval = 10 * time.Minute
	defaultOverwritePasses = 3
	defaultLanguage        = "en"
)

// Store is the secure session store. Sessions exist at rest only as
// anonymized, encrypted blobs inside the injected repository; decrypted
// structs are transient copies owned by the calling operation.
//
// Operations on different session ids run freely in parallel; operations on
// the same id are serialized through a per-id mutex so the read-modify-write
// of the encrypted record never interleaves. The single anonymizer is shared
// across every session the store touches, so placeholder numbering is
// per-store, not per-session.
type Store struct {
	repo  repository.BlobRepository
	enc   *privacy.Manager
	anon  *privacy.Anonymizer
	trail *audit.Trail

	timeout         time.Duration
	cleanupInterval time.Duration
	tempDir         string
	overwritePasses int
	language        string

	mu          sync.Mutex
	locks       map[string]*sync.Mutex
	tempBlobs   map[string]map[string]string // session id -> handle -> path
	lastCleanup time.Time
}

func NewStore(repo repository.BlobRepository, enc *privacy.Manager, trail *audit.Trail, cfg Config) (*Store, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = defaultCleanupInterval
	}
	if cfg.OverwritePasses <= 0 {
		cfg.OverwritePasses = defaultOverwritePasses
	}
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = defaultLanguage
	}
	if cfg.TempDir == "" {
		cfg.TempDir = filepath.Join(os.TempDir(), "legalaid-temp")
	}
	if err := os.MkdirAll(cfg.TempDir, 0o700); err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}

	return &Store{
		repo:            repo,
		enc:             enc,
		anon:            privacy.NewAnonymizer(),
		trail:           trail,
		timeout:         cfg.Timeout,
		cleanupInterval: cfg.CleanupInterval,
		tempDir:         cfg.TempDir,
		overwritePasses: cfg.OverwritePasses,
		language:        cfg.DefaultLanguage,
		locks:           make(map[string]*sync.Mutex),
		tempBlobs:       make(map[string]map[string]string),
		lastCleanup:     time.Now(),
	}, nil
}

// lockFor returns the mutex serializing operations on one session id. Lock
// entries live for the process lifetime.
func (s *Store) lockFor(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

// Create makes a new empty session and stores it anonymized+encrypted
// before returning; no session ever exists in a decrypted, persisted form.
func (s *Store) Create(ctx context.Context) (string, error) {
	id, err := util.GenerateToken()
	if err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}

	now := time.Now()
	sess := &model.Session{
		ID:           id,
		StartTime:    now,
		LastActivity: now,
		Language:     s.language,
		History:      []model.ConversationTurn{},
		UserContext:  model.UserContext{PreferredLanguage: s.language},
	}

	l := s.lockFor(id)
	l.Lock()
	err = s.seal(ctx, sess)
	l.Unlock()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.tempBlobs[id] = make(map[string]string)
	s.mu.Unlock()

	s.trail.Record(id, audit.ActionSessionCreate, nil)
	log.Info().Str("session", util.MaskSessionID(id)).Msg("session created")

	s.maybeCleanup(ctx)
	return id, nil
}

// Get returns a fresh decrypted copy of the session. An expired session is
// purged as a side effect and reported exactly like an unknown id.
func (s *Store) Get(ctx context.Context, id string) (*model.Session, error) {
	l := s.lockFor(id)
	l.Lock()
	defer l.Unlock()
	return s.loadLocked(ctx, id)
}

// Update applies a typed partial update under the session's lock: nested
// user context fields merge rather than replace, the turn (if any) is
// appended, last activity is bumped, and the whole record is re-anonymized,
// re-encrypted and swapped in one Put. A validation failure leaves the
// stored record untouched.
func (s *Store) Update(ctx context.Context, id string, upd model.SessionUpdate) error {
	if err := upd.Validate(); err != nil {
		return err
	}

	l := s.lockFor(id)
	l.Lock()
	defer l.Unlock()

	sess, err := s.loadLocked(ctx, id)
	if err != nil {
		return err
	}

	if upd.Language != nil {
		sess.Language = *upd.Language
	}
	if upd.DisclaimerAcknowledged != nil {
		sess.DisclaimerAcknowledged = *upd.DisclaimerAcknowledged
	}
	if upd.AppendTurn != nil {
		sess.History = append(sess.History, *upd.AppendTurn)
	}
	upd.UserContext.Apply(&sess.UserContext)

	sess.LastActivity = time.Now()
	if sess.LastActivity.Before(sess.StartTime) {
		sess.LastActivity = sess.StartTime
	}

	return s.seal(ctx, sess)
}

// End purges the session record, its audit-invisible per-id state and every
// temp blob it owns, with secure deletion of the files.
func (s *Store) End(ctx context.Context, id string) error {
	l := s.lockFor(id)
	l.Lock()
	defer l.Unlock()

	if _, err := s.loadLocked(ctx, id); err != nil {
		return err
	}

	if err := s.purgeLocked(ctx, id); err != nil {
		return err
	}
	s.trail.Record(id, audit.ActionSessionEnd, nil)
	log.Info().Str("session", util.MaskSessionID(id)).Msg("session ended")
	return nil
}

// CleanupExpired sweeps every stored session. The global enumeration takes
// only a snapshot of the id list; each purge then runs under the same per-id
// lock as regular operations. Records that fail to decrypt are treated as
// expired and purged defensively rather than surfaced as errors.
func (s *Store) CleanupExpired(ctx context.Context) (int, error) {
	ids, err := s.repo.IDs(ctx)
	if err != nil {
		return 0, apperrors.Storage(err)
	}

	purged := 0
	for _, id := range ids {
		l := s.lockFor(id)
		l.Lock()

		blob, ok, err := s.repo.Get(ctx, id)
		if err != nil || !ok {
			l.Unlock()
			continue
		}

		var sess model.Session
		if err := s.enc.DecryptJSON(blob, &sess); err != nil {
			if purgeErr := s.purgeLocked(ctx, id); purgeErr == nil {
				s.trail.Record(id, audit.ActionSessionPurgeCorrupt, nil)
				purged++
			}
			l.Unlock()
			continue
		}

		if time.Since(sess.LastActivity) > s.timeout {
			if purgeErr := s.purgeLocked(ctx, id); purgeErr == nil {
				s.trail.Record(id, audit.ActionSessionExpire, nil)
				purged++
			}
		}
		l.Unlock()
	}

	s.mu.Lock()
	s.lastCleanup = time.Now()
	s.mu.Unlock()

	if purged > 0 {
		log.Info().Int("count", purged).Msg("cleaned up expired sessions")
	}
	return purged, nil
}

// ActiveCount returns the number of stored sessions.
func (s *Store) ActiveCount(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// IDs returns a snapshot of the stored session ids.
func (s *Store) IDs(ctx context.Context) ([]string, error) {
	return s.repo.IDs(ctx)
}

// StoreTempBlob writes a transient binary payload (e.g. recorded audio)
// encrypted to the scratch directory and returns an opaque handle scoped to
// the session.
func (s *Store) StoreTempBlob(ctx context.Context, id string, data []byte) (string, error) {
	l := s.lockFor(id)
	l.Lock()
	defer l.Unlock()

	if _, err := s.loadLocked(ctx, id); err != nil {
		return "", err
	}

	handle, err := util.GenerateToken()
	if err != nil {
		return "", fmt.Errorf("generate blob handle: %w", err)
	}

	encrypted, err := s.enc.Encrypt(hex.EncodeToString(data))
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.tempDir, "blob_"+handle+".tmp")
	if err := os.WriteFile(path, []byte(encrypted), 0o600); err != nil {
		return "", fmt.Errorf("write temp blob: %w", err)
	}

	s.mu.Lock()
	if s.tempBlobs[id] == nil {
		s.tempBlobs[id] = make(map[string]string)
	}
	s.tempBlobs[id][handle] = path
	s.mu.Unlock()

	s.trail.Record(id, audit.ActionTempBlobStore, map[string]string{"handle": util.MaskSessionID(handle)})
	return handle, nil
}

// RetrieveTempBlob decrypts and returns a stored temp blob. A handle owned
// by another session never resolves.
func (s *Store) RetrieveTempBlob(ctx context.Context, id string, handle string) ([]byte, error) {
	l := s.lockFor(id)
	l.Lock()
	defer l.Unlock()

	if _, err := s.loadLocked(ctx, id); err != nil {
		return nil, err
	}

	path, err := s.blobPath(id, handle)
	if err != nil {
		return nil, err
	}

	encrypted, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read temp blob: %w", err)
	}

	hexData, err := s.enc.Decrypt(string(encrypted))
	if err != nil {
		return nil, err
	}
	return hex.DecodeString(hexData)
}

// DeleteTempBlob securely deletes one temp blob and forgets its handle.
func (s *Store) DeleteTempBlob(ctx context.Context, id string, handle string) error {
	l := s.lockFor(id)
	l.Lock()
	defer l.Unlock()

	if _, err := s.loadLocked(ctx, id); err != nil {
		return err
	}

	path, err := s.blobPath(id, handle)
	if err != nil {
		return err
	}

	// Keep the handle tracked until the overwrite succeeds, so a failed
	// delete can still be retried or swept by End.
	if err := privacy.SecureDelete(path, s.overwritePasses); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.tempBlobs[id], handle)
	s.mu.Unlock()

	s.trail.Record(id, audit.ActionTempBlobDelete, map[string]string{"handle": util.MaskSessionID(handle)})
	return nil
}

// PrivacyReport summarizes the privacy posture of one session.
type PrivacyReport struct {
	SessionID              string  `json:"sessionId"`
	DataEncrypted          bool    `json:"dataEncrypted"`
	PIIAnonymized          bool    `json:"piiAnonymized"`
	AnonymizedItemCount    int     `json:"anonymizedItemCount"`
	TotalTurns             int     `json:"totalTurns"`
	TempBlobCount          int     `json:"tempBlobCount"`
	SessionDurationMinutes float64 `json:"sessionDurationMinutes"`
}

var placeholderRe = regexp.MustCompile(`\[[A-Z_0-9]+\]`)

// Privacy reports on the stored (anonymized) representation of a session.
func (s *Store) Privacy(ctx context.Context, id string) (*PrivacyReport, error) {
	l := s.lockFor(id)
	l.Lock()
	defer l.Unlock()

	sess, err := s.loadLocked(ctx, id)
	if err != nil {
		return nil, err
	}

	anonymized := 0
	for _, turn := range sess.History {
		anonymized += len(placeholderRe.FindAllString(turn.UserInput, -1))
	}

	s.mu.Lock()
	blobs := len(s.tempBlobs[id])
	s.mu.Unlock()

	return &PrivacyReport{
		SessionID:              id,
		DataEncrypted:          true,
		PIIAnonymized:          anonymized > 0,
		AnonymizedItemCount:    anonymized,
		TotalTurns:             len(sess.History),
		TempBlobCount:          blobs,
		SessionDurationMinutes: time.Since(sess.StartTime).Minutes(),
	}, nil
}

// loadLocked fetches and decrypts a session; the caller holds the per-id
// lock. Unknown, expired and undecryptable records all surface as
// SessionNotFound so callers cannot tell them apart.
func (s *Store) loadLocked(ctx context.Context, id string) (*model.Session, error) {
	blob, ok, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	if !ok {
		return nil, apperrors.SessionNotFound(id)
	}

	var sess model.Session
	if err := s.enc.DecryptJSON(blob, &sess); err != nil {
		// Corrupted or foreign-keyed record: purge defensively, report as
		// not found, never leak partial plaintext.
		if purgeErr := s.purgeLocked(ctx, id); purgeErr == nil {
			s.trail.Record(id, audit.ActionSessionPurgeCorrupt, nil)
		}
		log.Warn().Str("session", util.MaskSessionID(id)).Msg("purged undecryptable session record")
		return nil, apperrors.SessionNotFound(id)
	}

	if time.Since(sess.LastActivity) > s.timeout {
		if purgeErr := s.purgeLocked(ctx, id); purgeErr == nil {
			s.trail.Record(id, audit.ActionSessionExpire, nil)
		}
		return nil, apperrors.SessionNotFound(id)
	}

	return &sess, nil
}

// seal anonymizes a copy of the session and swaps the encrypted result into
// the repository. The caller holds the per-id lock; the single Put makes the
// update all-or-nothing.
func (s *Store) seal(ctx context.Context, sess *model.Session) error {
	secured, err := cloneSession(sess)
	if err != nil {
		return err
	}
	for i := range secured.History {
		s.anon.Turn(&secured.History[i])
	}
	s.anon.UserContext(&secured.UserContext)

	blob, err := s.enc.EncryptJSON(secured)
	if err != nil {
		return err
	}
	if err := s.repo.Put(ctx, sess.ID, blob); err != nil {
		return apperrors.Storage(err)
	}
	return nil
}

// purgeLocked removes the record and securely deletes every temp blob the
// session owns; no blob may outlive its session.
func (s *Store) purgeLocked(ctx context.Context, id string) error {
	s.mu.Lock()
	paths := make([]string, 0, len(s.tempBlobs[id]))
	for _, path := range s.tempBlobs[id] {
		paths = append(paths, path)
	}
	delete(s.tempBlobs, id)
	s.mu.Unlock()

	for _, path := range paths {
		if err := privacy.SecureDelete(path, s.overwritePasses); err != nil {
			log.Error().Err(err).Str("session", util.MaskSessionID(id)).Msg("failed to securely delete temp blob")
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.Storage(err)
	}
	return nil
}

func (s *Store) blobPath(id, handle string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	path, ok := s.tempBlobs[id][handle]
	if !ok {
		return "", apperrors.BlobNotFound(handle)
	}
	return path, nil
}

// maybeCleanup runs a sweep when the cleanup interval has elapsed since the
// last one, in addition to the periodic background job.
func (s *Store) maybeCleanup(ctx context.Context) {
	s.mu.Lock()
	due := time.Since(s.lastCleanup) > s.cleanupInterval
	s.mu.Unlock()
	if due {
		if _, err := s.CleanupExpired(ctx); err != nil {
			log.Error().Err(err).Msg("opportunistic cleanup failed")
		}
	}
}

func cloneSession(sess *model.Session) (*model.Session, error) {
	data, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("clone session: %w", err)
	}
	var out model.Session
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("clone session: %w", err)
	}
	return &out, nil
}
