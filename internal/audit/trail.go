package audit

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/model"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/util"
)

type Action string

const (
	ActionSessionCreate          Action = "session_create"
	ActionSessionEnd             Action = "session_end"
	ActionSessionExpire          Action = "session_expire"
	ActionSessionPurgeCorrupt    Action = "session_purge_corrupt"
	ActionDisclaimerAcknowledged Action = "disclaimer_acknowledged"
	ActionTempBlobStore          Action = "temp_blob_store"
	ActionTempBlobDelete         Action = "temp_blob_delete"
)

// Trail is an append-only in-memory audit record store. Records carry only
// action tags and coarse detail strings, never conversation content; they
// are removed only when the owning session is purged in full.
type Trail struct {
	mu      sync.Mutex
	records []model.AuditRecord
}

func NewTrail() *Trail {
	return &Trail{}
}

// Record appends an audit record and emits a structured log line with the
// session id masked.
func (t *Trail) Record(sessionID string, action Action, details map[string]string, flags ...string) {
	rec := model.AuditRecord{
		SessionID:       sessionID,
		Timestamp:       time.Now(),
		Action:          string(action),
		Details:         details,
		ComplianceFlags: flags,
	}

	t.mu.Lock()
	t.records = append(t.records, rec)
	t.mu.Unlock()

	logEvent := log.Info().
		Str("audit", "compliance").
		Str("action", string(action)).
		Str("session", util.MaskSessionID(sessionID))
	for k, v := range details {
		logEvent = logEvent.Str(k, v)
	}
	logEvent.Msg("audit event")
}

// BySession returns copies of the records for one session.
func (t *Trail) BySession(sessionID string) []model.AuditRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []model.AuditRecord
	for _, rec := range t.records {
		if rec.SessionID == sessionID {
			out = append(out, rec)
		}
	}
	return out
}

// All returns a copy of every record.
func (t *Trail) All() []model.AuditRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]model.AuditRecord, len(t.records))
	copy(out, t.records)
	return out
}

// PurgeSession drops the records owned by a session. Only a full session
// purge may call this.
func (t *Trail) PurgeSession(sessionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.records[:0]
	for _, rec := range t.records {
		if rec.SessionID != sessionID {
			kept = append(kept, rec)
		}
	}
	t.records = kept
}
