package model

import "time"

// AuditRecord is append-only; records are removed only by full session purge.
type AuditRecord struct {
	SessionID       string            `json:"sessionId"`
	Timestamp       time.Time         `json:"timestamp"`
	Action          string            `json:"action"`
	Details         map[string]string `json:"details,omitempty"`
	ComplianceFlags []string          `json:"complianceFlags,omitempty"`
}
