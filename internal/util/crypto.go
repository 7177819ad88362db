package util

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

const tokenBytes = 16

// GenerateToken returns a random 32-character hex string, used for session
// ids and temp-blob handles.
func GenerateToken() (string, error) {
	bytes := make([]byte, tokenBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// ShortHash returns the first n hex chars of the SHA-256 of s. Used to build
// stable placeholders for anonymized location fields.
func ShortHash(s string, n int) string {
	sum := sha256.Sum256([]byte(s))
	h := hex.EncodeToString(sum[:])
	if n > len(h) {
		n = len(h)
	}
	return h[:n]
}

// MaskSessionID keeps a short prefix of a session id for log correlation
// without writing the full id to the log stream.
func MaskSessionID(id string) string {
	if len(id) <= 8 {
		return "********"
	}
	return id[:8] + "****"
}
