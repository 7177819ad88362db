package privacy

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	apperrors "github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/errors"
)

const (
	keyBytes      = 32
	kdfIterations = 100_000
)

// kdfSalt is fixed so the same passphrase always derives the same key; that
// determinism is what lets a restarted process reopen blobs it wrote earlier.
var kdfSalt = []byte("legal-aid-session-salt")

// Manager encrypts and decrypts opaque string payloads with AES-256-GCM.
// Construct it with NewManager for a random process-lifetime key, or with
// NewManagerFromPassphrase for a stable key derived via PBKDF2.
type Manager struct {
	aead cipher.AEAD
}

// NewManager creates a manager with a freshly generated random key. Tokens
// it produces are unreadable by any other manager.
func NewManager() (*Manager, error) {
	key := make([]byte, keyBytes)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return newManagerWithKey(key)
}

// NewManagerFromPassphrase derives the key from the passphrase with PBKDF2
// (SHA-256, 100k iterations). Two managers built from the same passphrase
// can decrypt each other's tokens.
func NewManagerFromPassphrase(passphrase string) (*Manager, error) {
	if passphrase == "" {
		return nil, apperrors.InvalidInput("passphrase", "must not be empty")
	}
	key := pbkdf2.Key([]byte(passphrase), kdfSalt, kdfIterations, keyBytes, sha256.New)
	return newManagerWithKey(key)
}

func newManagerWithKey(key []byte) (*Manager, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}
	return &Manager{aead: gcm}, nil
}

// Encrypt seals plaintext into a base64 token (nonce prepended).
func (m *Manager) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, m.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	ciphertext := m.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Decrypt opens a token produced by a matching manager. Malformed tokens and
// tokens sealed under a different key fail with ErrCodeDecryptionFailed;
// garbage plaintext is never returned.
func (m *Manager) Decrypt(token string) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", apperrors.DecryptionFailed(err)
	}

	nonceSize := m.aead.NonceSize()
	if len(ciphertext) < nonceSize {
		return "", apperrors.DecryptionFailed(fmt.Errorf("ciphertext too short"))
	}

	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := m.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", apperrors.DecryptionFailed(err)
	}
	return string(plaintext), nil
}

// EncryptJSON serializes v to canonical JSON and encrypts the result.
func (m *Manager) EncryptJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}
	return m.Encrypt(string(data))
}

// DecryptJSON decrypts a token and unmarshals the plaintext into v. A blob
// that decrypts but fails to parse is reported as a decryption failure too:
// either way the record is unusable.
func (m *Manager) DecryptJSON(token string, v any) error {
	plaintext, err := m.Decrypt(token)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(plaintext), v); err != nil {
		return apperrors.DecryptionFailed(err)
	}
	return nil
}
