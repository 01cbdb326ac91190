package crypto

import (
	"crypto/rand"
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	"passvault/internal/domain"
	"passvault/internal/util/memzero"
)

const (
	// KeyBytes is the derived key size (AES-256).
	KeyBytes = 32
	// SaltBytes is the per-vault salt size.
	SaltBytes = 16
	// DefaultIterations is the PBKDF2 iteration count. Configurations
	// may raise it; the deriver never goes below it.
	DefaultIterations = 100_000
)

// Deriver derives vault keys with PBKDF2-HMAC-SHA256.
type Deriver struct {
	iterations int
}

// NewDeriver returns a deriver using the given iteration count,
// clamped to DefaultIterations as a floor.
func NewDeriver(iterations int) *Deriver {
	if iterations < DefaultIterations {
		iterations = DefaultIterations
	}
	return &Deriver{iterations: iterations}
}

// Derive stretches the passphrase and salt into a 256-bit key.
// Deterministic: the same pair always yields the same key.
func (d *Deriver) Derive(passphrase string, salt []byte) domain.Key {
	raw := pbkdf2.Key([]byte(passphrase), salt, d.iterations, KeyBytes, sha256.New)
	var key domain.Key
	copy(key[:], raw)
	memzero.Zero(raw)
	return key
}

// NewSalt returns a fresh random 128-bit salt. Salts are not secret
// and are stored unencrypted alongside the vault.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltBytes)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

var _ domain.KeyDeriver = (*Deriver)(nil)
