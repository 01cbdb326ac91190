package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"fmt"

	"passvault/internal/domain"
	"passvault/internal/util/memzero"
)

const (
	// NonceBytes is the GCM nonce size.
	NonceBytes = 12
	// TagBytes is the GCM authentication tag size.
	TagBytes = 16
)

// Codec seals and opens vault records with AES-256-GCM.
type Codec struct{}

// NewCodec returns a record codec.
func NewCodec() *Codec { return &Codec{} }

// Encrypt serialises e canonically (fixed field order) and seals it
// under a fresh random nonce. Nonces come from crypto/rand on every
// call, so reuse under one key cannot happen across restarts.
func (c *Codec) Encrypt(e domain.Entry, key domain.Key) (domain.EncryptedRecord, error) {
	plain, err := json.Marshal(e)
	if err != nil {
		return domain.EncryptedRecord{}, err
	}
	defer memzero.Zero(plain)

	aead, err := newAEAD(key)
	if err != nil {
		return domain.EncryptedRecord{}, err
	}
	nonce := make([]byte, NonceBytes)
	if _, err := rand.Read(nonce); err != nil {
		return domain.EncryptedRecord{}, err
	}
	sealed := aead.Seal(nil, nonce, plain, nil)

	// GCM appends the tag; the on-disk format keeps it separate.
	split := len(sealed) - TagBytes
	return domain.EncryptedRecord{
		Nonce:      nonce,
		Ciphertext: sealed[:split],
		Tag:        sealed[split:],
	}, nil
}

// Decrypt verifies the tag and returns the entry. Any failure, from
// a malformed record to a tag mismatch, yields ErrAuthentication and
// no plaintext.
func (c *Codec) Decrypt(rec domain.EncryptedRecord, key domain.Key) (domain.Entry, error) {
	if len(rec.Nonce) != NonceBytes || len(rec.Tag) != TagBytes {
		return domain.Entry{}, fmt.Errorf("bad record framing: %w", domain.ErrAuthentication)
	}
	aead, err := newAEAD(key)
	if err != nil {
		return domain.Entry{}, err
	}

	sealed := make([]byte, 0, len(rec.Ciphertext)+TagBytes)
	sealed = append(sealed, rec.Ciphertext...)
	sealed = append(sealed, rec.Tag...)

	plain, err := aead.Open(nil, rec.Nonce, sealed, nil)
	if err != nil {
		return domain.Entry{}, domain.ErrAuthentication
	}
	defer memzero.Zero(plain)

	var e domain.Entry
	if err := json.Unmarshal(plain, &e); err != nil {
		return domain.Entry{}, fmt.Errorf("bad entry encoding: %w", domain.ErrAuthentication)
	}
	return e, nil
}

func newAEAD(key domain.Key) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key.Slice())
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

var _ domain.VaultCodec = (*Codec)(nil)
