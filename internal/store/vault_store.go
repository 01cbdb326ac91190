package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"passvault/internal/crypto"
	"passvault/internal/domain"
	"passvault/internal/util/memzero"
)

// vaultFile is the on-disk JSON structure. []byte fields encode as
// base64; this format must round-trip exactly across versions.
type vaultFile struct {
	Salt    []byte                   `json:"salt"`
	Records []domain.EncryptedRecord `json:"records"`
}

// FileStore owns one vault file on disk.
type FileStore struct {
	path    string
	deriver domain.KeyDeriver
	codec   domain.VaultCodec
	mu      sync.Mutex
}

// NewFileStore returns a store for the vault at path.
func NewFileStore(path string, deriver domain.KeyDeriver, codec domain.VaultCodec) *FileStore {
	return &FileStore{path: path, deriver: deriver, codec: codec}
}

// Path returns the vault file location.
func (s *FileStore) Path() string { return s.path }

// Load reads and decrypts every record. A missing file yields an
// empty vault. Any structural or authentication failure aborts the
// whole load with ErrVaultCorrupt; partial vaults are never returned.
func (s *FileStore) Load(passphrase string) (domain.Vault, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := readFile(s.path)
	if err != nil {
		return domain.Vault{}, fmt.Errorf("read vault: %w", err)
	}
	if raw == nil {
		return domain.Vault{}, nil
	}

	var vf vaultFile
	if err := json.Unmarshal(raw, &vf); err != nil {
		return domain.Vault{}, fmt.Errorf("%w: not a vault file", domain.ErrVaultCorrupt)
	}
	if len(vf.Salt) != crypto.SaltBytes {
		return domain.Vault{}, fmt.Errorf("%w: bad salt", domain.ErrVaultCorrupt)
	}

	key := s.deriver.Derive(passphrase, vf.Salt)
	defer memzero.Zero(key[:])

	entries := make([]domain.Entry, 0, len(vf.Records))
	for i, rec := range vf.Records {
		e, err := s.codec.Decrypt(rec, key)
		if err != nil {
			return domain.Vault{}, fmt.Errorf("%w: record %d", domain.ErrVaultCorrupt, i)
		}
		entries = append(entries, e)
	}
	return domain.Vault{Salt: vf.Salt, Entries: entries}, nil
}

// Save encrypts every entry and writes the vault atomically. An
// existing file keeps its salt so the same passphrase continues to
// work; a brand new vault gets a fresh one.
func (s *FileStore) Save(v domain.Vault, passphrase string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	salt, err := s.currentSalt(v.Salt)
	if err != nil {
		return err
	}

	key := s.deriver.Derive(passphrase, salt)
	defer memzero.Zero(key[:])

	records := make([]domain.EncryptedRecord, 0, len(v.Entries))
	for _, e := range v.Entries {
		rec, err := s.codec.Encrypt(e, key)
		if err != nil {
			return fmt.Errorf("encrypt entry: %w", err)
		}
		records = append(records, rec)
	}

	b, err := json.MarshalIndent(vaultFile{Salt: salt, Records: records}, "", "  ")
	if err != nil {
		return err
	}
	if err := writeFile(s.path, b, 0o600); err != nil {
		return fmt.Errorf("write vault: %w", err)
	}
	return nil
}

// currentSalt picks the salt for a save: the existing file's salt if
// there is one, otherwise the in-memory salt, otherwise a new one.
func (s *FileStore) currentSalt(fallback []byte) ([]byte, error) {
	raw, err := readFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read vault: %w", err)
	}
	if raw != nil {
		var vf vaultFile
		if err := json.Unmarshal(raw, &vf); err == nil && len(vf.Salt) == crypto.SaltBytes {
			return vf.Salt, nil
		}
	}
	if len(fallback) == crypto.SaltBytes {
		return fallback, nil
	}
	return crypto.NewSalt()
}

var _ domain.VaultStore = (*FileStore)(nil)
