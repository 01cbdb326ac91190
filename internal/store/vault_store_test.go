package store_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passvault/internal/crypto"
	"passvault/internal/domain"
	"passvault/internal/store"
)

func newStore(t *testing.T) (*store.FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vault.json")
	// Low iteration counts are clamped up inside the deriver, so the
	// real minimum applies even in tests.
	s := store.NewFileStore(path, crypto.NewDeriver(0), crypto.NewCodec())
	return s, path
}

func TestLoad_MissingFileIsEmptyVault(t *testing.T) {
	s, _ := newStore(t)

	v, err := s.Load("passphrase")
	require.NoError(t, err)
	assert.Zero(t, v.Len())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 50} {
		t.Run(fmt.Sprintf("%d_entries", n), func(t *testing.T) {
			s, _ := newStore(t)

			var v domain.Vault
			for i := 0; i < n; i++ {
				v.Add(domain.Entry{
					Service:  fmt.Sprintf("service-%02d", i),
					Username: fmt.Sprintf("user-%02d", i),
					Password: fmt.Sprintf("pw-%02d", i),
				})
			}
			require.NoError(t, s.Save(v, "passphrase"))

			got, err := s.Load("passphrase")
			require.NoError(t, err)
			require.Equal(t, n, got.Len())
			for i := range v.Entries {
				assert.Equal(t, v.Entries[i], got.Entries[i])
			}
		})
	}
}

func TestSave_ReusesSaltAcrossSaves(t *testing.T) {
	s, path := newStore(t)

	var v domain.Vault
	v.Add(domain.Entry{Service: "a", Username: "u", Password: "p"})
	require.NoError(t, s.Save(v, "passphrase"))
	salt1 := readSalt(t, path)

	v.Add(domain.Entry{Service: "b", Username: "u", Password: "p"})
	require.NoError(t, s.Save(v, "passphrase"))
	salt2 := readSalt(t, path)

	assert.Equal(t, salt1, salt2)

	got, err := s.Load("passphrase")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Len())
}

func TestLoad_WrongPassphraseFailsClosed(t *testing.T) {
	s, _ := newStore(t)

	var v domain.Vault
	v.Add(domain.Entry{Service: "a", Username: "u", Password: "p"})
	require.NoError(t, s.Save(v, "correct-passphrase"))

	got, err := s.Load("wrong-passphrase")
	require.ErrorIs(t, err, domain.ErrVaultCorrupt)
	assert.Zero(t, got.Len())
}

func TestLoad_TamperedRecordFailsClosed(t *testing.T) {
	s, path := newStore(t)

	var v domain.Vault
	for i := 0; i < 3; i++ {
		v.Add(domain.Entry{Service: fmt.Sprintf("s%d", i), Username: "u", Password: "p"})
	}
	require.NoError(t, s.Save(v, "passphrase"))

	// Flip one ciphertext byte in the middle record.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var vf struct {
		Salt    []byte                   `json:"salt"`
		Records []domain.EncryptedRecord `json:"records"`
	}
	require.NoError(t, json.Unmarshal(raw, &vf))
	require.Len(t, vf.Records, 3)
	vf.Records[1].Ciphertext[0] ^= 0x01
	raw, err = json.Marshal(vf)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	got, err := s.Load("passphrase")
	require.ErrorIs(t, err, domain.ErrVaultCorrupt)
	assert.Zero(t, got.Len())
}

func TestLoad_GarbageFileIsCorrupt(t *testing.T) {
	s, path := newStore(t)
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := s.Load("passphrase")
	require.ErrorIs(t, err, domain.ErrVaultCorrupt)
}

func readSalt(t *testing.T, path string) []byte {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var vf struct {
		Salt []byte `json:"salt"`
	}
	require.NoError(t, json.Unmarshal(raw, &vf))
	require.Len(t, vf.Salt, crypto.SaltBytes)
	return vf.Salt
}
