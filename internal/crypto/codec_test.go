package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passvault/internal/crypto"
	"passvault/internal/domain"
)

func testEntry() domain.Entry {
	return domain.Entry{Service: "example.com", Username: "alice", Password: "s3cr3t"}
}

func testKey(fill byte) domain.Key {
	var k domain.Key
	for i := range k {
		k[i] = fill
	}
	return k
}

func TestCodec_RoundTrip(t *testing.T) {
	c := crypto.NewCodec()
	key := testKey(0x11)

	rec, err := c.Encrypt(testEntry(), key)
	require.NoError(t, err)
	assert.Len(t, rec.Nonce, crypto.NonceBytes)
	assert.Len(t, rec.Tag, crypto.TagBytes)

	got, err := c.Decrypt(rec, key)
	require.NoError(t, err)
	assert.Equal(t, testEntry(), got)
}

func TestCodec_WrongKeyFailsAuthentication(t *testing.T) {
	c := crypto.NewCodec()

	rec, err := c.Encrypt(testEntry(), testKey(0x11))
	require.NoError(t, err)

	_, err = c.Decrypt(rec, testKey(0x22))
	require.ErrorIs(t, err, domain.ErrAuthentication)
}

func TestCodec_FreshNoncePerCall(t *testing.T) {
	c := crypto.NewCodec()
	key := testKey(0x11)

	r1, err := c.Encrypt(testEntry(), key)
	require.NoError(t, err)
	r2, err := c.Encrypt(testEntry(), key)
	require.NoError(t, err)

	assert.NotEqual(t, r1.Nonce, r2.Nonce)
	assert.NotEqual(t, r1.Ciphertext, r2.Ciphertext)
}

func TestCodec_TamperedRecordFailsAuthentication(t *testing.T) {
	c := crypto.NewCodec()
	key := testKey(0x11)

	rec, err := c.Encrypt(testEntry(), key)
	require.NoError(t, err)

	tampered := rec
	tampered.Ciphertext = append([]byte(nil), rec.Ciphertext...)
	tampered.Ciphertext[0] ^= 0x01
	_, err = c.Decrypt(tampered, key)
	require.ErrorIs(t, err, domain.ErrAuthentication)

	tampered = rec
	tampered.Tag = append([]byte(nil), rec.Tag...)
	tampered.Tag[0] ^= 0x01
	_, err = c.Decrypt(tampered, key)
	require.ErrorIs(t, err, domain.ErrAuthentication)
}

func TestCodec_MalformedRecordFailsClosed(t *testing.T) {
	c := crypto.NewCodec()

	_, err := c.Decrypt(domain.EncryptedRecord{Nonce: []byte{1, 2}, Tag: make([]byte, crypto.TagBytes)}, testKey(0x11))
	require.ErrorIs(t, err, domain.ErrAuthentication)
}
