package domain

import "context"

// KeyDeriver turns a master passphrase and salt into a symmetric key.
// Derivation is deterministic: identical inputs yield identical keys.
type KeyDeriver interface {
	Derive(passphrase string, salt []byte) Key
}

// VaultCodec seals and opens individual vault records.
type VaultCodec interface {
	// Encrypt serialises the entry canonically and seals it under a
	// fresh random nonce.
	Encrypt(e Entry, key Key) (EncryptedRecord, error)
	// Decrypt verifies the authentication tag before returning the
	// entry; on mismatch it fails with ErrAuthentication.
	Decrypt(rec EncryptedRecord, key Key) (Entry, error)
}

// VaultStore owns one on-disk vault file.
type VaultStore interface {
	// Load reads and decrypts the whole vault. A missing file is an
	// empty vault, not an error. Any record failing authentication
	// aborts the load with ErrVaultCorrupt.
	Load(passphrase string) (Vault, error)
	// Save encrypts and writes the vault atomically, reusing the
	// salt of an existing file so the passphrase keeps working.
	Save(v Vault, passphrase string) error
}

// EntrySender pushes one entry to a listening peer.
type EntrySender interface {
	Send(ctx context.Context, addr string, e Entry) error
}

// EntryReceiver accepts one connection and reads one entry, then
// releases the listening port.
type EntryReceiver interface {
	Receive(ctx context.Context, port int) (Entry, error)
}

// Notifier is the callback surface consumed by the UI layer. All
// methods must be cheap; implementations must never log passwords.
type Notifier interface {
	VaultLoaded(v Vault)
	EntryReceived(e Entry)
	Error(kind, message string)
}

// NopNotifier discards all events.
type NopNotifier struct{}

func (NopNotifier) VaultLoaded(Vault)   {}
func (NopNotifier) EntryReceived(Entry) {}
func (NopNotifier) Error(_, _ string)   {}

var _ Notifier = NopNotifier{}
