package domain

// Key is a 256-bit symmetric vault key derived from the master
// passphrase. It lives only in process memory and is never persisted.
type Key [32]byte

func (k Key) Slice() []byte { return k[:] }

// Entry is one stored credential. Field order is the canonical
// serialisation order for both the vault file and the wire.
type Entry struct {
	Service  string `json:"service"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// EncryptedRecord is one sealed Entry as persisted in the vault file.
// Nonce is 96 bits, Tag is the 128-bit GCM authentication tag kept
// separate from the ciphertext so the on-disk format is explicit.
type EncryptedRecord struct {
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
	Tag        []byte `json:"tag"`
}

// Vault is the decrypted contents of one vault file: the salt that,
// combined with the master passphrase, reproduces its key, plus the
// entries in insertion order.
type Vault struct {
	Salt    []byte
	Entries []Entry
}

// Add appends an entry, preserving insertion order.
func (v *Vault) Add(e Entry) {
	v.Entries = append(v.Entries, e)
}

// Remove deletes the entry at index i. It reports whether i was in range.
func (v *Vault) Remove(i int) bool {
	if i < 0 || i >= len(v.Entries) {
		return false
	}
	v.Entries = append(v.Entries[:i], v.Entries[i+1:]...)
	return true
}

// RemoveService deletes every entry for the given service name and
// returns how many were removed.
func (v *Vault) RemoveService(service string) int {
	kept := v.Entries[:0]
	removed := 0
	for _, e := range v.Entries {
		if e.Service == service {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	v.Entries = kept
	return removed
}

// FindService returns the first entry for service and whether one exists.
func (v *Vault) FindService(service string) (Entry, bool) {
	for _, e := range v.Entries {
		if e.Service == service {
			return e, true
		}
	}
	return Entry{}, false
}

// Clear drops all entries. The salt is kept so the same passphrase
// keeps working for the emptied vault.
func (v *Vault) Clear() {
	v.Entries = nil
}

// Len returns the number of entries.
func (v *Vault) Len() int { return len(v.Entries) }
