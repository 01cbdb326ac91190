// Package crypto implements the vault's key derivation and record
// encryption.
//
// Contents
//
//   - PBKDF2-HMAC-SHA256 key derivation from a master passphrase and
//     a per-vault salt (Deriver)
//   - AES-256-GCM sealing of individual entries with a fresh random
//     96-bit nonce per call (Codec)
//   - Salt generation (NewSalt)
//
// # Notes
//
// An incorrect passphrase is undetectable at derivation time; it only
// surfaces as domain.ErrAuthentication when a tag check fails during
// decryption. Callers should treat derived keys and decrypted
// plaintext as sensitive and rely on memzero when practical.
package crypto
