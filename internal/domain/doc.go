// Package domain defines the core types shared across the vault.
//
// It holds the Entry and Vault data model, the encrypted on-disk
// record shape, the error taxonomy surfaced to callers, and the
// interfaces implemented by the crypto, store and transfer packages.
// Nothing in this package performs I/O or cryptography.
package domain
