// Package store provides file-based persistence for the vault.
//
// FileStore owns one vault file, serialised as JSON on disk:
// the vault salt plus the ordered list of encrypted records. Writes
// go through a temp file and an atomic rename so a crash mid-write
// never leaves a half-written vault. All methods are concurrency-safe
// via internal locking.
package store
