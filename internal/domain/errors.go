package domain

import "errors"

var (
	// ErrAuthentication is returned when a GCM tag check fails: the
	// passphrase is wrong or the record has been tampered with. No
	// plaintext is ever returned alongside it.
	ErrAuthentication = errors.New("wrong passphrase or corrupted record")

	// ErrVaultCorrupt is returned when loading a vault fails
	// structurally or any single record fails authentication. The
	// load aborts entirely; partial vaults are never exposed.
	ErrVaultCorrupt = errors.New("vault is corrupt or passphrase is wrong")

	// ErrTransferTimeout is returned when connect, handshake or
	// read/write exceeded the configured deadline.
	ErrTransferTimeout = errors.New("transfer timed out")

	// ErrHandshakeFailed is returned on TLS negotiation failure.
	// There is no fallback to plaintext.
	ErrHandshakeFailed = errors.New("TLS handshake failed")

	// ErrProtocolViolation is returned for a malformed or incomplete
	// wire message. The connection is discarded rather than guessing
	// at partial data.
	ErrProtocolViolation = errors.New("malformed wire message")
)
