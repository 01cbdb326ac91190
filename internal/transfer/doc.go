// Package transfer implements the point-to-point entry exchange.
//
// One exchange is a single linear run over one TLS-wrapped TCP
// connection: the sender writes exactly one framed entry, the
// receiver accepts exactly one connection and reads exactly one
// framed entry, then both sides close. There is no multiplexing,
// no resumption and no retry loop; retries are caller policy.
//
// The channel is encrypted with the local self-signed identity but
// the remote peer is not authenticated. Failures surface as the
// typed errors in internal/domain: ErrTransferTimeout,
// ErrHandshakeFailed and ErrProtocolViolation.
package transfer
