// Package identity provisions the local TLS identity for peer
// transfers.
//
// The provisioner ensures a self-signed certificate and private key
// exist in the configured directory, generating them once on first
// use and loading them unchanged thereafter. It is intentionally
// trust-blind: the identity encrypts the channel but does not
// authenticate the remote peer. Certificate validation by a peer
// proves nothing about who that peer is.
package identity
