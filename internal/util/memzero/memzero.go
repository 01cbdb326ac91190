// Package memzero wipes buffers that held vault keys or plaintext
// passwords, shortening their lifetime in memory instead of waiting
// on garbage collection.
package memzero

import "crypto/subtle"

// Zero overwrites b in place. ConstantTimeCopy keeps the write from
// being elided as dead.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}
