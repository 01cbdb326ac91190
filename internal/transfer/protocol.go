package transfer

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"

	"passvault/internal/domain"
	"passvault/internal/util/memzero"
)

const (
	// DefaultPort is the documented listen port for receivers.
	DefaultPort = 65432

	// maxFrameBytes caps a wire frame. An entry is three short
	// strings; anything near this size is garbage.
	maxFrameBytes = 1 << 20
)

// writeEntry writes one length-prefixed canonical entry frame:
// a big-endian uint32 payload length followed by the entry JSON.
func writeEntry(w io.Writer, e domain.Entry) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}
	defer memzero.Zero(payload)

	var hdr [4]byte
	binary.BigEndian.PutUint32(hdr[:], uint32(len(payload)))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// readEntry reads one frame. Short reads, oversize lengths and
// undecodable payloads are protocol violations; the caller discards
// the connection rather than guessing at partial data.
func readEntry(r io.Reader) (domain.Entry, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return domain.Entry{}, framingError("frame header", err)
	}
	n := binary.BigEndian.Uint32(hdr[:])
	if n == 0 || n > maxFrameBytes {
		return domain.Entry{}, fmt.Errorf("%w: frame length %d", domain.ErrProtocolViolation, n)
	}

	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return domain.Entry{}, framingError("frame body", err)
	}
	defer memzero.Zero(payload)

	var e domain.Entry
	if err := json.Unmarshal(payload, &e); err != nil {
		return domain.Entry{}, fmt.Errorf("%w: undecodable payload", domain.ErrProtocolViolation)
	}
	return e, nil
}

// framingError keeps timeouts distinguishable from truncated frames.
func framingError(stage string, err error) error {
	if isTimeout(err) {
		return fmt.Errorf("%s: %w", stage, domain.ErrTransferTimeout)
	}
	return fmt.Errorf("%s: %w: %w", stage, domain.ErrProtocolViolation, err)
}
