package transfer

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"passvault/internal/domain"
)

// DefaultTimeout bounds a whole exchange: connect or accept,
// handshake, and the single entry read/write.
const DefaultTimeout = 30 * time.Second

// Session drives one entry exchange over one TLS connection, as
// sender or receiver. Sessions are reusable; each call is one
// complete exchange and releases its socket on every exit path.
type Session struct {
	identity tls.Certificate
	timeout  time.Duration
	log      logrus.FieldLogger
}

// NewSession returns a session using the given local identity.
// A non-positive timeout falls back to DefaultTimeout.
func NewSession(identity tls.Certificate, timeout time.Duration) *Session {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Session{
		identity: identity,
		timeout:  timeout,
		log:      logrus.StandardLogger(),
	}
}

// Send connects to addr, completes the TLS handshake and writes
// exactly one entry, then closes the connection. Cancelling ctx
// closes the socket, failing any blocked I/O.
func (s *Session) Send(ctx context.Context, addr string, e domain.Entry) error {
	deadline := time.Now().Add(s.timeout)

	// The peer presents a self-signed certificate we have no trust
	// anchor for; verification is skipped. This encrypts the channel
	// without authenticating the peer.
	conf := &tls.Config{
		Certificates:       []tls.Certificate{s.identity},
		InsecureSkipVerify: true, // #nosec G402
		MinVersion:         tls.VersionTLS12,
	}

	s.log.WithField("peer", addr).Debug("connecting")
	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: s.timeout, Deadline: deadline},
		Config:    conf,
	}
	// DialContext aborts both the TCP connect and the TLS handshake
	// when ctx ends, so a cancelled sender never waits out the timeout.
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("cancelled: %w", ctx.Err())
		}
		return classifyDial(err)
	}
	defer conn.Close()
	stop := closeOnDone(ctx, conn)
	defer stop()

	if err := conn.SetDeadline(deadline); err != nil {
		return err
	}
	if err := writeEntry(conn, e); err != nil {
		return classifyIO(ctx, err)
	}
	s.log.WithField("peer", addr).Debug("entry sent")
	return nil
}

// Receive listens on port, accepts exactly one TLS connection, reads
// exactly one entry and closes everything, releasing the port so a
// later receive can bind it again. Cancelling ctx closes the
// listener, failing a blocked accept.
func (s *Session) Receive(ctx context.Context, port int) (domain.Entry, error) {
	deadline := time.Now().Add(s.timeout)

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return domain.Entry{}, fmt.Errorf("listen: %w", err)
	}
	defer ln.Close()
	stopLn := closeOnDone(ctx, ln)
	defer stopLn()

	if tcp, ok := ln.(*net.TCPListener); ok {
		if err := tcp.SetDeadline(deadline); err != nil {
			return domain.Entry{}, err
		}
	}

	s.log.WithField("port", port).Debug("listening")
	raw, err := ln.Accept()
	if err != nil {
		return domain.Entry{}, classifyIO(ctx, err)
	}
	defer raw.Close()
	stopConn := closeOnDone(ctx, raw)
	defer stopConn()

	if err := raw.SetDeadline(deadline); err != nil {
		return domain.Entry{}, err
	}

	conn := tls.Server(raw, &tls.Config{
		Certificates: []tls.Certificate{s.identity},
		MinVersion:   tls.VersionTLS12,
	})
	defer conn.Close()
	if err := conn.HandshakeContext(ctx); err != nil {
		if isTimeout(err) {
			return domain.Entry{}, fmt.Errorf("handshake: %w", domain.ErrTransferTimeout)
		}
		return domain.Entry{}, fmt.Errorf("%w: %v", domain.ErrHandshakeFailed, err)
	}

	e, err := readEntry(conn)
	if err != nil {
		return domain.Entry{}, classifyIO(ctx, err)
	}
	s.log.WithField("service", e.Service).Debug("entry received")
	return e, nil
}

// closeOnDone closes c when ctx ends, unblocking any I/O stuck on it.
// The returned stop func releases the watcher.
func closeOnDone(ctx context.Context, c io.Closer) (stop func()) {
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = c.Close()
		case <-done:
		}
	}()
	return func() { close(done) }
}

// classifyDial maps a dial failure onto the error taxonomy. A TCP
// level failure (refused, unreachable, timeout) is not a handshake
// failure; everything after the TCP connect is.
func classifyDial(err error) error {
	if isTimeout(err) {
		return fmt.Errorf("connect: %w", domain.ErrTransferTimeout)
	}
	var op *net.OpError
	if errors.As(err, &op) && op.Op == "dial" {
		return fmt.Errorf("connect: %w", err)
	}
	return fmt.Errorf("%w: %v", domain.ErrHandshakeFailed, err)
}

// classifyIO maps read/write and accept failures. A closed socket
// under a cancelled context reports the cancellation.
func classifyIO(ctx context.Context, err error) error {
	if ctx.Err() != nil && errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("cancelled: %w", ctx.Err())
	}
	if isTimeout(err) {
		return domain.ErrTransferTimeout
	}
	return err
}

func isTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}

var (
	_ domain.EntrySender   = (*Session)(nil)
	_ domain.EntryReceiver = (*Session)(nil)
)
