package transfer_test

import (
	"context"
	"crypto/tls"
	"encoding/binary"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passvault/internal/domain"
	"passvault/internal/identity"
	"passvault/internal/transfer"
)

func newSession(t *testing.T, timeout time.Duration) *transfer.Session {
	t.Helper()
	cert, err := identity.New(t.TempDir()).Ensure()
	require.NoError(t, err)
	return transfer.NewSession(cert, timeout)
}

// sendWithRetry tolerates the receiver goroutine not having bound
// its listener yet.
func sendWithRetry(t *testing.T, s *transfer.Session, addr string, e domain.Entry) error {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for {
		err := s.Send(context.Background(), addr, e)
		if err == nil || time.Now().After(deadline) {
			return err
		}
		time.Sleep(50 * time.Millisecond)
	}
}

func TestSendReceive_EndToEnd(t *testing.T) {
	const port = 65432
	receiver := newSession(t, 5*time.Second)
	sender := newSession(t, 5*time.Second)

	type result struct {
		entry domain.Entry
		err   error
	}
	done := make(chan result, 1)
	go func() {
		e, err := receiver.Receive(context.Background(), port)
		done <- result{e, err}
	}()

	want := domain.Entry{Service: "example.com", Username: "alice", Password: "s3cr3t"}
	require.NoError(t, sendWithRetry(t, sender, fmt.Sprintf("127.0.0.1:%d", port), want))

	got := <-done
	require.NoError(t, got.err)
	assert.Equal(t, want, got.entry)
}

func TestReceive_TimeoutReleasesPort(t *testing.T) {
	const port = 65433
	receiver := newSession(t, 1*time.Second)

	start := time.Now()
	_, err := receiver.Receive(context.Background(), port)
	elapsed := time.Since(start)

	require.ErrorIs(t, err, domain.ErrTransferTimeout)
	assert.Less(t, elapsed, 2*time.Second)

	// The port must be immediately bindable again.
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	require.NoError(t, err)
	_ = ln.Close()
}

func TestReceive_CancelClosesListener(t *testing.T) {
	const port = 65434
	receiver := newSession(t, 30*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := receiver.Receive(ctx, port)
		done <- err
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("receive did not return after cancellation")
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	require.NoError(t, err)
	_ = ln.Close()
}

func TestReceive_MalformedFrameIsProtocolViolation(t *testing.T) {
	const port = 65435
	receiver := newSession(t, 5*time.Second)

	done := make(chan error, 1)
	go func() {
		_, err := receiver.Receive(context.Background(), port)
		done <- err
	}()

	// Connect with a frame header announcing an absurd length.
	conf := &tls.Config{InsecureSkipVerify: true, MinVersion: tls.VersionTLS12} // #nosec G402
	var conn *tls.Conn
	var err error
	deadline := time.Now().Add(3 * time.Second)
	for {
		conn, err = tls.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", port), conf)
		if err == nil || time.Now().After(deadline) {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	require.NoError(t, err)

	var hdr [4]byte
	binary.BigEndian.PutUint32(hdr[:], 1<<30)
	_, err = conn.Write(hdr[:])
	require.NoError(t, err)
	_ = conn.Close()

	require.ErrorIs(t, <-done, domain.ErrProtocolViolation)
}

func TestSend_CancelDuringHandshake(t *testing.T) {
	// A peer that accepts the TCP connection but never speaks TLS
	// leaves the sender stuck in its handshake.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		time.Sleep(3 * time.Second)
	}()

	sender := newSession(t, 30*time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- sender.Send(ctx, ln.Addr().String(), domain.Entry{Service: "x"})
	}()

	time.Sleep(100 * time.Millisecond)
	start := time.Now()
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
		assert.Less(t, time.Since(start), 2*time.Second)
	case <-time.After(2 * time.Second):
		t.Fatal("send did not return after cancellation")
	}
}

func TestSend_NoListenerFails(t *testing.T) {
	sender := newSession(t, 1*time.Second)

	err := sender.Send(context.Background(), "127.0.0.1:65436", domain.Entry{Service: "x"})
	require.Error(t, err)
}
