package rtp

import (
	"net"
	"testing"
)

func newLoopbackSocket(t *testing.T, mode Mode) (*Socket, net.Conn) {
	t.Helper()

	client, server := net.Pipe()
	t.Cleanup(func() {
		client.Close()
		server.Close()
	})

	var key [32]byte
	enc, err := NewEncryptor(mode, key)
	if err != nil {
		t.Fatalf("NewEncryptor: %v", err)
	}

	return NewSocket(client, 0xDEADBEEF, enc), server
}

// TestSocketSendMonotonic verifies invariant 1: consecutive Send calls
// advance sequence by 1 and timestamp by MonoFrameSize, and those exact
// values are what lands on the wire.
func TestSocketSendMonotonic(t *testing.T) {
	socket, server := newLoopbackSocket(t, ModeNormal)

	const frames = 5
	results := make(chan error, frames)
	go func() {
		for i := 0; i < frames; i++ {
			results <- socket.Send([]byte("opus-frame"))
		}
	}()

	buf := make([]byte, PacketCapacity)
	for i := 0; i < frames; i++ {
		n, err := server.Read(buf)
		if err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if err := <-results; err != nil {
			t.Fatalf("send %d: %v", i, err)
		}

		wantSeq := uint16(i)
		wantTS := uint32(i) * MonoFrameSize

		gotSeq := uint16(buf[2])<<8 | uint16(buf[3])
		gotTS := uint32(buf[4])<<24 | uint32(buf[5])<<16 | uint32(buf[6])<<8 | uint32(buf[7])

		if gotSeq != wantSeq {
			t.Fatalf("packet %d: sequence = %d, want %d", i, gotSeq, wantSeq)
		}
		if gotTS != wantTS {
			t.Fatalf("packet %d: timestamp = %d, want %d", i, gotTS, wantTS)
		}
		if buf[0] != 0x80 || buf[1] != 0x78 {
			t.Fatalf("packet %d: header bytes = %x %x, want 80 78", i, buf[0], buf[1])
		}
		_ = n
	}
}

func TestSocketSequenceTimestampWrap(t *testing.T) {
	socket, server := newLoopbackSocket(t, ModeNormal)
	socket.sequence = 0xFFFF
	socket.timestamp = 0xFFFFFFFF - MonoFrameSize + 1

	done := make(chan error, 1)
	go func() { done <- socket.Send([]byte("x")) }()

	buf := make([]byte, PacketCapacity)
	if _, err := server.Read(buf); err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("send: %v", err)
	}

	if socket.Sequence() != 0 {
		t.Fatalf("sequence after wrap = %d, want 0", socket.Sequence())
	}
	if socket.Timestamp() != 0 {
		t.Fatalf("timestamp after wrap = %d, want 0", socket.Timestamp())
	}
}

func TestSocketSSRC(t *testing.T) {
	socket, _ := newLoopbackSocket(t, ModeNormal)
	if socket.SSRC() != 0xDEADBEEF {
		t.Fatalf("SSRC() = %x, want deadbeef", socket.SSRC())
	}
}
