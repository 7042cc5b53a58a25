package rtp

import (
	"bytes"
	"testing"
)

func TestNewPacketHeader(t *testing.T) {
	p := NewPacket()
	if got := p.Bytes()[:2]; !bytes.Equal(got, []byte{0x80, 0x78}) {
		t.Fatalf("header bytes = % x, want 80 78", got)
	}
}

func TestPacketHeaderSurvivesPayloadWrites(t *testing.T) {
	p := NewPacket()
	p.setHeader(42, 960, 0xDEADBEEF)

	buf := p.PayloadBuf()
	for i := range buf {
		buf[i] = 0xFF
	}
	p.SetPayloadLen(len(buf))

	if got := p.Bytes()[:2]; !bytes.Equal(got, []byte{0x80, 0x78}) {
		t.Fatalf("header corrupted by payload write: % x", got)
	}
	if p.Sequence() != 42 {
		t.Fatalf("sequence = %d, want 42", p.Sequence())
	}
	if p.Timestamp() != 960 {
		t.Fatalf("timestamp = %d, want 960", p.Timestamp())
	}
	if p.SSRC() != 0xDEADBEEF {
		t.Fatalf("ssrc = %x, want deadbeef", p.SSRC())
	}
}

func TestPacketResetReassertsHeaderBytes(t *testing.T) {
	p := NewPacket()
	p.setHeader(1, 1, 1)
	p.SetPayloadLen(10)

	p.Reset()

	if p.PayloadLen() != 0 {
		t.Fatalf("payload len = %d after reset, want 0", p.PayloadLen())
	}
	if got := p.buf[:2]; !bytes.Equal(got, []byte{0x80, 0x78}) {
		t.Fatalf("header bytes not reasserted by Reset: % x", got)
	}
	// Reset intentionally leaves sequence/timestamp/ssrc alone; that's the
	// Socket's job.
	if p.Sequence() != 1 {
		t.Fatalf("Reset must not clear sequence, got %d", p.Sequence())
	}
}

func TestPacketCapacity(t *testing.T) {
	p := NewPacket()
	if cap, want := p.PayloadCap(), PacketCapacity-HeaderLen; cap != want {
		t.Fatalf("PayloadCap() = %d, want %d", cap, want)
	}
}
