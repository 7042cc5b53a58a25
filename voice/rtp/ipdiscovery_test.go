package rtp

import (
	"encoding/binary"
	"net"
	"testing"
	"time"
)

func TestDiscoverSuccess(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	const ssrc = 0xDEADBEEF

	go func() {
		req := make([]byte, ipDiscoveryPacketSize)
		if _, err := server.Read(req); err != nil {
			return
		}

		var resp [ipDiscoveryPacketSize]byte
		binary.BigEndian.PutUint16(resp[0:2], 2)
		binary.BigEndian.PutUint16(resp[2:4], 70)
		binary.BigEndian.PutUint32(resp[4:8], ssrc)
		copy(resp[8:], "203.0.113.42\x00")
		binary.BigEndian.PutUint16(resp[72:74], 50000)

		server.Write(resp[:])
	}()

	addr, port, err := Discover(client, ssrc, time.Second)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if addr != "203.0.113.42" {
		t.Fatalf("addr = %q, want 203.0.113.42", addr)
	}
	if port != 50000 {
		t.Fatalf("port = %d, want 50000", port)
	}
}

func TestDiscoverSSRCMismatch(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	go func() {
		req := make([]byte, ipDiscoveryPacketSize)
		server.Read(req)

		var resp [ipDiscoveryPacketSize]byte
		binary.BigEndian.PutUint16(resp[0:2], 2)
		binary.BigEndian.PutUint16(resp[2:4], 70)
		binary.BigEndian.PutUint32(resp[4:8], 0xCAFEBABE)
		copy(resp[8:], "1.2.3.4\x00")
		server.Write(resp[:])
	}()

	_, _, err := Discover(client, 0xDEADBEEF, time.Second)
	if err == nil {
		t.Fatal("expected an error on ssrc mismatch")
	}
	ipErr, ok := err.(interface{ Error() string })
	if !ok {
		t.Fatalf("unexpected error type %T", err)
	}
	_ = ipErr
}

func TestDiscoverBadHeader(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	go func() {
		req := make([]byte, ipDiscoveryPacketSize)
		server.Read(req)

		var resp [ipDiscoveryPacketSize]byte
		binary.BigEndian.PutUint16(resp[0:2], 9) // wrong response type
		server.Write(resp[:])
	}()

	if _, _, err := Discover(client, 1, time.Second); err == nil {
		t.Fatal("expected an error on bad response header")
	}
}

func TestDiscoverRequestShape(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	reqCh := make(chan []byte, 1)
	go func() {
		buf := make([]byte, ipDiscoveryPacketSize)
		n, _ := server.Read(buf)
		reqCh <- buf[:n]

		var resp [ipDiscoveryPacketSize]byte
		binary.BigEndian.PutUint16(resp[0:2], 2)
		binary.BigEndian.PutUint16(resp[2:4], 70)
		binary.BigEndian.PutUint32(resp[4:8], 0x11223344)
		copy(resp[8:], "1.1.1.1\x00")
		server.Write(resp[:])
	}()

	if _, _, err := Discover(client, 0x11223344, time.Second); err != nil {
		t.Fatalf("Discover: %v", err)
	}

	req := <-reqCh
	if len(req) != ipDiscoveryPacketSize {
		t.Fatalf("request size = %d, want %d", len(req), ipDiscoveryPacketSize)
	}
	if req[0] != 0x00 || req[1] != 0x01 || req[2] != 0x00 || req[3] != 0x46 {
		t.Fatalf("request header = % x, want 00 01 00 46", req[:4])
	}
	if got := binary.BigEndian.Uint32(req[4:8]); got != 0x11223344 {
		t.Fatalf("request ssrc = %x, want 11223344", got)
	}
}
