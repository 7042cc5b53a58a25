package rtp

import (
	"bytes"
	"encoding/binary"
	"net"
	"time"

	"github.com/diamondburned/voicelink/voice/voiceerr"
)

const ipDiscoveryPacketSize = 74

// Discover performs the IP discovery mini-protocol exchange over an
// already-connected UDP socket: it sends a 74-byte request carrying the
// SSRC and reads back the externally visible address and port.
//
// Request:  [0x00 0x01 0x00 0x46] ++ be32(ssrc) ++ zeros(66)
// Response: [0x00 0x02 0x00 0x46] ++ be32(ssrc) ++ nul-terminated-ascii-addr[64] ++ be16(port)
func Discover(conn net.Conn, ssrc uint32, timeout time.Duration) (addr string, port uint16, err error) {
	var req [ipDiscoveryPacketSize]byte
	binary.BigEndian.PutUint16(req[0:2], 1)
	binary.BigEndian.PutUint16(req[2:4], 70)
	binary.BigEndian.PutUint32(req[4:8], ssrc)

	if timeout > 0 {
		if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
			return "", 0, voiceerr.NewIPDiscoveryIOError(err)
		}
		defer conn.SetDeadline(time.Time{})
	}

	if _, err := conn.Write(req[:]); err != nil {
		return "", 0, voiceerr.NewIPDiscoveryIOError(err)
	}

	var resp [ipDiscoveryPacketSize]byte
	n, err := conn.Read(resp[:])
	if err != nil {
		return "", 0, voiceerr.NewIPDiscoveryIOError(err)
	}
	if n != ipDiscoveryPacketSize {
		return "", 0, voiceerr.NewIPDiscoveryInvalidSize()
	}

	wantHeader := []byte{0x00, 0x02, 0x00, 0x46}
	if !bytes.Equal(resp[0:4], wantHeader) {
		return "", 0, voiceerr.NewIPDiscoveryInvalidHeader()
	}

	gotSSRC := binary.BigEndian.Uint32(resp[4:8])
	if gotSSRC != ssrc {
		return "", 0, voiceerr.NewIPDiscoveryInvalidSSRC(ssrc, gotSSRC)
	}

	addrBytes := resp[8:72]
	nul := bytes.IndexByte(addrBytes, 0)
	if nul < 0 {
		nul = len(addrBytes)
	}
	addr = string(addrBytes[:nul])
	if addr == "" {
		return "", 0, voiceerr.NewIPDiscoveryInvalidAddr()
	}

	// The port is transmitted big-endian, matching the spec's wire layout
	// and the Rust original's u16::from_be_bytes — not little-endian.
	port = binary.BigEndian.Uint16(resp[72:74])

	return addr, port, nil
}
