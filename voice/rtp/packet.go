// Package rtp implements the encrypted RTP/UDP transport used by the voice
// connection: packet construction, the three xsalsa20poly1305 nonce
// disciplines, the socket that paces sequence/timestamp counters, and the
// IP discovery mini-protocol used during the handshake.
package rtp

import "encoding/binary"

const (
	// PacketCapacity is the maximum size of an RTP packet on the wire.
	PacketCapacity = 1460

	// HeaderLen is the length of the fixed RTP header (12 bytes) plus the
	// Poly1305 tag slot (16 bytes) that precedes the payload.
	HeaderLen = 12 + TagSize

	// TagSize is the length of the Poly1305 authentication tag.
	TagSize = 16

	// MonoFrameSize is the number of samples represented by one packet's
	// timestamp increment (20ms at 48kHz).
	MonoFrameSize = 960
)

// versionFlags and payloadType are the two fixed header bytes; they are
// written once at construction and never touched by payload writes.
const (
	versionFlags byte = 0x80
	payloadType  byte = 0x78
)

// Packet is a fixed-capacity byte buffer representing one RTP datagram. The
// header (version/type, sequence, timestamp, ssrc, tag slot) occupies the
// first HeaderLen bytes; everything after that up to payloadLen is the
// (ciphertext + optional nonce appendix) payload.
type Packet struct {
	buf        [PacketCapacity]byte
	payloadLen int
}

// NewPacket returns a Packet with its header bytes initialised. The
// sequence/timestamp/ssrc fields are zero until Reset or a Socket.Send call
// fills them in.
func NewPacket() *Packet {
	p := &Packet{}
	p.buf[0] = versionFlags
	p.buf[1] = payloadType
	return p
}

// Reset clears the payload length and re-asserts the header bytes, without
// touching sequence/timestamp/ssrc (those are the Socket's responsibility).
func (p *Packet) Reset() {
	p.buf[0] = versionFlags
	p.buf[1] = payloadType
	p.payloadLen = 0
}

// Sequence returns the big-endian sequence number in the header.
func (p *Packet) Sequence() uint16 { return binary.BigEndian.Uint16(p.buf[2:4]) }

// Timestamp returns the big-endian timestamp in the header.
func (p *Packet) Timestamp() uint32 { return binary.BigEndian.Uint32(p.buf[4:8]) }

// SSRC returns the big-endian SSRC in the header.
func (p *Packet) SSRC() uint32 { return binary.BigEndian.Uint32(p.buf[8:12]) }

func (p *Packet) setHeader(sequence uint16, timestamp, ssrc uint32) {
	binary.BigEndian.PutUint16(p.buf[2:4], sequence)
	binary.BigEndian.PutUint32(p.buf[4:8], timestamp)
	binary.BigEndian.PutUint32(p.buf[8:12], ssrc)
}

// Header returns the 12-byte RTP header (version/type, sequence, timestamp,
// ssrc), used as the nonce material for the Normal encryption mode.
func (p *Packet) Header() []byte { return p.buf[:12] }

// Tag returns the 16-byte Poly1305 tag slot.
func (p *Packet) Tag() []byte { return p.buf[12:HeaderLen] }

// PayloadCap returns the maximum number of ciphertext+appendix bytes that
// can follow the header without exceeding PacketCapacity.
func (p *Packet) PayloadCap() int { return PacketCapacity - HeaderLen }

// PayloadLen returns the number of bytes currently written after the header.
func (p *Packet) PayloadLen() int { return p.payloadLen }

// SetPayloadLen records how many bytes after the header are valid. It is the
// caller's (the Encryptor's) responsibility to have actually written them.
func (p *Packet) SetPayloadLen(n int) { p.payloadLen = n }

// PayloadBuf returns the full capacity payload region, for the Encryptor to
// write ciphertext and nonce appendix into.
func (p *Packet) PayloadBuf() []byte { return p.buf[HeaderLen:] }

// Bytes returns the effective wire representation: header plus exactly
// payloadLen payload bytes. The returned slice aliases the packet's buffer
// and is only valid until the next Reset.
func (p *Packet) Bytes() []byte { return p.buf[:HeaderLen+p.payloadLen] }

// Copy returns an independent copy of the packet's current wire bytes.
func (p *Packet) Copy() []byte {
	out := make([]byte, HeaderLen+p.payloadLen)
	copy(out, p.Bytes())
	return out
}
