package rtp

import (
	"net"

	"github.com/diamondburned/voicelink/voice/voiceerr"
)

// Socket wraps a connected UDP socket plus the per-connection encryption and
// sequence/timestamp state. Socket.Send owns no pacing of its own: every
// call issues exactly one UDP datagram immediately and advances the
// counters. Real-time pacing is entirely the Packet Streamer's
// responsibility (see voice/streamer).
type Socket struct {
	conn      net.Conn
	encryptor *Encryptor
	ssrc      uint32
	sequence  uint16
	timestamp uint32

	packet *Packet
}

// NewSocket builds a Socket around an already-connected UDP net.Conn, the
// server-chosen SSRC, and the negotiated Encryptor.
func NewSocket(conn net.Conn, ssrc uint32, encryptor *Encryptor) *Socket {
	return &Socket{
		conn:      conn,
		encryptor: encryptor,
		ssrc:      ssrc,
		packet:    NewPacket(),
	}
}

// SSRC returns the negotiated SSRC.
func (s *Socket) SSRC() uint32 { return s.ssrc }

// Sequence returns the next sequence number to be used by Send.
func (s *Socket) Sequence() uint16 { return s.sequence }

// Timestamp returns the next timestamp to be used by Send.
func (s *Socket) Timestamp() uint32 { return s.timestamp }

// Send writes the given Opus payload as one RTP datagram: it fills the
// header with the current sequence/timestamp/ssrc, seals the payload with
// the Encryptor, and issues a single UDP write of the packet's effective
// length. On return it advances sequence by 1 (wrapping uint16) and
// timestamp by MonoFrameSize (wrapping uint32) — regardless of how long the
// call took, so timestamps track frames sent, not wall-clock time.
func (s *Socket) Send(opus []byte) error {
	s.packet.Reset()
	s.packet.setHeader(s.sequence, s.timestamp, s.ssrc)

	copy(s.packet.PayloadBuf(), opus)
	if err := s.encryptor.Seal(s.packet, len(opus)); err != nil {
		return voiceerr.NewRTPEncryptError(err)
	}

	if _, err := s.conn.Write(s.packet.Bytes()); err != nil {
		return voiceerr.NewRTPIOError(err)
	}

	s.sequence++
	s.timestamp += MonoFrameSize
	return nil
}

// Close closes the underlying UDP connection.
func (s *Socket) Close() error {
	return s.conn.Close()
}

// ReadPacket reads and decrypts a single inbound RTP packet, returning its
// plaintext Opus payload and header fields. It is not exercised by the
// playback-only data flow described by this engine's scope, but is kept as
// a symmetric counterpart to Send for receivers that need it.
func (s *Socket) ReadPacket(buf []byte) (seq uint16, timestamp uint32, ssrc uint32, payload []byte, err error) {
	n, err := s.conn.Read(buf)
	if err != nil {
		return 0, 0, 0, nil, voiceerr.NewRTPIOError(err)
	}
	if n < HeaderLen {
		return 0, 0, 0, nil, voiceerr.NewRTPIOError(errTruncated)
	}

	p := NewPacket()
	copy(p.buf[:], buf[:n])
	p.SetPayloadLen(n - HeaderLen)

	plaintext, err := s.encryptor.Open(buf[:HeaderLen], buf[HeaderLen:n])
	if err != nil {
		return 0, 0, 0, nil, err
	}

	return p.Sequence(), p.Timestamp(), p.SSRC(), plaintext, nil
}
