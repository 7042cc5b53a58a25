package rtp

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/diamondburned/voicelink/voice/voiceerr"
	"golang.org/x/crypto/nacl/secretbox"
)

// Mode identifies one of the three interchangeable nonce disciplines.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeSuffix
	ModeLite
)

// wireNames are the voice-gateway protocol strings for each mode, in the
// exact preference order the handshake selects them: Lite, then Suffix,
// then Normal.
var wireNames = map[Mode]string{
	ModeLite:   "xsalsa20_poly1305_lite",
	ModeSuffix: "xsalsa20_poly1305_suffix",
	ModeNormal: "xsalsa20_poly1305",
}

// WireName returns the voice-gateway protocol string for this mode.
func (m Mode) WireName() string { return wireNames[m] }

// SelectMode picks a mode from a server-advertised list of supported
// encryption modes, preferring Lite, then Suffix, then Normal. Returns
// false if none of the three are supported.
func SelectMode(serverModes []string) (Mode, bool) {
	supported := make(map[string]bool, len(serverModes))
	for _, m := range serverModes {
		supported[m] = true
	}
	for _, m := range []Mode{ModeLite, ModeSuffix, ModeNormal} {
		if supported[wireNames[m]] {
			return m, true
		}
	}
	return 0, false
}

const keySize = 32
const nonceSize = 24

// Encryptor seals a packet's payload in place using xsalsa20poly1305, under
// one of three nonce disciplines selected once per connection.
type Encryptor struct {
	key  [keySize]byte
	mode Mode

	// liteCounter is used only in ModeLite; it starts from a
	// cryptographically random value and wraps on overflow.
	liteCounter uint32
}

// NewEncryptor builds an Encryptor from the 32-byte secret key returned in
// SessionDescription and the negotiated mode. For ModeLite, the initial
// counter value is drawn from a cryptographic RNG.
func NewEncryptor(mode Mode, secretKey [32]byte) (*Encryptor, error) {
	e := &Encryptor{key: secretKey, mode: mode}
	if mode == ModeLite {
		var seed [4]byte
		if _, err := rand.Read(seed[:]); err != nil {
			return nil, voiceerr.NewRTPEncryptError(err)
		}
		e.liteCounter = binary.BigEndian.Uint32(seed[:])
	}
	return e, nil
}

// Mode returns the negotiated nonce discipline.
func (e *Encryptor) Mode() Mode { return e.mode }

// Seal encrypts p's payload in place: it reads the plaintext currently
// sitting in p.PayloadBuf()[:n], overwrites it with ciphertext, writes the
// tag into p.Tag(), appends any nonce suffix the mode requires, and updates
// p's payload length accordingly.
func (e *Encryptor) Seal(p *Packet, plaintextLen int) error {
	var nonce [nonceSize]byte

	switch e.mode {
	case ModeNormal:
		copy(nonce[:12], p.Header())
	case ModeSuffix:
		if _, err := rand.Read(nonce[:]); err != nil {
			return voiceerr.NewRTPEncryptError(err)
		}
	case ModeLite:
		binary.BigEndian.PutUint32(nonce[:4], e.liteCounter)
		e.liteCounter++ // wraps on overflow per uint32 semantics
	default:
		return voiceerr.NewRTPEncryptError(errUnknownMode)
	}

	buf := p.PayloadBuf()
	plaintext := make([]byte, plaintextLen)
	copy(plaintext, buf[:plaintextLen])

	// secretbox.Seal prepends its own 16-byte tag to the output; we instead
	// want the tag in the packet's fixed tag slot and the ciphertext
	// immediately after the header, so we seal into a scratch buffer and
	// split it back apart.
	sealed := secretbox.Seal(nil, plaintext, &nonce, &e.key)
	tag, ciphertext := sealed[:secretbox.Overhead], sealed[secretbox.Overhead:]

	copy(p.Tag(), tag)
	n := copy(buf, ciphertext)

	switch e.mode {
	case ModeSuffix:
		n += copy(buf[n:], nonce[:])
	case ModeLite:
		n += copy(buf[n:], nonce[:4])
	}

	p.SetPayloadLen(n)
	return nil
}

// Open decrypts a received packet's payload, given the wire bytes after the
// header (ciphertext possibly followed by a nonce appendix) and the packet
// header (for ModeNormal's nonce derivation). It returns the plaintext.
func (e *Encryptor) Open(header, afterHeader []byte) ([]byte, error) {
	var nonce [nonceSize]byte
	var ciphertext []byte

	switch e.mode {
	case ModeNormal:
		copy(nonce[:12], header[:12])
		ciphertext = afterHeader
	case ModeSuffix:
		if len(afterHeader) < nonceSize {
			return nil, voiceerr.NewRTPEncryptError(errTruncated)
		}
		split := len(afterHeader) - nonceSize
		copy(nonce[:], afterHeader[split:])
		ciphertext = afterHeader[:split]
	case ModeLite:
		if len(afterHeader) < 4 {
			return nil, voiceerr.NewRTPEncryptError(errTruncated)
		}
		split := len(afterHeader) - 4
		copy(nonce[:4], afterHeader[split:])
		ciphertext = afterHeader[:split]
	default:
		return nil, voiceerr.NewRTPEncryptError(errUnknownMode)
	}

	sealed := make([]byte, secretbox.Overhead+len(ciphertext))
	copy(sealed, header[12:HeaderLen]) // tag slot precedes the ciphertext in our wire layout
	copy(sealed[secretbox.Overhead:], ciphertext)

	plaintext, ok := secretbox.Open(nil, sealed, &nonce, &e.key)
	if !ok {
		return nil, voiceerr.NewRTPEncryptError(errAuthFailed)
	}
	return plaintext, nil
}

type sentinelError string

func (e sentinelError) Error() string { return string(e) }

const (
	errUnknownMode sentinelError = "rtp: unknown encryption mode"
	errTruncated   sentinelError = "rtp: truncated packet for encryption mode"
	errAuthFailed  sentinelError = "rtp: decryption authentication failed"
)

