package rtp

import (
	"bytes"
	"testing"
)

func sealAndOpen(t *testing.T, mode Mode) {
	t.Helper()

	var key [32]byte
	for i := range key {
		key[i] = byte(i)
	}

	enc, err := NewEncryptor(mode, key)
	if err != nil {
		t.Fatalf("NewEncryptor: %v", err)
	}

	plaintext := []byte("a short opus payload, pretend it's real")

	p := NewPacket()
	p.setHeader(7, 960*7, 0xCAFEBABE)
	copy(p.PayloadBuf(), plaintext)

	if err := enc.Seal(p, len(plaintext)); err != nil {
		t.Fatalf("Seal: %v", err)
	}

	// A fresh Encryptor (same key/mode) decodes what was sealed, since
	// lite/suffix modes carry their nonce on the wire and normal mode
	// derives it from the header that travels alongside.
	dec, err := NewEncryptor(mode, key)
	if err != nil {
		t.Fatalf("NewEncryptor (decoder): %v", err)
	}

	wire := p.Bytes()
	afterHeader := wire[HeaderLen:]

	got, err := dec.Open(wire[:HeaderLen], afterHeader)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round trip mismatch: got %q, want %q", got, plaintext)
	}
}

// TestEncryptorRoundTrip verifies invariant 3 for all three nonce modes.
func TestEncryptorRoundTrip(t *testing.T) {
	for _, mode := range []Mode{ModeNormal, ModeSuffix, ModeLite} {
		mode := mode
		t.Run(mode.WireName(), func(t *testing.T) {
			sealAndOpen(t, mode)
		})
	}
}

func TestEncryptorSuffixAppendsNonce(t *testing.T) {
	var key [32]byte
	enc, err := NewEncryptor(ModeSuffix, key)
	if err != nil {
		t.Fatalf("NewEncryptor: %v", err)
	}

	plaintext := []byte("hello")
	p := NewPacket()
	p.setHeader(1, 1, 1)
	copy(p.PayloadBuf(), plaintext)

	if err := enc.Seal(p, len(plaintext)); err != nil {
		t.Fatalf("Seal: %v", err)
	}

	wantLen := len(plaintext) + 24 // ciphertext (same length as plaintext) + 24-byte nonce appendix
	if p.PayloadLen() != wantLen {
		t.Fatalf("payload len = %d, want %d (ciphertext + 24-byte nonce)", p.PayloadLen(), wantLen)
	}
}

func TestEncryptorLiteAppends4ByteCounter(t *testing.T) {
	var key [32]byte
	enc, err := NewEncryptor(ModeLite, key)
	if err != nil {
		t.Fatalf("NewEncryptor: %v", err)
	}

	plaintext := []byte("hello")
	p := NewPacket()
	p.setHeader(1, 1, 1)
	copy(p.PayloadBuf(), plaintext)

	if err := enc.Seal(p, len(plaintext)); err != nil {
		t.Fatalf("Seal: %v", err)
	}

	wantLen := len(plaintext) + 4
	if p.PayloadLen() != wantLen {
		t.Fatalf("payload len = %d, want %d (ciphertext + 4-byte counter)", p.PayloadLen(), wantLen)
	}
}

func TestEncryptorLiteCounterIncrementsAndWraps(t *testing.T) {
	var key [32]byte
	enc, err := NewEncryptor(ModeLite, key)
	if err != nil {
		t.Fatalf("NewEncryptor: %v", err)
	}
	enc.liteCounter = 0xFFFFFFFF

	seal := func() uint32 {
		p := NewPacket()
		p.setHeader(0, 0, 0)
		copy(p.PayloadBuf(), []byte("x"))
		if err := enc.Seal(p, 1); err != nil {
			t.Fatalf("Seal: %v", err)
		}
		n := p.PayloadLen()
		counterBytes := p.PayloadBuf()[n-4 : n]
		return uint32(counterBytes[0])<<24 | uint32(counterBytes[1])<<16 | uint32(counterBytes[2])<<8 | uint32(counterBytes[3])
	}

	first := seal()
	if first != 0xFFFFFFFF {
		t.Fatalf("first counter = %x, want ffffffff", first)
	}
	second := seal()
	if second != 0 {
		t.Fatalf("counter after wrap = %x, want 0", second)
	}
}

func TestSelectModePrefersLiteThenSuffixThenNormal(t *testing.T) {
	tests := []struct {
		name   string
		modes  []string
		want   Mode
		wantOk bool
	}{
		{"all three", []string{"xsalsa20_poly1305", "xsalsa20_poly1305_suffix", "xsalsa20_poly1305_lite"}, ModeLite, true},
		{"suffix and normal", []string{"xsalsa20_poly1305", "xsalsa20_poly1305_suffix"}, ModeSuffix, true},
		{"normal only", []string{"xsalsa20_poly1305"}, ModeNormal, true},
		{"none supported", []string{"aead_aes256_gcm"}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectMode(tt.modes)
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && got != tt.want {
				t.Fatalf("mode = %v, want %v", got, tt.want)
			}
		})
	}
}
