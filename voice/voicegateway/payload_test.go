package voicegateway

import (
	"encoding/json"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// opcodeScanCases exercises invariant 4: the textual opcode scan must agree
// with what a full JSON parse reports for every valid payload shape.
func opcodeScanCases() []struct {
	name string
	op   OPCode
	v    interface{}
} {
	delay := uint32(10)
	return []struct {
		name string
		op   OPCode
		v    interface{}
	}{
		{"identify", IdentifyOP, IdentifyData{SessionID: "s", Token: "t"}},
		{"select-protocol", SelectProtocolOP, SelectProtocolData{Protocol: "udp"}},
		{"ready", ReadyOP, ReadyEvent{SSRC: 1, IP: "1.2.3.4", Port: 1, Modes: []string{"a"}}},
		{"heartbeat", HeartbeatOP, HeartbeatData(42)},
		{"session-description", SessionDescriptionOP, SessionDescriptionEvent{Mode: "xsalsa20_poly1305_lite"}},
		{"speaking", SpeakingOP, SpeakingData{Speaking: Microphone, Delay: &delay, SSRC: 9}},
		{"heartbeat-ack", HeartbeatAckOP, HeartbeatData(43)},
		{"resume", ResumeOP, ResumeData{SessionID: "s", Token: "t"}},
		{"hello", HelloOP, HelloEvent{HeartbeatInterval: 15000}},
		{"client-connect", ClientConnectOP, ClientConnectEvent{AudioSSRC: 7}},
		{"client-disconnect", ClientDisconnectOP, ClientDisconnectEvent{}},
	}
}

func TestOpcodeScanMatchesDecode(t *testing.T) {
	for _, tt := range opcodeScanCases() {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := Encode(tt.op, tt.v)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}

			scanned, err := ScanOpcode(raw)
			if err != nil {
				t.Fatalf("ScanOpcode: %v\npayload: %s", err, spew.Sdump(raw))
			}
			if scanned != tt.op {
				t.Fatalf("ScanOpcode = %d, want %d", scanned, tt.op)
			}

			decoded, err := Decode(scanned, raw)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}

			var env envelope
			if err := json.Unmarshal(raw, &env); err != nil {
				t.Fatalf("reference unmarshal: %v", err)
			}
			if env.Op != tt.op {
				t.Fatalf("reference parse op = %d, want %d\ndecoded: %s", env.Op, tt.op, spew.Sdump(decoded))
			}
		})
	}
}

func TestScanOpcodeMissing(t *testing.T) {
	if _, err := ScanOpcode([]byte(`{"d":{}}`)); err == nil {
		t.Fatal("expected an error for a payload with no op field")
	}
}

func TestScanOpcodeWhitespace(t *testing.T) {
	op, err := ScanOpcode([]byte(`{ "op" :  8 , "d":{}}`))
	if err != nil {
		t.Fatalf("ScanOpcode: %v", err)
	}
	if op != HelloOP {
		t.Fatalf("op = %d, want %d", op, HelloOP)
	}
}

func TestDecodeUnknownOpcode(t *testing.T) {
	if _, err := Decode(OPCode(999), []byte(`{"op":999,"d":{}}`)); err == nil {
		t.Fatal("expected an error decoding an unknown opcode")
	}
}

func TestHelloHeartbeatIntervalIsMilliseconds(t *testing.T) {
	raw, err := Encode(HelloOP, HelloEvent{HeartbeatInterval: 15000})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	v, err := Decode(HelloOP, raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	hello := v.(HelloEvent)
	if got, want := hello.HeartbeatInterval.Duration().Milliseconds(), int64(15000); got != want {
		t.Fatalf("heartbeat interval = %dms, want %dms", got, want)
	}
}
