package voicegateway

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/diamondburned/voicelink/discord"
	"github.com/diamondburned/voicelink/voice/voiceerr"
)

// envelope is the wire shape common to every voice gateway payload: a
// numeric opcode and a polymorphic data payload. It is only used after the
// opcode has already been determined by ScanOpcode, so unmarshalling it
// never needs to branch on an untyped tree.
type envelope struct {
	Op OPCode          `json:"op"`
	D  json.RawMessage `json:"d"`
}

// ScanOpcode extracts the numeric "op" field from a raw payload by a
// textual scan rather than a full JSON parse, so the hot receive path never
// has to materialise an untyped intermediate value just to decide how to
// dispatch. It returns voiceerr.NewMissingOpcodeError if no "op" key is
// found.
func ScanOpcode(raw []byte) (OPCode, error) {
	const key = `"op"`

	idx := bytes.Index(raw, []byte(key))
	if idx < 0 {
		return 0, voiceerr.NewMissingOpcodeError()
	}

	rest := raw[idx+len(key):]
	colon := bytes.IndexByte(rest, ':')
	if colon < 0 {
		return 0, voiceerr.NewMissingOpcodeError()
	}
	rest = bytes.TrimLeft(rest[colon+1:], " \t\r\n")

	end := 0
	for end < len(rest) && (rest[end] == '-' || (rest[end] >= '0' && rest[end] <= '9')) {
		end++
	}
	if end == 0 {
		return 0, voiceerr.NewMissingOpcodeError()
	}

	n, err := strconv.Atoi(string(rest[:end]))
	if err != nil {
		return 0, voiceerr.NewMissingOpcodeError()
	}
	return OPCode(n), nil
}

// Decode fully parses raw into the opcode-specific payload type determined
// by op (normally the result of a prior ScanOpcode call), returning it as
// one of the payload types below. Unknown opcodes return a missing-opcode
// ProtocolError, which callers log and drop.
func Decode(op OPCode, raw []byte) (interface{}, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, voiceerr.NewDeserError(err)
	}

	switch op {
	case IdentifyOP:
		var d IdentifyData
		if err := json.Unmarshal(env.D, &d); err != nil {
			return nil, voiceerr.NewDeserError(err)
		}
		return d, nil
	case SelectProtocolOP:
		var d SelectProtocolData
		if err := json.Unmarshal(env.D, &d); err != nil {
			return nil, voiceerr.NewDeserError(err)
		}
		return d, nil
	case ReadyOP:
		var d ReadyEvent
		if err := json.Unmarshal(env.D, &d); err != nil {
			return nil, voiceerr.NewDeserError(err)
		}
		return d, nil
	case HeartbeatOP:
		var d HeartbeatData
		if err := json.Unmarshal(env.D, &d); err != nil {
			return nil, voiceerr.NewDeserError(err)
		}
		return d, nil
	case SessionDescriptionOP:
		var d SessionDescriptionEvent
		if err := json.Unmarshal(env.D, &d); err != nil {
			return nil, voiceerr.NewDeserError(err)
		}
		return d, nil
	case SpeakingOP:
		var d SpeakingData
		if err := json.Unmarshal(env.D, &d); err != nil {
			return nil, voiceerr.NewDeserError(err)
		}
		return d, nil
	case HeartbeatAckOP:
		var d HeartbeatData
		if err := json.Unmarshal(env.D, &d); err != nil {
			return nil, voiceerr.NewDeserError(err)
		}
		return d, nil
	case ResumeOP:
		var d ResumeData
		if err := json.Unmarshal(env.D, &d); err != nil {
			return nil, voiceerr.NewDeserError(err)
		}
		return d, nil
	case HelloOP:
		var d HelloEvent
		if err := json.Unmarshal(env.D, &d); err != nil {
			return nil, voiceerr.NewDeserError(err)
		}
		return d, nil
	case ResumedOP:
		return ResumedEvent{}, nil
	case ClientConnectOP:
		var d ClientConnectEvent
		if err := json.Unmarshal(env.D, &d); err != nil {
			return nil, voiceerr.NewDeserError(err)
		}
		return d, nil
	case ClientDisconnectOP:
		var d ClientDisconnectEvent
		if err := json.Unmarshal(env.D, &d); err != nil {
			return nil, voiceerr.NewDeserError(err)
		}
		return d, nil
	default:
		return nil, voiceerr.NewMissingOpcodeError()
	}
}

// Encode wraps v in the {op, d} envelope for the given opcode and marshals it.
func Encode(op OPCode, v interface{}) ([]byte, error) {
	d, err := json.Marshal(v)
	if err != nil {
		return nil, voiceerr.NewSerError(err)
	}
	b, err := json.Marshal(envelope{Op: op, D: d})
	if err != nil {
		return nil, voiceerr.NewSerError(err)
	}
	return b, nil
}

// IdentifyData is the Identify (op 0) payload sent to open a session.
type IdentifyData struct {
	GuildID   discord.Snowflake `json:"server_id"`
	UserID    discord.Snowflake `json:"user_id"`
	SessionID string            `json:"session_id"`
	Token     string            `json:"token"`
}

// SelectProtocolData is the SelectProtocol (op 1) payload.
type SelectProtocolData struct {
	Protocol string                 `json:"protocol"`
	Data     SelectProtocolInnerData `json:"data"`
}

type SelectProtocolInnerData struct {
	Address string `json:"address"`
	Port    uint16 `json:"port"`
	Mode    string `json:"mode"`
}

// ReadyEvent is the Ready (op 2) payload.
type ReadyEvent struct {
	SSRC  uint32   `json:"ssrc"`
	IP    string   `json:"ip"`
	Port  uint16   `json:"port"`
	Modes []string `json:"modes"`
}

// HeartbeatData is the Heartbeat/HeartbeatAck (op 3 / op 6) payload: a
// single nonce.
type HeartbeatData uint64

// SessionDescriptionEvent is the SessionDescription (op 4) payload.
type SessionDescriptionEvent struct {
	Mode      string   `json:"mode"`
	SecretKey [32]byte `json:"secret_key"`
}

// SpeakingFlag is a bitmask describing which audio type is being sent.
type SpeakingFlag uint8

const (
	Microphone SpeakingFlag = 1 << 0
	Soundshare SpeakingFlag = 1 << 1
	Priority   SpeakingFlag = 1 << 2
)

// SpeakingData is the Speaking (op 5) payload.
type SpeakingData struct {
	Speaking SpeakingFlag      `json:"speaking"`
	Delay    *uint32           `json:"delay,omitempty"`
	SSRC     uint32            `json:"ssrc"`
	UserID   discord.Snowflake `json:"user_id,omitempty"`
}

// ResumeData is the Resume (op 7) payload.
type ResumeData struct {
	GuildID   discord.Snowflake `json:"server_id"`
	SessionID string            `json:"session_id"`
	Token     string            `json:"token"`
}

// HelloEvent is the Hello (op 8) payload.
type HelloEvent struct {
	HeartbeatInterval discord.Milliseconds `json:"heartbeat_interval"`
}

// ResumedEvent is the Resumed (op 9) payload: it carries no data.
type ResumedEvent struct{}

// ClientConnectEvent is the ClientConnect (op 12) payload.
type ClientConnectEvent struct {
	UserID    discord.Snowflake `json:"user_id"`
	AudioSSRC uint32            `json:"audio_ssrc"`
	VideoSSRC uint32            `json:"video_ssrc"`
}

// ClientDisconnectEvent is the ClientDisconnect (op 13) payload.
type ClientDisconnectEvent struct {
	UserID discord.Snowflake `json:"user_id"`
}
