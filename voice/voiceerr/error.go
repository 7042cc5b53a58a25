// Package voiceerr defines the error taxonomy shared across the voice
// transport packages. It mirrors the shape of a typical tagged-union error
// type: a small set of variants, each wrapping an underlying cause, with
// classifier methods deciding how the connection and player layers should
// react.
package voiceerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies which variant of Error this is.
type Kind uint8

const (
	// KindWS wraps a websocket/protocol-layer error.
	KindWS Kind = iota
	// KindRTP wraps an RTP transport or encryption error.
	KindRTP
	// KindAudio wraps an audio source error.
	KindAudio
	// KindGatewayClosed means the main gateway's event or command channel closed.
	KindGatewayClosed
	// KindTimeout means a wall-clock deadline (handshake, reconnect, gateway wait) expired.
	KindTimeout
	// KindCannotJoin means initialisation could not resolve both a
	// voice-server-update and a voice-state-update within the deadline.
	KindCannotJoin
	// KindDisconnected means the voice state observed no channel_id.
	KindDisconnected
)

// Error is the top-level error type returned by the voice transport and
// playback engine. Exactly one of the wrapped fields is meaningful,
// selected by Kind.
type Error struct {
	Kind  Kind
	WS    *WSError
	RTP   *RTPError
	Audio error
	cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindWS:
		return "voice: websocket: " + e.WS.Error()
	case KindRTP:
		return "voice: rtp: " + e.RTP.Error()
	case KindAudio:
		return "voice: audio: " + e.Audio.Error()
	case KindGatewayClosed:
		return "voice: main gateway channel closed"
	case KindTimeout:
		return "voice: operation timed out"
	case KindCannotJoin:
		return "voice: could not join voice channel"
	case KindDisconnected:
		return "voice: disconnected"
	default:
		return "voice: unknown error"
	}
}

func (e *Error) Unwrap() error {
	return e.cause
}

// WrapWS wraps a WSError into the top-level Error.
func WrapWS(err *WSError) *Error { return &Error{Kind: KindWS, WS: err, cause: err} }

// WrapRTP wraps an RTPError into the top-level Error.
func WrapRTP(err *RTPError) *Error { return &Error{Kind: KindRTP, RTP: err, cause: err} }

// WrapAudio wraps an audio source error into the top-level Error.
func WrapAudio(err error) *Error { return &Error{Kind: KindAudio, Audio: err, cause: err} }

// GatewayClosed is the sentinel top-level Error for a closed main gateway channel.
func GatewayClosed() *Error { return &Error{Kind: KindGatewayClosed} }

// Timeout is the sentinel top-level Error for an expired deadline.
func Timeout() *Error { return &Error{Kind: KindTimeout} }

// CannotJoin is the sentinel top-level Error for a failed join.
func CannotJoin() *Error { return &Error{Kind: KindCannotJoin} }

// Disconnected is the sentinel top-level Error for an observed channel_id == nil.
func Disconnected() *Error { return &Error{Kind: KindDisconnected} }

// Code identifies a voice gateway close code (the 40xx range).
type Code int

const (
	CodeUnknownOpcode        Code = 4001
	CodeBadPayload           Code = 4002
	CodeNotAuthenticated     Code = 4003
	CodeAuthenticationFailed Code = 4004
	CodeAlreadyAuthenticated Code = 4005
	CodeInvalidSession       Code = 4006
	CodeSessionTimeout       Code = 4009
	CodeServerNotFound       Code = 4011
	CodeUnknownProtocol      Code = 4012
	CodeDisconnected         Code = 4014
	CodeVoiceServerCrashed   Code = 4015
	CodeUnknownEncryption    Code = 4016
)

var codeNames = map[Code]string{
	CodeUnknownOpcode:        "unknown opcode",
	CodeBadPayload:           "bad payload",
	CodeNotAuthenticated:     "not authenticated",
	CodeAuthenticationFailed: "authentication failed",
	CodeAlreadyAuthenticated: "already authenticated",
	CodeInvalidSession:       "invalid session",
	CodeSessionTimeout:       "session timeout",
	CodeServerNotFound:       "server not found",
	CodeUnknownProtocol:      "unknown protocol",
	CodeDisconnected:         "disconnected",
	CodeVoiceServerCrashed:   "voice server crashed",
	CodeUnknownEncryption:    "unknown encryption",
}

func (c Code) String() string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	return fmt.Sprintf("unknown code %d", int(c))
}

// CodeFromCloseCode converts a raw websocket close code into a known Code.
func CodeFromCloseCode(raw int) (Code, bool) {
	c := Code(raw)
	_, ok := codeNames[c]
	return c, ok
}

// ApiError is returned when the voice gateway closes the websocket with a
// known close code.
type ApiError struct {
	Code    Code
	Message string
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("voice gateway closed (%d %s): %s", int(e.Code), e.Code, e.Message)
}

// ProtocolKind distinguishes the kinds of ProtocolError.
type ProtocolKind uint8

const (
	ProtocolDeser ProtocolKind = iota
	ProtocolSer
	ProtocolUnsupportedEncryptionMode
	ProtocolMissingOpcode
)

// ProtocolError is always recoverable at the connection layer: it is logged
// and dropped, never surfaced as a fatal error.
type ProtocolError struct {
	Kind  ProtocolKind
	Mode  string // populated only for ProtocolUnsupportedEncryptionMode
	cause error
}

func (e *ProtocolError) Error() string {
	switch e.Kind {
	case ProtocolDeser:
		return "voice protocol: deserialize: " + e.cause.Error()
	case ProtocolSer:
		return "voice protocol: serialize: " + e.cause.Error()
	case ProtocolUnsupportedEncryptionMode:
		return "voice protocol: unsupported encryption mode: " + e.Mode
	case ProtocolMissingOpcode:
		return "voice protocol: missing opcode"
	default:
		return "voice protocol: unknown error"
	}
}

func (e *ProtocolError) Unwrap() error { return e.cause }

func NewDeserError(cause error) *ProtocolError {
	return &ProtocolError{Kind: ProtocolDeser, cause: cause}
}

func NewSerError(cause error) *ProtocolError {
	return &ProtocolError{Kind: ProtocolSer, cause: cause}
}

func NewUnsupportedEncryptionModeError(mode string) *ProtocolError {
	return &ProtocolError{Kind: ProtocolUnsupportedEncryptionMode, Mode: mode}
}

func NewMissingOpcodeError() *ProtocolError {
	return &ProtocolError{Kind: ProtocolMissingOpcode}
}

// WSKind distinguishes the kinds of WSError.
type WSKind uint8

const (
	WSKindAPI WSKind = iota
	WSKindClosed
	WSKindProtocol
	WSKindTransport
	WSKindIO
	WSKindIPDiscovery
)

// WSError is the error type returned by the voice gateway websocket layer
// (Connection.Recv/Send/connect). It mirrors the Rust original's
// voice::ws::Error one-to-one.
type WSError struct {
	Kind Kind2

	API      *ApiError
	Protocol *ProtocolError
	// ResetWithoutClose marks a transport error observed as a TCP reset
	// without a close handshake, which is resumable.
	ResetWithoutClose bool
	cause             error
}

// Kind2 avoids colliding with the package-level Kind type while keeping the
// same naming convention as WSKind.
type Kind2 = WSKind

func (e *WSError) Error() string {
	switch e.Kind {
	case WSKindAPI:
		return e.API.Error()
	case WSKindClosed:
		return "voice gateway: connection closed"
	case WSKindProtocol:
		return e.Protocol.Error()
	case WSKindTransport:
		return "voice gateway: transport error: " + e.cause.Error()
	case WSKindIO:
		return "voice gateway: io error: " + e.cause.Error()
	case WSKindIPDiscovery:
		return "voice gateway: ip discovery: " + e.cause.Error()
	default:
		return "voice gateway: unknown error"
	}
}

func (e *WSError) Unwrap() error { return e.cause }

func NewAPIError(err *ApiError) *WSError { return &WSError{Kind: WSKindAPI, API: err, cause: err} }

func NewClosedError() *WSError { return &WSError{Kind: WSKindClosed} }

func NewWSProtocolError(err *ProtocolError) *WSError {
	return &WSError{Kind: WSKindProtocol, Protocol: err, cause: err}
}

func NewTransportError(cause error, resetWithoutClose bool) *WSError {
	return &WSError{Kind: WSKindTransport, cause: cause, ResetWithoutClose: resetWithoutClose}
}

func NewWSIOError(cause error) *WSError { return &WSError{Kind: WSKindIO, cause: cause} }

func NewIPDiscoveryError(cause error) *WSError {
	return &WSError{Kind: WSKindIPDiscovery, cause: cause}
}

// Disconnected reports whether this error is the semantic "forced
// disconnect" (close code 4014), which should trigger wait_for_gateway.
func (e *WSError) Disconnected() bool {
	return e.Kind == WSKindAPI && e.API.Code == CodeDisconnected
}

// CanResume reports whether this error is resumable: either a 4015
// "voice server crashed" API close, or a transport reset without a close
// handshake.
func (e *WSError) CanResume() bool {
	if e.Kind == WSKindAPI && e.API.Code == CodeVoiceServerCrashed {
		return true
	}
	if e.Kind == WSKindTransport && e.ResetWithoutClose {
		return true
	}
	return false
}

// RTPKind distinguishes the kinds of RTPError.
type RTPKind uint8

const (
	RTPKindIO RTPKind = iota
	RTPKindEncrypt
)

// RTPError is returned by the RTP socket/encryptor.
type RTPError struct {
	Kind  RTPKind
	cause error
}

func (e *RTPError) Error() string {
	switch e.Kind {
	case RTPKindIO:
		return "rtp: io: " + e.cause.Error()
	case RTPKindEncrypt:
		return "rtp: encrypt: " + e.cause.Error()
	default:
		return "rtp: unknown error"
	}
}

func (e *RTPError) Unwrap() error { return e.cause }

func NewRTPIOError(cause error) *RTPError     { return &RTPError{Kind: RTPKindIO, cause: cause} }
func NewRTPEncryptError(cause error) *RTPError { return &RTPError{Kind: RTPKindEncrypt, cause: cause} }

// IPDiscoveryErrorKind distinguishes the kinds of failure during IP discovery.
type IPDiscoveryErrorKind uint8

const (
	IPDiscoveryInvalidHeader IPDiscoveryErrorKind = iota
	IPDiscoveryInvalidSSRC
	IPDiscoveryInvalidAddrUTF8
	IPDiscoveryInvalidAddr
	IPDiscoveryInvalidSize
	IPDiscoveryIO
)

// IPDiscoveryError is returned by the IP discovery mini-protocol exchange.
type IPDiscoveryError struct {
	Kind        IPDiscoveryErrorKind
	WantSSRC    uint32
	GotSSRC     uint32
	cause       error
}

func (e *IPDiscoveryError) Error() string {
	switch e.Kind {
	case IPDiscoveryInvalidHeader:
		return "ip discovery: invalid response header"
	case IPDiscoveryInvalidSSRC:
		return fmt.Sprintf("ip discovery: ssrc mismatch: want %d got %d", e.WantSSRC, e.GotSSRC)
	case IPDiscoveryInvalidAddrUTF8:
		return "ip discovery: address is not valid utf8"
	case IPDiscoveryInvalidAddr:
		return "ip discovery: address could not be parsed"
	case IPDiscoveryInvalidSize:
		return "ip discovery: response has an unexpected size"
	case IPDiscoveryIO:
		return "ip discovery: io: " + e.cause.Error()
	default:
		return "ip discovery: unknown error"
	}
}

func (e *IPDiscoveryError) Unwrap() error { return e.cause }

func NewIPDiscoveryInvalidHeader() *IPDiscoveryError {
	return &IPDiscoveryError{Kind: IPDiscoveryInvalidHeader}
}

func NewIPDiscoveryInvalidSSRC(want, got uint32) *IPDiscoveryError {
	return &IPDiscoveryError{Kind: IPDiscoveryInvalidSSRC, WantSSRC: want, GotSSRC: got}
}

func NewIPDiscoveryInvalidSize() *IPDiscoveryError {
	return &IPDiscoveryError{Kind: IPDiscoveryInvalidSize}
}

func NewIPDiscoveryInvalidAddr() *IPDiscoveryError {
	return &IPDiscoveryError{Kind: IPDiscoveryInvalidAddr}
}

func NewIPDiscoveryIOError(cause error) *IPDiscoveryError {
	return &IPDiscoveryError{Kind: IPDiscoveryIO, cause: errors.WithStack(cause)}
}
