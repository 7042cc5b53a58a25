package voiceerr

import "testing"

func TestWSErrorDisconnectedOnlyOn4014(t *testing.T) {
	disconnect := NewAPIError(&ApiError{Code: CodeDisconnected})
	if !disconnect.Disconnected() {
		t.Fatal("4014 close should classify as Disconnected")
	}

	crashed := NewAPIError(&ApiError{Code: CodeVoiceServerCrashed})
	if crashed.Disconnected() {
		t.Fatal("4015 close should not classify as Disconnected")
	}
}

func TestWSErrorCanResume(t *testing.T) {
	tests := []struct {
		name string
		err  *WSError
		want bool
	}{
		{"4015 voice server crashed", NewAPIError(&ApiError{Code: CodeVoiceServerCrashed}), true},
		{"4014 disconnected", NewAPIError(&ApiError{Code: CodeDisconnected}), false},
		{"4006 invalid session", NewAPIError(&ApiError{Code: CodeInvalidSession}), false},
		{"transport reset without close", NewTransportError(errSentinel("reset"), true), true},
		{"transport with close handshake", NewTransportError(errSentinel("closed cleanly"), false), false},
		{"io error", NewWSIOError(errSentinel("io")), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.CanResume(); got != tt.want {
				t.Fatalf("CanResume() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeFromCloseCode(t *testing.T) {
	if c, ok := CodeFromCloseCode(4015); !ok || c != CodeVoiceServerCrashed {
		t.Fatalf("CodeFromCloseCode(4015) = %v, %v, want CodeVoiceServerCrashed, true", c, ok)
	}
	if _, ok := CodeFromCloseCode(4999); ok {
		t.Fatal("CodeFromCloseCode(4999) should be unknown")
	}
}

func TestSentinelErrorsWrapIntoTopLevelError(t *testing.T) {
	wsErr := NewAPIError(&ApiError{Code: CodeAuthenticationFailed, Message: "bad token"})
	top := WrapWS(wsErr)

	if top.Kind != KindWS {
		t.Fatalf("Kind = %v, want KindWS", top.Kind)
	}
	if top.Unwrap() != wsErr {
		t.Fatal("Unwrap() should return the wrapped WSError")
	}
}

type errSentinel string

func (e errSentinel) Error() string { return string(e) }
