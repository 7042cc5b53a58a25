package voicegateway

import (
	"os"

	"github.com/k0kubun/pp"
)

// OPCode identifies the variant of a voice gateway payload.
type OPCode int

const (
	IdentifyOP           OPCode = 0
	SelectProtocolOP     OPCode = 1
	ReadyOP              OPCode = 2
	HeartbeatOP          OPCode = 3
	SessionDescriptionOP OPCode = 4
	SpeakingOP           OPCode = 5
	HeartbeatAckOP       OPCode = 6
	ResumeOP             OPCode = 7
	HelloOP              OPCode = 8
	ResumedOP            OPCode = 9
	ClientConnectOP      OPCode = 12
	ClientDisconnectOP   OPCode = 13
)

// WSDebug is a package-level hook for wire-level tracing, matching the
// teacher's own utils/wsutil.WSDebug convention. With VOICE_DEBUG_PRETTY=1
// set, dropped/unexpected payloads are pretty-printed via k0kubun/pp instead
// of being silently swallowed; otherwise it's a no-op, since this path is hit
// on every ignored payload in steady state and shouldn't cost anything by
// default.
var WSDebug = func(v ...interface{}) {
	if os.Getenv("VOICE_DEBUG_PRETTY") != "1" {
		return
	}
	for _, val := range v {
		pp.Println(val)
	}
}
