package voicegateway

import (
	"time"

	"go.uber.org/atomic"
)

// Heartbeater tracks the periodic keepalive nonce and deadline for a voice
// gateway connection. Unlike RTP pacing, heartbeat scheduling is
// wall-clock-relative and recomputed after every send: drift here is
// harmless, since the deadline is always "interval from now", not "interval
// from the last scheduled instant".
type Heartbeater struct {
	interval time.Duration
	nonce    atomic.Uint64
	next     time.Time
}

// NewHeartbeater builds a Heartbeater from the Hello payload's interval.
func NewHeartbeater(interval time.Duration) *Heartbeater {
	return &Heartbeater{
		interval: interval,
		next:     time.Now().Add(interval),
	}
}

// Next returns the duration remaining until the next heartbeat is due. It
// may be zero or negative if the deadline has already passed.
func (h *Heartbeater) Next() time.Duration {
	return time.Until(h.next)
}

// Beat increments the nonce (before it is sent, so that the eventual
// HeartbeatAck comparison uses the same value) and reschedules the next
// deadline relative to now, returning the nonce to send.
func (h *Heartbeater) Beat() uint64 {
	n := h.nonce.Add(1)
	h.next = time.Now().Add(h.interval)
	return n
}

// Nonce returns the last nonce sent.
func (h *Heartbeater) Nonce() uint64 { return h.nonce.Load() }

// CheckAck compares an acknowledged nonce against the last sent one. A
// mismatch is never fatal — callers should log and continue.
func (h *Heartbeater) CheckAck(acked uint64) (matches bool) {
	return acked == h.nonce.Load()
}
