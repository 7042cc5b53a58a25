// Package streamer implements the real-time packet streamer: it bridges a
// bursty Opus frame producer to the isochronous 20ms cadence the RTP socket
// must maintain, synthesising silence across stream breaks and reporting
// clean Started/Stopped transitions.
package streamer

import (
	"sync"
	"time"

	"github.com/diamondburned/voicelink/voice/rtp"
)

// TimestepLength is the wire frame period: one Opus frame per packet, sent
// every 20ms.
const TimestepLength = 20 * time.Millisecond

// SilenceFrameCount is how many silence frames are emitted on every
// transition that breaks or resumes a stream. This is protocol-visible
// (receivers rely on it to flush interpolation state) and is kept as a
// named constant rather than inlined so a future change stays a one-line
// diff.
const SilenceFrameCount = 5

// DefaultPatience is the grace period beyond a scheduled packet deadline
// during which a source is allowed to stall before silence is synthesised.
const DefaultPatience = 200 * time.Millisecond

// SilenceFrame is the canonical Opus silence frame sent during stream
// breaks: the standard 3-byte Opus "silence" encoding used by every
// Discord voice client.
var SilenceFrame = []byte{0xF8, 0xFF, 0xFE}

const maxOpusFrame = 1276 // Opus's own maximum packet size at any bitrate.

// Source is the opaque producer contract a Streamer pulls from: Read
// returns 0 on end-of-stream; Close tears down owned resources and must be
// idempotent.
type Source interface {
	Read(buf []byte) (int, error)
	Close() error
}

// Status reports a streaming state transition. Exactly one of SSRC's two
// meanings applies depending on Started.
type Status struct {
	Started bool
	SSRC    uint32
}

// Streamer paces Opus frames from an installable Source to an rtp.Socket at
// exactly 20ms intervals. Stream is meant to be run on its own goroutine
// (it blocks for potentially unbounded periods while idle or waiting on
// patience); SetSource/TakeSource/HasSource/IsStreaming are safe to call
// concurrently from another goroutine, matching the supervisor's single
// control-plane-goroutine / single-streaming-goroutine split.
type Streamer struct {
	mu sync.Mutex

	patience time.Duration

	source Source

	waitingForSource bool
	stopOwed         bool
	silenceFrames    uint32

	// sourceAvail is closed (and replaced) every time source transitions
	// from nil to non-nil, waking any goroutine parked waiting for one.
	sourceAvail chan struct{}

	// pendingFor/pending track a single in-flight patience-bounded read so
	// that a timeout never abandons (and thus never races against) the
	// underlying source's Read call.
	pendingFor Source
	pending    chan readResult

	ready              bool
	packet             [maxOpusFrame]byte
	packetLen          int
	nextPacketDeadline time.Time
}

type readResult struct {
	n   int
	buf [maxOpusFrame]byte
	err error
}

// New builds a Streamer with the default patience and no source installed.
func New() *Streamer {
	return &Streamer{
		patience:           DefaultPatience,
		waitingForSource:   true,
		sourceAvail:        make(chan struct{}),
		nextPacketDeadline: time.Now(),
	}
}

// SetPatience overrides the default patience.
func (s *Streamer) SetPatience(d time.Duration) {
	s.mu.Lock()
	s.patience = d
	s.mu.Unlock()
}

// HasSource reports whether a source is currently installed.
func (s *Streamer) HasSource() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source != nil
}

// IsStreaming reports whether the streamer is actively producing audio, as
// opposed to idle or mid-transition (which implies silence padding).
func (s *Streamer) IsStreaming() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.waitingForSource
}

// waitForSource transitions the streamer into the waiting (no audio
// flowing) state, owing a SilenceFrameCount burst and a trailing Stopped,
// unless it is already waiting. Callers must hold s.mu. Idempotent:
// SetSource and TakeSource both call it unconditionally, so calling both in
// sequence — as voice/task.go's cmdPlay handling does (closeSource, which
// calls TakeSource, immediately followed by SetSource) — only ever adds one
// burst for the one genuine transition, not one per call.
func (s *Streamer) waitForSource() {
	if !s.waitingForSource {
		s.waitingForSource = true
		s.stopOwed = true
		s.silenceFrames += SilenceFrameCount
	}
}

// SetSource installs a new source. Any previously installed source is NOT
// closed by this call — callers replacing a live source must close the old
// one themselves. See waitForSource for the silence-burst semantics.
func (s *Streamer) SetSource(src Source) {
	s.mu.Lock()
	s.waitForSource()
	s.source = src
	close(s.sourceAvail)
	s.sourceAvail = make(chan struct{})
	s.mu.Unlock()
}

// TakeSource removes the current source, returning it (or nil). The next
// audio yielded is silence, concluding in a Stopped status once the burst
// has played out. See waitForSource for the silence-burst semantics.
func (s *Streamer) TakeSource() Source {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.waitForSource()
	src := s.source
	s.source = nil
	return src
}

// Stream drives the streamer for one iteration, blocking until a status
// change occurs (a Started or Stopped transition) or an error occurs. It
// never returns (nil, nil): every return is either a *Status or an error.
// Stream is cancel-safe: all mutable pacing state lives in the Streamer
// struct, not on the call stack, so aborting and re-invoking Stream never
// duplicates or drops a packet.
func (s *Streamer) Stream(socket *rtp.Socket) (*Status, error) {
	for {
		if s.ready {
			sleepUntil(s.nextPacketDeadline)

			if err := socket.Send(s.packet[:s.packetLen]); err != nil {
				return nil, err
			}

			s.packetLen = 0
			s.nextPacketDeadline = s.nextPacketDeadline.Add(TimestepLength)
			s.ready = false
			continue
		}

		status, err := s.produceNext(socket.SSRC())
		if err != nil {
			return nil, err
		}
		if status != nil {
			return status, nil
		}
	}
}

func sleepUntil(t time.Time) {
	if d := time.Until(t); d > 0 {
		time.Sleep(d)
	}
}

// produceNext fills the next packet, returning a Status only on a
// Started/Stopped transition.
func (s *Streamer) produceNext(ssrc uint32) (*Status, error) {
	s.mu.Lock()
	silence := s.silenceFrames > 0
	s.mu.Unlock()

	if silence {
		s.packetLen = copy(s.packet[:], SilenceFrame)
		s.ready = true

		s.mu.Lock()
		s.silenceFrames--
		emitStopped := s.silenceFrames == 0 && s.stopOwed
		if emitStopped {
			s.stopOwed = false
		}
		s.mu.Unlock()

		if emitStopped {
			return &Status{Started: false, SSRC: ssrc}, nil
		}
		return nil, nil
	}

	return s.pullFromSource(ssrc)
}

func (s *Streamer) pullFromSource(ssrc uint32) (*Status, error) {
	s.mu.Lock()
	src := s.source
	waiting := s.waitingForSource
	avail := s.sourceAvail
	s.mu.Unlock()

	if src == nil {
		// Parked: no source, no silence owed. Block until SetSource wakes
		// us, rather than busy-looping or flooding the wire with
		// unbounded silence.
		<-avail
		return nil, nil
	}

	if waiting {
		n, err := src.Read(s.packet[:])
		if err != nil {
			return nil, err
		}
		if n > 0 {
			s.packetLen = n
			s.ready = true
			s.nextPacketDeadline = time.Now().Add(TimestepLength)
			s.mu.Lock()
			s.waitingForSource = false
			s.mu.Unlock()
			return &Status{Started: true, SSRC: ssrc}, nil
		}
		// EOF while already waiting: source is simply empty, stay parked.
		src.Close()
		s.mu.Lock()
		if s.source == src {
			s.source = nil
		}
		s.mu.Unlock()
		return nil, nil
	}

	n, err := s.readWithPatience(src)
	if err != nil {
		return nil, err
	}

	switch {
	case n < 0:
		// Timed out waiting beyond patience: overload, start padding.
		s.mu.Lock()
		s.waitForSource()
		s.mu.Unlock()
		return nil, nil
	case n == 0:
		// EOF: close and drop the source, then pad with trailing silence.
		src.Close()
		s.mu.Lock()
		if s.source == src {
			s.source = nil
		}
		s.waitForSource()
		s.mu.Unlock()
		return nil, nil
	default:
		s.packetLen = n
		s.ready = true
		return nil, nil
	}
}

// readWithPatience reads from src with an overall deadline of
// nextPacketDeadline + patience. It returns n == -1 on timeout.
//
// It never issues more than one concurrent Read against a given source: if
// a prior call timed out, the same background read is reused rather than
// starting a second one, since most io.Reader implementations are not safe
// for concurrent use.
func (s *Streamer) readWithPatience(src Source) (int, error) {
	if s.pending == nil || s.pendingFor != src {
		ch := make(chan readResult, 1)
		go func() {
			var r readResult
			r.n, r.err = src.Read(r.buf[:])
			ch <- r
		}()
		s.pending = ch
		s.pendingFor = src
	}

	s.mu.Lock()
	patience := s.patience
	s.mu.Unlock()

	deadline := s.nextPacketDeadline.Add(patience)
	timer := time.NewTimer(time.Until(deadline))
	defer timer.Stop()

	select {
	case r := <-s.pending:
		s.pending = nil
		s.pendingFor = nil
		if r.err != nil {
			return 0, r.err
		}
		copy(s.packet[:], r.buf[:r.n])
		return r.n, nil
	case <-timer.C:
		return -1, nil
	}
}
