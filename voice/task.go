package voice

import (
	"time"

	"github.com/diamondburned/voicelink/discord"
	"github.com/diamondburned/voicelink/gateway"
	"github.com/diamondburned/voicelink/voice/rtp"
	"github.com/diamondburned/voicelink/voice/streamer"
	"github.com/diamondburned/voicelink/voice/voicegateway"
	"github.com/diamondburned/voicelink/voice/voiceerr"
)

// wsResult is one delivery from the voice gateway forwarder goroutine.
// epoch ties it to the Connection it came from, so a result that arrives
// after a reconnect has already replaced that Connection is discarded
// rather than acted on.
type wsResult struct {
	epoch uint64
	event *voicegateway.Event
	err   error
}

// streamResult is one delivery from the streamer forwarder goroutine. Like
// wsResult, epoch ties it to the rtp.Socket it was produced against.
type streamResult struct {
	epoch  uint64
	status *streamer.Status
	err    error
}

// playerTask owns everything about a live voice connection that isn't
// safe to touch from more than one goroutine: the gateway Connection, the
// RTP socket, and the Streamer driving it. It runs entirely on the
// goroutine NewPlayer spawns and only ever talks back to the Player
// through p.done and the eventTx channel.
type playerTask struct {
	p       *Player
	eventTx chan<- Event

	conn     *voicegateway.Connection
	socket   *rtp.Socket
	streamer *streamer.Streamer

	channelID discord.Snowflake

	wsEpoch uint64
	wsCh    chan wsResult

	streamEpoch uint64
	streamCh    chan streamResult
	streamDone  chan struct{}
}

// runTask is the Player's background goroutine: it initializes the voice
// connection, then drives it until a fatal error or an explicit Close,
// reporting state changes on eventTx throughout.
func runTask(p *Player, eventTx chan<- Event) {
	defer close(p.done)

	t := &playerTask{
		p:        p,
		eventTx:  eventTx,
		streamer: streamer.New(),
		wsCh:     make(chan wsResult, 1),
		streamCh: make(chan streamResult, 1),
	}

	if err := t.init(); err != nil {
		t.cleanup()
		t.emit(Event{GuildID: p.state.guildID, Kind: Errored, Err: err})
		return
	}

	p.state.ready.Store(true)
	t.emit(Event{GuildID: p.state.guildID, Kind: Ready})

	err := t.runLoop()
	t.cleanup()
	if err != nil {
		t.emit(Event{GuildID: p.state.guildID, Kind: Errored, Err: err})
	}
}

func (t *playerTask) emit(ev Event) {
	t.eventTx <- ev
}

// init waits up to HandshakeTimeout for both a VoiceStateUpdate matching
// this player's user and a VoiceServerUpdate, then performs the gateway
// handshake, within the same overall deadline.
func (t *playerTask) init() error {
	deadline := time.Now().Add(voicegateway.HandshakeTimeout)

	var stateUpdate *gateway.VoiceStateUpdateEvent
	var serverUpdate *gateway.VoiceServerUpdateEvent

	for stateUpdate == nil || serverUpdate == nil {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return voiceerr.CannotJoin()
		}

		select {
		case ev := <-t.p.gatewayTx:
			if ev.stateUpdate != nil && ev.stateUpdate.UserID == t.p.state.userID {
				stateUpdate = ev.stateUpdate
			}
			if ev.serverUpdate != nil {
				serverUpdate = ev.serverUpdate
			}
		case <-t.p.stop:
			return voiceerr.CannotJoin()
		case <-time.After(remaining):
			return voiceerr.CannotJoin()
		}
	}

	t.applyVoiceState(stateUpdate)

	session := voicegateway.Session{
		Endpoint:  serverUpdate.Endpoint,
		GuildID:   t.p.state.guildID,
		UserID:    t.p.state.userID,
		SessionID: stateUpdate.SessionID,
		Token:     serverUpdate.Token,
	}

	if err := t.connect(session, time.Until(deadline)); err != nil {
		return err
	}

	t.startWS()
	t.startStream()
	return nil
}

// connect runs the gateway handshake in the background so it can be raced
// against timeout, builds the Encryptor from the negotiated mode and
// secret key, and installs the resulting Connection and Socket as the
// task's current ones. It does not touch any previously installed
// Connection/Socket; callers that are replacing a live connection are
// responsible for tearing the old ones down.
func (t *playerTask) connect(session voicegateway.Session, timeout time.Duration) error {
	type result struct {
		conn *voicegateway.Connection
		hs   *voicegateway.HandshakeResult
		err  error
	}

	ch := make(chan result, 1)
	go func() {
		conn, hs, err := voicegateway.Connect(session, nil)
		ch <- result{conn, hs, err}
	}()

	select {
	case r := <-ch:
		if r.err != nil {
			return r.err
		}

		encryptor, err := rtp.NewEncryptor(r.hs.Mode, r.hs.SecretKey)
		if err != nil {
			r.conn.Disconnect()
			r.hs.UDPConn.Close()
			if rtpErr, ok := err.(*voiceerr.RTPError); ok {
				return voiceerr.WrapRTP(rtpErr)
			}
			return err
		}

		t.conn = r.conn
		t.socket = rtp.NewSocket(r.hs.UDPConn, r.hs.SSRC, encryptor)
		return nil
	case <-time.After(timeout):
		return voiceerr.Timeout()
	}
}

// startWS spawns the forwarder goroutine for the current Connection. The
// forwarder loops on Recv itself (each Recv call only returns one surfaced
// event, or nil/nil after servicing a heartbeat tick), forwarding every
// non-empty result and exiting once Recv returns a fatal error.
func (t *playerTask) startWS() {
	t.wsEpoch++
	epoch := t.wsEpoch
	conn := t.conn

	go func() {
		for {
			ev, err := conn.Recv()
			if err == nil && ev == nil {
				continue
			}
			t.wsCh <- wsResult{epoch: epoch, event: ev, err: err}
			if err != nil {
				return
			}
		}
	}()
}

// startStream spawns a single-shot forwarder for the current Streamer and
// Socket: Stream returns after exactly one Started/Stopped transition (or
// a fatal error), so the main loop re-arms it every time it consumes a
// result. streamDone is closed when this goroutine returns, letting a
// socket swap wait for it to exit before starting the next one — Streamer
// is not safe for two concurrent Stream calls.
func (t *playerTask) startStream() {
	t.streamEpoch++
	epoch := t.streamEpoch
	done := make(chan struct{})
	t.streamDone = done

	s := t.streamer
	socket := t.socket

	go func() {
		defer close(done)
		status, err := s.Stream(socket)
		t.streamCh <- streamResult{epoch: epoch, status: status, err: err}
	}()
}

// stopStream closes oldSocket, unblocking any Stream call still pending
// against it, and waits for that forwarder goroutine to actually return.
func (t *playerTask) stopStream(oldSocket *rtp.Socket) {
	if oldSocket != nil {
		oldSocket.Close()
	}
	if t.streamDone != nil {
		<-t.streamDone
	}
}

// runLoop is the task's steady-state main loop. Ordering matters: the
// voice gateway takes priority over the main gateway, which takes
// priority over commands, which take priority over streaming, mirroring a
// biased select — every source is still serviced, but a burst on one
// channel can't starve the others out of order.
func (t *playerTask) runLoop() error {
	for {
		select {
		case <-t.p.stop:
			return nil
		default:
		}

		select {
		case r := <-t.wsCh:
			if err := t.handleWS(r); err != nil {
				return err
			}
			continue
		default:
		}

		select {
		case ev := <-t.p.gatewayTx:
			if err := t.handleGateway(ev); err != nil {
				return err
			}
			continue
		default:
		}

		select {
		case cmd := <-t.p.commandTx:
			t.handleCommand(cmd)
			continue
		default:
		}

		select {
		case <-t.p.stop:
			return nil
		case r := <-t.wsCh:
			if err := t.handleWS(r); err != nil {
				return err
			}
		case ev := <-t.p.gatewayTx:
			if err := t.handleGateway(ev); err != nil {
				return err
			}
		case cmd := <-t.p.commandTx:
			t.handleCommand(cmd)
		case r := <-t.streamCh:
			if err := t.handleStream(r); err != nil {
				return err
			}
		}
	}
}

func (t *playerTask) handleWS(r wsResult) error {
	if r.epoch != t.wsEpoch {
		return nil
	}
	if r.err == nil {
		// Speaking/ClientConnect/ClientDisconnect notifications carry no
		// action for a playback-only connection.
		return nil
	}

	disconnected, resumable := classifyGatewayErr(r.err)
	switch {
	case disconnected:
		return t.waitForGateway()
	case resumable:
		return t.reconnect()
	default:
		return r.err
	}
}

func (t *playerTask) handleGateway(ev gatewayEvent) error {
	if ev.serverUpdate != nil {
		deadline := time.Now().Add(voicegateway.HandshakeTimeout)
		return t.voiceServerUpdate(ev.serverUpdate, deadline)
	}
	if ev.stateUpdate != nil {
		t.applyVoiceState(ev.stateUpdate)
		if !t.channelID.Valid() {
			return voiceerr.Disconnected()
		}
	}
	return nil
}

func (t *playerTask) handleCommand(cmd Command) {
	switch cmd.kind {
	case cmdPlay:
		t.closeSource()
		t.streamer.SetSource(cmd.source)
	case cmdStop:
		t.closeSource()
	case cmdPause, cmdResume:
		// Reserved: intentionally inert.
	}
}

func (t *playerTask) handleStream(r streamResult) error {
	if r.epoch != t.streamEpoch {
		return nil
	}
	if r.err != nil {
		return r.err
	}

	if r.status.Started {
		if err := t.sendSpeaking(true); err != nil {
			return err
		}
		t.setPlaying(true)
	} else {
		if err := t.sendSpeaking(false); err != nil {
			return err
		}
		if !t.streamer.HasSource() {
			t.setPlaying(false)
		}
	}

	t.startStream()
	return nil
}

// waitForGateway is entered once the voice gateway reports a forced
// disconnect (close code 4014): Discord expects the client to wait for a
// fresh VoiceServerUpdate before reconnecting, rather than reconnect
// immediately.
func (t *playerTask) waitForGateway() error {
	return t.waitForReconnectSignal()
}

// reconnect is entered once a resumable voice-gateway error has already
// escaped Connection.Recv's own inline resume attempt (i.e. the resume
// itself failed). Like waitForGateway, it waits for the main gateway to
// hand back a fresh VoiceServerUpdate rather than retrying blindly.
func (t *playerTask) reconnect() error {
	if !t.channelID.Valid() {
		return voiceerr.Disconnected()
	}
	return t.waitForReconnectSignal()
}

func (t *playerTask) waitForReconnectSignal() error {
	if !t.channelID.Valid() {
		return voiceerr.Disconnected()
	}

	deadline := time.Now().Add(voicegateway.HandshakeTimeout)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return voiceerr.Timeout()
		}

		select {
		case ev := <-t.p.gatewayTx:
			if ev.serverUpdate != nil {
				return t.voiceServerUpdate(ev.serverUpdate, deadline)
			}
			if ev.stateUpdate != nil {
				t.applyVoiceState(ev.stateUpdate)
				if !t.channelID.Valid() {
					return voiceerr.Disconnected()
				}
			}
		case <-t.p.stop:
			return nil
		case <-time.After(remaining):
			return voiceerr.Timeout()
		}
	}
}

// voiceServerUpdate rebuilds the session from a fresh VoiceServerUpdate
// and the prior session's guild/session IDs, reconnects the gateway and
// RTP transport, and re-announces speaking state if a source was playing
// across the migration — Discord requires Speaking to be resent after a
// voice-server change.
func (t *playerTask) voiceServerUpdate(ev *gateway.VoiceServerUpdateEvent, deadline time.Time) error {
	prev := t.conn.Session()
	session := voicegateway.Session{
		Endpoint:  ev.Endpoint,
		GuildID:   prev.GuildID,
		UserID:    t.p.state.userID,
		SessionID: prev.SessionID,
		Token:     ev.Token,
	}

	oldSocket := t.socket
	wasStreaming := t.streamer.IsStreaming()

	if err := t.connect(session, time.Until(deadline)); err != nil {
		return err
	}

	t.stopStream(oldSocket)
	t.startWS()
	t.startStream()

	if wasStreaming {
		if err := t.sendSpeaking(true); err != nil {
			return err
		}
	}
	return nil
}

func (t *playerTask) sendSpeaking(speaking bool) error {
	var flag voicegateway.SpeakingFlag
	if speaking {
		flag = voicegateway.Microphone
	}
	delay := uint32(0)
	return t.conn.Send(voicegateway.SpeakingOP, voicegateway.SpeakingData{
		Speaking: flag,
		Delay:    &delay,
		SSRC:     t.socket.SSRC(),
	})
}

// setPlaying updates the player's public Playing() flag and emits a
// Playing/Stopped event, but only on an actual transition — runLoop is the
// only goroutine that ever calls this, so a plain load-then-store is
// race-free.
func (t *playerTask) setPlaying(playing bool) {
	if t.p.state.playing.Load() == playing {
		return
	}
	t.p.state.playing.Store(playing)

	kind := Stopped
	if playing {
		kind = Playing
	}
	t.emit(Event{GuildID: t.p.state.guildID, Kind: kind})
}

func (t *playerTask) closeSource() {
	if src := t.streamer.TakeSource(); src != nil {
		src.Close()
	}
}

func (t *playerTask) applyVoiceState(ev *gateway.VoiceStateUpdateEvent) {
	t.channelID = ev.ChannelID
	t.p.state.mu.Lock()
	t.p.state.voiceState = discord.VoiceState(*ev)
	t.p.state.mu.Unlock()
}

func (t *playerTask) cleanup() {
	t.closeSource()
	if t.conn != nil {
		t.conn.Disconnect()
	}
	if t.socket != nil {
		t.socket.Close()
	}
}

// classifyGatewayErr inspects an error returned by Connection.Recv,
// extracting the underlying WSError's classifiers. An error not
// originating from the voice gateway's WS layer classifies as neither.
func classifyGatewayErr(err error) (disconnected, resumable bool) {
	verr, ok := err.(*voiceerr.Error)
	if !ok || verr.WS == nil {
		return false, false
	}
	return verr.WS.Disconnected(), verr.WS.CanResume()
}
