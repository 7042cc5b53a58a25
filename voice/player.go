package voice

import (
	"sync"

	"github.com/diamondburned/voicelink/discord"
	"github.com/diamondburned/voicelink/gateway"
	"github.com/diamondburned/voicelink/voice/source"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// ErrPlayerClosed is returned by every Player method once its task has
// exited, whether cleanly or due to an error.
var ErrPlayerClosed = errors.New("voice: player closed")

// playerState is the state shared between a Player handle and its
// playerTask, guarded so either side can read it without racing the
// other.
type playerState struct {
	userID  discord.Snowflake
	guildID discord.Snowflake

	mu         sync.RWMutex
	voiceState discord.VoiceState

	playing atomic.Bool
	ready   atomic.Bool
}

// Player is a handle to a single guild's voice connection. Voice gateway
// and UDP connectivity, along with all audio pacing, are managed by a
// single background task; the Player only ever exchanges messages with
// it. A Player should only ever be driven by gateway events from one
// shard — mixing shards onto the same Player produces undefined behavior.
type Player struct {
	state *playerState

	done     chan struct{}
	stop     chan struct{}
	stopOnce sync.Once

	gatewayTx chan gatewayEvent
	commandTx chan Command
}

// gatewayEvent wraps the two external gateway events a Player needs to
// complete and maintain its voice connection.
type gatewayEvent struct {
	stateUpdate  *gateway.VoiceStateUpdateEvent
	serverUpdate *gateway.VoiceServerUpdateEvent
}

// NewPlayer starts a new Player for the given guild and user, emitting
// Events onto eventTx as its task progresses. The task begins
// initialization immediately in the background; it requires a
// VoiceStateUpdate and VoiceServerUpdate (forwarded via VoiceStateUpdate
// and VoiceServerUpdate) within 5 seconds or it fails with a CannotJoin
// error, reported as an Errored event.
func NewPlayer(userID, guildID discord.Snowflake, eventTx chan<- Event) *Player {
	state := &playerState{
		userID:  userID,
		guildID: guildID,
		voiceState: discord.VoiceState{
			GuildID: guildID,
			UserID:  userID,
		},
	}

	p := &Player{
		state:     state,
		done:      make(chan struct{}),
		stop:      make(chan struct{}),
		gatewayTx: make(chan gatewayEvent, 4),
		commandTx: make(chan Command, 8),
	}

	go runTask(p, eventTx)

	return p
}

// IsClosed reports whether the player's task has exited.
func (p *Player) IsClosed() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Close asks the player's task to disconnect and waits for it to exit. It
// is idempotent and safe to call more than once or concurrently with other
// methods.
func (p *Player) Close() error {
	p.stopOnce.Do(func() { close(p.stop) })
	<-p.done
	return nil
}

// GuildID returns the guild this player serves.
func (p *Player) GuildID() discord.Snowflake { return p.state.guildID }

// Playing reports whether a source is currently producing audible output.
func (p *Player) Playing() bool { return p.state.playing.Load() }

// VoiceState returns a copy of the last known voice state for this
// player's user in this guild.
func (p *Player) VoiceState() (discord.VoiceState, error) {
	if p.IsClosed() {
		return discord.VoiceState{}, ErrPlayerClosed
	}
	p.state.mu.RLock()
	defer p.state.mu.RUnlock()
	return p.state.voiceState, nil
}

// Play replaces the currently playing source with src, closing any
// previous source first.
func (p *Player) Play(src *source.Source) error {
	return p.sendCommand(PlayCommand(src))
}

// Pause is a reserved, currently inert command: it does not alter
// playback. Kept for API symmetry with Resume/Stop.
func (p *Player) Pause() error { return p.sendCommand(PauseCommand()) }

// Resume is a reserved, currently inert command: it does not alter
// playback. Kept for API symmetry with Pause/Stop.
func (p *Player) Resume() error { return p.sendCommand(ResumeCommand()) }

// Stop clears the currently playing source, if any.
func (p *Player) Stop() error { return p.sendCommand(StopCommand()) }

func (p *Player) sendCommand(cmd Command) error {
	select {
	case p.commandTx <- cmd:
		return nil
	case <-p.done:
		return ErrPlayerClosed
	}
}

// VoiceStateUpdate forwards a VOICE_STATE_UPDATE gateway event to this
// player's task. Callers typically shouldn't call this directly; a Voice
// manager routes events here automatically.
func (p *Player) VoiceStateUpdate(ev *gateway.VoiceStateUpdateEvent) error {
	return p.sendGatewayEvent(gatewayEvent{stateUpdate: ev})
}

// VoiceServerUpdate forwards a VOICE_SERVER_UPDATE gateway event to this
// player's task. Callers typically shouldn't call this directly; a Voice
// manager routes events here automatically.
func (p *Player) VoiceServerUpdate(ev *gateway.VoiceServerUpdateEvent) error {
	return p.sendGatewayEvent(gatewayEvent{serverUpdate: ev})
}

func (p *Player) sendGatewayEvent(ev gatewayEvent) error {
	select {
	case p.gatewayTx <- ev:
		return nil
	case <-p.done:
		return ErrPlayerClosed
	}
}
