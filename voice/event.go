package voice

import (
	"github.com/diamondburned/voicelink/discord"
	"github.com/diamondburned/voicelink/voice/source"
)

// EventType identifies the kind of state change an Event reports.
type EventType uint8

const (
	// Ready is emitted once the player has finished its initial handshake
	// and is prepared to accept Play commands.
	Ready EventType = iota
	// Playing is emitted when a source starts producing audible output.
	Playing
	// Stopped is emitted when the currently playing source runs out or is
	// replaced/cleared.
	Stopped
	// Errored is emitted once, immediately before the player task exits,
	// whenever it exits due to an unrecoverable error.
	Errored
)

func (t EventType) String() string {
	switch t {
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case Stopped:
		return "stopped"
	case Errored:
		return "errored"
	default:
		return "unknown"
	}
}

// Event is a state change reported by a Player on its event channel.
type Event struct {
	GuildID discord.Snowflake
	Kind    EventType
	// Err is set only when Kind == Errored.
	Err error
}

// commandKind identifies the variant of a Command.
type commandKind uint8

const (
	cmdPlay commandKind = iota
	cmdPause
	cmdResume
	cmdStop
)

// Command is a control message sent to a Player's task. Pause and Resume
// are reserved: they carry no implemented behavior, matching spec
// guidance that these verbs do not currently alter the streamer.
type Command struct {
	kind   commandKind
	source *source.Source
}

// PlayCommand builds a Command that replaces the currently playing source.
func PlayCommand(src *source.Source) Command { return Command{kind: cmdPlay, source: src} }

// PauseCommand builds a reserved, currently-inert Command.
func PauseCommand() Command { return Command{kind: cmdPause} }

// ResumeCommand builds a reserved, currently-inert Command.
func ResumeCommand() Command { return Command{kind: cmdResume} }

// StopCommand builds a Command that clears the currently playing source.
func StopCommand() Command { return Command{kind: cmdStop} }
