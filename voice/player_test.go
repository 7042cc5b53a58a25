package voice

import (
	"testing"
	"time"

	"github.com/diamondburned/voicelink/discord"
	"github.com/diamondburned/voicelink/voice/voiceerr"
)

func TestNewPlayerTimesOutWithoutGatewayEvents(t *testing.T) {
	events := make(chan Event, 4)
	p := NewPlayer(1, 2, events)

	select {
	case ev := <-events:
		if ev.Kind != Errored {
			t.Fatalf("Kind = %v, want Errored", ev.Kind)
		}
		verr, ok := ev.Err.(*voiceerr.Error)
		if !ok || verr.Kind != voiceerr.KindCannotJoin {
			t.Fatalf("Err = %#v, want a CannotJoin *voiceerr.Error", ev.Err)
		}
	case <-time.After(voiceHandshakeTimeoutMargin):
		t.Fatal("no Errored event within the init deadline")
	}

	if !p.IsClosed() {
		t.Fatal("IsClosed() = false after init failed")
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close() after task exit = %v, want nil", err)
	}
}

func TestPlayerCloseDuringInitUnblocksImmediately(t *testing.T) {
	events := make(chan Event, 4)
	p := NewPlayer(1, 2, events)

	start := time.Now()
	if err := p.Close(); err != nil {
		t.Fatalf("Close() = %v, want nil", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("Close() took %v, want it to unblock the init wait immediately", elapsed)
	}

	select {
	case ev := <-events:
		if ev.Kind != Errored {
			t.Fatalf("Kind = %v, want Errored", ev.Kind)
		}
	default:
		t.Fatal("expected an Errored event to have been emitted before Close returned")
	}
}

func TestPlayerCommandsAfterCloseReturnErrPlayerClosed(t *testing.T) {
	events := make(chan Event, 4)
	p := NewPlayer(1, 2, events)
	p.Close()

	if err := p.Stop(); err != ErrPlayerClosed {
		t.Fatalf("Stop() after Close = %v, want ErrPlayerClosed", err)
	}
	if err := p.Pause(); err != ErrPlayerClosed {
		t.Fatalf("Pause() after Close = %v, want ErrPlayerClosed", err)
	}
	if err := p.Resume(); err != ErrPlayerClosed {
		t.Fatalf("Resume() after Close = %v, want ErrPlayerClosed", err)
	}
	if _, err := p.VoiceState(); err != ErrPlayerClosed {
		t.Fatalf("VoiceState() after Close = %v, want ErrPlayerClosed", err)
	}
}

func TestPlayerVoiceStateReflectsConstructionArgs(t *testing.T) {
	events := make(chan Event, 4)
	p := NewPlayer(discord.Snowflake(11), discord.Snowflake(22), events)
	defer p.Close()

	vs, err := p.VoiceState()
	if err != nil {
		t.Fatalf("VoiceState() = %v", err)
	}
	if vs.GuildID != 22 || vs.UserID != 11 {
		t.Fatalf("VoiceState() = %+v, want GuildID=22 UserID=11", vs)
	}
	if p.GuildID() != 22 {
		t.Fatalf("GuildID() = %v, want 22", p.GuildID())
	}
	if p.Playing() {
		t.Fatal("Playing() = true before any source is ever set")
	}
}

func TestPlayerCloseIsIdempotent(t *testing.T) {
	events := make(chan Event, 4)
	p := NewPlayer(1, 2, events)

	if err := p.Close(); err != nil {
		t.Fatalf("first Close() = %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("second Close() = %v, want nil (idempotent)", err)
	}
}

// voiceHandshakeTimeoutMargin gives the init deadline (voicegateway.HandshakeTimeout,
// 5s) enough headroom for scheduling jitter in CI-like environments.
const voiceHandshakeTimeoutMargin = 6 * time.Second
