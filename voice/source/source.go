// Package source provides audio sources for the voice player: a ytdl
// process piped into ffmpeg, transcoded to raw float32 PCM and encoded to
// Opus in-process.
//
// None of this should do heavy CPU-bound work, since Read runs on the same
// goroutine that paces RTP packets. ffmpeg and the Opus encoder do the
// actual signal processing; this package only shuttles bytes between them.
package source

import (
	"io"
	"math"
	"os"
	"os/exec"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/hraban/opus.v2"
)

const (
	// SampleRate is the raw sample rate of a Discord Opus stream.
	SampleRate = 48000
	// AudioFrameRate is the number of audio frames sent per second.
	AudioFrameRate = 50
	// MonoFrameSize is the number of samples in one frame of audio per channel.
	MonoFrameSize = SampleRate / AudioFrameRate
	// StereoFrameSize is the number of individual samples in one frame of
	// stereo audio.
	StereoFrameSize = 2 * MonoFrameSize
	// bytesPerFloat32 is the width of the raw PCM samples ffmpeg emits.
	bytesPerFloat32 = 4
	// stereoFrameByteSize is the number of bytes in one frame of raw
	// f32-encoded stereo audio.
	stereoFrameByteSize = StereoFrameSize * bytesPerFloat32

	// DefaultBitrate is the Opus encoder bitrate used for all sources.
	DefaultBitrate = 64000
)

// Config controls how external executables are located. The zero value is
// usable: Executable lazily resolves to YTDL_EXECUTABLE, or "youtube-dl" if
// unset, the first time it's called, mirroring the teacher's one-time
// environment resolution idiom elsewhere in this module.
type Config struct {
	// YtdlExecutable overrides the resolved executable name directly,
	// bypassing the environment lookup. Leave empty to use the
	// environment/default resolution.
	YtdlExecutable string

	once     sync.Once
	resolved string
}

// Executable returns the ytdl executable to invoke, resolving it from
// YtdlExecutable, then the YTDL_EXECUTABLE environment variable, then the
// "youtube-dl" default, exactly once.
func (c *Config) Executable() string {
	c.once.Do(func() {
		switch {
		case c.YtdlExecutable != "":
			c.resolved = c.YtdlExecutable
		case os.Getenv("YTDL_EXECUTABLE") != "":
			c.resolved = os.Getenv("YTDL_EXECUTABLE")
		default:
			c.resolved = "youtube-dl"
		}
	})
	return c.resolved
}

// Source is an audio source backed by an ffmpeg transcode, optionally fed
// by an upstream ytdl process. It encodes raw f32le PCM at 48kHz stereo
// into Opus packets on demand.
//
// A Source is not safe for concurrent Read calls, but Close may be called
// concurrently with a blocked Read to interrupt it: killing the
// subprocesses unblocks the pipe read with an error.
type Source struct {
	piped  *exec.Cmd // upstream producer (ytdl), nil if ffmpeg reads directly
	ffmpeg *exec.Cmd
	stdout io.ReadCloser

	encoder *opus.Encoder

	pcm    [StereoFrameSize]float32
	pcmLen int

	closeOnce sync.Once
	closeErr  error
}

// Query spawns a ytdl process for the given query string, piped into
// ffmpeg, and returns a Source streaming its Opus-encoded output.
func Query(cfg *Config, query string) (*Source, error) {
	ytdl := exec.Command(cfg.Executable(),
		"-f", "webm[abr>0]/bestaudio/best",
		"-R", "infinite",
		"-q", query,
		"-o", "-",
	)
	ytdl.Stdin = nil
	ytdl.Stderr = os.Stderr

	stdout, err := ytdl.StdoutPipe()
	if err != nil {
		return nil, errors.Wrap(err, "ytdl stdout pipe")
	}
	if err := ytdl.Start(); err != nil {
		return nil, errors.Wrap(err, "start ytdl")
	}

	src, err := Piped(stdout)
	if err != nil {
		_ = ytdl.Process.Kill()
		return nil, err
	}
	src.piped = ytdl
	return src, nil
}

// Piped builds a Source that transcodes an already-open audio stream (such
// as a ytdl process's stdout) through ffmpeg into Opus.
func Piped(in io.ReadCloser) (*Source, error) {
	ffmpeg := exec.Command("ffmpeg",
		"-i", "pipe:0",
		"-ac", "2",
		"-ar", "48000",
		"-f", "f32le",
		"-acodec", "pcm_f32le",
		"-loglevel", "quiet",
		"pipe:1",
	)
	ffmpeg.Stdin = in
	ffmpeg.Stderr = os.Stderr

	stdout, err := ffmpeg.StdoutPipe()
	if err != nil {
		return nil, errors.Wrap(err, "ffmpeg stdout pipe")
	}
	if err := ffmpeg.Start(); err != nil {
		return nil, errors.Wrap(err, "start ffmpeg")
	}

	encoder, err := opus.NewEncoder(SampleRate, 2, opus.AppAudio)
	if err != nil {
		_ = ffmpeg.Process.Kill()
		return nil, errors.Wrap(err, "new opus encoder")
	}
	if err := encoder.SetBitrate(DefaultBitrate); err != nil {
		_ = ffmpeg.Process.Kill()
		return nil, errors.Wrap(err, "set opus bitrate")
	}

	return &Source{
		ffmpeg:  ffmpeg,
		stdout:  stdout,
		encoder: encoder,
	}, nil
}

// Read fills buf with one Opus-encoded packet, returning 0 when the
// upstream stream has ended cleanly. It blocks on the underlying pipe, so a
// concurrent Close unblocks it with an error rather than a clean EOF.
func (s *Source) Read(buf []byte) (int, error) {
	raw := make([]byte, stereoFrameByteSize)

	for s.pcmLen < StereoFrameSize {
		n, err := io.ReadFull(s.stdout, raw)
		if n > 0 {
			decodeFloat32LE(raw[:n], s.pcm[s.pcmLen:])
			s.pcmLen += n / bytesPerFloat32
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				if s.pcmLen == 0 {
					return 0, nil
				}
				break
			}
			return 0, err
		}
	}

	n, err := s.encoder.EncodeFloat32(s.pcm[:s.pcmLen], buf)
	s.pcmLen = 0
	if err != nil {
		return 0, errors.Wrap(err, "opus encode")
	}
	return n, nil
}

// Close kills the subprocesses owned by this Source. It is idempotent:
// calling it more than once returns the first call's result without
// re-killing already-reaped processes.
func (s *Source) Close() error {
	s.closeOnce.Do(func() {
		if s.piped != nil && s.piped.Process != nil {
			if err := s.piped.Process.Kill(); err != nil && s.closeErr == nil {
				s.closeErr = err
			}
		}
		if s.ffmpeg.Process != nil {
			if err := s.ffmpeg.Process.Kill(); err != nil && s.closeErr == nil {
				s.closeErr = err
			}
		}
		if s.piped != nil {
			s.piped.Wait()
		}
		s.ffmpeg.Wait()
	})
	return s.closeErr
}

func decodeFloat32LE(raw []byte, out []float32) {
	for i := 0; i+4 <= len(raw); i += 4 {
		bits := uint32(raw[i]) | uint32(raw[i+1])<<8 | uint32(raw[i+2])<<16 | uint32(raw[i+3])<<24
		out[i/4] = math.Float32frombits(bits)
	}
}
