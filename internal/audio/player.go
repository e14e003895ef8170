package audio

import (
	"fmt"
	"math"
	"os"
	"path"
	"time"

	"github.com/charmbracelet/log"
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
)

// Speaker buffer sized to roughly one frame at 60fps.
const bufferLength = time.Second / 60

// Player streams one song through the speaker. It is the engine's
// playback collaborator and doubles as the session clock: Position
// advances monotonically while playing and freezes while paused.
type Player struct {
	file     string
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	started  bool
}

// Open decodes a song file. Supported formats are wav, mp3, ogg and
// flac; any other extension is refused before decoding starts.
func Open(file string) (*Player, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch ext := path.Ext(file); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("unsupported audio format %q", ext)
	}
	if nil != err {
		f.Close()
		return nil, errors.Wrapf(err, "unable to decode %v", file)
	}

	ctrl := &beep.Ctrl{Streamer: streamer}
	volume := &effects.Volume{Streamer: ctrl, Base: 2}
	return &Player{
		file:     file,
		streamer: streamer,
		format:   format,
		ctrl:     ctrl,
		volume:   volume,
	}, nil
}

// Start brings up the speaker at the song's sample rate and begins
// playback.
func (p *Player) Start() error {
	if p.started {
		return nil
	}
	if err := speaker.Init(p.format.SampleRate, p.format.SampleRate.N(bufferLength)); nil != err {
		return fmt.Errorf("unable to init speaker: %w", err)
	}
	speaker.Play(p.volume)
	p.started = true
	log.Debug("playback started", "file", p.file, "sampleRate", p.format.SampleRate)
	return nil
}

func (p *Player) Stop() {
	if !p.started {
		return
	}
	speaker.Clear()
	p.started = false
}

// Pause freezes playback and with it the position clock.
func (p *Player) Pause() {
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
}

func (p *Player) Resume() {
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
}

// gain converts a 0..1 volume level to a log2 adjustment for the
// speaker. Levels at or below zero mute, levels above one clamp.
func gain(level float64) (volume float64, silent bool) {
	if level <= 0 {
		return 0, true
	}
	if level > 1 {
		level = 1
	}
	return math.Log2(level), false
}

func (p *Player) SetVolume(level float64) {
	speaker.Lock()
	p.volume.Volume, p.volume.Silent = gain(level)
	speaker.Unlock()
}

// Position is the playback position in milliseconds.
func (p *Player) Position() float64 {
	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()
	return float64(p.format.SampleRate.D(pos)) / float64(time.Millisecond)
}

// Duration is the full length of the song in milliseconds.
func (p *Player) Duration() float64 {
	return float64(p.format.SampleRate.D(p.streamer.Len())) / float64(time.Millisecond)
}

// Done reports whether the stream has played through to its end.
func (p *Player) Done() bool {
	speaker.Lock()
	done := p.streamer.Position() >= p.streamer.Len()
	speaker.Unlock()
	return done
}

func (p *Player) Close() {
	if err := p.streamer.Close(); nil != err {
		log.Error("unable to close streamer", "err", err)
	}
}
