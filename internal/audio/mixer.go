// Package audio provides a terminal-friendly implementation of the flow
// controller's audio port: an ambient track with a volume level and
// one-shot cues that are recorded and forwarded to a sink.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/levelrun/internal/config"
	"github.com/vovakirdan/levelrun/internal/core"
	"github.com/vovakirdan/levelrun/internal/flow"
)

// maxCues bounds the cue history kept for display.
const maxCues = 16

// Cue is a one-shot clip that was played.
type Cue struct {
	Clip flow.ClipID
	At   flow.Position
	Time time.Time
}

// Sink receives played cues. The terminal host uses it to ring the bell.
type Sink interface {
	Play(cue Cue)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(cue Cue)

// Play calls f(cue).
func (f SinkFunc) Play(cue Cue) {
	f(cue)
}

// BellSink writes the terminal bell for every cue.
type BellSink struct {
	W io.Writer
}

// Play rings the bell. Write errors are ignored; sound is best-effort.
func (b BellSink) Play(Cue) {
	if b.W == nil {
		return
	}
	//nolint:errcheck // Best-effort bell
	b.W.Write([]byte{'\a'})
}

// Track is a looping ambient track. Its volume stays within [0, 1].
type Track struct {
	name string

	mu     sync.Mutex
	volume float64
}

// NewTrack creates a track at full volume.
func NewTrack(name string) *Track {
	return &Track{name: name, volume: 1}
}

// Name returns the track name.
func (t *Track) Name() string {
	return t.name
}

// Volume returns the current volume.
func (t *Track) Volume() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.volume
}

// SetVolume sets the volume, clamped to [0, 1].
func (t *Track) SetVolume(v float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.volume = core.ClampF(v, 0, 1)
}

// Mixer implements flow.Audio.
type Mixer struct {
	ambient *Track
	sink    Sink
	logger  *log.Logger
	now     func() time.Time

	mu   sync.Mutex
	cues []Cue
}

// Option configures a Mixer.
type Option func(*Mixer)

// WithSink forwards every played cue to sink.
func WithSink(sink Sink) Option {
	return func(m *Mixer) {
		m.sink = sink
	}
}

// WithLogger sets the logger for played cues.
func WithLogger(logger *log.Logger) Option {
	return func(m *Mixer) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewMixer creates a mixer. An ambient track exists only when cfg names one.
func NewMixer(cfg config.AudioConfig, opts ...Option) *Mixer {
	m := &Mixer{
		logger: log.New(io.Discard),
		now:    time.Now,
	}
	if cfg.Ambient != "" {
		m.ambient = NewTrack(cfg.Ambient)
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var _ flow.Audio = (*Mixer)(nil)

// PlayOneShot records the cue and forwards it to the sink.
func (m *Mixer) PlayOneShot(clip flow.ClipID, at flow.Position) {
	cue := Cue{Clip: clip, At: at, Time: m.now()}

	m.mu.Lock()
	m.cues = append(m.cues, cue)
	if len(m.cues) > maxCues {
		m.cues = m.cues[len(m.cues)-maxCues:]
	}
	m.mu.Unlock()

	m.logger.Debug("one-shot played", "clip", clip)
	if m.sink != nil {
		m.sink.Play(cue)
	}
}

// Ambient returns the ambient track, if configured.
func (m *Mixer) Ambient() (flow.AmbientTrack, bool) {
	if m.ambient == nil {
		return nil, false
	}
	return m.ambient, true
}

// Track returns the concrete ambient track, or nil.
func (m *Mixer) Track() *Track {
	return m.ambient
}

// LastCue returns the most recently played cue.
func (m *Mixer) LastCue() (Cue, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.cues) == 0 {
		return Cue{}, false
	}
	return m.cues[len(m.cues)-1], true
}

// Cues returns a copy of the recent cue history, oldest first.
func (m *Mixer) Cues() []Cue {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Cue, len(m.cues))
	copy(out, m.cues)
	return out
}
