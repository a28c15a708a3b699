package flow

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/levelrun/internal/config"
	"github.com/vovakirdan/levelrun/internal/core"
)

// frame is one tick at 60 fps.
const frame = time.Second / 60

type fakePresentation struct {
	texts   map[SinkID]string
	panels  map[PanelID]bool
	objects map[ObjectID]bool
	missing map[SinkID]bool
	writes  map[SinkID]int
}

func newFakePresentation() *fakePresentation {
	return &fakePresentation{
		texts:   make(map[SinkID]string),
		panels:  make(map[PanelID]bool),
		objects: make(map[ObjectID]bool),
		missing: make(map[SinkID]bool),
		writes:  make(map[SinkID]int),
	}
}

func (p *fakePresentation) SetText(sink SinkID, value string) {
	p.texts[sink] = value
	p.writes[sink]++
}

func (p *fakePresentation) SetPanelVisible(panel PanelID, visible bool) {
	p.panels[panel] = visible
}

func (p *fakePresentation) SetObjectActive(object ObjectID, active bool) {
	p.objects[object] = active
}

func (p *fakePresentation) HasSink(sink SinkID) bool {
	return !p.missing[sink]
}

type fakeLoader struct {
	ops     []string
	loaded  map[string]bool
	failAll bool
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{loaded: make(map[string]bool)}
}

var errLoaderDown = errors.New("loader down")

func (l *fakeLoader) Load(id string, mode LoadMode) error {
	l.ops = append(l.ops, "load:"+id)
	if l.failAll {
		return errLoaderDown
	}
	if mode != LoadAdditive {
		return errors.New("unexpected load mode")
	}
	l.loaded[id] = true
	return nil
}

func (l *fakeLoader) Unload(id string) error {
	l.ops = append(l.ops, "unload:"+id)
	if l.failAll {
		return errLoaderDown
	}
	delete(l.loaded, id)
	return nil
}

func (l *fakeLoader) UnloadAsync(id string) error {
	l.ops = append(l.ops, "unload-async:"+id)
	if l.failAll {
		return errLoaderDown
	}
	delete(l.loaded, id)
	return nil
}

func (l *fakeLoader) resetOps() {
	l.ops = nil
}

type fakeTrack struct {
	volume  float64
	history []float64
}

func (t *fakeTrack) Volume() float64 { return t.volume }

func (t *fakeTrack) SetVolume(v float64) {
	t.volume = v
	t.history = append(t.history, v)
}

type fakeAudio struct {
	track *fakeTrack // nil: no ambient track
	plays []ClipID
}

func (a *fakeAudio) PlayOneShot(clip ClipID, _ Position) {
	a.plays = append(a.plays, clip)
}

func (a *fakeAudio) Ambient() (AmbientTrack, bool) {
	if a.track == nil {
		return nil, false
	}
	return a.track, true
}

func (a *fakeAudio) count(clip ClipID) int {
	n := 0
	for _, p := range a.plays {
		if p == clip {
			n++
		}
	}
	return n
}

type harness struct {
	c      *Controller
	pres   *fakePresentation
	loader *fakeLoader
	audio  *fakeAudio
}

// testConfig returns the default session with the debug cooldown disabled.
func testConfig() config.SessionConfig {
	cfg := config.DefaultSessionConfig()
	cfg.Debug.Cooldown = 0
	return cfg
}

func newHarness(t *testing.T, cfg config.SessionConfig) *harness {
	t.Helper()

	h := &harness{
		pres:   newFakePresentation(),
		loader: newFakeLoader(),
		audio:  &fakeAudio{track: &fakeTrack{volume: 1}},
	}
	c, err := New(cfg, Ports{
		Presentation: h.pres,
		Levels:       h.loader,
		Audio:        h.audio,
	}, WithClock(func() time.Time {
		return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	}))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Cleanup(c.Close)
	h.c = c
	return h
}

// tick runs n idle ticks and returns the last result.
func (h *harness) tick(n int) StepResult {
	var res StepResult
	for i := 0; i < n; i++ {
		res = h.c.Tick(frame, core.NewInputFrame())
	}
	return res
}

// press runs one tick with the given action held.
func (h *harness) press(a core.Action) StepResult {
	in := core.NewInputFrame()
	in.Set(a)
	return h.c.Tick(frame, in)
}

// exhaustLives dies until no lives are left, staying in Playing.
func (h *harness) exhaustLives(t *testing.T) {
	t.Helper()
	for h.c.Session().Lives > 0 {
		h.c.SignalDeath()
		if res := h.tick(1); res.State != StatePlaying {
			t.Fatalf("state = %s while lives remain", res.State)
		}
	}
}
