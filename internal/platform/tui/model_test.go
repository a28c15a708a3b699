package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/levelrun/internal/audio"
	"github.com/vovakirdan/levelrun/internal/config"
	"github.com/vovakirdan/levelrun/internal/core"
	"github.com/vovakirdan/levelrun/internal/flow"
	"github.com/vovakirdan/levelrun/internal/levels"
	"github.com/vovakirdan/levelrun/internal/storage"
)

type testHost struct {
	model Model
	ctrl  *flow.Controller
	stage *levels.Stage
	store *storage.Store
	now   time.Time
}

func newTestHost(t *testing.T) *testHost {
	t.Helper()

	cfg := config.DefaultSessionConfig()
	cfg.Debug.Cooldown = 0

	catalog, err := levels.NewCatalog(cfg.Levels)
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}
	stage := levels.NewStage(catalog)
	mixer := audio.NewMixer(cfg.Audio)
	panels := NewPanels()

	ctrl, err := flow.New(cfg, flow.Ports{Presentation: panels, Levels: stage, Audio: mixer})
	if err != nil {
		t.Fatalf("flow.New() failed: %v", err)
	}
	t.Cleanup(ctrl.Close)

	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ctrl.ShowMainMenu()
	rc := core.DefaultConfig()
	m := NewModel(Deps{
		Controller: ctrl,
		Panels:     panels,
		Catalog:    catalog,
		Mixer:      mixer,
		Store:      store,
	}, rc)

	return &testHost{
		model: m,
		ctrl:  ctrl,
		stage: stage,
		store: store,
		now:   time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// send delivers a message and returns the resulting command.
func (h *testHost) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := h.model.Update(msg)
	m, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	h.model = m
	return cmd
}

// press sends a key followed by one tick.
func (h *testHost) press(t *testing.T, k tea.KeyMsg) tea.Cmd {
	t.Helper()
	h.send(t, k)
	return h.tick(t)
}

func (h *testHost) tick(t *testing.T) tea.Cmd {
	t.Helper()
	h.now = h.now.Add(time.Second)
	return h.send(t, TickMsg(h.now))
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEnd   = tea.KeyMsg{Type: tea.KeyEnd}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyR     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}
	keyB     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}}
	keyX     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}
)

func TestModelMenuUntilConfirm(t *testing.T) {
	h := newTestHost(t)

	h.press(t, keySpace)
	if h.ctrl.Started() {
		t.Fatal("controller should not start before Enter")
	}
	if !strings.Contains(h.model.View(), menuHint) {
		t.Error("menu hint should be visible")
	}

	h.press(t, keyEnter)
	if !h.ctrl.Started() || h.ctrl.State() != flow.StatePlaying {
		t.Fatalf("after Enter: started=%v state=%s", h.ctrl.Started(), h.ctrl.State())
	}
	if !h.stage.IsLoaded("meadow") {
		t.Errorf("first level not loaded: %v", h.stage.Loaded())
	}
	view := h.model.View()
	if !strings.Contains(view, "Meadow") || !strings.Contains(view, "@") {
		t.Errorf("play view should show the level and player:\n%s", view)
	}
}

func TestModelGameplayKeys(t *testing.T) {
	h := newTestHost(t)
	h.press(t, keyEnter)

	h.press(t, keySpace)
	if got := h.ctrl.Session().Score; got != collectPoints {
		t.Errorf("score = %d, want %d", got, collectPoints)
	}

	lives := h.ctrl.Session().Lives
	h.press(t, keyX)
	if got := h.ctrl.Session().Lives; got != lives-1 {
		t.Errorf("lives = %d, want %d", got, lives-1)
	}
}

func TestModelRecordsRunOnce(t *testing.T) {
	h := newTestHost(t)
	h.press(t, keyEnter)
	h.press(t, keySpace)
	h.press(t, keyEnd)

	if h.ctrl.State() != flow.StateGameOver {
		t.Fatalf("state = %s, want GameOver", h.ctrl.State())
	}
	h.tick(t)
	h.tick(t)

	runs, err := h.store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected exactly 1 run, got %d", len(runs))
	}
	if runs[0].Outcome != "forced" || runs[0].Score != collectPoints || runs[0].Level != "meadow" {
		t.Errorf("run = %+v", runs[0])
	}
	if runs[0].Duration != 2 {
		t.Errorf("duration = %d, want 2", runs[0].Duration)
	}

	h.press(t, keyR)
	if h.ctrl.State() != flow.StatePlaying {
		t.Fatalf("restart: state = %s", h.ctrl.State())
	}
	h.press(t, keyEnd)
	runs, _ = h.store.TopRuns(10)
	if len(runs) != 2 {
		t.Errorf("restarted session should record a second run, got %d", len(runs))
	}
}

func TestModelBackToMenu(t *testing.T) {
	h := newTestHost(t)
	h.press(t, keyEnter)
	h.press(t, keyEnd)
	h.press(t, keyB)

	if !h.model.inMenu {
		t.Fatal("b at game over should return to the menu")
	}
	if !strings.Contains(h.model.View(), menuHint) {
		t.Error("menu should be visible again")
	}

	h.press(t, keyEnter)
	if h.ctrl.State() != flow.StatePlaying || h.ctrl.Session().CurrentLevel != "meadow" {
		t.Errorf("state = %s level = %q", h.ctrl.State(), h.ctrl.Session().CurrentLevel)
	}
}

func TestModelQuit(t *testing.T) {
	h := newTestHost(t)
	h.press(t, keyEnter)

	if cmd := h.press(t, keyEsc); cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !h.model.quitting {
		t.Error("model should be quitting")
	}
	if h.model.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestVolumeBar(t *testing.T) {
	if got := volumeBar(1); got != "▮▮▮▮▮▮▮▮▮▮" {
		t.Errorf("volumeBar(1) = %q", got)
	}
	if got := volumeBar(0); got != "▯▯▯▯▯▯▯▯▯▯" {
		t.Errorf("volumeBar(0) = %q", got)
	}
	if got := volumeBar(0.5); got != "▮▮▮▮▮▯▯▯▯▯" {
		t.Errorf("volumeBar(0.5) = %q", got)
	}
}
