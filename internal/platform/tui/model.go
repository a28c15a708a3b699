package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/levelrun/internal/audio"
	"github.com/vovakirdan/levelrun/internal/core"
	"github.com/vovakirdan/levelrun/internal/flow"
	"github.com/vovakirdan/levelrun/internal/levels"
	"github.com/vovakirdan/levelrun/internal/storage"
)

// collectPoints is the score awarded per collect key press.
const collectPoints = 10

// chromeRows is the number of terminal rows used below the screen buffer.
const chromeRows = 2

// Deps bundles the collaborators a play screen runs against. Controller
// and Panels are required; the rest are optional.
type Deps struct {
	Controller *flow.Controller
	Panels     *Panels
	Catalog    *levels.Catalog
	Mixer      *audio.Mixer
	Store      *storage.Store
	Logger     *log.Logger
}

// Model is the Bubble Tea model for a play session.
type Model struct {
	ctrl    *flow.Controller
	panels  *Panels
	catalog *levels.Catalog
	mixer   *audio.Mixer
	store   *storage.Store
	logger  *log.Logger

	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame

	inMenu   bool      // Main menu is up; Enter starts a run
	runStart time.Time // Host time the current run started
	runSaved bool      // Whether the current run has been recorded
	lastID   string    // Run ID of the last recorded run
	quitting bool
}

// NewModel creates a new Bubble Tea model. The controller is expected to
// show the main menu before the program starts.
func NewModel(deps Deps, cfg core.RuntimeConfig) Model {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	keys := DefaultKeyMap()
	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		ctrl:       deps.Controller,
		panels:     deps.Panels,
		catalog:    deps.Catalog,
		mixer:      deps.Mixer,
		store:      deps.Store,
		logger:     logger,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-chromeRows, 1)),
		config:     cfg,
		keys:       keys,
		keyMapper:  NewKeyMapper(keys),
		help:       h,
		inputFrame: core.NewInputFrame(),
		inMenu:     !deps.Controller.Started(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-chromeRows, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleTick applies host actions, then advances the controller one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := m.inputFrame
	m.inputFrame = core.NewInputFrame()

	m.applyHostActions(frame, now)
	result := m.ctrl.Tick(m.config.TickInterval(), frame)
	m.recordRun(result, now)

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickInterval())
}

// applyHostActions handles the inputs the controller does not sample:
// menu navigation and demo gameplay signals.
func (m *Model) applyHostActions(frame core.InputFrame, now time.Time) {
	state := m.ctrl.State()

	switch {
	case m.inMenu:
		if frame.Has(core.ActionConfirm) {
			m.ctrl.Reset()
			m.startRun(now)
		}

	case state == flow.StateGameOver:
		if frame.Has(core.ActionRestart) {
			m.ctrl.RestartSession()
			m.startRun(now)
		} else if frame.Has(core.ActionBack) {
			m.ctrl.HideMenus()
			m.ctrl.ShowMainMenu()
			m.inMenu = true
		}

	case state == flow.StatePlaying:
		if frame.Has(core.ActionCollect) {
			m.ctrl.AddScore(collectPoints)
		}
		if frame.Has(core.ActionHit) {
			m.ctrl.SignalDeath()
		}
	}
}

func (m *Model) startRun(now time.Time) {
	m.inMenu = false
	m.runStart = now
	m.runSaved = false
}

// recordRun stores a run once when its session reaches game over.
func (m *Model) recordRun(result flow.StepResult, now time.Time) {
	if result.State != flow.StateGameOver || m.runSaved || m.inMenu {
		return
	}
	m.runSaved = true
	if m.store == nil {
		return
	}

	var elapsed time.Duration
	if !m.runStart.IsZero() {
		elapsed = now.Sub(m.runStart)
	}
	id, err := m.store.SaveRun(result.Outcome.String(), result.Session.Score, result.Session.CurrentLevel, elapsed)
	if err != nil {
		m.logger.Warn("cannot record run", "error", err)
		return
	}
	m.lastID = id
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.drawScene()
	m.panels.Draw(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.statusLine()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// drawScene draws the loaded level as a framed room with the player in it.
func (m Model) drawScene() {
	if !m.panels.Visible(flow.PanelHUD) {
		return
	}
	area := m.screen.Bounds()
	room := core.NewRect(0, 1, area.W, area.H-1)
	m.screen.DrawBox(room, core.ColorBlue)

	level := m.ctrl.Session().CurrentLevel
	name := level
	if m.catalog != nil {
		name = m.catalog.Name(level)
	}
	m.screen.DrawTextCentered(room, room.Y, " "+name+" ", core.ColorBrightBlue)

	if m.panels.ObjectActive(flow.ObjectPlayer) {
		m.screen.SetCell(room.X+room.W/2, room.Y+room.H/2, core.Cell{Rune: '@', Color: core.ColorBrightYellow})
	}
}

// statusLine shows the flow state, the ambient volume while fading and the
// last cue played.
func (m Model) statusLine() string {
	if m.inMenu {
		return ""
	}
	parts := []string{m.ctrl.State().String()}

	if m.mixer != nil {
		if track := m.mixer.Track(); track != nil {
			state := m.ctrl.State()
			if state == flow.StateDying || state == flow.StateBeatLevel {
				parts = append(parts, volumeBar(track.Volume()))
			}
		}
		if cue, ok := m.mixer.LastCue(); ok {
			parts = append(parts, "♪ "+string(cue.Clip))
		}
	}
	if m.runSaved && m.lastID != "" {
		parts = append(parts, "run "+m.lastID[:8])
	}
	return " " + strings.Join(parts, "  ")
}

// volumeBar renders a volume in [0, 1] as a ten-step bar.
func volumeBar(v float64) string {
	filled := int(core.ClampF(v, 0, 1)*10 + 0.5)
	return strings.Repeat("▮", filled) + strings.Repeat("▯", 10-filled)
}

// Run starts the Bubble Tea program for a play session.
func Run(deps Deps, cfg core.RuntimeConfig) error {
	model := NewModel(deps, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
