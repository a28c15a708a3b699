package flow

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/levelrun/internal/config"
)

var (
	// ErrControllerExists is returned by New while another controller is live.
	ErrControllerExists = errors.New("flow: a controller is already running")
	// ErrMissingPort is returned by New when a required port is nil.
	ErrMissingPort = errors.New("flow: required port is missing")
	// ErrMissingSink is returned by New when a required text sink is not wired.
	ErrMissingSink = errors.New("flow: required display sink is missing")
)

// defaultFadeStep is the ambient volume removed per tick while fading.
const defaultFadeStep = 0.01

// live is the single controller allowed per process.
var (
	liveMu sync.Mutex
	live   *Controller
)

// Controller owns the session and the flow state machine.
type Controller struct {
	cfg    config.SessionConfig
	ports  Ports
	logger *log.Logger
	now    func() time.Time

	state    State
	session  Session
	outcome  Outcome
	started  bool // Reset has run at least once
	loaded   bool // A level load has been issued and not yet unloaded
	quit     bool
	fadeStep float64

	levelStartScore int // Score when the current level was entered
	clock           time.Time
	gate            *inputGate
	closed          bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for transitions and port failures.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock sets the wall clock used for derived strings such as the
// copyright year.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates the process-wide controller. It fails with ErrControllerExists
// while a previous controller has not been closed, and with ErrMissingSink
// when the presentation lacks a sink the configuration needs.
func New(cfg config.SessionConfig, ports Ports, opts ...Option) (*Controller, error) {
	if ports.Presentation == nil {
		return nil, fmt.Errorf("%w: presentation", ErrMissingPort)
	}
	if ports.Levels == nil {
		return nil, fmt.Errorf("%w: level loader", ErrMissingPort)
	}
	for _, sink := range requiredSinks(cfg) {
		if !ports.Presentation.HasSink(sink) {
			return nil, fmt.Errorf("%w: %s", ErrMissingSink, sink)
		}
	}

	c := &Controller{
		cfg:      cfg,
		ports:    ports,
		logger:   log.New(io.Discard),
		now:      time.Now,
		state:    StatePlaying,
		fadeStep: cfg.Audio.FadeStep,
		clock:    time.Unix(0, 0),
		gate:     newInputGate(cfg.Debug.Cooldown),
	}
	if c.fadeStep <= 0 {
		c.fadeStep = defaultFadeStep
	}
	for _, opt := range opts {
		opt(c)
	}
	c.session = c.defaultSession()

	liveMu.Lock()
	defer liveMu.Unlock()
	if live != nil {
		return nil, ErrControllerExists
	}
	live = c
	return c, nil
}

// Close releases the process-wide controller slot. The current level is
// left loaded; hosts tear their ports down themselves.
func (c *Controller) Close() {
	liveMu.Lock()
	defer liveMu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if live == c {
		live = nil
	}
}

// requiredSinks lists the text sinks the controller writes unconditionally.
func requiredSinks(cfg config.SessionConfig) []SinkID {
	sinks := []SinkID{
		SinkTitle, SinkCredits, SinkCopyright,
		SinkScoreLabel, SinkScoreValue,
		SinkLivesLabel, SinkLivesValue,
		SinkGameOver, SinkMessage,
	}
	if cfg.HasTimedLevel() {
		sinks = append(sinks, SinkTimerLabel, SinkTimerValue)
	}
	return sinks
}

func (c *Controller) defaultSession() Session {
	return Session{
		Score: c.cfg.Rules.DefaultScore,
		Lives: c.cfg.Rules.DefaultLives,
		Timer: c.cfg.StartTime(),
	}
}

// State returns the current flow state.
func (c *Controller) State() State {
	return c.state
}

// Session returns a copy of the session record.
func (c *Controller) Session() Session {
	return c.session
}

// Outcome returns how the session ended, or OutcomeNone while it runs.
func (c *Controller) Outcome() Outcome {
	return c.outcome
}

// Started reports whether Reset has run.
func (c *Controller) Started() bool {
	return c.started
}

// Config returns the configuration the controller was built with.
func (c *Controller) Config() config.SessionConfig {
	return c.cfg
}
