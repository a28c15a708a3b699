package flow

import (
	"time"

	"github.com/vovakirdan/levelrun/internal/core"
)

// silence is the volume at or below which a fade counts as complete.
// Repeated float subtraction of the fade step from 1.0 lands a hair above
// zero on the final step.
const silence = 1e-9

// Tick advances the controller by one frame. dt is the time since the
// previous tick and in holds the inputs sampled for this frame.
func (c *Controller) Tick(dt time.Duration, in core.InputFrame) StepResult {
	if dt > 0 {
		c.clock = c.clock.Add(dt)
	}
	c.sampleInput(in)

	if c.started {
		c.advanceTimer(dt)
		c.evaluate()
	}

	result := StepResult{
		State:   c.state,
		Session: c.session,
		Outcome: c.outcome,
		Quit:    c.quit,
	}
	c.quit = false
	return result
}

// sampleInput applies the debounced flow-control inputs.
func (c *Controller) sampleInput(in core.InputFrame) {
	if c.gate.fire(in, core.ActionQuit, c.clock) {
		c.RequestQuit()
	}
	if c.gate.fire(in, core.ActionForceGameOver, c.clock) {
		c.ForceGameOver()
	}
	if c.gate.fire(in, core.ActionForceDeath, c.clock) && c.started {
		c.SignalDeath()
	}
	if c.gate.fire(in, core.ActionForceBeatLevel, c.clock) {
		c.ForceBeatLevel()
	}
}

// advanceTimer counts the level timer down while playing. Running out of
// time raises the death signal.
func (c *Controller) advanceTimer(dt time.Duration) {
	if !c.cfg.HasTimedLevel() || c.state != StatePlaying || dt <= 0 {
		return
	}
	if c.session.Timer <= 0 {
		return
	}
	c.session.Timer -= dt.Seconds()
	if c.session.Timer <= 0 {
		c.session.Timer = 0
		c.SignalDeath()
		c.logger.Debug("level timer expired", "level", c.session.CurrentLevel)
	}
	c.refreshTimer()
}

// evaluate runs one step of the state machine.
func (c *Controller) evaluate() {
	switch c.state {
	case StatePlaying:
		c.evaluatePlaying()

	case StateDying:
		if !c.fade() {
			return
		}
		c.session.MusicOver = true
		c.playStinger(c.cfg.Audio.LoseStinger)
		c.ports.Presentation.SetText(SinkMessage, c.cfg.Messages.Lose)
		c.outcome = OutcomeLose
		c.enterGameOver()

	case StateBeatLevel:
		if !c.fade() {
			return
		}
		c.session.MusicOver = true
		c.playStinger(c.cfg.Audio.WinStinger)
		if next, ok := c.cfg.NextLevelAfter(c.session.CurrentLevel); ok {
			c.AdvanceToLevel(next)
			return
		}
		c.ports.Presentation.SetText(SinkMessage, c.cfg.Messages.Win)
		c.outcome = OutcomeWin
		c.enterGameOver()

	case StateGameOver:
		// Terminal until Reset or RestartSession.
	}
}

func (c *Controller) evaluatePlaying() {
	if c.session.PlayerDead {
		c.session.PlayerDead = false
		if c.session.Lives > 0 {
			c.session.Lives--
			c.RestartCurrentLevel()
			return
		}
		c.setState(StateDying)
		return
	}

	if c.cfg.HasWinScoreCondition() && c.session.Score-c.levelStartScore >= c.cfg.WinScore() {
		c.setState(StateBeatLevel)
	}
}

// fade lowers the ambient volume by one step and reports whether the
// fade-wait is over. Without an ambient track there is nothing to wait for.
func (c *Controller) fade() bool {
	track, ok := c.ambient()
	if !ok {
		return true
	}
	v := track.Volume() - c.fadeStep
	if v <= silence {
		track.SetVolume(0)
		return true
	}
	track.SetVolume(v)
	return false
}

// enterGameOver switches to GameOver and shows the end screen.
func (c *Controller) enterGameOver() {
	c.setState(StateGameOver)

	c.ports.Presentation.SetObjectActive(ObjectPlayer, false)
	c.show(PanelHUD, false)
	c.show(PanelEndScreen, true)
	c.ports.Presentation.SetText(SinkGameOver, c.cfg.Messages.GameOver)
	c.show(PanelFooter, true)

	c.logger.Info("game over",
		"outcome", c.outcome,
		"score", c.session.Score,
		"level", c.session.CurrentLevel,
	)
}

func (c *Controller) setState(next State) {
	if c.state == next {
		return
	}
	c.logger.Debug("flow transition", "from", c.state, "to", next, "level", c.session.CurrentLevel)
	c.state = next
}

func (c *Controller) ambient() (AmbientTrack, bool) {
	if c.ports.Audio == nil {
		return nil, false
	}
	track, ok := c.ports.Audio.Ambient()
	if !ok || track == nil {
		return nil, false
	}
	return track, true
}

func (c *Controller) playStinger(clip string) {
	if clip == "" || c.ports.Audio == nil {
		return
	}
	c.ports.Audio.PlayOneShot(ClipID(clip), Position{})
}
