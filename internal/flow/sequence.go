package flow

import (
	"math"
	"strconv"
)

// Reset restores the session to its configured defaults and enters the first
// level. It is the only way to reach a clean Playing state.
func (c *Controller) Reset() {
	c.unloadCurrent(false)

	if c.cfg.HasTimedLevel() {
		c.session.Timer = c.cfg.StartTime()
		c.refreshTimer()
	}
	c.session.Score = c.cfg.Rules.DefaultScore
	c.session.Lives = c.cfg.Rules.DefaultLives
	c.session.MusicOver = false
	c.refreshScore()
	c.refreshLives()

	c.started = true
	c.EnterLevel(c.cfg.Levels.First)
}

// EnterLevel records id as the current level, issues an additive load and
// shows the gameplay UI. Callers unload the previous level first.
func (c *Controller) EnterLevel(id string) {
	c.session.CurrentLevel = id
	c.session.PlayerDead = false
	if c.cfg.HasTimedLevel() {
		c.session.Timer = c.cfg.StartTime()
	}
	c.levelStartScore = c.session.Score
	c.outcome = OutcomeNone

	c.show(PanelMenu, false)
	c.show(PanelFooter, false)
	c.show(PanelEndScreen, false)
	c.show(PanelHUD, true)
	c.ports.Presentation.SetObjectActive(ObjectPlayer, true)
	c.ports.Presentation.SetText(SinkMessage, "")

	if c.cfg.HasTimedLevel() {
		c.refreshTimer()
	}
	c.refreshScore()
	c.refreshLives()

	if track, ok := c.ambient(); ok {
		track.SetVolume(1)
	}

	c.setState(StatePlaying)
	c.started = true

	if err := c.ports.Levels.Load(id, LoadAdditive); err != nil {
		c.logger.Warn("level load failed", "level", id, "error", err)
	}
	c.loaded = true
	c.logger.Debug("level entered", "level", id, "lives", c.session.Lives, "score", c.session.Score)
}

// RestartCurrentLevel clears the death signal and reloads the current level.
func (c *Controller) RestartCurrentLevel() {
	c.session.PlayerDead = false
	id := c.session.CurrentLevel
	c.unloadCurrent(true)
	c.EnterLevel(id)
}

// AdvanceToLevel moves on to id with a fresh set of lives. An empty id is
// ignored: there is nothing to load.
func (c *Controller) AdvanceToLevel(id string) {
	if id == "" {
		c.logger.Warn("advance requested without a level id", "current", c.session.CurrentLevel)
		return
	}
	c.session.MusicOver = false
	c.session.Lives = c.cfg.Rules.DefaultLives
	c.unloadCurrent(false)
	c.EnterLevel(id)
}

// RestartSession resets score and lives and starts again from the first level.
func (c *Controller) RestartSession() {
	c.session.Score = c.cfg.Rules.DefaultScore
	c.session.Lives = c.cfg.Rules.DefaultLives
	c.session.MusicOver = false
	c.unloadCurrent(false)
	c.EnterLevel(c.cfg.Levels.First)
}

// ShowMainMenu writes the title strings and shows the menu and footer.
// Score and lives are reset to their defaults without refreshing the HUD.
func (c *Controller) ShowMainMenu() {
	c.session.Score = c.cfg.Rules.DefaultScore
	c.session.Lives = c.cfg.Rules.DefaultLives

	c.ports.Presentation.SetText(SinkTitle, c.cfg.Game.Title)
	c.ports.Presentation.SetText(SinkCredits, c.cfg.Game.Credits)
	c.ports.Presentation.SetText(SinkCopyright, c.cfg.CopyrightLine(c.now()))

	c.show(PanelMenu, true)
	c.show(PanelFooter, true)
}

// HideMenus hides every panel.
func (c *Controller) HideMenus() {
	c.show(PanelMenu, false)
	c.show(PanelFooter, false)
	c.show(PanelEndScreen, false)
	c.show(PanelHUD, false)
}

// AddScore adds points earned by gameplay and refreshes the score display.
func (c *Controller) AddScore(points int) {
	if !c.started {
		return
	}
	c.session.Score += points
	c.refreshScore()
}

// SignalDeath raises the death signal. It is evaluated on the next tick
// spent in Playing.
func (c *Controller) SignalDeath() {
	c.session.PlayerDead = true
}

// ForceGameOver ends the session immediately without a message.
func (c *Controller) ForceGameOver() {
	if !c.started || c.state == StateGameOver {
		return
	}
	c.outcome = OutcomeForced
	c.enterGameOver()
}

// ForceBeatLevel treats the current level as won.
func (c *Controller) ForceBeatLevel() {
	if !c.started || c.state != StatePlaying {
		return
	}
	c.setState(StateBeatLevel)
}

// RequestQuit flags the session for shutdown; the host acts on StepResult.Quit.
func (c *Controller) RequestQuit() {
	c.quit = true
}

// unloadCurrent issues an unload for the current level, if one is loaded.
func (c *Controller) unloadCurrent(async bool) {
	if !c.loaded || c.session.CurrentLevel == "" {
		return
	}
	id := c.session.CurrentLevel

	var err error
	if async {
		err = c.ports.Levels.UnloadAsync(id)
	} else {
		err = c.ports.Levels.Unload(id)
	}
	if err != nil {
		c.logger.Warn("level unload failed", "level", id, "async", async, "error", err)
	}
	c.loaded = false
}

func (c *Controller) show(panel PanelID, visible bool) {
	c.ports.Presentation.SetPanelVisible(panel, visible)
}

func (c *Controller) refreshScore() {
	c.ports.Presentation.SetText(SinkScoreLabel, c.cfg.Labels.Score)
	c.ports.Presentation.SetText(SinkScoreValue, strconv.Itoa(c.session.Score))
}

func (c *Controller) refreshLives() {
	c.ports.Presentation.SetText(SinkLivesLabel, c.cfg.Labels.Lives)
	c.ports.Presentation.SetText(SinkLivesValue, strconv.Itoa(c.session.Lives))
}

func (c *Controller) refreshTimer() {
	c.ports.Presentation.SetText(SinkTimerLabel, c.cfg.Labels.Timer)
	c.ports.Presentation.SetText(SinkTimerValue, formatTimer(c.session.Timer))
}

// formatTimer shows whole seconds, rounding up so "0" only appears at expiry.
func formatTimer(seconds float64) string {
	if seconds <= 0 {
		return "0"
	}
	return strconv.Itoa(int(math.Ceil(seconds)))
}
