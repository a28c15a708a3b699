// Package config provides YAML-based session configuration loading for the
// level runner: presentation strings, rules, the level catalog and audio cues.
package config

import (
	"fmt"
	"time"
)

// SessionConfig contains everything the flow controller reads at runtime.
// It is loaded once and treated as read-only afterwards.
type SessionConfig struct {
	Game     GameInfo     `yaml:"game"`
	Rules    Rules        `yaml:"rules"`
	Levels   LevelsConfig `yaml:"levels"`
	Messages Messages     `yaml:"messages"`
	Labels   Labels       `yaml:"labels"`
	Audio    AudioConfig  `yaml:"audio"`
	Debug    DebugConfig  `yaml:"debug"`
}

// GameInfo holds the strings shown on the main menu.
type GameInfo struct {
	Title     string `yaml:"title"`
	Credits   string `yaml:"credits"`
	Copyright string `yaml:"copyright"` // Empty means "Copyright <current year>"
}

// Rules defines score, lives and the optional win/timer conditions.
type Rules struct {
	DefaultScore int      `yaml:"default_score"`
	DefaultLives int      `yaml:"default_lives"`
	WinScore     *int     `yaml:"win_score,omitempty"`  // nil: level is not beaten by score
	StartTime    *float64 `yaml:"start_time,omitempty"` // nil: level is not timed (seconds)
}

// LevelsConfig is the level authoring data: where a session starts and how
// levels chain into each other.
type LevelsConfig struct {
	First string        `yaml:"first"`
	List  []LevelConfig `yaml:"list"`
}

// LevelConfig describes a single level.
type LevelConfig struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Next string `yaml:"next,omitempty"` // Empty on the final level
}

// Messages are the end-screen strings.
type Messages struct {
	Win      string `yaml:"win"`
	Lose     string `yaml:"lose"`
	GameOver string `yaml:"game_over"`
}

// Labels are the HUD titles written next to each value.
type Labels struct {
	Score string `yaml:"score"`
	Lives string `yaml:"lives"`
	Timer string `yaml:"timer"`
}

// AudioConfig names the ambient track and stinger clips. Empty names mean
// the cue is not configured.
type AudioConfig struct {
	Ambient     string  `yaml:"ambient,omitempty"`
	WinStinger  string  `yaml:"win_stinger,omitempty"`
	LoseStinger string  `yaml:"lose_stinger,omitempty"`
	FadeStep    float64 `yaml:"fade_step"` // Ambient volume removed per tick while fading
}

// DebugConfig controls the manual flow-control keys.
type DebugConfig struct {
	Cooldown time.Duration `yaml:"cooldown"` // Minimum time between two firings of the same key
}

// HasTimedLevel reports whether levels run against a countdown.
func (c SessionConfig) HasTimedLevel() bool {
	return c.Rules.StartTime != nil
}

// StartTime returns the countdown start in seconds, or 0 when untimed.
func (c SessionConfig) StartTime() float64 {
	if c.Rules.StartTime == nil {
		return 0
	}
	return *c.Rules.StartTime
}

// HasWinScoreCondition reports whether reaching a score beats the level.
func (c SessionConfig) HasWinScoreCondition() bool {
	return c.Rules.WinScore != nil
}

// WinScore returns the score threshold, or 0 when no score condition is set.
func (c SessionConfig) WinScore() int {
	if c.Rules.WinScore == nil {
		return 0
	}
	return *c.Rules.WinScore
}

// HasAmbientTrack reports whether an ambient track is configured.
func (c SessionConfig) HasAmbientTrack() bool {
	return c.Audio.Ambient != ""
}

// HasWinStinger reports whether a win stinger clip is configured.
func (c SessionConfig) HasWinStinger() bool {
	return c.Audio.WinStinger != ""
}

// HasLoseStinger reports whether a lose stinger clip is configured.
func (c SessionConfig) HasLoseStinger() bool {
	return c.Audio.LoseStinger != ""
}

// Level returns the level with the given ID.
func (c SessionConfig) Level(id string) (LevelConfig, bool) {
	for _, lvl := range c.Levels.List {
		if lvl.ID == id {
			return lvl, true
		}
	}
	return LevelConfig{}, false
}

// NextLevelAfter returns the level that follows id. The second value is
// false when id is the final level or is not in the catalog.
func (c SessionConfig) NextLevelAfter(id string) (string, bool) {
	lvl, ok := c.Level(id)
	if !ok || lvl.Next == "" {
		return "", false
	}
	return lvl.Next, true
}

// CopyrightLine returns the copyright string, deriving it from now when the
// config leaves it empty.
func (c SessionConfig) CopyrightLine(now time.Time) string {
	if c.Game.Copyright != "" {
		return c.Game.Copyright
	}
	return fmt.Sprintf("Copyright %d", now.Year())
}
