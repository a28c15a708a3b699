package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/session.yaml
var defaultSessionYAML []byte

// DefaultSessionConfig returns the hard-coded session configuration used when
// the embedded YAML cannot be parsed.
func DefaultSessionConfig() SessionConfig {
	winScore := 100
	startTime := 90.0

	return SessionConfig{
		Game: GameInfo{
			Title:   "Untitled Game",
			Credits: "Made by Me",
		},
		Rules: Rules{
			DefaultScore: 0,
			DefaultLives: 3,
			WinScore:     &winScore,
			StartTime:    &startTime,
		},
		Levels: LevelsConfig{
			First: "meadow",
			List: []LevelConfig{
				{ID: "meadow", Name: "Meadow", Next: "caves"},
				{ID: "caves", Name: "Caves", Next: "summit"},
				{ID: "summit", Name: "Summit"},
			},
		},
		Messages: Messages{
			Win:      "You Win",
			Lose:     "You Lose",
			GameOver: "Game Over",
		},
		Labels: Labels{
			Score: "Score: ",
			Lives: "Lives: ",
			Timer: "Timer: ",
		},
		Audio: AudioConfig{
			Ambient:     "theme",
			WinStinger:  "fanfare",
			LoseStinger: "dirge",
			FadeStep:    0.01,
		},
		Debug: DebugConfig{
			Cooldown: 1500 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default session YAML.
func DefaultYAML() []byte {
	return defaultSessionYAML
}
