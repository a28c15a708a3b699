package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for values the flow controller does not
// guard against. All problems are reported together.
func (c SessionConfig) Validate() error {
	var errs []error

	if c.Rules.DefaultLives < 0 {
		errs = append(errs, fmt.Errorf("rules.default_lives must not be negative, got %d", c.Rules.DefaultLives))
	}
	if c.Rules.StartTime != nil && *c.Rules.StartTime <= 0 {
		errs = append(errs, fmt.Errorf("rules.start_time must be positive, got %g", *c.Rules.StartTime))
	}
	if c.Audio.FadeStep <= 0 || c.Audio.FadeStep > 1 {
		errs = append(errs, fmt.Errorf("audio.fade_step must be in (0, 1], got %g", c.Audio.FadeStep))
	}
	if c.Debug.Cooldown < 0 {
		errs = append(errs, fmt.Errorf("debug.cooldown must not be negative, got %s", c.Debug.Cooldown))
	}

	if c.Levels.First == "" {
		errs = append(errs, errors.New("levels.first is required"))
	} else if _, ok := c.Level(c.Levels.First); !ok {
		errs = append(errs, fmt.Errorf("levels.first %q is not in levels.list", c.Levels.First))
	}

	seen := make(map[string]bool, len(c.Levels.List))
	for i, lvl := range c.Levels.List {
		if lvl.ID == "" {
			errs = append(errs, fmt.Errorf("levels.list[%d] has no id", i))
			continue
		}
		if seen[lvl.ID] {
			errs = append(errs, fmt.Errorf("level %q is defined twice", lvl.ID))
		}
		seen[lvl.ID] = true
	}
	for _, lvl := range c.Levels.List {
		if lvl.Next == "" {
			continue
		}
		if !seen[lvl.Next] {
			errs = append(errs, fmt.Errorf("level %q: next level %q is not defined", lvl.ID, lvl.Next))
		}
	}

	return errors.Join(errs...)
}
