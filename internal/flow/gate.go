package flow

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/vovakirdan/levelrun/internal/core"
)

// inputGate debounces the flow-control keys. Each key fires at most once per
// cooldown, measured on the controller clock, so a held key does not fire on
// every frame regardless of the tick rate.
type inputGate struct {
	limiters map[core.Action]*rate.Limiter
}

func newInputGate(cooldown time.Duration) *inputGate {
	limit := rate.Inf
	if cooldown > 0 {
		limit = rate.Every(cooldown)
	}

	g := &inputGate{limiters: make(map[core.Action]*rate.Limiter)}
	for _, a := range []core.Action{
		core.ActionQuit,
		core.ActionForceGameOver,
		core.ActionForceDeath,
		core.ActionForceBeatLevel,
	} {
		g.limiters[a] = rate.NewLimiter(limit, 1)
	}
	return g
}

// fire reports whether action is pressed in the frame and its cooldown has
// elapsed at now. Released keys do not consume the cooldown.
func (g *inputGate) fire(in core.InputFrame, action core.Action, now time.Time) bool {
	if !in.Has(action) {
		return false
	}
	lim, ok := g.limiters[action]
	if !ok {
		return true
	}
	return lim.AllowN(now, 1)
}
