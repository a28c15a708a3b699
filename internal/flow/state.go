// Package flow implements the game-flow controller: it owns the session
// (score, lives, current level, countdown), evaluates the Playing / Dying /
// GameOver / BeatLevel state machine once per tick and drives the
// presentation, level loader and audio ports as side effects.
//
// The controller is single-threaded. Tick and every exported operation must
// be called from the same goroutine; background work in the ports has to
// marshal its results back onto that goroutine.
package flow

// State is the session's current high-level phase.
type State int

const (
	// StatePlaying is active gameplay, the only state that evaluates deaths.
	StatePlaying State = iota
	// StateDying fades the ambient track out after the last life is lost.
	StateDying
	// StateGameOver is terminal for the session: end screen and footer shown.
	StateGameOver
	// StateBeatLevel fades the ambient track out after the level is won.
	StateBeatLevel
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateDying:
		return "Dying"
	case StateGameOver:
		return "GameOver"
	case StateBeatLevel:
		return "BeatLevel"
	default:
		return "Unknown"
	}
}

// Outcome records how a session reached GameOver.
type Outcome int

const (
	OutcomeNone   Outcome = iota // Session still running
	OutcomeWin                   // Final level beaten
	OutcomeLose                  // Lives exhausted
	OutcomeForced                // Game over requested through the debug input
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	case OutcomeForced:
		return "forced"
	default:
		return "unknown"
	}
}

// Session is the mutable record owned by the controller.
type Session struct {
	Score        int
	Lives        int
	CurrentLevel string  // Empty until the first level is entered
	Timer        float64 // Remaining seconds; only meaningful on timed levels
	PlayerDead   bool    // Death signal, consumed by the next Playing tick
	MusicOver    bool    // Set when a fade completes, cleared on level advance
}

// StepResult is returned by Controller.Tick.
type StepResult struct {
	State   State
	Session Session
	Outcome Outcome
	Quit    bool // A quit request was sampled this tick
}
