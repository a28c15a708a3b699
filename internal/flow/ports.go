package flow

// SinkID names a text display the controller writes to.
type SinkID string

// Text sinks written by the controller.
const (
	SinkTitle      SinkID = "title"
	SinkCredits    SinkID = "credits"
	SinkCopyright  SinkID = "copyright"
	SinkScoreLabel SinkID = "score_label"
	SinkScoreValue SinkID = "score_value"
	SinkLivesLabel SinkID = "lives_label"
	SinkLivesValue SinkID = "lives_value"
	SinkTimerLabel SinkID = "timer_label"
	SinkTimerValue SinkID = "timer_value"
	SinkGameOver   SinkID = "game_over"
	SinkMessage    SinkID = "message"
)

// PanelID names a group of widgets that is shown or hidden as a whole.
type PanelID string

// Panels toggled by the controller.
const (
	PanelMenu      PanelID = "menu"
	PanelHUD       PanelID = "hud"
	PanelEndScreen PanelID = "end_screen"
	PanelFooter    PanelID = "footer"
)

// ObjectID names a scene object the controller can activate.
type ObjectID string

// ObjectPlayer is the player entity, hidden on game over.
const ObjectPlayer ObjectID = "player"

// ClipID names a one-shot sound.
type ClipID string

// Position is a playback position hint for one-shot sounds.
type Position struct {
	X, Y, Z float64
}

// LoadMode selects how a level is added to the running scene.
type LoadMode int

const (
	// LoadAdditive adds the level next to persistent scene content (HUD, menus).
	LoadAdditive LoadMode = iota
	// LoadSingle replaces everything.
	LoadSingle
)

// Presentation is the display surface the controller writes through.
// Writing to a panel or object the implementation does not have is a no-op.
type Presentation interface {
	SetText(sink SinkID, value string)
	SetPanelVisible(panel PanelID, visible bool)
	SetObjectActive(object ObjectID, active bool)
	// HasSink reports whether a text sink is wired. Checked once at construction.
	HasSink(sink SinkID) bool
}

// LevelLoader loads and unloads levels. Calls return once the request is
// issued; completion is not reported back to the controller. Unloading a
// level that is not loaded must be a no-op.
type LevelLoader interface {
	Load(levelID string, mode LoadMode) error
	Unload(levelID string) error
	UnloadAsync(levelID string) error
}

// AmbientTrack is the looping background track used for fade-waits.
type AmbientTrack interface {
	Volume() float64
	SetVolume(v float64)
}

// Audio plays one-shot clips and exposes the ambient track, if any.
type Audio interface {
	PlayOneShot(clip ClipID, at Position)
	Ambient() (AmbientTrack, bool)
}

// Ports bundles the collaborators the controller drives. Presentation and
// Levels are required; Audio is optional.
type Ports struct {
	Presentation Presentation
	Levels       LevelLoader
	Audio        Audio
}
