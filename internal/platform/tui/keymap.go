package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/levelrun/internal/core"
)

// KeyMap defines the key bindings of the play screen.
type KeyMap struct {
	Start     key.Binding
	Collect   key.Binding
	Hit       key.Binding
	Restart   key.Binding
	Back      key.Binding
	Quit      key.Binding
	GameOver  key.Binding
	Death     key.Binding
	BeatLevel key.Binding
	Interrupt key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Collect, k.Hit, k.Restart, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Collect, k.Hit},
		{k.Restart, k.Back, k.Quit},
		{k.GameOver, k.Death, k.BeatLevel},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Collect: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "collect"),
		),
		Hit: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "get hit"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		GameOver: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "force game over"),
		),
		Death: key.NewBinding(
			key.WithKeys("delete"),
			key.WithHelp("del", "force death"),
		),
		BeatLevel: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "beat level"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether the program must stop
// immediately without going through the controller.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, interrupt bool) {
	switch {
	case key.Matches(msg, km.keys.Interrupt):
		return core.ActionNone, true
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, false
	case key.Matches(msg, km.keys.GameOver):
		return core.ActionForceGameOver, false
	case key.Matches(msg, km.keys.Death):
		return core.ActionForceDeath, false
	case key.Matches(msg, km.keys.BeatLevel):
		return core.ActionForceBeatLevel, false
	case key.Matches(msg, km.keys.Start):
		return core.ActionConfirm, false
	case key.Matches(msg, km.keys.Collect):
		return core.ActionCollect, false
	case key.Matches(msg, km.keys.Hit):
		return core.ActionHit, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was an interrupt.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, interrupt := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return interrupt
}
