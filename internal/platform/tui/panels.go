package tui

import (
	"github.com/vovakirdan/levelrun/internal/core"
	"github.com/vovakirdan/levelrun/internal/flow"
)

// menuHint is drawn under the credits while the main menu is up.
const menuHint = "Press Enter to start"

// allSinks lists every text sink the terminal layout can draw.
var allSinks = []flow.SinkID{
	flow.SinkTitle, flow.SinkCredits, flow.SinkCopyright,
	flow.SinkScoreLabel, flow.SinkScoreValue,
	flow.SinkLivesLabel, flow.SinkLivesValue,
	flow.SinkTimerLabel, flow.SinkTimerValue,
	flow.SinkGameOver, flow.SinkMessage,
}

// Panels implements flow.Presentation for the terminal. It keeps the text
// and visibility written by the controller and lays them out on Draw.
type Panels struct {
	sinks   map[flow.SinkID]bool
	texts   map[flow.SinkID]string
	visible map[flow.PanelID]bool
	objects map[flow.ObjectID]bool
}

// NewPanels creates a presentation wired with the given sinks.
// With no arguments every sink of the terminal layout is wired.
func NewPanels(sinks ...flow.SinkID) *Panels {
	if len(sinks) == 0 {
		sinks = allSinks
	}
	p := &Panels{
		sinks:   make(map[flow.SinkID]bool, len(sinks)),
		texts:   make(map[flow.SinkID]string),
		visible: make(map[flow.PanelID]bool),
		objects: make(map[flow.ObjectID]bool),
	}
	for _, s := range sinks {
		p.sinks[s] = true
	}
	return p
}

// SetText stores the text for a wired sink. Unwired sinks are ignored.
func (p *Panels) SetText(sink flow.SinkID, value string) {
	if !p.sinks[sink] {
		return
	}
	p.texts[sink] = value
}

// SetPanelVisible shows or hides a panel.
func (p *Panels) SetPanelVisible(panel flow.PanelID, visible bool) {
	p.visible[panel] = visible
}

// SetObjectActive activates or deactivates a scene object.
func (p *Panels) SetObjectActive(object flow.ObjectID, active bool) {
	p.objects[object] = active
}

// HasSink reports whether the sink is wired.
func (p *Panels) HasSink(sink flow.SinkID) bool {
	return p.sinks[sink]
}

// Text returns the last text written to a sink.
func (p *Panels) Text(sink flow.SinkID) string {
	return p.texts[sink]
}

// Visible reports whether a panel is shown.
func (p *Panels) Visible(panel flow.PanelID) bool {
	return p.visible[panel]
}

// ObjectActive reports whether a scene object is active.
func (p *Panels) ObjectActive(object flow.ObjectID) bool {
	return p.objects[object]
}

// Draw lays out the visible panels on the screen. The scene, if any, must
// be drawn first; panels are drawn on top of it.
func (p *Panels) Draw(s *core.Screen) {
	area := s.Bounds()
	if area.W <= 0 || area.H <= 0 {
		return
	}

	if p.visible[flow.PanelHUD] {
		p.drawHUD(s, area)
	}
	if p.visible[flow.PanelMenu] {
		y := area.H / 3
		s.DrawTextCentered(area, y, p.texts[flow.SinkTitle], core.ColorBrightYellow)
		s.DrawTextCentered(area, y+2, p.texts[flow.SinkCredits], core.ColorGray)
		s.DrawTextCentered(area, y+4, menuHint, core.ColorBrightWhite)
	}
	if p.visible[flow.PanelEndScreen] {
		box := area.CenterIn(min(area.W, 30), min(area.H, 5))
		s.FillRect(box, ' ')
		s.DrawBox(box, core.ColorRed)
		s.DrawTextCentered(box, box.Y+1, p.texts[flow.SinkGameOver], core.ColorBrightRed)
		s.DrawTextCentered(box, box.Y+3, p.texts[flow.SinkMessage], core.ColorBrightWhite)
	} else if msg := p.texts[flow.SinkMessage]; msg != "" {
		s.DrawTextCentered(area, area.H/2, msg, core.ColorBrightWhite)
	}
	if p.visible[flow.PanelFooter] {
		s.DrawTextCentered(area, area.H-1, p.texts[flow.SinkCopyright], core.ColorGray)
	}
}

// drawHUD draws score and lives on the left and the timer on the right of
// the top row.
func (p *Panels) drawHUD(s *core.Screen, area core.Rect) {
	score := p.texts[flow.SinkScoreLabel] + p.texts[flow.SinkScoreValue]
	lives := p.texts[flow.SinkLivesLabel] + p.texts[flow.SinkLivesValue]
	s.DrawTextColored(1, 0, score, core.ColorBrightGreen)
	s.DrawTextColored(3+len([]rune(score)), 0, lives, core.ColorBrightCyan)

	if value, ok := p.texts[flow.SinkTimerValue]; ok {
		timer := p.texts[flow.SinkTimerLabel] + value
		s.DrawTextColored(area.W-1-len([]rune(timer)), 0, timer, core.ColorYellow)
	}
}
