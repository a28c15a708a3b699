package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/levelrun/internal/core"
	"github.com/vovakirdan/levelrun/internal/flow"
)

func TestPanelsSinks(t *testing.T) {
	p := NewPanels()
	for _, s := range allSinks {
		if !p.HasSink(s) {
			t.Errorf("default panels should wire %s", s)
		}
	}

	partial := NewPanels(flow.SinkTitle)
	if partial.HasSink(flow.SinkTimerValue) {
		t.Error("partial panels should not wire the timer")
	}
	partial.SetText(flow.SinkTimerValue, "12")
	if got := partial.Text(flow.SinkTimerValue); got != "" {
		t.Errorf("unwired sink stored %q", got)
	}
}

func TestPanelsDrawMenu(t *testing.T) {
	p := NewPanels()
	p.SetText(flow.SinkTitle, "Level Run")
	p.SetText(flow.SinkCopyright, "(c) 2026 Somebody")
	p.SetPanelVisible(flow.PanelMenu, true)
	p.SetPanelVisible(flow.PanelFooter, true)

	s := core.NewScreen(40, 12)
	p.Draw(s)
	out := s.String()

	for _, want := range []string{"Level Run", menuHint, "(c) 2026 Somebody"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu screen missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(s.Row(11), "(c) 2026") {
		t.Errorf("copyright should be on the last row, got %q", s.Row(11))
	}
}

func TestPanelsDrawHUD(t *testing.T) {
	p := NewPanels()
	p.SetText(flow.SinkScoreLabel, "Score: ")
	p.SetText(flow.SinkScoreValue, "40")
	p.SetText(flow.SinkLivesLabel, "Lives: ")
	p.SetText(flow.SinkLivesValue, "2")
	p.SetPanelVisible(flow.PanelHUD, true)

	s := core.NewScreen(40, 10)
	p.Draw(s)
	top := s.Row(0)

	if !strings.Contains(top, "Score: 40") || !strings.Contains(top, "Lives: 2") {
		t.Errorf("HUD row = %q", top)
	}
	if strings.Contains(top, "Timer") {
		t.Errorf("untimed HUD should not show a timer: %q", top)
	}

	p.SetText(flow.SinkTimerLabel, "Timer: ")
	p.SetText(flow.SinkTimerValue, "9")
	s.Clear()
	p.Draw(s)
	if !strings.HasSuffix(strings.TrimRight(s.Row(0), " "), "Timer: 9") {
		t.Errorf("timer should be right aligned: %q", s.Row(0))
	}
}

func TestPanelsDrawEndScreen(t *testing.T) {
	p := NewPanels()
	p.SetText(flow.SinkGameOver, "Game Over")
	p.SetText(flow.SinkMessage, "You Win")
	p.SetPanelVisible(flow.PanelEndScreen, true)

	s := core.NewScreen(40, 12)
	p.Draw(s)
	out := s.String()

	if !strings.Contains(out, "Game Over") || !strings.Contains(out, "You Win") {
		t.Errorf("end screen missing text:\n%s", out)
	}
	if !strings.Contains(out, "┌") {
		t.Errorf("end screen should be boxed:\n%s", out)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")

	out := RenderScreen(s)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
	if !strings.Contains(out, "cd") {
		t.Errorf("rendered output lost text: %q", out)
	}
}
