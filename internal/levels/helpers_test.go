package levels

import (
	"github.com/vovakirdan/levelrun/internal/core"
	"github.com/vovakirdan/levelrun/internal/flow"
)

type nopPresentation struct{}

func (nopPresentation) SetText(flow.SinkID, string) {}
func (nopPresentation) SetPanelVisible(flow.PanelID, bool) {}
func (nopPresentation) SetObjectActive(flow.ObjectID, bool) {}
func (nopPresentation) HasSink(flow.SinkID) bool { return true }

func emptyFrame() core.InputFrame {
	return core.NewInputFrame()
}
