package widgets

import (
	"github.com/ElectronicKiwi/kolibri/pkg/graphics"
	"github.com/ElectronicKiwi/kolibri/pkg/ui"
)

// Spacer reserves empty space. It never draws.
type Spacer struct {
	Size graphics.Size
}

// SpacerOf creates a spacer of the given size.
func SpacerOf(width, height int) Spacer {
	return Spacer{Size: graphics.Sz(width, height)}
}

func (s Spacer) WidgetName() string { return "Spacer" }

func (s Spacer) Draw(u *ui.Ui) (ui.Response, error) {
	alloc, err := u.AllocateSpace(s.Size)
	if err != nil {
		return ui.Response{}, err
	}
	return ui.Response{Area: alloc.Area, Interaction: alloc.Interaction}, nil
}
