package widgets

import (
	"github.com/ElectronicKiwi/kolibri/pkg/graphics"
	"github.com/ElectronicKiwi/kolibri/pkg/smartstate"
	"github.com/ElectronicKiwi/kolibri/pkg/ui"
)

// labelCode is the only visual state a label has.
const labelCode = 1

// Label is a line of static text. It repaints only when its cell is unset,
// so reset the cell when the text changes.
type Label struct {
	text  string
	state smartstate.Container
	color *graphics.Color
	font  *graphics.Font
}

// LabelOf creates a label in the theme's text color and font.
func LabelOf(text string) Label {
	return Label{text: text}
}

// WithSmartstate returns a copy of the label backed by cell.
func (l Label) WithSmartstate(cell *smartstate.Smartstate) Label {
	l.state = smartstate.Borrow(cell)
	return l
}

// WithColor returns a copy of the label drawn in c.
func (l Label) WithColor(c graphics.Color) Label {
	l.color = &c
	return l
}

// WithFont returns a copy of the label drawn in f.
func (l Label) WithFont(f *graphics.Font) Label {
	l.font = f
	return l
}

func (l Label) WidgetName() string { return "Label" }

func (l Label) Draw(u *ui.Ui) (ui.Response, error) {
	style := u.Style()
	f := l.font
	if f == nil {
		f = style.DefaultFont
	}
	color := style.TextColor
	if l.color != nil {
		color = *l.color
	}

	alloc, err := u.AllocateSpace(f.Measure(l.text))
	if err != nil {
		return ui.Response{}, err
	}
	resp := ui.Response{Area: alloc.Area, Interaction: alloc.Interaction}

	candidate := smartstate.State(labelCode)
	if !l.state.ShouldDraw(candidate) {
		return resp, nil
	}
	err = u.Paint(alloc.Area, func(c graphics.Canvas) error {
		if err := c.Clear(style.BackgroundColor); err != nil {
			return err
		}
		return c.DrawText(l.text, alloc.Area.TopLeft(), graphics.TextStyle{Font: f, Color: color})
	})
	if err != nil {
		l.state.Invalidate()
		return resp, err
	}
	l.state.Commit(candidate)
	resp.Redrawn = true
	return resp, nil
}
