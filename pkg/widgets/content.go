package widgets

import (
	"github.com/ElectronicKiwi/kolibri/pkg/graphics"
	"github.com/ElectronicKiwi/kolibri/pkg/icon"
	"github.com/ElectronicKiwi/kolibri/pkg/theme"
)

// metrics are the style values button content is laid out with.
type metrics struct {
	padding graphics.Size
	border  int
	font    *graphics.Font
}

func metricsOf(style *theme.Style) metrics {
	return metrics{
		padding: style.Spacing.ButtonPadding,
		border:  style.NormalWidget.Normal.BorderWidth,
		font:    style.DefaultFont,
	}
}

// content is what a button shows inside its background.
type content interface {
	// measure returns the content-driven minimum size of the button.
	measure(m metrics) graphics.Size
	// paint draws the content into area in color fg.
	paint(c graphics.Canvas, area graphics.Rect, m metrics, fg graphics.Color) error
	name() string
}

type iconContent struct {
	icon icon.Icon
}

func (ic iconContent) measure(m metrics) graphics.Size {
	h := ic.icon.Size().Height + 2*m.padding.Height + 2*m.border
	w := max(h, ic.icon.Size().Width+2*m.padding.Width+2*m.border)
	return graphics.Sz(w, h)
}

func (ic iconContent) paint(c graphics.Canvas, area graphics.Rect, m metrics, fg graphics.Color) error {
	return drawIcon(c, ic.icon, area, 0, fg)
}

func (iconContent) name() string { return "IconButton" }

type iconLabelContent struct {
	icon  icon.Icon
	label string
}

func (il iconLabelContent) measure(m metrics) graphics.Size {
	is := il.icon.Size()
	ls := m.font.Measure(il.label)
	h := is.Height + 2*m.padding.Height + 2*m.border
	w := max(h, is.Width+2*m.padding.Width+2*m.border)
	h += m.padding.Height + ls.Height
	w = max(w, ls.Width+2*m.padding.Width+2*m.border)
	return graphics.Sz(w, h)
}

func (il iconLabelContent) paint(c graphics.Canvas, area graphics.Rect, m metrics, fg graphics.Color) error {
	ls := m.font.Measure(il.label)
	if err := drawIcon(c, il.icon, area, ls.Height+m.padding.Height, fg); err != nil {
		return err
	}
	at := graphics.Pt(
		area.Left+(area.Width()-ls.Width)/2,
		area.Bottom-ls.Height-m.padding.Height-m.border,
	)
	return c.DrawText(il.label, at, graphics.TextStyle{Font: m.font, Color: fg})
}

func (iconLabelContent) name() string { return "IconButton" }

type labelContent struct {
	label string
}

func (lc labelContent) measure(m metrics) graphics.Size {
	ls := m.font.Measure(lc.label)
	return graphics.Sz(
		ls.Width+2*m.padding.Width+2*m.border,
		ls.Height+2*m.padding.Height+2*m.border,
	)
}

func (lc labelContent) paint(c graphics.Canvas, area graphics.Rect, m metrics, fg graphics.Color) error {
	ls := m.font.Measure(lc.label)
	at := graphics.Pt(
		area.Left+(area.Width()-ls.Width)/2,
		area.Top+(area.Height()-ls.Height)/2,
	)
	return c.DrawText(lc.label, at, graphics.TextStyle{Font: m.font, Color: fg})
}

func (labelContent) name() string { return "Button" }

// drawIcon centres ic horizontally and vertically in area minus a strip of
// reserved pixels at the bottom.
func drawIcon(c graphics.Canvas, ic icon.Icon, area graphics.Rect, reserved int, fg graphics.Color) error {
	is := ic.Size()
	at := graphics.Pt(
		area.Left+(area.Width()-is.Width)/2,
		area.Top+(area.Height()-is.Height-reserved)/2,
	)
	return ic.Tinted(fg).Draw(c, at)
}
