package widgets

import (
	"github.com/ElectronicKiwi/kolibri/pkg/errors"
	"github.com/ElectronicKiwi/kolibri/pkg/graphics"
	"github.com/ElectronicKiwi/kolibri/pkg/icon"
	"github.com/ElectronicKiwi/kolibri/pkg/smartstate"
	"github.com/ElectronicKiwi/kolibri/pkg/theme"
	"github.com/ElectronicKiwi/kolibri/pkg/ui"
)

// IconButton is a clickable button showing an icon, an optional label below
// it, or only a label (see [ButtonOf]).
//
// The button is square by default and grows to fit its label. Its height is
// at least the theme's default widget height and the current row height, so
// buttons added side by side line up.
type IconButton struct {
	content  content
	state    smartstate.Container
	minWidth int
	hasMin   bool
	enabled  bool
	ctx      theme.Context
	modified bool
}

// IconButtonOf creates an enabled icon-only button in the normal context.
func IconButtonOf(ic icon.Icon) IconButton {
	return IconButton{content: iconContent{icon: ic}, enabled: true}
}

// ButtonOf creates an enabled text-only button in the normal context.
func ButtonOf(label string) IconButton {
	return IconButton{content: labelContent{label: label}, enabled: true}
}

// WithLabel returns a copy of the button with a label under the icon. On a
// text-only button it replaces the text.
func (b IconButton) WithLabel(label string) IconButton {
	switch c := b.content.(type) {
	case iconContent:
		b.content = iconLabelContent{icon: c.icon, label: label}
	case iconLabelContent:
		c.label = label
		b.content = c
	case labelContent:
		b.content = labelContent{label: label}
	}
	return b
}

// WithSmartstate returns a copy of the button that remembers its last drawn
// state in cell. A nil cell makes the button repaint every frame.
func (b IconButton) WithSmartstate(cell *smartstate.Smartstate) IconButton {
	b.state = smartstate.Borrow(cell)
	return b
}

// WithMinWidth returns a copy of the button that is at least width pixels
// wide. The content width still wins when it is larger.
func (b IconButton) WithMinWidth(width int) IconButton {
	b.minWidth = width
	b.hasMin = true
	b.modified = true
	return b
}

// WithAutoWidth returns a copy of the button sized by its content only.
func (b IconButton) WithAutoWidth() IconButton {
	b.minWidth = 0
	b.hasMin = false
	b.modified = true
	return b
}

// WithEnabled returns a copy of the button with the given enabled state.
// A disabled button never reports clicks and ignores hover.
func (b IconButton) WithEnabled(enabled bool) IconButton {
	b.enabled = enabled
	b.modified = true
	return b
}

// WithContext returns a copy of the button drawn in the given style context.
func (b IconButton) WithContext(ctx theme.Context) IconButton {
	b.ctx = ctx
	b.modified = true
	return b
}

// WidgetName identifies the widget in error reports.
func (b IconButton) WidgetName() string {
	if b.content == nil {
		return "IconButton"
	}
	return b.content.name()
}

// Size returns the size the button will request in u's current row.
func (b IconButton) Size(u *ui.Ui) graphics.Size {
	style := u.Style()
	size := b.content.measure(metricsOf(style))
	if b.hasMin && b.minWidth > size.Width {
		size.Width = b.minWidth
	}
	size.Height = max(style.DefaultWidgetHeight, u.RowHeight(), size.Height)
	return size
}

func (b IconButton) key(alloc ui.Allocation) smartstate.Key {
	return smartstate.Key{
		Context:  b.ctx,
		Enabled:  b.enabled,
		Modified: b.modified,
		Bucket:   alloc.Interaction.Bucket(),
	}
}

func (b IconButton) Draw(u *ui.Ui) (ui.Response, error) {
	alloc, err := u.AllocateSpace(b.Size(u))
	if err != nil {
		return ui.Response{}, b.fail(err)
	}
	ia := alloc.Interaction
	resp := ui.Response{
		Area:        alloc.Area,
		Interaction: ia,
		Clicked:     b.enabled && ia.Clicked(),
		Down:        b.enabled && ia.Down(),
	}

	candidate := b.key(alloc).State()
	if !b.state.ShouldDraw(candidate) {
		return resp, nil
	}

	style := u.Style()
	ws := style.Resolve(b.ctx, b.enabled, ia.Bucket())
	m := metricsOf(style)
	err = u.Paint(alloc.Area, func(c graphics.Canvas) error {
		if err := c.DrawRoundedRect(alloc.Area, style.ButtonCornerRadius, ws.Paint()); err != nil {
			return err
		}
		return b.content.paint(c, alloc.Area, m, ws.ForegroundColor)
	})
	if err != nil {
		// Part of the widget may be on screen; force a full repaint.
		b.state.Invalidate()
		return resp, b.fail(err)
	}
	b.state.Commit(candidate)
	resp.Redrawn = true
	return resp, nil
}

func (b IconButton) fail(err error) error {
	var ke *errors.KolibriError
	if errors.As(err, &ke) && ke.Widget == "" {
		ke.Widget = b.WidgetName()
	}
	return err
}
