// Package theme resolves widget colors from a style context and an
// interaction bucket.
//
// A [Style] holds one [ContextStyle] per [Context]; each ContextStyle holds a
// [WidgetStyle] per visual state. [Style.Resolve] is total: a missing
// context falls back to the normal one and is reported, never failed.
package theme

import (
	"fmt"
	"sync"

	"github.com/ElectronicKiwi/kolibri/pkg/errors"
	"github.com/ElectronicKiwi/kolibri/pkg/graphics"
	"github.com/ElectronicKiwi/kolibri/pkg/input"
)

// Context selects a style grouping independent of interaction state.
type Context int

const (
	ContextNormal Context = iota
	ContextPrimary
	ContextSecondary
)

func (c Context) String() string {
	switch c {
	case ContextNormal:
		return "normal"
	case ContextPrimary:
		return "primary"
	case ContextSecondary:
		return "secondary"
	default:
		return fmt.Sprintf("Context(%d)", int(c))
	}
}

// WidgetStyle is the look of a widget in one state.
type WidgetStyle struct {
	BorderWidth     int            `yaml:"border_width"`
	BorderColor     graphics.Color `yaml:"border_color"`
	BackgroundColor graphics.Color `yaml:"background_color"`
	ForegroundColor graphics.Color `yaml:"foreground_color"`
}

// Paint returns the background paint for the style.
func (w WidgetStyle) Paint() graphics.Paint {
	return graphics.Paint{
		Fill:        w.BackgroundColor,
		Stroke:      w.BorderColor,
		StrokeWidth: w.BorderWidth,
	}
}

// ContextStyle holds a WidgetStyle for every visual state of one context.
type ContextStyle struct {
	Normal   WidgetStyle `yaml:"normal"`
	Hover    WidgetStyle `yaml:"hover"`
	Active   WidgetStyle `yaml:"active"`
	Disabled WidgetStyle `yaml:"disabled"`
}

// For returns the state style for an enabled flag and bucket. Disabled
// overrides the bucket.
func (c ContextStyle) For(enabled bool, bucket input.Bucket) WidgetStyle {
	if !enabled {
		return c.Disabled
	}
	switch bucket {
	case input.BucketHover:
		return c.Hover
	case input.BucketActive:
		return c.Active
	default:
		return c.Normal
	}
}

// Spacing holds the process-wide spacing constants.
type Spacing struct {
	ItemSpacing         graphics.Size `yaml:"item_spacing"`
	ButtonPadding       graphics.Size `yaml:"button_padding"`
	DefaultPadding      graphics.Size `yaml:"default_padding"`
	WindowBorderPadding graphics.Size `yaml:"window_border_padding"`
}

// Style is a complete theme.
type Style struct {
	Name                string
	BackgroundColor     graphics.Color
	TextColor           graphics.Color
	DefaultFont         *graphics.Font
	NormalWidget        ContextStyle
	PrimaryWidget       *ContextStyle
	SecondaryWidget     *ContextStyle
	DefaultWidgetHeight int
	Spacing             Spacing
	ButtonCornerRadius  int

	// reported records contexts whose fallback was already reported.
	// Guarded by fallbackMu.
	reported map[Context]bool
}

// Context returns the ContextStyle for ctx. When the theme has no entry for
// ctx it returns the normal context together with an
// errors.ErrInvalidStyleContext error.
func (s *Style) Context(ctx Context) (ContextStyle, error) {
	var cs *ContextStyle
	switch ctx {
	case ContextNormal:
		return s.NormalWidget, nil
	case ContextPrimary:
		cs = s.PrimaryWidget
	case ContextSecondary:
		cs = s.SecondaryWidget
	}
	if cs == nil {
		return s.NormalWidget, &errors.KolibriError{
			Op:   "theme.Style.Context",
			Kind: errors.KindInvalidStyleContext,
			Err:  fmt.Errorf("%w: theme %q has no %s entry", errors.ErrInvalidStyleContext, s.Name, ctx),
		}
	}
	return *cs, nil
}

// ContextOrNormal returns the ContextStyle for ctx, falling back to the
// normal context. The first fallback per style and context is reported to
// the error handler.
func (s *Style) ContextOrNormal(ctx Context) ContextStyle {
	cs, err := s.Context(ctx)
	if err != nil {
		s.reportFallback(ctx, err)
	}
	return cs
}

// Resolve returns the border width and colors for a widget. It is total:
// disabled always resolves to the disabled style, and a missing context
// resolves through the normal context.
func (s *Style) Resolve(ctx Context, enabled bool, bucket input.Bucket) WidgetStyle {
	return s.ContextOrNormal(ctx).For(enabled, bucket)
}

var fallbackMu sync.Mutex

func (s *Style) reportFallback(ctx Context, err error) {
	fallbackMu.Lock()
	seen := s.reported[ctx]
	if !seen {
		if s.reported == nil {
			s.reported = map[Context]bool{}
		}
		s.reported[ctx] = true
	}
	fallbackMu.Unlock()
	if seen {
		return
	}
	var ke *errors.KolibriError
	if errors.As(err, &ke) {
		errors.Report(ke)
	}
}
