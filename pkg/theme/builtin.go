package theme

import (
	"sort"

	"github.com/ElectronicKiwi/kolibri/pkg/graphics"
)

// Bootstrap returns a high-contrast theme with Bootstrap-like primary and
// secondary colors.
func Bootstrap() *Style {
	white := graphics.ColorWhite
	black := graphics.ColorBlack
	primary := graphics.RGB(13, 110, 253)
	primaryHover := graphics.RGB(0x0B, 0x5E, 0xD7)
	primaryActive := graphics.RGB(10, 88, 202)
	primaryDisabled := graphics.RGB(0x13, 0x54, 0xB3)
	secondary := graphics.RGB(108, 117, 125)
	secondaryHover := graphics.RGB(92, 99, 106)
	secondaryActive := graphics.RGB(0x0A, 0x58, 0xCA)
	secondaryDisabled := graphics.RGB(81, 89, 95)

	return &Style{
		Name:            "bootstrap",
		BackgroundColor: black,
		TextColor:       white,
		DefaultFont:     FontInconsolata,
		NormalWidget: ContextStyle{
			Normal:   WidgetStyle{BorderWidth: 1, BorderColor: white, BackgroundColor: black, ForegroundColor: white},
			Hover:    WidgetStyle{BorderWidth: 1, BorderColor: white, BackgroundColor: graphics.ColorLightGray, ForegroundColor: black},
			Active:   WidgetStyle{BorderWidth: 0, BorderColor: white, BackgroundColor: white, ForegroundColor: black},
			Disabled: WidgetStyle{BorderWidth: 1, BorderColor: graphics.ColorDarkGray, BackgroundColor: black, ForegroundColor: graphics.ColorDarkGray},
		},
		PrimaryWidget: &ContextStyle{
			Normal:   solid(primary, white),
			Hover:    solid(primaryHover, white),
			Active:   solid(primaryActive, white),
			Disabled: solid(primaryDisabled, graphics.ColorLightGray),
		},
		SecondaryWidget: &ContextStyle{
			Normal:   solid(secondary, white),
			Hover:    solid(secondaryHover, white),
			Active:   solid(secondaryActive, white),
			Disabled: solid(secondaryDisabled, graphics.RGB(177, 179, 180)),
		},
		DefaultWidgetHeight: 16,
		Spacing: Spacing{
			ItemSpacing:         graphics.Sz(8, 4),
			ButtonPadding:       graphics.Sz(5, 5),
			DefaultPadding:      graphics.Sz(1, 1),
			WindowBorderPadding: graphics.Sz(3, 3),
		},
		ButtonCornerRadius: 5,
	}
}

// Medsize returns a dim theme tuned for mid-size RGB565 panels. Its grays
// are exact RGB565 values.
func Medsize() *Style {
	white := graphics.ColorWhite
	black := graphics.ColorBlack
	dark := graphics.FromRGB565(0x2104)
	darker := graphics.FromRGB565(0x1082)
	darkest := graphics.FromRGB565(0x0841)

	return &Style{
		Name:            "medsize",
		BackgroundColor: dark,
		TextColor:       white,
		DefaultFont:     Font7x13,
		NormalWidget: ContextStyle{
			Normal:   WidgetStyle{BorderWidth: 1, BorderColor: white, BackgroundColor: dark, ForegroundColor: white},
			Hover:    WidgetStyle{BorderWidth: 1, BorderColor: white, BackgroundColor: darkest, ForegroundColor: white},
			Active:   WidgetStyle{BorderWidth: 0, BorderColor: white, BackgroundColor: white, ForegroundColor: black},
			Disabled: WidgetStyle{BorderWidth: 1, BorderColor: graphics.ColorDarkGray, BackgroundColor: dark, ForegroundColor: graphics.ColorDarkGray},
		},
		PrimaryWidget: &ContextStyle{
			Normal:   WidgetStyle{BorderWidth: 0, BorderColor: darker, BackgroundColor: darker, ForegroundColor: white},
			Hover:    WidgetStyle{BorderWidth: 1, BorderColor: white, BackgroundColor: darkest, ForegroundColor: white},
			Active:   WidgetStyle{BorderWidth: 0, BorderColor: darker, BackgroundColor: darker, ForegroundColor: graphics.ColorDarkCyan},
			Disabled: WidgetStyle{BorderWidth: 0, BorderColor: graphics.ColorDarkGray, BackgroundColor: dark, ForegroundColor: graphics.ColorDarkGray},
		},
		SecondaryWidget: &ContextStyle{
			Normal:   WidgetStyle{BorderWidth: 0, BorderColor: black, BackgroundColor: black, ForegroundColor: white},
			Hover:    WidgetStyle{BorderWidth: 1, BorderColor: white, BackgroundColor: darkest, ForegroundColor: white},
			Active:   WidgetStyle{BorderWidth: 0, BorderColor: graphics.ColorCyan, BackgroundColor: graphics.ColorCyan, ForegroundColor: graphics.ColorDarkCyan},
			Disabled: WidgetStyle{BorderWidth: 0, BorderColor: graphics.ColorDarkGray, BackgroundColor: black, ForegroundColor: graphics.ColorDarkGray},
		},
		DefaultWidgetHeight: 16,
		Spacing: Spacing{
			ItemSpacing:         graphics.Sz(8, 4),
			ButtonPadding:       graphics.Sz(5, 5),
			DefaultPadding:      graphics.Sz(1, 1),
			WindowBorderPadding: graphics.Sz(3, 3),
		},
		ButtonCornerRadius: 3,
	}
}

func solid(bg, fg graphics.Color) WidgetStyle {
	return WidgetStyle{BorderWidth: 0, BorderColor: bg, BackgroundColor: bg, ForegroundColor: fg}
}

var builtins = map[string]func() *Style{
	"bootstrap": Bootstrap,
	"medsize":   Medsize,
}

// Builtin returns a fresh copy of a bundled theme.
func Builtin(name string) (*Style, bool) {
	fn, ok := builtins[name]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// BuiltinNames lists the bundled themes in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
