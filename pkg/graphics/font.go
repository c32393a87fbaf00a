package graphics

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Font wraps a fixed-size font face with the metrics layout needs.
type Font struct {
	// Name identifies the font in theme files.
	Name string
	// Face renders and measures glyphs.
	Face font.Face
}

// NewFont creates a named font from a face.
func NewFont(name string, face font.Face) *Font {
	return &Font{Name: name, Face: face}
}

// Measure returns the bounding box size of a single line of text.
func (f *Font) Measure(text string) Size {
	if f == nil || f.Face == nil {
		return Size{}
	}
	return Size{
		Width:  font.MeasureString(f.Face, text).Ceil(),
		Height: f.LineHeight(),
	}
}

// LineHeight returns the recommended height of one line of text.
func (f *Font) LineHeight() int {
	if f == nil || f.Face == nil {
		return 0
	}
	return f.Face.Metrics().Height.Ceil()
}

// Ascent returns the distance from the top of a line to its baseline.
func (f *Font) Ascent() int {
	if f == nil || f.Face == nil {
		return 0
	}
	return f.Face.Metrics().Ascent.Ceil()
}

// Dot returns the drawing origin (baseline start) for text whose bounding box
// starts at top-left p.
func (f *Font) Dot(p Point) fixed.Point26_6 {
	return fixed.P(p.X, p.Y+f.Ascent())
}
