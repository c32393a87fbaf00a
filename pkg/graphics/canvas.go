package graphics

import (
	"errors"
	"image"
)

// Errors returned by Canvas implementations.
var (
	// ErrOutOfBounds is returned when a primitive does not fit the surface.
	ErrOutOfBounds = errors.New("primitive out of bounds")
	// ErrNoBatch is returned by EndBatch without a matching BeginBatch.
	ErrNoBatch = errors.New("no batch in progress")
	// ErrBatchOpen is returned by BeginBatch while another batch is open.
	ErrBatchOpen = errors.New("batch already in progress")
)

// Paint describes how a shape is filled and stroked. A transparent Fill or
// Stroke (or a zero StrokeWidth) skips that part.
type Paint struct {
	Fill        Color
	Stroke      Color
	StrokeWidth int
}

// TextStyle selects the font and color of a text run. Text is positioned by
// the top-left corner of its bounding box.
type TextStyle struct {
	Font  *Font
	Color Color
}

// Canvas is the drawing sink widgets render into.
//
// BeginBatch and EndBatch bracket the primitives of one widget redraw; on a
// display driver this maps to setting the controller's address window and
// flushing it. Every primitive reports failure as an error value.
type Canvas interface {
	// Size returns the drawable size in pixels.
	Size() Size

	// BeginBatch opens a redraw batch scoped to area.
	BeginBatch(area Rect) error

	// EndBatch closes the current batch.
	EndBatch() error

	// Clear fills the open batch area with c, or the whole surface when no
	// batch is open.
	Clear(c Color) error

	// DrawRect fills and/or strokes a rectangle.
	DrawRect(r Rect, paint Paint) error

	// DrawRoundedRect fills and/or strokes a rectangle with equal corner radii.
	DrawRoundedRect(r Rect, radius int, paint Paint) error

	// DrawImage blits img with its bounds' top-left corner at at.
	// Fully transparent pixels are skipped.
	DrawImage(img image.Image, at Point) error

	// DrawText draws a single line of text with its bounding box's top-left
	// corner at at.
	DrawText(text string, at Point, style TextStyle) error
}
