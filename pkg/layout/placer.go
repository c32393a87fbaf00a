// Package layout hands out widget rectangles in traversal order.
//
// A [Placer] keeps a cursor that walks rows left to right and top to bottom
// inside fixed bounds. It does no measuring of its own: widgets compute
// their size and ask for it with [Placer.Alloc].
package layout

import (
	"fmt"

	"github.com/ElectronicKiwi/kolibri/pkg/errors"
	"github.com/ElectronicKiwi/kolibri/pkg/graphics"
)

// Placer is a row-wise allocation cursor. It is not safe for concurrent use;
// one Placer serves one frame at a time.
type Placer struct {
	bounds  graphics.Rect
	spacing graphics.Size
	wrap    bool

	cursor    graphics.Point
	rowHeight int
	rowItems  int
}

// NewPlacer creates a placer for bounds. Items in a row are separated by
// spacing.Width and rows by spacing.Height. With wrap enabled an item that
// does not fit the current row moves to the next one.
func NewPlacer(bounds graphics.Rect, spacing graphics.Size, wrap bool) *Placer {
	p := &Placer{bounds: bounds, spacing: spacing, wrap: wrap}
	p.Reset()
	return p
}

// Reset moves the cursor back to the top-left corner of the bounds.
func (p *Placer) Reset() {
	p.cursor = p.bounds.TopLeft()
	p.rowHeight = 0
	p.rowItems = 0
}

// Bounds returns the drawable area.
func (p *Placer) Bounds() graphics.Rect {
	return p.bounds
}

// Cursor returns the top-left corner of the current row's free space.
func (p *Placer) Cursor() graphics.Point {
	return p.cursor
}

// RowHeight returns the height of the tallest item in the current row.
func (p *Placer) RowHeight() int {
	return p.rowHeight
}

// Remaining returns the free area of the current row and everything below.
func (p *Placer) Remaining() graphics.Rect {
	x := p.cursor.X
	if p.rowItems > 0 {
		x += p.spacing.Width
	}
	return graphics.Rect{Left: x, Top: p.cursor.Y, Right: p.bounds.Right, Bottom: p.bounds.Bottom}.Intersect(p.bounds)
}

// Alloc reserves a rectangle of the given size in the current row. On
// failure it returns an AllocationExhausted error and leaves the cursor
// where it was.
func (p *Placer) Alloc(size graphics.Size) (graphics.Rect, error) {
	if size.Width < 0 || size.Height < 0 {
		return graphics.Rect{}, p.exhausted(size, "negative size")
	}
	if size.Width > p.bounds.Width() || size.Height > p.bounds.Height() {
		return graphics.Rect{}, p.exhausted(size, "larger than bounds")
	}

	cursor, rowHeight, rowItems := p.cursor, p.rowHeight, p.rowItems
	x := cursor.X
	if rowItems > 0 {
		x += p.spacing.Width
	}
	if x+size.Width > p.bounds.Right {
		if !p.wrap || rowItems == 0 {
			return graphics.Rect{}, p.exhausted(size, "row overflow")
		}
		cursor = graphics.Pt(p.bounds.Left, cursor.Y+rowHeight+p.spacing.Height)
		rowHeight, rowItems = 0, 0
		x = cursor.X
	}
	if cursor.Y+size.Height > p.bounds.Bottom {
		return graphics.Rect{}, p.exhausted(size, "below bottom edge")
	}

	r := graphics.RectFromLTWH(x, cursor.Y, size.Width, size.Height)
	p.cursor = graphics.Pt(r.Right, cursor.Y)
	p.rowHeight = max(rowHeight, size.Height)
	p.rowItems = rowItems + 1
	return r, nil
}

// NewRow moves the cursor to the start of the next row. It does nothing
// when the current row is empty.
func (p *Placer) NewRow() {
	if p.rowItems == 0 {
		return
	}
	p.cursor = graphics.Pt(p.bounds.Left, p.cursor.Y+p.rowHeight+p.spacing.Height)
	p.rowHeight = 0
	p.rowItems = 0
}

func (p *Placer) exhausted(size graphics.Size, reason string) *errors.KolibriError {
	return errors.New("layout.Placer.Alloc", errors.KindAllocationExhausted,
		fmt.Errorf("%w: %dx%d at (%d,%d): %s", errors.ErrAllocationExhausted,
			size.Width, size.Height, p.cursor.X, p.cursor.Y, reason))
}
