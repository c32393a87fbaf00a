package graphics

import "image"

// Point is a pixel position. X grows to the right, Y grows downwards.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  int
	Height int
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h int) Size {
	return Size{Width: w, Height: h}
}

// Max returns the component-wise maximum of s and o.
func (s Size) Max(o Size) Size {
	return Size{Width: max(s.Width, o.Width), Height: max(s.Height, o.Height)}
}

// Rect is a half-open pixel rectangle: Left and Top are inside,
// Right and Bottom are not.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height int) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromPointSize constructs a Rect from its top-left corner and size.
func RectFromPointSize(p Point, s Size) Rect {
	return RectFromLTWH(p.X, p.Y, s.Width, s.Height)
}

// Width returns the width of the rectangle.
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point {
	return Point{X: r.Left, Y: r.Top}
}

// Center returns the middle pixel of r, rounded towards the top-left.
func (r Rect) Center() Point {
	return Point{X: r.Left + (r.Width()-1)/2, Y: r.Top + (r.Height()-1)/2}
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// ContainsRect reports whether o lies entirely inside r.
// An empty o is contained by any r.
func (r Rect) ContainsRect(o Rect) bool {
	if o.IsEmpty() {
		return true
	}
	return o.Left >= r.Left && o.Top >= r.Top && o.Right <= r.Right && o.Bottom <= r.Bottom
}

// Intersect returns the intersection of two rectangles.
// Returns empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := max(r.Left, other.Left)
	top := max(r.Top, other.Top)
	right := min(r.Right, other.Right)
	bottom := min(r.Bottom, other.Bottom)
	if left >= right || top >= bottom {
		return Rect{}
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Inset shrinks the rectangle by dx on the left and right and dy on the
// top and bottom. The result is clamped to an empty rect at the centre.
func (r Rect) Inset(dx, dy int) Rect {
	out := Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right - dx, Bottom: r.Bottom - dy}
	if out.Right < out.Left {
		mid := (r.Left + r.Right) / 2
		out.Left, out.Right = mid, mid
	}
	if out.Bottom < out.Top {
		mid := (r.Top + r.Bottom) / 2
		out.Top, out.Bottom = mid, mid
	}
	return out
}

// Union returns the smallest rect containing both r and other.
// Empty rectangles are ignored.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return Rect{
		Left:   min(r.Left, other.Left),
		Top:    min(r.Top, other.Top),
		Right:  max(r.Right, other.Right),
		Bottom: max(r.Bottom, other.Bottom),
	}
}

// Image converts r to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Right, r.Bottom)
}

// RectFromImage converts an image.Rectangle to a Rect.
func RectFromImage(r image.Rectangle) Rect {
	return Rect{Left: r.Min.X, Top: r.Min.Y, Right: r.Max.X, Bottom: r.Max.Y}
}
