package input

import "github.com/ElectronicKiwi/kolibri/pkg/graphics"

// Sample is one pointer reading, taken once per frame.
type Sample struct {
	// Pos is the pointer position. Ignored when Present is false.
	Pos graphics.Point
	// Down reports whether the button is held (or the panel is touched).
	Down bool
	// Present reports whether the pointer has a position at all. A
	// resistive touch panel reports no position while nothing touches it.
	Present bool
}

// None is the sample of a lifted touch with no position.
func None() Sample {
	return Sample{}
}

// HoverAt returns a button-up sample at p.
func HoverAt(p graphics.Point) Sample {
	return Sample{Pos: p, Present: true}
}

// DownAt returns a button-down sample at p.
func DownAt(p graphics.Point) Sample {
	return Sample{Pos: p, Down: true, Present: true}
}

// normalize makes Down imply Present.
func (s Sample) normalize() Sample {
	if s.Down {
		s.Present = true
	}
	if !s.Present {
		s.Pos = graphics.Point{}
	}
	return s
}

// Frame is the pointer state a frame is evaluated against.
type Frame struct {
	Current  Sample
	Previous Sample
	// Origin is where the current press began. Valid while a press is held
	// and on the frame it is released.
	Origin graphics.Point
	// Moved reports whether the pointer left Origin at any point since the
	// press began.
	Moved bool
}

// JustPressed reports a button-up to button-down transition.
func (f Frame) JustPressed() bool {
	return f.Current.Down && !f.Previous.Down
}

// JustReleased reports a button-down to button-up transition.
func (f Frame) JustReleased() bool {
	return f.Previous.Down && !f.Current.Down
}

// ReleasePoint is where a release is judged: the current position, or the
// last known one when the release sample carries no position.
func (f Frame) ReleasePoint() graphics.Point {
	if f.Current.Present {
		return f.Current.Pos
	}
	return f.Previous.Pos
}

// Tracker carries pointer state from one frame to the next.
// The zero value starts with the button up and no pointer.
type Tracker struct {
	prev   Sample
	origin graphics.Point
	moved  bool
}

// Advance records the sample for this frame and returns the frame to
// classify against.
func (t *Tracker) Advance(s Sample) Frame {
	s = s.normalize()
	switch {
	case s.Down && !t.prev.Down:
		t.origin = s.Pos
		t.moved = false
	case s.Down && s.Pos != t.origin:
		t.moved = true
	}
	f := Frame{Current: s, Previous: t.prev, Origin: t.origin, Moved: t.moved}
	t.prev = s
	return f
}

// Previous returns the last recorded sample.
func (t *Tracker) Previous() Sample {
	return t.prev
}

// Reset forgets all pointer history.
func (t *Tracker) Reset() {
	*t = Tracker{}
}
