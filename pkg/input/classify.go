package input

import "github.com/ElectronicKiwi/kolibri/pkg/graphics"

// DragPolicy decides which widget follows a held pointer.
type DragPolicy int

const (
	// FollowPointer judges every frame by where the pointer is now. A press
	// that slides onto another widget presses it on the first frame inside
	// and drags it after that. The release clicks whatever is under the
	// pointer.
	FollowPointer DragPolicy = iota
	// CapturePress binds the press to the widget it started on. That widget
	// stays Dragged while the button is held, even outside its area, and it
	// is the only one that can be Released, when the pointer comes back up
	// inside it.
	CapturePress
)

func (p DragPolicy) String() string {
	switch p {
	case CapturePress:
		return "capture"
	default:
		return "follow"
	}
}

// Classify maps one frame onto area. It is pure and never blocks.
func Classify(area graphics.Rect, f Frame, policy DragPolicy) Interaction {
	if policy == CapturePress {
		return classifyCaptured(area, f)
	}

	if f.JustReleased() {
		at := f.ReleasePoint()
		if area.Contains(at) {
			return Interaction{Kind: Released, Pos: at}
		}
		return Interaction{Pos: at}
	}

	cur := f.Current
	inside := cur.Present && area.Contains(cur.Pos)
	switch {
	case cur.Down && inside:
		if f.JustPressed() || !f.Moved || !heldInside(area, f.Previous) {
			return Interaction{Kind: Pressed, Pos: cur.Pos}
		}
		return Interaction{Kind: Dragged, Pos: cur.Pos}
	case inside && !cur.Down:
		return Interaction{Kind: Hovered, Pos: cur.Pos}
	}
	return Interaction{Pos: cur.Pos}
}

// heldInside reports whether s is a held pointer within area.
func heldInside(area graphics.Rect, s Sample) bool {
	return s.Down && s.Present && area.Contains(s.Pos)
}

func classifyCaptured(area graphics.Rect, f Frame) Interaction {
	owns := area.Contains(f.Origin)

	if f.JustReleased() {
		at := f.ReleasePoint()
		if owns && area.Contains(at) {
			return Interaction{Kind: Released, Pos: at}
		}
		return Interaction{Pos: at}
	}

	cur := f.Current
	if cur.Down {
		if !owns {
			return Interaction{Pos: cur.Pos}
		}
		if f.JustPressed() || !f.Moved {
			return Interaction{Kind: Pressed, Pos: cur.Pos}
		}
		return Interaction{Kind: Dragged, Pos: cur.Pos}
	}
	if cur.Present && area.Contains(cur.Pos) {
		return Interaction{Kind: Hovered, Pos: cur.Pos}
	}
	return Interaction{Pos: cur.Pos}
}
