// Package input turns per-frame pointer samples into per-widget interaction
// outcomes.
//
// There is no event queue. Each frame the caller reads the pointer once,
// advances a [Tracker] to get a [Frame], and every widget classifies that
// frame against its own rectangle with [Classify].
package input

import (
	"fmt"

	"github.com/ElectronicKiwi/kolibri/pkg/graphics"
)

// Kind is the interaction outcome of one widget in one frame.
type Kind int

const (
	// Idle means the pointer has nothing to do with the widget.
	Idle Kind = iota
	// Hovered means the pointer is inside with the button up.
	Hovered
	// Pressed means the button is down inside and has not moved since the press.
	Pressed
	// Dragged means the button is down and the pointer moved since the press.
	Dragged
	// Released means the button went up inside this frame: a click.
	Released
)

func (k Kind) String() string {
	switch k {
	case Idle:
		return "idle"
	case Hovered:
		return "hovered"
	case Pressed:
		return "pressed"
	case Dragged:
		return "dragged"
	case Released:
		return "released"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Bucket groups outcomes by how they look.
type Bucket int

const (
	BucketNone Bucket = iota
	BucketHover
	BucketActive
)

func (b Bucket) String() string {
	switch b {
	case BucketNone:
		return "none"
	case BucketHover:
		return "hover"
	case BucketActive:
		return "active"
	default:
		return fmt.Sprintf("Bucket(%d)", int(b))
	}
}

// Interaction is a classified outcome and the pointer position it was
// judged at.
type Interaction struct {
	Kind Kind
	Pos  graphics.Point
}

// Bucket returns the visual bucket of the outcome.
func (i Interaction) Bucket() Bucket {
	switch i.Kind {
	case Hovered:
		return BucketHover
	case Pressed, Dragged, Released:
		return BucketActive
	default:
		return BucketNone
	}
}

// IsIdle reports whether the outcome is Idle.
func (i Interaction) IsIdle() bool {
	return i.Kind == Idle
}

// Clicked reports whether the outcome completes a click.
func (i Interaction) Clicked() bool {
	return i.Kind == Released
}

// Down reports whether the button is held on the widget.
func (i Interaction) Down() bool {
	return i.Kind == Pressed || i.Kind == Dragged
}
