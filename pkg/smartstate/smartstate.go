package smartstate

import "fmt"

// Smartstate is the last visual state a widget slot was drawn in.
// The zero value is unset; comparing anything against an unset state
// reports a difference.
type Smartstate struct {
	code  uint32
	valid bool
}

// Unset returns the unset state.
func Unset() Smartstate {
	return Smartstate{}
}

// State returns a tagged state with the given code.
func State(code uint32) Smartstate {
	return Smartstate{code: code, valid: true}
}

// IsUnset reports whether s carries no code.
func (s Smartstate) IsUnset() bool {
	return !s.valid
}

// Code returns the code and whether s is tagged.
func (s Smartstate) Code() (uint32, bool) {
	return s.code, s.valid
}

// Equal reports whether both states are tagged with the same code.
func (s Smartstate) Equal(o Smartstate) bool {
	return s.valid && o.valid && s.code == o.code
}

// Reset returns the cell to the unset state, forcing the next draw.
func (s *Smartstate) Reset() {
	*s = Smartstate{}
}

func (s Smartstate) String() string {
	if !s.valid {
		return "unset"
	}
	return fmt.Sprintf("state(%d)", s.code)
}

// Container lends a caller-owned cell to a widget. The zero value is empty.
//
// An empty container has no memory between frames, so it always asks for a
// redraw. A borrowed container reads and overwrites the caller's cell in
// place and never keeps it beyond the widget's Draw call.
type Container struct {
	cell *Smartstate
}

// Empty returns a container without backing storage.
func Empty() Container {
	return Container{}
}

// Borrow returns a container backed by cell. A nil cell yields an empty
// container.
func Borrow(cell *Smartstate) Container {
	return Container{cell: cell}
}

// IsEmpty reports whether the container has no backing cell.
func (c Container) IsEmpty() bool {
	return c.cell == nil
}

// Previous returns the stored state, or Unset for an empty container.
func (c Container) Previous() Smartstate {
	if c.cell == nil {
		return Smartstate{}
	}
	return *c.cell
}

// ShouldDraw reports whether candidate differs from the stored state.
// It is always true for an empty container.
func (c Container) ShouldDraw(candidate Smartstate) bool {
	if c.cell == nil {
		return true
	}
	return !c.cell.Equal(candidate)
}

// Commit stores candidate. Call it only after every draw step succeeded.
func (c Container) Commit(candidate Smartstate) {
	if c.cell != nil {
		*c.cell = candidate
	}
}

// Invalidate resets the backing cell, if any.
func (c Container) Invalidate() {
	if c.cell != nil {
		c.cell.Reset()
	}
}
