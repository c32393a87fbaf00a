package graphics

import (
	"fmt"
	"image"
)

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpBeginBatch OpKind = iota
	OpEndBatch
	OpClear
	OpRect
	OpRoundedRect
	OpImage
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpBeginBatch:
		return "begin_batch"
	case OpEndBatch:
		return "end_batch"
	case OpClear:
		return "clear"
	case OpRect:
		return "rect"
	case OpRoundedRect:
		return "rounded_rect"
	case OpImage:
		return "image"
	case OpText:
		return "text"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one recorded canvas call.
type Op struct {
	Kind   OpKind
	Rect   Rect
	Radius int
	Paint  Paint
	Color  Color
	Image  image.Image
	At     Point
	Text   string
	Style  TextStyle
}

// IsPrimitive reports whether the op writes pixels (batch brackets do not).
func (o Op) IsPrimitive() bool {
	return o.Kind != OpBeginBatch && o.Kind != OpEndBatch
}

// Recorder is a Canvas that records drawing operations into a display list
// instead of rendering them. It is used to count and inspect redraws and
// can replay its list onto another canvas.
type Recorder struct {
	size    Size
	ops     []Op
	inBatch bool
	batch   Rect

	// Fail, when set, is consulted before each op is recorded. A non-nil
	// error is returned to the caller and the op is not recorded.
	Fail func(op Op) error
}

// NewRecorder creates a recorder for a surface of the given size.
func NewRecorder(size Size) *Recorder {
	return &Recorder{size: size}
}

// Size returns the recorded surface size.
func (r *Recorder) Size() Size {
	return r.size
}

// Ops returns the recorded operations.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Primitives returns the number of recorded pixel-writing operations.
func (r *Recorder) Primitives() int {
	n := 0
	for _, op := range r.ops {
		if op.IsPrimitive() {
			n++
		}
	}
	return n
}

// Count returns the number of recorded operations of the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops all recorded operations.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
	r.inBatch = false
	r.batch = Rect{}
}

func (r *Recorder) record(op Op) error {
	if r.Fail != nil {
		if err := r.Fail(op); err != nil {
			return err
		}
	}
	r.ops = append(r.ops, op)
	return nil
}

func (r *Recorder) BeginBatch(area Rect) error {
	if r.inBatch {
		return ErrBatchOpen
	}
	if err := r.record(Op{Kind: OpBeginBatch, Rect: area}); err != nil {
		return err
	}
	r.inBatch = true
	r.batch = area
	return nil
}

func (r *Recorder) EndBatch() error {
	if !r.inBatch {
		return ErrNoBatch
	}
	r.inBatch = false
	return r.record(Op{Kind: OpEndBatch})
}

func (r *Recorder) Clear(c Color) error {
	area := RectFromPointSize(Point{}, r.size)
	if r.inBatch {
		area = r.batch
	}
	return r.record(Op{Kind: OpClear, Color: c, Rect: area})
}

func (r *Recorder) DrawRect(rect Rect, paint Paint) error {
	return r.record(Op{Kind: OpRect, Rect: rect, Paint: paint})
}

func (r *Recorder) DrawRoundedRect(rect Rect, radius int, paint Paint) error {
	return r.record(Op{Kind: OpRoundedRect, Rect: rect, Radius: radius, Paint: paint})
}

func (r *Recorder) DrawImage(img image.Image, at Point) error {
	b := img.Bounds()
	return r.record(Op{Kind: OpImage, Image: img, At: at, Rect: RectFromLTWH(at.X, at.Y, b.Dx(), b.Dy())})
}

func (r *Recorder) DrawText(text string, at Point, style TextStyle) error {
	return r.record(Op{
		Kind:  OpText,
		Text:  text,
		At:    at,
		Style: style,
		Rect:  RectFromPointSize(at, style.Font.Measure(text)),
	})
}

// Replay executes the recorded operations on c, stopping at the first error.
func (r *Recorder) Replay(c Canvas) error {
	for _, op := range r.ops {
		var err error
		switch op.Kind {
		case OpBeginBatch:
			err = c.BeginBatch(op.Rect)
		case OpEndBatch:
			err = c.EndBatch()
		case OpClear:
			err = c.Clear(op.Color)
		case OpRect:
			err = c.DrawRect(op.Rect, op.Paint)
		case OpRoundedRect:
			err = c.DrawRoundedRect(op.Rect, op.Radius, op.Paint)
		case OpImage:
			err = c.DrawImage(op.Image, op.At)
		case OpText:
			err = c.DrawText(op.Text, op.At, op.Style)
		}
		if err != nil {
			return fmt.Errorf("replay %s: %w", op.Kind, err)
		}
	}
	return nil
}
