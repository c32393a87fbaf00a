package ui_test

import (
	stderrors "errors"
	"fmt"
	"sync"
	"testing"

	"github.com/ElectronicKiwi/kolibri/pkg/errors"
	"github.com/ElectronicKiwi/kolibri/pkg/graphics"
	"github.com/ElectronicKiwi/kolibri/pkg/input"
	"github.com/ElectronicKiwi/kolibri/pkg/theme"
	"github.com/ElectronicKiwi/kolibri/pkg/ui"
)

type recordingHandler struct {
	mu     sync.Mutex
	errs   []*errors.KolibriError
	panics []*errors.PanicError
}

func (h *recordingHandler) HandleError(err *errors.KolibriError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = append(h.errs, err)
}

func (h *recordingHandler) HandlePanic(err *errors.PanicError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.panics = append(h.panics, err)
}

func captureErrors(t *testing.T) *recordingHandler {
	h := &recordingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

// box allocates a fixed size and paints a rectangle every frame.
type box struct {
	size graphics.Size
}

func (b box) Draw(u *ui.Ui) (ui.Response, error) {
	alloc, err := u.AllocateSpace(b.size)
	if err != nil {
		return ui.Response{}, err
	}
	err = u.Paint(alloc.Area, func(c graphics.Canvas) error {
		return c.DrawRect(alloc.Area, graphics.Paint{Fill: graphics.ColorRed})
	})
	return ui.Response{Area: alloc.Area, Interaction: alloc.Interaction, Redrawn: err == nil}, err
}

// wrapping fails with a KolibriError wrapped in its own context.
type wrapping struct{}

func (wrapping) Draw(*ui.Ui) (ui.Response, error) {
	inner := errors.New("wrapping.flush", errors.KindDrawPrimitiveFailed, errors.ErrDrawPrimitiveFailed)
	return ui.Response{}, fmt.Errorf("flush row: %w", inner)
}

type panicky struct{}

func (panicky) Draw(*ui.Ui) (ui.Response, error) {
	panic("boom")
}

func TestDefaultBounds(t *testing.T) {
	rec := graphics.NewRecorder(graphics.Sz(100, 50))
	u := ui.New(rec, theme.Bootstrap())
	if want := graphics.RectFromLTWH(3, 3, 94, 44); u.Bounds() != want {
		t.Errorf("Bounds = %v, want %v", u.Bounds(), want)
	}
	custom := graphics.RectFromLTWH(10, 10, 20, 20)
	u = ui.New(rec, theme.Bootstrap(), ui.WithBounds(custom))
	if u.Bounds() != custom {
		t.Errorf("Bounds = %v, want %v", u.Bounds(), custom)
	}
	u.SetStyle(theme.Medsize())
	if u.Bounds() != custom {
		t.Error("SetStyle must keep explicit bounds")
	}
}

func TestAddStacksRows(t *testing.T) {
	rec := graphics.NewRecorder(graphics.Sz(100, 100))
	u := ui.New(rec, theme.Bootstrap())
	u.BeginFrame(input.None())
	a := u.Add(box{graphics.Sz(10, 10)})
	b := u.AddHorizontal(box{graphics.Sz(10, 12)})
	c := u.AddHorizontal(box{graphics.Sz(10, 10)})
	if a.Area != graphics.RectFromLTWH(3, 3, 10, 10) {
		t.Errorf("a = %v", a.Area)
	}
	if b.Area != graphics.RectFromLTWH(3, 17, 10, 12) {
		t.Errorf("b = %v", b.Area)
	}
	if c.Area != graphics.RectFromLTWH(21, 17, 10, 10) {
		t.Errorf("c = %v", c.Area)
	}
	if u.RowHeight() != 12 {
		t.Errorf("RowHeight = %d", u.RowHeight())
	}
	if s := u.Stats(); s.Widgets != 3 || s.Redrawn != 3 {
		t.Errorf("Stats = %+v", s)
	}

	u.BeginFrame(input.None())
	if again := u.Add(box{graphics.Sz(10, 10)}); again.Area != a.Area {
		t.Error("BeginFrame should rewind the layout")
	}
}

func TestPointerClaimFirstWins(t *testing.T) {
	rec := graphics.NewRecorder(graphics.Sz(100, 100))
	u := ui.New(rec, theme.Bootstrap())
	u.BeginFrame(input.HoverAt(graphics.Pt(5, 5)))

	first, err := u.AllocateSpace(graphics.Sz(10, 10))
	if err != nil {
		t.Fatal(err)
	}
	// Restart layout mid-frame so the next rectangle overlaps the first.
	u.SetStyle(theme.Bootstrap())
	second, err := u.AllocateSpace(graphics.Sz(10, 10))
	if err != nil {
		t.Fatal(err)
	}
	if first.Area != second.Area {
		t.Fatalf("areas differ: %v %v", first.Area, second.Area)
	}
	if first.Interaction.Kind != input.Hovered {
		t.Errorf("first = %s, want hovered", first.Interaction.Kind)
	}
	if second.Interaction.Kind != input.Idle {
		t.Errorf("second = %s, want idle", second.Interaction.Kind)
	}
	if !u.Stats().PointerClaimed {
		t.Error("PointerClaimed should be set")
	}

	u.BeginFrame(input.HoverAt(graphics.Pt(5, 5)))
	again, _ := u.AllocateSpace(graphics.Sz(10, 10))
	if again.Interaction.Kind != input.Hovered {
		t.Error("claim must reset every frame")
	}
}

func TestPaintAlwaysEndsBatch(t *testing.T) {
	rec := graphics.NewRecorder(graphics.Sz(50, 50))
	u := ui.New(rec, theme.Bootstrap())
	u.BeginFrame(input.None())
	boom := stderrors.New("boom")
	err := u.Paint(graphics.RectFromLTWH(0, 0, 10, 10), func(graphics.Canvas) error { return boom })
	if !errors.Is(err, errors.ErrDrawPrimitiveFailed) || !errors.Is(err, boom) {
		t.Errorf("err = %v", err)
	}
	if errors.KindOf(err) != errors.KindDrawPrimitiveFailed {
		t.Errorf("KindOf = %v", errors.KindOf(err))
	}
	if rec.Count(graphics.OpEndBatch) != 1 {
		t.Error("batch not closed")
	}
	if u.Stats().DrawFailures != 1 {
		t.Errorf("DrawFailures = %d", u.Stats().DrawFailures)
	}
	// A second batch can start, so the first was closed.
	if err := u.Paint(graphics.RectFromLTWH(0, 0, 10, 10), func(graphics.Canvas) error { return nil }); err != nil {
		t.Errorf("second Paint: %v", err)
	}
}

func TestPaintReportsEndBatchFailure(t *testing.T) {
	rec := graphics.NewRecorder(graphics.Sz(50, 50))
	rec.Fail = func(op graphics.Op) error {
		if op.Kind == graphics.OpEndBatch {
			return stderrors.New("flush failed")
		}
		return nil
	}
	u := ui.New(rec, theme.Bootstrap())
	err := u.Paint(graphics.RectFromLTWH(0, 0, 10, 10), func(graphics.Canvas) error { return nil })
	if !errors.Is(err, errors.ErrDrawPrimitiveFailed) {
		t.Errorf("err = %v", err)
	}
}

func TestPanickingWidgetIsRecovered(t *testing.T) {
	h := captureErrors(t)
	rec := graphics.NewRecorder(graphics.Sz(50, 50))
	u := ui.New(rec, theme.Bootstrap())
	u.BeginFrame(input.None())

	resp := u.Add(panicky{})
	if resp != (ui.Response{}) {
		t.Errorf("resp = %+v", resp)
	}
	if len(h.panics) != 1 {
		t.Fatalf("panics = %d, want 1", len(h.panics))
	}
	if len(h.errs) != 0 {
		t.Errorf("panic reported twice: %v", h.errs)
	}

	_, err := u.TryAdd(panicky{})
	if errors.KindOf(err) != errors.KindPanic {
		t.Errorf("TryAdd err = %v", err)
	}
	var ke *errors.KolibriError
	if !errors.As(err, &ke) || ke.Widget != "ui_test.panicky" {
		t.Errorf("widget = %+v", ke)
	}

	if r := u.Add(box{graphics.Sz(5, 5)}); !r.Redrawn {
		t.Error("frame should go on after a panic")
	}
}

func TestAllocationFailureLoggedAndReported(t *testing.T) {
	h := captureErrors(t)
	rec := graphics.NewRecorder(graphics.Sz(20, 20))
	u := ui.New(rec, theme.Bootstrap())
	u.BeginFrame(input.None())
	u.Add(box{graphics.Sz(100, 5)})
	if len(h.errs) != 1 || !errors.Is(h.errs[0], errors.ErrAllocationExhausted) {
		t.Fatalf("errs = %v", h.errs)
	}
	if h.errs[0].Widget != "ui_test.box" {
		t.Errorf("Widget = %q", h.errs[0].Widget)
	}
	if u.Stats().AllocFailures != 1 {
		t.Errorf("AllocFailures = %d", u.Stats().AllocFailures)
	}
}

func TestWrappedWidgetErrorKeepsKind(t *testing.T) {
	h := captureErrors(t)
	u := ui.New(graphics.NewRecorder(graphics.Sz(30, 30)), theme.Bootstrap())
	u.BeginFrame(input.None())
	u.Add(wrapping{})

	if len(h.errs) != 1 {
		t.Fatalf("reported %d errors, want 1", len(h.errs))
	}
	got := h.errs[0]
	if got.Kind != errors.KindDrawPrimitiveFailed {
		t.Errorf("Kind = %v, want %v", got.Kind, errors.KindDrawPrimitiveFailed)
	}
	if got.Widget != "ui_test.wrapping" {
		t.Errorf("Widget = %q, want ui_test.wrapping", got.Widget)
	}
}

func TestClearBackground(t *testing.T) {
	rec := graphics.NewRecorder(graphics.Sz(30, 30))
	style := theme.Medsize()
	u := ui.New(rec, style)
	if err := u.ClearBackground(); err != nil {
		t.Fatal(err)
	}
	ops := rec.Ops()
	if len(ops) != 3 || ops[0].Rect != u.Bounds() || ops[1].Color != style.BackgroundColor {
		t.Errorf("ops = %+v", ops)
	}
	if len(ops) > 1 && ops[1].Rect != u.Bounds() {
		t.Errorf("clear rect = %v, want bounds %v", ops[1].Rect, u.Bounds())
	}
	rec.Reset()
	if err := u.ClearScreen(); err != nil {
		t.Fatal(err)
	}
	if rec.Ops()[0].Rect != graphics.RectFromLTWH(0, 0, 30, 30) {
		t.Errorf("ClearScreen batch = %v", rec.Ops()[0].Rect)
	}
}

func TestOptions(t *testing.T) {
	rec := graphics.NewRecorder(graphics.Sz(30, 30))
	u := ui.New(rec, theme.Bootstrap(), ui.WithDragPolicy(input.CapturePress), ui.WithWrap(true))
	if u.DragPolicy() != input.CapturePress {
		t.Errorf("DragPolicy = %v", u.DragPolicy())
	}
	if u.Logger() == nil || u.Canvas() != rec || u.Style().Name != "bootstrap" {
		t.Error("accessors not wired")
	}
	u.BeginFrame(input.None())
	u.AddHorizontal(box{graphics.Sz(20, 5)})
	r := u.AddHorizontal(box{graphics.Sz(20, 5)})
	if r.Area != graphics.RectFromLTWH(3, 12, 20, 5) {
		t.Errorf("wrapped area = %v", r.Area)
	}
	if u.Frame().Current.Present {
		t.Error("Frame should reflect the last sample")
	}
}
