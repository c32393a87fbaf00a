package graphics

import (
	"errors"
	"image"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestRecorderCountsPrimitives(t *testing.T) {
	rec := NewRecorder(Sz(64, 32))
	font := NewFont("7x13", basicfont.Face7x13)

	area := RectFromLTWH(0, 0, 20, 10)
	if err := rec.BeginBatch(area); err != nil {
		t.Fatalf("BeginBatch: %v", err)
	}
	_ = rec.DrawRect(area, Paint{Fill: ColorBlack})
	_ = rec.DrawText("hi", Pt(1, 1), TextStyle{Font: font, Color: ColorWhite})
	if err := rec.EndBatch(); err != nil {
		t.Fatalf("EndBatch: %v", err)
	}

	if got := len(rec.Ops()); got != 4 {
		t.Errorf("len(Ops) = %d, want 4", got)
	}
	if got := rec.Primitives(); got != 2 {
		t.Errorf("Primitives = %d, want 2", got)
	}
	if got := rec.Ops()[2].Rect; got != RectFromLTWH(1, 1, 14, 13) {
		t.Errorf("text rect = %v", got)
	}
}

func TestRecorderBatchErrors(t *testing.T) {
	rec := NewRecorder(Sz(8, 8))
	if err := rec.EndBatch(); !errors.Is(err, ErrNoBatch) {
		t.Errorf("EndBatch without begin = %v, want ErrNoBatch", err)
	}
	_ = rec.BeginBatch(Rect{})
	if err := rec.BeginBatch(Rect{}); !errors.Is(err, ErrBatchOpen) {
		t.Errorf("nested BeginBatch = %v, want ErrBatchOpen", err)
	}
}

func TestRecorderFailHook(t *testing.T) {
	rec := NewRecorder(Sz(8, 8))
	boom := errors.New("boom")
	rec.Fail = func(op Op) error {
		if op.Kind == OpImage {
			return boom
		}
		return nil
	}
	if err := rec.DrawImage(image.NewAlpha(image.Rect(0, 0, 2, 2)), Pt(0, 0)); !errors.Is(err, boom) {
		t.Errorf("DrawImage = %v, want boom", err)
	}
	if rec.Primitives() != 0 {
		t.Error("failed op should not be recorded")
	}
}

func TestRecorderClearIsBatchScoped(t *testing.T) {
	rec := NewRecorder(Sz(16, 8))
	_ = rec.Clear(ColorBlack)
	area := RectFromLTWH(2, 1, 5, 3)
	_ = rec.BeginBatch(area)
	_ = rec.Clear(ColorWhite)
	_ = rec.EndBatch()
	_ = rec.Clear(ColorBlack)

	var got []Rect
	for _, op := range rec.Ops() {
		if op.Kind == OpClear {
			got = append(got, op.Rect)
		}
	}
	full := RectFromLTWH(0, 0, 16, 8)
	want := []Rect{full, area, full}
	if len(got) != len(want) {
		t.Fatalf("recorded %d clears, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("clear %d rect = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRecorderReplay(t *testing.T) {
	src := NewRecorder(Sz(8, 8))
	_ = src.Clear(ColorBlack)
	_ = src.BeginBatch(RectFromLTWH(0, 0, 4, 4))
	_ = src.DrawRoundedRect(RectFromLTWH(0, 0, 4, 4), 1, Paint{Fill: ColorWhite})
	_ = src.EndBatch()

	dst := NewRecorder(Sz(8, 8))
	if err := src.Replay(dst); err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if len(dst.Ops()) != len(src.Ops()) {
		t.Errorf("replayed %d ops, want %d", len(dst.Ops()), len(src.Ops()))
	}
	if dst.Count(OpRoundedRect) != 1 {
		t.Errorf("rounded rect not replayed")
	}
}
