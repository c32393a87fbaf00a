package icon

import (
	"testing"

	"github.com/ElectronicKiwi/kolibri/pkg/graphics"
)

func TestParse(t *testing.T) {
	b, err := Parse("t", "#.", ".X")
	if err != nil {
		t.Fatal(err)
	}
	if b.Size() != graphics.Sz(2, 2) {
		t.Errorf("Size = %v", b.Size())
	}
	want := [][]bool{{true, false}, {false, true}}
	for y, row := range want {
		for x, set := range row {
			if b.Set(x, y) != set {
				t.Errorf("Set(%d,%d) = %v, want %v", x, y, !set, set)
			}
		}
	}
	if b.Set(-1, 0) || b.Set(2, 0) {
		t.Error("out-of-range pixels must be clear")
	}
	if got := b.String(); got != "#.\n.#" {
		t.Errorf("String = %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse("empty"); err == nil {
		t.Error("expected error for no rows")
	}
	if _, err := Parse("ragged", "##", "#"); err == nil {
		t.Error("expected error for ragged rows")
	}
}

func TestBuiltins(t *testing.T) {
	names := Names()
	if len(names) != 8 {
		t.Fatalf("Names = %v", names)
	}
	for _, name := range names {
		b, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) failed", name)
		}
		if b.Size() != graphics.Sz(12, 12) {
			t.Errorf("%s: size %v", name, b.Size())
		}
	}
	if _, ok := Lookup("unknown"); ok {
		t.Error("unexpected icon")
	}
}

func TestTintedSharesPixels(t *testing.T) {
	red := Add.Tinted(graphics.ColorRed).(*Bitmap)
	if red.Color() != graphics.ColorRed {
		t.Errorf("Color = %v", red.Color())
	}
	if Add.Color() != graphics.ColorWhite {
		t.Error("Tinted must not modify the original")
	}
	if red.String() != Add.String() {
		t.Error("tinted icon changed shape")
	}
}

func TestScaled(t *testing.T) {
	b := MustParse("dot", "#.", "..")
	s := b.Scaled(3)
	if s.Size() != graphics.Sz(6, 6) {
		t.Fatalf("Size = %v", s.Size())
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if want := x < 3 && y < 3; s.Set(x, y) != want {
				t.Errorf("Set(%d,%d) = %v", x, y, !want)
			}
		}
	}
	if b.Scaled(1) != b {
		t.Error("Scaled(1) should return the receiver")
	}
}

func TestDrawBlitsTintedImage(t *testing.T) {
	rec := graphics.NewRecorder(graphics.Sz(32, 32))
	icon := Check.Tinted(graphics.ColorGreen)
	if err := icon.Draw(rec, graphics.Pt(4, 5)); err != nil {
		t.Fatal(err)
	}
	ops := rec.Ops()
	if len(ops) != 1 || ops[0].Kind != graphics.OpImage {
		t.Fatalf("ops = %+v", ops)
	}
	if ops[0].Rect != graphics.RectFromLTWH(4, 5, 12, 12) {
		t.Errorf("Rect = %+v", ops[0].Rect)
	}
	img := ops[0].Image
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Error("clear pixel should be transparent")
	}
	if got := graphics.ColorModel.Convert(img.At(10, 1)).(graphics.Color); got != graphics.ColorGreen {
		t.Errorf("set pixel = %v, want green", got)
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustParse("bad", "#", "##")
}
