package theme

import (
	"strings"
	"sync"
	"testing"

	"github.com/ElectronicKiwi/kolibri/pkg/errors"
	"github.com/ElectronicKiwi/kolibri/pkg/graphics"
	"github.com/ElectronicKiwi/kolibri/pkg/input"
)

type recordingHandler struct {
	mu     sync.Mutex
	errors []*errors.KolibriError
}

func (h *recordingHandler) HandleError(err *errors.KolibriError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errors = append(h.errors, err)
}

func (h *recordingHandler) HandlePanic(*errors.PanicError) {}

func TestContextString(t *testing.T) {
	tests := []struct {
		ctx  Context
		want string
	}{
		{ContextNormal, "normal"},
		{ContextPrimary, "primary"},
		{ContextSecondary, "secondary"},
		{Context(9), "Context(9)"},
	}
	for _, tt := range tests {
		if got := tt.ctx.String(); got != tt.want {
			t.Errorf("Context(%d).String() = %q, want %q", int(tt.ctx), got, tt.want)
		}
	}
}

func TestResolveBuckets(t *testing.T) {
	s := Bootstrap()
	tests := []struct {
		name    string
		enabled bool
		bucket  input.Bucket
		want    WidgetStyle
	}{
		{"normal", true, input.BucketNone, s.PrimaryWidget.Normal},
		{"hover", true, input.BucketHover, s.PrimaryWidget.Hover},
		{"active", true, input.BucketActive, s.PrimaryWidget.Active},
		{"disabled overrides active", false, input.BucketActive, s.PrimaryWidget.Disabled},
		{"disabled overrides hover", false, input.BucketHover, s.PrimaryWidget.Disabled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Resolve(ContextPrimary, tt.enabled, tt.bucket); got != tt.want {
				t.Errorf("Resolve = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveMissingContextFallsBack(t *testing.T) {
	h := &recordingHandler{}
	errors.SetHandler(h)
	defer errors.SetHandler(nil)

	s := Bootstrap()
	s.Name = "fallback-test"
	s.SecondaryWidget = nil

	got := s.Resolve(ContextSecondary, true, input.BucketHover)
	if got != s.NormalWidget.Hover {
		t.Errorf("Resolve = %+v, want normal hover %+v", got, s.NormalWidget.Hover)
	}
	s.Resolve(ContextSecondary, true, input.BucketNone)

	if len(h.errors) != 1 {
		t.Fatalf("reported %d errors, want 1", len(h.errors))
	}
	if !errors.Is(h.errors[0], errors.ErrInvalidStyleContext) {
		t.Errorf("reported %v, want ErrInvalidStyleContext", h.errors[0])
	}
}

func TestFallbackReportedPerStyle(t *testing.T) {
	h := &recordingHandler{}
	errors.SetHandler(h)
	defer errors.SetHandler(nil)

	for i := 0; i < 2; i++ {
		s := Bootstrap()
		s.Name = "shared-name"
		s.PrimaryWidget = nil
		s.Resolve(ContextPrimary, true, input.BucketNone)
		s.Resolve(ContextPrimary, true, input.BucketHover)
	}
	if len(h.errors) != 2 {
		t.Errorf("reported %d errors for two styles sharing a name, want 2", len(h.errors))
	}
}

func TestContextReturnsError(t *testing.T) {
	s := Bootstrap()
	s.PrimaryWidget = nil
	cs, err := s.Context(ContextPrimary)
	if err == nil {
		t.Fatal("expected error for missing primary context")
	}
	if errors.KindOf(err) != errors.KindInvalidStyleContext {
		t.Errorf("KindOf = %v, want invalid_style_context", errors.KindOf(err))
	}
	if cs != s.NormalWidget {
		t.Error("missing context should return the normal context")
	}
	if _, err := s.Context(ContextNormal); err != nil {
		t.Errorf("normal context: %v", err)
	}
}

func TestBuiltins(t *testing.T) {
	names := BuiltinNames()
	if len(names) != 2 || names[0] != "bootstrap" || names[1] != "medsize" {
		t.Fatalf("BuiltinNames = %v", names)
	}
	for _, name := range names {
		s, ok := Builtin(name)
		if !ok {
			t.Fatalf("Builtin(%q) missing", name)
		}
		if err := Validate(s); err != nil {
			t.Errorf("Validate(%s): %v", name, err)
		}
	}
	if _, ok := Builtin("nope"); ok {
		t.Error("Builtin(nope) should not exist")
	}

	a, _ := Builtin("bootstrap")
	a.PrimaryWidget.Normal.BorderWidth = 9
	b, _ := Builtin("bootstrap")
	if b.PrimaryWidget.Normal.BorderWidth == 9 {
		t.Error("Builtin should return independent copies")
	}
}

func TestMedsizeGraysAreExactRGB565(t *testing.T) {
	s := Medsize()
	if got := s.BackgroundColor.RGB565(); got != 0x2104 {
		t.Errorf("background RGB565 = %#04x, want 0x2104", got)
	}
	if got := s.PrimaryWidget.Normal.BackgroundColor.RGB565(); got != 0x1082 {
		t.Errorf("primary normal RGB565 = %#04x, want 0x1082", got)
	}
	if got := s.PrimaryWidget.Hover.BackgroundColor.RGB565(); got != 0x0841 {
		t.Errorf("primary hover RGB565 = %#04x, want 0x0841", got)
	}
}

func TestLookupFont(t *testing.T) {
	for _, name := range FontNames() {
		f, ok := LookupFont(name)
		if !ok || f.Name != name {
			t.Errorf("LookupFont(%q) = %v, %v", name, f, ok)
		}
		if f.LineHeight() <= 0 {
			t.Errorf("font %q has line height %d", name, f.LineHeight())
		}
	}
	if _, ok := LookupFont("comic-sans"); ok {
		t.Error("unexpected font")
	}
}

func TestLoadExtends(t *testing.T) {
	src := `
version: v1.2.0
name: custom
extends: medsize
font: inconsolata
button_corner_radius: 0
primary:
  normal:
    border_width: 2
    border_color: "#ff0000"
    background_color: black
    foreground_color: "#fff"
`
	s, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Name != "custom" {
		t.Errorf("Name = %q", s.Name)
	}
	if s.DefaultFont != FontInconsolata {
		t.Errorf("font = %v", s.DefaultFont)
	}
	if s.ButtonCornerRadius != 0 {
		t.Errorf("ButtonCornerRadius = %d, want 0", s.ButtonCornerRadius)
	}
	want := WidgetStyle{BorderWidth: 2, BorderColor: graphics.ColorRed, BackgroundColor: graphics.ColorBlack, ForegroundColor: graphics.ColorWhite}
	if s.PrimaryWidget.Normal != want {
		t.Errorf("primary normal = %+v, want %+v", s.PrimaryWidget.Normal, want)
	}
	if s.SecondaryWidget == nil || *s.SecondaryWidget != *Medsize().SecondaryWidget {
		t.Error("secondary context should be inherited from medsize")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"bad yaml", "name: [unterminated"},
		{"unknown field", "name: x\nextends: bootstrap\nbogus: 1\n"},
		{"major version", "version: v2.0.0\nname: x\nextends: bootstrap\n"},
		{"invalid version", "version: 1.0\nname: x\nextends: bootstrap\n"},
		{"unknown base", "name: x\nextends: solarized\n"},
		{"unknown font", "name: x\nextends: bootstrap\nfont: wingdings\n"},
		{"no font", "name: x\n"},
		{"bad color", "name: x\nextends: bootstrap\ntext_color: \"#zz\"\n"},
		{"negative border", "name: x\nextends: bootstrap\nnormal:\n  hover:\n    border_width: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.KindOf(err) != errors.KindConfig {
				t.Errorf("KindOf(%v) = %v, want config", err, errors.KindOf(err))
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	for _, name := range BuiltinNames() {
		orig, _ := Builtin(name)
		data, err := Marshal(orig)
		if err != nil {
			t.Fatalf("Marshal(%s): %v", name, err)
		}
		if !strings.Contains(string(data), "version: v1.0.0") {
			t.Errorf("Marshal(%s) missing version:\n%s", name, data)
		}
		got, err := Load(strings.NewReader(string(data)))
		if err != nil {
			t.Fatalf("Load(%s): %v\n%s", name, err, data)
		}
		if got.Name != orig.Name || got.DefaultFont != orig.DefaultFont {
			t.Errorf("%s: name/font mismatch", name)
		}
		if got.NormalWidget != orig.NormalWidget || *got.PrimaryWidget != *orig.PrimaryWidget || *got.SecondaryWidget != *orig.SecondaryWidget {
			t.Errorf("%s: context styles differ after round trip", name)
		}
		if got.Spacing != orig.Spacing || got.ButtonCornerRadius != orig.ButtonCornerRadius || got.DefaultWidgetHeight != orig.DefaultWidgetHeight {
			t.Errorf("%s: metrics differ after round trip", name)
		}
	}
}

func TestMarshalRejectsUnbundledFont(t *testing.T) {
	s := Bootstrap()
	s.DefaultFont = graphics.NewFont("custom", nil)
	if _, err := Marshal(s); err == nil {
		t.Error("expected error for unbundled font")
	}
}
