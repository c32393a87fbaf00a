package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestKolibriErrorString(t *testing.T) {
	err := &KolibriError{
		Op:   "layout.Placer.Alloc",
		Kind: KindAllocationExhausted,
		Err:  stderrors.New("no room"),
	}
	want := "layout.Placer.Alloc [allocation_exhausted]: no room"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestKolibriErrorWithWidget(t *testing.T) {
	err := &KolibriError{
		Op:     "widgets.IconButton.Draw",
		Kind:   KindDrawPrimitiveFailed,
		Widget: "IconButton",
		Err:    stderrors.New("out of bounds"),
	}
	if got := err.Error(); !strings.Contains(got, "widget=IconButton") {
		t.Errorf("error string %q should contain widget name", got)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindAllocationExhausted, "allocation_exhausted"},
		{KindDrawPrimitiveFailed, "draw_primitive_failed"},
		{KindInvalidStyleContext, "invalid_style_context"},
		{KindConfig, "config"},
		{KindInit, "init"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestIsMatchesSentinelOfKind(t *testing.T) {
	cause := stderrors.New("write rejected")
	err := fmt.Errorf("frame 3: %w", New("display.Framebuffer.DrawRect", KindDrawPrimitiveFailed, cause))

	if !Is(err, ErrDrawPrimitiveFailed) {
		t.Error("expected errors.Is to match ErrDrawPrimitiveFailed")
	}
	if Is(err, ErrAllocationExhausted) {
		t.Error("draw failure must not match ErrAllocationExhausted")
	}
	if !Is(err, cause) {
		t.Error("expected the wrapped cause to stay reachable")
	}
	if got := KindOf(err); got != KindDrawPrimitiveFailed {
		t.Errorf("KindOf = %v, want %v", got, KindDrawPrimitiveFailed)
	}
	if got := KindOf(cause); got != KindUnknown {
		t.Errorf("KindOf(plain error) = %v, want unknown", got)
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "ui.Add"
	if got, want := err.Error(), "panic in ui.Add: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *KolibriError
	handler := &testHandler{onError: func(err *KolibriError) { captured = err }}

	oldHandler := Handler()
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&KolibriError{Op: "test.op", Kind: KindInvalidStyleContext, Err: ErrInvalidStyleContext})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	var captured *PanicError
	var callbackValue any
	handler := &testHandler{onPanic: func(err *PanicError) { captured = err }}

	oldHandler := Handler()
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer RecoverWithCallback("test.recover", func(r any) { callbackValue = r })
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if callbackValue != "intentional test panic" {
		t.Errorf("callback value = %v", callbackValue)
	}
}

func TestCaptureStack(t *testing.T) {
	capture := func() string { return CaptureStack() }
	stack := capture()
	if stack == "" {
		t.Fatal("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "TestCaptureStack") {
		t.Errorf("stack does not include the test function:\n%s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	oldHandler := Handler()
	defer SetHandler(oldHandler)

	SetHandler(nil)
	if _, ok := Handler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", Handler())
	}
}

func TestLogHandlerLevels(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	h.HandleError(New("theme.Style.Context", KindInvalidStyleContext, ErrInvalidStyleContext))
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("style fallback should log at WARN, got %q", buf.String())
	}

	buf.Reset()
	h.HandleError(New("display.Framebuffer.DrawText", KindDrawPrimitiveFailed, ErrDrawPrimitiveFailed))
	if !strings.Contains(buf.String(), "level=ERROR") {
		t.Errorf("draw failure should log at ERROR, got %q", buf.String())
	}
}

type testHandler struct {
	onError func(*KolibriError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *KolibriError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
