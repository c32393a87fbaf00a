package uitest

import (
	"sync"
	"testing"

	"github.com/ElectronicKiwi/kolibri/pkg/errors"
	"github.com/ElectronicKiwi/kolibri/pkg/graphics"
	"github.com/ElectronicKiwi/kolibri/pkg/input"
	"github.com/ElectronicKiwi/kolibri/pkg/smartstate"
	"github.com/ElectronicKiwi/kolibri/pkg/theme"
	"github.com/ElectronicKiwi/kolibri/pkg/ui"
)

const (
	// DefaultWidth is the default test surface width.
	DefaultWidth = 240
	// DefaultHeight is the default test surface height.
	DefaultHeight = 135
	// DefaultCells is the default smartstate pool size.
	DefaultCells = 32
)

// Frame is handed to the build function once per pumped frame.
type Frame struct {
	Ui     *ui.Ui
	States *smartstate.Provider

	responses []ui.Response
}

// Add adds w on its own row and records the response.
func (f *Frame) Add(w ui.Widget) ui.Response {
	r := f.Ui.Add(w)
	f.responses = append(f.responses, r)
	return r
}

// AddHorizontal adds w to the current row and records the response.
func (f *Frame) AddHorizontal(w ui.Widget) ui.Response {
	r := f.Ui.AddHorizontal(w)
	f.responses = append(f.responses, r)
	return r
}

// Result describes one pumped frame.
type Result struct {
	Responses  []ui.Response
	Ops        []graphics.Op
	Primitives int
	Stats      ui.FrameStats
}

// Tester runs frames against a recording canvas.
type Tester struct {
	ui       *ui.Ui
	recorder *graphics.Recorder
	states   *smartstate.Provider
	build    func(*Frame)
	last     Result
	handler  *collectingHandler
}

// NewTester creates a tester with a DefaultWidth x DefaultHeight surface.
// Options are passed to [ui.New].
func NewTester(style *theme.Style, opts ...ui.Option) *Tester {
	rec := graphics.NewRecorder(graphics.Sz(DefaultWidth, DefaultHeight))
	return &Tester{
		ui:       ui.New(rec, style, opts...),
		recorder: rec,
		states:   smartstate.NewProvider(DefaultCells),
		build:    func(*Frame) {},
	}
}

// NewTesterWithT creates a tester that collects reported errors instead of
// logging them and restores the default handler when the test ends.
func NewTesterWithT(t *testing.T, style *theme.Style, opts ...ui.Option) *Tester {
	tester := NewTester(style, opts...)
	tester.handler = &collectingHandler{}
	errors.SetHandler(tester.handler)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return tester
}

// SetBuild sets the function that adds widgets each frame.
func (t *Tester) SetBuild(build func(*Frame)) {
	t.build = build
}

// Ui returns the tester's Ui.
func (t *Tester) Ui() *ui.Ui {
	return t.ui
}

// Recorder returns the recording canvas.
func (t *Tester) Recorder() *graphics.Recorder {
	return t.recorder
}

// States returns the smartstate pool handed to build functions.
func (t *Tester) States() *smartstate.Provider {
	return t.states
}

// Pump evaluates one frame for sample.
func (t *Tester) Pump(sample input.Sample) Result {
	t.recorder.Reset()
	t.states.Restart()
	t.ui.BeginFrame(sample)
	f := &Frame{Ui: t.ui, States: t.states}
	t.build(f)
	ops := append([]graphics.Op(nil), t.recorder.Ops()...)
	t.last = Result{
		Responses:  f.responses,
		Ops:        ops,
		Primitives: t.recorder.Primitives(),
		Stats:      t.ui.Stats(),
	}
	return t.last
}

// Last returns the result of the most recent frame.
func (t *Tester) Last() Result {
	return t.last
}

// Response returns the i-th response of the last frame, or a zero Response.
func (t *Tester) Response(i int) ui.Response {
	if i < 0 || i >= len(t.last.Responses) {
		return ui.Response{}
	}
	return t.last.Responses[i]
}

// Errors returns the errors reported since the tester was created. It is
// empty for testers not made with NewTesterWithT.
func (t *Tester) Errors() []*errors.KolibriError {
	if t.handler == nil {
		return nil
	}
	return t.handler.snapshot()
}

// Panics returns the panics reported since the tester was created.
func (t *Tester) Panics() []*errors.PanicError {
	if t.handler == nil {
		return nil
	}
	t.handler.mu.Lock()
	defer t.handler.mu.Unlock()
	return append([]*errors.PanicError(nil), t.handler.panics...)
}

type collectingHandler struct {
	mu     sync.Mutex
	errs   []*errors.KolibriError
	panics []*errors.PanicError
}

func (h *collectingHandler) HandleError(err *errors.KolibriError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = append(h.errs, err)
}

func (h *collectingHandler) HandlePanic(err *errors.PanicError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.panics = append(h.panics, err)
}

func (h *collectingHandler) snapshot() []*errors.KolibriError {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*errors.KolibriError(nil), h.errs...)
}
