// Package ui runs one immediate-mode frame at a time.
//
// A [Ui] owns the canvas, the theme, the layout cursor and the pointer
// tracker. Every frame the application calls [Ui.BeginFrame] with the current
// pointer sample and then adds its widgets in order. Each widget asks for a
// rectangle with [Ui.AllocateSpace], which also classifies the pointer
// against that rectangle, and paints through [Ui.Paint] only when its
// smartstate says the pixels changed.
//
//	states := smartstate.NewProvider(16)
//	u := ui.New(fb, theme.Bootstrap())
//	for {
//		states.Restart()
//		u.BeginFrame(sample)
//		if u.Add(widgets.IconButtonOf(icon.Add).WithSmartstate(states.Next())).Clicked {
//			count++
//		}
//	}
package ui

import (
	"fmt"
	"log/slog"

	"github.com/ElectronicKiwi/kolibri/pkg/errors"
	"github.com/ElectronicKiwi/kolibri/pkg/graphics"
	"github.com/ElectronicKiwi/kolibri/pkg/input"
	"github.com/ElectronicKiwi/kolibri/pkg/layout"
	"github.com/ElectronicKiwi/kolibri/pkg/theme"
)

// Widget is anything that can place and draw itself into a frame.
type Widget interface {
	Draw(u *Ui) (Response, error)
}

// Allocation is a rectangle granted to a widget together with the pointer
// interaction computed against that same rectangle.
type Allocation struct {
	Area        graphics.Rect
	Interaction input.Interaction
}

// Response summarizes what happened to a widget this frame.
type Response struct {
	Area        graphics.Rect
	Interaction input.Interaction
	// Clicked is true on the frame a press is released inside the widget.
	Clicked bool
	// Down is true while the widget is pressed or dragged.
	Down bool
	// Redrawn reports whether the widget repainted this frame.
	Redrawn bool
}

// Hovered reports whether the pointer is over the widget with no button held.
func (r Response) Hovered() bool {
	return r.Interaction.Kind == input.Hovered
}

// FrameStats counts widget work in the current frame.
type FrameStats struct {
	Widgets        int
	Redrawn        int
	AllocFailures  int
	DrawFailures   int
	PointerClaimed bool
}

// Option configures a Ui.
type Option func(*Ui)

// WithBounds restricts widgets to bounds instead of the canvas inset by the
// theme's window border padding.
func WithBounds(bounds graphics.Rect) Option {
	return func(u *Ui) {
		u.bounds = bounds
		u.explicitBounds = true
	}
}

// WithDragPolicy sets how a held pointer that leaves a widget is treated.
func WithDragPolicy(policy input.DragPolicy) Option {
	return func(u *Ui) {
		u.policy = policy
	}
}

// WithWrap lets AddHorizontal continue on the next row when a widget does not
// fit the current one.
func WithWrap(wrap bool) Option {
	return func(u *Ui) {
		u.wrap = wrap
	}
}

// WithLogger sets the logger used for per-widget diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(u *Ui) {
		u.logger = logger
	}
}

// Ui is the per-display frame driver. It is not safe for concurrent use.
type Ui struct {
	canvas graphics.Canvas
	style  *theme.Style
	logger *slog.Logger

	bounds         graphics.Rect
	explicitBounds bool
	policy         input.DragPolicy
	wrap           bool

	placer  *layout.Placer
	tracker input.Tracker
	frame   input.Frame
	claimed bool
	stats   FrameStats
}

// New creates a Ui drawing to canvas with style.
func New(canvas graphics.Canvas, style *theme.Style, opts ...Option) *Ui {
	u := &Ui{canvas: canvas, style: style}
	for _, opt := range opts {
		opt(u)
	}
	if u.logger == nil {
		u.logger = slog.Default()
	}
	if !u.explicitBounds {
		pad := style.Spacing.WindowBorderPadding
		u.bounds = graphics.RectFromPointSize(graphics.Point{}, canvas.Size()).Inset(pad.Width, pad.Height)
	}
	u.placer = layout.NewPlacer(u.bounds, style.Spacing.ItemSpacing, u.wrap)
	return u
}

// BeginFrame starts a frame for the given pointer sample. It rewinds the
// layout cursor and releases the pointer claim of the previous frame.
func (u *Ui) BeginFrame(sample input.Sample) {
	u.frame = u.tracker.Advance(sample)
	u.placer.Reset()
	u.claimed = false
	u.stats = FrameStats{}
}

// Frame returns the pointer frame being evaluated.
func (u *Ui) Frame() input.Frame {
	return u.frame
}

// Stats returns the counters of the current frame.
func (u *Ui) Stats() FrameStats {
	s := u.stats
	s.PointerClaimed = u.claimed
	return s
}

// Style returns the active theme.
func (u *Ui) Style() *theme.Style {
	return u.style
}

// SetStyle switches theme. Callers should reset their smartstate cells so
// every widget repaints in the new colors.
func (u *Ui) SetStyle(style *theme.Style) {
	u.style = style
	if !u.explicitBounds {
		pad := style.Spacing.WindowBorderPadding
		u.bounds = graphics.RectFromPointSize(graphics.Point{}, u.canvas.Size()).Inset(pad.Width, pad.Height)
	}
	u.placer = layout.NewPlacer(u.bounds, style.Spacing.ItemSpacing, u.wrap)
}

// Canvas returns the drawing sink.
func (u *Ui) Canvas() graphics.Canvas {
	return u.canvas
}

// Bounds returns the area widgets are laid out in.
func (u *Ui) Bounds() graphics.Rect {
	return u.bounds
}

// DragPolicy returns the configured drag policy.
func (u *Ui) DragPolicy() input.DragPolicy {
	return u.policy
}

// Logger returns the Ui's logger.
func (u *Ui) Logger() *slog.Logger {
	return u.logger
}

// RowHeight returns the height of the current layout row.
func (u *Ui) RowHeight() int {
	return u.placer.RowHeight()
}

// NewRow ends the current layout row.
func (u *Ui) NewRow() {
	u.placer.NewRow()
}

// AllocateSpace reserves size at the layout cursor and classifies the
// pointer against the granted rectangle. Only the first rectangle in a frame
// that yields a non-idle interaction receives it; later ones see Idle.
func (u *Ui) AllocateSpace(size graphics.Size) (Allocation, error) {
	area, err := u.placer.Alloc(size)
	if err != nil {
		u.stats.AllocFailures++
		u.logger.Debug("allocation failed", "width", size.Width, "height", size.Height, "error", err)
		return Allocation{}, err
	}
	ia := input.Classify(area, u.frame, u.policy)
	if !ia.IsIdle() {
		if u.claimed {
			ia = input.Interaction{Kind: input.Idle, Pos: ia.Pos}
		} else {
			u.claimed = true
		}
	}
	return Allocation{Area: area, Interaction: ia}, nil
}

// Add draws w and moves to a new row. Failures are reported to the error
// handler and returned as part of an idle response; the frame goes on.
func (u *Ui) Add(w Widget) Response {
	resp := u.AddHorizontal(w)
	u.placer.NewRow()
	return resp
}

// AddHorizontal draws w in the current row.
func (u *Ui) AddHorizontal(w Widget) Response {
	resp, err := u.draw(w)
	if err != nil {
		var ke *errors.KolibriError
		if errors.As(err, &ke) {
			if ke.Kind == errors.KindPanic {
				// already reported by the recover handler
				return resp
			}
			if ke.Widget == "" {
				ke.Widget = widgetName(w)
			}
			errors.Report(ke)
		} else {
			errors.Report(errors.New("ui.Add", errors.KindUnknown, err))
		}
	}
	return resp
}

// TryAdd is like Add but returns the widget's error instead of reporting it.
func (u *Ui) TryAdd(w Widget) (Response, error) {
	resp, err := u.draw(w)
	u.placer.NewRow()
	return resp, err
}

func (u *Ui) draw(w Widget) (resp Response, err error) {
	u.stats.Widgets++
	defer errors.RecoverWithCallback("ui.Add", func(r any) {
		resp = Response{}
		err = &errors.KolibriError{
			Op:     "ui.Add",
			Kind:   errors.KindPanic,
			Widget: widgetName(w),
			Err:    fmt.Errorf("widget panicked: %v", r),
		}
	})
	resp, err = w.Draw(u)
	if resp.Redrawn {
		u.stats.Redrawn++
	}
	return resp, err
}

// Paint runs fn inside a canvas batch scoped to area. The batch is always
// closed; the first error from BeginBatch, fn or EndBatch is returned as a
// DrawPrimitiveFailed error.
func (u *Ui) Paint(area graphics.Rect, fn func(c graphics.Canvas) error) (err error) {
	if err := u.canvas.BeginBatch(area); err != nil {
		return u.drawFailed(err)
	}
	defer func() {
		if endErr := u.canvas.EndBatch(); endErr != nil && err == nil {
			err = u.drawFailed(endErr)
		}
	}()
	if err := fn(u.canvas); err != nil {
		return u.drawFailed(err)
	}
	return nil
}

func (u *Ui) drawFailed(err error) error {
	u.stats.DrawFailures++
	u.logger.Debug("draw failed", "error", err)
	return errors.New("ui.Paint", errors.KindDrawPrimitiveFailed,
		fmt.Errorf("%w: %w", errors.ErrDrawPrimitiveFailed, err))
}

// ClearBackground fills the layout bounds with the theme background.
func (u *Ui) ClearBackground() error {
	return u.Paint(u.bounds, func(c graphics.Canvas) error {
		return c.Clear(u.style.BackgroundColor)
	})
}

// ClearScreen fills the whole canvas with the theme background.
func (u *Ui) ClearScreen() error {
	return u.Paint(graphics.RectFromPointSize(graphics.Point{}, u.canvas.Size()), func(c graphics.Canvas) error {
		return c.Clear(u.style.BackgroundColor)
	})
}

type named interface {
	WidgetName() string
}

func widgetName(w Widget) string {
	if n, ok := w.(named); ok {
		return n.WidgetName()
	}
	return fmt.Sprintf("%T", w)
}
