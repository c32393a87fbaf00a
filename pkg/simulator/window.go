// Package simulator shows a framebuffer in a terminal and turns mouse input
// into pointer samples.
//
// Each terminal cell shows two vertically stacked pixels using the upper
// half block: the foreground color is the top pixel and the background
// color the bottom one. With scale n every framebuffer pixel covers n
// columns and n half rows.
package simulator

import (
	"context"
	"log/slog"

	"github.com/ElectronicKiwi/kolibri/pkg/display"
	"github.com/ElectronicKiwi/kolibri/pkg/graphics"
	"github.com/ElectronicKiwi/kolibri/pkg/input"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const halfBlock = '▀'

// Window presents a framebuffer on a tcell screen.
type Window struct {
	screen tcell.Screen
	fb     *display.Framebuffer
	scale  int
	status string
	logger *slog.Logger
}

// Open initializes the terminal and returns a window for fb.
func Open(fb *display.Framebuffer, scale int) (*Window, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return NewWindow(screen, fb, scale), nil
}

// NewWindow wraps an initialized screen.
func NewWindow(screen tcell.Screen, fb *display.Framebuffer, scale int) *Window {
	if scale < 1 {
		scale = 1
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.Clear()
	fb.MarkDirty(fb.Rect())
	return &Window{screen: screen, fb: fb, scale: scale, logger: slog.Default()}
}

// SetLogger sets the logger for window events.
func (w *Window) SetLogger(logger *slog.Logger) {
	w.logger = logger
}

// Close restores the terminal.
func (w *Window) Close() {
	w.screen.Fini()
}

// Screen returns the underlying tcell screen.
func (w *Window) Screen() tcell.Screen {
	return w.screen
}

// Scale returns the pixel magnification.
func (w *Window) Scale() int {
	return w.scale
}

// SetStatus sets the text shown below the panel.
func (w *Window) SetStatus(text string) {
	w.status = text
}

// Rows returns the number of terminal rows the panel occupies.
func (w *Window) Rows() int {
	return (w.fb.Size().Height*w.scale + 1) / 2
}

// Present copies the framebuffer's dirty region to the terminal and shows
// it.
func (w *Window) Present() {
	dirty := w.fb.TakeDirty()
	if !dirty.IsEmpty() {
		w.paint(dirty)
	}
	w.drawStatus()
	w.screen.Show()
}

func (w *Window) paint(dirty graphics.Rect) {
	s := w.scale
	left, right := dirty.Left*s, dirty.Right*s
	top, bottom := dirty.Top*s/2, (dirty.Bottom*s+1)/2
	for cy := top; cy < bottom; cy++ {
		for cx := left; cx < right; cx++ {
			upper := w.pixel(cx/s, 2*cy/s)
			lower := w.pixel(cx/s, (2*cy+1)/s)
			style := tcell.StyleDefault.Foreground(upper).Background(lower)
			w.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
}

func (w *Window) pixel(x, y int) tcell.Color {
	if y >= w.fb.Size().Height {
		return tcell.ColorBlack
	}
	return cellColor(graphics.FromRGB565(w.fb.Pixel(x, y)))
}

func cellColor(c graphics.Color) tcell.Color {
	r, g, b, _ := c.Components()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (w *Window) drawStatus() {
	width, height := w.screen.Size()
	row := w.Rows()
	if row >= height {
		return
	}
	text := runewidth.Truncate(w.status, width, "…")
	style := tcell.StyleDefault
	x := 0
	for _, r := range text {
		w.screen.SetContent(x, row, r, nil, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
	for ; x < width; x++ {
		w.screen.SetContent(x, row, ' ', nil, style)
	}
}

// SampleFromMouse converts a terminal mouse event into a pointer sample for
// a panel shown at scale.
func SampleFromMouse(ev *tcell.EventMouse, scale int) input.Sample {
	if scale < 1 {
		scale = 1
	}
	x, y := ev.Position()
	p := graphics.Pt(x/scale, 2*y/scale)
	if ev.Buttons()&tcell.Button1 != 0 {
		return input.DownAt(p)
	}
	return input.HoverAt(p)
}

// Run evaluates frame once at start and again after every input event,
// presenting the framebuffer after each frame. It returns nil when the user
// presses Esc or Ctrl-C, the context's error when ctx ends, or the first
// error returned by frame.
func (w *Window) Run(ctx context.Context, frame func(input.Sample) error) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := w.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	sample := input.None()
	step := func() error {
		if err := frame(sample); err != nil {
			return err
		}
		w.Present()
		return nil
	}
	if err := step(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEsc || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				continue
			case *tcell.EventResize:
				cols, rows := ev.Size()
				w.logger.Debug("terminal resized", "cols", cols, "rows", rows)
				w.screen.Clear()
				w.fb.MarkDirty(w.fb.Rect())
			case *tcell.EventMouse:
				sample = SampleFromMouse(ev, w.scale)
			default:
				continue
			}
			if err := step(); err != nil {
				return err
			}
		}
	}
}
