// Package display models an RGB565 SPI LCD as an in-memory framebuffer.
//
// [Framebuffer] implements both [graphics.Canvas] and [draw.Image]. Like a
// display controller it writes through an address window: between
// BeginBatch and EndBatch every primitive must stay inside the batch area.
// It also tracks the dirty region so a presenter only has to push changed
// pixels.
package display

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/ElectronicKiwi/kolibri/pkg/graphics"
	"golang.org/x/image/font"
)

// Stats counts framebuffer activity since creation or the last ResetStats.
type Stats struct {
	Batches       int
	Primitives    int
	PixelsWritten int
}

// Framebuffer is a 16-bit RGB565 pixel store.
type Framebuffer struct {
	width, height int
	pix           []uint16

	window  graphics.Rect
	inBatch bool
	dirty   graphics.Rect
	stats   Stats
}

var (
	_ graphics.Canvas = (*Framebuffer)(nil)
	_ draw.Image      = (*Framebuffer)(nil)
)

// New creates a black framebuffer.
func New(width, height int) *Framebuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Framebuffer{width: width, height: height, pix: make([]uint16, width*height)}
}

// Size returns the panel size in pixels.
func (f *Framebuffer) Size() graphics.Size {
	return graphics.Sz(f.width, f.height)
}

// Rect returns the panel area.
func (f *Framebuffer) Rect() graphics.Rect {
	return graphics.RectFromLTWH(0, 0, f.width, f.height)
}

// Pixel returns the raw RGB565 value at (x, y), or 0 outside the panel.
func (f *Framebuffer) Pixel(x, y int) uint16 {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return 0
	}
	return f.pix[y*f.width+x]
}

// Pix returns the raw pixel buffer in row-major order.
func (f *Framebuffer) Pix() []uint16 {
	return f.pix
}

// Bounds implements image.Image.
func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// ColorModel implements image.Image. Colors are quantized to RGB565.
func (f *Framebuffer) ColorModel() color.Model {
	return rgb565Model
}

// At implements image.Image.
func (f *Framebuffer) At(x, y int) color.Color {
	return graphics.FromRGB565(f.Pixel(x, y))
}

// Set implements draw.Image. It bypasses the batch window and is used by
// image/draw and font rasterising.
func (f *Framebuffer) Set(x, y int, c color.Color) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	gc := graphics.ColorModel.Convert(c).(graphics.Color)
	f.write(x, y, gc.RGB565())
}

var rgb565Model = color.ModelFunc(func(c color.Color) color.Color {
	return graphics.ColorModel.Convert(c).(graphics.Color).Quantize()
})

// TakeDirty returns the region written since the last call and clears it.
func (f *Framebuffer) TakeDirty() graphics.Rect {
	d := f.dirty
	f.dirty = graphics.Rect{}
	return d
}

// MarkDirty adds r to the dirty region, e.g. to force a full present.
func (f *Framebuffer) MarkDirty(r graphics.Rect) {
	f.dirty = f.dirty.Union(r.Intersect(f.Rect()))
}

// Stats returns the activity counters.
func (f *Framebuffer) Stats() Stats {
	return f.stats
}

// ResetStats zeroes the activity counters.
func (f *Framebuffer) ResetStats() {
	f.stats = Stats{}
}

// ToRGBA copies the panel into an RGBA image.
func (f *Framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(f.Bounds())
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			r, g, b, _ := graphics.FromRGB565(f.pix[y*f.width+x]).Components()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xFF})
		}
	}
	return img
}

func (f *Framebuffer) BeginBatch(area graphics.Rect) error {
	if f.inBatch {
		return graphics.ErrBatchOpen
	}
	if !f.Rect().ContainsRect(area) {
		return fmt.Errorf("batch %v: %w", area, graphics.ErrOutOfBounds)
	}
	f.window = area
	f.inBatch = true
	f.stats.Batches++
	return nil
}

func (f *Framebuffer) EndBatch() error {
	if !f.inBatch {
		return graphics.ErrNoBatch
	}
	f.inBatch = false
	f.window = graphics.Rect{}
	return nil
}

// limit returns the area primitives may touch: the batch window when one is
// open, the whole panel otherwise.
func (f *Framebuffer) limit() graphics.Rect {
	if f.inBatch {
		return f.window
	}
	return f.Rect()
}

func (f *Framebuffer) check(op string, r graphics.Rect) error {
	if !f.limit().ContainsRect(r) {
		return fmt.Errorf("%s %v outside %v: %w", op, r, f.limit(), graphics.ErrOutOfBounds)
	}
	f.stats.Primitives++
	return nil
}

// Clear fills the batch window, or the whole panel outside a batch.
func (f *Framebuffer) Clear(c graphics.Color) error {
	r := f.limit()
	f.stats.Primitives++
	v := c.RGB565()
	for y := r.Top; y < r.Bottom; y++ {
		for x := r.Left; x < r.Right; x++ {
			f.write(x, y, v)
		}
	}
	return nil
}

func (f *Framebuffer) DrawRect(r graphics.Rect, paint graphics.Paint) error {
	return f.DrawRoundedRect(r, 0, paint)
}

func (f *Framebuffer) DrawRoundedRect(r graphics.Rect, radius int, paint graphics.Paint) error {
	if err := f.check("rounded rect", r); err != nil {
		return err
	}
	if r.IsEmpty() {
		return nil
	}
	radius = clampRadius(r, radius)
	sw := paint.StrokeWidth
	stroke := sw > 0 && !paint.Stroke.IsTransparent()
	inner := r.Inset(sw, sw)
	innerRadius := max(radius-sw, 0)

	for y := r.Top; y < r.Bottom; y++ {
		for x := r.Left; x < r.Right; x++ {
			if !insideRounded(r, radius, x, y) {
				continue
			}
			if sw > 0 && !insideRounded(inner, innerRadius, x, y) {
				if stroke {
					f.blend(x, y, paint.Stroke)
				}
				continue
			}
			if !paint.Fill.IsTransparent() {
				f.blend(x, y, paint.Fill)
			}
		}
	}
	return nil
}

func (f *Framebuffer) DrawImage(img image.Image, at graphics.Point) error {
	b := img.Bounds()
	dst := graphics.RectFromLTWH(at.X, at.Y, b.Dx(), b.Dy())
	if err := f.check("image", dst); err != nil {
		return err
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := graphics.ColorModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(graphics.Color)
			if c.IsTransparent() {
				continue
			}
			f.blend(dst.Left+x, dst.Top+y, c)
		}
	}
	return nil
}

func (f *Framebuffer) DrawText(text string, at graphics.Point, style graphics.TextStyle) error {
	if style.Font == nil || style.Font.Face == nil {
		return fmt.Errorf("text %q: no font", text)
	}
	r := graphics.RectFromPointSize(at, style.Font.Measure(text))
	if err := f.check("text", r); err != nil {
		return err
	}
	d := font.Drawer{
		Dst:  clipped{f, r},
		Src:  image.NewUniform(style.Color),
		Face: style.Font.Face,
		Dot:  style.Font.Dot(at),
	}
	d.DrawString(text)
	return nil
}

// clipped restricts a draw.Image to a rectangle so glyph overhang stays in
// the checked area.
type clipped struct {
	*Framebuffer
	r graphics.Rect
}

func (c clipped) Bounds() image.Rectangle {
	return c.r.Image()
}

func (c clipped) Set(x, y int, col color.Color) {
	if c.r.Contains(graphics.Pt(x, y)) {
		c.Framebuffer.Set(x, y, col)
	}
}

func (f *Framebuffer) blend(x, y int, c graphics.Color) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	if c.Alpha() < 1 {
		c = over(c, graphics.FromRGB565(f.pix[y*f.width+x]))
	}
	f.write(x, y, c.RGB565())
}

func (f *Framebuffer) write(x, y int, v uint16) {
	f.pix[y*f.width+x] = v
	f.stats.PixelsWritten++
	f.dirty = f.dirty.Union(graphics.RectFromLTWH(x, y, 1, 1))
}

// over composites src over an opaque dst.
func over(src, dst graphics.Color) graphics.Color {
	sr, sg, sb, sa := src.Components()
	dr, dg, db, _ := dst.Components()
	mix := func(s, d uint8) uint8 {
		return uint8((uint32(s)*uint32(sa) + uint32(d)*(255-uint32(sa)) + 127) / 255)
	}
	return graphics.RGB(mix(sr, dr), mix(sg, dg), mix(sb, db))
}

func clampRadius(r graphics.Rect, radius int) int {
	return max(0, min(radius, r.Width()/2, r.Height()/2))
}

// insideRounded reports whether pixel (x, y) lies in r with corners of the
// given radius cut off. Pixel centres are tested against the corner circles.
func insideRounded(r graphics.Rect, radius, x, y int) bool {
	if !r.Contains(graphics.Pt(x, y)) {
		return false
	}
	if radius <= 0 {
		return true
	}
	var cx, cy float64
	px, py := float64(x)+0.5, float64(y)+0.5
	switch {
	case x < r.Left+radius:
		cx = float64(r.Left + radius)
	case x >= r.Right-radius:
		cx = float64(r.Right - radius)
	default:
		return true
	}
	switch {
	case y < r.Top+radius:
		cy = float64(r.Top + radius)
	case y >= r.Bottom-radius:
		cy = float64(r.Bottom - radius)
	default:
		return true
	}
	dx, dy := px-cx, py-cy
	return math.Hypot(dx, dy) <= float64(radius)
}
