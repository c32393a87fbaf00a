// Package icon provides monochrome bitmap icons for widgets.
//
// Icons are stored as one bit per pixel and tinted at draw time, so a
// button can draw the same icon in the foreground color of whatever state
// it is in.
package icon

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/ElectronicKiwi/kolibri/pkg/graphics"
)

// Icon is a drawable pictogram of fixed size.
type Icon interface {
	// Size returns the icon's pixel size.
	Size() graphics.Size
	// Tinted returns the icon drawn in c.
	Tinted(c graphics.Color) Icon
	// Draw draws the icon with its top-left corner at at.
	Draw(canvas graphics.Canvas, at graphics.Point) error
}

// Bitmap is a one-bit icon. Set pixels are drawn in the tint color; clear
// pixels are left untouched.
type Bitmap struct {
	name  string
	size  graphics.Size
	bits  []bool
	color graphics.Color
}

// Parse builds a bitmap from rows of ASCII art. '#' and 'X' set a pixel, any
// other character leaves it clear. All rows must be the same width.
func Parse(name string, rows ...string) (*Bitmap, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("icon %q: no rows", name)
	}
	w := len(rows[0])
	b := &Bitmap{
		name:  name,
		size:  graphics.Sz(w, len(rows)),
		bits:  make([]bool, w*len(rows)),
		color: graphics.ColorWhite,
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("icon %q: row %d is %d wide, want %d", name, y, len(row), w)
		}
		for x := 0; x < w; x++ {
			b.bits[y*w+x] = row[x] == '#' || row[x] == 'X'
		}
	}
	return b, nil
}

// MustParse is like Parse but panics on malformed art. It is meant for
// package-level icon tables.
func MustParse(name string, rows ...string) *Bitmap {
	b, err := Parse(name, rows...)
	if err != nil {
		panic(err)
	}
	return b
}

// Name returns the icon name.
func (b *Bitmap) Name() string {
	return b.name
}

func (b *Bitmap) Size() graphics.Size {
	return b.size
}

// Color returns the tint.
func (b *Bitmap) Color() graphics.Color {
	return b.color
}

// Tinted returns a copy drawn in c. The pixel data is shared.
func (b *Bitmap) Tinted(c graphics.Color) Icon {
	cp := *b
	cp.color = c
	return &cp
}

// Set reports whether pixel (x, y) is set.
func (b *Bitmap) Set(x, y int) bool {
	if x < 0 || y < 0 || x >= b.size.Width || y >= b.size.Height {
		return false
	}
	return b.bits[y*b.size.Width+x]
}

// Scaled returns the icon magnified n times in both directions.
func (b *Bitmap) Scaled(n int) *Bitmap {
	if n <= 1 {
		return b
	}
	out := &Bitmap{
		name:  fmt.Sprintf("%s@%dx", b.name, n),
		size:  graphics.Sz(b.size.Width*n, b.size.Height*n),
		bits:  make([]bool, b.size.Width*b.size.Height*n*n),
		color: b.color,
	}
	for y := 0; y < out.size.Height; y++ {
		for x := 0; x < out.size.Width; x++ {
			out.bits[y*out.size.Width+x] = b.Set(x/n, y/n)
		}
	}
	return out
}

// Image renders the bitmap as a two-entry paletted image: transparent and
// the tint color.
func (b *Bitmap) Image() *image.Paletted {
	img := image.NewPaletted(
		image.Rect(0, 0, b.size.Width, b.size.Height),
		color.Palette{color.Transparent, b.color},
	)
	for y := 0; y < b.size.Height; y++ {
		for x := 0; x < b.size.Width; x++ {
			if b.bits[y*b.size.Width+x] {
				img.SetColorIndex(x, y, 1)
			}
		}
	}
	return img
}

func (b *Bitmap) Draw(canvas graphics.Canvas, at graphics.Point) error {
	return canvas.DrawImage(b.Image(), at)
}

// String renders the bitmap back to ASCII art, one row per line.
func (b *Bitmap) String() string {
	var sb strings.Builder
	for y := 0; y < b.size.Height; y++ {
		for x := 0; x < b.size.Width; x++ {
			if b.Set(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		if y < b.size.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
