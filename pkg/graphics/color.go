package graphics

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB). Displays with fewer bits per
// channel quantise on write; see [Color.RGB565].
type Color uint32

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// Components returns the red, green, blue and alpha bytes.
func (c Color) Components() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// IsTransparent reports whether the color has zero alpha.
func (c Color) IsTransparent() bool {
	return uint8(c>>24) == 0
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// RGBA implements color.Color with alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8, a8 := c.Components()
	a = uint32(a8) * 0x101
	r = uint32(r8) * 0x101 * a / 0xFFFF
	g = uint32(g8) * 0x101 * a / 0xFFFF
	b = uint32(b8) * 0x101 * a / 0xFFFF
	return r, g, b, a
}

// RGB565 packs the color into the 5-6-5 layout used by SPI LCD panels.
// Alpha is ignored.
func (c Color) RGB565() uint16 {
	r, g, b, _ := c.Components()
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// FromRGB565 expands a 5-6-5 pixel into an opaque Color, replicating the
// high bits into the low bits so that white stays white.
func FromRGB565(p uint16) Color {
	r5 := uint8(p >> 11 & 0x1F)
	g6 := uint8(p >> 5 & 0x3F)
	b5 := uint8(p & 0x1F)
	return RGB(r5<<3|r5>>2, g6<<2|g6>>4, b5<<3|b5>>2)
}

// Quantize returns the color as it appears after a round trip through RGB565.
func (c Color) Quantize() Color {
	return FromRGB565(c.RGB565())
}

// String formats the color as #rrggbb, or #rrggbbaa when not opaque.
func (c Color) String() string {
	r, g, b, a := c.Components()
	if a == 0xFF {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// ParseColor parses #rgb, #rrggbb, #rrggbbaa or one of the named colors
// ("black", "white", "transparent", ...).
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	switch len(hex) {
	case 6:
		hex += "ff"
	case 8:
	default:
		return 0, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	// v is RRGGBBAA; rotate alpha to the top byte.
	return Color(uint32(v)>>8 | uint32(v)<<24), nil
}

// UnmarshalYAML decodes a color written as a string (see [ParseColor]).
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes the color as #rrggbb.
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

// convert maps any color.Color to a Color.
func convert(in color.Color) color.Color {
	if c, ok := in.(Color); ok {
		return c
	}
	r, g, b, a := in.RGBA()
	if a == 0 {
		return ColorTransparent
	}
	// un-premultiply
	r = r * 0xFFFF / a
	g = g * 0xFFFF / a
	b = b * 0xFFFF / a
	return RGBA8(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}

// ColorModel converts arbitrary colors to [Color].
var ColorModel = color.ModelFunc(convert)

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
	ColorCyan        = Color(0xFF00FFFF)
	ColorLightGray   = Color(0xFFD3D3D3)
	ColorDarkGray    = Color(0xFFA9A9A9)
	ColorDarkCyan    = Color(0xFF008B8B)
)

var namedColors = map[string]Color{
	"transparent": ColorTransparent,
	"black":       ColorBlack,
	"white":       ColorWhite,
	"red":         ColorRed,
	"green":       ColorGreen,
	"blue":        ColorBlue,
	"cyan":        ColorCyan,
	"lightgray":   ColorLightGray,
	"darkgray":    ColorDarkGray,
	"darkcyan":    ColorDarkCyan,
}
