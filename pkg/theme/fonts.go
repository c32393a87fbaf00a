package theme

import (
	"sort"

	"github.com/ElectronicKiwi/kolibri/pkg/graphics"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
)

// Bundled fixed-size fonts, addressable by name from theme files.
var (
	Font7x13          = graphics.NewFont("7x13", basicfont.Face7x13)
	FontInconsolata   = graphics.NewFont("inconsolata", inconsolata.Regular8x16)
	FontInconsolataBd = graphics.NewFont("inconsolata-bold", inconsolata.Bold8x16)
)

var fonts = map[string]*graphics.Font{
	Font7x13.Name:          Font7x13,
	FontInconsolata.Name:   FontInconsolata,
	FontInconsolataBd.Name: FontInconsolataBd,
}

// LookupFont returns a bundled font by name.
func LookupFont(name string) (*graphics.Font, bool) {
	f, ok := fonts[name]
	return f, ok
}

// FontNames lists the bundled font names in sorted order.
func FontNames() []string {
	names := make([]string, 0, len(fonts))
	for name := range fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
