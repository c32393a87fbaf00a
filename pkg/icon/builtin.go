package icon

import "sort"

// Built-in 12x12 icons.
var (
	Add = MustParse("add",
		"............",
		".....##.....",
		".....##.....",
		".....##.....",
		".....##.....",
		".##########.",
		".##########.",
		".....##.....",
		".....##.....",
		".....##.....",
		".....##.....",
		"............",
	)
	Minus = MustParse("minus",
		"............",
		"............",
		"............",
		"............",
		"............",
		".##########.",
		".##########.",
		"............",
		"............",
		"............",
		"............",
		"............",
	)
	Check = MustParse("check",
		"............",
		"..........#.",
		".........##.",
		"........##..",
		".......##...",
		"#.....##....",
		"##...##.....",
		".##.##......",
		"..###.......",
		"...#........",
		"............",
		"............",
	)
	Close = MustParse("close",
		"............",
		".##......##.",
		"..##....##..",
		"...##..##...",
		"....####....",
		".....##.....",
		"....####....",
		"...##..##...",
		"..##....##..",
		".##......##.",
		"............",
		"............",
	)
	ArrowLeft = MustParse("arrow-left",
		"............",
		"....#.......",
		"...##.......",
		"..###.......",
		".##########.",
		"###########.",
		".##########.",
		"..###.......",
		"...##.......",
		"....#.......",
		"............",
		"............",
	)
	ArrowRight = MustParse("arrow-right",
		"............",
		".......#....",
		".......##...",
		".......###..",
		".##########.",
		".###########",
		".##########.",
		".......###..",
		".......##...",
		".......#....",
		"............",
		"............",
	)
	Home = MustParse("home",
		".....##.....",
		"....####....",
		"...######...",
		"..########..",
		".##########.",
		"############",
		"..########..",
		"..##....##..",
		"..##....##..",
		"..##....##..",
		"..########..",
		"............",
	)
	Settings = MustParse("settings",
		".....##.....",
		"..#.####.#..",
		".##########.",
		"..###..###..",
		".###....###.",
		"###......###",
		"###......###",
		".###....###.",
		"..###..###..",
		".##########.",
		"..#.####.#..",
		".....##.....",
	)
)

var builtins = map[string]*Bitmap{}

func init() {
	for _, b := range []*Bitmap{Add, Minus, Check, Close, ArrowLeft, ArrowRight, Home, Settings} {
		builtins[b.Name()] = b
	}
}

// Lookup returns a built-in icon by name.
func Lookup(name string) (*Bitmap, bool) {
	b, ok := builtins[name]
	return b, ok
}

// Names lists the built-in icons in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
