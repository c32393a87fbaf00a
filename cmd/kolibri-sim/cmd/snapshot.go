package cmd

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ElectronicKiwi/kolibri/internal/config"
	"github.com/ElectronicKiwi/kolibri/pkg/display"
	"github.com/ElectronicKiwi/kolibri/pkg/graphics"
	"github.com/ElectronicKiwi/kolibri/pkg/input"
	"github.com/ElectronicKiwi/kolibri/pkg/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render the demo application to an image file",
	Long: `Render the demo application headlessly and write the framebuffer
to a PNG or BMP file. The format follows the --out extension.

Taps are replayed in order before the snapshot is taken:

  kolibri-sim snapshot --out screen.png --tap 40,12 --tap 40,12 --scale 3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		tapSpecs, _ := cmd.Flags().GetStringArray("tap")

		taps := make([]graphics.Point, 0, len(tapSpecs))
		for _, spec := range tapSpecs {
			p, err := parsePoint(spec)
			if err != nil {
				return err
			}
			taps = append(taps, p)
		}

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		fb, err := renderSnapshot(cfg, taps)
		if err != nil {
			return err
		}
		if err := writeImage(out, fb, cfg.Scale); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%dx%d)\n", out, cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
		return nil
	},
}

func init() {
	snapshotCmd.Flags().StringP("out", "o", "snapshot.png", "output file (.png or .bmp)")
	snapshotCmd.Flags().StringArray("tap", nil, "tap at x,y before rendering (repeatable)")
	addDisplayFlags(snapshotCmd.Flags())
}

// addDisplayFlags registers the flags shared by run and snapshot.
func addDisplayFlags(fs *pflag.FlagSet) {
	fs.String("theme", "", "builtin theme name or theme file (overrides kolibri.yaml)")
	fs.Int("scale", config.DefaultScale, "pixel scale factor")
	fs.String("drag-policy", "", "pointer drag policy: follow or capture")
}

// renderSnapshot runs the demo on a fresh framebuffer, replaying taps.
func renderSnapshot(cfg *config.Resolved, taps []graphics.Point) (*display.Framebuffer, error) {
	fb := display.New(cfg.Width, cfg.Height)
	u := ui.New(fb, cfg.Theme,
		ui.WithDragPolicy(cfg.DragPolicy),
		ui.WithWrap(cfg.Wrap),
		ui.WithLogger(slog.Default()),
	)
	app := newDemo(cfg.Capacity, cfg.ThemeName)

	samples := []input.Sample{input.None()}
	for _, p := range taps {
		samples = append(samples, input.DownAt(p), input.HoverAt(p))
	}
	for _, s := range samples {
		if err := app.step(u, s); err != nil {
			return nil, err
		}
	}
	slog.Debug("snapshot rendered", "frames", len(samples), "primitives", fb.Stats().Primitives)
	return fb, nil
}

func writeImage(path string, fb *display.Framebuffer, scale int) (err error) {
	var img image.Image = fb.ToRGBA()
	if scale > 1 {
		src := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, src.Dx()*scale, src.Dy()*scale))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, src, xdraw.Src, nil)
		img = dst
	}

	var encode func(io.Writer, image.Image) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = png.Encode
	case ".bmp":
		encode = bmp.Encode
	default:
		return fmt.Errorf("unsupported image format %q (use .png or .bmp)", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

func parsePoint(s string) (graphics.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return graphics.Point{}, fmt.Errorf("invalid point %q (want x,y)", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return graphics.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return graphics.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return graphics.Point{X: x, Y: y}, nil
}
