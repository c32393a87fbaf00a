package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ElectronicKiwi/kolibri/internal/config"
	"github.com/ElectronicKiwi/kolibri/pkg/display"
	"github.com/ElectronicKiwi/kolibri/pkg/input"
	"github.com/ElectronicKiwi/kolibri/pkg/simulator"
	"github.com/ElectronicKiwi/kolibri/pkg/ui"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the demo application in the terminal simulator",
	Long: `Run the demo application on a simulated framebuffer drawn into the
terminal with half-block characters. Use the mouse to hover and click.
Press Esc or Ctrl-C to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fb := display.New(cfg.Width, cfg.Height)
		win, err := simulator.Open(fb, cfg.Scale)
		if err != nil {
			return fmt.Errorf("failed to open terminal: %w", err)
		}
		defer win.Close()

		logger := slog.Default().With("app", cfg.AppName)
		win.SetLogger(logger)
		return runDemo(ctx, win, fb, cfg, logger)
	},
}

func init() {
	addDisplayFlags(runCmd.Flags())
}

func runDemo(ctx context.Context, win *simulator.Window, fb *display.Framebuffer, cfg *config.Resolved, logger *slog.Logger) error {
	u := ui.New(fb, cfg.Theme,
		ui.WithDragPolicy(cfg.DragPolicy),
		ui.WithWrap(cfg.Wrap),
		ui.WithLogger(logger),
	)
	app := newDemo(cfg.Capacity, cfg.ThemeName)

	frames := 0
	return win.Run(ctx, func(s input.Sample) error {
		if err := app.step(u, s); err != nil {
			return err
		}
		frames++
		st := u.Stats()
		win.SetStatus(fmt.Sprintf("%s %dx%d frame %d redrawn %d/%d",
			cfg.AppName, cfg.Width, cfg.Height, frames, st.Redrawn, st.Widgets))
		return nil
	})
}

// resolveConfig loads kolibri.yaml and applies the display flags on top.
func resolveConfig(cmd *cobra.Command) (*config.Resolved, error) {
	cfg, err := config.Resolve(projectDir)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("theme") {
		name, _ := flags.GetString("theme")
		style, err := config.LoadTheme(cfg.Root, name)
		if err != nil {
			return nil, err
		}
		cfg.ThemeName, cfg.Theme = name, style
	}
	if flags.Changed("scale") {
		scale, _ := flags.GetInt("scale")
		if scale < 1 {
			return nil, fmt.Errorf("--scale must be at least 1 (got %d)", scale)
		}
		cfg.Scale = scale
	}
	if flags.Changed("drag-policy") {
		s, _ := flags.GetString("drag-policy")
		policy, err := config.ParseDragPolicy(s)
		if err != nil {
			return nil, err
		}
		cfg.DragPolicy = policy
	}
	slog.Debug("configuration resolved",
		"root", cfg.Root,
		"theme", cfg.ThemeName,
		"width", cfg.Width,
		"height", cfg.Height,
		"scale", cfg.Scale,
		"drag_policy", cfg.DragPolicy.String(),
	)
	return cfg, nil
}
