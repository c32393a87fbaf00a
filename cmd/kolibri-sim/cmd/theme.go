package cmd

import (
	"fmt"

	"github.com/ElectronicKiwi/kolibri/internal/config"
	"github.com/ElectronicKiwi/kolibri/pkg/theme"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect and validate themes",
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List builtin themes and bundled fonts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Themes:")
		for _, name := range theme.BuiltinNames() {
			fmt.Fprintf(out, "  %s\n", name)
		}
		fmt.Fprintln(out, "Fonts:")
		for _, name := range theme.FontNames() {
			fmt.Fprintf(out, "  %s\n", name)
		}
		return nil
	},
}

var themeValidateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Validate theme files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, path := range args {
			style, err := theme.LoadFile(path)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
				failed++
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s)\n", path, style.Name)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d theme files invalid", failed, len(args))
		}
		return nil
	},
}

var themeDumpCmd = &cobra.Command{
	Use:   "dump [NAME]",
	Short: "Print a theme as YAML",
	Long: `Print a builtin theme or theme file as a complete YAML document.
Without NAME the theme from kolibri.yaml is printed.`,
	Args: cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			style *theme.Style
			err   error
		)
		if len(args) == 1 {
			style, err = config.LoadTheme(projectDir, args[0])
		} else {
			var cfg *config.Resolved
			if cfg, err = config.Resolve(projectDir); err == nil {
				style = cfg.Theme
			}
		}
		if err != nil {
			return err
		}
		data, err := theme.Marshal(style)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	themeCmd.AddCommand(themeListCmd, themeValidateCmd, themeDumpCmd)
}
