package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iiroan/devmood/internal/prefs"
	"github.com/iiroan/devmood/internal/ui"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Inspect and change stored preferences",
}

var prefsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show effective preferences",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)
		s := currentStore(ctx)
		p := s.Load(ctx)
		raw := s.Raw(ctx)

		fmt.Println(ui.Header("preferences"))
		fmt.Println()
		for _, key := range prefs.Keys() {
			value := p.Value(key)
			if _, stored := raw[key]; !stored {
				value += ui.MutedStyle.Render("  (default)")
			}
			fmt.Println(ui.KeyValue(string(key), value))
		}
		return nil
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set KEY=VALUE...",
	Short: "Write one or more preferences",
	Long: `Write preferences. Keys accept their short form, so "theme=dark" and
"devmood-theme=dark" are equivalent. Numbers are clamped into range.`,
	Example: `  devmood prefs set theme=dark particle-density=80
  devmood prefs set auto-change=true auto-interval=30`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		values, err := parseAssignments(args)
		if err != nil {
			return err
		}

		s := currentStore(ctx)
		for _, key := range prefs.Keys() {
			value, ok := values[key]
			if !ok {
				continue
			}
			saved, err := s.Save(ctx, key, value)
			if err != nil {
				return fmt.Errorf("setting %s: %w", key, err)
			}
			fmt.Println(ui.SuccessStyle.Render("✓ ") + ui.KeyValue(string(key), saved))
		}
		return nil
	},
}

// parseAssignments checks every argument before anything is written. Blank
// arguments are skipped and a repeated key keeps its last value.
func parseAssignments(args []string) (map[prefs.Key]string, error) {
	values := make(map[prefs.Key]string, len(args))
	for _, arg := range args {
		if strings.TrimSpace(arg) == "" {
			continue
		}
		key, value, err := prefs.ParseAssignment(arg)
		if err != nil {
			return nil, err
		}
		values[key] = value
	}
	return values, nil
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear stored preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)
		currentStore(ctx).Reset(ctx)
		fmt.Println(ui.SuccessStyle.Render("✓ Preferences reset to defaults"))
		return nil
	},
}

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark]",
	Short:     "Toggle or set the display theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(prefs.ThemeLight), string(prefs.ThemeDark)},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)
		s := currentStore(ctx)

		var theme prefs.DisplayTheme
		if len(args) == 0 {
			theme = s.ToggleTheme(ctx)
		} else {
			saved, err := s.Save(ctx, prefs.KeyTheme, strings.ToLower(args[0]))
			if err != nil {
				return fmt.Errorf("setting theme: %w", err)
			}
			theme = prefs.DisplayTheme(saved)
		}

		fmt.Println(ui.SuccessStyle.Render("✓ Theme set to " + string(theme)))
		return nil
	},
}

func init() {
	prefsCmd.AddCommand(prefsListCmd)
	prefsCmd.AddCommand(prefsSetCmd)
	prefsCmd.AddCommand(prefsResetCmd)
}
