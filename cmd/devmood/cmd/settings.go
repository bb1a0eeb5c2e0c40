package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/iiroan/devmood/internal/prefs"
	"github.com/iiroan/devmood/internal/ui"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Edit theme, particles, and auto-change preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := runSettingsForm(commandContext(cmd))
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	},
}

type settingsInput struct {
	theme        string
	colorTheme   string
	particles    bool
	density      string
	autoChange   bool
	autoInterval string
}

func newSettingsInput(p prefs.Preferences) settingsInput {
	return settingsInput{
		theme:        string(p.Theme),
		colorTheme:   string(p.ColorTheme),
		particles:    p.Particles,
		density:      strconv.Itoa(p.ParticleDensity),
		autoChange:   p.AutoChange,
		autoInterval: strconv.Itoa(p.AutoInterval),
	}
}

// preferences converts the form values back, keeping base for anything that
// does not parse.
func (in settingsInput) preferences(base prefs.Preferences) prefs.Preferences {
	p := base
	p.Theme = prefs.DisplayTheme(in.theme)
	p.ColorTheme = prefs.ColorTheme(in.colorTheme)
	p.Particles = in.particles
	p.AutoChange = in.autoChange
	if n, err := strconv.Atoi(in.density); err == nil {
		p.ParticleDensity = n
	}
	if n, err := strconv.Atoi(in.autoInterval); err == nil {
		p.AutoInterval = n
	}
	return p.Normalize()
}

func validateRange(lo, hi int) func(string) error {
	return func(value string) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("enter a whole number")
		}
		if n < lo || n > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}

func runSettingsForm(ctx context.Context) error {
	s := currentStore(ctx)
	current := s.Load(ctx)
	in := newSettingsInput(current)

	colorOptions := make([]huh.Option[string], 0, len(prefs.ColorThemes()))
	for _, c := range prefs.ColorThemes() {
		colorOptions = append(colorOptions, huh.NewOption(ui.ColorThemeLabel(c), string(c)))
	}

	ui.StartScreen("SETTINGS", "Tune the board to your mood")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Display Theme").
				Options(
					huh.NewOption("Light", string(prefs.ThemeLight)),
					huh.NewOption("Dark", string(prefs.ThemeDark)),
				).
				Value(&in.theme),
			huh.NewSelect[string]().
				Title("Color Theme").
				Description("Accent colors for the board").
				Options(colorOptions...).
				Value(&in.colorTheme),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Particles").
				Description("Show the drifting particle strip").
				Value(&in.particles),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Particle Density").
				Description(fmt.Sprintf("%d-%d", prefs.MinParticleDensity, prefs.MaxParticleDensity)).
				Value(&in.density).
				Validate(validateRange(prefs.MinParticleDensity, prefs.MaxParticleDensity)),
		).WithHideFunc(func() bool { return !in.particles }),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Auto-change Jokes").
				Description("Rotate the joke panel on a timer").
				Value(&in.autoChange),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Auto-change Interval").
				Description(fmt.Sprintf("Seconds, %d-%d", prefs.MinAutoInterval, prefs.MaxAutoInterval)).
				Value(&in.autoInterval).
				Validate(validateRange(prefs.MinAutoInterval, prefs.MaxAutoInterval)),
		).WithHideFunc(func() bool { return !in.autoChange }),
	).WithTheme(ui.HuhTheme()).WithKeyMap(ui.HuhKeyMap())

	if err := form.Run(); err != nil {
		return err
	}

	updated := in.preferences(current)
	if err := s.SaveAll(ctx, updated); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	ui.ApplyPreferences(updated, colorDisabled())

	fmt.Println(ui.SuccessBox.Render(fmt.Sprintf(
		"Settings saved\n\nTheme: %s / %s\nParticles: %s\nAuto-change: %s",
		updated.Theme,
		ui.ColorThemeLabel(updated.ColorTheme),
		onOff(updated.Particles, fmt.Sprintf("density %d", updated.ParticleDensity)),
		onOff(updated.AutoChange, fmt.Sprintf("every %ds", updated.AutoInterval)),
	)))
	return nil
}

func onOff(on bool, detail string) string {
	if !on {
		return "off"
	}
	return "on, " + detail
}
