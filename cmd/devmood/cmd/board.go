package cmd

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/huh"

	"github.com/iiroan/devmood/internal/platform"
	"github.com/iiroan/devmood/internal/prefs"
	"github.com/iiroan/devmood/internal/rotate"
	"github.com/iiroan/devmood/internal/ui"
)

func runBoard(ctx context.Context) error {
	if !ui.IsInteractiveTerminal() {
		return printSummary(ctx)
	}

	for {
		action, err := runBoardOnce(ctx)
		if err != nil {
			logger.Warn("board unavailable, falling back to prompts", "error", err)
			return runBoardFallback(ctx)
		}

		if action != ui.BoardActionSettings {
			return nil
		}
		if err := runSettingsForm(ctx); err != nil && !errors.Is(err, huh.ErrUserAborted) {
			return err
		}
	}
}

func runBoardOnce(ctx context.Context) (ui.BoardAction, error) {
	restore := redirectLogs()
	defer restore()

	c := currentConfig()
	s := currentStore(ctx)
	p := s.Load(ctx)

	var program *tea.Program
	advancer := rotate.NewAdvancer(func() {
		program.Send(ui.JokeAdvanceMsg{})
	})
	defer advancer.Stop()

	var copyFn func(string) error
	if platform.ClipboardAvailable() {
		copyFn = platform.CopyToClipboard
	}

	model := ui.NewBoard(ui.BoardOptions{
		Preferences:     p,
		StartTab:        ui.ParseTab(c.Board.StartTab),
		TransitionDelay: c.TransitionDelay(),
		WeatherDelay:    c.WeatherDelay(),
		NoColor:         colorDisabled(),
		Advancer:        advancer,
		ToggleTheme: func(t prefs.DisplayTheme) {
			if _, err := s.Save(ctx, prefs.KeyTheme, string(t)); err != nil {
				logger.Debug("saving theme", "error", err)
			}
		},
		Copy: copyFn,
	})

	program = tea.NewProgram(model)
	advancer.Configure(p.AutoChange, p.AutoIntervalDuration())

	relay := ui.NewThemeRelay(func(msg tea.Msg) { program.Send(msg) })
	unsubscribe := s.OnThemeChange(relay.Notify)
	defer unsubscribe()

	if path := watchPath(); path != "" {
		w, err := prefs.Watch(path, func() {
			program.Send(ui.PreferencesMsg{Preferences: s.Load(ctx)})
		}, logger)
		if err != nil {
			logger.Debug("not watching preferences", "path", path, "error", err)
		} else {
			defer w.Close()
		}
	}

	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("running board: %w", err)
	}
	if board, ok := final.(ui.Board); ok {
		return board.Action(), nil
	}
	return ui.BoardActionQuit, nil
}

func runBoardFallback(ctx context.Context) error {
	for {
		ui.StartScreen("MOOD BOARD", "Pick something to lift the mood.")

		var choice string
		err := huh.NewSelect[string]().
			Title("DevMood").
			Description("What would you like to see?").
			Options(
				huh.NewOption("Dev Joke", "joke"),
				huh.NewOption("Coding Playlist", "playlist"),
				huh.NewOption("Weather", "weather"),
				huh.NewOption("Code Snippet", "snippet"),
				huh.NewOption("Settings", "settings"),
				huh.NewOption("Exit", "exit"),
			).
			Value(&choice).
			WithTheme(ui.HuhTheme()).
			WithKeyMap(ui.HuhKeyMap()).
			Run()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		switch choice {
		case "joke":
			printJoke()
		case "playlist":
			printPlaylist()
		case "weather":
			if err := showWeather(nil); err != nil {
				return err
			}
		case "snippet":
			if err := showSnippet(false); err != nil {
				return err
			}
		case "settings":
			if err := runSettingsForm(ctx); err != nil && !errors.Is(err, huh.ErrUserAborted) {
				return err
			}
		default:
			return nil
		}

		if err := waitForEnter("Press enter to return to the board"); err != nil {
			return err
		}
	}
}
