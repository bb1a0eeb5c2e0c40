package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/iiroan/devmood/internal/content"
	"github.com/iiroan/devmood/internal/platform"
	"github.com/iiroan/devmood/internal/rotate"
	"github.com/iiroan/devmood/internal/ui"
	"github.com/iiroan/devmood/internal/weather"
)

var snippetCopy bool

var jokeCmd = &cobra.Command{
	Use:   "joke",
	Short: "Print a random developer joke",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printJoke()
	},
}

var playlistCmd = &cobra.Command{
	Use:   "playlist",
	Short: "Print a random coding playlist",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printPlaylist()
	},
}

var weatherCmd = &cobra.Command{
	Use:   "weather [city]",
	Short: "Show the weather for a city, or for a random location",
	Long: `Look up mock weather. Exact city names match first, then partial
names ("san fran"); anything else resolves to a random city.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showWeather(args)
	},
}

var snippetCmd = &cobra.Command{
	Use:   "snippet",
	Short: "Print a random code snippet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showSnippet(snippetCopy)
	},
}

func init() {
	snippetCmd.Flags().BoolVarP(&snippetCopy, "copy", "c", false, "Copy the snippet to the clipboard")
}

func pick[T comparable](items []T) T {
	var zero T
	next, _ := rotate.Pick(items, zero, rotate.DefaultIntN)
	return next
}

func boxWidth() int {
	return min(ui.TerminalWidth()-2, 80)
}

func printJoke() {
	joke := pick(content.Jokes())
	fmt.Println(ui.InfoBox.Width(boxWidth()).Render(
		ui.Title.Render("😄 Dev Joke") + "\n\n" + joke,
	))
}

func printPlaylist() {
	pl := pick(content.Playlists())
	fmt.Println(ui.InfoBox.Width(boxWidth()).Render(
		ui.Title.Render("🎵 "+pl.Name) + "\n" + ui.MutedStyle.Render(ansi.Truncate(pl.Embed, boxWidth()-4, "...")),
	))
}

func showWeather(args []string) error {
	svc := weather.NewService(nil)
	city := strings.TrimSpace(strings.Join(args, " "))

	var (
		rec   weather.Record
		match weather.Match
	)
	err := ui.RunWithSpinner("Fetching weather", currentConfig().WeatherDelay(), func() error {
		if city != "" {
			rec, match = svc.Resolve(city)
		} else {
			rec = svc.RandomLocation()
		}
		return nil
	})
	if err != nil {
		return err
	}

	if city != "" && match == weather.MatchRandom {
		logger.Debug("no city match", "city", city, "showing", rec.Location)
		fmt.Println(ui.WarningStyle.Render(fmt.Sprintf("! No weather for %q, showing %s instead", city, rec.Location)))
	}
	printWeather(rec)
	return nil
}

func printWeather(rec weather.Record) {
	body := strings.Join([]string{
		ui.Title.Render(rec.Condition.Icon() + "  " + rec.Location),
		fmt.Sprintf("%d°C  %s", rec.Temperature, rec.Description),
		ui.MutedStyle.Render(fmt.Sprintf("humidity %d%%  wind %d km/h", rec.Humidity, rec.WindSpeed)),
	}, "\n")
	fmt.Println(ui.InfoBox.Width(boxWidth()).Render(body))
}

func showSnippet(copyIt bool) error {
	s := pick(content.Snippets())
	fmt.Println(ui.Title.Render("💻 " + s.Language))
	fmt.Println(ui.InfoBox.Width(boxWidth()).Render(strings.TrimRight(s.Code, "\n")))

	if !copyIt {
		return nil
	}
	if err := platform.CopyToClipboard(s.Code); err != nil {
		return fmt.Errorf("copying snippet: %w", err)
	}
	fmt.Println(ui.SuccessStyle.Render("✓ Copied to clipboard"))
	return nil
}

// printSummary is the root command's output when stdout is not a terminal.
func printSummary(ctx context.Context) error {
	p := currentStore(ctx).Load(ctx)
	rec := weather.NewService(nil).RandomLocation()
	pl := pick(content.Playlists())
	s := pick(content.Snippets())

	fmt.Println(ui.Header("mood of the moment"))
	fmt.Println()
	fmt.Println(ui.KeyValue("Joke", pick(content.Jokes())))
	fmt.Println(ui.KeyValue("Playlist", pl.Name))
	fmt.Println(ui.KeyValue("Weather", fmt.Sprintf("%s %d°C, %s", rec.Location, rec.Temperature, rec.Description)))
	fmt.Println(ui.KeyValue("Snippet", s.Language))
	fmt.Println(ui.KeyValue("Theme", fmt.Sprintf("%s / %s", p.Theme, ui.ColorThemeLabel(p.ColorTheme))))
	return nil
}

func waitForEnter(prompt string) error {
	if !ui.IsInteractiveTerminal() {
		return nil
	}
	fmt.Println()
	fmt.Println(ui.HintStyle.Render(prompt))
	reader := bufio.NewReader(os.Stdin)
	_, err := reader.ReadString('\n')
	return err
}
