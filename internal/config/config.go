// Package config handles configuration loading and validation for devmood
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/iiroan/devmood/internal/platform"
	"github.com/iiroan/devmood/internal/prefs"
)

const (
	EnvConfig    = "DEVMOOD_CONFIG"
	EnvStore     = "DEVMOOD_STORE"
	EnvStorePath = "DEVMOOD_STORE_PATH"
)

// Config represents the main configuration for devmood
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Board   BoardConfig   `yaml:"board"`
}

// StorageConfig selects the preference backend
type StorageConfig struct {
	Driver string `yaml:"driver"` // file, sqlite or memory
	Path   string `yaml:"path"`
	Watch  bool   `yaml:"watch"`
}

// BoardConfig holds TUI timings and layout
type BoardConfig struct {
	TransitionDelay string `yaml:"transition_delay"`
	WeatherDelay    string `yaml:"weather_delay"`
	StartTab        string `yaml:"start_tab"`
}

// Tabs returns the board tab names in display order.
func Tabs() []string {
	return []string{"jokes", "music", "weather", "snippets"}
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver: prefs.DriverFile,
			Watch:  true,
		},
		Board: BoardConfig{
			TransitionDelay: "300ms",
			WeatherDelay:    "800ms",
			StartTab:        "jokes",
		},
	}
}

// LoadEnv loads a .env file from the working directory when present.
func LoadEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := godotenv.Load(".env"); err != nil {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyEnv()

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvStore)); v != "" {
		c.Storage.Driver = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvStorePath)); v != "" {
		c.Storage.Path = v
	}
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// ErrExists is returned by WriteDefault when the file is already there.
var ErrExists = errors.New("config file already exists")

// WriteDefault writes the default configuration to path. An existing file is
// only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrExists)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("checking config: %w", err)
		}
	}
	return DefaultConfig().Save(path)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	driver := strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	if !contains(prefs.Drivers(), driver) {
		return fmt.Errorf("storage.driver must be one of %s", strings.Join(prefs.Drivers(), ", "))
	}
	if _, err := parsePositive("board.transition_delay", c.Board.TransitionDelay); err != nil {
		return err
	}
	if _, err := parsePositive("board.weather_delay", c.Board.WeatherDelay); err != nil {
		return err
	}
	if c.Board.StartTab != "" && !contains(Tabs(), strings.ToLower(c.Board.StartTab)) {
		return fmt.Errorf("board.start_tab must be one of %s", strings.Join(Tabs(), ", "))
	}
	return nil
}

// TransitionDelay returns the cross-fade delay, falling back to 300ms.
func (c *Config) TransitionDelay() time.Duration {
	d, err := parsePositive("", c.Board.TransitionDelay)
	if err != nil {
		return 300 * time.Millisecond
	}
	return d
}

// WeatherDelay returns the simulated fetch delay, falling back to 800ms.
func (c *Config) WeatherDelay() time.Duration {
	d, err := parsePositive("", c.Board.WeatherDelay)
	if err != nil {
		return 800 * time.Millisecond
	}
	return d
}

// StorePath returns the backend location, defaulting into the config dir.
func (c *Config) StorePath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	dir, err := platform.ConfigDir()
	if err != nil {
		return "", err
	}
	if strings.EqualFold(c.Storage.Driver, prefs.DriverSQLite) {
		return filepath.Join(dir, "preferences.db"), nil
	}
	return filepath.Join(dir, "preferences.yaml"), nil
}

// GetConfigPath returns the config file location: $DEVMOOD_CONFIG or
// devmood.yaml in the user config directory
func GetConfigPath() (string, error) {
	if v := os.Getenv(EnvConfig); v != "" {
		return v, nil
	}
	dir, err := platform.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "devmood.yaml"), nil
}

// LoadDefault loads configuration from the default location
func LoadDefault() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

func parsePositive(field string, value string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", field, value)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive", field)
	}
	return d, nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
