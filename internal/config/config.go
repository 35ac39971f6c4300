package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Display modes
const (
	ModePlain = "plain"
	ModeTUI   = "tui"
)

// Config represents the application configuration
type Config struct {
	Packages []Package     `json:"packages"`
	Display  DisplayConfig `json:"display"`
}

// Package is a raw sensor package: a workout tag ("RUN", "WLK", "SWM")
// followed by the values the tracker recorded for it
type Package struct {
	Type string    `json:"type"`
	Data []float64 `json:"data"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	Mode        string `json:"mode"`
	ChartHeight int    `json:"chart_height"`
	Summary     bool   `json:"summary"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// ErrConfigExists is returned by CreateExample when a config file is already in place
var ErrConfigExists = errors.New("config file already exists")

// SamplePackages returns the readings the tracker ships with
func SamplePackages() []Package {
	return []Package{
		{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Packages: SamplePackages(),
		Display: DisplayConfig{
			Mode:        ModePlain,
			ChartHeight: 8,
		},
	}
}

// Load reads the configuration from ~/.ftracker/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from the given path
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Packages == nil {
		cfg.Packages = defaults.Packages
	}
	if cfg.Display.Mode == "" {
		cfg.Display.Mode = defaults.Display.Mode
	}
	if cfg.Display.ChartHeight == 0 {
		cfg.Display.ChartHeight = defaults.Display.ChartHeight
	}

	return &cfg, nil
}

// SaveTo writes the configuration to the given path
func SaveTo(path string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample writes an example config file at path. An existing file is
// left untouched and ErrConfigExists is returned.
func CreateExample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return ErrConfigExists
	}

	example := DefaultConfig()
	example.Display.Summary = true

	return SaveTo(path, &example)
}

// Validate checks the display settings. Packages are not checked here;
// an unknown tag is reported when the package is read.
func (c *Config) Validate() error {
	if c.Display.Mode != "" && c.Display.Mode != ModePlain && c.Display.Mode != ModeTUI {
		return fmt.Errorf("display.mode must be %q or %q, got %q", ModePlain, ModeTUI, c.Display.Mode)
	}
	if c.Display.ChartHeight < 0 {
		return fmt.Errorf("display.chart_height must not be negative, got %d", c.Display.ChartHeight)
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".ftracker"), nil
}

// DefaultPath returns the path Load reads from
func DefaultPath() (string, error) {
	return getConfigPath()
}
