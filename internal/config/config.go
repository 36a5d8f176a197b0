package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"randompick/internal/errors"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Default values for the animation and presentation settings.
const (
	DefaultLocale   = "en"
	DefaultTicks    = 20
	DefaultInterval = 100 * time.Millisecond
	DefaultTheme    = "default"

	maxTicks    = 1000
	maxInterval = 10 * time.Second
)

// Config represents the application configuration structure.
type Config struct {
	Locale    string `yaml:"locale"` // UI language: en or es
	Animation struct {
		Ticks    int           `yaml:"ticks"`    // Candidates shown before the final pick
		Interval time.Duration `yaml:"interval"` // Delay between candidates, e.g. "100ms"
	} `yaml:"animation"`
	Exclude []string `yaml:"exclude"` // Glob patterns; matching items are never picked
	Theme   struct {
		Name    string `yaml:"name"`    // Theme name (default, dark, light, ...)
		Primary string `yaml:"primary"` // Titles and the result panel border
		Accent  string `yaml:"accent"`  // Candidate and final pick text
		Muted   string `yaml:"muted"`   // Help text and disabled controls
		Error   string `yaml:"error"`   // Empty-input message
	} `yaml:"theme"`
	Debug   bool   `yaml:"debug"`    // Enable debug logging
	LogFile string `yaml:"log_file"` // Where interactive front ends write logs
}

// DefaultPath returns ~/.config/randompick/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "randompick", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.NewFileError("error reading config file", path, errors.FileAccessDenied, err)
	}

	// Fields absent from the file keep their defaults. Theme colors are
	// cleared first so a named theme fills whatever the file leaves out.
	cfg.Theme.Name, cfg.Theme.Primary, cfg.Theme.Accent, cfg.Theme.Muted, cfg.Theme.Error = "", "", "", "", ""
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}
	cfg.fillTheme()

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Locale = DefaultLocale
	cfg.Animation.Ticks = DefaultTicks
	cfg.Animation.Interval = DefaultInterval
	cfg.Exclude = []string{}
	cfg.ApplyTheme(DefaultTheme)
	return cfg
}

// New returns the default configuration.
func New() *Config {
	return defaultConfig()
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	if c.Locale == "" {
		return errors.NewConfigError("locale is required", "locale", errors.InvalidConfig, nil)
	}

	if c.Animation.Ticks < 1 || c.Animation.Ticks > maxTicks {
		return errors.NewConfigError(
			fmt.Sprintf("ticks must be between 1 and %d", maxTicks),
			"animation.ticks", errors.InvalidConfig, nil)
	}

	if c.Animation.Interval <= 0 || c.Animation.Interval > maxInterval {
		return errors.NewConfigError(
			fmt.Sprintf("interval must be > 0 and <= %s", maxInterval),
			"animation.interval", errors.InvalidConfig, nil)
	}

	for i, pattern := range c.Exclude {
		if pattern == "" {
			return errors.NewConfigError(fmt.Sprintf("exclude %d: pattern is empty", i), "exclude", errors.InvalidPattern, nil)
		}
		if _, err := glob.Compile(pattern); err != nil {
			return errors.NewConfigError("invalid exclude pattern", pattern, errors.InvalidPattern, err)
		}
	}

	if c.Theme.Name != "" {
		if _, ok := themes[c.Theme.Name]; !ok {
			return errors.NewConfigError("unknown theme", c.Theme.Name, errors.InvalidConfig, nil)
		}
	}

	return nil
}

var themes = map[string]map[string]string{
	"default": {
		"primary": "213", // Purple
		"accent":  "114", // Green
		"muted":   "245", // Grey
		"error":   "196", // Red
	},
	"dark": {
		"primary": "105",
		"accent":  "78",
		"muted":   "240",
		"error":   "160",
	},
	"light": {
		"primary": "135",
		"accent":  "28",
		"muted":   "248",
		"error":   "210",
	},
	"monochrome": {
		"primary": "252",
		"accent":  "255",
		"muted":   "241",
		"error":   "255",
	},
	"ocean": {
		"primary": "31",
		"accent":  "51",
		"muted":   "67",
		"error":   "196",
	},
}

func (c *Config) fillTheme() {
	if c.Theme.Name == "" {
		c.Theme.Name = DefaultTheme
	}
	theme := GetTheme(c.Theme.Name)
	if c.Theme.Primary == "" {
		c.Theme.Primary = theme["primary"]
	}
	if c.Theme.Accent == "" {
		c.Theme.Accent = theme["accent"]
	}
	if c.Theme.Muted == "" {
		c.Theme.Muted = theme["muted"]
	}
	if c.Theme.Error == "" {
		c.Theme.Error = theme["error"]
	}
}

// GetTheme returns a predefined theme by name, or the default theme.
func GetTheme(name string) map[string]string {
	if theme, exists := themes[name]; exists {
		return theme
	}
	return themes[DefaultTheme]
}

// ApplyTheme sets the theme colors from a predefined theme.
func (c *Config) ApplyTheme(name string) {
	theme := GetTheme(name)

	c.Theme.Name = name
	c.Theme.Primary = theme["primary"]
	c.Theme.Accent = theme["accent"]
	c.Theme.Muted = theme["muted"]
	c.Theme.Error = theme["error"]
}

// ListThemes returns a list of available theme names.
func ListThemes() []string {
	return []string{"default", "dark", "light", "monochrome", "ocean"}
}
