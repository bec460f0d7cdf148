package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/thenoetrevino/pgsetup/internal/compose"
	"github.com/thenoetrevino/pgsetup/internal/config/colors"
	"github.com/thenoetrevino/pgsetup/internal/envfile"
	"github.com/thenoetrevino/pgsetup/internal/venv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Python is the interpreter used to create the venv
	Python       string             `yaml:"python"`
	Venv         string             `yaml:"venv"`
	Dependencies []venv.Dependency  `yaml:"dependencies"`
	Compose      ComposeConfig      `yaml:"compose"`
	Wait         WaitConfig         `yaml:"wait"`
	Defaults     envfile.Values     `yaml:"defaults"`
	ColorScheme  colors.ColorScheme `yaml:"theme"`
}

// ComposeConfig holds the docker command lines
type ComposeConfig struct {
	Up      string `yaml:"up"`
	Ps      string `yaml:"ps"`
	EnvFile string `yaml:"env_file"`
}

// WaitConfig controls the Postgres readiness probe
type WaitConfig struct {
	Skip     bool          `yaml:"skip"`
	Host     string        `yaml:"host"`
	Attempts uint64        `yaml:"attempts"`
	Interval time.Duration `yaml:"interval"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges theme from PGSETUP_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("PGSETUP_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Defaults.Validate(); err != nil {
		return nil, fmt.Errorf("invalid defaults in %s: %w", configPath, err)
	}

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file. PGSETUP_CONFIG wins over
// the XDG location.
func Path() (string, error) {
	if explicit := os.Getenv("PGSETUP_CONFIG"); explicit != "" {
		return explicit, nil
	}

	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "pgsetup", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "pgsetup", "config.yaml"), nil
}

// DefaultPython returns the interpreter name for the current OS
func DefaultPython() string {
	if runtime.GOOS == "windows" {
		return "python"
	}
	return "python3"
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Python == "" {
		c.Python = DefaultPython()
	}
	if c.Venv == "" {
		c.Venv = venv.DefaultName
	}
	if len(c.Dependencies) == 0 {
		c.Dependencies = venv.DefaultDependencies()
	}
	for i := range c.Dependencies {
		if c.Dependencies[i].Import == "" {
			c.Dependencies[i].Import = c.Dependencies[i].Package
		}
	}

	if c.Compose.Up == "" {
		c.Compose.Up = compose.DefaultUpCommand
	}
	if c.Compose.Ps == "" {
		c.Compose.Ps = compose.DefaultPsCommand
	}
	if c.Compose.EnvFile == "" {
		c.Compose.EnvFile = envfile.DefaultFilename
	}

	if c.Wait.Host == "" {
		c.Wait.Host = "localhost"
	}
	if c.Wait.Attempts == 0 {
		c.Wait.Attempts = 15
	}
	if c.Wait.Interval <= 0 {
		c.Wait.Interval = 2 * time.Second
	}

	c.Defaults = c.Defaults.WithDefaults(envfile.Defaults())
	c.ColorScheme.ApplyDefaults()
}
