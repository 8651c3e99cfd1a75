// Package config loads the optional fsh.yaml settings file and the optional
// .fsh.env environment file. Both are looked up in the user's home
// directory; a missing file is not an error.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Config holds user preferences for the shell.
type Config struct {
	// Editor is the command used by the edit command. Empty means the OS
	// default association for the file.
	Editor string `yaml:"editor,omitempty"`

	// StartDir is the directory the shell starts in. Empty means the
	// process working directory.
	StartDir string `yaml:"start_dir,omitempty"`

	// NoColor disables styled output.
	NoColor bool `yaml:"no_color,omitempty"`

	// Verbose enables diagnostic logging.
	Verbose bool `yaml:"verbose,omitempty"`
}

const (
	ConfigFileName = "fsh.yaml"
	EnvFileName    = ".fsh.env"
)

// Load reads fsh.yaml from dir. It returns ErrConfigNotFound when the file
// is absent so callers can fall back to defaults.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEnvFile loads .fsh.env from dir into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadEnvFile(dir string) error {
	envPath := filepath.Join(dir, EnvFileName)
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(envPath)
}

// ApplyEnv overlays FSH_* environment variables onto cfg. Environment wins
// over the config file, matching the usual precedence: flags > env > file.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("FSH_EDITOR"); v != "" {
		cfg.Editor = v
	}
	if v := os.Getenv("FSH_START_DIR"); v != "" {
		cfg.StartDir = v
	}
	if v := os.Getenv("FSH_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = b
		}
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
}
