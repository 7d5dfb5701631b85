package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFile is the config file name searched in the current
	// and home directories.
	DefaultConfigFile = ".wifiqr"

	// xdgConfigFile is the config file name inside XDGConfigDir.
	xdgConfigFile = "config.yaml"
)

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the structure of the YAML configuration file. Unset fields leave
// the corresponding Config value untouched.
type File struct {
	AirportPath    string         `yaml:"airportPath,omitempty"`
	SecurityPath   string         `yaml:"securityPath,omitempty"`
	CommandTimeout *time.Duration `yaml:"commandTimeout,omitempty"`
	StageDelay     *time.Duration `yaml:"stageDelay,omitempty"`
	Renderer       string         `yaml:"renderer,omitempty"`
	Level          string         `yaml:"level,omitempty"`
	Hidden         *bool          `yaml:"hidden,omitempty"`
	Format         string         `yaml:"format,omitempty"`
	PNGSize        *int           `yaml:"pngSize,omitempty"`
	StrictExit     *bool          `yaml:"strictExit,omitempty"`
}

// LoadConfigFile reads a YAML configuration file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Apply copies every field set in f onto c.
func (f *File) Apply(c *Config) {
	if f.AirportPath != "" {
		c.AirportPath = f.AirportPath
	}
	if f.SecurityPath != "" {
		c.SecurityPath = f.SecurityPath
	}
	if f.CommandTimeout != nil {
		c.CommandTimeout = *f.CommandTimeout
	}
	if f.StageDelay != nil {
		c.StageDelay = *f.StageDelay
	}
	if f.Renderer != "" {
		c.Renderer = f.Renderer
	}
	if f.Level != "" {
		c.Level = f.Level
	}
	if f.Hidden != nil {
		c.Hidden = *f.Hidden
	}
	if f.Format != "" {
		c.Format = f.Format
	}
	if f.PNGSize != nil {
		c.PNGSize = *f.PNGSize
	}
	if f.StrictExit != nil {
		c.StrictExit = *f.StrictExit
	}
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .wifiqr in the current directory
// 3. Look for config.yaml in the XDG config directory
// 4. Look for .wifiqr in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), xdgConfigFile))
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}
