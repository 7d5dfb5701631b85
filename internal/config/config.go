package config

import (
	"path/filepath"
	"slices"
	"time"

	"github.com/adrg/xdg"
	"github.com/nao1215/wifiqr/internal/credential"
	"github.com/nao1215/wifiqr/internal/render"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "wifiqr"

	// DefaultAirportPath is the macOS airport utility.
	DefaultAirportPath = credential.DefaultAirportPath

	// DefaultSecurityPath is the macOS keychain tool.
	DefaultSecurityPath = credential.DefaultSecurityPath

	// DefaultStageDelay is the minimum time each progress stage stays visible.
	DefaultStageDelay = 400 * time.Millisecond

	// DefaultRenderer is the terminal QR renderer.
	DefaultRenderer = render.NameQRTerminal

	// DefaultLevel is the QR error correction level.
	DefaultLevel = "M"

	// DefaultFormat is the output format.
	DefaultFormat = FormatText

	// DefaultPNGSize is the PNG image width and height in pixels.
	DefaultPNGSize = 256
)

// Output formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatText, FormatMarkdown, FormatJSON}
}

// Config holds all configuration options for wifiqr.
// It is built once from defaults, the config file and flags, then passed
// down explicitly.
type Config struct {
	// AirportPath is the airport utility used to read the current link.
	AirportPath string

	// SecurityPath is the keychain tool used to read the stored password.
	SecurityPath string

	// CommandTimeout bounds each host command. Zero waits indefinitely.
	CommandTimeout time.Duration

	// StageDelay is the minimum visible duration of each progress stage.
	StageDelay time.Duration

	// Renderer selects the terminal QR renderer ("qrterminal" or "goqrcode").
	Renderer string

	// Level is the QR error correction level: L, M, Q or H.
	Level string

	// Hidden marks the network as hidden in the payload.
	Hidden bool

	// Format selects the output format: text, markdown or json.
	Format string

	// PNGPath, when set, also writes the QR code to this PNG file.
	PNGPath string

	// PNGSize is the PNG width and height in pixels.
	PNGSize int

	// StrictExit makes failures exit with status 1. By default wifiqr
	// reports failures and still exits 0.
	StrictExit bool

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the explicitly requested configuration file.
	ConfigFilePath string
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		AirportPath:  DefaultAirportPath,
		SecurityPath: DefaultSecurityPath,
		StageDelay:   DefaultStageDelay,
		Renderer:     DefaultRenderer,
		Level:        DefaultLevel,
		Format:       DefaultFormat,
		PNGSize:      DefaultPNGSize,
	}
}

// XDGConfigDir returns the XDG config directory for wifiqr.
// On Linux: ~/.config/wifiqr
// On macOS: ~/Library/Application Support/wifiqr
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid and returns the first
// problem found.
func (c *Config) Validate() error {
	if c.AirportPath == "" {
		return ErrEmptyAirportPath
	}
	if c.SecurityPath == "" {
		return ErrEmptySecurityPath
	}
	if c.CommandTimeout < 0 {
		return ErrInvalidCommandTimeout
	}
	if c.StageDelay < 0 {
		return ErrInvalidStageDelay
	}
	if !slices.Contains(render.Names(), c.Renderer) {
		return ErrInvalidRenderer
	}
	if _, err := render.ParseLevel(c.Level); err != nil {
		return ErrInvalidLevel
	}
	if !slices.Contains(Formats(), c.Format) {
		return ErrInvalidFormat
	}
	if c.PNGPath != "" && c.PNGSize <= 0 {
		return ErrInvalidPNGSize
	}
	return nil
}

// QRLevel returns the parsed error correction level, falling back to
// medium for an invalid value. Call Validate first to reject bad input.
func (c *Config) QRLevel() render.Level {
	level, err := render.ParseLevel(c.Level)
	if err != nil {
		return render.LevelMedium
	}
	return level
}
