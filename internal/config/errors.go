package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrEmptyAirportPath is returned when no airport utility path is set.
	ErrEmptyAirportPath = errors.New("invalid airport path: must not be empty")

	// ErrEmptySecurityPath is returned when no security tool path is set.
	ErrEmptySecurityPath = errors.New("invalid security path: must not be empty")

	// ErrInvalidCommandTimeout is returned for a negative command timeout.
	// Use 0 to wait indefinitely.
	ErrInvalidCommandTimeout = errors.New("invalid command timeout: must be non-negative")

	// ErrInvalidStageDelay is returned for a negative stage delay.
	ErrInvalidStageDelay = errors.New("invalid stage delay: must be non-negative")

	// ErrInvalidRenderer is returned for an unsupported renderer name.
	ErrInvalidRenderer = errors.New("invalid renderer: must be qrterminal or goqrcode")

	// ErrInvalidLevel is returned for an unsupported error correction level.
	ErrInvalidLevel = errors.New("invalid error correction level: must be L, M, Q or H")

	// ErrInvalidFormat is returned for an unsupported output format.
	ErrInvalidFormat = errors.New("invalid format: must be text, markdown or json")

	// ErrInvalidPNGSize is returned when a PNG is requested with a non-positive size.
	ErrInvalidPNGSize = errors.New("invalid PNG size: must be positive")
)
