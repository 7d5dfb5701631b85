package render

import (
	"errors"
	"fmt"
	"strings"
)

// Renderer names accepted by New.
const (
	NameQRTerminal = "qrterminal"
	NameGoQRCode   = "goqrcode"
)

var (
	// ErrUnknownRenderer is returned by New for an unsupported renderer name.
	ErrUnknownRenderer = errors.New("unknown renderer")

	// ErrUnknownLevel is returned by ParseLevel for an unsupported level.
	ErrUnknownLevel = errors.New("unknown error correction level")
)

// Renderer draws a payload as a terminal QR code.
type Renderer interface {
	Render(payload string) (string, error)
}

// Level is the QR error correction level.
type Level int

const (
	// LevelLow recovers about 7% of damaged modules.
	LevelLow Level = iota
	// LevelMedium recovers about 15%.
	LevelMedium
	// LevelQuartile recovers about 25%.
	LevelQuartile
	// LevelHigh recovers about 30%.
	LevelHigh
)

// String returns the single letter name of the level.
func (l Level) String() string {
	switch l {
	case LevelLow:
		return "L"
	case LevelMedium:
		return "M"
	case LevelQuartile:
		return "Q"
	case LevelHigh:
		return "H"
	default:
		return "unknown"
	}
}

// ParseLevel parses "L", "M", "Q" or "H" (case-insensitive).
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return LevelLow, nil
	case "M":
		return LevelMedium, nil
	case "Q":
		return LevelQuartile, nil
	case "H":
		return LevelHigh, nil
	default:
		return LevelMedium, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// Names lists the supported renderer names.
func Names() []string {
	return []string{NameQRTerminal, NameGoQRCode}
}

// New returns the renderer registered under name.
func New(name string, level Level) (Renderer, error) {
	switch name {
	case NameQRTerminal:
		return NewQRTerminal(level), nil
	case NameGoQRCode:
		return NewGoQRCode(level), nil
	default:
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownRenderer, name, strings.Join(Names(), ", "))
	}
}
