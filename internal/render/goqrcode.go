package render

import (
	"fmt"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
)

// GoQRCode renders with github.com/skip2/go-qrcode.
type GoQRCode struct {
	level Level
}

// NewGoQRCode creates a GoQRCode renderer.
func NewGoQRCode(level Level) *GoQRCode {
	return &GoQRCode{level: level}
}

// Render implements Renderer.
func (r *GoQRCode) Render(payload string) (string, error) {
	q, err := qrcode.New(payload, recoveryLevel(r.level))
	if err != nil {
		return "", fmt.Errorf("failed to encode QR code: %w", err)
	}
	return q.ToSmallString(false), nil
}

// WritePNG writes payload as a size x size PNG image to path, creating
// parent directories as needed.
func WritePNG(payload string, level Level, size int, path string) error {
	q, err := qrcode.New(payload, recoveryLevel(level))
	if err != nil {
		return fmt.Errorf("failed to encode QR code: %w", err)
	}

	png, err := q.PNG(size)
	if err != nil {
		return fmt.Errorf("failed to render PNG: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// The image embeds the network password.
	if err := os.WriteFile(path, png, 0600); err != nil {
		return fmt.Errorf("failed to write PNG: %w", err)
	}
	return nil
}

func recoveryLevel(level Level) qrcode.RecoveryLevel {
	switch level {
	case LevelLow:
		return qrcode.Low
	case LevelQuartile:
		return qrcode.High
	case LevelHigh:
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}
