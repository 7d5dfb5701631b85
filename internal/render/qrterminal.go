package render

import (
	"bytes"
	"fmt"

	"github.com/mdp/qrterminal/v3"
	"rsc.io/qr"
)

// qrterminalQuietZone is the border width in modules around the code.
const qrterminalQuietZone = 1

// QRTerminal renders with github.com/mdp/qrterminal/v3 using half blocks.
type QRTerminal struct {
	level Level
}

// NewQRTerminal creates a QRTerminal renderer.
func NewQRTerminal(level Level) *QRTerminal {
	return &QRTerminal{level: level}
}

// Render implements Renderer.
func (r *QRTerminal) Render(payload string) (string, error) {
	// GenerateWithConfig drops encoding errors and panics on them.
	if _, err := qr.Encode(payload, r.qrLevel()); err != nil {
		return "", fmt.Errorf("failed to encode QR code: %w", err)
	}

	var buf bytes.Buffer
	qrterminal.GenerateWithConfig(payload, qrterminal.Config{
		Level:          r.qrLevel(),
		Writer:         &buf,
		HalfBlocks:     true,
		BlackChar:      qrterminal.BLACK_BLACK,
		WhiteBlackChar: qrterminal.WHITE_BLACK,
		WhiteChar:      qrterminal.WHITE_WHITE,
		BlackWhiteChar: qrterminal.BLACK_WHITE,
		QuietZone:      qrterminalQuietZone,
	})
	return buf.String(), nil
}

func (r *QRTerminal) qrLevel() qr.Level {
	switch r.level {
	case LevelLow:
		return qr.L
	case LevelQuartile:
		return qr.Q
	case LevelHigh:
		return qr.H
	default:
		return qr.M
	}
}
