package pipeline

import (
	"context"

	"github.com/nao1215/wifiqr/internal/credential"
	"github.com/nao1215/wifiqr/internal/render"
	"github.com/nao1215/wifiqr/internal/wifi"
)

// CredentialsStep reads the SSID and its stored password.
type CredentialsStep struct {
	source credential.Source
}

// NewCredentialsStep creates a CredentialsStep.
func NewCredentialsStep(source credential.Source) *CredentialsStep {
	return &CredentialsStep{source: source}
}

// Name implements Step.
func (s *CredentialsStep) Name() string { return "credentials" }

// StartMessage implements Step.
func (s *CredentialsStep) StartMessage() string {
	return "Getting your network SSID and password..."
}

// DoneMessage implements Step.
func (s *CredentialsStep) DoneMessage(*Result) string {
	return "Network SSID and password retrieved"
}

// Do implements Step.
func (s *CredentialsStep) Do(ctx context.Context, result *Result) error {
	ssid, err := s.source.SSID(ctx)
	if err != nil {
		return err
	}
	password, err := s.source.Password(ctx, ssid)
	if err != nil {
		return err
	}

	result.Credentials.SSID = ssid
	result.Credentials.Password = password
	return nil
}

// EncryptionStep reads the encryption descriptor and derives the payload config.
type EncryptionStep struct {
	source credential.Source
	hidden bool
}

// NewEncryptionStep creates an EncryptionStep. hidden is copied into the
// derived config.
func NewEncryptionStep(source credential.Source, hidden bool) *EncryptionStep {
	return &EncryptionStep{source: source, hidden: hidden}
}

// Name implements Step.
func (s *EncryptionStep) Name() string { return "encryption" }

// StartMessage implements Step.
func (s *EncryptionStep) StartMessage() string {
	return "Getting your network encryption type..."
}

// DoneMessage implements Step.
func (s *EncryptionStep) DoneMessage(*Result) string {
	return "Network encryption type retrieved"
}

// Do implements Step.
func (s *EncryptionStep) Do(ctx context.Context, result *Result) error {
	raw, err := s.source.Encryption(ctx)
	if err != nil {
		return err
	}

	result.Credentials.EncryptionRaw = raw
	result.Config = wifi.NewConfig(result.Credentials, s.hidden)
	return nil
}

// QRStep encodes the payload and renders it for the terminal.
type QRStep struct {
	renderer render.Renderer
}

// NewQRStep creates a QRStep.
func NewQRStep(renderer render.Renderer) *QRStep {
	return &QRStep{renderer: renderer}
}

// Name implements Step.
func (s *QRStep) Name() string { return "qr" }

// StartMessage implements Step.
func (s *QRStep) StartMessage() string {
	return "Generating QR code..."
}

// DoneMessage implements Step.
func (s *QRStep) DoneMessage(*Result) string {
	return "QR code generated"
}

// Do implements Step.
func (s *QRStep) Do(_ context.Context, result *Result) error {
	result.Payload = wifi.Encode(result.Config)

	qr, err := s.renderer.Render(result.Payload)
	if err != nil {
		return wifi.NewOperationError("render QR code", err)
	}
	result.QR = qr
	return nil
}

// PNGStep writes the payload as a PNG image.
type PNGStep struct {
	path  string
	level render.Level
	size  int
}

// NewPNGStep creates a PNGStep writing a size x size image to path.
func NewPNGStep(path string, level render.Level, size int) *PNGStep {
	return &PNGStep{path: path, level: level, size: size}
}

// Name implements Step.
func (s *PNGStep) Name() string { return "png" }

// StartMessage implements Step.
func (s *PNGStep) StartMessage() string {
	return "Writing QR code image..."
}

// DoneMessage implements Step.
func (s *PNGStep) DoneMessage(result *Result) string {
	return "QR code image written to " + result.PNGPath
}

// Do implements Step.
func (s *PNGStep) Do(_ context.Context, result *Result) error {
	if err := render.WritePNG(result.Payload, s.level, s.size, s.path); err != nil {
		return wifi.NewOperationError("write PNG", err)
	}
	result.PNGPath = s.path
	return nil
}

// NewWifiQR builds the standard pipeline: credentials, encryption and QR
// steps, followed by png when it is not nil.
func NewWifiQR(source credential.Source, renderer render.Renderer, hidden bool, png *PNGStep, opts ...Option) *Pipeline {
	p := New(opts...)
	p.AddSteps(
		NewCredentialsStep(source),
		NewEncryptionStep(source, hidden),
		NewQRStep(renderer),
	)
	if png != nil {
		p.AddStep(png)
	}
	return p
}
