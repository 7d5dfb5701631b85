package credential

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/nao1215/wifiqr/internal/wifi"
)

const (
	// DefaultAirportPath is where macOS ships the airport utility.
	DefaultAirportPath = "/System/Library/PrivateFrameworks/Apple80211.framework/Versions/Current/Resources/airport"

	// DefaultSecurityPath is the macOS keychain command line tool.
	DefaultSecurityPath = "/usr/bin/security"
)

// ErrNotConnected is returned when the airport output has no SSID line.
var ErrNotConnected = errors.New("not connected to a Wi-Fi network")

// Source provides the credentials of the currently connected network.
type Source interface {
	// SSID returns the name of the connected network.
	SSID(ctx context.Context) (string, error)

	// Password returns the stored password for ssid, or "" when none is stored.
	Password(ctx context.Context, ssid string) (string, error)

	// Encryption returns the raw encryption descriptor of the current link.
	Encryption(ctx context.Context) (string, error)
}

// AirportSource reads credentials with the macOS airport and security tools.
type AirportSource struct {
	airportPath  string
	securityPath string
	runner       Runner
	logger       *slog.Logger
}

// Option configures an AirportSource.
type Option func(*AirportSource)

// WithAirportPath overrides the airport utility path.
func WithAirportPath(path string) Option {
	return func(s *AirportSource) {
		s.airportPath = path
	}
}

// WithSecurityPath overrides the security tool path.
func WithSecurityPath(path string) Option {
	return func(s *AirportSource) {
		s.securityPath = path
	}
}

// WithRunner sets the command runner.
func WithRunner(r Runner) Option {
	return func(s *AirportSource) {
		s.runner = r
	}
}

// WithLogger sets the logger used for command tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *AirportSource) {
		s.logger = logger
	}
}

// NewAirportSource creates an AirportSource using the default macOS paths
// and an ExecRunner unless overridden by opts.
func NewAirportSource(opts ...Option) *AirportSource {
	s := &AirportSource{
		airportPath:  DefaultAirportPath,
		securityPath: DefaultSecurityPath,
		runner:       ExecRunner{},
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SSID implements Source.
func (s *AirportSource) SSID(ctx context.Context) (string, error) {
	out, err := s.airportInfo(ctx)
	if err != nil {
		return "", wifi.NewOperationError("read SSID", err)
	}

	ssid, ok := airportField(out, "SSID")
	if !ok || ssid == "" {
		return "", wifi.NewOperationError("read SSID", ErrNotConnected)
	}
	s.logger.Debug("read SSID", "ssid", ssid)
	return ssid, nil
}

// Password implements Source. A failed keychain lookup yields "" and no error.
func (s *AirportSource) Password(ctx context.Context, ssid string) (string, error) {
	out, err := s.runner.Run(ctx, s.securityPath, "find-generic-password", "-ga", ssid, "-w")
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", wifi.NewOperationError("read password", ctxErr)
		}
		s.logger.Debug("no stored password found", "ssid", ssid, "error", err)
		return "", nil
	}
	s.logger.Debug("read password", "ssid", ssid, "password", out)
	return out, nil
}

// Encryption implements Source.
func (s *AirportSource) Encryption(ctx context.Context) (string, error) {
	out, err := s.airportInfo(ctx)
	if err != nil {
		return "", wifi.NewOperationError("read encryption type", err)
	}

	auth, _ := airportField(out, "link auth")
	s.logger.Debug("read encryption type", "link_auth", auth)
	return auth, nil
}

func (s *AirportSource) airportInfo(ctx context.Context) (string, error) {
	return s.runner.Run(ctx, s.airportPath, "-I")
}

// airportField returns the value of the "<key>: value" line in airport -I
// output. Keys are matched exactly after trimming, so "SSID" never matches
// the "BSSID" line.
func airportField(output, key string) (string, bool) {
	for _, line := range strings.Split(output, "\n") {
		name, value, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok || name != key {
			continue
		}
		return strings.TrimSpace(value), true
	}
	return "", false
}
