package credential

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/nao1215/wifiqr/internal/wifi"
)

// sampleAirportOutput mirrors `airport -I` on a WPA2 network.
const sampleAirportOutput = `     agrCtlRSSI: -55
     agrExtRSSI: 0
    agrCtlNoise: -94
    agrExtNoise: 0
          state: running
        op mode: station
     lastTxRate: 585
        maxRate: 867
lastAssocStatus: 0
    802.11 auth: open
      link auth: wpa2-psk
          BSSID: a0:b1:c2:d3:e4:f5
           SSID: Home Net: 5G
            MCS: 7
  guardInterval: 800
            NSS: 2
        channel: 149,80`

type call struct {
	name string
	args []string
}

// fakeRunner returns canned output keyed by command name.
type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   []call
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	if err := f.errs[name]; err != nil {
		return "", err
	}
	return f.outputs[name], nil
}

func newTestSource(r Runner) *AirportSource {
	return NewAirportSource(
		WithAirportPath("/test/airport"),
		WithSecurityPath("/test/security"),
		WithRunner(r),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

func TestAirportSource_SSID(t *testing.T) {
	t.Parallel()

	t.Run("reads the SSID line and ignores BSSID", func(t *testing.T) {
		t.Parallel()
		r := &fakeRunner{outputs: map[string]string{"/test/airport": sampleAirportOutput}}
		src := newTestSource(r)

		got, err := src.SSID(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "Home Net: 5G" {
			t.Errorf("expected %q, got %q", "Home Net: 5G", got)
		}
		if len(r.calls) != 1 || strings.Join(r.calls[0].args, " ") != "-I" {
			t.Errorf("unexpected calls: %+v", r.calls)
		}
	})

	t.Run("missing SSID line is an operation failure", func(t *testing.T) {
		t.Parallel()
		r := &fakeRunner{outputs: map[string]string{"/test/airport": "AirPort: Off"}}
		src := newTestSource(r)

		_, err := src.SSID(context.Background())
		if !errors.Is(err, wifi.ErrOperationFailed) {
			t.Errorf("expected ErrOperationFailed, got %v", err)
		}
		if !errors.Is(err, ErrNotConnected) {
			t.Errorf("expected ErrNotConnected, got %v", err)
		}
	})

	t.Run("command failure is an operation failure", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("no such file or directory")
		r := &fakeRunner{errs: map[string]error{"/test/airport": cause}}
		src := newTestSource(r)

		_, err := src.SSID(context.Background())
		if !errors.Is(err, wifi.ErrOperationFailed) {
			t.Errorf("expected ErrOperationFailed, got %v", err)
		}
		if !errors.Is(err, cause) {
			t.Errorf("expected cause to be wrapped, got %v", err)
		}
	})
}

func TestAirportSource_Password(t *testing.T) {
	t.Parallel()

	t.Run("returns the stored password", func(t *testing.T) {
		t.Parallel()
		r := &fakeRunner{outputs: map[string]string{"/test/security": "secret123"}}
		src := newTestSource(r)

		got, err := src.Password(context.Background(), "Home;Net")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "secret123" {
			t.Errorf("expected %q, got %q", "secret123", got)
		}

		want := []string{"find-generic-password", "-ga", "Home;Net", "-w"}
		if strings.Join(r.calls[0].args, "|") != strings.Join(want, "|") {
			t.Errorf("expected args %v, got %v", want, r.calls[0].args)
		}
	})

	t.Run("failed lookup yields empty password", func(t *testing.T) {
		t.Parallel()
		r := &fakeRunner{errs: map[string]error{"/test/security": errors.New("exit status 44")}}
		src := newTestSource(r)

		got, err := src.Password(context.Background(), "HomeNet")
		if err != nil {
			t.Fatalf("expected failure to be tolerated, got %v", err)
		}
		if got != "" {
			t.Errorf("expected empty password, got %q", got)
		}
	})

	t.Run("cancelled context propagates", func(t *testing.T) {
		t.Parallel()
		r := &fakeRunner{errs: map[string]error{"/test/security": errors.New("signal: killed")}}
		src := newTestSource(r)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := src.Password(ctx, "HomeNet")
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

func TestAirportSource_Encryption(t *testing.T) {
	t.Parallel()

	t.Run("reads link auth", func(t *testing.T) {
		t.Parallel()
		r := &fakeRunner{outputs: map[string]string{"/test/airport": sampleAirportOutput}}
		src := newTestSource(r)

		got, err := src.Encryption(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "wpa2-psk" {
			t.Errorf("expected %q, got %q", "wpa2-psk", got)
		}
	})

	t.Run("missing link auth is empty", func(t *testing.T) {
		t.Parallel()
		r := &fakeRunner{outputs: map[string]string{"/test/airport": "SSID: Cafe"}}
		src := newTestSource(r)

		got, err := src.Encryption(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "" {
			t.Errorf("expected empty descriptor, got %q", got)
		}
	})

	t.Run("command failure is an operation failure", func(t *testing.T) {
		t.Parallel()
		r := &fakeRunner{errs: map[string]error{"/test/airport": errors.New("exit status 1")}}
		src := newTestSource(r)

		_, err := src.Encryption(context.Background())
		if !errors.Is(err, wifi.ErrOperationFailed) {
			t.Errorf("expected ErrOperationFailed, got %v", err)
		}
	})
}

func TestNewAirportSourceDefaults(t *testing.T) {
	t.Parallel()

	src := NewAirportSource()
	if src.airportPath != DefaultAirportPath {
		t.Errorf("expected airport path %q, got %q", DefaultAirportPath, src.airportPath)
	}
	if src.securityPath != DefaultSecurityPath {
		t.Errorf("expected security path %q, got %q", DefaultSecurityPath, src.securityPath)
	}
	if _, ok := src.runner.(ExecRunner); !ok {
		t.Errorf("expected ExecRunner, got %T", src.runner)
	}
}
