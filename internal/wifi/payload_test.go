package wifi

import (
	"errors"
	"strings"
	"testing"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "wpa network",
			cfg:  Config{Type: EncryptionWPA, SSID: "HomeNet", Password: "secret123"},
			want: "WIFI:T:WPA;S:HomeNet;P:secret123;H:;;",
		},
		{
			name: "hidden open network with empty password",
			cfg:  Config{Type: EncryptionNone, SSID: "Guest Wi-Fi", Hidden: true},
			want: "WIFI:T:None;S:Guest Wi-Fi;P:;H:true;;",
		},
		{
			name: "wep network with special characters",
			cfg:  Config{Type: EncryptionWEP, SSID: "a;b", Password: "p:q"},
			want: `WIFI:T:WEP;S:a\;b;P:p\:q;H:;;`,
		},
		{
			name: "backslash and comma",
			cfg:  Config{Type: EncryptionWPA, SSID: `c:\net`, Password: "x,y"},
			want: `WIFI:T:WPA;S:c\:\\net;P:x\,y;H:;;`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Encode(tt.cfg); got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeFraming(t *testing.T) {
	t.Parallel()

	ssids := []string{"", "plain", ";;", "WIFI:", `\`, "日本語ネット"}
	for _, ssid := range ssids {
		got := Encode(Config{SSID: ssid, Password: ssid})
		if !strings.HasPrefix(got, "WIFI:") {
			t.Errorf("Encode(%q) = %q, missing WIFI: prefix", ssid, got)
		}
		if !strings.HasSuffix(got, ";;") {
			t.Errorf("Encode(%q) = %q, missing ;; suffix", ssid, got)
		}
	}
}

func TestEscape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "plain", want: "plain"},
		{in: `\`, want: `\\`},
		{in: ";", want: `\;`},
		{in: ":", want: `\:`},
		{in: ",", want: `\,`},
		{in: `\;`, want: `\\;`},
		{in: "a,b:c;d", want: `a\,b\:c\;d`},
		{in: `"quoted"`, want: `"quoted"`},
		{in: "caf\xe9;x", want: "caf\xe9\\;x"},
		{in: "\xff\xfe,", want: "\xff\xfe\\,"},
		{in: "日本;", want: "日本\\;"},
	}

	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if back := Unescape(Escape(tt.in)); back != tt.in {
			t.Errorf("Unescape(Escape(%q)) = %q", tt.in, back)
		}
	}
}

func TestParsePayloadRoundTrip(t *testing.T) {
	t.Parallel()

	configs := []Config{
		{Type: EncryptionWPA, SSID: "HomeNet", Password: "secret123"},
		{Type: EncryptionNone, SSID: "Guest Wi-Fi", Hidden: true},
		{Type: EncryptionWEP, SSID: "a;b", Password: "p:q"},
		{Type: EncryptionWPA, SSID: `\;;::,,`, Password: `;\`},
		{Type: EncryptionWPA, SSID: "trailing\\", Password: "p,"},
		{Type: EncryptionWPA, SSID: "caf\xe9;x", Password: "\xff:\x80"},
	}

	for _, cfg := range configs {
		got, err := ParsePayload(Encode(cfg))
		if err != nil {
			t.Fatalf("ParsePayload(Encode(%+v)) returned error: %v", cfg, err)
		}
		if got != cfg {
			t.Errorf("round trip mismatch: got %+v, want %+v", got, cfg)
		}
	}
}

func TestParsePayloadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
	}{
		{name: "missing prefix", payload: "T:WPA;S:x;;"},
		{name: "missing suffix", payload: "WIFI:T:WPA;S:x"},
		{name: "unknown type", payload: "WIFI:T:WPA9;S:x;;"},
		{name: "missing ssid", payload: "WIFI:T:WPA;P:x;;"},
		{name: "field without tag", payload: "WIFI:S:x;garbage;;"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParsePayload(tt.payload)
			if !errors.Is(err, ErrInvalidPayload) {
				t.Errorf("expected ErrInvalidPayload, got %v", err)
			}
		})
	}
}
