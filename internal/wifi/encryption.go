package wifi

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Encryption is the authentication type written to the T field of a payload.
type Encryption int

const (
	// EncryptionNone is an open network, or any descriptor that matched no marker.
	EncryptionNone Encryption = iota

	// EncryptionWEP is a WEP protected network.
	EncryptionWEP

	// EncryptionWPA covers WPA, WPA2 and WPA3 personal networks.
	EncryptionWPA
)

// String returns the label used in the payload T field.
func (e Encryption) String() string {
	switch e {
	case EncryptionWEP:
		return "WEP"
	case EncryptionWPA:
		return "WPA"
	default:
		return "None"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (e Encryption) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Encryption) UnmarshalText(text []byte) error {
	enc, ok := parseEncryption(string(text))
	if !ok {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidPayload, text)
	}
	*e = enc
	return nil
}

// Classify maps a free-form encryption descriptor such as "wpa2-personal"
// to one of the three payload labels. Matching is case-insensitive and WEP
// wins over WPA when both markers are present.
func Classify(raw string) Encryption {
	folded := cases.Fold().String(raw)

	if strings.Contains(folded, "wep") {
		return EncryptionWEP
	}
	if strings.Contains(folded, "wpa") {
		return EncryptionWPA
	}
	return EncryptionNone
}

// parseEncryption is the inverse of Encryption.String, used by ParsePayload.
func parseEncryption(label string) (Encryption, bool) {
	switch label {
	case "WEP":
		return EncryptionWEP, true
	case "WPA":
		return EncryptionWPA, true
	case "None", "nopass", "":
		return EncryptionNone, true
	default:
		return EncryptionNone, false
	}
}
