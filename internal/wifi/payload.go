package wifi

import (
	"fmt"
	"strings"
)

const (
	payloadPrefix = "WIFI:"
	payloadSuffix = ";;"
)

// Encode builds the Wi-Fi QR payload for cfg. Fields are always written in
// T, S, P, H order and the payload always ends with ";;".
func Encode(cfg Config) string {
	hidden := ""
	if cfg.Hidden {
		hidden = "true"
	}

	fields := []string{
		encodeTag("T", cfg.Type.String()),
		encodeTag("S", cfg.SSID),
		encodeTag("P", cfg.Password),
		encodeTag("H", hidden),
	}

	return payloadPrefix + strings.Join(fields, ";") + payloadSuffix
}

func encodeTag(tag, value string) string {
	return tag + ":" + Escape(value)
}

// Escape prefixes every backslash, semicolon, colon and comma in value with a
// backslash. It works in a single pass, so escapes are never re-escaped.
// Values are handled as bytes: an SSID is arbitrary octets, not always UTF-8.
func Escape(value string) string {
	var sb strings.Builder
	sb.Grow(len(value))
	for i := 0; i < len(value); i++ {
		c := value[i]
		if isSpecial(c) {
			sb.WriteByte('\\')
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// Unescape reverses Escape. A trailing lone backslash is kept as is.
func Unescape(value string) string {
	var sb strings.Builder
	sb.Grow(len(value))
	escaped := false
	for i := 0; i < len(value); i++ {
		c := value[i]
		if !escaped && c == '\\' {
			escaped = true
			continue
		}
		escaped = false
		sb.WriteByte(c)
	}
	if escaped {
		sb.WriteByte('\\')
	}
	return sb.String()
}

func isSpecial(c byte) bool {
	switch c {
	case '\\', ';', ':', ',':
		return true
	default:
		return false
	}
}

// ParsePayload decodes a payload produced by Encode back into a Config.
// Unknown tags are ignored; a missing S field or an unknown T value is an error.
func ParsePayload(payload string) (Config, error) {
	if !strings.HasPrefix(payload, payloadPrefix) || !strings.HasSuffix(payload, payloadSuffix) {
		return Config{}, fmt.Errorf("%w: missing %q prefix or %q suffix", ErrInvalidPayload, payloadPrefix, payloadSuffix)
	}
	body := strings.TrimPrefix(payload, payloadPrefix)

	var (
		cfg     Config
		sawSSID bool
	)
	for _, field := range splitUnescaped(body, ';') {
		if field == "" {
			continue
		}
		tag, value, ok := strings.Cut(field, ":")
		if !ok {
			return Config{}, fmt.Errorf("%w: field %q has no tag", ErrInvalidPayload, field)
		}
		value = Unescape(value)

		switch tag {
		case "T":
			enc, ok := parseEncryption(value)
			if !ok {
				return Config{}, fmt.Errorf("%w: unknown type %q", ErrInvalidPayload, value)
			}
			cfg.Type = enc
		case "S":
			cfg.SSID = value
			sawSSID = true
		case "P":
			cfg.Password = value
		case "H":
			cfg.Hidden = value == "true"
		}
	}

	if !sawSSID {
		return Config{}, fmt.Errorf("%w: missing S field", ErrInvalidPayload)
	}
	return cfg, nil
}

// splitUnescaped splits s on sep, skipping separators preceded by an escape.
func splitUnescaped(s string, sep byte) []string {
	var (
		parts   []string
		current strings.Builder
		escaped bool
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
			current.WriteByte(c)
		case c == '\\':
			escaped = true
			current.WriteByte(c)
		case c == sep:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	return append(parts, current.String())
}
