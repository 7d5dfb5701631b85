// Package log builds the slog loggers used by wifiqr.
//
// Loggers wrap a text or JSON handler in SecureHandler, which replaces
// Wi-Fi passwords and complete WIFI: payloads with MaskValue before they
// reach the output. Debug output therefore never leaks the credentials the
// tool exists to read.
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Debug("read password", "ssid", ssid, "password", pw) // password=***REDACTED***
package log
