// Package main provides the entry point for the wifiqr CLI.
//
// wifiqr reads the credentials of the Wi-Fi network this machine is
// connected to and prints a QR code that phones can scan to join it.
//
// Usage:
//
//	wifiqr
//	wifiqr --format markdown --png wifi.png
//
// See --help for all available options.
package main

func main() {
	Execute()
}
