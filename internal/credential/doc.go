// Package credential reads the connected Wi-Fi network's SSID, stored
// password and encryption descriptor from the host.
//
// The macOS implementation runs the airport utility to query the current
// link and the security tool to read the password from the keychain.
// Commands execute through a Runner so tests can substitute canned output.
package credential
