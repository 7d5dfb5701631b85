// Package pipeline sequences a wifiqr run: read the network credentials,
// classify the encryption, then encode and render the QR code.
//
// Each stage is a Step. Steps run strictly one after another, each held on
// screen for at least the configured stage delay. The first failure cancels
// the remaining steps and is returned as a wifi.OperationError.
package pipeline
