// Package render turns a Wi-Fi QR payload into a QR code drawn with
// printable characters for display in a fixed-width terminal.
//
// Two implementations are provided and selected by name with New:
//
//   - "qrterminal" uses github.com/mdp/qrterminal/v3 in half-block mode.
//   - "goqrcode" uses github.com/skip2/go-qrcode's small string output.
//
// Both pack two QR rows into one line of text so the code fits narrow
// terminals. WritePNG exports the same code as an image file.
package render
