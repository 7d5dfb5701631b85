// Package report writes the result of a wifiqr run.
//
// Three formats are supported:
//   - Text: the terminal QR code, as printed after the progress output
//   - Markdown: a shareable network card with the QR code in a code block
//   - JSON: machine readable network details and payload
package report
