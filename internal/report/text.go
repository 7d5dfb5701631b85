package report

import (
	"io"
	"strings"

	"github.com/nao1215/wifiqr/internal/pipeline"
)

// TextWriter prints the terminal QR code.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

// Write implements Writer.
func (w *TextWriter) Write(result *pipeline.Result) (int, error) {
	qr := result.QR
	if !strings.HasSuffix(qr, "\n") {
		qr += "\n"
	}
	return io.WriteString(w.output, qr)
}
