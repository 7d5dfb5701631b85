package report

import (
	"fmt"
	"io"

	"github.com/nao1215/wifiqr/internal/config"
	"github.com/nao1215/wifiqr/internal/pipeline"
)

// Writer writes a run result to a destination.
type Writer interface {
	// Write outputs the result and returns the number of bytes written.
	Write(result *pipeline.Result) (int, error)
}

// NewWriter returns the Writer for format, one of config.Formats().
func NewWriter(format string, output io.Writer) (Writer, error) {
	switch format {
	case config.FormatText:
		return NewTextWriter(output), nil
	case config.FormatMarkdown:
		return NewMarkdownWriter(output), nil
	case config.FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint()), nil
	default:
		return nil, fmt.Errorf("unknown report format: %q", format)
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
