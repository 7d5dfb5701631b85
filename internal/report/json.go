package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/wifiqr/internal/pipeline"
	"github.com/nao1215/wifiqr/internal/wifi"
)

// JSONWriter outputs results in JSON format for scripts and other tools.
type JSONWriter struct {
	baseWriter

	indent       bool
	indentPrefix string
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint is WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// JSONReport is the JSON document written by JSONWriter.
type JSONReport struct {
	SSID       string          `json:"ssid"`
	Encryption wifi.Encryption `json:"encryption"`
	Password   string          `json:"password"`
	Hidden     bool            `json:"hidden"`
	Payload    string          `json:"payload"`
	PNGPath    string          `json:"png,omitempty"`
}

// NewJSONReport converts a run result into a JSONReport.
func NewJSONReport(result *pipeline.Result) *JSONReport {
	return &JSONReport{
		SSID:       result.Config.SSID,
		Encryption: result.Config.Type,
		Password:   result.Config.Password,
		Hidden:     result.Config.Hidden,
		Payload:    result.Payload,
		PNGPath:    result.PNGPath,
	}
}

// Write implements Writer.
func (w *JSONWriter) Write(result *pipeline.Result) (int, error) {
	var (
		data []byte
		err  error
	)
	report := NewJSONReport(result)
	if w.indent {
		data, err = json.MarshalIndent(report, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(report)
	}
	if err != nil {
		return 0, err
	}

	data = append(data, '\n')
	return w.output.Write(data)
}
