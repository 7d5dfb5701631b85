package report

import (
	"io"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/wifiqr/internal/pipeline"
)

// MarkdownWriter outputs a network card in Markdown.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write implements Writer.
func (w *MarkdownWriter) Write(result *pipeline.Result) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Wi-Fi: " + result.Config.SSID)
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"SSID", codeCell(result.Config.SSID)},
			{"Encryption", result.Config.Type.String()},
			{"Password", passwordCell(result.Config.Password)},
			{"Hidden", yesNo(result.Config.Hidden)},
		},
	})
	md.PlainText("")

	if result.Config.Password != "" {
		md.Warningf("This document contains the network password. Share it only with people you trust.")
		md.PlainText("")
	}

	md.H2("QR Code")
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlight("text"), strings.TrimRight(result.QR, "\n"))
	md.PlainText("")

	if result.PNGPath != "" {
		md.PlainText("![Wi-Fi QR code](" + result.PNGPath + ")")
		md.PlainText("")
	}

	md.H2("Payload")
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlight("text"), result.Payload)

	return len(md.String()), md.Build()
}

func passwordCell(password string) string {
	if password == "" {
		return "(none)"
	}
	return codeCell(password)
}

// codeCell formats value as an inline code span that is safe inside a table
// cell. The fence is one backtick longer than the longest run in value.
func codeCell(value string) string {
	longest, run := 0, 0
	for i := 0; i < len(value); i++ {
		if value[i] != '`' {
			run = 0
			continue
		}
		run++
		longest = max(longest, run)
	}

	fence := strings.Repeat("`", longest+1)
	if strings.HasPrefix(value, "`") || strings.HasSuffix(value, "`") {
		value = " " + value + " "
	}
	return fence + strings.ReplaceAll(value, "|", `\|`) + fence
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
