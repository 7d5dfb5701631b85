package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// Glyphs drawn in the left gutter.
const (
	glyphIntro  = "┌"
	glyphBar    = "│"
	glyphDone   = "◇"
	glyphOutro  = "└"
	glyphCancel = "■"
)

// spinnerInterval is the spinner frame rate.
const spinnerInterval = 80 * time.Millisecond

// spinnerFrames are the frames of the running stage indicator.
var spinnerFrames = []string{"◒", "◐", "◓", "◑"}

// Progress writes run progress to a writer.
type Progress struct {
	out         io.Writer
	interactive bool
	spin        *spinner.Spinner

	bar    *color.Color
	done   *color.Color
	cancel *color.Color
	title  *color.Color
}

// Option configures a Progress.
type Option func(*Progress)

// WithInteractive forces the spinner and colors on or off.
func WithInteractive(interactive bool) Option {
	return func(p *Progress) {
		p.interactive = interactive
	}
}

// NewProgress creates a Progress writing to out. Spinner and colors are
// enabled only when out is a terminal.
func NewProgress(out io.Writer, opts ...Option) *Progress {
	p := &Progress{
		out:         out,
		interactive: IsTerminal(out),
		bar:         color.New(color.FgHiBlack),
		done:        color.New(color.FgGreen),
		cancel:      color.New(color.FgRed),
		title:       color.New(color.Bold),
	}
	for _, opt := range opts {
		opt(p)
	}

	if !p.interactive {
		for _, c := range []*color.Color{p.bar, p.done, p.cancel, p.title} {
			c.DisableColor()
		}
	}
	return p
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}

// Intro prints the run title.
func (p *Progress) Intro(title string) {
	fmt.Fprintf(p.out, "%s  %s\n", p.bar.Sprint(glyphIntro), p.title.Sprint(title))
	p.gutter()
}

// Start begins a stage and shows msg next to a spinner.
func (p *Progress) Start(msg string) {
	if !p.interactive {
		return
	}
	p.stopSpinner()
	p.spin = spinner.New(spinnerFrames, spinnerInterval, spinnerOptions(p.out)...)
	p.spin.Suffix = "  " + msg
	p.spin.Start()
}

// Stop completes the current stage with msg.
func (p *Progress) Stop(msg string) {
	p.stopSpinner()
	fmt.Fprintf(p.out, "%s  %s\n", p.done.Sprint(glyphDone), msg)
	p.gutter()
}

// Outro prints the closing message of a successful run.
func (p *Progress) Outro(msg string) {
	p.stopSpinner()
	fmt.Fprintf(p.out, "%s  %s\n\n", p.bar.Sprint(glyphOutro), msg)
}

// Cancel aborts the current stage and prints msg as the failure reason.
func (p *Progress) Cancel(msg string) {
	p.stopSpinner()
	fmt.Fprintf(p.out, "%s  %s\n\n", p.cancel.Sprint(glyphCancel), p.cancel.Sprint(msg))
}

// spinnerOptions directs the spinner to out. The spinner only animates when
// its writer file is a terminal, and that file defaults to os.Stdout.
func spinnerOptions(out io.Writer) []spinner.Option {
	if f, ok := out.(*os.File); ok {
		return []spinner.Option{spinner.WithWriterFile(f)}
	}
	return []spinner.Option{spinner.WithWriter(out)}
}

func (p *Progress) gutter() {
	fmt.Fprintln(p.out, p.bar.Sprint(glyphBar))
}

func (p *Progress) stopSpinner() {
	if p.spin == nil {
		return
	}
	p.spin.Stop()
	p.spin = nil
}
