package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nao1215/wifiqr/internal/wifi"
)

// Messages shown around the run.
const (
	introMessage  = "🛜  Wi-Fi QR"
	outroFormat   = "🤳 Scan this QR code to connect to the %q Wi-Fi"
	cancelMessage = "😭 Something went wrong: "
)

// Result accumulates the values produced by the steps.
type Result struct {
	// Credentials are the values read from the host.
	Credentials wifi.Credentials

	// Config is the payload configuration derived from Credentials.
	Config wifi.Config

	// Payload is the encoded Wi-Fi QR text.
	Payload string

	// QR is the terminal rendering of Payload.
	QR string

	// PNGPath is set when the QR code was also written as an image.
	PNGPath string
}

// Step is one stage of a run.
type Step interface {
	// Do executes the step, reading from and writing to result.
	Do(ctx context.Context, result *Result) error

	// Name returns the step's name for logging and error wrapping.
	Name() string

	// StartMessage is shown while the step runs.
	StartMessage() string

	// DoneMessage is shown once the step has completed.
	DoneMessage(result *Result) string
}

// Progress displays the run to the user. ui.Progress implements it.
type Progress interface {
	Intro(title string)
	Start(msg string)
	Stop(msg string)
	Outro(msg string)
	Cancel(msg string)
}

// Pipeline orchestrates the execution of steps.
type Pipeline struct {
	steps    []Step
	logger   *slog.Logger
	progress Progress
	delay    time.Duration
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithProgress sets the progress display. Without it progress is discarded.
func WithProgress(progress Progress) Option {
	return func(p *Pipeline) {
		p.progress = progress
	}
}

// WithStageDelay sets the minimum time each step stays on screen.
func WithStageDelay(d time.Duration) Option {
	return func(p *Pipeline) {
		p.delay = d
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	if p.progress == nil {
		p.progress = nopProgress{}
	}
	return p
}

// AddStep appends a step to the pipeline.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all steps in sequence. On success it shows the outro naming
// the SSID; on failure it shows the reason and returns an error matching
// wifi.ErrOperationFailed.
func (p *Pipeline) Execute(ctx context.Context) (*Result, error) {
	result := &Result{}
	p.progress.Intro(introMessage)

	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			return nil, p.fail(step, err)
		}

		p.logger.Debug("executing step", "step", step.Name())
		p.progress.Start(step.StartMessage())

		if err := step.Do(ctx, result); err != nil {
			return nil, p.fail(step, err)
		}
		if err := p.wait(ctx); err != nil {
			return nil, p.fail(step, err)
		}

		p.progress.Stop(step.DoneMessage(result))
		p.logger.Debug("step completed", "step", step.Name())
	}

	p.progress.Outro(fmt.Sprintf(outroFormat, result.Credentials.SSID))
	return result, nil
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}

func (p *Pipeline) fail(step Step, err error) error {
	err = wifi.NewOperationError(step.Name(), err)
	p.logger.Debug("step failed", "step", step.Name(), "error", err)
	p.progress.Cancel(cancelMessage + err.Error())
	return err
}

// wait blocks for the stage delay or until ctx is done.
func (p *Pipeline) wait(ctx context.Context) error {
	if p.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type nopProgress struct{}

func (nopProgress) Intro(string)  {}
func (nopProgress) Start(string)  {}
func (nopProgress) Stop(string)   {}
func (nopProgress) Outro(string)  {}
func (nopProgress) Cancel(string) {}
