package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nao1215/wifiqr/internal/config"
	"github.com/nao1215/wifiqr/internal/credential"
	seclog "github.com/nao1215/wifiqr/internal/log"
	"github.com/nao1215/wifiqr/internal/pipeline"
	"github.com/nao1215/wifiqr/internal/render"
	"github.com/nao1215/wifiqr/internal/report"
	"github.com/nao1215/wifiqr/internal/ui"
	"github.com/spf13/cobra"
)

// sourceFactory builds the credential source for a configuration.
type sourceFactory func(cfg *config.Config, logger *slog.Logger) credential.Source

func newAirportSource(cfg *config.Config, logger *slog.Logger) credential.Source {
	return credential.NewAirportSource(
		credential.WithAirportPath(cfg.AirportPath),
		credential.WithSecurityPath(cfg.SecurityPath),
		credential.WithRunner(credential.ExecRunner{Timeout: cfg.CommandTimeout}),
		credential.WithLogger(logger),
	)
}

// runRootCmd executes the root command.
func runRootCmd(cmd *cobra.Command, newSource sourceFactory) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runWifiQR(ctx, cfg, newSource(cfg, logger), logger, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// runWifiQR builds the pipeline from cfg, runs it and writes the report.
func runWifiQR(ctx context.Context, cfg *config.Config, source credential.Source, logger *slog.Logger, stdout, stderr io.Writer) error {
	renderer, err := render.New(cfg.Renderer, cfg.QRLevel())
	if err != nil {
		return err
	}
	writer, err := report.NewWriter(cfg.Format, stdout)
	if err != nil {
		return err
	}

	// Keep machine readable formats clean on stdout.
	progressOut := stdout
	if cfg.Format != config.FormatText {
		progressOut = stderr
	}

	var png *pipeline.PNGStep
	if cfg.PNGPath != "" {
		png = pipeline.NewPNGStep(cfg.PNGPath, cfg.QRLevel(), cfg.PNGSize)
	}

	p := pipeline.NewWifiQR(source, renderer, cfg.Hidden, png,
		pipeline.WithLogger(logger),
		pipeline.WithProgress(ui.NewProgress(progressOut)),
		pipeline.WithStageDelay(cfg.StageDelay),
	)

	logger.Debug("starting run",
		"renderer", cfg.Renderer,
		"level", cfg.Level,
		"format", cfg.Format,
		"steps", p.StepNames(),
	)

	result, err := p.Execute(ctx)
	if err != nil {
		// The failure was already shown by the progress display.
		if cfg.StrictExit {
			return &reportedError{err: err}
		}
		logger.Debug("run failed, exiting 0", "error", err)
		return nil
	}

	if _, err := writer.Write(result); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// buildConfig creates a Config from defaults, the config file and flags.
// Flags override the file only when they were set explicitly.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use defaults if no file found.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		f, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		f.Apply(cfg)
	case cfg.ConfigFilePath != "":
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if flags.Changed("airport") {
		if cfg.AirportPath, err = flags.GetString("airport"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("security") {
		if cfg.SecurityPath, err = flags.GetString("security"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("timeout") {
		if cfg.CommandTimeout, err = flags.GetDuration("timeout"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("renderer") {
		if cfg.Renderer, err = flags.GetString("renderer"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("level") {
		if cfg.Level, err = flags.GetString("level"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("hidden") {
		if cfg.Hidden, err = flags.GetBool("hidden"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("delay") {
		if cfg.StageDelay, err = flags.GetDuration("delay"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("format") {
		if cfg.Format, err = flags.GetString("format"); err != nil {
			return nil, err
		}
	}
	if cfg.PNGPath, err = flags.GetString("png"); err != nil {
		return nil, err
	}
	if flags.Changed("png-size") {
		if cfg.PNGSize, err = flags.GetInt("png-size"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("strict") {
		if cfg.StrictExit, err = flags.GetBool("strict"); err != nil {
			return nil, err
		}
	}

	cfg.Verbose = getBoolFlag(cmd, "verbose")
	return cfg, nil
}

// getBoolFlag retrieves a bool flag from the command or its root's persistent flags.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		v, err = cmd.Root().PersistentFlags().GetBool(name)
		if err != nil {
			return false
		}
	}
	return v
}

// setupLogger creates the secure logger for the verbosity and log format flags.
func setupLogger(cmd *cobra.Command) *slog.Logger {
	verbose := getBoolFlag(cmd, "verbose")
	if getBoolFlag(cmd, "log-json") {
		return seclog.NewSecureJSONLogger(cmd.ErrOrStderr(), verbose)
	}
	return seclog.NewSecureLogger(cmd.ErrOrStderr(), verbose)
}
