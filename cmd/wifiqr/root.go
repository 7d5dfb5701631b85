package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nao1215/wifiqr/internal/config"
	"github.com/spf13/cobra"
)

// reportedError is a run failure that has already been shown to the user.
// Execute exits 1 for it without printing it again.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// NewRootCmd creates the root command for wifiqr.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newAirportSource)
}

func newRootCmd(newSource sourceFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wifiqr",
		Short: "Show a QR code for the Wi-Fi network you are connected to",
		Long: `wifiqr reads the SSID, password and encryption type of the Wi-Fi network
this machine is connected to and renders a QR code in the terminal.
Scan it with a phone camera to join the network.

The password is read from the macOS keychain, which may ask for permission.

Failures are reported on screen and wifiqr still exits with status 0.
Use --strict to exit with status 1 instead.

Examples:
  # Show the QR code for the current network
  wifiqr

  # Use the go-qrcode renderer with high error correction
  wifiqr --renderer goqrcode --level H

  # Write a Markdown card and a PNG image
  wifiqr --format markdown --png wifi.png > wifi.md

Configuration file (.wifiqr) example:
  renderer: goqrcode
  level: Q
  stageDelay: 0s
  strictExit: true`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRootCmd(cmd, newSource)
		},
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	// Host commands
	cmd.Flags().String("airport", config.DefaultAirportPath, "Path to the airport utility")
	cmd.Flags().String("security", config.DefaultSecurityPath, "Path to the keychain security tool")
	cmd.Flags().DurationP("timeout", "t", 0, "Timeout for each host command (0 waits indefinitely)")

	// Rendering
	cmd.Flags().StringP("renderer", "r", config.DefaultRenderer, "QR renderer: qrterminal or goqrcode")
	cmd.Flags().StringP("level", "l", config.DefaultLevel, "QR error correction level: L, M, Q or H")
	cmd.Flags().Bool("hidden", false, "Mark the network as hidden in the QR code")
	cmd.Flags().Duration("delay", config.DefaultStageDelay, "Minimum time each progress stage is shown")

	// Output
	cmd.Flags().StringP("format", "f", config.DefaultFormat, "Output format: text, markdown or json")
	cmd.Flags().String("png", "", "Also write the QR code to this PNG file")
	cmd.Flags().Int("png-size", config.DefaultPNGSize, "PNG width and height in pixels")
	cmd.Flags().Bool("strict", false, "Exit with status 1 when the run fails")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .wifiqr in current directory, XDG config dir or home directory)")

	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
