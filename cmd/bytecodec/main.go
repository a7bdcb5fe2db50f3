// Bytecodec is a command line front end for the byte codec.
//
// It converts between text, hex, UTF-8 and Latin-1 byte sequences, parses
// and formats BSSIDs, computes CRC-8 checksums, round-trips float32 and
// int32 values through their hex bit patterns, and explains arbitrary
// buffers byte by byte.
//
// Usage:
//
//	bytecodec [command] [flags]
//
// See 'bytecodec --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/bytecodec/internal/config"
	"github.com/muurk/bytecodec/internal/logging"
	"github.com/muurk/bytecodec/internal/ui"
	"github.com/muurk/bytecodec/internal/version"
)

func main() {
	err := execute(newRootCmd())
	logging.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.RenderError(err, ui.UseColor(true)))
		os.Exit(1)
	}
}

// execute runs root and logs a failed command before it is reported
func execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil {
		logging.Error("Command failed", zap.Error(err))
	}
	return err
}

// app holds the state shared by every command: persistent flags and the
// loaded configuration.
type app struct {
	format      string
	logLevel    string
	configPath  string
	charsetName string

	registry *config.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "bytecodec",
		Short: "Byte, hex and text conversion utility",
		Long: `Convert between text and byte representations.

Covers hex encoding, UTF-8 and Latin-1 transcoding, BSSID parsing and
formatting, CRC-8 checksums, float32/int32 hex bit patterns, base64 and
nibble arithmetic. Defaults for charset, hex separator, decimal places and
output format come from the config file (see 'bytecodec config path').`,
		Version:           version.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVar(&a.format, "format", "", "Output format (text, json); defaults to the config preference")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error); defaults to $"+logging.LogLevelEnvVar)
	flags.StringVar(&a.configPath, "config", "", "Config file path; defaults to $"+config.ConfigPathEnvVar+" or the platform config directory")
	flags.StringVar(&a.charsetName, "charset", "", "Charset for text conversions; defaults to the config preference")

	root.AddCommand(
		newHexCmd(a),
		newUTF8Cmd(a),
		newLatin1Cmd(a),
		newBSSIDCmd(a),
		newCRC8Cmd(a),
		newFloat32Cmd(a),
		newInt32Cmd(a),
		newBase64Cmd(a),
		newNibbleCmd(a),
		newInspectCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup initializes logging, loads the config file and settles the
// output format.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := a.initLogging(); err != nil {
		return err
	}

	if err := a.resolveConfigPath(); err != nil {
		return err
	}

	registry, err := config.LoadRegistryFrom(a.configPath)
	if err != nil {
		return err
	}
	a.registry = registry

	if a.format == "" {
		a.format = registry.Preferences.OutputFormat
	}
	if a.format == "" {
		a.format = config.FormatText
	}
	switch a.format {
	case config.FormatText, config.FormatJSON:
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", a.format, config.FormatText, config.FormatJSON)
	}

	logging.Debug("Configuration loaded",
		zap.String("command", cmd.CommandPath()),
		zap.String("config_path", a.configPath),
		zap.String("format", a.format),
	)

	return nil
}

func (a *app) initLogging() error {
	if err := logging.Initialize(a.logLevel); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	return nil
}

func (a *app) resolveConfigPath() error {
	if a.configPath != "" {
		return nil
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	a.configPath = path
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// version needs no config
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bytecodec %s\n", version.Full())
		},
	}
}
