/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/textkit/pkg/logging"
	"github.com/NVIDIA/textkit/pkg/serializer"
)

const (
	name           = "textkit"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Output format (supported values: %s)", serializer.SupportedFormats()),
	}

	strictFlag = &cli.BoolFlag{
		Name:  "strict",
		Usage: "Reject leading zeros in numeric identifiers",
	}

	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		Usage:   "Log level (debug, info, warn, error)",
		Sources: cli.EnvVars("LOG_LEVEL"),
	}
)

// rootCmd builds the base command with all subcommands attached.
func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Semantic version parsing, comparison, and text utilities",
		Version: version,
		Description: fmt.Sprintf(`textkit - semantic version toolkit

Version: %s
Commit:  %s
Built:   %s

Parse, format, compare, and sort Semantic Versioning 2.0.0 versions,
and extract versions from container image tags.`, version, commit, date),
		Flags: []cli.Flag{
			logLevelFlag,
		},
		Commands: []*cli.Command{
			versionCmd(),
			parseCmd(),
			compareCmd(),
			sortCmd(),
			imageCmd(),
		},
	}
}

// setupLogging installs the default structured logger using the parsed
// log-level flag. Called at the top of every command action.
func setupLogging(cmd *cli.Command) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
}

// newOutputWriter builds a serializer from the shared format and output
// flags. The returned cleanup must be called to release file handles.
func newOutputWriter(cmd *cli.Command) (serializer.Serializer, func(), error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return nil, nil, fmt.Errorf("unknown output format: %q", outFormat)
	}

	ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	cleanup := func() {
		if closer, ok := ser.(serializer.Closer); ok {
			_ = closer.Close()
		}
	}
	return ser, cleanup, nil
}

// Execute runs the CLI. It is called by main.main() and only returns after
// the selected command completes or fails.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
