/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/textkit/pkg/semver"
)

// parseReport is the serialized result of a parse command invocation.
type parseReport struct {
	Input      string   `json:"input" yaml:"input"`
	Canonical  string   `json:"canonical" yaml:"canonical"`
	Major      uint64   `json:"major" yaml:"major"`
	Minor      uint64   `json:"minor" yaml:"minor"`
	Patch      uint64   `json:"patch" yaml:"patch"`
	PreRelease []string `json:"prerelease,omitempty" yaml:"prerelease,omitempty"`
	Build      []string `json:"build,omitempty" yaml:"build,omitempty"`
	Strict     bool     `json:"strict" yaml:"strict"`
}

func newParseReport(input string, v semver.Version, strict bool) parseReport {
	r := parseReport{
		Input:     input,
		Canonical: v.String(),
		Major:     v.Major,
		Minor:     v.Minor,
		Patch:     v.Patch,
		Strict:    strict,
	}
	if v.PreRelease != nil {
		r.PreRelease = v.PreRelease.Identifiers()
	}
	if v.Build != nil {
		r.Build = v.Build.Identifiers()
	}
	return r
}

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse a semantic version string",
		ArgsUsage: "<version>",
		Description: `Parse a version string and report its components.

The version must follow Semantic Versioning 2.0.0:
  <major>.<minor>.<patch>[-<pre-release>][+<build>]

By default parsing is lenient: numeric identifiers may carry leading
zeros ("1.08.2" is accepted and canonicalized to "1.8.2"). Use --strict
to enforce the full grammar.

# Examples

Parse to YAML (default):
  textkit parse 1.2.3-rc.1+build.9

Parse strictly to JSON:
  textkit parse --strict --format json 1.2.3

Write the report to a file:
  textkit parse --format json --output report.json 1.2.3`,
		Flags: []cli.Flag{
			strictFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setupLogging(cmd)

			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one version argument, got %d", cmd.Args().Len())
			}
			input := cmd.Args().First()
			strict := cmd.Bool("strict")

			v, err := semver.Parse(input, strict)
			if err != nil {
				return fmt.Errorf("failed to parse %q: %w", input, err)
			}

			slog.Debug("version parsed",
				"input", input,
				"canonical", v.String(),
				"strict", strict,
			)

			ser, cleanup, err := newOutputWriter(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			return ser.Serialize(ctx, newParseReport(input, v, strict))
		},
	}
}
