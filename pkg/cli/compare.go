/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/textkit/pkg/semver"
)

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "Compare two semantic versions by precedence",
		ArgsUsage: "<version-a> <version-b>",
		Description: `Compare two versions using Semantic Versioning 2.0.0 precedence
rules and print the relation: "<", "=", or ">".

Build metadata never participates in precedence, so versions differing
only in build metadata compare equal:

  textkit compare 1.2.3+build.1 1.2.3+build.2
  1.2.3+build.1 = 1.2.3+build.2

Pre-release versions sort below the corresponding release:

  textkit compare 1.0.0-rc.1 1.0.0
  1.0.0-rc.1 < 1.0.0`,
		Flags: []cli.Flag{
			strictFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setupLogging(cmd)

			if cmd.Args().Len() != 2 {
				return fmt.Errorf("expected exactly two version arguments, got %d", cmd.Args().Len())
			}
			strict := cmd.Bool("strict")

			a, err := semver.Parse(cmd.Args().Get(0), strict)
			if err != nil {
				return fmt.Errorf("failed to parse %q: %w", cmd.Args().Get(0), err)
			}
			b, err := semver.Parse(cmd.Args().Get(1), strict)
			if err != nil {
				return fmt.Errorf("failed to parse %q: %w", cmd.Args().Get(1), err)
			}

			var rel string
			switch a.Compare(b) {
			case -1:
				rel = "<"
			case 1:
				rel = ">"
			default:
				rel = "="
			}

			fmt.Fprintf(cmd.Writer, "%s %s %s\n", a, rel, b)
			return nil
		},
	}
}
