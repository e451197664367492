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

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the canonical toolkit version",
		Description: `Print the build-injected toolkit version in canonical semantic
version form. A missing or unparsable build version prints 0.0.0.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setupLogging(cmd)

			fmt.Fprintln(cmd.Writer, semver.PackageVersion(version))
			return nil
		},
	}
}
