/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/textkit/pkg/semver"
	"github.com/NVIDIA/textkit/pkg/serializer"
)

func sortCmd() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Usage:     "Sort semantic versions by precedence",
		ArgsUsage: "[versions...]",
		Description: `Sort versions in ascending precedence order and print the
canonical forms.

Versions are given as arguments, or loaded from a JSON/YAML file
containing a list of version strings:

  textkit sort 1.0.0 1.0.0-rc.1 0.9.9
  textkit sort --input versions.yaml --format json

The sort is stable: versions that compare equal (e.g. differing only in
build metadata) keep their input order.`,
		Flags: []cli.Flag{
			strictFlag,
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"f"},
				Usage:   "Path to a JSON/YAML file with a list of version strings",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setupLogging(cmd)

			inputs := cmd.Args().Slice()
			if path := cmd.String("input"); path != "" {
				if len(inputs) > 0 {
					return fmt.Errorf("provide versions as arguments or via --input, not both")
				}
				fromFile, err := serializer.FromFile[[]string](path)
				if err != nil {
					return fmt.Errorf("failed to load versions from %q: %w", path, err)
				}
				inputs = *fromFile
			}
			if len(inputs) == 0 {
				return fmt.Errorf("no versions to sort")
			}

			strict := cmd.Bool("strict")
			versions := make([]semver.Version, 0, len(inputs))
			for _, in := range inputs {
				v, err := semver.Parse(in, strict)
				if err != nil {
					return fmt.Errorf("failed to parse %q: %w", in, err)
				}
				versions = append(versions, v)
			}

			sort.SliceStable(versions, func(i, j int) bool {
				return versions[i].Compare(versions[j]) < 0
			})

			sorted := make([]string, len(versions))
			for i, v := range versions {
				sorted[i] = v.String()
			}

			ser, cleanup, err := newOutputWriter(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			return ser.Serialize(ctx, sorted)
		},
	}
}
