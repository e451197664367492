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

	"github.com/NVIDIA/textkit/pkg/oci"
)

// imageReport is the serialized result of an image command invocation.
type imageReport struct {
	Reference  string `json:"reference" yaml:"reference"`
	Registry   string `json:"registry" yaml:"registry"`
	Repository string `json:"repository" yaml:"repository"`
	Tag        string `json:"tag,omitempty" yaml:"tag,omitempty"`
	Digest     string `json:"digest,omitempty" yaml:"digest,omitempty"`
	Version    string `json:"version,omitempty" yaml:"version,omitempty"`
}

func imageCmd() *cli.Command {
	return &cli.Command{
		Name:      "image",
		Usage:     "Parse a container image reference and extract its tag version",
		ArgsUsage: "<image>",
		Description: `Parse a container image reference, normalize it the way Docker
does, and report its components. When the tag is a semantic version
(with or without a leading "v"), the canonical version is included:

  textkit image nvcr.io/nvidia/cuda:v12.04.1
  textkit image cuda:12.4.1 --format json`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setupLogging(cmd)

			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one image argument, got %d", cmd.Args().Len())
			}
			input := cmd.Args().First()

			ref, err := oci.ParseReference(input)
			if err != nil {
				return fmt.Errorf("failed to parse %q: %w", input, err)
			}

			report := imageReport{
				Reference:  ref.String(),
				Registry:   ref.Registry,
				Repository: ref.Repository,
				Tag:        ref.Tag,
				Digest:     ref.Digest,
			}
			if v, err := ref.TagVersion(); err == nil {
				report.Version = v.String()
			} else {
				slog.Debug("tag is not a semantic version", "tag", ref.Tag, "error", err)
			}

			ser, cleanup, err := newOutputWriter(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			return ser.Serialize(ctx, report)
		},
	}
}
