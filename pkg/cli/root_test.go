/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"testing"

	"github.com/urfave/cli/v3"
)

func TestRootCmd_CommandStructure(t *testing.T) {
	cmd := rootCmd()

	if cmd.Name != "textkit" {
		t.Errorf("Name = %v, want textkit", cmd.Name)
	}

	if cmd.Usage == "" {
		t.Error("Usage should not be empty")
	}

	wantCommands := []string{"version", "parse", "compare", "sort", "image"}
	for _, name := range wantCommands {
		found := false
		for _, sub := range cmd.Commands {
			if sub.Name == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("command %q not found", name)
		}
	}
}

func TestNewOutputWriter(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{name: "yaml format", format: "yaml"},
		{name: "json format", format: "json"},
		{name: "table format", format: "table"},
		{name: "invalid format xml", format: "xml", wantErr: true},
		{name: "empty format", format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Value: tt.format},
					&cli.StringFlag{Name: "output"},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					ser, cleanup, err := newOutputWriter(c)
					if (err != nil) != tt.wantErr {
						t.Errorf("newOutputWriter() error = %v, wantErr %v", err, tt.wantErr)
						return nil
					}
					if !tt.wantErr {
						if ser == nil {
							t.Error("expected non-nil serializer")
						}
						cleanup()
					}
					return nil
				},
			}

			if err := cmd.Run(context.Background(), []string{"test"}); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
		})
	}
}

func hasName(flag cli.Flag, name string) bool {
	if flag == nil {
		return false
	}
	for _, n := range flag.Names() {
		if n == name {
			return true
		}
	}
	return false
}
