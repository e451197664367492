/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseCmd_CommandStructure(t *testing.T) {
	cmd := parseCmd()

	if cmd.Name != "parse" {
		t.Errorf("Name = %v, want parse", cmd.Name)
	}

	if cmd.Usage == "" {
		t.Error("Usage should not be empty")
	}

	requiredFlags := []string{"strict", "output", "format"}
	for _, flagName := range requiredFlags {
		found := false
		for _, flag := range cmd.Flags {
			if hasName(flag, flagName) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("required flag %q not found", flagName)
		}
	}

	if cmd.Action == nil {
		t.Error("Action should not be nil")
	}
}

func TestParseCmd_Report(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")

	cmd := parseCmd()
	err := cmd.Run(context.Background(), []string{
		"parse", "--format", "json", "--output", out, "1.2.3-rc.1+build.9",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}

	var report parseReport
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("failed to unmarshal report: %v", err)
	}

	if report.Input != "1.2.3-rc.1+build.9" {
		t.Errorf("Input = %v, want 1.2.3-rc.1+build.9", report.Input)
	}
	if report.Canonical != "1.2.3-rc.1+build.9" {
		t.Errorf("Canonical = %v, want 1.2.3-rc.1+build.9", report.Canonical)
	}
	if report.Major != 1 || report.Minor != 2 || report.Patch != 3 {
		t.Errorf("core = %d.%d.%d, want 1.2.3", report.Major, report.Minor, report.Patch)
	}
	if len(report.PreRelease) != 2 || report.PreRelease[0] != "rc" || report.PreRelease[1] != "1" {
		t.Errorf("PreRelease = %v, want [rc 1]", report.PreRelease)
	}
	if len(report.Build) != 2 || report.Build[0] != "build" || report.Build[1] != "9" {
		t.Errorf("Build = %v, want [build 9]", report.Build)
	}
	if report.Strict {
		t.Error("Strict should default to false")
	}
}

func TestParseCmd_LenientCanonicalizes(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")

	cmd := parseCmd()
	err := cmd.Run(context.Background(), []string{
		"parse", "--format", "json", "--output", out, "1.08.2",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}

	var report parseReport
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("failed to unmarshal report: %v", err)
	}

	if report.Canonical != "1.8.2" {
		t.Errorf("Canonical = %v, want 1.8.2", report.Canonical)
	}
}

func TestParseCmd_Errors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{
			name:   "no arguments",
			args:   []string{"parse"},
			errMsg: "exactly one version argument",
		},
		{
			name:   "too many arguments",
			args:   []string{"parse", "1.2.3", "4.5.6"},
			errMsg: "exactly one version argument",
		},
		{
			name:   "invalid version",
			args:   []string{"parse", "not-a-version"},
			errMsg: "failed to parse",
		},
		{
			name:   "strict rejects leading zero",
			args:   []string{"parse", "--strict", "1.08.2"},
			errMsg: "leading zero",
		},
		{
			name:   "unknown format",
			args:   []string{"parse", "--format", "xml", "1.2.3"},
			errMsg: "unknown output format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := parseCmd()
			err := cmd.Run(context.Background(), tt.args)
			if err == nil {
				t.Fatal("expected error but got nil")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error = %v, want error containing %q", err, tt.errMsg)
			}
		})
	}
}
