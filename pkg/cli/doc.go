// Package cli implements the command-line interface for the textkit tool.
//
// # Overview
//
// The textkit CLI provides commands for parsing, comparing, and sorting
// Semantic Versioning 2.0.0 version strings, and for extracting versions
// from container image tags. It is designed for release engineers and CI
// pipelines that need deterministic version handling.
//
// # Commands
//
// parse - Parse a version string:
//
//	textkit parse [--strict] [--output FILE] [--format yaml|json|table] 1.2.3-rc.1+build.9
//
// Parses the given version and reports its components (major, minor, patch,
// pre-release and build identifiers) along with the canonical form. Output
// defaults to stdout in YAML format.
//
// compare - Compare two versions by precedence:
//
//	textkit compare 1.0.0-rc.1 1.0.0
//
// Prints the precedence relation between the two versions: "<", "=", or ">".
// Build metadata is ignored, per the Semantic Versioning specification.
//
// sort - Sort versions by precedence:
//
//	textkit sort 1.0.0 1.0.0-rc.1 0.9.9
//	textkit sort --input versions.yaml --format json
//
// Sorts the given versions in ascending precedence order. Versions can be
// passed as arguments or loaded from a JSON/YAML file containing a list of
// strings.
//
// image - Parse a container image reference:
//
//	textkit image nvcr.io/nvidia/cuda:v12.04.1
//
// Normalizes the image reference the way Docker does and reports its
// registry, repository, tag, and digest. When the tag is a semantic version
// the canonical form is included in the report.
//
// version - Print the toolkit version:
//
//	textkit version
//
// # Global Flags
//
//	--output, -o     Output file path (default: stdout)
//	--format, -t     Output format: yaml, json, table (default: yaml)
//	--strict         Reject leading zeros in numeric identifiers
//	--log-level      Log level: debug, info, warn, error (default: info)
//	--help, -h       Show command help
//
// # Environment Variables
//
//	LOG_LEVEL  Set logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, parse failure)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/semver - Version parsing and comparison
//   - pkg/oci - Container image reference handling
//   - pkg/serializer - Output formatting and input reading
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/textkit/pkg/cli.version=1.0.0'"
package cli
