// Package cli implements the command-line interface of the majoplot tool.
//
// # Overview
//
// majoplot turns raw laboratory instrument logs into labeled datasets grouped
// into figures. Plot rendering is left to downstream tools, which consume the
// documents written here.
//
// # Commands
//
// preprocess - Run a scenario over raw-data files:
//
//	majoplot preprocess --scenario rt --input run-01.dat [--output FILE] [--format yaml|json|table]
//
// Each input is loaded (PPMS .dat logs, or RawData documents in JSON/YAML),
// preprocessed independently, and reported in a single PreprocessResult
// document holding the datasets, the failed inputs, and the figure layout.
//
// scenarios - List registered scenarios:
//
//	majoplot scenarios [--format table]
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// YAML (default):
//   - Human-readable, preserves label order
//
// JSON:
//   - Machine-parseable
//   - Missing values are written as null
//
// Table:
//   - One row per dataset and per failed input
//   - Suitable for terminal viewing
//
// # Environment Variables
//
//	MAJOPLOT_LOG_LEVEL    Log level (takes precedence over LOG_LEVEL)
//	LOG_LEVEL             Log level
//	MAJOPLOT_CONCURRENCY  Default for preprocess --concurrency
//
// # Exit Codes
//
//	0  Success (at least one input produced datasets)
//	1  General error (invalid arguments, every input failed)
//	2  Interrupted
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/majoplot/majoplot/pkg/cli.version=1.0.0'"
package cli
