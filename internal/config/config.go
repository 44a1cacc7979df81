// Package config defines the application configuration and its resolution
// chain: command-line flags take priority over FIBBENCH_* environment
// variables, which take priority over defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/fibbench/internal/errors"
	"github.com/agbru/fibbench/internal/fibonacci"
)

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "FIBBENCH_"

// Default values applied before flags and environment overrides.
const (
	DefaultN       = 30
	DefaultAlgo    = "all"
	DefaultTimeout = 1 * time.Minute
)

// AppConfig holds the full application configuration.
type AppConfig struct {
	// N is the sequence index to calculate.
	N uint64
	// Algo selects the strategy: "recursive", "iterative", or "all".
	Algo string
	// Timeout bounds the whole calculation or verification run.
	Timeout time.Duration
	// Verify runs the reference-sequence verification instead of a calculation.
	Verify bool
	// Verbose displays the full result value without truncation.
	Verbose bool
	// Details shows performance and system details after the run.
	Details bool
	// Quiet suppresses all decorative output; only the result is printed.
	Quiet bool
	// ShowValue displays the calculated value (off by default for huge terms).
	ShowValue bool
	// OutputFile is the path to save the result to (empty disables).
	OutputFile string
	// MetricsAddr is the listen address for the Prometheus endpoint
	// (empty disables the endpoint).
	MetricsAddr string
	// Completion requests a shell completion script ("bash" or "zsh").
	Completion string
	// NoColor disables colorized output.
	NoColor bool
}

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment overrides and validating the result.
//
// Parameters:
//   - programName: The program name for usage output.
//   - args: The command-line arguments (without the program name).
//   - errWriter: Destination for usage and warning output.
//   - availableAlgos: The registered strategy names, for validation and usage.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp if help was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	cfg := AppConfig{
		N:       DefaultN,
		Algo:    DefaultAlgo,
		Timeout: DefaultTimeout,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.Uint64Var(&cfg.N, "n", cfg.N, "Fibonacci sequence index to calculate")
	fs.StringVar(&cfg.Algo, "algo", cfg.Algo, fmt.Sprintf("strategy to run: %s, or \"all\" for a comparison", strings.Join(availableAlgos, ", ")))
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "maximum execution time (e.g. 30s, 5m)")
	fs.BoolVar(&cfg.Verify, "verify", cfg.Verify, "verify the selected strategies against the reference sequence F(1..10)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "display the full result value")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "display the full result value (shorthand)")
	fs.BoolVar(&cfg.Details, "details", cfg.Details, "show performance and system details")
	fs.BoolVar(&cfg.Details, "d", cfg.Details, "show performance and system details (shorthand)")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "quiet mode: print only the result, for scripting")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "quiet mode (shorthand)")
	fs.BoolVar(&cfg.ShowValue, "calculate", cfg.ShowValue, "display the calculated value")
	fs.BoolVar(&cfg.ShowValue, "c", cfg.ShowValue, "display the calculated value (shorthand)")
	fs.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "file path to save the result to")
	fs.StringVar(&cfg.OutputFile, "o", cfg.OutputFile, "file path to save the result to (shorthand)")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "listen address for the Prometheus /metrics endpoint (empty disables)")
	fs.StringVar(&cfg.Completion, "completion", cfg.Completion, "generate a shell completion script (bash or zsh)")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colorized output")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := validate(cfg, availableAlgos, errWriter); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// validate checks cross-field constraints and emits non-fatal warnings.
func validate(cfg AppConfig, availableAlgos []string, errWriter io.Writer) error {
	if cfg.Algo != "all" && !slices.Contains(availableAlgos, cfg.Algo) {
		return apperrors.NewConfigError("unknown algorithm %q (available: %s, all)", cfg.Algo, strings.Join(availableAlgos, ", "))
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.Completion != "" && cfg.Completion != "bash" && cfg.Completion != "zsh" {
		return apperrors.NewConfigError("unsupported completion shell %q (supported: bash, zsh)", cfg.Completion)
	}

	// The naive recursion roughly doubles its call tree per index. Warn
	// rather than reject: the timeout still bounds the run.
	usesRecursive := cfg.Algo == "recursive" || cfg.Algo == "all"
	if !cfg.Verify && usesRecursive && cfg.N > fibonacci.RecursivePracticalLimit && !cfg.Quiet {
		fmt.Fprintf(errWriter, "warning: the recursive strategy is O(2^n); F(%d) will likely hit the %s timeout\n", cfg.N, cfg.Timeout)
	}
	return nil
}
