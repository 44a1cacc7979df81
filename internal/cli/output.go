package cli

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/fibbench/internal/format"
	"github.com/agbru/fibbench/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses verbose output.
	Quiet bool
	// Verbose shows the full result value.
	Verbose bool
	// ShowValue enables the calculated value display when true (disabled by default).
	ShowValue bool
}

// FormatTruncatedNumber renders a big integer for terminal display.
// Values up to TruncationLimit digits are shown in full; larger values show
// DisplayEdges digits from each end with the total digit count.
func FormatTruncatedNumber(value *big.Int) string {
	digits := value.String()
	if len(digits) <= TruncationLimit {
		return digits
	}
	return fmt.Sprintf("%s...%s (%d digits)",
		digits[:DisplayEdges], digits[len(digits)-DisplayEdges:], len(digits))
}

// DisplayResult writes the final calculation result with its metadata.
//
// Parameters:
//   - result: The calculated Fibonacci term.
//   - n: The sequence index.
//   - duration: The calculation duration.
//   - verbose: Show the full value regardless of size.
//   - details: Show bit length and digit count.
//   - showValue: Display the value at all (large terms are noisy).
//   - out: The writer for standard output.
func DisplayResult(result *big.Int, n uint64, duration time.Duration, verbose, details, showValue bool, out io.Writer) {
	fmt.Fprintf(out, "\n%sF(%d)%s computed in %s%s%s.\n",
		ui.ColorPrimary(), n, ui.ColorReset(),
		ui.ColorYellow(), format.FormatExecutionDuration(duration), ui.ColorReset())

	if details {
		fmt.Fprintf(out, "Result size: %d bits, %d decimal digits.\n",
			result.BitLen(), len(result.String()))
	}

	if !showValue {
		return
	}
	if verbose {
		fmt.Fprintf(out, "F(%d) = %s\n", n, result.String())
	} else {
		fmt.Fprintf(out, "F(%d) = %s\n", n, FormatTruncatedNumber(result))
	}
}

// FormatQuietResult formats a result for quiet mode output.
// Returns a single-line result suitable for scripting.
func FormatQuietResult(result *big.Int) string {
	return result.String()
}

// DisplayQuietResult writes the bare result for scripting use.
func DisplayQuietResult(out io.Writer, result *big.Int) {
	fmt.Fprintln(out, FormatQuietResult(result))
}

// DisplayVerification writes a single strategy's verification outcome.
func DisplayVerification(name string, err error, duration time.Duration, out io.Writer) {
	if err == nil {
		fmt.Fprintf(out, "%s✅ %s%s: reference sequence matched in %s.\n",
			ui.ColorGreen(), name, ui.ColorReset(), format.FormatExecutionDuration(duration))
		return
	}
	fmt.Fprintf(out, "%s❌ %s%s: %v\n", ui.ColorRed(), name, ui.ColorReset(), err)
}

// WriteResultToFile writes a calculation result to a file, creating parent
// directories as needed.
//
// Parameters:
//   - result: The calculated Fibonacci term.
//   - n: The sequence index.
//   - duration: The calculation duration.
//   - strategy: The strategy name used.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(result *big.Int, n uint64, duration time.Duration, strategy string, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Fibonacci Calculation Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Strategy: %s\n", strategy)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# N: %d\n", n)
	fmt.Fprintf(file, "# Bits: %d\n", result.BitLen())
	fmt.Fprintf(file, "# Digits: %d\n", len(result.String()))
	fmt.Fprintf(file, "\n")
	fmt.Fprintf(file, "F(%d) =\n%s\n", n, result.String())

	return nil
}
