package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/fibbench/internal/errors"
	"github.com/agbru/fibbench/internal/fibonacci"
	"github.com/agbru/fibbench/internal/metrics"
	"github.com/agbru/fibbench/internal/progress"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of dropped updates when the
// UI is slow to consume them.
const ProgressBufferMultiplier = 5

// tracer is the package tracer; spans are no-ops unless the host process
// installs a tracer provider.
var tracer = otel.Tracer("github.com/agbru/fibbench/internal/orchestration")

// ExecuteCalculations orchestrates the concurrent execution of one or more
// Fibonacci strategies for the same index n.
//
// It manages the lifecycle of calculation goroutines, collects their results,
// and coordinates the display of progress updates. This function is the core
// of the application's concurrency model: running the strategies side by side
// is what turns the O(n) vs O(2^n) contrast into an observable comparison.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - calculators: The strategies to execute.
//   - n: The sequence index to calculate.
//   - opts: Strategy tuning options.
//   - recorder: Metrics recorder for per-strategy counters (nil disables).
//   - progressReporter: The progress reporter (NullProgressReporter for quiet mode).
//   - out: The io.Writer for progress display.
//
// Returns:
//   - []CalculationResult: One result per calculator, in input order.
func ExecuteCalculations(ctx context.Context, calculators []fibonacci.Calculator, n uint64, opts fibonacci.Options, recorder *metrics.Recorder, progressReporter ProgressReporter, out io.Writer) []CalculationResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]CalculationResult, len(calculators))
	progressChan := make(chan progress.ProgressUpdate, len(calculators)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(calculators), out)

	for i, calc := range calculators {
		idx, calculator := i, calc
		g.Go(func() error {
			calcCtx, span := tracer.Start(ctx, "fibonacci.calculate",
				trace.WithAttributes(
					attribute.Int64("fib.n", int64(n)),
					attribute.String("fib.strategy", calculator.Name()),
				))
			startTime := time.Now()
			res, err := calculator.Calculate(calcCtx, progressChan, idx, n, opts)
			duration := time.Since(startTime)
			if err != nil {
				span.RecordError(err)
			}
			span.End()

			if recorder != nil {
				recorder.ObserveCalculation(calculator.Name(), duration, err)
			}
			results[idx] = CalculationResult{
				Name: calculator.Name(), Result: res, Duration: duration, Err: err,
			}
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults processes the results from multiple strategies and
// generates a summary report.
//
// It sorts the results by execution time, validates consistency across
// successful calculations (every strategy must produce the same term), and
// displays a comparative table. A divergence between strategies is a
// critical failure: it means at least one implementation is wrong.
//
// Parameters:
//   - results: The slice of calculation results to analyze.
//   - presOpts: Presentation options (n, verbosity).
//   - presenter: The result presenter for display formatting.
//   - errHandler: Maps the first error to an exit code when nothing succeeded.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []CalculationResult, presOpts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValidResult *CalculationResult
	var firstError error
	var firstErrorDuration time.Duration
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
				firstErrorDuration = results[i].Duration
			}
		} else {
			successCount++
			if firstValidResult == nil {
				firstValidResult = &results[i]
			}
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No strategy could complete the calculation.\n")
		return errHandler.HandleError(firstError, firstErrorDuration, out)
	}

	mismatch := false
	for _, res := range results {
		if res.Err == nil && res.Result.Cmp(firstValidResult.Result) != 0 {
			mismatch = true
			break
		}
	}
	if mismatch {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! The strategies disagree on F(%d).\n", presOpts.N)
		return apperrors.ExitErrorMismatch
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	presenter.PresentResult(*firstValidResult, presOpts, out)
	return apperrors.ExitSuccess
}
