package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/fibbench/internal/cli"
	apperrors "github.com/agbru/fibbench/internal/errors"
	"github.com/agbru/fibbench/internal/fibonacci"
	"github.com/agbru/fibbench/internal/format"
	"github.com/agbru/fibbench/internal/logging"
	"github.com/agbru/fibbench/internal/metrics"
	"github.com/agbru/fibbench/internal/orchestration"
	"github.com/agbru/fibbench/internal/server"
	"github.com/agbru/fibbench/internal/sysmon"
	"github.com/agbru/fibbench/internal/ui"
)

// runCalculate orchestrates the execution of the CLI calculation command.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	// Lifecycle: timeout + signals
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	recorder := metrics.NewRecorder()
	if a.Config.MetricsAddr != "" {
		srv := server.New(a.Config.MetricsAddr, recorder, logging.NewLogger(a.ErrWriter, "metrics-server"))
		srv.Start()
		defer srv.Shutdown()
	}

	calculatorsToRun := orchestration.GetCalculatorsToRun(a.Config.Algo, a.Factory)

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(calculatorsToRun, out)
	}

	// Quiet mode routes progress to the bit bucket
	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	memCollector := metrics.NewMemoryCollector()
	memBefore := memCollector.Snapshot()

	opts := fibonacci.Options{ProgressCheckInterval: fibonacci.ProgressCheckInterval}
	results := orchestration.ExecuteCalculations(ctx, calculatorsToRun, a.Config.N, opts, recorder, progressReporter, progressOut)

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		ShowValue:  a.Config.ShowValue,
	}

	exitCode := a.analyzeResultsWithOutput(results, outputCfg, out)

	if a.Config.Details && !a.Config.Quiet {
		a.printRunDetails(metrics.Delta(memBefore, memCollector.Snapshot()), out)
	}

	return exitCode
}

// printRunDetails displays system load and allocation cost after a run.
func (a *Application) printRunDetails(memDelta metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\n--- Run Details ---\n")
	fmt.Fprintf(out, "System: %s.\n", sysmon.Sample().Describe())
	fmt.Fprintf(out, "Allocations: %s heap growth, %d objects, %d GC cycles.\n",
		format.FormatBytes(memDelta.HeapAlloc), memDelta.HeapObjects, memDelta.NumGC)
}

func (a *Application) analyzeResultsWithOutput(results []orchestration.CalculationResult, outputCfg cli.OutputConfig, out io.Writer) int {
	bestResult := findBestResult(results)

	// Quiet mode: bare value only
	if outputCfg.Quiet {
		if bestResult == nil {
			return cli.CLIResultPresenter{}.HandleError(results[0].Err, results[0].Duration, a.ErrWriter)
		}
		cli.DisplayQuietResult(out, bestResult.Result)
		if err := a.saveResultIfNeeded(bestResult, outputCfg); err != nil {
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitSuccess
	}

	presOpts := orchestration.PresentationOptions{
		N:         a.Config.N,
		Verbose:   a.Config.Verbose,
		Details:   a.Config.Details,
		ShowValue: a.Config.ShowValue,
	}
	exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, cli.CLIResultPresenter{}, cli.CLIResultPresenter{}, out)

	if bestResult != nil && exitCode == apperrors.ExitSuccess {
		if err := a.saveResultIfNeeded(bestResult, outputCfg); err != nil {
			return apperrors.ExitErrorGeneric
		}
		if outputCfg.OutputFile != "" {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), outputCfg.OutputFile, ui.ColorReset())
		}
	}

	return exitCode
}

// findBestResult returns the fastest successful result, or nil when every
// strategy failed.
func findBestResult(results []orchestration.CalculationResult) *orchestration.CalculationResult {
	var bestResult *orchestration.CalculationResult
	for i := range results {
		if results[i].Err == nil {
			if bestResult == nil || results[i].Duration < bestResult.Duration {
				bestResult = &results[i]
			}
		}
	}
	return bestResult
}

func (a *Application) saveResultIfNeeded(res *orchestration.CalculationResult, cfg cli.OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}
	if err := cli.WriteResultToFile(res.Result, a.Config.N, res.Duration, res.Name, cfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		return err
	}
	return nil
}
