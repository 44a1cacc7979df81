package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/fibbench/internal/cli"
	apperrors "github.com/agbru/fibbench/internal/errors"
	"github.com/agbru/fibbench/internal/fibonacci"
	"github.com/agbru/fibbench/internal/logging"
	"github.com/agbru/fibbench/internal/metrics"
	"github.com/agbru/fibbench/internal/orchestration"
	"github.com/agbru/fibbench/internal/server"
	"github.com/agbru/fibbench/internal/ui"
)

// runVerify checks every selected strategy against the reference sequence
// and reports per-strategy outcomes. Any failure yields a mismatch exit code.
func (a *Application) runVerify(ctx context.Context, out io.Writer) int {
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
	opts := fibonacci.Options{ProgressCheckInterval: fibonacci.ProgressCheckInterval}

	if !a.Config.Quiet {
		fmt.Fprintf(out, "--- Verification ---\n")
		fmt.Fprintf(out, "Checking %sF(%d..%d)%s against the reference sequence.\n",
			ui.ColorPrimary(), fibonacci.VerifyRangeStart, fibonacci.VerifyRangeEnd, ui.ColorReset())
	}

	exitCode := apperrors.ExitSuccess
	for _, calc := range calculatorsToRun {
		start := time.Now()
		err := fibonacci.VerifyCalculator(ctx, calc, opts)
		elapsed := time.Since(start)

		recorder.ObserveVerification(calc.Name(), err == nil)

		if a.Config.Quiet {
			if err != nil {
				fmt.Fprintf(out, "FAIL %s: %v\n", calc.Name(), err)
			} else {
				fmt.Fprintf(out, "PASS %s\n", calc.Name())
			}
		} else {
			cli.DisplayVerification(calc.Name(), err, elapsed, out)
		}

		if err != nil {
			exitCode = apperrors.ExitErrorMismatch
		}
	}

	return exitCode
}
