// Package cli implements the command-line presentation layer: progress
// display, result formatting, the comparison table, and file output.
//
// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//   - Write* functions write data to files on the filesystem.
package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/fibbench/internal/progress"
)

const (
	// TruncationLimit is the digit threshold from which a result is truncated
	// in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the beginning
	// and end of a truncated number.
	DisplayEdges = 25
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner is an interface that abstracts the behavior of a terminal spinner,
// decoupling DisplayProgress from a specific spinner implementation and
// making the progress loop testable.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() { rs.s.Start() }

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() { rs.s.Stop() }

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

// newSpinner is a factory hook, replaceable in tests.
var newSpinner = func(options ...spinner.Option) Spinner {
	// Same interval as ProgressRefreshRate to synchronize
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressState encapsulates the aggregated progress of concurrent
// calculations. It maintains the individual progress of each calculator and
// computes the average for a single consolidated progress bar.
type ProgressState struct {
	progresses     []float64
	numCalculators int
}

// NewProgressState creates and initializes a new ProgressState for the given
// number of calculators.
func NewProgressState(numCalculators int) *ProgressState {
	return &ProgressState{
		progresses:     make([]float64, numCalculators),
		numCalculators: numCalculators,
	}
}

// Update records a new progress value for a specific calculator. Updates for
// out-of-range indices are ignored.
func (ps *ProgressState) Update(index int, value float64) {
	if index >= 0 && index < len(ps.progresses) {
		ps.progresses[index] = value
	}
}

// CalculateAverage computes the average progress across all tracked
// calculators.
func (ps *ProgressState) CalculateAverage() float64 {
	if ps.numCalculators == 0 {
		return 0.0
	}
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	return total / float64(ps.numCalculators)
}

// FormatProgressBar renders a fixed-width textual progress bar for the
// given fraction (clamped to [0, 1]).
func FormatProgressBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	filled := int(pct * float64(width))
	return fmt.Sprintf("[%s%s] %5.1f%%",
		strings.Repeat("█", filled),
		strings.Repeat("░", width-filled),
		pct*100)
}

// DisplayProgress consumes updates from progressChan and renders a spinner
// with an aggregated progress bar until the channel is closed. It signals wg
// when display is complete.
//
// Parameters:
//   - wg: WaitGroup signaled on completion.
//   - progressChan: Channel receiving updates from the calculators.
//   - numCalculators: The number of concurrent calculators being tracked.
//   - out: The writer for progress output.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, out io.Writer) {
	defer wg.Done()

	if numCalculators <= 0 {
		for range progressChan {
		}
		return
	}

	state := NewProgressState(numCalculators)
	sp := newSpinner(spinner.WithWriter(out))
	sp.UpdateSuffix(" " + FormatProgressBar(0, ProgressBarWidth))
	sp.Start()
	defer sp.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				sp.UpdateSuffix(" " + FormatProgressBar(1, ProgressBarWidth))
				return
			}
			state.Update(update.CalculatorIndex, update.Value)
		case <-ticker.C:
			sp.UpdateSuffix(" " + FormatProgressBar(state.CalculateAverage(), ProgressBarWidth))
		}
	}
}
