package fibonacci

import (
	"context"
	"fmt"
	"math/big"
	"sort"

	apperrors "github.com/agbru/fibbench/internal/errors"
	"github.com/agbru/fibbench/internal/progress"
)

// Options carries tuning parameters shared by all strategies.
type Options struct {
	// ProgressCheckInterval overrides the step interval between context
	// checks and progress reports. Zero selects the package default.
	ProgressCheckInterval uint64
}

// checkInterval resolves the effective interval.
func (o Options) checkInterval() uint64 {
	if o.ProgressCheckInterval > 0 {
		return o.ProgressCheckInterval
	}
	return ProgressCheckInterval
}

// Calculator is the public contract of a Fibonacci strategy. Calculate is a
// pure function of n: same index, same result, no side effects beyond
// progress reporting.
type Calculator interface {
	// Name returns the human-readable strategy name for display.
	Name() string

	// Calculate computes F(n). Progress updates tagged with index are sent
	// to progressChan (nil disables reporting). The context bounds the
	// calculation; the strategies check it periodically and return its
	// error on cancellation.
	Calculate(ctx context.Context, progressChan chan<- progress.ProgressUpdate, index int, n uint64, opts Options) (*big.Int, error)
}

// coreCalculator is the internal strategy contract. Strategies implement
// the raw computation against a callback; FibCalculator adapts it to the
// channel-based public interface.
type coreCalculator interface {
	Name() string
	CalculateCore(ctx context.Context, report progress.ProgressCallback, n uint64, opts Options) (*big.Int, error)
}

// FibCalculator adapts a coreCalculator to the Calculator interface,
// handling progress channel plumbing and final-progress emission.
type FibCalculator struct {
	core coreCalculator
}

// NewCalculator wraps a strategy implementation in the public Calculator
// interface.
func NewCalculator(core coreCalculator) Calculator {
	return &FibCalculator{core: core}
}

// Name returns the strategy display name.
func (c *FibCalculator) Name() string { return c.core.Name() }

// Calculate runs the strategy, reporting progress to progressChan.
func (c *FibCalculator) Calculate(ctx context.Context, progressChan chan<- progress.ProgressUpdate, index int, n uint64, opts Options) (*big.Int, error) {
	report := progress.ChannelCallback(progressChan, index)
	result, err := c.core.CalculateCore(ctx, report, n, opts)
	if err != nil {
		return nil, err
	}
	report(1.0)
	return result, nil
}

// CalculateWithObservers runs the strategy, publishing progress through the
// given subject instead of a raw channel.
func (c *FibCalculator) CalculateWithObservers(ctx context.Context, subject *progress.ProgressSubject, index int, n uint64, opts Options) (*big.Int, error) {
	report := subject.Callback(index)
	result, err := c.core.CalculateCore(ctx, report, n, opts)
	if err != nil {
		return nil, err
	}
	report(1.0)
	return result, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Factory
// ─────────────────────────────────────────────────────────────────────────────

// CalculatorFactory resolves strategies by registry key.
type CalculatorFactory interface {
	// Get returns the calculator registered under name.
	Get(name string) (Calculator, error)
	// GetAll returns the full registry keyed by name.
	GetAll() map[string]Calculator
	// List returns the registered names in sorted order.
	List() []string
}

// DefaultFactory is a map-backed CalculatorFactory.
type DefaultFactory struct {
	registry map[string]Calculator
}

// NewDefaultFactory creates a factory pre-registered with the two standard
// strategies under the keys "recursive" and "iterative".
func NewDefaultFactory() *DefaultFactory {
	return &DefaultFactory{
		registry: map[string]Calculator{
			"recursive": NewCalculator(&RecursiveStrategy{}),
			"iterative": NewCalculator(&IterativeStrategy{}),
		},
	}
}

// Get returns the calculator registered under name.
func (f *DefaultFactory) Get(name string) (Calculator, error) {
	calc, ok := f.registry[name]
	if !ok {
		return nil, apperrors.NewConfigError("unknown algorithm %q (available: %v)", name, f.List())
	}
	return calc, nil
}

// GetAll returns a copy of the registry.
func (f *DefaultFactory) GetAll() map[string]Calculator {
	all := make(map[string]Calculator, len(f.registry))
	for k, v := range f.registry {
		all[k] = v
	}
	return all
}

// List returns the registered names in sorted order for reproducible
// selection and display.
func (f *DefaultFactory) List() []string {
	keys := make([]string, 0, len(f.registry))
	for k := range f.registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Register adds a calculator under the given name, replacing any existing
// registration. Used by tests to inject instrumented strategies.
func (f *DefaultFactory) Register(name string, calc Calculator) error {
	if name == "" || calc == nil {
		return fmt.Errorf("invalid registration: empty name or nil calculator")
	}
	f.registry[name] = calc
	return nil
}
