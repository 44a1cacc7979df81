package orchestration

import (
	"github.com/agbru/fibbench/internal/fibonacci"
)

// GetCalculatorsToRun determines which strategies should be executed based
// on the algorithm selection. Returns calculators in the factory's sorted
// key order for consistent, reproducible behavior.
//
// Parameters:
//   - algo: The selection: a registry key, or "all" for every strategy.
//   - factory: The calculator factory to retrieve implementations from.
//
// Returns:
//   - []fibonacci.Calculator: The strategies to execute; nil if the
//     selection matches nothing.
func GetCalculatorsToRun(algo string, factory fibonacci.CalculatorFactory) []fibonacci.Calculator {
	if algo == "all" {
		keys := factory.List() // List() returns sorted keys
		calculators := make([]fibonacci.Calculator, 0, len(keys))
		for _, k := range keys {
			if calc, err := factory.Get(k); err == nil {
				calculators = append(calculators, calc)
			}
		}
		return calculators
	}
	if calc, err := factory.Get(algo); err == nil {
		return []fibonacci.Calculator{calc}
	}
	return nil
}
