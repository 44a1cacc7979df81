// Package orchestration coordinates the concurrent execution of Fibonacci
// strategies and the analysis of their results. It owns the application's
// concurrency model: one goroutine per strategy under an errgroup, a shared
// progress channel drained by a ProgressReporter, and a consistency check
// across the strategies' results.
//
// The package depends only on interfaces for presentation concerns
// (ProgressReporter, ResultPresenter, ErrorHandler), keeping business logic
// free of UI details.
package orchestration
