// Package progress defines the progress reporting primitives shared by the
// calculation strategies and the presentation layers. Strategies report
// through a ProgressCallback; consumers receive ProgressUpdate values over a
// channel or through registered observers.
package progress

import (
	"github.com/rs/zerolog"
)

// ProgressUpdate carries a single progress report from a running calculation.
type ProgressUpdate struct {
	// CalculatorIndex identifies which concurrent calculator sent the update.
	CalculatorIndex int
	// Value is the completion fraction, from 0.0 to 1.0.
	Value float64
}

// ProgressCallback receives a completion fraction (0.0 to 1.0) from a
// calculation in flight. Implementations must be cheap; strategies may call
// them from hot loops.
type ProgressCallback func(pct float64)

// ProgressObserver is notified of progress updates published by a
// ProgressSubject.
type ProgressObserver interface {
	// OnProgress receives a single progress update.
	OnProgress(update ProgressUpdate)
}

// ProgressSubject fans progress updates out to registered observers.
// It is not safe for concurrent Register/Notify; register all observers
// before the calculation starts.
type ProgressSubject struct {
	observers []ProgressObserver
}

// NewProgressSubject creates an empty subject.
func NewProgressSubject() *ProgressSubject {
	return &ProgressSubject{}
}

// Register adds an observer. Nil observers are ignored.
func (s *ProgressSubject) Register(o ProgressObserver) {
	if o != nil {
		s.observers = append(s.observers, o)
	}
}

// Notify publishes an update to every registered observer in registration
// order.
func (s *ProgressSubject) Notify(update ProgressUpdate) {
	for _, o := range s.observers {
		o.OnProgress(update)
	}
}

// Callback returns a ProgressCallback that publishes updates for the given
// calculator index through the subject.
func (s *ProgressSubject) Callback(index int) ProgressCallback {
	return func(pct float64) {
		s.Notify(ProgressUpdate{CalculatorIndex: index, Value: pct})
	}
}

// ChannelObserver forwards updates to a channel. Sends are non-blocking:
// if the channel buffer is full the update is dropped, so a slow consumer
// never stalls a calculation.
type ChannelObserver struct {
	ch chan<- ProgressUpdate
}

// NewChannelObserver creates an observer forwarding to ch.
func NewChannelObserver(ch chan<- ProgressUpdate) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

// OnProgress forwards the update, dropping it if the channel is full.
func (c *ChannelObserver) OnProgress(update ProgressUpdate) {
	if c.ch == nil {
		return
	}
	select {
	case c.ch <- update:
	default:
	}
}

// LoggingObserver logs progress updates at debug level. Intended for
// diagnostics; enable only when debugging progress reporting itself.
type LoggingObserver struct {
	logger zerolog.Logger
}

// NewLoggingObserver creates an observer logging through the given logger.
func NewLoggingObserver(logger zerolog.Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger}
}

// OnProgress logs the update.
func (l *LoggingObserver) OnProgress(update ProgressUpdate) {
	l.logger.Debug().
		Int("calculator", update.CalculatorIndex).
		Float64("progress", update.Value).
		Msg("progress update")
}

// NoOpObserver discards all updates.
type NoOpObserver struct{}

// NewNoOpObserver creates a discarding observer.
func NewNoOpObserver() *NoOpObserver { return &NoOpObserver{} }

// OnProgress discards the update.
func (NoOpObserver) OnProgress(ProgressUpdate) {}

// ChannelCallback returns a ProgressCallback that performs a non-blocking
// send of updates for the given calculator index onto progressChan.
// A nil channel yields a no-op callback.
func ChannelCallback(progressChan chan<- ProgressUpdate, index int) ProgressCallback {
	if progressChan == nil {
		return func(float64) {}
	}
	return func(pct float64) {
		select {
		case progressChan <- ProgressUpdate{CalculatorIndex: index, Value: pct}:
		default:
		}
	}
}
