package dispatch

import (
	"log/slog"
	"sync"
	"time"

	"github.com/dshills/remap/internal/input/action"
	"github.com/dshills/remap/internal/input/code"
)

// DiagnosticKind classifies a non-fatal dispatch condition.
type DiagnosticKind uint8

const (
	// DiagUnboundInput indicates a raw code with no mapped action.
	DiagUnboundInput DiagnosticKind = iota

	// DiagUnhandledAction indicates every subscriber declined an action.
	DiagUnhandledAction

	// DiagSubscriberFailure indicates a subscriber panicked while handling.
	DiagSubscriberFailure
)

// String returns the diagnostic kind name.
func (k DiagnosticKind) String() string {
	switch k {
	case DiagUnboundInput:
		return "unbound-input"
	case DiagUnhandledAction:
		return "unhandled-action"
	case DiagSubscriberFailure:
		return "subscriber-failure"
	default:
		return "unknown"
	}
}

// Diagnostic records one non-fatal dispatch condition.
type Diagnostic struct {
	// Kind classifies the condition.
	Kind DiagnosticKind

	// Code is the raw input code, set for DiagUnboundInput.
	Code code.Code

	// Action is the resolved action, set for the other kinds.
	Action action.Action

	// Subscriber is the failing subscriber for DiagSubscriberFailure.
	Subscriber Subscriber

	// Err carries the failure detail for DiagSubscriberFailure.
	Err error

	// Time is when the condition was observed.
	Time time.Time
}

// Sink receives diagnostics from the dispatcher.
// Record is called synchronously from the dispatch path and must not block.
type Sink interface {
	Record(d Diagnostic)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Diagnostic)

// Record invokes the function.
func (f SinkFunc) Record(d Diagnostic) {
	f(d)
}

// NopSink discards all diagnostics.
type NopSink struct{}

// Record does nothing.
func (NopSink) Record(Diagnostic) {}

// LogSink writes diagnostics to a structured logger.
// Unhandled actions are expected during play, so they log at debug while
// unbound codes log at warn and subscriber failures at error.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a sink writing to the given logger.
// A nil logger uses slog.Default.
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

// Record logs the diagnostic at a severity matching its kind.
func (s *LogSink) Record(d Diagnostic) {
	switch d.Kind {
	case DiagUnboundInput:
		s.logger.Warn("unbound input", "code", d.Code.String())
	case DiagUnhandledAction:
		s.logger.Debug("unhandled action", "action", d.Action.Name, "phase", d.Action.Phase.String())
	case DiagSubscriberFailure:
		s.logger.Error("subscriber failure", "action", d.Action.Name, "error", d.Err)
	}
}

// Collector retains diagnostics in memory. Intended for tests and for debug
// overlays that show recent input problems.
type Collector struct {
	mu    sync.Mutex
	diags []Diagnostic
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Record appends the diagnostic.
func (c *Collector) Record(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diags = append(c.diags, d)
}

// Diagnostics returns a copy of the recorded diagnostics.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Diagnostic, len(c.diags))
	copy(out, c.diags)
	return out
}

// CountKind returns how many diagnostics of a kind were recorded.
func (c *Collector) CountKind(kind DiagnosticKind) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, d := range c.diags {
		if d.Kind == kind {
			n++
		}
	}
	return n
}

// Len returns the number of recorded diagnostics.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.diags)
}

// Reset discards all recorded diagnostics.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diags = nil
}
