package dispatch

import (
	"sync/atomic"
	"time"
)

// Metrics tracks dispatch statistics.
// All counters use atomics so recording never blocks the dispatch path.
type Metrics struct {
	rawEvents         atomic.Uint64
	unboundInputs     atomic.Uint64
	actionsDispatched atomic.Uint64
	actionsHandled    atomic.Uint64
	actionsUnhandled  atomic.Uint64
	actionsCancelled  atomic.Uint64
	subscriberPanics  atomic.Uint64
	totalDispatchNs   atomic.Int64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordRawEvent records a raw input event arriving at the dispatcher.
func (m *Metrics) RecordRawEvent() {
	m.rawEvents.Add(1)
}

// RecordUnbound records a raw code with no mapped action.
func (m *Metrics) RecordUnbound() {
	m.unboundInputs.Add(1)
}

// RecordDispatch records one action propagation and its outcome.
func (m *Metrics) RecordDispatch(handled bool, elapsed time.Duration) {
	m.actionsDispatched.Add(1)
	if handled {
		m.actionsHandled.Add(1)
	} else {
		m.actionsUnhandled.Add(1)
	}
	m.totalDispatchNs.Add(elapsed.Nanoseconds())
}

// RecordCancelled records an action cancelled by a pre-dispatch hook.
func (m *Metrics) RecordCancelled() {
	m.actionsCancelled.Add(1)
}

// RecordPanic records a subscriber panic.
func (m *Metrics) RecordPanic() {
	m.subscriberPanics.Add(1)
}

// Stats is a point-in-time snapshot of dispatch statistics.
type Stats struct {
	RawEvents         uint64
	UnboundInputs     uint64
	ActionsDispatched uint64
	ActionsHandled    uint64
	ActionsUnhandled  uint64
	ActionsCancelled  uint64
	SubscriberPanics  uint64
	AvgDispatchNs     int64
	Uptime            time.Duration
}

// Snapshot returns the current statistics.
func (m *Metrics) Snapshot() Stats {
	dispatched := m.actionsDispatched.Load()

	var avgNs int64
	if dispatched > 0 {
		avgNs = m.totalDispatchNs.Load() / int64(dispatched)
	}

	return Stats{
		RawEvents:         m.rawEvents.Load(),
		UnboundInputs:     m.unboundInputs.Load(),
		ActionsDispatched: dispatched,
		ActionsHandled:    m.actionsHandled.Load(),
		ActionsUnhandled:  m.actionsUnhandled.Load(),
		ActionsCancelled:  m.actionsCancelled.Load(),
		SubscriberPanics:  m.subscriberPanics.Load(),
		AvgDispatchNs:     avgNs,
		Uptime:            time.Since(m.startTime),
	}
}
