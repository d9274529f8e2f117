package dispatch

import (
	"runtime"
	"sync"
	"time"

	"github.com/dshills/remap/internal/input/action"
	"github.com/dshills/remap/internal/input/binding"
	"github.com/dshills/remap/internal/input/code"
)

// Dispatcher owns the binding table and subscriber registry and routes each
// raw input event through them.
//
// Dispatch is synchronous and serialized: the host input source delivers one
// event at a time and each event is fully resolved and propagated before the
// next is accepted. The internal locks only guard against configuration
// changes (rebinding from a file watcher, subscriber churn) racing the
// dispatch path; they do not make overlapping dispatches part of the contract.
type Dispatcher struct {
	mu sync.RWMutex

	bindings *binding.Table
	registry *Registry

	config  Config
	metrics *Metrics
	sink    Sink

	preHooks  []PreDispatchHook
	postHooks []PostDispatchHook
}

// New creates a dispatcher with the given configuration and an empty binding
// table.
func New(config Config) *Dispatcher {
	d := &Dispatcher{
		bindings: binding.NewTable(),
		registry: NewRegistry(),
		config:   config,
		sink:     NopSink{},
	}

	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}

	return d
}

// NewWithDefaults creates a dispatcher with default configuration.
func NewWithDefaults() *Dispatcher {
	return New(DefaultConfig())
}

// SetBindings replaces the dispatcher's binding table.
func (d *Dispatcher) SetBindings(table *binding.Table) error {
	if table == nil {
		return ErrNilBindings
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.bindings = table
	return nil
}

// Bindings returns the current binding table.
func (d *Dispatcher) Bindings() *binding.Table {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.bindings
}

// SetSink sets the diagnostic sink. A nil sink discards diagnostics.
func (d *Dispatcher) SetSink(sink Sink) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if sink == nil {
		sink = NopSink{}
	}
	d.sink = sink
}

// Subscribe inserts a subscriber at the front of the priority order.
// Subscribing an already-registered subscriber is a no-op and does not
// change its priority.
func (d *Dispatcher) Subscribe(s Subscriber) error {
	if s == nil {
		return ErrNilSubscriber
	}
	d.registry.Subscribe(s)
	return nil
}

// Unsubscribe removes a subscriber by identity.
// Unsubscribing an unknown subscriber is a no-op.
func (d *Dispatcher) Unsubscribe(s Subscriber) {
	if s == nil {
		return
	}
	d.registry.Unsubscribe(s)
}

// Registry returns the subscriber registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Metrics returns the metrics collector (nil when disabled).
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Config returns the dispatcher configuration.
func (d *Dispatcher) Config() Config {
	return d.config
}

// RegisterPreHook registers a pre-dispatch hook.
func (d *Dispatcher) RegisterPreHook(hook PreDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.preHooks = append(d.preHooks, hook)
}

// RegisterPostHook registers a post-dispatch hook.
func (d *Dispatcher) RegisterPostHook(hook PostDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.postHooks = append(d.postHooks, hook)
}

// OnRawInput processes one physical input transition.
// It resolves the code through the binding table and propagates the resolved
// action. Returns true if a subscriber handled the action.
func (d *Dispatcher) OnRawInput(c code.Code, phase code.Phase) bool {
	return d.OnEvent(code.NewEvent(c, phase))
}

// OnEvent processes one raw input event.
func (d *Dispatcher) OnEvent(ev code.Event) bool {
	if d.metrics != nil {
		d.metrics.RecordRawEvent()
	}

	name, ok := d.Bindings().Resolve(ev.Code)
	if !ok {
		// Unbound codes are diagnostic-only, never an error.
		if d.metrics != nil {
			d.metrics.RecordUnbound()
		}
		d.recordDiagnostic(Diagnostic{
			Kind: DiagUnboundInput,
			Code: ev.Code,
			Time: time.Now(),
		})
		return false
	}

	act := action.Action{
		Name:      name,
		Phase:     ev.Phase,
		Timestamp: ev.Timestamp,
	}.WithCode(ev.Code)

	return d.Dispatch(act)
}

// Dispatch offers an action to subscribers in priority order and stops at the
// first one that reports handled. The same algorithm serves every phase.
func (d *Dispatcher) Dispatch(act action.Action) bool {
	startTime := time.Now()

	if !d.runPreHooks(&act) {
		if d.metrics != nil {
			d.metrics.RecordCancelled()
		}
		return false
	}

	// Snapshot first: subscribers may subscribe or unsubscribe while
	// handling, and that must not affect the event being routed.
	subs := d.registry.Snapshot()

	handled := false
	for _, s := range subs {
		ok, err := d.offer(s, act)
		if err != nil {
			if d.metrics != nil {
				d.metrics.RecordPanic()
			}
			d.recordDiagnostic(Diagnostic{
				Kind:       DiagSubscriberFailure,
				Action:     act,
				Subscriber: s,
				Err:        err,
				Time:       time.Now(),
			})
			continue
		}
		if ok {
			handled = true
			break
		}
	}

	if !handled {
		d.recordDiagnostic(Diagnostic{
			Kind:   DiagUnhandledAction,
			Action: act,
			Time:   time.Now(),
		})
	}

	if d.metrics != nil {
		d.metrics.RecordDispatch(handled, time.Since(startTime))
	}

	d.runPostHooks(act, handled)

	return handled
}

// offer invokes one subscriber, isolating panics when configured.
func (d *Dispatcher) offer(s Subscriber, act action.Action) (handled bool, err error) {
	if d.config.RecoverFromPanic {
		defer func() {
			if r := recover(); r != nil {
				stack := make([]byte, 4096)
				n := runtime.Stack(stack, false)

				handled = false
				err = &PanicError{
					Action: act.Name,
					Value:  r,
					Stack:  string(stack[:n]),
				}
			}
		}()
	}

	return s.HandleAction(act), nil
}

// runPreHooks runs all pre-dispatch hooks.
// Returns false if any hook cancels the action.
func (d *Dispatcher) runPreHooks(act *action.Action) bool {
	d.mu.RLock()
	hooks := make([]PreDispatchHook, len(d.preHooks))
	copy(hooks, d.preHooks)
	d.mu.RUnlock()

	for _, h := range hooks {
		if !h.PreDispatch(act) {
			return false
		}
	}
	return true
}

// runPostHooks runs all post-dispatch hooks.
func (d *Dispatcher) runPostHooks(act action.Action, handled bool) {
	d.mu.RLock()
	hooks := make([]PostDispatchHook, len(d.postHooks))
	copy(hooks, d.postHooks)
	d.mu.RUnlock()

	for _, h := range hooks {
		h.PostDispatch(act, handled)
	}
}

// recordDiagnostic sends a diagnostic to the current sink.
func (d *Dispatcher) recordDiagnostic(diag Diagnostic) {
	d.mu.RLock()
	sink := d.sink
	d.mu.RUnlock()

	sink.Record(diag)
}
