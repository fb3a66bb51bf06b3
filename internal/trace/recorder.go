package trace

import (
	"context"
	"sync"
	"time"

	"apptemplate/internal/motion"
	"apptemplate/internal/route"
)

// DefaultMaxEvents is the number of events kept when NewRecorder gets a
// non-positive size.
const DefaultMaxEvents = 20

// Recorder keeps the most recent events of one session in memory and
// forwards every event to the OTLP exporter, if one is configured.
type Recorder struct {
	mu        sync.RWMutex
	traceID   string
	events    []Event // ring buffer, oldest first
	maxEvents int
	onChange  func()        // Callback when a new event is recorded
	exporter  *OTLPExporter // nil when export is disabled
	now       func() time.Time
}

// NewRecorder creates a recorder for a new session. exporter may be nil.
func NewRecorder(maxEvents int, exporter *OTLPExporter) *Recorder {
	if maxEvents <= 0 {
		maxEvents = DefaultMaxEvents
	}
	traceID := exporter.TraceID()
	if traceID == "" {
		traceID = NewTraceID()
	}
	return &Recorder{
		traceID:   traceID,
		events:    make([]Event, 0, maxEvents),
		maxEvents: maxEvents,
		exporter:  exporter,
		now:       time.Now,
	}
}

// TraceID returns the session's trace ID.
func (r *Recorder) TraceID() string {
	return r.traceID
}

// Record stores e, evicting the oldest event when full, and exports it.
func (r *Recorder) Record(e Event) {
	r.mu.Lock()
	e.TraceID = r.traceID
	if e.Timestamp.IsZero() {
		e.Timestamp = r.now()
	}
	r.events = append(r.events, e)
	if len(r.events) > r.maxEvents {
		r.events = r.events[1:]
	}
	onChange := r.onChange
	exporter := r.exporter
	r.mu.Unlock()

	exporter.ExportEvent(context.Background(), e)
	if onChange != nil {
		onChange()
	}
}

// Recent returns recorded events, newest first.
func (r *Recorder) Recent() []Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Event, 0, len(r.events))
	for i := len(r.events) - 1; i >= 0; i-- {
		result = append(result, r.events[i])
	}
	return result
}

// Len returns the number of stored events.
func (r *Recorder) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.events)
}

// SetOnChange sets callback for new events (thread-safe)
func (r *Recorder) SetOnChange(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onChange = fn
}

// NavigationListener returns a route listener that records every change.
func (r *Recorder) NavigationListener() route.Listener {
	return func(c route.Change) {
		r.Record(NavigationEvent(c, r.now()))
	}
}

// ObserveAnimations records every animation installed through c, naming
// the events after element.
func (r *Recorder) ObserveAnimations(element string, c *motion.Controller) {
	c.Observe(func(value string, kind motion.Kind, from float64) {
		r.Record(AnimationEvent(element, value, kind, from, r.now()))
	})
}

// Shutdown flushes pending exports and closes the OTLP exporter.
// Must be called before process exit to ensure spans are exported.
func (r *Recorder) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	exporter := r.exporter
	r.mu.Unlock()
	return exporter.Shutdown(ctx)
}
