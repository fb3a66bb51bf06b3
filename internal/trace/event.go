package trace

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"

	"apptemplate/internal/motion"
	"apptemplate/internal/route"
)

// EventType identifies the kind of recorded event
type EventType string

const (
	EventNavigate EventType = "navigate" // Screen pushed, replaced or popped
	EventAnimate  EventType = "animate"  // Animation installed on a value
)

// Event is a single recorded navigation or animation event
type Event struct {
	TraceID    string            `json:"trace_id"`   // Session the event belongs to
	SpanID     string            `json:"span_id"`    // Unique ID for this event
	Type       EventType         `json:"type"`       // Event type
	Name       string            `json:"name"`       // Screen or value name
	Timestamp  time.Time         `json:"timestamp"`  // When the event occurred
	Attributes map[string]string `json:"attributes"` // Additional metadata
}

// Attr returns the attribute k, or "".
func (e Event) Attr(k string) string {
	return e.Attributes[k]
}

// NavigationEvent converts a navigator change into an event.
func NavigationEvent(c route.Change, at time.Time) Event {
	attrs := map[string]string{
		"op":    string(c.Op),
		"to":    string(c.To.Screen),
		"depth": strconv.Itoa(c.Depth),
	}
	if c.From.Screen != "" {
		attrs["from"] = string(c.From.Screen)
	}
	for _, k := range c.To.Params.Keys() {
		attrs["param."+k] = paramString(c.To.Params[k])
	}
	return Event{
		SpanID:     NewSpanID(),
		Type:       EventNavigate,
		Name:       string(c.To.Screen),
		Timestamp:  at,
		Attributes: attrs,
	}
}

// AnimationEvent describes an animation installed on the value named value
// of element.
func AnimationEvent(element, value string, kind motion.Kind, from float64, at time.Time) Event {
	return Event{
		SpanID:    NewSpanID(),
		Type:      EventAnimate,
		Name:      element + "." + value,
		Timestamp: at,
		Attributes: map[string]string{
			"element": element,
			"value":   value,
			"kind":    kind.String(),
			"from":    strconv.FormatFloat(from, 'g', -1, 64),
		},
	}
}

func paramString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

// NewTraceID generates a random 16-byte trace ID as hex string (32 characters)
func NewTraceID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// NewSpanID generates a random 8-byte span ID as hex string (16 characters)
func NewSpanID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}
