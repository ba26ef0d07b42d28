// Package telemetry provides a JSONL event stream for recording what happens
// during an editing session. Every parsed command, list mutation and error is
// written as a structured JSON event, so a session can be audited or tailed
// live from another terminal.
package telemetry

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"sync"
	"time"
)

// Event kinds identify the type of telemetry event.
const (
	KindSessionStart = "session_start"
	KindSessionEnd   = "session_end"
	KindCommand      = "command"
	KindShapeAdded   = "shape_added"
	KindShapeRemoved = "shape_removed"
	KindShapeMoved   = "shape_moved"
	KindSorted       = "sorted"
	KindError        = "error"
)

// Event represents a single telemetry record.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	SessionID string    `json:"session,omitempty"`
	Data      any       `json:"data,omitempty"`
}

// Float returns v as-is when it is finite. NaN and infinities have no JSON
// number form and are returned as text ("NaN", "+Inf", "-Inf").
func Float(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return v
}

// Floats applies Float to each element of vs.
func Floats(vs []float64) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = Float(v)
	}
	return out
}

// Emitter writes telemetry events as JSON lines. It is safe for concurrent
// use. A nil *Emitter is a valid no-op emitter.
type Emitter struct {
	closer  io.Closer
	enc     *json.Encoder
	session string
	now     func() time.Time
	mu      sync.Mutex
}

// NewEmitter creates an Emitter that appends events to the file at path,
// creating it if needed.
func NewEmitter(path string) (*Emitter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	em := NewWriterEmitter(f)
	em.closer = f
	return em, nil
}

// NewWriterEmitter creates an Emitter that writes to w. Close does not close w.
func NewWriterEmitter(w io.Writer) *Emitter {
	return &Emitter{
		enc: json.NewEncoder(w),
		now: time.Now,
	}
}

// SetSession tags all subsequent events with id.
func (e *Emitter) SetSession(id string) {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session = id
}

// Emit writes a single event. Zero timestamps and session IDs are filled in.
func (e *Emitter) Emit(evt Event) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if evt.Timestamp.IsZero() {
		evt.Timestamp = e.now().UTC()
	}
	if evt.SessionID == "" {
		evt.SessionID = e.session
	}
	if err := e.enc.Encode(evt); err != nil {
		return fmt.Errorf("telemetry: encode event: %w", err)
	}
	return nil
}

// Record is shorthand for emitting an event of the given kind with data.
func (e *Emitter) Record(kind string, data any) error {
	return e.Emit(Event{Kind: kind, Data: data})
}

// Close closes the underlying file, if the Emitter owns one.
func (e *Emitter) Close() error {
	if e == nil || e.closer == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.closer.Close(); err != nil {
		return fmt.Errorf("telemetry: close: %w", err)
	}
	return nil
}
