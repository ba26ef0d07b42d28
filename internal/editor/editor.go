// Package editor dispatches parsed commands to a shape list and runs the
// interactive read-eval-print session around it.
package editor

import (
	"errors"
	"fmt"
	"math"

	"github.com/papapumpkin/shapelist/internal/command"
	"github.com/papapumpkin/shapelist/internal/shape"
	"github.com/papapumpkin/shapelist/internal/shapelist"
	"github.com/papapumpkin/shapelist/internal/telemetry"
)

// Outcome describes the result of a successfully executed command.
type Outcome struct {
	Command  command.Command
	Message  string
	ShowList bool             // the caller should display Shapes
	Shapes   []shape.Snapshot // list contents after the command, set when ShowList is true
	Quit     bool
}

// ActionError wraps a failed list operation with the editor action that
// triggered it.
type ActionError struct {
	Action string
	Err    error
}

func (e *ActionError) Error() string {
	var le *shapelist.Error
	if errors.As(e.Err, &le) {
		msg := le.Err.Error()
		if le.Field != "" {
			msg += " (" + le.Field + ")"
		}
		return e.Action + ": " + msg
	}
	return e.Action + ": " + e.Err.Error()
}

func (e *ActionError) Unwrap() error { return e.Err }

// Editor owns a shape list and applies commands to it. It is not safe for
// concurrent use; one session drives one editor.
type Editor struct {
	list    *shapelist.List
	parser  command.Parser
	emitter *telemetry.Emitter
}

// Option configures an Editor.
type Option func(*Editor)

// WithStrict rejects non-numeric argument tokens instead of dropping them.
func WithStrict(strict bool) Option {
	return func(e *Editor) { e.parser.Strict = strict }
}

// WithEmitter records every command and its result to em.
func WithEmitter(em *telemetry.Emitter) Option {
	return func(e *Editor) { e.emitter = em }
}

// New creates an Editor over list. A nil list gets a new list of
// shapelist.DefaultCapacity.
func New(list *shapelist.List, opts ...Option) *Editor {
	if list == nil {
		list = shapelist.New(shapelist.DefaultCapacity)
	}
	e := &Editor{list: list}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Shapes returns a snapshot of the list contents.
func (e *Editor) Shapes() []shape.Snapshot { return e.list.Snapshots() }

// Len returns the number of shapes in the list.
func (e *Editor) Len() int { return e.list.Len() }

// Cap returns the list capacity.
func (e *Editor) Cap() int { return e.list.Cap() }

// Handle parses line and executes the resulting command.
func (e *Editor) Handle(line string) (Outcome, error) {
	cmd, err := e.parser.Parse(line)
	if err != nil {
		e.record(telemetry.KindError, map[string]any{"line": line, "kind": "parse", "msg": err.Error()})
		return Outcome{}, err
	}
	e.record(telemetry.KindCommand, map[string]any{"line": line, "name": string(cmd.Name()), "args": telemetry.Floats(cmd.Args())})
	return e.Execute(cmd)
}

// Execute applies cmd to the list. On error the list is unchanged.
func (e *Editor) Execute(cmd command.Command) (Outcome, error) {
	out, err := e.dispatch(cmd)
	if err != nil {
		kind := "unknown"
		if k, ok := shapelist.KindOf(err); ok {
			kind = string(k)
		}
		e.record(telemetry.KindError, map[string]any{"command": cmd.String(), "kind": kind, "msg": err.Error()})
		return Outcome{}, err
	}
	out.Command = cmd
	if out.ShowList {
		out.Shapes = e.list.Snapshots()
	}
	return out, nil
}

func (e *Editor) dispatch(cmd command.Command) (Outcome, error) {
	switch cmd.Name() {
	case command.Quit:
		return Outcome{Quit: true, Message: "Finished editing the shape list"}, nil
	case command.Show:
		return Outcome{ShowList: true}, nil
	case command.Circle:
		return e.addCircle(cmd.Arg(0), cmd.Arg(1), cmd.Arg(2))
	case command.Rectangle:
		return e.addRectangle(cmd.Arg(0), cmd.Arg(1), cmd.Arg(2), cmd.Arg(3))
	case command.Remove:
		return e.remove(toIndex(cmd.Arg(0)))
	case command.Move:
		return e.move(toIndex(cmd.Arg(0)), cmd.Arg(1), cmd.Arg(2))
	case command.Sort:
		return e.sort(cmd), nil
	default:
		return Outcome{}, fmt.Errorf("editor: unhandled command %q", cmd.Name())
	}
}

func (e *Editor) addCircle(x, y, r float64) (Outcome, error) {
	s, err := e.list.AddCircle(x, y, r)
	if err != nil {
		return Outcome{}, addError("circle", err)
	}
	e.record(telemetry.KindShapeAdded, s)
	return Outcome{ShowList: true, Message: "added " + s.String()}, nil
}

func (e *Editor) addRectangle(x, y, h, w float64) (Outcome, error) {
	s, err := e.list.AddRectangle(x, y, h, w)
	if err != nil {
		return Outcome{}, addError("rectangle", err)
	}
	e.record(telemetry.KindShapeAdded, s)
	return Outcome{ShowList: true, Message: "added " + s.String()}, nil
}

func addError(kind string, err error) error {
	if errors.Is(err, shapelist.ErrFull) {
		return &ActionError{Action: "Cannot add new " + kind, Err: err}
	}
	return &ActionError{Action: "Error while adding a new " + kind, Err: err}
}

func (e *Editor) remove(i int) (Outcome, error) {
	removed, _ := e.list.At(i)
	if err := e.list.RemoveAt(i); err != nil {
		return Outcome{}, &ActionError{Action: "Error while removing a shape from the list", Err: err}
	}
	e.record(telemetry.KindShapeRemoved, map[string]any{"index": i, "shape": removed})
	return Outcome{ShowList: true, Message: fmt.Sprintf("removed %s", removed)}, nil
}

func (e *Editor) move(i int, dx, dy float64) (Outcome, error) {
	if err := e.list.MoveAt(i, dx, dy); err != nil {
		return Outcome{}, &ActionError{Action: "Error while moving the shape", Err: err}
	}
	moved, _ := e.list.At(i)
	e.record(telemetry.KindShapeMoved, map[string]any{"index": i, "dx": telemetry.Float(dx), "dy": telemetry.Float(dy), "shape": moved})
	return Outcome{ShowList: true, Message: fmt.Sprintf("moved shape %d to %s", i, moved)}, nil
}

func (e *Editor) sort(cmd command.Command) Outcome {
	key := "area"
	switch {
	case cmd.NumArgs() == 0:
		e.list.SortByArea()
	case cmd.Arg(0) == command.SortAxisX:
		key = "left border"
		e.list.SortByLeftBorder()
	default:
		key = "bottom border"
		e.list.SortByBottomBorder()
	}
	e.record(telemetry.KindSorted, map[string]any{"key": key, "size": e.list.Len()})
	return Outcome{ShowList: true, Message: "sorted by " + key}
}

// toIndex converts a whole-number argument to a list index. Values that do
// not fit an int map to -1, which every list treats as out of bounds.
func toIndex(v float64) int {
	if math.IsNaN(v) || v < 0 || v > math.MaxInt32 {
		return -1
	}
	return int(v)
}

func (e *Editor) record(kind string, data any) {
	// Telemetry failures never interrupt editing.
	_ = e.emitter.Record(kind, data)
}
