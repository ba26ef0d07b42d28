package editor

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/shapelist/internal/command"
	"github.com/papapumpkin/shapelist/internal/shape"
	"github.com/papapumpkin/shapelist/internal/shapelist"
	"github.com/papapumpkin/shapelist/internal/telemetry"
)

// handleAll feeds lines to e and fails on the first error.
func handleAll(t *testing.T, e *Editor, lines ...string) {
	t.Helper()
	for _, line := range lines {
		if _, err := e.Handle(line); err != nil {
			t.Fatalf("Handle(%q): %v", line, err)
		}
	}
}

func TestHandle_AddAndShow(t *testing.T) {
	t.Parallel()

	e := New(shapelist.New(5))
	out, err := e.Handle("circle 1 2 3")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !out.ShowList {
		t.Error("expected add to request the list be shown")
	}
	want := []shape.Snapshot{{Kind: shape.KindCircle, X: 1, Y: 2, Radius: 3}}
	if diff := cmp.Diff(want, out.Shapes); diff != "" {
		t.Errorf("Shapes mismatch (-want +got):\n%s", diff)
	}
	if out.Command.Name() != command.Circle {
		t.Errorf("Command = %v, want circle", out.Command)
	}

	out, err = e.Handle("show")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, out.Shapes); diff != "" {
		t.Errorf("show Shapes mismatch (-want +got):\n%s", diff)
	}
}

func TestHandle_Quit(t *testing.T) {
	t.Parallel()

	out, err := New(nil).Handle("QUIT")
	if err != nil {
		t.Fatal(err)
	}
	if !out.Quit {
		t.Error("expected Quit outcome")
	}
	if out.ShowList {
		t.Error("quit should not show the list")
	}
}

func TestHandle_CapacityScenario(t *testing.T) {
	t.Parallel()

	e := New(shapelist.New(2))
	handleAll(t, e, "circle 0 0 1", "circle 1 1 2")

	_, err := e.Handle("circle 2 2 3")
	if !errors.Is(err, shapelist.ErrFull) {
		t.Fatalf("third add: err = %v, want ErrFull", err)
	}
	if got, want := err.Error(), "Cannot add new circle: shape list is full"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	out, err := e.Handle("remove 0")
	if err != nil {
		t.Fatalf("remove 0: %v", err)
	}
	if len(out.Shapes) != 1 || e.Len() != 1 {
		t.Fatalf("after remove: %d shapes, want 1", len(out.Shapes))
	}
	if out.Shapes[0].Radius != 2 {
		t.Errorf("wrong shape removed, remaining %v", out.Shapes[0])
	}
}

func TestHandle_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   []string
		line    string
		wantMsg string
		wantIs  error
	}{
		{"parse error", nil, "triangle 1 2 3", "not recognized", nil},
		{"negative radius", nil, "circle 0 0 -1", "Error while adding a new circle: input was invalid (radius)", shapelist.ErrInvalidShape},
		{"negative width", nil, "rectangle 0 0 1 -1", "Error while adding a new rectangle: input was invalid (width)", shapelist.ErrInvalidShape},
		{"remove from empty", nil, "remove 0", "Error while removing a shape from the list: list is already empty", shapelist.ErrEmpty},
		{"remove out of range", []string{"circle 0 0 1"}, "remove 3", "index out of bounds", shapelist.ErrOutOfBounds},
		{"remove negative", []string{"circle 0 0 1"}, "remove -1", "index out of bounds", shapelist.ErrOutOfBounds},
		{"remove huge", []string{"circle 0 0 1"}, "remove 1e300", "index out of bounds", shapelist.ErrOutOfBounds},
		{"move empty", nil, "move 0 1 1", "Error while moving the shape: list is already empty", shapelist.ErrEmpty},
		{"move out of range", []string{"circle 0 0 1"}, "move 1 1 1", "Error while moving the shape: index out of bounds", shapelist.ErrOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := New(shapelist.New(3))
			handleAll(t, e, tt.setup...)
			before := e.Shapes()

			_, err := e.Handle(tt.line)
			if err == nil {
				t.Fatalf("Handle(%q) succeeded, want error", tt.line)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantMsg)
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.wantIs)
			}
			if diff := cmp.Diff(before, e.Shapes()); diff != "" {
				t.Errorf("failed command mutated list (-before +after):\n%s", diff)
			}
		})
	}
}

func TestHandle_Move(t *testing.T) {
	t.Parallel()

	e := New(nil)
	handleAll(t, e, "rectangle 1 1 2 3", "circle 0 0 1")
	out, err := e.Handle("move 0 2 -1")
	if err != nil {
		t.Fatal(err)
	}
	want := []shape.Snapshot{
		{Kind: shape.KindRectangle, X: 3, Y: 0, Height: 2, Width: 3},
		{Kind: shape.KindCircle, X: 0, Y: 0, Radius: 1},
	}
	if diff := cmp.Diff(want, out.Shapes); diff != "" {
		t.Errorf("after move (-want +got):\n%s", diff)
	}
}

func TestHandle_Sort(t *testing.T) {
	t.Parallel()

	setup := []string{
		"rectangle 5 -3 2 2", // area 4, left 5, bottom -3
		"circle 0 0 1",       // area pi, left -1, bottom -1
		"rectangle -4 2 1 1", // area 1, left -4, bottom 2
	}

	tests := []struct {
		line    string
		wantX   []float64
		wantMsg string
	}{
		{"sort", []float64{-4, 0, 5}, "sorted by area"},
		{"sort x", []float64{-4, 0, 5}, "sorted by left border"},
		{"sort y", []float64{5, 0, -4}, "sorted by bottom border"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()
			e := New(nil)
			handleAll(t, e, setup...)
			out, err := e.Handle(tt.line)
			if err != nil {
				t.Fatal(err)
			}
			var xs []float64
			for _, s := range out.Shapes {
				xs = append(xs, s.X)
			}
			if diff := cmp.Diff(tt.wantX, xs); diff != "" {
				t.Errorf("order after %q (-want +got):\n%s", tt.line, diff)
			}
			if out.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", out.Message, tt.wantMsg)
			}
		})
	}
}

func TestHandle_StrictOption(t *testing.T) {
	t.Parallel()

	lenient := New(nil)
	if _, err := lenient.Handle("circle 1 x 2 3"); err != nil {
		t.Errorf("lenient editor rejected droppable token: %v", err)
	}

	strict := New(nil, WithStrict(true))
	if _, err := strict.Handle("circle 1 x 2 3"); err == nil {
		t.Error("strict editor accepted non-numeric token")
	}
}

func TestHandle_Telemetry(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	e := New(shapelist.New(1), WithEmitter(telemetry.NewWriterEmitter(&buf)))
	e.Handle("circle 0 0 1")
	e.Handle("circle 0 0 1")
	e.Handle("bogus")
	e.Handle("sort")

	var kinds []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var evt telemetry.Event
		if err := json.Unmarshal([]byte(line), &evt); err != nil {
			t.Fatalf("bad event %q: %v", line, err)
		}
		kinds = append(kinds, evt.Kind)
	}
	want := []string{
		telemetry.KindCommand, telemetry.KindShapeAdded,
		telemetry.KindCommand, telemetry.KindError,
		telemetry.KindError,
		telemetry.KindCommand, telemetry.KindSorted,
	}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("event kinds (-want +got):\n%s", diff)
	}
}

func TestToIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{3, 3},
		{-1, -1},
		{1e12, -1},
	}
	for _, tt := range tests {
		if got := toIndex(tt.in); got != tt.want {
			t.Errorf("toIndex(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestHandle_TelemetryNonFinite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		kinds []string
	}{
		{
			name:  "infinite circle",
			lines: []string{"circle inf 0 1"},
			kinds: []string{telemetry.KindCommand, telemetry.KindShapeAdded},
		},
		{
			name:  "nan rectangle",
			lines: []string{"rectangle nan 0 1 1"},
			kinds: []string{telemetry.KindCommand, telemetry.KindError},
		},
		{
			name:  "infinite move",
			lines: []string{"circle 0 0 1", "move 0 -Inf 2"},
			kinds: []string{
				telemetry.KindCommand, telemetry.KindShapeAdded,
				telemetry.KindCommand, telemetry.KindShapeMoved,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			e := New(nil, WithEmitter(telemetry.NewWriterEmitter(&buf)))
			for _, line := range tt.lines {
				e.Handle(line)
			}

			var kinds []string
			for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
				var evt telemetry.Event
				if err := json.Unmarshal([]byte(line), &evt); err != nil {
					t.Fatalf("bad event %q: %v", line, err)
				}
				kinds = append(kinds, evt.Kind)
			}
			if diff := cmp.Diff(tt.kinds, kinds); diff != "" {
				t.Errorf("event kinds (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHandle_TelemetryInfiniteShapeData(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	e := New(nil, WithEmitter(telemetry.NewWriterEmitter(&buf)))
	if _, err := e.Handle("circle inf 0 1"); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"args":["+Inf",0,1]`, `"x":"+Inf"`} {
		if !strings.Contains(out, want) {
			t.Errorf("telemetry missing %s:\n%s", want, out)
		}
	}
}
