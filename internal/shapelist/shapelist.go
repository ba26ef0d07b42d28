// Package shapelist holds an ordered, capacity-bounded collection of shapes.
// The list is the only owner of its shapes: callers receive snapshots, never
// the stored values, and every mutation is validated before it is applied.
package shapelist

import (
	"math"
	"slices"

	"github.com/papapumpkin/shapelist/internal/shape"
)

// DefaultCapacity is the capacity used by the editor unless configured otherwise.
const DefaultCapacity = 10

// List is not safe for concurrent use.
type List struct {
	shapes   []shape.Shape
	capacity int
}

// New creates an empty list holding at most capacity shapes.
// A negative capacity is treated as zero.
func New(capacity int) *List {
	capacity = max(0, capacity)
	return &List{
		shapes:   make([]shape.Shape, 0, capacity),
		capacity: capacity,
	}
}

// Len returns the number of shapes in the list.
func (l *List) Len() int { return len(l.shapes) }

// Cap returns the maximum number of shapes the list can hold.
func (l *List) Cap() int { return l.capacity }

// IsFull reports whether no more shapes can be added.
func (l *List) IsFull() bool { return len(l.shapes) >= l.capacity }

// IsEmpty reports whether the list holds no shapes.
func (l *List) IsEmpty() bool { return len(l.shapes) == 0 }

// AddCircle appends a circle centered at (x, y).
func (l *List) AddCircle(x, y, radius float64) (shape.Snapshot, error) {
	const op = "add circle"
	if l.IsFull() {
		return shape.Snapshot{}, &Error{Kind: KindCapacity, Op: op, Err: ErrFull}
	}
	if err := checkNumbers(op, field{"x", x}, field{"y", y}, field{"radius", radius}); err != nil {
		return shape.Snapshot{}, err
	}
	if err := checkSizes(op, field{"radius", radius}); err != nil {
		return shape.Snapshot{}, err
	}
	c := shape.NewCircle(x, y, radius)
	l.shapes = append(l.shapes, c)
	return c.Snapshot(), nil
}

// AddRectangle appends a rectangle whose bottom-left corner is (x, y).
func (l *List) AddRectangle(x, y, height, width float64) (shape.Snapshot, error) {
	const op = "add rectangle"
	if l.IsFull() {
		return shape.Snapshot{}, &Error{Kind: KindCapacity, Op: op, Err: ErrFull}
	}
	if err := checkNumbers(op, field{"x", x}, field{"y", y}, field{"height", height}, field{"width", width}); err != nil {
		return shape.Snapshot{}, err
	}
	if err := checkSizes(op, field{"height", height}, field{"width", width}); err != nil {
		return shape.Snapshot{}, err
	}
	r := shape.NewRectangle(x, y, height, width)
	l.shapes = append(l.shapes, r)
	return r.Snapshot(), nil
}

// RemoveAt deletes the shape at index i, keeping the order of the rest.
func (l *List) RemoveAt(i int) error {
	if err := l.checkIndex("remove", i); err != nil {
		return err
	}
	l.shapes = slices.Delete(l.shapes, i, i+1)
	return nil
}

// MoveAt translates the shape at index i by (dx, dy).
func (l *List) MoveAt(i int, dx, dy float64) error {
	const op = "move"
	if err := l.checkIndex(op, i); err != nil {
		return err
	}
	if err := checkNumbers(op, field{"dx", dx}, field{"dy", dy}); err != nil {
		return err
	}
	l.shapes[i].Move(dx, dy)
	return nil
}

// At returns a snapshot of the shape at index i.
func (l *List) At(i int) (shape.Snapshot, error) {
	if err := l.checkIndex("get", i); err != nil {
		return shape.Snapshot{}, err
	}
	return l.shapes[i].Snapshot(), nil
}

// SortByArea orders shapes by ascending area. Equal areas keep their order.
func (l *List) SortByArea() {
	slices.SortStableFunc(l.shapes, shape.Compare)
}

// SortByLeftBorder orders shapes by ascending left border.
func (l *List) SortByLeftBorder() {
	slices.SortStableFunc(l.shapes, shape.CompareLeft)
}

// SortByBottomBorder orders shapes by ascending bottom border.
func (l *List) SortByBottomBorder() {
	slices.SortStableFunc(l.shapes, shape.CompareBottom)
}

// ForEach calls fn with the index and a snapshot of every shape, in order.
func (l *List) ForEach(fn func(i int, s shape.Snapshot)) {
	for i, s := range l.shapes {
		fn(i, s.Snapshot())
	}
}

// Snapshots returns copies of all shapes in order.
func (l *List) Snapshots() []shape.Snapshot {
	out := make([]shape.Snapshot, 0, len(l.shapes))
	l.ForEach(func(_ int, s shape.Snapshot) {
		out = append(out, s)
	})
	return out
}

func (l *List) checkIndex(op string, i int) error {
	if len(l.shapes) == 0 {
		return &Error{Kind: KindBounds, Op: op, Err: ErrEmpty}
	}
	if i < 0 || i >= len(l.shapes) {
		return &Error{Kind: KindBounds, Op: op, Err: ErrOutOfBounds}
	}
	return nil
}

type field struct {
	name  string
	value float64
}

func checkNumbers(op string, fields ...field) error {
	for _, f := range fields {
		if math.IsNaN(f.value) {
			return &Error{Kind: KindValidation, Op: op, Field: f.name, Err: ErrInvalidShape}
		}
	}
	return nil
}

func checkSizes(op string, fields ...field) error {
	for _, f := range fields {
		if f.value < 0 {
			return &Error{Kind: KindValidation, Op: op, Field: f.name, Err: ErrInvalidShape}
		}
	}
	return nil
}
