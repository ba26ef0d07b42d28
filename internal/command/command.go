// Package command turns a raw line of editor input into a validated Command.
package command

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Name is a recognized command keyword.
type Name string

const (
	Show      Name = "show"
	Quit      Name = "quit"
	Sort      Name = "sort"
	Circle    Name = "circle"
	Rectangle Name = "rectangle"
	Move      Name = "move"
	Remove    Name = "remove"
)

// Sort axis arguments.
const (
	SortAxisX = 1.0
	SortAxisY = -1.0
)

// zeroArg lists the commands accepted as a single token.
var zeroArg = map[Name]bool{Show: true, Quit: true, Sort: true}

// arity is the number of numeric arguments required by each multi-argument command.
var arity = map[Name]int{
	Circle:    3,
	Rectangle: 4,
	Move:      3,
	Remove:    1,
}

// Names returns every command keyword in help order.
func Names() []Name {
	return []Name{Quit, Show, Circle, Rectangle, Move, Remove, Sort}
}

// Arity reports how many numeric arguments a multi-argument command takes.
// The second result is false for zero-argument commands and unknown names.
func Arity(n Name) (int, bool) {
	a, ok := arity[n]
	return a, ok
}

// Command is a parsed instruction. Commands are only built by a Parser and
// never change afterwards.
type Command struct {
	name Name
	args []float64
}

// Name returns the command keyword, always lower case.
func (c Command) Name() Name { return c.name }

// Args returns a copy of the numeric arguments.
func (c Command) Args() []float64 {
	if len(c.args) == 0 {
		return nil
	}
	out := make([]float64, len(c.args))
	copy(out, c.args)
	return out
}

// Arg returns the i-th argument, or 0 when out of range.
func (c Command) Arg(i int) float64 {
	if i < 0 || i >= len(c.args) {
		return 0
	}
	return c.args[i]
}

// NumArgs returns the number of numeric arguments.
func (c Command) NumArgs() int { return len(c.args) }

func (c Command) String() string {
	if len(c.args) == 0 {
		return string(c.name)
	}
	parts := make([]string, 0, len(c.args)+1)
	parts = append(parts, string(c.name))
	for _, a := range c.args {
		parts = append(parts, strconv.FormatFloat(a, 'g', -1, 64))
	}
	return strings.Join(parts, " ")
}

// ParseError describes why a line could not be turned into a Command.
type ParseError struct {
	Line string
	Msg  string
}

func (e *ParseError) Error() string { return e.Msg }

func parseErr(line, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// Parser converts input lines into commands.
//
// In the default lenient mode, argument tokens that are not numbers are
// dropped before the argument count is checked, so "circle 1 2 abc" fails
// for having two arguments. With Strict set, the first non-numeric token is
// reported instead.
type Parser struct {
	Strict bool
}

// TryParse parses line with a lenient Parser.
func TryParse(line string) (Command, error) {
	return Parser{}.Parse(line)
}

// Parse returns the command for line, or a *ParseError.
func (p Parser) Parse(line string) (Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Command{}, parseErr(line, "Input was empty")
	}

	name := Name(strings.ToLower(tokens[0]))

	if len(tokens) == 1 {
		if !zeroArg[name] {
			return Command{}, parseErr(line, "command %q not recognized as zero-argument command", tokens[0])
		}
		return Command{name: name}, nil
	}

	if len(tokens) == 2 && name == Sort {
		switch strings.ToLower(tokens[1]) {
		case "x":
			return Command{name: Sort, args: []float64{SortAxisX}}, nil
		case "y":
			return Command{name: Sort, args: []float64{SortAxisY}}, nil
		default:
			return Command{}, parseErr(line, "sort argument %q not recognized, expected x or y", tokens[1])
		}
	}

	want, ok := arity[name]
	if !ok {
		return Command{}, parseErr(line, "command %q not recognized", tokens[0])
	}

	args := make([]float64, 0, len(tokens)-1)
	for _, tok := range tokens[1:] {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			if p.Strict {
				return Command{}, parseErr(line, "argument %q of %s is not a number", tok, name)
			}
			continue
		}
		args = append(args, v)
	}

	if len(args) != want {
		return Command{}, parseErr(line, "%s expects %d numeric argument(s), got %d", name, want, len(args))
	}

	switch name {
	case Remove:
		if !isWhole(args[0]) {
			return Command{}, parseErr(line, "argument of remove must be a whole number")
		}
	case Move:
		if !isWhole(args[0]) {
			return Command{}, parseErr(line, "index argument of move must be a whole number")
		}
	}

	return Command{name: name, args: args}, nil
}

// isWhole reports whether v equals its own floor. NaN and infinities are not whole.
func isWhole(v float64) bool {
	if math.IsInf(v, 0) {
		return false
	}
	return v == math.Floor(v)
}
