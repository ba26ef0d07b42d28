package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/papapumpkin/shapelist/internal/shape"
)

// ANSI color codes.
const (
	reset   = "\033[0m"
	bold    = "\033[1m"
	dim     = "\033[2m"
	blue    = "\033[34m"
	yellow  = "\033[33m"
	green   = "\033[32m"
	red     = "\033[31m"
	cyan    = "\033[36m"
	magenta = "\033[35m"
)

// Printer writes editor output to a terminal.
type Printer struct {
	w       io.Writer
	noColor bool
	prompt  string
}

// New returns a Printer writing to w. A nil w writes to stderr.
func New(w io.Writer) *Printer {
	if w == nil {
		w = os.Stderr
	}
	return &Printer{w: w, prompt: "Command: "}
}

// SetColor enables or disables ANSI styling.
func (p *Printer) SetColor(on bool) { p.noColor = !on }

// SetPrompt changes the string printed before each input line.
func (p *Printer) SetPrompt(prompt string) { p.prompt = prompt }

// style wraps s in the given codes unless color is disabled.
func (p *Printer) style(s string, codes ...string) string {
	if p.noColor || len(codes) == 0 {
		return s
	}
	return strings.Join(codes, "") + s + reset
}

func (p *Printer) Banner() {
	fmt.Fprintln(p.w, p.style("  ╔═══════════════════════════════════╗", bold, cyan))
	fmt.Fprintln(p.w, p.style("  ║", bold, cyan)+p.style("   SHAPELIST  ", bold)+p.style("2-D shape editor", dim)+p.style("     ║", bold, cyan))
	fmt.Fprintln(p.w, p.style("  ╚═══════════════════════════════════╝", bold, cyan))
	fmt.Fprintln(p.w)
}

// helpLines describes every command the editor accepts.
var helpLines = [][2]string{
	{"quit", "stops the program"},
	{"show", "lists the geometric objects"},
	{"circle x y r", "adds a circle at (x, y) with radius r if the list is not full"},
	{"rectangle x y h w", "adds a rectangle at (x, y) with height h and width w"},
	{"move i dx dy", "moves the i-th object over the specified distance in x and y direction"},
	{"remove i", "removes the i-th object"},
	{"sort", "sorts the list by area"},
	{"sort x|y", "sorts the list by left or bottom border"},
}

// Welcome prints the greeting and command overview.
func (p *Printer) Welcome() {
	fmt.Fprintln(p.w, "Welcome to the shape list editor.")
	fmt.Fprintln(p.w, "Enter a command to manipulate the list:")
	p.ShowHelp()
	fmt.Fprintln(p.w)
}

func (p *Printer) ShowHelp() {
	for _, l := range helpLines {
		fmt.Fprintf(p.w, "  |-- '%s' => %s\n", p.style(l[0], bold), l[1])
	}
}

func (p *Printer) Prompt() {
	fmt.Fprint(p.w, p.style(p.prompt, bold, cyan))
}

// ShowShapes prints the list contents, one shape per row.
func (p *Printer) ShowShapes(shapes []shape.Snapshot) {
	if len(shapes) == 0 {
		fmt.Fprintln(p.w, p.style("Shape list is empty", dim))
		return
	}
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.style("Shape list contains:", bold))
	for i, s := range shapes {
		color := blue
		if s.Kind == shape.KindRectangle {
			color = magenta
		}
		fmt.Fprintf(p.w, " |-- %s %s\n", p.style(fmt.Sprintf("[%d]", i), dim), p.style(s.String(), color))
	}
	fmt.Fprintln(p.w)
}

// ShowStatus prints the fill level of the list.
func (p *Printer) ShowStatus(size, capacity int) {
	fmt.Fprintln(p.w, p.style("list:", dim))
	fmt.Fprintf(p.w, "  shapes:    %d\n", size)
	fmt.Fprintf(p.w, "  capacity:  %d\n", capacity)
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.w, "%s%s\n", p.style("error: ", red, bold), msg)
}

func (p *Printer) Warn(msg string) {
	fmt.Fprintf(p.w, "%s%s\n", p.style("⚠ ", yellow, bold), msg)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.w, p.style(msg, dim))
}

func (p *Printer) Success(msg string) {
	fmt.Fprintf(p.w, "%s%s\n", p.style("✓ ", green, bold), msg)
}

// Echo prints a parsed command in verbose mode.
func (p *Printer) Echo(cmd string) {
	fmt.Fprintln(p.w, p.style("» "+cmd, dim))
}

// LineError prints a script error prefixed with its source position.
func (p *Printer) LineError(path string, line int, msg string) {
	fmt.Fprintf(p.w, "  %s %s:%d: %s\n", p.style("•", red), path, line, msg)
}

// ScriptResult summarises a script validation or run.
func (p *Printer) ScriptResult(name string, lines, failures int) {
	if failures == 0 {
		fmt.Fprintf(p.w, "%s: %d command(s), no errors\n", p.style(fmt.Sprintf("✓ script %q", name), green, bold), lines)
		return
	}
	fmt.Fprintf(p.w, "%s: %d error(s) in %d command(s)\n", p.style(fmt.Sprintf("✗ script %q", name), red, bold), failures, lines)
}
