package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/papapumpkin/shapelist/internal/shape"
)

func newTestPrinter() (*Printer, *bytes.Buffer) {
	var buf bytes.Buffer
	p := New(&buf)
	p.SetColor(false)
	return p, &buf
}

func TestShowShapes_Empty(t *testing.T) {
	t.Parallel()

	p, buf := newTestPrinter()
	p.ShowShapes(nil)
	if got := strings.TrimSpace(buf.String()); got != "Shape list is empty" {
		t.Errorf("got %q, want %q", got, "Shape list is empty")
	}
}

func TestShowShapes_Rows(t *testing.T) {
	t.Parallel()

	p, buf := newTestPrinter()
	p.ShowShapes([]shape.Snapshot{
		{Kind: shape.KindCircle, X: 1, Y: 2, Radius: 3},
		{Kind: shape.KindRectangle, X: 0, Y: 0, Height: 1, Width: 2},
	})
	output := buf.String()

	checks := []struct {
		name   string
		substr string
	}{
		{"header", "Shape list contains:"},
		{"circle row", " |-- [0] Circle(X=1, Y=2, Radius=3)"},
		{"rectangle row", " |-- [1] Rectangle(X=0, Y=0, Height=1, Width=2)"},
	}
	for _, c := range checks {
		if !strings.Contains(output, c.substr) {
			t.Errorf("expected output to contain %s (%q), got:\n%s", c.name, c.substr, output)
		}
	}
}

func TestNoColor(t *testing.T) {
	t.Parallel()

	p, buf := newTestPrinter()
	p.Error("boom")
	p.Info("note")
	p.Success("done")
	p.Prompt()
	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("expected no ANSI escapes with color disabled, got %q", buf.String())
	}
}

func TestColor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf)
	p.Error("boom")
	if !strings.Contains(buf.String(), red) {
		t.Errorf("expected red escape in colored error, got %q", buf.String())
	}
}

func TestPrompt(t *testing.T) {
	t.Parallel()

	p, buf := newTestPrinter()
	p.SetPrompt("> ")
	p.Prompt()
	if buf.String() != "> " {
		t.Errorf("Prompt() wrote %q, want %q", buf.String(), "> ")
	}
}

func TestWelcome_ListsCommands(t *testing.T) {
	t.Parallel()

	p, buf := newTestPrinter()
	p.Welcome()
	for _, cmd := range []string{"quit", "show", "circle x y r", "rectangle x y h w", "move i dx dy", "remove i", "sort x|y"} {
		if !strings.Contains(buf.String(), "'"+cmd+"'") {
			t.Errorf("welcome text missing %q", cmd)
		}
	}
}

func TestScriptResult(t *testing.T) {
	t.Parallel()

	p, buf := newTestPrinter()
	p.ScriptResult("demo", 4, 0)
	p.ScriptResult("broken", 4, 2)
	output := buf.String()
	if !strings.Contains(output, `✓ script "demo": 4 command(s), no errors`) {
		t.Errorf("missing success line in:\n%s", output)
	}
	if !strings.Contains(output, `✗ script "broken": 2 error(s) in 4 command(s)`) {
		t.Errorf("missing failure line in:\n%s", output)
	}
}
