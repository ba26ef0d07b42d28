package editor

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/papapumpkin/shapelist/internal/telemetry"
	"github.com/papapumpkin/shapelist/internal/ui"
)

// Session runs an interactive editing loop: prompt, read a line, execute it,
// print the result. Errors are printed and the loop continues.
type Session struct {
	Editor  *Editor
	Printer *ui.Printer
	Emitter *telemetry.Emitter
	Verbose bool
}

// Run reads commands from r until quit, end of input, or ctx is canceled.
func (s *Session) Run(ctx context.Context, r io.Reader) error {
	s.Printer.Banner()
	s.Printer.Welcome()
	_ = s.Emitter.Record(telemetry.KindSessionStart, map[string]int{"capacity": s.Editor.Cap()})
	defer func() {
		_ = s.Emitter.Record(telemetry.KindSessionEnd, map[string]int{"size": s.Editor.Len()})
		s.Printer.Info("Finished editing the shape list")
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines, errc := readLines(ctx, r)

	for {
		if ctx.Err() != nil {
			return nil
		}
		s.Printer.Prompt()
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return <-errc
			}
			if ctx.Err() != nil {
				return nil
			}
			if s.Step(line) {
				return nil
			}
		}
	}
}

// readLines scans r on its own goroutine so that a blocked read never delays
// cancellation. The lines channel is closed after one value is sent on errc.
func readLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

// Step handles a single input line and reports whether the session should end.
func (s *Session) Step(line string) (quit bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "help", "?":
		s.Printer.ShowHelp()
		return false
	case "status":
		s.Printer.ShowStatus(s.Editor.Len(), s.Editor.Cap())
		return false
	}

	out, err := s.Editor.Handle(line)
	if err != nil {
		s.Printer.Error(err.Error())
		return false
	}
	if s.Verbose {
		s.Printer.Echo(out.Command.String())
		if out.Message != "" && !out.Quit {
			s.Printer.Success(out.Message)
		}
	}
	if out.ShowList {
		s.Printer.ShowShapes(out.Shapes)
	}
	return out.Quit
}
