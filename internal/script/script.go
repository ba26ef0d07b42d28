// Package script loads editor command scripts and runs them without a prompt.
//
// Two formats are supported. A .toml manifest:
//
//	name     = "demo"
//	capacity = 4
//	strict   = true
//	commands = ["circle 0 0 1", "sort x", "show"]
//
// and plain text with one command per line, where blank lines and lines
// starting with # are ignored.
package script

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/shapelist/internal/command"
	"github.com/papapumpkin/shapelist/internal/editor"
	"github.com/papapumpkin/shapelist/internal/ui"
)

// ErrNoCommands indicates a script without any command lines.
var ErrNoCommands = errors.New("script has no commands")

// Line is one command of a script with its 1-based position in the source.
type Line struct {
	No   int
	Text string
}

// Script is a loaded command script. Capacity and Strict are nil when the
// script does not set them.
type Script struct {
	Path     string
	Name     string
	Capacity *int
	Strict   *bool
	Lines    []Line
}

// manifest is the TOML layout of a script file.
type manifest struct {
	Name     string   `toml:"name"`
	Capacity *int     `toml:"capacity"`
	Strict   *bool    `toml:"strict"`
	Commands []string `toml:"commands"`
}

// LineError records a failing script line.
type LineError struct {
	Path string
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Load reads the script at path. Files ending in .toml are decoded as
// manifests; anything else is read as plain text.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script %s: %w", path, err)
	}

	var s *Script
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		s, err = parseManifest(data)
	} else {
		s, err = parseText(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing script %s: %w", path, err)
	}

	s.Path = path
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if len(s.Lines) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoCommands)
	}
	return s, nil
}

func parseManifest(data []byte) (*Script, error) {
	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m.Capacity != nil && *m.Capacity < 0 {
		return nil, fmt.Errorf("capacity must not be negative, got %d", *m.Capacity)
	}
	s := &Script{Name: m.Name, Capacity: m.Capacity, Strict: m.Strict}
	for i, c := range m.Commands {
		s.Lines = append(s.Lines, Line{No: i + 1, Text: c})
	}
	return s, nil
}

func parseText(data []byte) (*Script, error) {
	s := &Script{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	no := 0
	for scanner.Scan() {
		no++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		s.Lines = append(s.Lines, Line{No: no, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate parses every line without executing anything. strict applies
// unless the script sets its own strict flag.
func Validate(s *Script, strict bool) []*LineError {
	p := command.Parser{Strict: s.StrictOr(strict)}
	var errs []*LineError
	for _, l := range s.Lines {
		if _, err := p.Parse(l.Text); err != nil {
			errs = append(errs, &LineError{Path: s.Path, Line: l.No, Text: l.Text, Err: err})
		}
	}
	return errs
}

// CapacityOr returns the script's capacity, or def when unset.
func (s *Script) CapacityOr(def int) int {
	if s.Capacity == nil {
		return def
	}
	return *s.Capacity
}

// StrictOr returns the script's strict flag, or def when unset.
func (s *Script) StrictOr(def bool) bool {
	if s.Strict == nil {
		return def
	}
	return *s.Strict
}

// Result summarises a script run.
type Result struct {
	Executed int
	Failed   int
	Quit     bool
}

// Runner executes scripts against an editor.
type Runner struct {
	Editor    *editor.Editor
	Printer   *ui.Printer
	KeepGoing bool // continue past failing lines
	Echo      bool // print each command before running it
}

// Run executes the script line by line until it ends, a quit command is
// reached, or ctx is canceled. Without KeepGoing the first failing line
// aborts the run and is returned as a *LineError.
func (r *Runner) Run(ctx context.Context, s *Script) (Result, error) {
	var res Result
	for _, l := range s.Lines {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if r.Echo {
			r.Printer.Echo(l.Text)
		}

		out, err := r.Editor.Handle(l.Text)
		res.Executed++
		if err != nil {
			res.Failed++
			lerr := &LineError{Path: s.Path, Line: l.No, Text: l.Text, Err: err}
			r.Printer.LineError(s.Path, l.No, err.Error())
			if !r.KeepGoing {
				return res, lerr
			}
			continue
		}
		if out.ShowList {
			r.Printer.ShowShapes(out.Shapes)
		}
		if out.Quit {
			res.Quit = true
			break
		}
	}
	return res, nil
}
