package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/shapelist/internal/editor"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates a BubbleTea program editing through ed.
// The program uses the alternate screen buffer for a clean TUI experience.
func NewProgram(ed *editor.Editor, opts ...tea.ProgramOption) *Program {
	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
	}
	allOpts = append(allOpts, opts...)
	return tea.NewProgram(NewModel(ed), allOpts...)
}

// Run creates and runs a TUI program, blocking until the user quits.
func Run(ed *editor.Editor, opts ...tea.ProgramOption) error {
	if _, err := NewProgram(ed, opts...).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// WithOutput returns a program option that directs TUI output to the given writer.
func WithOutput(w io.Writer) tea.ProgramOption {
	return tea.WithOutput(w)
}

// WithInput returns a program option that reads TUI input from r.
func WithInput(r io.Reader) tea.ProgramOption {
	return tea.WithInput(r)
}
