package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/shapelist/internal/command"
	"github.com/papapumpkin/shapelist/internal/editor"
	"github.com/papapumpkin/shapelist/internal/shape"
)

// Model is the BubbleTea model for the full-screen editor. Every submitted
// line goes through the same editor used by the line-based REPL.
type Model struct {
	Editor *editor.Editor
	Input  textinput.Model
	Keys   KeyMap
	Width  int
	Height int

	shapes  []shape.Snapshot
	message string
	isErr   bool

	history []string
	histPos int // len(history) when not browsing
	done    bool
}

// NewModel creates a model over ed.
func NewModel(ed *editor.Editor) Model {
	ti := textinput.New()
	ti.Prompt = "▸ "
	ti.Placeholder = "circle x y r · rectangle x y h w · move i dx dy · remove i · sort [x|y]"
	ti.CharLimit = 256
	ti.Focus()

	return Model{
		Editor:  ed,
		Input:   ti,
		Keys:    DefaultKeyMap(),
		shapes:  ed.Shapes(),
		message: "type a command and press enter",
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Input.Width = max(10, msg.Width-4)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Quit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.Keys.Submit):
			return m.submit()
		case key.Matches(msg, m.Keys.Prev):
			m.browseHistory(-1)
			return m, nil
		case key.Matches(msg, m.Keys.Next):
			m.browseHistory(1)
			return m, nil
		case key.Matches(msg, m.Keys.Clear):
			m.message, m.isErr = "", false
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// submit runs the current input line through the editor.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.Input.Value()
	m.Input.SetValue("")
	if strings.TrimSpace(line) != "" {
		m.history = append(m.history, line)
	}
	m.histPos = len(m.history)

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "help", "?":
		names := make([]string, 0, len(command.Names()))
		for _, n := range command.Names() {
			names = append(names, string(n))
		}
		m.message, m.isErr = "commands: "+strings.Join(names, ", "), false
		return m, nil
	case "status":
		m.message, m.isErr = fmt.Sprintf("%d of %d slots used", m.Editor.Len(), m.Editor.Cap()), false
		return m, nil
	}

	out, err := m.Editor.Handle(line)
	if err != nil {
		m.message, m.isErr = err.Error(), true
		return m, nil
	}
	if out.Quit {
		m.done = true
		return m, tea.Quit
	}

	m.shapes = m.Editor.Shapes()
	m.isErr = false
	m.message = out.Message
	if m.message == "" {
		m.message = fmt.Sprintf("%d shape(s)", len(m.shapes))
	}
	return m, nil
}

// browseHistory moves through previously submitted lines. dir is -1 for
// older entries and +1 for newer ones; moving past the newest clears the input.
func (m *Model) browseHistory(dir int) {
	if len(m.history) == 0 {
		return
	}
	m.histPos = min(max(m.histPos+dir, 0), len(m.history))
	if m.histPos == len(m.history) {
		m.Input.SetValue("")
		return
	}
	m.Input.SetValue(m.history[m.histPos])
	m.Input.CursorEnd()
}

// Done reports whether the user quit.
func (m Model) Done() bool { return m.done }

// View implements tea.Model.
func (m Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(StatusBar{Size: m.Editor.Len(), Capacity: m.Editor.Cap(), Width: m.Width}.View())
	b.WriteString("\n\n")
	b.WriteString(renderShapes(m.shapes))
	b.WriteString("\n")

	if m.message != "" {
		style := styleMessageOK
		if m.isErr {
			style = styleMessageErr
		}
		b.WriteString(style.Render(m.message))
	}
	b.WriteString("\n\n")
	b.WriteString(m.Input.View())
	b.WriteString("\n\n")
	b.WriteString(Footer{Width: m.Width, Bindings: FooterBindings(m.Keys)}.View())
	return b.String()
}

// renderShapes lays out the shapes as an indexed table.
func renderShapes(shapes []shape.Snapshot) string {
	if len(shapes) == 0 {
		return styleEmpty.Render("  Shape list is empty") + "\n"
	}

	var b strings.Builder
	b.WriteString(styleTableHeader.Render(fmt.Sprintf("  %-4s %-10s %-48s %s", "#", "kind", "shape", "area")))
	b.WriteString("\n")
	for i, s := range shapes {
		style := styleCircle
		if s.Kind == shape.KindRectangle {
			style = styleRectangle
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			styleIndex.Render(fmt.Sprintf("  %-4d ", i)),
			style.Render(fmt.Sprintf("%-10s %-48s", s.Kind, s.String())),
			fmt.Sprintf(" %.4g", s.Area()),
		)
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}
