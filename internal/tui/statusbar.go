package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar renders the top bar with the list fill level.
type StatusBar struct {
	Size     int
	Capacity int
	Width    int
}

// View renders the status bar as a single line.
func (s StatusBar) View() string {
	left := styleStatusLabel.Render("SHAPELIST")

	count := fmt.Sprintf("%d/%d shapes", s.Size, s.Capacity)
	var right string
	if s.Size >= s.Capacity {
		right = styleStatusFull.Render(count + " (full)")
	} else {
		right = styleStatusValue.Render(count)
	}

	const barPadding = 2
	gap := s.Width - barPadding - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Background(colorSurface).Render(fmt.Sprintf("%*s", gap, ""))
	return styleStatusBar.Render(left + spacer + right)
}
