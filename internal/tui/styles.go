package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary    = lipgloss.Color("#00BFFF") // Cyan: primary accent
	colorAccent     = lipgloss.Color("#FFD700") // Gold: capacity warning
	colorSuccess    = lipgloss.Color("#00E676") // Green: command succeeded
	colorDanger     = lipgloss.Color("#FF5252") // Red: errors
	colorMuted      = lipgloss.Color("#636363") // Gray: de-emphasized
	colorMutedLight = lipgloss.Color("#8C8C8C") // Lighter gray: normal text
	colorWhite      = lipgloss.Color("#EEEEEE") // Off-white: primary text
	colorSurface    = lipgloss.Color("#1E1E2E") // Dark surface: status bar bg
	colorSurfaceDim = lipgloss.Color("#181825") // Darkest surface: footer bg
	colorBlue       = lipgloss.Color("#5B8DEF") // Blue: circles
	colorMagenta    = lipgloss.Color("#C678DD") // Magenta: rectangles
)

// CompactWidth is the terminal width below which the footer drops descriptions.
const CompactWidth = 60

// Status bar styles.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleStatusLabel = lipgloss.NewStyle().
				Background(colorSurface).
				Foreground(colorPrimary).
				Bold(true)

	styleStatusValue = lipgloss.NewStyle().
				Background(colorSurface).
				Foreground(colorWhite)

	styleStatusFull = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorAccent).
			Bold(true)
)

// Shape table styles.
var (
	styleTableHeader = lipgloss.NewStyle().
				Foreground(colorMutedLight).
				Bold(true)

	styleIndex = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleCircle = lipgloss.NewStyle().
			Foreground(colorBlue)

	styleRectangle = lipgloss.NewStyle().
			Foreground(colorMagenta)

	styleEmpty = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)
)

// Message line styles.
var (
	styleMessageOK = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleMessageErr = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)
)

// Footer styles.
var (
	styleFooter = lipgloss.NewStyle().
			Background(colorSurfaceDim).
			Foreground(colorMutedLight).
			Padding(0, 1)

	styleFooterKey = lipgloss.NewStyle().
			Background(colorSurfaceDim).
			Foreground(colorPrimary).
			Bold(true)

	styleFooterSep = lipgloss.NewStyle().
			Background(colorSurfaceDim).
			Foreground(colorMuted)

	styleFooterDesc = lipgloss.NewStyle().
			Background(colorSurfaceDim).
			Foreground(colorMutedLight)
)
