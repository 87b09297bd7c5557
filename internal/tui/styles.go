package tui

import "github.com/charmbracelet/lipgloss"

var (
	// titleStyle is used for view headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	// lcdStyle frames the calculator display
	lcdStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	inputLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	resultLineStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	errorLineStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	// indicatorStyle marks active modes (2ND, DEG/RAD, active base)
	indicatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	dimIndicatorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("238"))

	keyStyle = lipgloss.NewStyle().
			Width(7).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			MarginRight(1)

	shiftedKeyStyle = keyStyle.
			Foreground(lipgloss.Color("214"))

	disabledKeyStyle = keyStyle.
				Foreground(lipgloss.Color("239")).
				Background(lipgloss.Color("234"))

	bitOnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	bitOffStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	bitIndexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	// statusStyle is the style for transient status messages
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)
