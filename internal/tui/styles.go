package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	cursorRowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	staleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	agentStyles = map[string]lipgloss.Style{
		"Backend":  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		"Frontend": lipgloss.NewStyle().Foreground(lipgloss.Color("170")),
	}

	statusStyles = map[string]lipgloss.Style{
		"To Do":       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		"pending":     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		"in-progress": lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		"done":        lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
)

func agentStyle(agent string) lipgloss.Style {
	if s, ok := agentStyles[agent]; ok {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
}

func statusTagStyle(status string) lipgloss.Style {
	if s, ok := statusStyles[status]; ok {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
}
