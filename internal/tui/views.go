package tui

import (
	"fmt"
	"strings"
)

// View renders the active screen.
func (m Model) View() string {
	switch m.screen {
	case screenDashboard:
		return m.viewDashboard()
	case screenBrief:
		return m.viewBrief()
	default:
		return m.viewLogin()
	}
}

func (m Model) viewLogin() string {
	var b strings.Builder

	title := "Agent Login"
	action := "sign in"
	if m.registering {
		title = "Agent Registration"
		action = "register"
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")
	b.WriteString("Agent ID\n" + m.username.View() + "\n\n")
	b.WriteString("Authorization Key\n" + m.password.View() + "\n\n")

	if m.authErr != "" {
		b.WriteString(errStyle.Render(m.authErr) + "\n\n")
	}
	if m.busy {
		b.WriteString(m.spinner.View() + " Processing...\n\n")
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf(
		"enter %s • tab switch field • ctrl+r toggle register • esc quit", action)))

	return cardStyle.Render(b.String())
}

func (m Model) viewDashboard() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Agent Task Dashboard"))
	b.WriteString(headerStyle.Render(fmt.Sprintf("  logged in as %s", m.user)) + "\n\n")

	if m.staleView {
		b.WriteString(staleStyle.Render("⚠ showing last known tasks; the server could not be reached") + "\n\n")
	}

	switch {
	case m.loading && len(m.tasks) == 0:
		b.WriteString(m.spinner.View() + " Loading tasks...\n")
	case len(m.tasks) == 0:
		b.WriteString("No tasks found. Submit a new brief!\n")
	default:
		for i, t := range m.tasks {
			marker := "  "
			if i == m.cursor {
				marker = "> "
			}
			line := fmt.Sprintf("%s%-4d %s  [%s] [%s]",
				marker, t.ID, t.Title,
				agentStyle(t.Agent).Render(t.Agent),
				statusTagStyle(t.Status).Render(t.Status),
			)
			if m.inflight[t.ID] {
				line += " " + m.spinner.View()
			}
			if i == m.cursor {
				line = cursorRowStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	b.WriteString("\n" + helpStyle.Render(
		"n new brief • r review • d delete • f refresh • l logout • q quit"))

	return cardStyle.Render(b.String())
}

func (m Model) viewBrief() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Submit New Project Brief") + "\n\n")
	b.WriteString("Title\n" + m.briefTitle.View() + "\n\n")
	b.WriteString("Requirements\n" + m.briefDesc.View() + "\n\n")

	if m.briefErr != "" {
		b.WriteString(errStyle.Render(m.briefErr) + "\n\n")
	}
	if m.busy {
		b.WriteString(m.spinner.View() + " Sending...\n\n")
	}
	b.WriteString(helpStyle.Render("enter submit • tab switch field • esc back"))

	return cardStyle.Render(b.String())
}
