// Package tui renders the session state and task mirror. It holds no
// business logic: every action is one of the sync engine's or session
// store's operations, and the view renders whatever they return.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentboard/agentboard/client"
	"github.com/agentboard/agentboard/session"
)

type screen int

const (
	screenLogin screen = iota
	screenDashboard
	screenBrief
)

// Model is the single bubbletea model for all three screens.
type Model struct {
	client *client.Client
	engine *client.SyncEngine
	store  *session.Store

	screen screen
	user   string
	width  int

	// login screen
	username    textinput.Model
	password    textinput.Model
	registering bool
	authErr     string

	// dashboard screen
	tasks     []client.Task
	cursor    int
	loading   bool
	inflight  map[int64]bool
	status    string
	statusSeq int
	staleView bool

	// brief screen
	briefTitle textinput.Model
	briefDesc  textinput.Model
	briefErr   string

	busy    bool
	spinner spinner.Model
}

// NewModel builds the initial model. A persisted session that is still
// valid skips the login screen; an expired one has already been cleared by
// LoadValid, so the app opens logged out.
func NewModel(c *client.Client, store *session.Store) Model {
	username := textinput.New()
	username.Placeholder = "Agent ID"
	username.CharLimit = 50
	username.Focus()

	password := textinput.New()
	password.Placeholder = "Authorization Key"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	briefTitle := textinput.New()
	briefTitle.Placeholder = "Short project title"
	briefTitle.CharLimit = 255

	briefDesc := textinput.New()
	briefDesc.Placeholder = "Detailed requirements"

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		client:     c,
		engine:     c.NewSyncEngine(),
		store:      store,
		screen:     screenLogin,
		username:   username,
		password:   password,
		briefTitle: briefTitle,
		briefDesc:  briefDesc,
		inflight:   map[int64]bool{},
		spinner:    sp,
	}

	if sess := store.LoadValid(time.Now()); sess != nil {
		m.user = sess.Identity
		m.screen = screenDashboard
		m.loading = true
	}
	return m
}

// Init kicks off the initial fetch when a valid session was restored.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spinner.Tick}
	if m.screen == screenDashboard {
		cmds = append(cmds, fetchTasksCmd(m.engine))
	}
	return tea.Batch(cmds...)
}

// Update routes messages to the active screen.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

	case authResultMsg:
		return m.onAuthResult(msg)

	case tasksResultMsg:
		return m.onTasksResult(msg)

	case briefResultMsg:
		return m.onBriefResult(msg)

	case taskActionMsg:
		return m.onTaskAction(msg)

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	switch m.screen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenBrief:
		return m.updateBrief(msg)
	}
	return m, nil
}

// logout clears the session and the mirror and returns to the login
// screen. Used for explicit logout and for any session-invalid error.
func (m Model) logout() (tea.Model, tea.Cmd) {
	_ = m.client.Logout()
	m.engine.Reset()
	m.user = ""
	m.tasks = nil
	m.inflight = map[int64]bool{}
	m.staleView = false
	m.status = ""
	m.authErr = ""
	m.password.SetValue("")
	m.username.Focus()
	m.password.Blur()
	m.screen = screenLogin
	return m, nil
}

func (m Model) setStatus(s string) (tea.Model, tea.Cmd) {
	m.status = s
	m.statusSeq++
	return m, clearStatusCmd(m.statusSeq)
}

func (m Model) onAuthResult(msg authResultMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.authErr = client.UserMessage(msg.err)
		return m, nil
	}
	m.user = msg.identity
	m.authErr = ""
	m.screen = screenDashboard
	m.loading = true
	return m, fetchTasksCmd(m.engine)
}

func (m Model) onTasksResult(msg tasksResultMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		if client.IsSessionInvalid(msg.err) {
			return m.logout()
		}
		// Keep whatever the mirror already holds; flag it as stale.
		m.staleView = true
		return m.setStatus(errStyle.Render(client.UserMessage(msg.err)))
	}
	m.staleView = false
	m.tasks = msg.tasks
	m.clampCursor()
	return m, nil
}

func (m Model) onBriefResult(msg briefResultMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		if client.IsSessionInvalid(msg.err) {
			return m.logout()
		}
		m.briefErr = client.UserMessage(msg.err)
		return m, nil
	}
	m.briefErr = ""
	m.briefTitle.SetValue("")
	m.briefDesc.SetValue("")
	m.screen = screenDashboard
	m.tasks = msg.tasks
	m.clampCursor()
	return m.setStatus(statusStyle.Render("Brief submitted"))
}

func (m Model) onTaskAction(msg taskActionMsg) (tea.Model, tea.Cmd) {
	delete(m.inflight, msg.id)
	if msg.err != nil {
		if client.IsSessionInvalid(msg.err) {
			return m.logout()
		}
		return m.setStatus(errStyle.Render(client.UserMessage(msg.err)))
	}
	m.tasks = msg.tasks
	m.clampCursor()
	if msg.op == "review" {
		return m.setStatus(statusStyle.Render("Review: " + msg.feedback))
	}
	return m.setStatus(statusStyle.Render("Task deleted"))
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "shift+tab", "up", "down":
			if m.username.Focused() {
				m.username.Blur()
				m.password.Focus()
			} else {
				m.password.Blur()
				m.username.Focus()
			}
			return m, nil
		case "ctrl+r":
			m.registering = !m.registering
			return m, nil
		case "enter":
			if m.busy {
				return m, nil
			}
			user, pass := m.username.Value(), m.password.Value()
			if user == "" || pass == "" {
				m.authErr = "Both fields are required."
				return m, nil
			}
			m.busy = true
			m.authErr = ""
			return m, loginCmd(m.client, user, pass, m.registering)
		case "esc":
			return m, tea.Quit
		}
	}
	var cmds [2]tea.Cmd
	m.username, cmds[0] = m.username.Update(msg)
	m.password, cmds[1] = m.password.Update(msg)
	return m, tea.Batch(cmds[0], cmds[1])
}

func (m Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case "f", "ctrl+r":
		m.loading = true
		return m, fetchTasksCmd(m.engine)
	case "n":
		m.screen = screenBrief
		m.briefErr = ""
		m.briefTitle.Focus()
		m.briefDesc.Blur()
		return m, nil
	case "l":
		return m.logout()
	case "r", "d", "x":
		if m.cursor >= len(m.tasks) {
			return m, nil
		}
		task := m.tasks[m.cursor]
		// One mutation at a time per task; further actions on the same id
		// are ignored until the in-flight one resolves.
		if m.inflight[task.ID] {
			return m, nil
		}
		m.inflight[task.ID] = true
		if key.String() == "r" {
			return m, reviewTaskCmd(m.engine, task.ID)
		}
		return m, deleteTaskCmd(m.engine, task.ID)
	}
	return m, nil
}

func (m Model) updateBrief(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.screen = screenDashboard
			return m, nil
		case "tab", "shift+tab":
			if m.briefTitle.Focused() {
				m.briefTitle.Blur()
				m.briefDesc.Focus()
			} else {
				m.briefDesc.Blur()
				m.briefTitle.Focus()
			}
			return m, nil
		case "enter":
			if m.busy {
				return m, nil
			}
			title, desc := m.briefTitle.Value(), m.briefDesc.Value()
			if title == "" || desc == "" {
				m.briefErr = "Title and description are both required."
				return m, nil
			}
			m.busy = true
			m.briefErr = ""
			return m, submitBriefCmd(m.engine, title, desc)
		}
	}
	var cmds [2]tea.Cmd
	m.briefTitle, cmds[0] = m.briefTitle.Update(msg)
	m.briefDesc, cmds[1] = m.briefDesc.Update(msg)
	return m, tea.Batch(cmds[0], cmds[1])
}
