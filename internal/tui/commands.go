package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentboard/agentboard/client"
)

// opTimeout bounds a single user-triggered operation.
const opTimeout = 30 * time.Second

func loginCmd(c *client.Client, username, password string, register bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		var err error
		if register {
			err = c.Register(ctx, username, password)
		} else {
			err = c.Login(ctx, username, password)
		}
		return authResultMsg{identity: username, err: err}
	}
}

func fetchTasksCmd(e *client.SyncEngine) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		tasks, err := e.FetchAll(ctx)
		return tasksResultMsg{tasks: tasks, err: err}
	}
}

func submitBriefCmd(e *client.SyncEngine, title, description string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		briefID, err := e.SubmitBrief(ctx, title, description)
		return briefResultMsg{briefID: briefID, tasks: e.Tasks(), err: err}
	}
}

func deleteTaskCmd(e *client.SyncEngine, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		err := e.DeleteTask(ctx, id)
		return taskActionMsg{op: "delete", id: id, tasks: e.Tasks(), err: err}
	}
}

func reviewTaskCmd(e *client.SyncEngine, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		feedback, err := e.ReviewTask(ctx, id)
		return taskActionMsg{op: "review", id: id, feedback: feedback, tasks: e.Tasks(), err: err}
	}
}

func clearStatusCmd(seq int) tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}
