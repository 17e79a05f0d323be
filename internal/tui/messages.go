package tui

import "github.com/agentboard/agentboard/client"

// Messages delivered back to Update by commands. Every backend operation
// resolves into exactly one of these; errors ride along rather than being
// handled inside commands, so all rendering decisions stay in Update.

// authResultMsg reports a login or register attempt.
type authResultMsg struct {
	identity string
	err      error
}

// tasksResultMsg reports a reconciliation fetch.
type tasksResultMsg struct {
	tasks []client.Task
	err   error
}

// briefResultMsg reports a brief submission (tasks already re-fetched).
type briefResultMsg struct {
	briefID int64
	tasks   []client.Task
	err     error
}

// taskActionMsg reports a delete or review (tasks already re-fetched).
type taskActionMsg struct {
	op       string
	id       int64
	feedback string
	tasks    []client.Task
	err      error
}

// statusClearMsg expires a transient status line.
type statusClearMsg struct{ seq int }
