package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/agentboard/agentboard/client"
	"github.com/agentboard/agentboard/session"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	store := session.NewStore(t.TempDir())
	c, err := client.New("http://example.invalid", store)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return NewModel(c, store)
}

func TestNewModelStartsLoggedOut(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	if m.screen != screenLogin {
		t.Fatalf("empty store should open the login screen")
	}
	if !strings.Contains(m.View(), "Agent Login") {
		t.Fatalf("login view not rendered")
	}
}

func TestTasksResultRendersMirror(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	m.screen = screenDashboard
	m.user = "agent007"

	updated, _ := m.onTasksResult(tasksResultMsg{tasks: []client.Task{
		{ID: 1, Title: "Design schema", Agent: "Backend", Status: "To Do"},
	}})
	m = updated.(Model)
	view := m.View()
	for _, want := range []string{"Design schema", "Backend", "To Do", "agent007"} {
		if !strings.Contains(view, want) {
			t.Fatalf("dashboard view missing %q:\n%s", want, view)
		}
	}
}

func TestFetchErrorKeepsStaleTasksVisible(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	m.screen = screenDashboard
	m.user = "agent007"
	m.tasks = []client.Task{{ID: 1, Title: "Old snapshot", Agent: "Backend", Status: "pending"}}

	updated, _ := m.onTasksResult(tasksResultMsg{err: errors.New("boom")})
	m = updated.(Model)
	view := m.View()
	if !strings.Contains(view, "Old snapshot") {
		t.Fatalf("stale tasks dropped from view:\n%s", view)
	}
	if !m.staleView {
		t.Fatalf("stale marker not set")
	}
}

func TestReviewFeedbackShownInStatus(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	m.screen = screenDashboard
	m.inflight[7] = true

	updated, _ := m.onTaskAction(taskActionMsg{
		op: "review", id: 7, feedback: "Looks good",
		tasks: []client.Task{{ID: 7, Title: "Build form", Agent: "Frontend", Status: "done"}},
	})
	m = updated.(Model)
	if m.inflight[7] {
		t.Fatalf("in-flight marker not cleared")
	}
	if !strings.Contains(m.View(), "Looks good") {
		t.Fatalf("review feedback not shown")
	}
}

func TestSessionInvalidResultLogsOut(t *testing.T) {
	t.Parallel()
	store := session.NewStore(t.TempDir())
	if err := store.Save("agent007", "tok"); err != nil {
		t.Fatalf("save: %v", err)
	}
	c, err := client.New("http://example.invalid", store)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	m := NewModel(c, store)
	m.screen = screenDashboard
	m.user = "agent007"

	sessionErr := sessionInvalidForTest(t, c)
	updated, _ := m.onTasksResult(tasksResultMsg{err: sessionErr})
	m = updated.(Model)
	if m.screen != screenLogin {
		t.Fatalf("session-invalid did not return to login")
	}
	if store.Load() != nil {
		t.Fatalf("session not cleared on logout path")
	}
}

// sessionInvalidForTest manufactures the error kind the engine reports for
// an absent session by asking an engine with a cleared store.
func sessionInvalidForTest(t *testing.T, c *client.Client) error {
	t.Helper()
	store := session.NewStore(t.TempDir())
	cc, err := client.New("http://example.invalid", store)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, fetchErr := cc.NewSyncEngine().FetchAll(context.Background())
	if !client.IsSessionInvalid(fetchErr) {
		t.Fatalf("fixture error wrong kind: %v", fetchErr)
	}
	return fetchErr
}
