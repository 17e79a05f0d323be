package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Task is one unit of work derived from a brief and assigned to an
// automated agent. The server owns every field; the client never edits a
// task locally, it re-fetches after each mutation instead.
type Task struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Agent    string `json:"agent"`
	Status   string `json:"status"`
	Priority string `json:"priority,omitempty"`
}
