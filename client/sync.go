package client

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agentboard/agentboard/client/internal/api"
	"github.com/agentboard/agentboard/client/internal/types"
)

// EngineState is the sync engine's lifecycle state.
type EngineState int

const (
	// StateUninitialized: no fetch attempted yet; the mirror is empty.
	StateUninitialized EngineState = iota
	// StateLoading: a fetch is in flight.
	StateLoading
	// StateReady: the mirror matches the server as of the last applied fetch.
	StateReady
	// StateFailed: the newest fetch failed; the mirror holds the previous
	// snapshot (stale-but-present beats an empty view).
	StateFailed
)

// String returns a stable label for logs.
func (s EngineState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SyncEngine mirrors the authoritative server-side task list for the
// current identity. Mutations never patch the mirror locally: each
// successful mutation is followed by exactly one reconciliation fetch, so
// the mirror can never encode a client-side guess about server state.
//
// Operations do not serialize. Overlapping fetches race, and the engine
// keeps whichever resolves last-applied: every fetch is stamped with an
// issue-sequence number and a response is discarded when a later-issued
// fetch has already applied, so a slow stale response can never overwrite
// fresher data.
type SyncEngine struct {
	c   *Client
	log zerolog.Logger

	issueSeq atomic.Uint64 // stamped at issue time, before the request

	mu         sync.Mutex
	mirror     []Task
	state      EngineState
	appliedSeq uint64 // seq of the fetch currently reflected in the mirror
	lastErr    error
}

// NewSyncEngine returns an engine bound to the client's session source.
// The identity is re-read from the store at the start of every operation;
// the engine never caches it.
func (c *Client) NewSyncEngine() *SyncEngine {
	return &SyncEngine{
		c:     c,
		log:   c.log.With().Str("component", "sync_engine").Logger(),
		state: StateUninitialized,
	}
}

// Tasks returns a copy of the mirror.
func (e *SyncEngine) Tasks() []Task {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Task(nil), e.mirror...)
}

// State returns the engine's current lifecycle state.
func (e *SyncEngine) State() EngineState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// LastError returns the error from the most recent failed fetch, or nil
// after a successful one.
func (e *SyncEngine) LastError() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}

// Reset drops the mirror and returns to Uninitialized, for use on logout.
func (e *SyncEngine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mirror = nil
	e.state = StateUninitialized
	e.appliedSeq = e.issueSeq.Load()
	e.lastErr = nil
}

// FetchAll reconciles the mirror with the server's task list for the
// current identity. On success the mirror is replaced wholesale; on failure
// the previous mirror contents are left untouched and the error is
// returned. An absent or expired session reports session-invalid (the
// store is already cleared by then) and the caller must log out.
func (e *SyncEngine) FetchAll(ctx context.Context) ([]Task, error) {
	const op = "fetch_all"
	sess, err := e.c.freshSession(op)
	if err != nil {
		return nil, err
	}

	seq := e.issueSeq.Add(1)
	reqID := uuid.NewString()
	e.log.Debug().Str("op", op).Str("request_id", reqID).Uint64("seq", seq).Str("identity", sess.Identity).Msg("fetch issued")

	e.mu.Lock()
	e.state = StateLoading
	e.mu.Unlock()

	tasks, err := api.ListTasks(ctx, e.c.http, e.c.baseURL, sess.Identity)

	e.mu.Lock()
	defer e.mu.Unlock()

	if err != nil {
		fetchesTotal.WithLabelValues(outcomeError).Inc()
		// Only the newest outstanding fetch may mark the engine failed; a
		// stale failure must not demote fresher applied data.
		if seq > e.appliedSeq {
			e.state = StateFailed
			e.lastErr = err
		}
		e.log.Warn().Str("op", op).Str("request_id", reqID).Err(err).Msg("fetch failed")
		return nil, err
	}

	if seq <= e.appliedSeq {
		// A later-issued fetch already applied; this response is stale.
		staleFetchesDiscarded.Inc()
		e.log.Debug().Str("op", op).Str("request_id", reqID).Uint64("seq", seq).Uint64("applied", e.appliedSeq).Msg("stale fetch discarded")
		return append([]Task(nil), e.mirror...), nil
	}

	fetchesTotal.WithLabelValues(outcomeOK).Inc()
	e.mirror = tasks
	e.appliedSeq = seq
	e.state = StateReady
	e.lastErr = nil
	return append([]Task(nil), e.mirror...), nil
}

// SubmitBrief posts a new project brief for the current identity and
// returns the server-assigned brief id. Title and description must be
// non-empty; that is checked before any network call. On success exactly
// one reconciliation fetch runs so the fanned-out tasks appear; on failure
// the brief is not retried and the mirror does not change.
func (e *SyncEngine) SubmitBrief(ctx context.Context, title, description string) (int64, error) {
	const op = "submit_brief"
	sess, err := e.c.freshSession(op)
	if err != nil {
		return 0, err
	}
	if err := types.ValidateBrief(op, title, description); err != nil {
		mutationsTotal.WithLabelValues(op, outcomeError).Inc()
		return 0, err
	}

	reqID := uuid.NewString()
	br, err := api.SubmitBrief(ctx, e.c.http, e.c.baseURL, types.BriefRequest{
		Username:    sess.Identity,
		Title:       title,
		Description: description,
	})
	if err != nil {
		mutationsTotal.WithLabelValues(op, outcomeError).Inc()
		e.log.Warn().Str("op", op).Str("request_id", reqID).Err(err).Msg("brief rejected")
		return 0, err
	}

	mutationsTotal.WithLabelValues(op, outcomeOK).Inc()
	e.log.Info().Str("op", op).Str("request_id", reqID).Int64("brief_id", br.BriefID).Msg("brief accepted")
	e.reconcile(ctx, op, reqID)
	return br.BriefID, nil
}

// DeleteTask requests deletion of the task. On success exactly one
// reconciliation fetch runs; on failure the task remains in the mirror and
// the error carries the operation and target id.
func (e *SyncEngine) DeleteTask(ctx context.Context, id int64) error {
	const op = "delete_task"
	if _, err := e.c.freshSession(op); err != nil {
		return err
	}

	reqID := uuid.NewString()
	if err := api.DeleteTask(ctx, e.c.http, e.c.baseURL, id); err != nil {
		mutationsTotal.WithLabelValues(op, outcomeError).Inc()
		e.log.Warn().Str("op", op).Str("request_id", reqID).Int64("task_id", id).Err(err).Msg("delete rejected")
		return err
	}

	mutationsTotal.WithLabelValues(op, outcomeOK).Inc()
	e.reconcile(ctx, op, reqID)
	return nil
}

// ReviewTask triggers a review of the task and returns the server's
// feedback text. Review may change the task's status server-side, so a
// successful review is followed by exactly one reconciliation fetch.
func (e *SyncEngine) ReviewTask(ctx context.Context, id int64) (string, error) {
	const op = "review_task"
	if _, err := e.c.freshSession(op); err != nil {
		return "", err
	}

	reqID := uuid.NewString()
	feedback, err := api.ReviewTask(ctx, e.c.http, e.c.baseURL, id)
	if err != nil {
		mutationsTotal.WithLabelValues(op, outcomeError).Inc()
		e.log.Warn().Str("op", op).Str("request_id", reqID).Int64("task_id", id).Err(err).Msg("review rejected")
		return "", err
	}

	mutationsTotal.WithLabelValues(op, outcomeOK).Inc()
	e.reconcile(ctx, op, reqID)
	return feedback, nil
}

// reconcile runs the single post-mutation fetch. The mutation has already
// succeeded, so a failed reconciliation does not fail the operation; it
// leaves the engine in Failed with the pre-mutation mirror intact, and the
// next fetch recovers.
func (e *SyncEngine) reconcile(ctx context.Context, op, reqID string) {
	if _, err := e.FetchAll(ctx); err != nil {
		e.log.Warn().Str("op", op).Str("request_id", reqID).Err(err).Msg("reconciliation fetch failed")
	}
}
