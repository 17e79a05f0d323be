// Package client is the SDK for the agentboard backend: authentication,
// session persistence glue, and the task sync engine that keeps a local
// mirror of the server's task list.
package client

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentboard/agentboard/client/internal/api"
	"github.com/agentboard/agentboard/client/internal/apierr"
	"github.com/agentboard/agentboard/client/internal/types"
	"github.com/agentboard/agentboard/session"
)

// SessionSource is the persisted session the Client reads and writes.
// Implemented by *session.Store. Load must reflect the store's current
// contents on every call; the Client never caches a session across
// operations, since logout may happen between any two of them.
type SessionSource interface {
	Save(identity, token string) error
	Load() *session.Session
	Clear() error
}

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL  string
	http     *http.Client
	sessions SessionSource
	log      zerolog.Logger
}

// New constructs a Client for the backend at baseURL, persisting sessions
// through sessions. Additional options can be provided via functional
// arguments.
func New(baseURL string, sessions SessionSource, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("baseURL cannot be empty")
	}
	if sessions == nil {
		return nil, errors.New("session source cannot be nil")
	}

	c := &Client{
		baseURL:  baseURL,
		sessions: sessions,
		http:     &http.Client{Timeout: 30 * time.Second},
		log:      zerolog.Nop(),
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Wrap the transport so every request re-reads the persisted session
	// and attaches its bearer token.
	c.wrapTransportWithSession()

	return c, nil
}

// wrapTransportWithSession wraps the HTTP client's transport to attach the
// Authorization header from the session store on each request.
func (c *Client) wrapTransportWithSession() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &sessionTransport{
		base:     baseTransport,
		sessions: c.sessions,
	}
}

// sessionTransport reads the session store on every round trip. Fresh read
// each time: a logout between two operations must be visible to the second.
type sessionTransport struct {
	base     http.RoundTripper
	sessions SessionSource
}

func (t *sessionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if sess := t.sessions.Load(); sess != nil {
		cloned := req.Clone(req.Context())
		cloned.Header.Set("Authorization", "Bearer "+sess.Token)
		return t.base.RoundTrip(cloned)
	}
	return t.base.RoundTrip(req)
}

// --------------------------------------------------------------------
// Auth operations
// --------------------------------------------------------------------

// Login authenticates and persists the resulting session. Identity and
// token are saved together; a subsequent freshSession sees both or neither.
func (c *Client) Login(ctx context.Context, username, password string) error {
	tr, err := api.Login(ctx, c.http, c.baseURL, types.Credentials{Username: username, Password: password})
	if err != nil {
		return err
	}
	if tr.AccessToken == "" {
		return apierr.FromStatus("login", username, http.StatusOK, "server returned no access token")
	}
	return c.sessions.Save(username, tr.AccessToken)
}

// Register creates an account and logs it in. When the server answers
// without a token (registration-only deployments), a follow-up login with
// the same credentials completes the session.
func (c *Client) Register(ctx context.Context, username, password string) error {
	tr, err := api.Register(ctx, c.http, c.baseURL, types.Credentials{Username: username, Password: password})
	if err != nil {
		return err
	}
	if tr.AccessToken == "" {
		return c.Login(ctx, username, password)
	}
	return c.sessions.Save(username, tr.AccessToken)
}

// Logout clears the persisted session. Idempotent.
func (c *Client) Logout() error {
	return c.sessions.Clear()
}

// freshSession re-reads the store and enforces local token validity. An
// expired or undecodable token clears the store before reporting, so the
// logout path is already taken by the time the caller sees the error.
func (c *Client) freshSession(op string) (*session.Session, error) {
	sess := c.sessions.Load()
	if sess == nil {
		return nil, apierr.SessionInvalid(op, "not logged in")
	}
	if !session.IsValid(sess.Token, time.Now()) {
		_ = c.sessions.Clear()
		return nil, apierr.SessionInvalid(op, "session expired")
	}
	return sess, nil
}
