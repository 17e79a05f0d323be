package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/agentboard/agentboard/session"
)

func TestNewValidation(t *testing.T) {
	t.Parallel()
	store := session.NewStore(t.TempDir())
	if _, err := New("", store); err == nil {
		t.Fatalf("empty baseURL accepted")
	}
	if _, err := New("http://example.com", nil); err == nil {
		t.Fatalf("nil session source accepted")
	}
	if c, err := New("http://example.com", store); err != nil || c == nil {
		t.Fatalf("valid construction failed: %v", err)
	}
}

func TestBearerTokenFreshReadPerRequest(t *testing.T) {
	t.Parallel()
	var mu sync.Mutex
	var seen []string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Header.Get("Authorization"))
		mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string][]Task{"tasks": {}})
	})
	c, store := newTestClient(t, handler)
	e := c.NewSyncEngine()

	if _, err := e.FetchAll(context.Background()); err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	// Replace the session between operations; the next request must carry
	// the new token without any client reconstruction.
	tok2 := testToken(t, time.Now().Add(2*time.Hour))
	if err := store.Save("agent007", tok2); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := e.FetchAll(context.Background()); err != nil {
		t.Fatalf("second fetch: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 2 {
		t.Fatalf("requests seen = %d", len(seen))
	}
	if seen[0] == "" || seen[1] == "" {
		t.Fatalf("missing Authorization header: %q", seen)
	}
	if seen[1] != "Bearer "+tok2 {
		t.Fatalf("second request used stale token: %q", seen[1])
	}
	if seen[0] == seen[1] {
		t.Fatalf("token change not picked up between requests")
	}
}

func TestLoginPersistsSessionAtomically(t *testing.T) {
	t.Parallel()
	tok := "server-issued-token"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": tok, "username": "agent007"})
	}))
	t.Cleanup(srv.Close)

	store := session.NewStore(t.TempDir())
	c, err := New(srv.URL, store)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := c.Login(context.Background(), "agent007", "hunter2"); err != nil {
		t.Fatalf("login: %v", err)
	}
	sess := store.Load()
	if sess == nil || sess.Identity != "agent007" || sess.Token != tok {
		t.Fatalf("session after login: %+v", sess)
	}
}

func TestLoginWithoutTokenFails(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"msg": "ok but no token"})
	}))
	t.Cleanup(srv.Close)

	store := session.NewStore(t.TempDir())
	c, err := New(srv.URL, store)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := c.Login(context.Background(), "agent007", "hunter2"); err == nil {
		t.Fatalf("tokenless login response accepted")
	}
	if store.Load() != nil {
		t.Fatalf("session persisted despite missing token")
	}
}

func TestRegisterFallsBackToLogin(t *testing.T) {
	t.Parallel()
	var loginCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/register":
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]string{"msg": "Registration successful"})
		case "/api/auth/login":
			atomic.AddInt32(&loginCalls, 1)
			_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-after-register"})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	store := session.NewStore(t.TempDir())
	c, err := New(srv.URL, store)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := c.Register(context.Background(), "agent007", "hunter2"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if atomic.LoadInt32(&loginCalls) != 1 {
		t.Fatalf("tokenless register did not fall back to login")
	}
	sess := store.Load()
	if sess == nil || sess.Token != "tok-after-register" {
		t.Fatalf("session after register: %+v", sess)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	t.Parallel()
	store := session.NewStore(t.TempDir())
	if err := store.Save("agent007", "tok"); err != nil {
		t.Fatalf("save: %v", err)
	}
	c, err := New("http://example.com", store)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := c.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if store.Load() != nil {
		t.Fatalf("session survived logout")
	}
	if err := c.Logout(); err != nil {
		t.Fatalf("second logout: %v", err)
	}
}
