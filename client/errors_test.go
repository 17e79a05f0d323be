package client

import (
	"errors"
	"testing"

	"github.com/agentboard/agentboard/client/internal/apierr"
)

func TestUserMessageTransport(t *testing.T) {
	t.Parallel()
	msg := UserMessage(apierr.Network("fetch_all", "", errors.New("dial tcp: refused")))
	if msg == "" || msg == "dial tcp: refused" {
		t.Fatalf("transport message not user-friendly: %q", msg)
	}
}

func TestUserMessageServerMsgVerbatim(t *testing.T) {
	t.Parallel()
	msg := UserMessage(apierr.FromStatus("login", "agent007", 401, "Invalid credentials"))
	// 401 maps to the session message, not the raw msg.
	if msg == "" {
		t.Fatalf("empty message for rejected login")
	}

	msg = UserMessage(apierr.FromStatus("submit_brief", "agent007", 404, "User not found"))
	if msg != "User not found" {
		t.Fatalf("actionable server msg not kept verbatim: %q", msg)
	}
}

func TestUserMessageFallback(t *testing.T) {
	t.Parallel()
	msg := UserMessage(apierr.FromStatus("delete_task", "42", 502, ""))
	if msg != "request failed (status 502)" {
		t.Fatalf("fallback message = %q", msg)
	}
	if UserMessage(nil) != "" {
		t.Fatalf("nil error produced a message")
	}
}
