// Package apierr classifies every failure an operation can surface so the
// presentation layer can choose a rendering without string matching.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind buckets an operation failure.
type Kind int

const (
	// KindTransport covers network-level failures: unreachable server,
	// aborted request, timeout. The request may never have been received.
	KindTransport Kind = iota

	// KindServerRejected covers non-2xx responses. The server processed
	// the request and said no; its msg is carried when present.
	KindServerRejected

	// KindSessionInvalid covers an absent/expired/undecodable local
	// session and 401 rejections. Resolved by clearing the session and
	// re-authenticating, never by retrying the operation.
	KindSessionInvalid

	// KindValidation covers client-side precondition failures caught
	// before any network call.
	KindValidation
)

// String returns a stable label for logs and metrics.
func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindServerRejected:
		return "server_rejected"
	case KindSessionInvalid:
		return "session_invalid"
	case KindValidation:
		return "validation"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// OpError carries enough context for an actionable user-facing message:
// the operation kind, the target id when there is one, and the server's
// status and message when the server answered at all.
type OpError struct {
	Kind       Kind
	Op         string // e.g. "list_tasks", "delete_task"
	TargetID   string // task id or identity; empty when not applicable
	StatusCode int    // 0 for non-HTTP failures
	Msg        string // human-readable reason
	Underlying error  // original error, if any
}

// Error implements the error interface.
func (e *OpError) Error() string {
	switch {
	case e.TargetID != "" && e.StatusCode > 0:
		return fmt.Sprintf("%s %s [%s] status %d: %s", e.Op, e.TargetID, e.Kind, e.StatusCode, e.Msg)
	case e.StatusCode > 0:
		return fmt.Sprintf("%s [%s] status %d: %s", e.Op, e.Kind, e.StatusCode, e.Msg)
	case e.TargetID != "":
		return fmt.Sprintf("%s %s [%s]: %s", e.Op, e.TargetID, e.Kind, e.Msg)
	default:
		return fmt.Sprintf("%s [%s]: %s", e.Op, e.Kind, e.Msg)
	}
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *OpError) Unwrap() error { return e.Underlying }

// FromStatus builds an OpError for a non-2xx response. A 401 means the
// server no longer honors the token, so it classifies as session-invalid
// and drives the same logout path as a locally expired token.
func FromStatus(op, targetID string, statusCode int, msg string) *OpError {
	kind := KindServerRejected
	if statusCode == http.StatusUnauthorized {
		kind = KindSessionInvalid
	}
	if msg == "" {
		msg = fmt.Sprintf("request failed (status %d)", statusCode)
	}
	return &OpError{Kind: kind, Op: op, TargetID: targetID, StatusCode: statusCode, Msg: msg}
}

// Network builds an OpError for a transport-level failure.
func Network(op, targetID string, err error) *OpError {
	return &OpError{
		Kind:       KindTransport,
		Op:         op,
		TargetID:   targetID,
		Msg:        "server unreachable",
		Underlying: err,
	}
}

// SessionInvalid builds an OpError for a locally detected session problem.
func SessionInvalid(op, reason string) *OpError {
	return &OpError{Kind: KindSessionInvalid, Op: op, Msg: reason}
}

// Validation builds an OpError for a precondition failure on field.
func Validation(op, field, reason string) *OpError {
	return &OpError{Kind: KindValidation, Op: op, TargetID: field, Msg: reason}
}

// KindOf extracts the Kind from err, reporting ok=false for foreign errors.
func KindOf(err error) (Kind, bool) {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind, true
	}
	return 0, false
}

// IsSessionInvalid reports whether err requires the logout path.
func IsSessionInvalid(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindSessionInvalid
}

// IsTransport reports whether err is a network-level failure.
func IsTransport(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindTransport
}

// IsServerRejected reports whether the server answered with a non-2xx.
func IsServerRejected(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindServerRejected
}

// IsValidation reports whether err was caught before any network call.
func IsValidation(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindValidation
}
