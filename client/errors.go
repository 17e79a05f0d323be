package client

import "github.com/agentboard/agentboard/client/internal/apierr"

// Re-export the error classification so callers compare against a single
// package. Every error returned by Client and SyncEngine operations is an
// *apierr.OpError (or wraps one), carrying the operation kind, target id,
// and the server's status/message when available.

// ErrorKind buckets an operation failure. See the Kind constants.
type ErrorKind = apierr.Kind

const (
	// KindTransport: network unreachable or request aborted. Retryable by
	// the user; never retried automatically.
	KindTransport = apierr.KindTransport
	// KindServerRejected: the server answered non-2xx.
	KindServerRejected = apierr.KindServerRejected
	// KindSessionInvalid: absent/expired session or a 401. Resolved by
	// logging in again, not by retrying.
	KindSessionInvalid = apierr.KindSessionInvalid
	// KindValidation: precondition failed before any network call.
	KindValidation = apierr.KindValidation
)

// IsSessionInvalid reports whether err must trigger the logout path.
func IsSessionInvalid(err error) bool { return apierr.IsSessionInvalid(err) }

// IsTransport reports whether err is a network-level failure.
func IsTransport(err error) bool { return apierr.IsTransport(err) }

// IsServerRejected reports whether the server answered with a non-2xx.
func IsServerRejected(err error) bool { return apierr.IsServerRejected(err) }

// IsValidation reports whether err was caught client-side.
func IsValidation(err error) bool { return apierr.IsValidation(err) }

// UserMessage extracts a message suitable for direct display: the server's
// msg when it sent one, a kind-appropriate fallback otherwise.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if kind, ok := apierr.KindOf(err); ok {
		switch kind {
		case apierr.KindTransport:
			return "Could not reach the server. Check your connection and try again."
		case apierr.KindSessionInvalid:
			return "Your session has ended. Please log in again."
		}
	}
	var oe *apierr.OpError
	if asOpError(err, &oe) && oe.Msg != "" {
		return oe.Msg
	}
	return err.Error()
}
