package types

import (
	"strings"

	"github.com/agentboard/agentboard/client/internal/apierr"
)

// Preconditions checked before any network call. Failures classify as
// validation errors and cost no server round trip.

// ValidateIdentity requires a non-blank identity string.
func ValidateIdentity(op, identity string) error {
	if strings.TrimSpace(identity) == "" {
		return apierr.Validation(op, "username", "username must not be empty")
	}
	return nil
}

// ValidatePassword requires a non-blank password.
func ValidatePassword(op, password string) error {
	if password == "" {
		return apierr.Validation(op, "password", "password must not be empty")
	}
	return nil
}

// ValidateBrief requires both free-text fields of a brief.
func ValidateBrief(op, title, description string) error {
	if strings.TrimSpace(title) == "" {
		return apierr.Validation(op, "title", "brief title must not be empty")
	}
	if strings.TrimSpace(description) == "" {
		return apierr.Validation(op, "description", "brief description must not be empty")
	}
	return nil
}

// ValidateTaskID requires a positive server-assigned id.
func ValidateTaskID(op string, id int64) error {
	if id <= 0 {
		return apierr.Validation(op, "id", "task id must be positive")
	}
	return nil
}
