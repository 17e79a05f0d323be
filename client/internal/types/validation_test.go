package types

import (
	"testing"

	"github.com/agentboard/agentboard/client/internal/apierr"
)

func TestValidateIdentity(t *testing.T) {
	t.Parallel()
	if err := ValidateIdentity("op", "agent007"); err != nil {
		t.Fatalf("valid identity rejected: %v", err)
	}
	for _, bad := range []string{"", "   ", "\t"} {
		err := ValidateIdentity("op", bad)
		if !apierr.IsValidation(err) {
			t.Fatalf("identity %q: want validation error, got %v", bad, err)
		}
	}
}

func TestValidateBrief(t *testing.T) {
	t.Parallel()
	if err := ValidateBrief("op", "Build CLI", "needs arg parsing"); err != nil {
		t.Fatalf("valid brief rejected: %v", err)
	}
	if err := ValidateBrief("op", "", "desc"); !apierr.IsValidation(err) {
		t.Fatalf("empty title: got %v", err)
	}
	if err := ValidateBrief("op", "title", "  "); !apierr.IsValidation(err) {
		t.Fatalf("blank description: got %v", err)
	}
}

func TestValidateTaskID(t *testing.T) {
	t.Parallel()
	if err := ValidateTaskID("op", 7); err != nil {
		t.Fatalf("valid id rejected: %v", err)
	}
	for _, bad := range []int64{0, -1} {
		if err := ValidateTaskID("op", bad); !apierr.IsValidation(err) {
			t.Fatalf("id %d: got %v", bad, err)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()
	if err := ValidatePassword("op", "hunter2"); err != nil {
		t.Fatalf("valid password rejected: %v", err)
	}
	if err := ValidatePassword("op", ""); !apierr.IsValidation(err) {
		t.Fatalf("empty password accepted")
	}
}
