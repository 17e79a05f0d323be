package client

import (
	"errors"

	"github.com/agentboard/agentboard/client/internal/apierr"
	"github.com/agentboard/agentboard/client/internal/types"
)

// Aliases so callers never import internal packages.

// Task is a server-owned unit of work derived from a brief.
type Task = types.Task

func asOpError(err error, target **apierr.OpError) bool {
	return errors.As(err, target)
}
