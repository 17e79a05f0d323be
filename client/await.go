package client

import (
	"context"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/agentboard/agentboard/client/internal/api"
)

// WaitForServer probes the backend with exponential backoff until it
// answers or ctx expires. Startup convenience only: ordinary operations
// are one-shot and never retried. Any HTTP response counts as reachable.
func (c *Client) WaitForServer(ctx context.Context) error {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 200 * time.Millisecond
	exp.MaxInterval = 5 * time.Second
	exp.MaxElapsedTime = 0 // bounded by ctx only

	probe := func() error {
		return api.Health(ctx, c.http, c.baseURL)
	}
	return backoff.Retry(probe, backoff.WithContext(exp, ctx))
}
