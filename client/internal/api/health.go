package api

import (
	"context"
	"io"
	"net/http"

	"github.com/agentboard/agentboard/client/internal/apierr"
)

// Health probes the server for reachability. Any HTTP response at all
// counts as reachable (older deployments have no health route and answer
// 404); only transport-level failures report an error.
func Health(ctx context.Context, hc HTTPClient, baseURL string) error {
	const op = "health"
	if err := ctx.Err(); err != nil {
		return err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/api/health", nil)
	if err != nil {
		return err
	}
	resp, err := hc.Do(httpReq)
	if err != nil {
		return apierr.Network(op, "", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	return nil
}
