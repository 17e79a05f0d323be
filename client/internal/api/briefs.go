package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/agentboard/agentboard/client/internal/apierr"
	"github.com/agentboard/agentboard/client/internal/types"
)

// SubmitBrief posts a new project brief. The server expands it into zero or
// more tasks; the caller re-fetches the task list to observe them.
func SubmitBrief(ctx context.Context, hc HTTPClient, baseURL string, req types.BriefRequest) (*types.BriefResponse, error) {
	const op = "submit_brief"
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIdentity(op, req.Username); err != nil {
		return nil, err
	}
	if err := types.ValidateBrief(op, req.Title, req.Description); err != nil {
		return nil, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/api/briefs", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := hc.Do(httpReq)
	if err != nil {
		return nil, apierr.Network(op, req.Username, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, errorFromResponse(op, req.Username, resp)
	}

	var br types.BriefResponse
	if err := json.NewDecoder(resp.Body).Decode(&br); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}
	return &br, nil
}
