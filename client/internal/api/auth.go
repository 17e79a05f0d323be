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

// Login exchanges credentials for a bearer token.
func Login(ctx context.Context, hc HTTPClient, baseURL string, creds types.Credentials) (*types.TokenResponse, error) {
	return authPost(ctx, hc, baseURL, "login", "/api/auth/login", creds)
}

// Register creates an account. A 2xx response carrying an access_token is
// treated as a login; some deployments answer with only a msg, in which
// case the returned AccessToken is empty and the caller follows up with
// Login using the same credentials.
func Register(ctx context.Context, hc HTTPClient, baseURL string, creds types.Credentials) (*types.TokenResponse, error) {
	return authPost(ctx, hc, baseURL, "register", "/api/auth/register", creds)
}

func authPost(ctx context.Context, hc HTTPClient, baseURL, op, path string, creds types.Credentials) (*types.TokenResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIdentity(op, creds.Username); err != nil {
		return nil, err
	}
	if err := types.ValidatePassword(op, creds.Password); err != nil {
		return nil, err
	}
	body, err := json.Marshal(creds)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := hc.Do(httpReq)
	if err != nil {
		return nil, apierr.Network(op, creds.Username, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, errorFromResponse(op, creds.Username, resp)
	}

	var tr types.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}
	return &tr, nil
}
