// Package api holds one function per backend endpoint. Each function takes
// the HTTP client and base URL explicitly, validates its inputs, performs a
// single request, and decodes the typed response shape at the boundary.
package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/agentboard/agentboard/client/internal/apierr"
	"github.com/agentboard/agentboard/client/internal/types"
)

// HTTPClient interface for dependency injection.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// maxErrorBody bounds how much of an error response body is read for the
// `{msg}` field.
const maxErrorBody = 64 << 10

// errorFromResponse converts a non-2xx response into a classified error.
// The body's msg is surfaced when present; otherwise a generic message with
// the numeric status stands in.
func errorFromResponse(op, targetID string, resp *http.Response) error {
	var mr types.MessageResponse
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_ = json.Unmarshal(body, &mr)
	return apierr.FromStatus(op, targetID, resp.StatusCode, mr.Msg)
}

func isSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
