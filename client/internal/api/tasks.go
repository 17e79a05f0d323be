package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/agentboard/agentboard/client/internal/apierr"
	"github.com/agentboard/agentboard/client/internal/types"
)

// ListTasks retrieves the full task list for username. The result is never
// nil on success; an absent tasks field decodes as an empty list.
func ListTasks(ctx context.Context, hc HTTPClient, baseURL, username string) ([]types.Task, error) {
	const op = "list_tasks"
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIdentity(op, username); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/api/tasks/%s", baseURL, username)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := hc.Do(httpReq)
	if err != nil {
		return nil, apierr.Network(op, username, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, errorFromResponse(op, username, resp)
	}

	var lr types.ListTasksResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}
	if lr.Tasks == nil {
		lr.Tasks = []types.Task{}
	}
	return lr.Tasks, nil
}

// DeleteTask requests deletion of a task by id.
func DeleteTask(ctx context.Context, hc HTTPClient, baseURL string, id int64) error {
	const op = "delete_task"
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := types.ValidateTaskID(op, id); err != nil {
		return err
	}
	target := strconv.FormatInt(id, 10)
	url := fmt.Sprintf("%s/api/tasks/%s", baseURL, target)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	resp, err := hc.Do(httpReq)
	if err != nil {
		return apierr.Network(op, target, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return errorFromResponse(op, target, resp)
	}
	return nil
}

// ReviewTask triggers a review of the task and returns the server's
// feedback text. The task's status may change server-side as an effect.
func ReviewTask(ctx context.Context, hc HTTPClient, baseURL string, id int64) (string, error) {
	const op = "review_task"
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := types.ValidateTaskID(op, id); err != nil {
		return "", err
	}
	target := strconv.FormatInt(id, 10)
	url := fmt.Sprintf("%s/api/review/%s", baseURL, target)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := hc.Do(httpReq)
	if err != nil {
		return "", apierr.Network(op, target, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return "", errorFromResponse(op, target, resp)
	}

	var rr types.ReviewResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return "", fmt.Errorf("%s: decode response: %w", op, err)
	}
	if rr.Feedback == "" {
		rr.Feedback = "review complete"
	}
	return rr.Feedback, nil
}
