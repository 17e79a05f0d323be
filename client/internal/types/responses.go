package types

// ------------------------------
// Response Types
// ------------------------------

// TokenResponse mirrors the auth endpoints' success shape.
type TokenResponse struct {
	Msg         string `json:"msg,omitempty"`
	AccessToken string `json:"access_token"`
	Username    string `json:"username,omitempty"`
}

// ListTasksResponse wraps the task list endpoint response. A missing or
// null tasks field decodes as an empty list.
type ListTasksResponse struct {
	Tasks []Task `json:"tasks"`
}

// MessageResponse mirrors the generic `{msg}` shape used by deletes and by
// every non-2xx response.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// ReviewResponse mirrors the review endpoint's success shape.
type ReviewResponse struct {
	Feedback string `json:"feedback"`
}

// BriefResponse mirrors the brief submission success shape.
type BriefResponse struct {
	Msg     string `json:"msg"`
	BriefID int64  `json:"brief_id"`
}
