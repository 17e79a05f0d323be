package types

// ------------------------------
// Request Types
// ------------------------------

// Credentials holds the login/register payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// BriefRequest holds a new project brief submission. The brief is
// transient: the client keeps only the returned brief id for correlation.
type BriefRequest struct {
	Username    string `json:"username"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
