package domain

import "time"

// BuildStatus is the build state machine:
// pending -> running -> (succeeded | failed)
type BuildStatus string

const (
	BuildStatusPending   BuildStatus = "pending"
	BuildStatusRunning   BuildStatus = "running"
	BuildStatusSucceeded BuildStatus = "succeeded"
	BuildStatusFailed    BuildStatus = "failed"
)

// IsTerminal reports whether the build can no longer change state.
func (s BuildStatus) IsTerminal() bool {
	return s == BuildStatusSucceeded || s == BuildStatusFailed
}

// Build records one image build: where the context came from, what the
// descriptor looked like, and how it ended. Failures are terminal; there are
// no retries at this layer.
type Build struct {
	ID        string      `json:"id"`
	RepoURL   string      `json:"repo_url,omitempty"`
	ImageRef  string      `json:"image_ref"`
	Spec      ImageSpec   `json:"spec"`
	Status    BuildStatus `json:"status"`
	Error     string      `json:"error,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
