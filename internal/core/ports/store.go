package ports

import (
	"context"

	"github.com/resumeai/platform/internal/core/domain"
)

// Store persists resumes, chat sessions and build records.
type Store interface {
	SaveResume(ctx context.Context, r *domain.Resume) error
	GetResume(ctx context.Context, id string) (*domain.Resume, error)

	CreateSession(ctx context.Context, s *domain.Session) error
	GetSession(ctx context.Context, id string) (*domain.Session, error)
	// AttachResume replaces the session's resume.
	AttachResume(ctx context.Context, sessionID, resumeID string) error
	// ClearSession deletes the session's messages and detaches its resume.
	// Clearing an already-empty session is a no-op.
	ClearSession(ctx context.Context, sessionID string) error

	AppendMessage(ctx context.Context, m *domain.Message) error
	// ListMessages returns the session's messages oldest-first.
	ListMessages(ctx context.Context, sessionID string) ([]domain.Message, error)

	CreateBuild(ctx context.Context, b *domain.Build) error
	GetBuild(ctx context.Context, id string) (*domain.Build, error)
	UpdateBuildStatus(ctx context.Context, id string, status domain.BuildStatus, buildErr string) error
}
