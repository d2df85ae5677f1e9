package store

import (
	"time"

	"github.com/resumeai/platform/internal/core/domain"
)

type resumeRecord struct {
	ID         string `gorm:"primaryKey"`
	Filename   string
	Digest     string `gorm:"index"`
	Markdown   string
	UploadedAt time.Time
}

func (resumeRecord) TableName() string { return "resumes" }

type sessionRecord struct {
	ID        string `gorm:"primaryKey"`
	ResumeID  string
	CreatedAt time.Time
}

func (sessionRecord) TableName() string { return "sessions" }

type messageRecord struct {
	ID        string `gorm:"primaryKey"`
	SessionID string `gorm:"index"`
	Role      string
	Content   string
	CreatedAt time.Time
}

func (messageRecord) TableName() string { return "messages" }

type buildRecord struct {
	ID        string `gorm:"primaryKey"`
	RepoURL   string
	ImageRef  string
	Spec      string // ImageSpec as JSON
	Status    string
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (buildRecord) TableName() string { return "builds" }

func (r resumeRecord) toDomain() *domain.Resume {
	return &domain.Resume{
		ID:         r.ID,
		Filename:   r.Filename,
		Digest:     r.Digest,
		Markdown:   r.Markdown,
		UploadedAt: r.UploadedAt,
	}
}

func (s sessionRecord) toDomain() *domain.Session {
	return &domain.Session{
		ID:        s.ID,
		ResumeID:  s.ResumeID,
		CreatedAt: s.CreatedAt,
	}
}

func (m messageRecord) toDomain() domain.Message {
	return domain.Message{
		ID:        m.ID,
		SessionID: m.SessionID,
		Role:      domain.Role(m.Role),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}
