// Package store persists resumes, sessions, messages and build records in
// sqlite through gorm.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/resumeai/platform/internal/core/domain"
)

type Store struct {
	db *gorm.DB
}

// Open opens (and migrates) the sqlite database at path. Use ":memory:" for
// an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// An in-memory sqlite database exists per connection, so the pool must
	// not grow past one.
	if strings.Contains(path, ":memory:") {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access connection pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}
	if err := db.AutoMigrate(&resumeRecord{}, &sessionRecord{}, &messageRecord{}, &buildRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) SaveResume(ctx context.Context, r *domain.Resume) error {
	rec := resumeRecord{
		ID:         r.ID,
		Filename:   r.Filename,
		Digest:     r.Digest,
		Markdown:   r.Markdown,
		UploadedAt: r.UploadedAt,
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}
	return nil
}

func (s *Store) GetResume(ctx context.Context, id string) (*domain.Resume, error) {
	var rec resumeRecord
	err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrResumeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}
	return rec.toDomain(), nil
}

func (s *Store) CreateSession(ctx context.Context, sess *domain.Session) error {
	rec := sessionRecord{
		ID:        sess.ID,
		ResumeID:  sess.ResumeID,
		CreatedAt: sess.CreatedAt,
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (s *Store) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	var rec sessionRecord
	err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return rec.toDomain(), nil
}

func (s *Store) AttachResume(ctx context.Context, sessionID, resumeID string) error {
	res := s.db.WithContext(ctx).Model(&sessionRecord{}).
		Where("id = ?", sessionID).
		Update("resume_id", resumeID)
	if res.Error != nil {
		return fmt.Errorf("failed to attach resume: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (s *Store) ClearSession(ctx context.Context, sessionID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&sessionRecord{}).
			Where("id = ?", sessionID).
			Update("resume_id", "")
		if res.Error != nil {
			return fmt.Errorf("failed to detach resume: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrSessionNotFound
		}
		if err := tx.Where("session_id = ?", sessionID).Delete(&messageRecord{}).Error; err != nil {
			return fmt.Errorf("failed to delete messages: %w", err)
		}
		return nil
	})
}

func (s *Store) AppendMessage(ctx context.Context, m *domain.Message) error {
	rec := messageRecord{
		ID:        m.ID,
		SessionID: m.SessionID,
		Role:      string(m.Role),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

func (s *Store) ListMessages(ctx context.Context, sessionID string) ([]domain.Message, error) {
	var recs []messageRecord
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at asc").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	messages := make([]domain.Message, 0, len(recs))
	for _, rec := range recs {
		messages = append(messages, rec.toDomain())
	}
	return messages, nil
}

func (s *Store) CreateBuild(ctx context.Context, b *domain.Build) error {
	spec, err := json.Marshal(b.Spec)
	if err != nil {
		return fmt.Errorf("failed to encode image spec: %w", err)
	}
	rec := buildRecord{
		ID:        b.ID,
		RepoURL:   b.RepoURL,
		ImageRef:  b.ImageRef,
		Spec:      string(spec),
		Status:    string(b.Status),
		Error:     b.Error,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to create build: %w", err)
	}
	return nil
}

func (s *Store) GetBuild(ctx context.Context, id string) (*domain.Build, error) {
	var rec buildRecord
	err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrBuildNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load build: %w", err)
	}

	build := &domain.Build{
		ID:        rec.ID,
		RepoURL:   rec.RepoURL,
		ImageRef:  rec.ImageRef,
		Status:    domain.BuildStatus(rec.Status),
		Error:     rec.Error,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	if rec.Spec != "" {
		if err := json.Unmarshal([]byte(rec.Spec), &build.Spec); err != nil {
			return nil, fmt.Errorf("failed to decode image spec: %w", err)
		}
	}
	return build, nil
}

func (s *Store) UpdateBuildStatus(ctx context.Context, id string, status domain.BuildStatus, buildErr string) error {
	res := s.db.WithContext(ctx).Model(&buildRecord{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"error":      buildErr,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update build: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrBuildNotFound
	}
	return nil
}
