package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/agpt-coder/availability-checker/internal/model"
)

// SessionRepository defines session persistence operations. Sessions are
// invalidated, not deleted, so logout stays idempotent-failing.
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	FindByToken(ctx context.Context, token string) (*model.Session, error)
	Invalidate(ctx context.Context, token string) error
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *model.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) FindByToken(ctx context.Context, token string) (*model.Session, error) {
	var session model.Session
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) Invalidate(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Model(&model.Session{}).
		Where("token = ?", token).
		Update("valid", false).Error
}
