package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/agpt-coder/availability-checker/internal/model"
)

// CalendarEventRepository defines calendar event persistence operations.
type CalendarEventRepository interface {
	// Upsert writes the event keyed on (user_id, external_id); a repeated
	// sync refreshes the stored copy instead of duplicating it.
	Upsert(ctx context.Context, event *model.CalendarEvent) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]model.CalendarEvent, error)
}

type calendarEventRepository struct {
	db *gorm.DB
}

// NewCalendarEventRepository creates a new calendar event repository.
func NewCalendarEventRepository(db *gorm.DB) CalendarEventRepository {
	return &calendarEventRepository{db: db}
}

func (r *calendarEventRepository) Upsert(ctx context.Context, event *model.CalendarEvent) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"summary", "description", "start", "end", "location", "url", "synced_at",
		}),
	}).Create(event).Error
}

func (r *calendarEventRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]model.CalendarEvent, error) {
	var events []model.CalendarEvent
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// CalendarConnectionRepository defines provider linkage persistence operations.
type CalendarConnectionRepository interface {
	// Upsert keeps one connection per (user, provider), refreshing tokens on
	// reconnect.
	Upsert(ctx context.Context, conn *model.CalendarConnection) error
	FindByUserAndProvider(ctx context.Context, userID uuid.UUID, provider string) (*model.CalendarConnection, error)
}

type calendarConnectionRepository struct {
	db *gorm.DB
}

// NewCalendarConnectionRepository creates a new calendar connection repository.
func NewCalendarConnectionRepository(db *gorm.DB) CalendarConnectionRepository {
	return &calendarConnectionRepository{db: db}
}

func (r *calendarConnectionRepository) Upsert(ctx context.Context, conn *model.CalendarConnection) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "provider"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"service_account_id", "access_token", "refresh_token",
		}),
	}).Create(conn).Error
}

func (r *calendarConnectionRepository) FindByUserAndProvider(ctx context.Context, userID uuid.UUID, provider string) (*model.CalendarConnection, error) {
	var conn model.CalendarConnection
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider).
		First(&conn).Error; err != nil {
		return nil, err
	}
	return &conn, nil
}
