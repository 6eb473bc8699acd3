package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CalendarEvent mirrors an event fetched from an external calendar service.
// One row per (user, external id); repeated syncs update in place.
type CalendarEvent struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index;uniqueIndex:idx_user_external"`
	ExternalID  string    `json:"external_id" gorm:"size:255;not null;uniqueIndex:idx_user_external"`
	Summary     string    `json:"summary" gorm:"size:512;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Start       time.Time `json:"start" gorm:"not null"`
	End         time.Time `json:"end" gorm:"not null"`
	Location    string    `json:"location" gorm:"size:512"`
	URL         string    `json:"url" gorm:"size:1024"`
	SyncedAt    time.Time `json:"synced_at" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (e *CalendarEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
