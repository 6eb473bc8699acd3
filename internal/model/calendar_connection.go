package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CalendarConnection is the durable record of a user's link to an external
// calendar provider, written when the connection is established so a later
// sync knows which provider and account to use.
type CalendarConnection struct {
	ID               uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID           uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index;uniqueIndex:idx_user_provider"`
	Provider         string    `json:"provider" gorm:"size:50;not null;uniqueIndex:idx_user_provider"`
	ServiceAccountID string    `json:"service_account_id" gorm:"size:255;not null"`
	AccessToken      string    `json:"-" gorm:"size:1024;not null"`
	RefreshToken     string    `json:"-" gorm:"size:1024"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (c *CalendarConnection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
