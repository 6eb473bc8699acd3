package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session records server-side validity of an issued token. The token's own
// signed expiry is independent; this row is the revocation authority after
// logout.
type Session struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	Token     string    `json:"-" gorm:"uniqueIndex;size:512;not null"`
	Valid     bool      `json:"valid" gorm:"default:true;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
