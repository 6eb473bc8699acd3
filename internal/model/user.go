package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role classifies a user's access level.
type Role string

const (
	RoleAdministrator Role = "ADMINISTRATOR"
	RoleUser          Role = "USER"
)

// User represents a registered account. All other entities hang off it by
// foreign key and are removed with it.
type User struct {
	ID             uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	HashedPassword string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role           Role      `json:"role" gorm:"type:varchar(20);not null;default:'USER';index"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Profile             *Profile             `json:"profile,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	AvailabilitySlots   []AvailabilitySlot   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CalendarEvents      []CalendarEvent      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CalendarConnections []CalendarConnection `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Sessions            []Session            `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
