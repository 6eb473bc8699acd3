package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityStatus is the closed set of slot statuses. It is opaque
// business data; any status may transition to any other.
type AvailabilityStatus string

const (
	StatusAvailable     AvailabilityStatus = "AVAILABLE"
	StatusUnavailable   AvailabilityStatus = "UNAVAILABLE"
	StatusInAMeeting    AvailabilityStatus = "IN_A_MEETING"
	StatusOnABreak      AvailabilityStatus = "ON_A_BREAK"
	StatusEmergencyOnly AvailabilityStatus = "EMERGENCY_ONLY"
)

// Valid reports whether s is one of the known statuses.
func (s AvailabilityStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusUnavailable, StatusInAMeeting, StatusOnABreak, StatusEmergencyOnly:
		return true
	}
	return false
}

// AvailabilitySlot is a time-bounded availability record for a user.
// Invariant: StartTime < EndTime, checked at creation.
type AvailabilitySlot struct {
	ID        uuid.UUID          `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID          `json:"user_id" gorm:"type:char(36);not null;index"`
	StartTime time.Time          `json:"start_time" gorm:"not null"`
	EndTime   time.Time          `json:"end_time" gorm:"not null"`
	Status    AvailabilityStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (a *AvailabilitySlot) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
