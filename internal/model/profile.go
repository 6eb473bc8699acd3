package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profession is the closed set of professional roles the system tracks.
type Profession string

const (
	ProfessionHealthcareProfessional        Profession = "HEALTHCARE_PROFESSIONAL"
	ProfessionEmergencyServicesPersonnel    Profession = "EMERGENCY_SERVICES_PERSONNEL"
	ProfessionITSupportSpecialist           Profession = "IT_SUPPORT_SPECIALIST"
	ProfessionCustomerServiceRepresentative Profession = "CUSTOMER_SERVICE_REPRESENTATIVE"
)

// Valid reports whether p is one of the known professions.
func (p Profession) Valid() bool {
	switch p {
	case ProfessionHealthcareProfessional,
		ProfessionEmergencyServicesPersonnel,
		ProfessionITSupportSpecialist,
		ProfessionCustomerServiceRepresentative:
		return true
	}
	return false
}

// Profile holds a user's personal and professional details. One per user;
// the owning User carries the email, so email uniqueness is enforced there.
type Profile struct {
	ID         uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	UserID     uuid.UUID  `json:"user_id" gorm:"type:char(36);uniqueIndex;not null"`
	FirstName  string     `json:"first_name" gorm:"size:255;not null"`
	LastName   string     `json:"last_name" gorm:"size:255;not null"`
	Profession Profession `json:"profession" gorm:"type:varchar(40);not null"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
