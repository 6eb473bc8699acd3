package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agpt-coder/availability-checker/internal/model"
	"github.com/agpt-coder/availability-checker/internal/repository"
)

// ErrNotAdministrator is returned when the requester is missing or not an
// administrator.
var ErrNotAdministrator = errors.New("unauthorized: user is not an administrator or doesn't exist")

// SecuritySettings holds the policy values an administrator submits.
type SecuritySettings struct {
	EncryptionStandards    string
	CommunicationProtocols string
	ComplianceStandards    string
}

// SecurityService handles administrator-only policy updates.
type SecurityService interface {
	UpdateSecuritySettings(ctx context.Context, adminID uuid.UUID, settings SecuritySettings) error
}

type securityService struct {
	userRepo repository.UserRepository
}

// NewSecurityService creates a new security service.
func NewSecurityService(userRepo repository.UserRepository) SecurityService {
	return &securityService{userRepo: userRepo}
}

// UpdateSecuritySettings verifies the requester's role and acknowledges the
// submitted policy values. There is no settings table to mutate.
func (s *securityService) UpdateSecuritySettings(ctx context.Context, adminID uuid.UUID, settings SecuritySettings) error {
	admin, err := s.userRepo.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotAdministrator
		}
		return fmt.Errorf("find administrator: %w", err)
	}
	if admin.Role != model.RoleAdministrator {
		return ErrNotAdministrator
	}
	return nil
}
