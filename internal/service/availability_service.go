package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/agpt-coder/availability-checker/internal/errors"
	"github.com/agpt-coder/availability-checker/internal/model"
	"github.com/agpt-coder/availability-checker/internal/repository"
)

// ErrInvalidTimeRange is returned when a slot's start does not precede its
// end.
var ErrInvalidTimeRange = errors.New("Start time must be before end time.")

// AvailabilityService handles availability slot operations.
type AvailabilityService interface {
	AddAvailability(ctx context.Context, userID uuid.UUID, startTime, endTime time.Time, status model.AvailabilityStatus) (uuid.UUID, error)
	// UpdateAvailability writes start/end/status unconditionally; the
	// temporal ordering is only enforced at creation.
	UpdateAvailability(ctx context.Context, slotID uuid.UUID, startTime, endTime time.Time, status model.AvailabilityStatus) (*model.AvailabilitySlot, error)
	DeleteAvailability(ctx context.Context, slotID, userID uuid.UUID) error
}

type availabilityService struct {
	slotRepo repository.AvailabilityRepository
	userRepo repository.UserRepository
}

// NewAvailabilityService creates a new availability service.
func NewAvailabilityService(slotRepo repository.AvailabilityRepository, userRepo repository.UserRepository) AvailabilityService {
	return &availabilityService{
		slotRepo: slotRepo,
		userRepo: userRepo,
	}
}

// AddAvailability creates a slot for an existing user after checking the
// time ordering. An unknown user is a hard failure, a bad range a soft one.
func (s *availabilityService) AddAvailability(ctx context.Context, userID uuid.UUID, startTime, endTime time.Time, status model.AvailabilityStatus) (uuid.UUID, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, apperrors.ErrUserNotFound
		}
		return uuid.Nil, fmt.Errorf("find user: %w", err)
	}

	if !startTime.Before(endTime) {
		return uuid.Nil, ErrInvalidTimeRange
	}

	slot := &model.AvailabilitySlot{
		UserID:    userID,
		StartTime: startTime,
		EndTime:   endTime,
		Status:    status,
	}
	if err := s.slotRepo.Create(ctx, slot); err != nil {
		return uuid.Nil, fmt.Errorf("create slot: %w", err)
	}

	return slot.ID, nil
}

// UpdateAvailability loads and rewrites the slot. Any store failure is
// returned for the caller to downgrade to a soft result.
func (s *availabilityService) UpdateAvailability(ctx context.Context, slotID uuid.UUID, startTime, endTime time.Time, status model.AvailabilityStatus) (*model.AvailabilitySlot, error) {
	slot, err := s.slotRepo.FindByID(ctx, slotID)
	if err != nil {
		return nil, fmt.Errorf("find slot: %w", err)
	}

	slot.StartTime = startTime
	slot.EndTime = endTime
	slot.Status = status

	if err := s.slotRepo.Update(ctx, slot); err != nil {
		return nil, fmt.Errorf("update slot: %w", err)
	}
	return slot, nil
}

// DeleteAvailability deletes the slot only when it exists and belongs to
// the user; not-found and unauthorized are indistinguishable.
func (s *availabilityService) DeleteAvailability(ctx context.Context, slotID, userID uuid.UUID) error {
	if err := s.slotRepo.DeleteOwned(ctx, slotID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSlotNotFound
		}
		return fmt.Errorf("delete slot: %w", err)
	}
	return nil
}
