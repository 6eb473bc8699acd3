package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agpt-coder/availability-checker/internal/model"
)

// AvailabilityRepository defines availability slot persistence operations.
type AvailabilityRepository interface {
	Create(ctx context.Context, slot *model.AvailabilitySlot) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.AvailabilitySlot, error)
	Update(ctx context.Context, slot *model.AvailabilitySlot) error
	// DeleteOwned removes the slot only when both id and owner match, so the
	// ownership check and the delete are one statement.
	DeleteOwned(ctx context.Context, id, userID uuid.UUID) error
}

type availabilityRepository struct {
	db *gorm.DB
}

// NewAvailabilityRepository creates a new availability repository.
func NewAvailabilityRepository(db *gorm.DB) AvailabilityRepository {
	return &availabilityRepository{db: db}
}

func (r *availabilityRepository) Create(ctx context.Context, slot *model.AvailabilitySlot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *availabilityRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.AvailabilitySlot, error) {
	var slot model.AvailabilitySlot
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&slot).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *availabilityRepository) Update(ctx context.Context, slot *model.AvailabilitySlot) error {
	return r.db.WithContext(ctx).Save(slot).Error
}

func (r *availabilityRepository) DeleteOwned(ctx context.Context, id, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.AvailabilitySlot{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
