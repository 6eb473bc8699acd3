package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "github.com/agpt-coder/availability-checker/internal/errors"
	"github.com/agpt-coder/availability-checker/internal/model"
)

func TestAvailabilityService_AddAvailability(t *testing.T) {
	userID := uuid.New()
	t0 := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		startTime     time.Time
		endTime       time.Time
		setupMock     func(*MockAvailabilityRepository, *MockUserRepository)
		expectedError error
		expectCreate  bool
	}{
		{
			name:      "valid range creates a slot",
			startTime: t0,
			endTime:   t0.Add(time.Hour),
			setupMock: func(mSlots *MockAvailabilityRepository, mUsers *MockUserRepository) {
				mUsers.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
				mSlots.On("Create", mock.Anything, mock.AnythingOfType("*model.AvailabilitySlot")).Return(nil)
			},
			expectCreate: true,
		},
		{
			name:      "start one second after end",
			startTime: t0,
			endTime:   t0.Add(-time.Second),
			setupMock: func(mSlots *MockAvailabilityRepository, mUsers *MockUserRepository) {
				mUsers.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
			},
			expectedError: ErrInvalidTimeRange,
		},
		{
			name:      "start equal to end",
			startTime: t0,
			endTime:   t0,
			setupMock: func(mSlots *MockAvailabilityRepository, mUsers *MockUserRepository) {
				mUsers.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
			},
			expectedError: ErrInvalidTimeRange,
		},
		{
			name:      "unknown user",
			startTime: t0,
			endTime:   t0.Add(time.Hour),
			setupMock: func(mSlots *MockAvailabilityRepository, mUsers *MockUserRepository) {
				mUsers.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSlots := new(MockAvailabilityRepository)
			mockUsers := new(MockUserRepository)
			tt.setupMock(mockSlots, mockUsers)

			svc := NewAvailabilityService(mockSlots, mockUsers)
			slotID, err := svc.AddAvailability(context.Background(), userID, tt.startTime, tt.endTime, model.StatusAvailable)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Equal(t, uuid.Nil, slotID)
			} else {
				assert.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, slotID)
			}

			if !tt.expectCreate {
				// A rejected request must not create a row.
				mockSlots.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
			mockSlots.AssertExpectations(t)
			mockUsers.AssertExpectations(t)
		})
	}
}

func TestAvailabilityService_UpdateAvailability(t *testing.T) {
	slotID := uuid.New()
	userID := uuid.New()
	t0 := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("rewrites start, end and status", func(t *testing.T) {
		mockSlots := new(MockAvailabilityRepository)
		mockUsers := new(MockUserRepository)
		mockSlots.On("FindByID", mock.Anything, slotID).Return(&model.AvailabilitySlot{
			ID:     slotID,
			UserID: userID,
			Status: model.StatusAvailable,
		}, nil)
		mockSlots.On("Update", mock.Anything, mock.AnythingOfType("*model.AvailabilitySlot")).Return(nil)

		svc := NewAvailabilityService(mockSlots, mockUsers)
		slot, err := svc.UpdateAvailability(context.Background(), slotID, t0, t0.Add(time.Hour), model.StatusInAMeeting)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusInAMeeting, slot.Status)
		assert.Equal(t, t0, slot.StartTime)
		mockSlots.AssertExpectations(t)
	})

	// The update path deliberately skips temporal re-validation; an
	// inverted range is written as-is.
	t.Run("inverted range is accepted", func(t *testing.T) {
		mockSlots := new(MockAvailabilityRepository)
		mockUsers := new(MockUserRepository)
		mockSlots.On("FindByID", mock.Anything, slotID).Return(&model.AvailabilitySlot{
			ID:     slotID,
			UserID: userID,
		}, nil)
		mockSlots.On("Update", mock.Anything, mock.AnythingOfType("*model.AvailabilitySlot")).Return(nil)

		svc := NewAvailabilityService(mockSlots, mockUsers)
		slot, err := svc.UpdateAvailability(context.Background(), slotID, t0, t0.Add(-time.Hour), model.StatusOnABreak)

		assert.NoError(t, err)
		assert.True(t, slot.EndTime.Before(slot.StartTime))
	})

	t.Run("store failure surfaces as error", func(t *testing.T) {
		mockSlots := new(MockAvailabilityRepository)
		mockUsers := new(MockUserRepository)
		mockSlots.On("FindByID", mock.Anything, slotID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewAvailabilityService(mockSlots, mockUsers)
		slot, err := svc.UpdateAvailability(context.Background(), slotID, t0, t0.Add(time.Hour), model.StatusAvailable)

		assert.Error(t, err)
		assert.Nil(t, slot)
	})
}

func TestAvailabilityService_DeleteAvailability(t *testing.T) {
	slotID := uuid.New()
	userID := uuid.New()

	t.Run("deletes an owned slot", func(t *testing.T) {
		mockSlots := new(MockAvailabilityRepository)
		mockUsers := new(MockUserRepository)
		mockSlots.On("DeleteOwned", mock.Anything, slotID, userID).Return(nil)

		svc := NewAvailabilityService(mockSlots, mockUsers)
		assert.NoError(t, svc.DeleteAvailability(context.Background(), slotID, userID))
		mockSlots.AssertExpectations(t)
	})

	t.Run("missing or unowned slot", func(t *testing.T) {
		mockSlots := new(MockAvailabilityRepository)
		mockUsers := new(MockUserRepository)
		mockSlots.On("DeleteOwned", mock.Anything, slotID, userID).Return(gorm.ErrRecordNotFound)

		svc := NewAvailabilityService(mockSlots, mockUsers)
		err := svc.DeleteAvailability(context.Background(), slotID, userID)
		assert.Equal(t, apperrors.ErrSlotNotFound, err)
	})

	t.Run("store error is wrapped", func(t *testing.T) {
		mockSlots := new(MockAvailabilityRepository)
		mockUsers := new(MockUserRepository)
		storeErr := errors.New("connection reset")
		mockSlots.On("DeleteOwned", mock.Anything, slotID, userID).Return(storeErr)

		svc := NewAvailabilityService(mockSlots, mockUsers)
		err := svc.DeleteAvailability(context.Background(), slotID, userID)
		assert.True(t, errors.Is(err, storeErr))
	})
}
