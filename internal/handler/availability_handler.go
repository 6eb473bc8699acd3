package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "github.com/agpt-coder/availability-checker/internal/errors"
	"github.com/agpt-coder/availability-checker/internal/model"
	"github.com/agpt-coder/availability-checker/internal/service"
)

// AvailabilityHandler handles availability slot endpoints.
type AvailabilityHandler struct {
	availabilityService service.AvailabilityService
}

// NewAvailabilityHandler creates a new availability handler.
func NewAvailabilityHandler(availabilityService service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityService: availabilityService}
}

// AddAvailabilityRequest represents a slot creation request.
type AddAvailabilityRequest struct {
	UserID    string    `json:"userId" validate:"required,uuid"`
	StartTime time.Time `json:"startTime" validate:"required"`
	EndTime   time.Time `json:"endTime" validate:"required"`
	Status    string    `json:"status" validate:"required"`
}

// AddAvailabilityResponse reports the outcome of a slot creation.
type AddAvailabilityResponse struct {
	Message            string     `json:"message"`
	AvailabilitySlotID *uuid.UUID `json:"availabilitySlotId,omitempty"`
	Error              string     `json:"error,omitempty"`
}

// UpdateAvailabilityRequest represents a slot update request.
type UpdateAvailabilityRequest struct {
	StartTime time.Time `json:"startTime" validate:"required"`
	EndTime   time.Time `json:"endTime" validate:"required"`
	Status    string    `json:"status" validate:"required"`
}

// SlotDetails is the wire shape of an availability slot.
type SlotDetails struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`
}

// UpdateAvailabilityResponse reports the outcome of a slot update.
type UpdateAvailabilityResponse struct {
	Success            bool         `json:"success"`
	UpdatedSlotDetails *SlotDetails `json:"updatedSlotDetails,omitempty"`
}

// DeleteAvailabilityResponse reports the outcome of a slot deletion.
type DeleteAvailabilityResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AddAvailability godoc
// @Summary Add an availability slot to a user's schedule
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddAvailabilityRequest true "Slot data"
// @Success 201 {object} AddAvailabilityResponse
// @Success 200 {object} AddAvailabilityResponse "Invalid time range"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/availability [post]
func (h *AvailabilityHandler) AddAvailability(c echo.Context) error {
	var req AddAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid user ID",
			Code:  "INVALID_UUID",
		})
	}

	status := model.AvailabilityStatus(req.Status)
	if !status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "unknown availability status",
			Code:  "INVALID_STATUS",
		})
	}

	slotID, err := h.availabilityService.AddAvailability(c.Request().Context(), userID, req.StartTime, req.EndTime, status)
	if err != nil {
		if err == service.ErrInvalidTimeRange {
			return c.JSON(http.StatusOK, AddAvailabilityResponse{
				Message: "Failure",
				Error:   "Start time must be before end time.",
			})
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, AddAvailabilityResponse{
		Message:            "Success",
		AvailabilitySlotID: &slotID,
	})
}

// UpdateAvailability godoc
// @Summary Update an availability slot
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slotId path string true "Slot ID"
// @Param request body UpdateAvailabilityRequest true "Updated slot data"
// @Success 200 {object} UpdateAvailabilityResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/availability/{slotId} [put]
func (h *AvailabilityHandler) UpdateAvailability(c echo.Context) error {
	slotID, err := uuid.Parse(c.Param("slotId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid slot ID",
			Code:  "INVALID_UUID",
		})
	}

	var req UpdateAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status := model.AvailabilityStatus(req.Status)
	if !status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "unknown availability status",
			Code:  "INVALID_STATUS",
		})
	}

	slot, err := h.availabilityService.UpdateAvailability(c.Request().Context(), slotID, req.StartTime, req.EndTime, status)
	if err != nil {
		// Store failures, including a missing slot, are reported as an
		// unsuccessful result without detail.
		return c.JSON(http.StatusOK, UpdateAvailabilityResponse{Success: false})
	}

	return c.JSON(http.StatusOK, UpdateAvailabilityResponse{
		Success: true,
		UpdatedSlotDetails: &SlotDetails{
			ID:        slot.ID,
			UserID:    slot.UserID,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Status:    string(slot.Status),
		},
	})
}

// DeleteAvailability godoc
// @Summary Remove an availability slot
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param slotId path string true "Slot ID"
// @Param userId query string true "Owning user ID"
// @Success 200 {object} DeleteAvailabilityResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/availability/{slotId} [delete]
func (h *AvailabilityHandler) DeleteAvailability(c echo.Context) error {
	slotID, err := uuid.Parse(c.Param("slotId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid slot ID",
			Code:  "INVALID_UUID",
		})
	}

	userID, err := uuid.Parse(c.QueryParam("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid user ID",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.availabilityService.DeleteAvailability(c.Request().Context(), slotID, userID); err != nil {
		// Not-found and not-owned are deliberately indistinguishable.
		return c.JSON(http.StatusOK, DeleteAvailabilityResponse{
			Success: false,
			Message: "Availability slot not found or unauthorized action.",
		})
	}

	return c.JSON(http.StatusOK, DeleteAvailabilityResponse{
		Success: true,
		Message: "Availability slot successfully deleted.",
	})
}
