package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "github.com/agpt-coder/availability-checker/internal/errors"
	"github.com/agpt-coder/availability-checker/internal/model"
	"github.com/agpt-coder/availability-checker/internal/service"
)

// ProfileHandler handles profile endpoints.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// CreateProfileRequest represents a profile creation request.
type CreateProfileRequest struct {
	UserID     string `json:"userId" validate:"required,uuid"`
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Profession string `json:"profession" validate:"required"`
}

// CreateProfileResponse represents a created profile.
type CreateProfileResponse struct {
	ProfileID  uuid.UUID `json:"profileId"`
	UserID     uuid.UUID `json:"userId"`
	CreatedAt  time.Time `json:"createdAt"`
	Profession string    `json:"profession"`
	Status     string    `json:"status"`
}

// UpdateProfileRequest represents a partial profile update. Omitted fields
// are left unchanged.
type UpdateProfileRequest struct {
	FirstName  *string `json:"firstName,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
	Profession *string `json:"profession,omitempty"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
}

// UpdateProfileResponse reports the fields actually changed.
type UpdateProfileResponse struct {
	Success       bool              `json:"success"`
	Message       string            `json:"message"`
	UpdatedFields map[string]string `json:"updatedFields"`
}

// DeleteProfileResponse represents the outcome of a profile deletion.
type DeleteProfileResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreateProfile godoc
// @Summary Create a profile for an existing user
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateProfileRequest true "Profile data"
// @Success 201 {object} CreateProfileResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/profile [post]
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	var req CreateProfileRequest
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

	profession := model.Profession(req.Profession)
	if !profession.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "unknown profession",
			Code:  "INVALID_PROFESSION",
		})
	}

	profile, err := h.profileService.CreateProfile(c.Request().Context(), userID, req.FirstName, req.LastName, req.Email, profession)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, CreateProfileResponse{
		ProfileID:  profile.ID,
		UserID:     userID,
		CreatedAt:  profile.CreatedAt,
		Profession: string(profile.Profession),
		Status:     "Success",
	})
}

// ViewProfile godoc
// @Summary Retrieve a user's profile details
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} service.ProfileView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/profile/{userId} [get]
func (h *ProfileHandler) ViewProfile(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid user ID",
			Code:  "INVALID_UUID",
		})
	}

	view, err := h.profileService.ViewProfile(c.Request().Context(), userID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, view)
}

// UpdateProfile godoc
// @Summary Partially update a user's profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param request body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} UpdateProfileResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/profile/{userId} [put]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid user ID",
			Code:  "INVALID_UUID",
		})
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.Profession != nil && !model.Profession(*req.Profession).Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "unknown profession",
			Code:  "INVALID_PROFESSION",
		})
	}

	update := service.ProfileUpdate{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Profession: req.Profession,
		Email:      req.Email,
	}

	updatedFields, err := h.profileService.UpdateProfile(c.Request().Context(), userID, update)
	if err != nil {
		if err == apperrors.ErrUserNotFound {
			return c.JSON(http.StatusOK, UpdateProfileResponse{
				Success:       false,
				Message:       "User not found",
				UpdatedFields: map[string]string{},
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "failed to update profile",
			Code:  "PROFILE_UPDATE_FAILED",
		})
	}

	return c.JSON(http.StatusOK, UpdateProfileResponse{
		Success:       true,
		Message:       "Profile updated successfully",
		UpdatedFields: updatedFields,
	})
}

// DeleteProfile godoc
// @Summary Delete a user and everything it owns
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} DeleteProfileResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/profile/{userId} [delete]
func (h *ProfileHandler) DeleteProfile(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid user ID",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.profileService.DeleteProfile(c.Request().Context(), userID); err != nil {
		// Deletion failures are downgraded to a reported result carrying the
		// underlying error text.
		return c.JSON(http.StatusOK, DeleteProfileResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to delete user profile with ID %s. Error: %v", userID, err),
		})
	}

	return c.JSON(http.StatusOK, DeleteProfileResponse{
		Success: true,
		Message: fmt.Sprintf("User profile with ID %s has been successfully deleted.", userID),
	})
}
