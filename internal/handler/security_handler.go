package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "github.com/agpt-coder/availability-checker/internal/errors"
	"github.com/agpt-coder/availability-checker/internal/service"
)

// SecurityHandler handles security settings endpoints.
type SecurityHandler struct {
	securityService service.SecurityService
}

// NewSecurityHandler creates a new security handler.
func NewSecurityHandler(securityService service.SecurityService) *SecurityHandler {
	return &SecurityHandler{securityService: securityService}
}

// UpdateSecuritySettingsRequest represents a policy update submitted by an
// administrator.
type UpdateSecuritySettingsRequest struct {
	EncryptionStandards    string `json:"encryptionStandards" validate:"required"`
	CommunicationProtocols string `json:"communicationProtocols" validate:"required"`
	ComplianceStandards    string `json:"complianceStandards" validate:"required"`
	AdminID                string `json:"adminId" validate:"required,uuid"`
}

// UpdateSecuritySettingsResponse reports the outcome of the update.
type UpdateSecuritySettingsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UpdateSecuritySettings godoc
// @Summary Update system security settings (administrators only)
// @Tags security
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateSecuritySettingsRequest true "Security settings"
// @Success 200 {object} UpdateSecuritySettingsResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /security/settings [put]
func (h *SecurityHandler) UpdateSecuritySettings(c echo.Context) error {
	var req UpdateSecuritySettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	adminID, err := uuid.Parse(req.AdminID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid admin ID",
			Code:  "INVALID_UUID",
		})
	}

	settings := service.SecuritySettings{
		EncryptionStandards:    req.EncryptionStandards,
		CommunicationProtocols: req.CommunicationProtocols,
		ComplianceStandards:    req.ComplianceStandards,
	}

	if err := h.securityService.UpdateSecuritySettings(c.Request().Context(), adminID, settings); err != nil {
		if err == service.ErrNotAdministrator {
			return c.JSON(http.StatusOK, UpdateSecuritySettingsResponse{
				Success: false,
				Message: "Unauthorized: User is not an administrator or doesn't exist.",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "failed to update security settings",
			Code:  "SECURITY_UPDATE_FAILED",
		})
	}

	return c.JSON(http.StatusOK, UpdateSecuritySettingsResponse{
		Success: true,
		Message: "Security settings updated successfully.",
	})
}
