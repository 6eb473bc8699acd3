package handler

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "github.com/agpt-coder/availability-checker/internal/errors"
	"github.com/agpt-coder/availability-checker/internal/service"
)

// CalendarHandler handles calendar integration endpoints.
type CalendarHandler struct {
	calendarService service.CalendarService
}

// NewCalendarHandler creates a new calendar handler.
func NewCalendarHandler(calendarService service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

// ConnectCalendarRequest represents a provider connection request.
type ConnectCalendarRequest struct {
	UserID             string `json:"userId" validate:"required,uuid"`
	ServiceProvider    string `json:"serviceProvider" validate:"required"`
	AuthorizationToken string `json:"authorizationToken"`
}

// ConnectCalendarResponse reports the outcome of a connection attempt.
type ConnectCalendarResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	ServiceAccountID string `json:"serviceAccountId,omitempty"`
}

// SyncCalendarRequest represents a calendar sync request.
type SyncCalendarRequest struct {
	UserID       string `json:"userId" validate:"required,uuid"`
	ServiceName  string `json:"serviceName" validate:"required"`
	AccessToken  string `json:"accessToken" validate:"required"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// SyncCalendarResponse reports the outcome of a sync attempt.
type SyncCalendarResponse struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	SyncedEventsCount int    `json:"syncedEventsCount"`
}

// ConnectCalendarService godoc
// @Summary Connect a user to an external calendar provider
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ConnectCalendarRequest true "Connection data"
// @Success 200 {object} ConnectCalendarResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /calendar/connect [post]
func (h *CalendarHandler) ConnectCalendarService(c echo.Context) error {
	var req ConnectCalendarRequest
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

	accountID, err := h.calendarService.ConnectCalendarService(c.Request().Context(), userID, req.ServiceProvider, req.AuthorizationToken)
	if err != nil {
		if err == service.ErrUnsupportedProvider {
			return c.JSON(http.StatusOK, ConnectCalendarResponse{
				Success: false,
				Message: "Failed to connect to the calendar service. Please check the service provider or authorization token.",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "failed to connect calendar service",
			Code:  "CALENDAR_CONNECT_FAILED",
		})
	}

	return c.JSON(http.StatusOK, ConnectCalendarResponse{
		Success:          true,
		Message:          fmt.Sprintf("Successfully connected to %s Calendar.", req.ServiceProvider),
		ServiceAccountID: accountID,
	})
}

// SyncCalendarEvents godoc
// @Summary Fetch and store events from a connected calendar service
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SyncCalendarRequest true "Sync data"
// @Success 200 {object} SyncCalendarResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /calendar/sync [post]
func (h *CalendarHandler) SyncCalendarEvents(c echo.Context) error {
	var req SyncCalendarRequest
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

	count, err := h.calendarService.SyncCalendarEvents(c.Request().Context(), userID, req.ServiceName, req.AccessToken, req.RefreshToken)
	if err != nil {
		message := "Failed to fetch events from external service."
		if err == service.ErrNoEvents {
			message = "No new events to synchronize."
		}
		return c.JSON(http.StatusOK, SyncCalendarResponse{
			Success:           false,
			Message:           message,
			SyncedEventsCount: 0,
		})
	}

	return c.JSON(http.StatusOK, SyncCalendarResponse{
		Success:           true,
		Message:           "Events synchronized successfully.",
		SyncedEventsCount: count,
	})
}
