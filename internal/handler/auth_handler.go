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

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// OAuthCredentialsRequest carries optional calendar credentials supplied at
// registration.
type OAuthCredentialsRequest struct {
	ServiceProvider string `json:"serviceProvider" validate:"required"`
	AccessToken     string `json:"accessToken" validate:"required"`
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email            string                   `json:"email" validate:"required,email"`
	Password         string                   `json:"password" validate:"required,min=6"`
	FirstName        string                   `json:"firstName" validate:"required"`
	LastName         string                   `json:"lastName" validate:"required"`
	Profession       string                   `json:"profession" validate:"required"`
	OAuthCredentials *OAuthCredentialsRequest `json:"oauthCredentials,omitempty"`
}

// RegisterResponse represents the outcome of a registration attempt.
type RegisterResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	UserID  *uuid.UUID `json:"userId,omitempty"`
	Email   string     `json:"email,omitempty"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued session token and its absolute expiry.
type LoginResponse struct {
	SessionToken string    `json:"sessionToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// LogoutRequest represents a logout request.
type LogoutRequest struct {
	SessionToken string `json:"sessionToken" validate:"required"`
}

// LogoutResponse represents the outcome of a logout attempt.
type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Register godoc
// @Summary Register a new user with their profile
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} RegisterResponse
// @Success 200 {object} RegisterResponse "Email already in use"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profession := model.Profession(req.Profession)
	if !profession.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "unknown profession",
			Code:  "INVALID_PROFESSION",
		})
	}

	input := service.RegisterInput{
		Email:      req.Email,
		Password:   req.Password,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Profession: profession,
	}
	if req.OAuthCredentials != nil {
		input.OAuthCredentials = &service.OAuthCredentials{
			ServiceProvider: req.OAuthCredentials.ServiceProvider,
			AccessToken:     req.OAuthCredentials.AccessToken,
		}
	}

	user, err := h.authService.Register(c.Request().Context(), input)
	if err != nil {
		if err == apperrors.ErrEmailAlreadyInUse {
			return c.JSON(http.StatusOK, RegisterResponse{
				Success: false,
				Message: "Email already in use",
				Email:   req.Email,
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "failed to register user",
			Code:  "REGISTRATION_FAILED",
		})
	}

	return c.JSON(http.StatusCreated, RegisterResponse{
		Success: true,
		Message: "Registration successful",
		UserID:  &user.ID,
		Email:   user.Email,
	})
}

// Login godoc
// @Summary Authenticate and issue a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, expiresAt, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, LoginResponse{
		SessionToken: token,
		ExpiresAt:    expiresAt,
	})
}

// Logout godoc
// @Summary Invalidate the current session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LogoutRequest true "Session token"
// @Success 200 {object} LogoutResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var req LogoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.Logout(c.Request().Context(), req.SessionToken); err != nil {
		if err == service.ErrSessionInvalid {
			return c.JSON(http.StatusOK, LogoutResponse{
				Success: false,
				Message: "Session token is invalid or already logged out.",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "failed to logout",
			Code:  "LOGOUT_FAILED",
		})
	}

	return c.JSON(http.StatusOK, LogoutResponse{
		Success: true,
		Message: "Successfully logged out.",
	})
}
