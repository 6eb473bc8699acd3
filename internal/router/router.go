package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/agpt-coder/availability-checker/internal/config"
	"github.com/agpt-coder/availability-checker/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	availabilityHandler *handler.AvailabilityHandler,
	calendarHandler *handler.CalendarHandler,
	securityHandler *handler.SecurityHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require a session token)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	// Profile routes
	secured.POST("/users/profile", profileHandler.CreateProfile)
	secured.GET("/users/profile/:userId", profileHandler.ViewProfile)
	secured.PUT("/users/profile/:userId", profileHandler.UpdateProfile)
	secured.DELETE("/users/profile/:userId", profileHandler.DeleteProfile)

	// Availability routes
	secured.POST("/users/availability", availabilityHandler.AddAvailability)
	secured.PUT("/users/availability/:slotId", availabilityHandler.UpdateAvailability)
	secured.DELETE("/users/availability/:slotId", availabilityHandler.DeleteAvailability)

	// Calendar routes
	secured.POST("/calendar/connect", calendarHandler.ConnectCalendarService)
	secured.POST("/calendar/sync", calendarHandler.SyncCalendarEvents)

	// Security routes
	secured.PUT("/security/settings", securityHandler.UpdateSecuritySettings)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
