package main

import (
	"log"
	"net/http"
	"time"

	_ "github.com/agpt-coder/availability-checker/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/agpt-coder/availability-checker/internal/auth"
	"github.com/agpt-coder/availability-checker/internal/cache"
	"github.com/agpt-coder/availability-checker/internal/calendar"
	"github.com/agpt-coder/availability-checker/internal/config"
	"github.com/agpt-coder/availability-checker/internal/db"
	"github.com/agpt-coder/availability-checker/internal/handler"
	"github.com/agpt-coder/availability-checker/internal/model"
	"github.com/agpt-coder/availability-checker/internal/repository"
	"github.com/agpt-coder/availability-checker/internal/router"
	"github.com/agpt-coder/availability-checker/internal/service"
)

// @title Availability Checker API
// @version 1.0
// @description REST backend for tracking professional availability with calendar integration and session authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			log.Printf("database close: %v", err)
		}
	}()

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Session{},
		&model.AvailabilitySlot{},
		&model.CalendarEvent{},
		&model.CalendarConnection{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)
	sessionRepo := repository.NewSessionRepository(gormDB)
	availabilityRepo := repository.NewAvailabilityRepository(gormDB)
	eventRepo := repository.NewCalendarEventRepository(gormDB)
	connectionRepo := repository.NewCalendarConnectionRepository(gormDB)

	// Initialize auth and outbound components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	calendarClient := calendar.NewClient(time.Duration(cfg.CalendarTimeoutSec) * time.Second)

	// Initialize services
	authService := service.NewAuthService(userRepo, sessionRepo, jwtService)
	profileService := service.NewProfileService(profileRepo, userRepo, cacheClient)
	availabilityService := service.NewAvailabilityService(availabilityRepo, userRepo)
	calendarService := service.NewCalendarService(eventRepo, connectionRepo, calendarClient)
	securityService := service.NewSecurityService(userRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityService)
	calendarHandler := handler.NewCalendarHandler(calendarService)
	securityHandler := handler.NewSecurityHandler(securityService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		profileHandler,
		availabilityHandler,
		calendarHandler,
		securityHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
