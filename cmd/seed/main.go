package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/agpt-coder/availability-checker/internal/config"
	"github.com/agpt-coder/availability-checker/internal/db"
	"github.com/agpt-coder/availability-checker/internal/model"
	"github.com/agpt-coder/availability-checker/internal/repository"
)

// seedUser describes a demo account created by the seed script.
type seedUser struct {
	Email      string
	Password   string
	FirstName  string
	LastName   string
	Profession model.Profession
	Role       model.Role
}

var seedUsers = []seedUser{
	{
		Email:      "admin@availapro.dev",
		Password:   "admin-password",
		FirstName:  "Ada",
		LastName:   "Admin",
		Profession: model.ProfessionITSupportSpecialist,
		Role:       model.RoleAdministrator,
	},
	{
		Email:      "nurse@availapro.dev",
		Password:   "demo-password",
		FirstName:  "Noor",
		LastName:   "Reyes",
		Profession: model.ProfessionHealthcareProfessional,
		Role:       model.RoleUser,
	},
	{
		Email:      "support@availapro.dev",
		Password:   "demo-password",
		FirstName:  "Sam",
		LastName:   "Okafor",
		Profession: model.ProfessionCustomerServiceRepresentative,
		Role:       model.RoleUser,
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Session{},
		&model.AvailabilitySlot{},
		&model.CalendarEvent{},
		&model.CalendarConnection{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	slotRepo := repository.NewAvailabilityRepository(gormDB)
	ctx := context.Background()

	created, skipped := 0, 0
	for _, su := range seedUsers {
		existing, err := userRepo.FindByEmail(ctx, su.Email)
		if err != nil && err != gorm.ErrRecordNotFound {
			log.Fatalf("Error checking user %s: %v", su.Email, err)
		}
		if existing != nil {
			skipped++
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", su.Email, err)
		}

		user := &model.User{
			Email:          su.Email,
			HashedPassword: string(hashed),
			Role:           su.Role,
			Profile: &model.Profile{
				FirstName:  su.FirstName,
				LastName:   su.LastName,
				Profession: su.Profession,
			},
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", su.Email, err)
		}

		// Give non-admin demo users a slot for today so the API has data to
		// show immediately.
		if su.Role == model.RoleUser {
			start := time.Now().Truncate(time.Hour)
			slot := &model.AvailabilitySlot{
				UserID:    user.ID,
				StartTime: start,
				EndTime:   start.Add(8 * time.Hour),
				Status:    model.StatusAvailable,
			}
			if err := slotRepo.Create(ctx, slot); err != nil {
				log.Fatalf("Failed to create slot for %s: %v", su.Email, err)
			}
		}
		created++
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New users created: %d", created)
	log.Printf("  - Existing users skipped: %d", skipped)
}
