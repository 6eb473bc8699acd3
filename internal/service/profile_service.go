package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agpt-coder/availability-checker/internal/cache"
	apperrors "github.com/agpt-coder/availability-checker/internal/errors"
	"github.com/agpt-coder/availability-checker/internal/model"
	"github.com/agpt-coder/availability-checker/internal/repository"
)

const profileCacheTTL = 5 * time.Minute

// ProfileView is a profile joined with its owning user's timestamps.
type ProfileView struct {
	ID         uuid.UUID        `json:"id"`
	FirstName  string           `json:"firstName"`
	LastName   string           `json:"lastName"`
	Profession model.Profession `json:"profession"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// ProfileUpdate holds optional fields for a partial profile update. Nil
// means leave unchanged.
type ProfileUpdate struct {
	FirstName  *string
	LastName   *string
	Profession *string
	Email      *string
}

// ProfileService handles profile operations.
type ProfileService interface {
	CreateProfile(ctx context.Context, userID uuid.UUID, firstName, lastName, email string, profession model.Profession) (*model.Profile, error)
	ViewProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
	// UpdateProfile applies each provided field independently and returns the
	// set of fields actually changed.
	UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (map[string]string, error)
	// DeleteProfile removes the user row; the profile, slots, events and
	// sessions go with it via cascade.
	DeleteProfile(ctx context.Context, userID uuid.UUID) error
}

type profileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	cache       *cache.Client
}

// NewProfileService creates a new profile service.
func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository, cache *cache.Client) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		cache:       cache,
	}
}

func (s *profileService) cacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("profile:%s", userID.String())
}

// CreateProfile creates a profile for an existing user. Uniqueness is
// checked against the owning user's email, not a profile field.
func (s *profileService) CreateProfile(ctx context.Context, userID uuid.UUID, firstName, lastName, email string, profession model.Profession) (*model.Profile, error) {
	existing, err := s.profileRepo.FindByOwnerEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailAlreadyInUse
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check profile existence: %w", err)
	}

	profile := &model.Profile{
		UserID:     userID,
		FirstName:  firstName,
		LastName:   lastName,
		Profession: profession,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(userID))
	return profile, nil
}

// ViewProfile returns the profile with the owning user's timestamps,
// read-through cached.
func (s *profileService) ViewProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(userID)); data != nil {
		var cached ProfileView
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	profile, err := s.profileRepo.FindByUserIDWithUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}

	view := &ProfileView{
		ID:         profile.ID,
		FirstName:  profile.FirstName,
		LastName:   profile.LastName,
		Profession: profile.Profession,
		CreatedAt:  profile.User.CreatedAt,
		UpdatedAt:  profile.User.UpdatedAt,
	}

	if payload, err := json.Marshal(view); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(userID), payload, profileCacheTTL)
	}
	return view, nil
}

// UpdateProfile applies the provided fields. Email mutates the user row,
// the rest the profile row. Fails only when the user does not exist.
func (s *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (map[string]string, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	updatedFields := make(map[string]string)
	profileFields := make(map[string]interface{})

	if update.FirstName != nil {
		profileFields["first_name"] = *update.FirstName
		updatedFields["firstName"] = *update.FirstName
	}
	if update.LastName != nil {
		profileFields["last_name"] = *update.LastName
		updatedFields["lastName"] = *update.LastName
	}
	if update.Profession != nil {
		profileFields["profession"] = *update.Profession
		updatedFields["profession"] = *update.Profession
	}

	if update.Email != nil {
		if err := s.userRepo.UpdateEmail(ctx, userID, *update.Email); err != nil {
			return nil, fmt.Errorf("update email: %w", err)
		}
		updatedFields["email"] = *update.Email
	}

	if len(profileFields) > 0 {
		if err := s.profileRepo.UpdateFields(ctx, userID, profileFields); err != nil {
			return nil, fmt.Errorf("update profile: %w", err)
		}
	}

	_ = s.cache.Delete(ctx, s.cacheKey(userID))
	return updatedFields, nil
}

// DeleteProfile deletes the user and everything it owns.
func (s *profileService) DeleteProfile(ctx context.Context, userID uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(userID))
	return nil
}
