package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/agpt-coder/availability-checker/internal/auth"
	apperrors "github.com/agpt-coder/availability-checker/internal/errors"
	"github.com/agpt-coder/availability-checker/internal/model"
	"github.com/agpt-coder/availability-checker/internal/repository"
)

const bcryptCost = 10

// ErrSessionInvalid is returned when a session token is unknown or already
// logged out.
var ErrSessionInvalid = errors.New("session token is invalid or already logged out")

// OAuthCredentials carries optional calendar credentials supplied at
// registration. Accepted but not acted on; calendar linkage happens through
// the calendar service.
type OAuthCredentials struct {
	ServiceProvider string
	AccessToken     string
}

// RegisterInput holds registration parameters.
type RegisterInput struct {
	Email            string
	Password         string
	FirstName        string
	LastName         string
	Profession       model.Profession
	OAuthCredentials *OAuthCredentials
}

// AuthService handles registration and the session lifecycle.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, expiresAt time.Time, err error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	jwtService  *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
	}
}

// Register creates a user with a hashed password and its profile in one
// transactional create. A taken email is reported, not treated as fatal.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailAlreadyInUse
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:          input.Email,
		HashedPassword: string(hashedPassword),
		Role:           model.RoleUser,
		Profile: &model.Profile{
			FirstName:  input.FirstName,
			LastName:   input.LastName,
			Profession: input.Profession,
		},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	// OAuth credentials are accepted for forward compatibility only.
	_ = input.OAuthCredentials

	return user, nil
}

// Login verifies credentials, signs a 30-minute session token and records
// the session row the token will be checked against after logout.
func (s *authService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", time.Time{}, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", time.Time{}, apperrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateSessionToken(user.Email)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("generate session token: %w", err)
	}

	session := &model.Session{
		UserID: user.ID,
		Token:  token,
		Valid:  true,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return "", time.Time{}, fmt.Errorf("create session: %w", err)
	}

	return token, expiresAt, nil
}

// Logout invalidates the session holding the token. Unknown or already
// invalid sessions fail the same way, so repeated logouts stay harmless.
func (s *authService) Logout(ctx context.Context, token string) error {
	session, err := s.sessionRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSessionInvalid
		}
		return fmt.Errorf("find session: %w", err)
	}
	if !session.Valid {
		return ErrSessionInvalid
	}

	if err := s.sessionRepo.Invalidate(ctx, token); err != nil {
		return fmt.Errorf("invalidate session: %w", err)
	}
	return nil
}
