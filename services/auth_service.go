package services

import (
	"context"
	"errors"

	"registry.link/models"
	"registry.link/repositories"

	"golang.org/x/crypto/bcrypt"
)

// AuthServiceError is the auth service's error vocabulary.
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

// ErrInvalidCredentials deliberately covers both unknown accounts and wrong
// passwords.
const ErrInvalidCredentials AuthServiceError = "email or password is incorrect"

// IAuthService authenticates registry owners. Guests never authenticate.
type IAuthService interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

// AuthService implements IAuthService.
type AuthService struct {
	users repositories.IUserRepository
}

// NewAuthService returns a service over the default repository.
func NewAuthService() IAuthService {
	return &AuthService{users: repositories.NewUserRepository()}
}

// Authenticate verifies an email/password pair against the stored bcrypt hash.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

var _ IAuthService = (*AuthService)(nil)

// HashPassword produces the bcrypt hash stored on User records. Used by the
// seeder and any future account management surface.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
