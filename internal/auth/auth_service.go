package auth

import (
	"context"
	"errors"
	"fmt"

	"taskboard/db"
	"taskboard/internal/config"
	"taskboard/models"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingFields      = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	Repository db.UserRepository
	Config     *config.Config
}

func NewAuthService(repo db.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{Repository: repo, Config: cfg}
}

// Register stores a new user with a bcrypt hash of password.
// Usernames are not checked for uniqueness.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.Config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.Repository.Create(ctx, &models.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and returns a signed token for the user.
// Unknown users and wrong passwords, empty ones included, both yield
// ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := s.Repository.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := Sign(Identity{UserID: user.ID, Username: user.Username}, s.Config.JwtKey)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return token, user, nil
}
