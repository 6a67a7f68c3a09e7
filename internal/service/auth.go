// Package service provides the business logic for accounts, presentation
// lifecycle, and slide generation, delegating persistence to repository
// interfaces.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/models"
	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/token"
)

// UserRepository defines the persistence operations required by the
// authentication service.
type UserRepository interface {
	// EmailExists reports whether a user with the given email exists.
	EmailExists(ctx context.Context, email string) (bool, error)
	// CreateUser inserts a new user record.
	CreateUser(ctx context.Context, u *models.User) error
	// GetUserByEmail fetches a user by email; sql.ErrNoRows when absent.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService implements signup and credential login.
type AuthService struct {
	repo      UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService constructs an AuthService. jwtSecret signs session
// tokens with the given lifetime.
func NewAuthService(repo UserRepository, jwtSecret []byte, tokenTTL time.Duration) *AuthService {
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates a credential account. Email and password are
// required; name is optional. Returns ErrEmailTaken for a duplicate
// email and ErrValidation for missing fields.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: string(hash),
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and returns a signed session token.
// Accounts created through an identity provider have no password hash
// and cannot log in with credentials; they fail the same way as a wrong
// password so account type is not revealed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrBadCredentials
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}
	if u.PasswordHash == "" {
		return "", ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", ErrBadCredentials
	}

	tok, err := token.Sign(s.jwtSecret, u.ID, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return tok, nil
}
