package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/barelyrics/barelyrics-api/internal/auth"
	"github.com/barelyrics/barelyrics-api/internal/config"
	"github.com/barelyrics/barelyrics-api/internal/models"
	"github.com/barelyrics/barelyrics-api/internal/repository"
	"github.com/barelyrics/barelyrics-api/internal/validation"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost the original admin accounts were hashed with
const bcryptCost = 12

// authService implements AuthService
type authService struct {
	users  repository.AdminUserRepository
	cfg    *config.AuthConfig
	issuer *auth.TokenIssuer
	log    zerolog.Logger
}

func newAuthService(users repository.AdminUserRepository, cfg *config.AuthConfig, log zerolog.Logger) AuthService {
	return &authService{
		users:  users,
		cfg:    cfg,
		issuer: auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL),
		log:    log.With().Str("component", "auth").Logger(),
	}
}

// SeedBreakGlass upserts the environment-sourced operator identities into
// the admin_users table so authentication has a single lookup path. Safe
// to run on every startup.
func (s *authService) SeedBreakGlass(ctx context.Context) error {
	for _, id := range s.cfg.BreakGlassIdentities() {
		hash, err := bcrypt.GenerateFromPassword([]byte(id.Password), bcryptCost)
		if err != nil {
			return fmt.Errorf("failed to hash break-glass password: %w", err)
		}
		user := &models.AdminUser{
			Email:        id.Email,
			Name:         id.Name,
			Role:         id.Role,
			PasswordHash: string(hash),
		}
		if err := s.users.UpsertByEmail(ctx, user); err != nil {
			return fmt.Errorf("failed to seed admin user %s: %w", id.Email, err)
		}
		s.log.Info().Str("email", id.Email).Str("role", id.Role).Msg("Break-glass admin seeded")
	}
	return nil
}

// Authenticate verifies an email/password pair against the store. The
// failure is the same regardless of whether the email was unknown or the
// password wrong.
func (s *authService) Authenticate(ctx context.Context, email, password string) (*models.AdminUser, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// Rows without a hash cannot authenticate; the legacy plain-text
	// comparison path is gone.
	if user.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	s.log.Info().Str("email", user.Email).Str("role", user.Role).Msg("Admin authenticated")
	return user, nil
}

// IssueToken produces a signed session token for the identity
func (s *authService) IssueToken(user *models.AdminUser) (string, error) {
	return s.issuer.Issue(user)
}

// ValidateToken reconstructs the identity from a session token. Malformed
// and expired tokens fail identically.
func (s *authService) ValidateToken(token string) (*models.AdminUser, error) {
	return s.issuer.Validate(token)
}

// CreateAdminUser creates a managed admin account. The role is limited to
// moderator or admin by validation.
func (s *authService) CreateAdminUser(ctx context.Context, in *models.AdminUserInput) (*models.AdminUser, error) {
	if errs := validation.ValidateAdminUser(in); len(errs) > 0 {
		return nil, &ValidationFailed{Errors: errs}
	}

	exists, err := s.users.EmailExists(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &models.AdminUser{
		Email:        in.Email,
		Name:         in.Name,
		Role:         in.Role,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", user.Email).Str("role", user.Role).Msg("Admin user created")
	return user, nil
}

// ListAdminUsers returns all managed admin users without hashes
func (s *authService) ListAdminUsers(ctx context.Context) ([]*models.AdminUser, error) {
	return s.users.List(ctx)
}
