package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/barelyrics/barelyrics-api/internal/config"
	"github.com/barelyrics/barelyrics-api/internal/mocks"
	"github.com/barelyrics/barelyrics-api/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		JWTSecret: "test-secret",
		TokenTTL:  24 * time.Hour,
		PrimaryAdmin: config.BreakGlassIdentity{
			Email:    "admin@example.com",
			Password: "admin-pass-123",
			Name:     "Primary Admin",
			Role:     models.RoleAdmin,
		},
		Developer: config.BreakGlassIdentity{
			Email:    "dev@example.com",
			Password: "dev-pass-1234",
			Name:     "Developer",
			Role:     models.RoleDeveloper,
		},
	}
}

func TestSeedBreakGlassAndAuthenticate(t *testing.T) {
	users := mocks.NewMockAdminUserRepository()
	svc := newAuthService(users, testAuthConfig(), zerolog.Nop())
	ctx := context.Background()

	if err := svc.SeedBreakGlass(ctx); err != nil {
		t.Fatalf("SeedBreakGlass() error: %v", err)
	}
	if len(users.Users) != 2 {
		t.Fatalf("expected 2 seeded users, got %d", len(users.Users))
	}

	user, err := svc.Authenticate(ctx, "admin@example.com", "admin-pass-123")
	if err != nil {
		t.Fatalf("Authenticate() error: %v", err)
	}
	if user.Role != models.RoleAdmin {
		t.Errorf("role: got %q, want %q", user.Role, models.RoleAdmin)
	}
	if user.PasswordHash == "admin-pass-123" {
		t.Error("password was stored in plain text")
	}

	dev, err := svc.Authenticate(ctx, "dev@example.com", "dev-pass-1234")
	if err != nil {
		t.Fatalf("Authenticate() developer error: %v", err)
	}
	if dev.Role != models.RoleDeveloper {
		t.Errorf("developer role: got %q, want %q", dev.Role, models.RoleDeveloper)
	}
}

func TestSeedBreakGlassIsIdempotent(t *testing.T) {
	users := mocks.NewMockAdminUserRepository()
	svc := newAuthService(users, testAuthConfig(), zerolog.Nop())
	ctx := context.Background()

	if err := svc.SeedBreakGlass(ctx); err != nil {
		t.Fatalf("first seed error: %v", err)
	}
	if err := svc.SeedBreakGlass(ctx); err != nil {
		t.Fatalf("second seed error: %v", err)
	}
	if len(users.Users) != 2 {
		t.Errorf("reseeding must not duplicate accounts, got %d", len(users.Users))
	}
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	users := mocks.NewMockAdminUserRepository()
	svc := newAuthService(users, testAuthConfig(), zerolog.Nop())
	ctx := context.Background()

	if err := svc.SeedBreakGlass(ctx); err != nil {
		t.Fatalf("SeedBreakGlass() error: %v", err)
	}

	_, wrongPassErr := svc.Authenticate(ctx, "admin@example.com", "wrong")
	_, unknownErr := svc.Authenticate(ctx, "nobody@example.com", "admin-pass-123")

	if !errors.Is(wrongPassErr, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", wrongPassErr)
	}
	if !errors.Is(unknownErr, ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v, want ErrInvalidCredentials", unknownErr)
	}
}

func TestAuthenticateRejectsAccountsWithoutHash(t *testing.T) {
	users := mocks.NewMockAdminUserRepository()
	users.Users["legacy@example.com"] = &models.AdminUser{
		ID:    7,
		Email: "legacy@example.com",
		Name:  "Legacy Row",
		Role:  models.RoleModerator,
	}
	svc := newAuthService(users, testAuthConfig(), zerolog.Nop())

	if _, err := svc.Authenticate(context.Background(), "legacy@example.com", "anything"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("hashless account: got %v, want ErrInvalidCredentials", err)
	}
}

func TestTokenRoundTripThroughService(t *testing.T) {
	users := mocks.NewMockAdminUserRepository()
	svc := newAuthService(users, testAuthConfig(), zerolog.Nop())

	user := &models.AdminUser{ID: 3, Email: "admin@example.com", Name: "Primary Admin", Role: models.RoleAdmin}
	token, err := svc.IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken() error: %v", err)
	}

	got, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error: %v", err)
	}
	if got.ID != user.ID || got.Email != user.Email || got.Role != user.Role {
		t.Errorf("identity changed across the round trip: %+v", got)
	}
}

func TestCreateAdminUser(t *testing.T) {
	users := mocks.NewMockAdminUserRepository()
	svc := newAuthService(users, testAuthConfig(), zerolog.Nop())
	ctx := context.Background()

	created, err := svc.CreateAdminUser(ctx, &models.AdminUserInput{
		Email:    "mod@example.com",
		Name:     "Moderator",
		Password: "password123",
		Role:     models.RoleModerator,
	})
	if err != nil {
		t.Fatalf("CreateAdminUser() error: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("password123")) != nil {
		t.Error("stored hash does not verify the password")
	}

	// Duplicate email
	_, err = svc.CreateAdminUser(ctx, &models.AdminUserInput{
		Email:    "mod@example.com",
		Name:     "Other",
		Password: "password123",
		Role:     models.RoleModerator,
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate email: got %v, want ErrEmailTaken", err)
	}

	// Developer accounts are seeded from the environment, never created
	// through the API.
	_, err = svc.CreateAdminUser(ctx, &models.AdminUserInput{
		Email:    "new-dev@example.com",
		Name:     "New Dev",
		Password: "password123",
		Role:     models.RoleDeveloper,
	})
	var validationErr *ValidationFailed
	if !errors.As(err, &validationErr) {
		t.Errorf("developer role: got %v, want ValidationFailed", err)
	}
}

func TestListAdminUsersOmitsHashes(t *testing.T) {
	users := mocks.NewMockAdminUserRepository()
	svc := newAuthService(users, testAuthConfig(), zerolog.Nop())
	ctx := context.Background()

	if err := svc.SeedBreakGlass(ctx); err != nil {
		t.Fatalf("SeedBreakGlass() error: %v", err)
	}

	listed, err := svc.ListAdminUsers(ctx)
	if err != nil {
		t.Fatalf("ListAdminUsers() error: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 users, got %d", len(listed))
	}
	for _, user := range listed {
		if user.PasswordHash != "" {
			t.Errorf("listing leaked a password hash for %s", user.Email)
		}
	}
}
