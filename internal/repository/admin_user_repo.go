package repository

import (
	"context"
	"database/sql"

	"github.com/barelyrics/barelyrics-api/internal/database"
	"github.com/barelyrics/barelyrics-api/internal/models"
)

// adminUserRepo is the concrete implementation of AdminUserRepository
type adminUserRepo struct {
	db *database.DB
}

// NewAdminUserRepo creates a new admin user repository
func NewAdminUserRepo(db *database.DB) AdminUserRepository {
	return &adminUserRepo{db: db}
}

// Create inserts a new managed admin user
func (r *adminUserRepo) Create(ctx context.Context, user *models.AdminUser) (*models.AdminUser, error) {
	query := `
		INSERT INTO admin_users (email, name, role, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, name, role, password_hash, created_at, updated_at`

	var created models.AdminUser
	err := r.db.QueryRowContext(ctx, query, user.Email, user.Name, user.Role, user.PasswordHash).Scan(
		&created.ID, &created.Email, &created.Name, &created.Role,
		&created.PasswordHash, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByEmail retrieves an admin user by email
func (r *adminUserRepo) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	query := `
		SELECT id, email, name, role, password_hash, created_at, updated_at
		FROM admin_users WHERE LOWER(email) = LOWER($1)`

	var user models.AdminUser
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.Name, &user.Role,
		&user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves all admin users, newest first. Password hashes are not
// selected.
func (r *adminUserRepo) List(ctx context.Context) ([]*models.AdminUser, error) {
	query := `
		SELECT id, email, name, role, created_at, updated_at
		FROM admin_users ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.AdminUser
	for rows.Next() {
		var user models.AdminUser
		if err := rows.Scan(
			&user.ID, &user.Email, &user.Name, &user.Role,
			&user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}

// UpsertByEmail inserts or refreshes an admin user keyed by email. Used to
// seed the break-glass identities idempotently at startup.
func (r *adminUserRepo) UpsertByEmail(ctx context.Context, user *models.AdminUser) error {
	query := `
		INSERT INTO admin_users (email, name, role, password_hash)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE
		SET name = EXCLUDED.name, role = EXCLUDED.role, password_hash = EXCLUDED.password_hash`

	_, err := r.db.ExecContext(ctx, query, user.Email, user.Name, user.Role, user.PasswordHash)
	return err
}

// EmailExists checks if an admin user with the given email exists
func (r *adminUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM admin_users WHERE LOWER(email) = LOWER($1))`, email).Scan(&exists)
	return exists, err
}
