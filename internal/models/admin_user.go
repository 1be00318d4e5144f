package models

import (
	"time"
)

// Admin roles, ordered by privilege: moderator < admin < developer
const (
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
	RoleDeveloper = "developer"
)

// ValidRoles defines allowed admin roles
var ValidRoles = map[string]bool{
	RoleModerator: true,
	RoleAdmin:     true,
	RoleDeveloper: true,
}

// AdminUser is an actor authorized to moderate the catalog
type AdminUser struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	Role         string    `json:"role" db:"role"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// AdminUserInput is the payload for creating a managed admin user.
// Role is limited to moderator or admin; developer is reserved for the
// break-glass identity seeded from configuration.
type AdminUserInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
