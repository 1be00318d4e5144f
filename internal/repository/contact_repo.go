package repository

import (
	"context"

	"github.com/barelyrics/barelyrics-api/internal/database"
	"github.com/barelyrics/barelyrics-api/internal/models"
)

// contactRepo is the concrete implementation of ContactRepository
type contactRepo struct {
	db *database.DB
}

// NewContactRepo creates a new contact message repository
func NewContactRepo(db *database.DB) ContactRepository {
	return &contactRepo{db: db}
}

// Create persists a contact form message
func (r *contactRepo) Create(ctx context.Context, in *models.ContactInput) (*models.ContactMessage, error) {
	query := `
		INSERT INTO contact_messages (first_name, last_name, email, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, first_name, last_name, email, subject, message, created_at`

	var msg models.ContactMessage
	err := r.db.QueryRowContext(ctx, query,
		in.FirstName, in.LastName, in.Email, in.Subject, in.Message,
	).Scan(&msg.ID, &msg.FirstName, &msg.LastName, &msg.Email, &msg.Subject, &msg.Message, &msg.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}
