package userRepo

import (
	"context"

	"doctorsportal/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// GetByEmail retrieves a user by email. A miss returns database.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Upsert creates or updates the user keyed by email, setting every field of update.
	Upsert(ctx context.Context, email string, update models.UserUpdate) (models.UpdateResult, error)
	// SetRole sets the role of an existing user. Unknown emails match nothing.
	SetRole(ctx context.Context, email, role string) (models.UpdateResult, error)
}
