package user

import (
	"context"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"

	"go.uber.org/zap"
)

type UserService interface {
	// Login upserts the user keyed by email and mints an access token for it.
	Login(ctx context.Context, email string, update models.UserUpdate) (*models.UpsertUserResponse, error)
	// GetAllUsers returns every user record.
	GetAllUsers(ctx context.Context) ([]models.User, error)
	// IsAdmin reports whether email belongs to an admin. Unknown emails are not admins.
	IsAdmin(ctx context.Context, email string) (bool, error)
	// MakeAdmin sets role=admin on an existing user.
	MakeAdmin(ctx context.Context, email string) (models.UpdateResult, error)
}

// TokenIssuer mints access tokens.
type TokenIssuer interface {
	GenerateToken(email string) (string, error)
}

// RoleCache caches roles by email. Implementations may be remote; every error
// is treated as a miss.
type RoleCache interface {
	Get(ctx context.Context, email string) (string, bool, error)
	Set(ctx context.Context, email, role string) error
	Invalidate(ctx context.Context, email string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Tokens TokenIssuer
	// Cache is optional.
	Cache RoleCache
	// StripRole drops a role sent in the login body.
	StripRole bool
	Logger    *zap.Logger
}
