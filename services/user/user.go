package user

import (
	"context"
	"errors"
	"fmt"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.uber.org/zap"
)

// roleNone is cached for users without a role so a cache hit can tell them
// apart from a miss.
const roleNone = "none"

func (s *DefaultUserService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}

func (s *DefaultUserService) Login(ctx context.Context, email string, update models.UserUpdate) (*models.UpsertUserResponse, error) {
	result, err := s.Repo.Upsert(ctx, email, update.Fields(email, s.StripRole))
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, email)

	token, err := s.Tokens.GenerateToken(email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token for %s: %w", email, err)
	}
	return &models.UpsertUserResponse{Result: result, Token: token}, nil
}

func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	if s.Cache != nil {
		role, ok, err := s.Cache.Get(ctx, email)
		if err != nil {
			s.logger().Warn("role cache read failed, falling back to database", zap.String("email", email), zap.Error(err))
		} else if ok {
			return role == models.RoleAdmin, nil
		}
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if s.Cache != nil {
		role := u.Role
		if role == "" {
			role = roleNone
		}
		if err := s.Cache.Set(ctx, email, role); err != nil {
			s.logger().Warn("role cache write failed", zap.String("email", email), zap.Error(err))
		}
	}
	return u.IsAdmin(), nil
}

func (s *DefaultUserService) MakeAdmin(ctx context.Context, email string) (models.UpdateResult, error) {
	result, err := s.Repo.SetRole(ctx, email, models.RoleAdmin)
	if err != nil {
		return models.UpdateResult{}, err
	}
	s.invalidate(ctx, email)
	return result, nil
}

func (s *DefaultUserService) invalidate(ctx context.Context, email string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(ctx, email); err != nil {
		s.logger().Warn("role cache invalidation failed", zap.String("email", email), zap.Error(err))
	}
}
