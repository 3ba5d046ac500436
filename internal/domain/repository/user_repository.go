package repository

import (
	"context"

	"fleetwatch-service/internal/domain/entity"
)

// UserRepository defines the interface for user account operations
type UserRepository interface {
	GetUser(ctx context.Context, id int64) (*entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
}
