package repository

import (
	"context"

	"fleetwatch-service/internal/domain/entity"
)

// GetUser finds a user by id
func (s *MemoryStorage) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	u, ok := s.users.get(id)
	return found(u, ok)
}

// GetUserByUsername finds the first user with the given username
func (s *MemoryStorage) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	u, ok := s.users.find(func(u entity.User) bool { return u.Username == username })
	return found(u, ok)
}

// CreateUser stores a new user
func (s *MemoryStorage) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	return s.users.create(func(id int64) entity.User {
		u := *user
		u.ID = id
		return u
	})
}
