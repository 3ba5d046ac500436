package repository

import (
	"context"

	"fleetwatch-service/internal/domain/entity"
)

// SessionRepository defines the interface for login session storage.
// Find returns ErrNotFound for unknown and expired sessions alike.
type SessionRepository interface {
	Save(ctx context.Context, session *entity.Session) error
	Find(ctx context.Context, id string) (*entity.Session, error)
	Delete(ctx context.Context, id string) error
}
