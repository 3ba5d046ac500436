package repository

import (
	"context"

	"fleetwatch-service/internal/domain/entity"
)

// PassengerRepository defines the interface for passenger operations
type PassengerRepository interface {
	GetPassenger(ctx context.Context, id int64) (*entity.Passenger, error)
	ListManifestPassengers(ctx context.Context, manifestID int64) ([]*entity.Passenger, error)
	CreatePassenger(ctx context.Context, passenger *entity.Passenger) (*entity.Passenger, error)
}
