package repository

import (
	"context"

	"fleetwatch-service/internal/domain/entity"
)

// ParkRepository defines the interface for park and terminal operations
type ParkRepository interface {
	GetPark(ctx context.Context, id int64) (*entity.Park, error)
	GetParkByCode(ctx context.Context, code string) (*entity.Park, error)
	ListParks(ctx context.Context) ([]*entity.Park, error)
	CreatePark(ctx context.Context, park *entity.Park) (*entity.Park, error)
	UpdatePark(ctx context.Context, id int64, patch entity.ParkPatch) (*entity.Park, error)
}
