package repository

import (
	"context"

	"fleetwatch-service/internal/domain/entity"
)

// DriverRepository defines the interface for driver operations
type DriverRepository interface {
	GetDriver(ctx context.Context, id int64) (*entity.Driver, error)
	ListDrivers(ctx context.Context) ([]*entity.Driver, error)
	ListCorporateDrivers(ctx context.Context, corporateID int64) ([]*entity.Driver, error)
	CreateDriver(ctx context.Context, driver *entity.Driver) (*entity.Driver, error)
	UpdateDriver(ctx context.Context, id int64, patch entity.DriverPatch) (*entity.Driver, error)
}
