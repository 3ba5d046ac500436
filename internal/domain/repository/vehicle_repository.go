package repository

import (
	"context"

	"fleetwatch-service/internal/domain/entity"
)

// VehicleRepository defines the interface for vehicle operations
type VehicleRepository interface {
	GetVehicle(ctx context.Context, id int64) (*entity.Vehicle, error)
	GetVehicleByPlate(ctx context.Context, plateNumber string) (*entity.Vehicle, error)
	ListVehicles(ctx context.Context) ([]*entity.Vehicle, error)
	ListActiveVehicles(ctx context.Context) ([]*entity.Vehicle, error)
	ListCorporateVehicles(ctx context.Context, corporateID int64) ([]*entity.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle *entity.Vehicle) (*entity.Vehicle, error)
	UpdateVehicle(ctx context.Context, id int64, patch entity.VehiclePatch) (*entity.Vehicle, error)
}
