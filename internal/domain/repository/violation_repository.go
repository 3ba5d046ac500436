package repository

import (
	"context"

	"fleetwatch-service/internal/domain/entity"
)

// ViolationRepository defines the interface for violation operations
type ViolationRepository interface {
	GetViolation(ctx context.Context, id int64) (*entity.Violation, error)
	ListViolations(ctx context.Context) ([]*entity.Violation, error)
	ListVehicleViolations(ctx context.Context, vehicleID int64) ([]*entity.Violation, error)
	ListRecentViolations(ctx context.Context, limit int) ([]*entity.Violation, error)
	CreateViolation(ctx context.Context, violation *entity.Violation) (*entity.Violation, error)
	UpdateViolation(ctx context.Context, id int64, patch entity.ViolationPatch) (*entity.Violation, error)
}
