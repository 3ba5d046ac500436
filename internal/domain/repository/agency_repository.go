package repository

import (
	"context"

	"fleetwatch-service/internal/domain/entity"
)

// AgencyRepository defines the interface for security agency operations
type AgencyRepository interface {
	GetAgency(ctx context.Context, id int64) (*entity.Agency, error)
	ListAgencies(ctx context.Context) ([]*entity.Agency, error)
	CreateAgency(ctx context.Context, agency *entity.Agency) (*entity.Agency, error)
	UpdateAgency(ctx context.Context, id int64, patch entity.AgencyPatch) (*entity.Agency, error)
}
