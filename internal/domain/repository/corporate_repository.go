package repository

import (
	"context"

	"fleetwatch-service/internal/domain/entity"
)

// CorporateRepository defines the interface for transport company operations
type CorporateRepository interface {
	GetCorporate(ctx context.Context, id int64) (*entity.Corporate, error)
	ListCorporates(ctx context.Context) ([]*entity.Corporate, error)
	CreateCorporate(ctx context.Context, corporate *entity.Corporate) (*entity.Corporate, error)
	UpdateCorporate(ctx context.Context, id int64, patch entity.CorporatePatch) (*entity.Corporate, error)
}
