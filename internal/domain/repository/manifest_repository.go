package repository

import (
	"context"

	"fleetwatch-service/internal/domain/entity"
)

// ManifestRepository defines the interface for trip manifest operations.
// CreateManifest assigns CreatedAt and generates a manifest code when the
// supplied one is blank.
type ManifestRepository interface {
	GetManifest(ctx context.Context, id int64) (*entity.Manifest, error)
	GetManifestByCode(ctx context.Context, code string) (*entity.Manifest, error)
	ListManifests(ctx context.Context) ([]*entity.Manifest, error)
	ListRecentManifests(ctx context.Context, limit int) ([]*entity.Manifest, error)
	CreateManifest(ctx context.Context, manifest *entity.Manifest) (*entity.Manifest, error)
	UpdateManifest(ctx context.Context, id int64, patch entity.ManifestPatch) (*entity.Manifest, error)
}
