package repository

import (
	"context"

	"fleetwatch-service/internal/domain/entity"
)

// ParcelRepository defines the interface for parcel operations
type ParcelRepository interface {
	GetParcel(ctx context.Context, id int64) (*entity.Parcel, error)
	GetParcelByTrackingCode(ctx context.Context, trackingCode string) (*entity.Parcel, error)
	ListManifestParcels(ctx context.Context, manifestID int64) ([]*entity.Parcel, error)
	CreateParcel(ctx context.Context, parcel *entity.Parcel) (*entity.Parcel, error)
	UpdateParcel(ctx context.Context, id int64, patch entity.ParcelPatch) (*entity.Parcel, error)
}
