package repository

import (
	"context"

	"fleetwatch-service/internal/domain/entity"
	"fleetwatch-service/pkg/utils"
)

var (
	uniqueManifestCode = unique("manifest_code", func(m entity.Manifest) string { return m.ManifestCode })
	uniqueTrackingCode = unique("tracking_code", func(p entity.Parcel) string { return p.TrackingCode })
)

// Manifest operations

// GetManifest finds a manifest by ID
func (s *GormStorage) GetManifest(ctx context.Context, id int64) (*entity.Manifest, error) {
	return findOne(ctx, s.db, Manifests.toEntity, "id = ?", id)
}

// GetManifestByCode finds a manifest by its code
func (s *GormStorage) GetManifestByCode(ctx context.Context, code string) (*entity.Manifest, error) {
	return findOne(ctx, s.db, Manifests.toEntity, "manifest_code = ?", code)
}

// ListManifests returns every manifests
func (s *GormStorage) ListManifests(ctx context.Context) ([]*entity.Manifest, error) {
	return findAll(ctx, s.db, Manifests.toEntity, nil)
}

// ListRecentManifests returns up to limit manifests, newest first
func (s *GormStorage) ListRecentManifests(ctx context.Context, limit int) ([]*entity.Manifest, error) {
	return findRecent(ctx, s.db, Manifests.toEntity, "created_at", limit)
}

// CreateManifest stamps CreatedAt and fills in a generated code when none was
// given. A generated code that collides fails with ErrDuplicateKey.
func (s *GormStorage) CreateManifest(ctx context.Context, manifest *entity.Manifest) (*entity.Manifest, error) {
	now := s.opts.now()
	m := *manifest
	m.ID = 0
	m.CreatedAt = now
	if utils.IsBlank(m.ManifestCode) {
		m.ManifestCode = utils.GenerateManifestCode(now, s.opts.intn)
	}
	return insert(ctx, s.db, m, manifestsFromEntity, Manifests.toEntity, uniqueManifestCode)
}

// UpdateManifest applies a partial update to a manifest
func (s *GormStorage) UpdateManifest(ctx context.Context, id int64, patch entity.ManifestPatch) (*entity.Manifest, error) {
	return modify(ctx, s.db, id, patch.Apply, manifestsFromEntity, Manifests.toEntity, uniqueManifestCode)
}

// Passenger operations

// GetPassenger finds a passenger by ID
func (s *GormStorage) GetPassenger(ctx context.Context, id int64) (*entity.Passenger, error) {
	return findOne(ctx, s.db, Passengers.toEntity, "id = ?", id)
}

// ListManifestPassengers returns the passengers listed on a manifest
func (s *GormStorage) ListManifestPassengers(ctx context.Context, manifestID int64) ([]*entity.Passenger, error) {
	return findAll(ctx, s.db, Passengers.toEntity, whereEq("manifest_id", manifestID))
}

// CreatePassenger persists a new passenger
func (s *GormStorage) CreatePassenger(ctx context.Context, passenger *entity.Passenger) (*entity.Passenger, error) {
	p := *passenger
	p.ID = 0
	return insert(ctx, s.db, p, passengersFromEntity, Passengers.toEntity)
}

// Parcel operations

// GetParcel finds a parcel by ID
func (s *GormStorage) GetParcel(ctx context.Context, id int64) (*entity.Parcel, error) {
	return findOne(ctx, s.db, Parcels.toEntity, "id = ?", id)
}

// GetParcelByTrackingCode finds a parcel by tracking code
func (s *GormStorage) GetParcelByTrackingCode(ctx context.Context, trackingCode string) (*entity.Parcel, error) {
	return findOne(ctx, s.db, Parcels.toEntity, "tracking_code = ?", trackingCode)
}

// ListManifestParcels returns the parcels carried under a manifest
func (s *GormStorage) ListManifestParcels(ctx context.Context, manifestID int64) ([]*entity.Parcel, error) {
	return findAll(ctx, s.db, Parcels.toEntity, whereEq("manifest_id", manifestID))
}

// CreateParcel persists a new parcel
func (s *GormStorage) CreateParcel(ctx context.Context, parcel *entity.Parcel) (*entity.Parcel, error) {
	p := *parcel
	p.ID = 0
	return insert(ctx, s.db, p, parcelsFromEntity, Parcels.toEntity, uniqueTrackingCode)
}

// UpdateParcel applies a partial update to a parcel
func (s *GormStorage) UpdateParcel(ctx context.Context, id int64, patch entity.ParcelPatch) (*entity.Parcel, error) {
	return modify(ctx, s.db, id, patch.Apply, parcelsFromEntity, Parcels.toEntity, uniqueTrackingCode)
}
