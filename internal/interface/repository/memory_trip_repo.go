package repository

import (
	"context"
	"time"

	"fleetwatch-service/internal/domain/entity"
	"fleetwatch-service/pkg/utils"
)

// Manifest operations

// GetManifest finds a manifest by ID
func (s *MemoryStorage) GetManifest(ctx context.Context, id int64) (*entity.Manifest, error) {
	m, ok := s.manifests.get(id)
	return found(m, ok)
}

// GetManifestByCode finds a manifest by its code
func (s *MemoryStorage) GetManifestByCode(ctx context.Context, code string) (*entity.Manifest, error) {
	m, ok := s.manifests.find(func(m entity.Manifest) bool { return m.ManifestCode == code })
	return found(m, ok)
}

// ListManifests returns every manifests
func (s *MemoryStorage) ListManifests(ctx context.Context) ([]*entity.Manifest, error) {
	return refs(s.manifests.list()), nil
}

// ListRecentManifests returns up to limit manifests, newest first
func (s *MemoryStorage) ListRecentManifests(ctx context.Context, limit int) ([]*entity.Manifest, error) {
	return refs(mostRecent(s.manifests.list(), func(m entity.Manifest) time.Time {
		return m.CreatedAt
	}, limit)), nil
}

// CreateManifest stamps CreatedAt and fills in a generated code when none was given
func (s *MemoryStorage) CreateManifest(ctx context.Context, manifest *entity.Manifest) (*entity.Manifest, error) {
	now := s.opts.now()
	return s.manifests.create(func(id int64) entity.Manifest {
		m := *manifest
		m.ID = id
		m.CreatedAt = now
		if utils.IsBlank(m.ManifestCode) {
			m.ManifestCode = utils.GenerateManifestCode(now, s.opts.intn)
		}
		return m
	})
}

// UpdateManifest applies a partial update to a manifest
func (s *MemoryStorage) UpdateManifest(ctx context.Context, id int64, patch entity.ManifestPatch) (*entity.Manifest, error) {
	m, ok := s.manifests.update(id, patch.Apply)
	return found(m, ok)
}

// Passenger operations

// GetPassenger finds a passenger by ID
func (s *MemoryStorage) GetPassenger(ctx context.Context, id int64) (*entity.Passenger, error) {
	p, ok := s.passengers.get(id)
	return found(p, ok)
}

// ListManifestPassengers returns the passengers listed on a manifest
func (s *MemoryStorage) ListManifestPassengers(ctx context.Context, manifestID int64) ([]*entity.Passenger, error) {
	return refs(s.passengers.filter(func(p entity.Passenger) bool {
		return p.ManifestID == manifestID
	})), nil
}

// CreatePassenger stores a new passenger
func (s *MemoryStorage) CreatePassenger(ctx context.Context, passenger *entity.Passenger) (*entity.Passenger, error) {
	return s.passengers.create(func(id int64) entity.Passenger {
		p := *passenger
		p.ID = id
		return p
	})
}

// Parcel operations

// GetParcel finds a parcel by ID
func (s *MemoryStorage) GetParcel(ctx context.Context, id int64) (*entity.Parcel, error) {
	p, ok := s.parcels.get(id)
	return found(p, ok)
}

// GetParcelByTrackingCode finds a parcel by tracking code
func (s *MemoryStorage) GetParcelByTrackingCode(ctx context.Context, trackingCode string) (*entity.Parcel, error) {
	p, ok := s.parcels.find(func(p entity.Parcel) bool { return p.TrackingCode == trackingCode })
	return found(p, ok)
}

// ListManifestParcels returns the parcels carried under a manifest
func (s *MemoryStorage) ListManifestParcels(ctx context.Context, manifestID int64) ([]*entity.Parcel, error) {
	return refs(s.parcels.filter(func(p entity.Parcel) bool {
		return p.ManifestID == manifestID
	})), nil
}

// CreateParcel stores a new parcel
func (s *MemoryStorage) CreateParcel(ctx context.Context, parcel *entity.Parcel) (*entity.Parcel, error) {
	return s.parcels.create(func(id int64) entity.Parcel {
		p := *parcel
		p.ID = id
		return p
	})
}

// UpdateParcel applies a partial update to a parcel
func (s *MemoryStorage) UpdateParcel(ctx context.Context, id int64, patch entity.ParcelPatch) (*entity.Parcel, error) {
	p, ok := s.parcels.update(id, patch.Apply)
	return found(p, ok)
}
