package repository

import (
	"slices"
	"time"

	"fleetwatch-service/internal/domain/entity"
	"fleetwatch-service/internal/domain/repository"
)

// MemoryStorage implements repository.Storage with one map-backed store per
// entity. Unique fields are not enforced; callers that need uniqueness must
// check with the Get*By* lookups first.
type MemoryStorage struct {
	users          *entityStore[entity.User]
	agencies       *entityStore[entity.Agency]
	corporates     *entityStore[entity.Corporate]
	parks          *entityStore[entity.Park]
	vehicles       *entityStore[entity.Vehicle]
	drivers        *entityStore[entity.Driver]
	manifests      *entityStore[entity.Manifest]
	passengers     *entityStore[entity.Passenger]
	parcels        *entityStore[entity.Parcel]
	trafficReports *entityStore[entity.TrafficReport]
	securityAlerts *entityStore[entity.SecurityAlert]
	violations     *entityStore[entity.Violation]

	opts options
}

var _ repository.Storage = (*MemoryStorage)(nil)

// NewMemoryStorage creates an empty in-memory storage
func NewMemoryStorage(opts ...Option) *MemoryStorage {
	return &MemoryStorage{
		users:          newEntityStore(entity.User.Clone),
		agencies:       newEntityStore(entity.Agency.Clone),
		corporates:     newEntityStore(entity.Corporate.Clone),
		parks:          newEntityStore(entity.Park.Clone),
		vehicles:       newEntityStore(entity.Vehicle.Clone),
		drivers:        newEntityStore(entity.Driver.Clone),
		manifests:      newEntityStore(entity.Manifest.Clone),
		passengers:     newEntityStore(entity.Passenger.Clone),
		parcels:        newEntityStore(entity.Parcel.Clone),
		trafficReports: newEntityStore(entity.TrafficReport.Clone),
		securityAlerts: newEntityStore(entity.SecurityAlert.Clone),
		violations:     newEntityStore(entity.Violation.Clone),
		opts:           buildOptions(opts),
	}
}

// found turns a store lookup into the repository contract
func found[T any](rec T, ok bool) (*T, error) {
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &rec, nil
}

// refs exposes a freshly built slice as pointers. Never nil.
func refs[T any](records []T) []*T {
	out := make([]*T, len(records))
	for i := range records {
		out[i] = &records[i]
	}
	return out
}

// mostRecent sorts by timestamp descending, keeping insertion order for ties,
// and keeps at most limit records.
func mostRecent[T any](records []T, at func(T) time.Time, limit int) []T {
	if limit <= 0 {
		return []T{}
	}
	slices.SortStableFunc(records, func(a, b T) int {
		return at(b).Compare(at(a))
	})
	if limit < len(records) {
		records = records[:limit]
	}
	return records
}

func refersTo(ref *int64, id int64) bool {
	return ref != nil && *ref == id
}
