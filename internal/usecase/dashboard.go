package usecase

import (
	"context"
	"fmt"

	"fleetwatch-service/internal/domain/entity"
	"fleetwatch-service/internal/domain/repository"
)

// DashboardService computes the headline figures shown on the dashboard.
// Figures are recomputed from the store on every call.
type DashboardService struct {
	store repository.Storage
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(store repository.Storage) *DashboardService {
	return &DashboardService{store: store}
}

// Stats counts active vehicles, parks and violations, and sums the passengers
// on active manifests.
func (s *DashboardService) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	vehicles, err := s.store.ListActiveVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active vehicles: %w", err)
	}

	parks, err := s.store.ListParks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list parks: %w", err)
	}

	manifests, err := s.store.ListManifests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list manifests: %w", err)
	}
	passengers := 0
	for _, m := range manifests {
		if m.Status == entity.ManifestActive {
			passengers += m.PassengerCount
		}
	}

	violations, err := s.store.ListViolations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list violations: %w", err)
	}

	return &entity.DashboardStats{
		ActiveVehicles:  len(vehicles),
		PassengersToday: passengers,
		RegisteredParks: len(parks),
		ViolationsToday: len(violations),
	}, nil
}
