package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetwatch-service/internal/domain/entity"
	repo "fleetwatch-service/internal/interface/repository"
)

func TestDashboardService_ParkAndActiveVehicle(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryStorage()

	_, err := store.CreatePark(ctx, &entity.Park{Name: "Jibowu Central Park", Code: "PRK-001-LG", Status: entity.ParkActive})
	require.NoError(t, err)
	_, err = store.CreateVehicle(ctx, &entity.Vehicle{
		PlateNumber:   "ABC-123-XY",
		CurrentParkID: entity.Ref(int64(1)),
		Status:        entity.VehicleActive,
	})
	require.NoError(t, err)

	stats, err := NewDashboardService(store).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.DashboardStats{
		ActiveVehicles:  1,
		PassengersToday: 0,
		RegisteredParks: 1,
		ViolationsToday: 0,
	}, stats)
}

func TestDashboardService_CountsOnlyActive(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryStorage()

	for i, status := range []string{entity.VehicleActive, entity.VehicleMaintenance, entity.VehicleActive, entity.VehicleInactive, entity.VehicleActive} {
		_, err := store.CreateVehicle(ctx, &entity.Vehicle{PlateNumber: string(rune('A' + i)), Status: status})
		require.NoError(t, err)
	}
	manifests := []struct {
		status     string
		passengers int
	}{
		{entity.ManifestActive, 14},
		{entity.ManifestCompleted, 30},
		{entity.ManifestActive, 8},
		{entity.ManifestCancelled, 5},
	}
	for _, m := range manifests {
		_, err := store.CreateManifest(ctx, &entity.Manifest{Status: m.status, PassengerCount: m.passengers})
		require.NoError(t, err)
	}
	for i := 0; i < 3; i++ {
		_, err := store.CreateViolation(ctx, &entity.Violation{VehicleID: 1, Type: "speeding"})
		require.NoError(t, err)
	}

	stats, err := NewDashboardService(store).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.ActiveVehicles)
	assert.Equal(t, 22, stats.PassengersToday)
	assert.Equal(t, 0, stats.RegisteredParks)
	assert.Equal(t, 3, stats.ViolationsToday)
}

func TestDashboardService_ReflectsUpdates(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryStorage()
	svc := NewDashboardService(store)

	v, err := store.CreateVehicle(ctx, &entity.Vehicle{PlateNumber: "ABC-123-XY", Status: entity.VehicleActive})
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ActiveVehicles)

	_, err = store.UpdateVehicle(ctx, v.ID, entity.VehiclePatch{Status: entity.Ref(entity.VehicleMaintenance)})
	require.NoError(t, err)

	stats, err = svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.ActiveVehicles)
}
