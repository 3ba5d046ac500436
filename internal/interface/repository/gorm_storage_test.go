package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"fleetwatch-service/internal/domain/entity"
	"fleetwatch-service/internal/domain/repository"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func newTestGormStorage(t *testing.T) *GormStorage {
	t.Helper()
	s := NewGormStorage(openTestDB(t), WithClock(stepClock(clockStart)), WithRandom(func(int) int { return 45 }))
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestGormStorage_CreateThenGet(t *testing.T) {
	ctx := context.Background()
	s := newTestGormStorage(t)

	input := &entity.Vehicle{
		PlateNumber:       "ABC-123-XY",
		Model:             "Toyota Hiace",
		Type:              "bus",
		SeatingCapacity:   14,
		CorporateID:       entity.Ref(int64(2)),
		CurrentParkID:     entity.Ref(int64(1)),
		Status:            entity.VehicleActive,
		CurrentRoute:      entity.Ref("Lagos - Ibadan"),
		OnboardPassengers: 12,
		TrackingStatus:    entity.TrackingOnSchedule,
	}
	created, err := s.CreateVehicle(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, int64(0), input.ID)

	want := *input
	want.ID = created.ID
	got, err := s.GetVehicle(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, want, *got)

	byPlate, err := s.GetVehicleByPlate(ctx, "ABC-123-XY")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byPlate.ID)
}

func TestGormStorage_IDsIncreasePerEntity(t *testing.T) {
	ctx := context.Background()
	s := newTestGormStorage(t)

	var last int64
	for i := 0; i < 3; i++ {
		a, err := s.CreateAgency(ctx, &entity.Agency{Name: fmt.Sprintf("agency %d", i), Type: entity.AgencyPolice})
		require.NoError(t, err)
		assert.Greater(t, a.ID, last)
		last = a.ID
	}

	c, err := s.CreateCorporate(ctx, &entity.Corporate{Name: "Transit Co"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)
}

func TestGormStorage_GetMissingReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestGormStorage(t)

	lookups := map[string]func() error{
		"user":           func() error { _, err := s.GetUser(ctx, 9); return err },
		"username":       func() error { _, err := s.GetUserByUsername(ctx, "ghost"); return err },
		"park code":      func() error { _, err := s.GetParkByCode(ctx, "PRK-404"); return err },
		"manifest code":  func() error { _, err := s.GetManifestByCode(ctx, "MNF-404"); return err },
		"tracking code":  func() error { _, err := s.GetParcelByTrackingCode(ctx, "TRK-404"); return err },
		"passenger":      func() error { _, err := s.GetPassenger(ctx, 1); return err },
		"traffic report": func() error { _, err := s.GetTrafficReport(ctx, 1); return err },
		"violation":      func() error { _, err := s.GetViolation(ctx, 1); return err },
	}
	for name, lookup := range lookups {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, lookup(), repository.ErrNotFound)
		})
	}
}

func TestGormStorage_UniqueFieldsOnCreate(t *testing.T) {
	ctx := context.Background()
	s := newTestGormStorage(t)

	_, err := s.CreatePark(ctx, &entity.Park{Name: "Ojota", Code: "PRK-001-LG"})
	require.NoError(t, err)
	_, err = s.CreatePark(ctx, &entity.Park{Name: "Other", Code: "PRK-001-LG"})
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)

	parks, err := s.ListParks(ctx)
	require.NoError(t, err)
	assert.Len(t, parks, 1)

	_, err = s.CreateUser(ctx, &entity.User{Username: "admin", Password: "x"})
	require.NoError(t, err)
	_, err = s.CreateUser(ctx, &entity.User{Username: "admin", Password: "y"})
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)

	_, err = s.CreateDriver(ctx, &entity.Driver{FullName: "A", LicenseNumber: "DL-1"})
	require.NoError(t, err)
	_, err = s.CreateDriver(ctx, &entity.Driver{FullName: "B", LicenseNumber: "DL-1"})
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)
}

func TestGormStorage_UniqueFieldsOnUpdate(t *testing.T) {
	ctx := context.Background()
	s := newTestGormStorage(t)

	first, err := s.CreateVehicle(ctx, &entity.Vehicle{PlateNumber: "AAA-1", Status: entity.VehicleActive})
	require.NoError(t, err)
	second, err := s.CreateVehicle(ctx, &entity.Vehicle{PlateNumber: "BBB-2", Status: entity.VehicleActive})
	require.NoError(t, err)

	_, err = s.UpdateVehicle(ctx, second.ID, entity.VehiclePatch{PlateNumber: entity.Ref("AAA-1")})
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)

	unchanged, err := s.GetVehicle(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "BBB-2", unchanged.PlateNumber)

	// keeping its own value is not a conflict
	updated, err := s.UpdateVehicle(ctx, first.ID, entity.VehiclePatch{
		PlateNumber: entity.Ref("AAA-1"),
		Status:      entity.Ref(entity.VehicleMaintenance),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.VehicleMaintenance, updated.Status)
}

func TestGormStorage_UpdateChangesOnlyPatchedField(t *testing.T) {
	ctx := context.Background()
	s := newTestGormStorage(t)

	park, err := s.CreatePark(ctx, &entity.Park{
		Name:              "Ojota Motor Park",
		Code:              "PRK-001-LG",
		Location:          "Ojota, Lagos",
		Region:            "South West",
		Capacity:          120,
		CurrentVehicles:   45,
		PassengerCapacity: 2000,
		Status:            entity.ParkActive,
		Coordinates:       entity.Ref("6.5833,3.3833"),
	})
	require.NoError(t, err)

	updated, err := s.UpdatePark(ctx, park.ID, entity.ParkPatch{CurrentVehicles: entity.Ref(46)})
	require.NoError(t, err)

	want := *park
	want.CurrentVehicles = 46
	assert.Equal(t, want, *updated)

	stored, err := s.GetPark(ctx, park.ID)
	require.NoError(t, err)
	assert.Equal(t, want, *stored)
}

func TestGormStorage_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	s := newTestGormStorage(t)

	_, err := s.UpdateDriver(ctx, 42, entity.DriverPatch{Status: entity.Ref(entity.DriverSuspended)})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	drivers, err := s.ListDrivers(ctx)
	require.NoError(t, err)
	assert.Empty(t, drivers)
	assert.NotNil(t, drivers)
}

func TestGormStorage_ManifestCreatedAtAndCode(t *testing.T) {
	ctx := context.Background()
	s := newTestGormStorage(t)

	departure := time.Date(2024, time.August, 12, 10, 0, 0, 0, time.UTC)
	m, err := s.CreateManifest(ctx, &entity.Manifest{
		VehicleID:           1,
		DriverID:            1,
		OriginParkID:        1,
		DestinationParkID:   2,
		DepartureTime:       departure,
		ExpectedArrivalTime: departure.Add(3 * time.Hour),
		PassengerCount:      14,
		Status:              entity.ManifestActive,
	})
	require.NoError(t, err)
	assert.Equal(t, "MNF-20240812-1045", m.ManifestCode)
	assert.True(t, m.CreatedAt.Equal(clockStart))

	updated, err := s.UpdateManifest(ctx, m.ID, entity.ManifestPatch{Status: entity.Ref(entity.ManifestCompleted)})
	require.NoError(t, err)
	assert.Equal(t, entity.ManifestCompleted, updated.Status)
	assert.True(t, updated.CreatedAt.Equal(clockStart))
	assert.True(t, updated.DepartureTime.Equal(departure))

	byCode, err := s.GetManifestByCode(ctx, "MNF-20240812-1045")
	require.NoError(t, err)
	assert.Equal(t, m.ID, byCode.ID)
}

func TestGormStorage_GeneratedManifestCodeCollision(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	fixed := func() time.Time { return clockStart }
	s := NewGormStorage(db, WithClock(fixed), WithRandom(func(int) int { return 45 }))
	require.NoError(t, s.Migrate(ctx))

	_, err := s.CreateManifest(ctx, &entity.Manifest{Status: entity.ManifestActive})
	require.NoError(t, err)
	_, err = s.CreateManifest(ctx, &entity.Manifest{Status: entity.ManifestActive})
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)
}

func TestGormStorage_ListRecent(t *testing.T) {
	ctx := context.Background()
	s := newTestGormStorage(t)

	for _, route := range []string{"R1", "R2", "R3", "R4"} {
		_, err := s.CreateTrafficReport(ctx, &entity.TrafficReport{Route: route, CongestionLevel: entity.CongestionLow})
		require.NoError(t, err)
	}

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{name: "zero", limit: 0, want: []string{}},
		{name: "negative", limit: -3, want: []string{}},
		{name: "two", limit: 2, want: []string{"R4", "R3"}},
		{name: "more than stored", limit: 10, want: []string{"R4", "R3", "R2", "R1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reports, err := s.ListRecentTrafficReports(ctx, tt.limit)
			require.NoError(t, err)
			routes := []string{}
			for _, r := range reports {
				routes = append(routes, r.Route)
			}
			assert.Equal(t, tt.want, routes)
		})
	}
}

func TestGormStorage_ListRecentTiesKeepInsertionOrder(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	s := NewGormStorage(db, WithClock(func() time.Time { return clockStart }))
	require.NoError(t, s.Migrate(ctx))

	for _, title := range []string{"first", "second", "third"} {
		_, err := s.CreateSecurityAlert(ctx, &entity.SecurityAlert{Title: title, Priority: entity.PriorityHigh})
		require.NoError(t, err)
	}

	alerts, err := s.ListRecentSecurityAlerts(ctx, 2)
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, "first", alerts[0].Title)
	assert.Equal(t, "second", alerts[1].Title)
}

func TestGormStorage_FiltersByReference(t *testing.T) {
	ctx := context.Background()
	s := newTestGormStorage(t)

	_, err := s.CreateVehicle(ctx, &entity.Vehicle{PlateNumber: "V1", CorporateID: entity.Ref(int64(1)), Status: entity.VehicleActive})
	require.NoError(t, err)
	_, err = s.CreateVehicle(ctx, &entity.Vehicle{PlateNumber: "V2", Status: entity.VehicleActive})
	require.NoError(t, err)
	_, err = s.CreateVehicle(ctx, &entity.Vehicle{PlateNumber: "V3", CorporateID: entity.Ref(int64(1)), Status: entity.VehicleInactive})
	require.NoError(t, err)

	corporate, err := s.ListCorporateVehicles(ctx, 1)
	require.NoError(t, err)
	require.Len(t, corporate, 2)
	assert.Equal(t, "V1", corporate[0].PlateNumber)
	assert.Equal(t, "V3", corporate[1].PlateNumber)

	active, err := s.ListActiveVehicles(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	_, err = s.CreateViolation(ctx, &entity.Violation{VehicleID: 3, Type: "speeding", ReportedBy: 1})
	require.NoError(t, err)
	_, err = s.CreateViolation(ctx, &entity.Violation{VehicleID: 1, Type: "overloading", ReportedBy: 1})
	require.NoError(t, err)

	violations, err := s.ListVehicleViolations(ctx, 3)
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, "speeding", violations[0].Type)
}

func TestGormStorage_PassengerLuggage(t *testing.T) {
	ctx := context.Background()
	s := newTestGormStorage(t)

	withLuggage, err := s.CreatePassenger(ctx, &entity.Passenger{
		ManifestID: 1,
		FullName:   "Ada Obi",
		Gender:     "female",
		Age:        entity.Ref(34),
		Luggage:    []byte(`{"items":2,"weight":15}`),
	})
	require.NoError(t, err)
	without, err := s.CreatePassenger(ctx, &entity.Passenger{ManifestID: 1, FullName: "Tunde Bello", Gender: "male"})
	require.NoError(t, err)

	got, err := s.GetPassenger(ctx, withLuggage.ID)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":2,"weight":15}`, string(got.Luggage))
	assert.Equal(t, 34, *got.Age)

	got, err = s.GetPassenger(ctx, without.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Luggage)

	list, err := s.ListManifestPassengers(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestGormStorage_ParcelTracking(t *testing.T) {
	ctx := context.Background()
	s := newTestGormStorage(t)

	p, err := s.CreateParcel(ctx, &entity.Parcel{
		TrackingCode:       "TRK-001",
		ManifestID:         1,
		Weight:             5,
		Status:             entity.ParcelInTransit,
		VerificationStatus: entity.VerificationVerified,
	})
	require.NoError(t, err)

	updated, err := s.UpdateParcel(ctx, p.ID, entity.ParcelPatch{Status: entity.Ref(entity.ParcelDelivered)})
	require.NoError(t, err)
	assert.Equal(t, entity.ParcelDelivered, updated.Status)
	assert.Equal(t, entity.VerificationVerified, updated.VerificationStatus)

	byCode, err := s.GetParcelByTrackingCode(ctx, "TRK-001")
	require.NoError(t, err)
	assert.Equal(t, entity.ParcelDelivered, byCode.Status)

	parcels, err := s.ListManifestParcels(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, parcels, 1)
}

func TestGormStorage_ClosedDatabaseIsUnavailable(t *testing.T) {
	ctx := context.Background()
	s := newTestGormStorage(t)

	sqlDB, err := s.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = s.GetPark(ctx, 1)
	assert.ErrorIs(t, err, repository.ErrBackendUnavailable)
	_, err = s.ListAgencies(ctx)
	assert.ErrorIs(t, err, repository.ErrBackendUnavailable)
}

func TestTranslateError(t *testing.T) {
	driverErr := errors.New("connection refused")
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "record not found", in: gorm.ErrRecordNotFound, want: repository.ErrNotFound},
		{name: "duplicated key", in: gorm.ErrDuplicatedKey, want: repository.ErrDuplicateKey},
		{name: "already translated", in: fmt.Errorf("%w: code", repository.ErrDuplicateKey), want: repository.ErrDuplicateKey},
		{name: "driver failure", in: driverErr, want: repository.ErrBackendUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateError(tt.in), tt.want)
		})
	}
	assert.NoError(t, translateError(nil))
}
