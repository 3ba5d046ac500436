package repository

import (
	"context"

	"gorm.io/gorm"

	"fleetwatch-service/internal/domain/entity"
)

var (
	uniqueParkCode      = unique("code", func(p entity.Park) string { return p.Code })
	uniquePlateNumber   = unique("plate_number", func(v entity.Vehicle) string { return v.PlateNumber })
	uniqueLicenseNumber = unique("license_number", func(d entity.Driver) string { return d.LicenseNumber })
)

func whereEq(column string, value interface{}) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		return q.Where(column+" = ?", value)
	}
}

// Park operations

// GetPark finds a park by ID
func (s *GormStorage) GetPark(ctx context.Context, id int64) (*entity.Park, error) {
	return findOne(ctx, s.db, Parks.toEntity, "id = ?", id)
}

// GetParkByCode finds a park by its code
func (s *GormStorage) GetParkByCode(ctx context.Context, code string) (*entity.Park, error) {
	return findOne(ctx, s.db, Parks.toEntity, "code = ?", code)
}

// ListParks returns every parks
func (s *GormStorage) ListParks(ctx context.Context) ([]*entity.Park, error) {
	return findAll(ctx, s.db, Parks.toEntity, nil)
}

// CreatePark persists a new park
func (s *GormStorage) CreatePark(ctx context.Context, park *entity.Park) (*entity.Park, error) {
	p := *park
	p.ID = 0
	return insert(ctx, s.db, p, parksFromEntity, Parks.toEntity, uniqueParkCode)
}

// UpdatePark applies a partial update to a park
func (s *GormStorage) UpdatePark(ctx context.Context, id int64, patch entity.ParkPatch) (*entity.Park, error) {
	return modify(ctx, s.db, id, patch.Apply, parksFromEntity, Parks.toEntity, uniqueParkCode)
}

// Vehicle operations

// GetVehicle finds a vehicle by ID
func (s *GormStorage) GetVehicle(ctx context.Context, id int64) (*entity.Vehicle, error) {
	return findOne(ctx, s.db, Vehicles.toEntity, "id = ?", id)
}

// GetVehicleByPlate finds a vehicle by plate number
func (s *GormStorage) GetVehicleByPlate(ctx context.Context, plateNumber string) (*entity.Vehicle, error) {
	return findOne(ctx, s.db, Vehicles.toEntity, "plate_number = ?", plateNumber)
}

// ListVehicles returns every vehicles
func (s *GormStorage) ListVehicles(ctx context.Context) ([]*entity.Vehicle, error) {
	return findAll(ctx, s.db, Vehicles.toEntity, nil)
}

// ListActiveVehicles returns the vehicles currently in active status
func (s *GormStorage) ListActiveVehicles(ctx context.Context) ([]*entity.Vehicle, error) {
	return findAll(ctx, s.db, Vehicles.toEntity, whereEq("status", entity.VehicleActive))
}

// ListCorporateVehicles returns the vehicles owned by a corporate
func (s *GormStorage) ListCorporateVehicles(ctx context.Context, corporateID int64) ([]*entity.Vehicle, error) {
	return findAll(ctx, s.db, Vehicles.toEntity, whereEq("corporate_id", corporateID))
}

// CreateVehicle persists a new vehicle
func (s *GormStorage) CreateVehicle(ctx context.Context, vehicle *entity.Vehicle) (*entity.Vehicle, error) {
	v := *vehicle
	v.ID = 0
	return insert(ctx, s.db, v, vehiclesFromEntity, Vehicles.toEntity, uniquePlateNumber)
}

// UpdateVehicle applies a partial update to a vehicle
func (s *GormStorage) UpdateVehicle(ctx context.Context, id int64, patch entity.VehiclePatch) (*entity.Vehicle, error) {
	return modify(ctx, s.db, id, patch.Apply, vehiclesFromEntity, Vehicles.toEntity, uniquePlateNumber)
}

// Driver operations

// GetDriver finds a driver by ID
func (s *GormStorage) GetDriver(ctx context.Context, id int64) (*entity.Driver, error) {
	return findOne(ctx, s.db, Drivers.toEntity, "id = ?", id)
}

// ListDrivers returns every drivers
func (s *GormStorage) ListDrivers(ctx context.Context) ([]*entity.Driver, error) {
	return findAll(ctx, s.db, Drivers.toEntity, nil)
}

// ListCorporateDrivers returns the drivers employed by a corporate
func (s *GormStorage) ListCorporateDrivers(ctx context.Context, corporateID int64) ([]*entity.Driver, error) {
	return findAll(ctx, s.db, Drivers.toEntity, whereEq("corporate_id", corporateID))
}

// CreateDriver persists a new driver
func (s *GormStorage) CreateDriver(ctx context.Context, driver *entity.Driver) (*entity.Driver, error) {
	d := *driver
	d.ID = 0
	return insert(ctx, s.db, d, driversFromEntity, Drivers.toEntity, uniqueLicenseNumber)
}

// UpdateDriver applies a partial update to a driver
func (s *GormStorage) UpdateDriver(ctx context.Context, id int64, patch entity.DriverPatch) (*entity.Driver, error) {
	return modify(ctx, s.db, id, patch.Apply, driversFromEntity, Drivers.toEntity, uniqueLicenseNumber)
}
