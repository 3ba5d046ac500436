package repository

import (
	"context"

	"fleetwatch-service/internal/domain/entity"
)

// Agency operations

// GetAgency finds an agency by ID
func (s *MemoryStorage) GetAgency(ctx context.Context, id int64) (*entity.Agency, error) {
	a, ok := s.agencies.get(id)
	return found(a, ok)
}

// ListAgencies returns every agencies
func (s *MemoryStorage) ListAgencies(ctx context.Context) ([]*entity.Agency, error) {
	return refs(s.agencies.list()), nil
}

// CreateAgency stores a new agency
func (s *MemoryStorage) CreateAgency(ctx context.Context, agency *entity.Agency) (*entity.Agency, error) {
	return s.agencies.create(func(id int64) entity.Agency {
		a := *agency
		a.ID = id
		return a
	})
}

// UpdateAgency applies a partial update to an agency
func (s *MemoryStorage) UpdateAgency(ctx context.Context, id int64, patch entity.AgencyPatch) (*entity.Agency, error) {
	a, ok := s.agencies.update(id, patch.Apply)
	return found(a, ok)
}

// Corporate operations

// GetCorporate finds a corporate by ID
func (s *MemoryStorage) GetCorporate(ctx context.Context, id int64) (*entity.Corporate, error) {
	c, ok := s.corporates.get(id)
	return found(c, ok)
}

// ListCorporates returns every corporates
func (s *MemoryStorage) ListCorporates(ctx context.Context) ([]*entity.Corporate, error) {
	return refs(s.corporates.list()), nil
}

// CreateCorporate stores a new corporate
func (s *MemoryStorage) CreateCorporate(ctx context.Context, corporate *entity.Corporate) (*entity.Corporate, error) {
	return s.corporates.create(func(id int64) entity.Corporate {
		c := *corporate
		c.ID = id
		return c
	})
}

// UpdateCorporate applies a partial update to a corporate
func (s *MemoryStorage) UpdateCorporate(ctx context.Context, id int64, patch entity.CorporatePatch) (*entity.Corporate, error) {
	c, ok := s.corporates.update(id, patch.Apply)
	return found(c, ok)
}

// Park operations

// GetPark finds a park by ID
func (s *MemoryStorage) GetPark(ctx context.Context, id int64) (*entity.Park, error) {
	p, ok := s.parks.get(id)
	return found(p, ok)
}

// GetParkByCode finds a park by its code
func (s *MemoryStorage) GetParkByCode(ctx context.Context, code string) (*entity.Park, error) {
	p, ok := s.parks.find(func(p entity.Park) bool { return p.Code == code })
	return found(p, ok)
}

// ListParks returns every parks
func (s *MemoryStorage) ListParks(ctx context.Context) ([]*entity.Park, error) {
	return refs(s.parks.list()), nil
}

// CreatePark stores a new park
func (s *MemoryStorage) CreatePark(ctx context.Context, park *entity.Park) (*entity.Park, error) {
	return s.parks.create(func(id int64) entity.Park {
		p := *park
		p.ID = id
		return p
	})
}

// UpdatePark applies a partial update to a park
func (s *MemoryStorage) UpdatePark(ctx context.Context, id int64, patch entity.ParkPatch) (*entity.Park, error) {
	p, ok := s.parks.update(id, patch.Apply)
	return found(p, ok)
}

// Vehicle operations

// GetVehicle finds a vehicle by ID
func (s *MemoryStorage) GetVehicle(ctx context.Context, id int64) (*entity.Vehicle, error) {
	v, ok := s.vehicles.get(id)
	return found(v, ok)
}

// GetVehicleByPlate finds a vehicle by plate number
func (s *MemoryStorage) GetVehicleByPlate(ctx context.Context, plateNumber string) (*entity.Vehicle, error) {
	v, ok := s.vehicles.find(func(v entity.Vehicle) bool { return v.PlateNumber == plateNumber })
	return found(v, ok)
}

// ListVehicles returns every vehicles
func (s *MemoryStorage) ListVehicles(ctx context.Context) ([]*entity.Vehicle, error) {
	return refs(s.vehicles.list()), nil
}

// ListActiveVehicles returns the vehicles currently in active status
func (s *MemoryStorage) ListActiveVehicles(ctx context.Context) ([]*entity.Vehicle, error) {
	return refs(s.vehicles.filter(func(v entity.Vehicle) bool {
		return v.Status == entity.VehicleActive
	})), nil
}

// ListCorporateVehicles returns the vehicles owned by a corporate
func (s *MemoryStorage) ListCorporateVehicles(ctx context.Context, corporateID int64) ([]*entity.Vehicle, error) {
	return refs(s.vehicles.filter(func(v entity.Vehicle) bool {
		return refersTo(v.CorporateID, corporateID)
	})), nil
}

// CreateVehicle stores a new vehicle
func (s *MemoryStorage) CreateVehicle(ctx context.Context, vehicle *entity.Vehicle) (*entity.Vehicle, error) {
	return s.vehicles.create(func(id int64) entity.Vehicle {
		v := *vehicle
		v.ID = id
		return v
	})
}

// UpdateVehicle applies a partial update to a vehicle
func (s *MemoryStorage) UpdateVehicle(ctx context.Context, id int64, patch entity.VehiclePatch) (*entity.Vehicle, error) {
	v, ok := s.vehicles.update(id, patch.Apply)
	return found(v, ok)
}

// Driver operations

// GetDriver finds a driver by ID
func (s *MemoryStorage) GetDriver(ctx context.Context, id int64) (*entity.Driver, error) {
	d, ok := s.drivers.get(id)
	return found(d, ok)
}

// ListDrivers returns every drivers
func (s *MemoryStorage) ListDrivers(ctx context.Context) ([]*entity.Driver, error) {
	return refs(s.drivers.list()), nil
}

// ListCorporateDrivers returns the drivers employed by a corporate
func (s *MemoryStorage) ListCorporateDrivers(ctx context.Context, corporateID int64) ([]*entity.Driver, error) {
	return refs(s.drivers.filter(func(d entity.Driver) bool {
		return refersTo(d.CorporateID, corporateID)
	})), nil
}

// CreateDriver stores a new driver
func (s *MemoryStorage) CreateDriver(ctx context.Context, driver *entity.Driver) (*entity.Driver, error) {
	return s.drivers.create(func(id int64) entity.Driver {
		d := *driver
		d.ID = id
		return d
	})
}

// UpdateDriver applies a partial update to a driver
func (s *MemoryStorage) UpdateDriver(ctx context.Context, id int64, patch entity.DriverPatch) (*entity.Driver, error) {
	d, ok := s.drivers.update(id, patch.Apply)
	return found(d, ok)
}
