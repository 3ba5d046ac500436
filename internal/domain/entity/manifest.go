package entity

import "time"

// Manifest status
const (
	ManifestActive    = "active"
	ManifestCompleted = "completed"
	ManifestCancelled = "cancelled"
)

// Manifest is the trip record binding a vehicle, driver, route and passenger
// and cargo counts for one departure. CreatedAt is assigned by the storage and
// never changes afterwards.
type Manifest struct {
	ID                  int64     `json:"id"`
	ManifestCode        string    `json:"manifestCode"` // unique
	VehicleID           int64     `json:"vehicleId"`
	DriverID            int64     `json:"driverId"`
	OriginParkID        int64     `json:"originParkId"`
	DestinationParkID   int64     `json:"destinationParkId"`
	DepartureTime       time.Time `json:"departureTime"`
	ExpectedArrivalTime time.Time `json:"expectedArrivalTime"`
	PassengerCount      int       `json:"passengerCount"`
	AdultCount          int       `json:"adultCount"`
	ChildrenCount       int       `json:"childrenCount"`
	MaleCount           int       `json:"maleCount"`
	FemaleCount         int       `json:"femaleCount"`
	CargoWeight         *int      `json:"cargoWeight"` // kg
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
}

// ManifestPatch holds the fields of a manifest partial update
type ManifestPatch struct {
	ManifestCode        *string    `json:"manifestCode,omitempty" binding:"omitempty,min=1"`
	VehicleID           *int64     `json:"vehicleId,omitempty"`
	DriverID            *int64     `json:"driverId,omitempty"`
	OriginParkID        *int64     `json:"originParkId,omitempty"`
	DestinationParkID   *int64     `json:"destinationParkId,omitempty"`
	DepartureTime       *time.Time `json:"departureTime,omitempty"`
	ExpectedArrivalTime *time.Time `json:"expectedArrivalTime,omitempty"`
	PassengerCount      *int       `json:"passengerCount,omitempty" binding:"omitempty,min=0"`
	AdultCount          *int       `json:"adultCount,omitempty" binding:"omitempty,min=0"`
	ChildrenCount       *int       `json:"childrenCount,omitempty" binding:"omitempty,min=0"`
	MaleCount           *int       `json:"maleCount,omitempty" binding:"omitempty,min=0"`
	FemaleCount         *int       `json:"femaleCount,omitempty" binding:"omitempty,min=0"`
	CargoWeight         *int       `json:"cargoWeight,omitempty" binding:"omitempty,min=0"`
	Status              *string    `json:"status,omitempty" binding:"omitempty,oneof=active completed cancelled"`
}

// Apply merges the patch over m and returns the result
func (p ManifestPatch) Apply(m Manifest) Manifest {
	set(&m.ManifestCode, p.ManifestCode)
	set(&m.VehicleID, p.VehicleID)
	set(&m.DriverID, p.DriverID)
	set(&m.OriginParkID, p.OriginParkID)
	set(&m.DestinationParkID, p.DestinationParkID)
	set(&m.DepartureTime, p.DepartureTime)
	set(&m.ExpectedArrivalTime, p.ExpectedArrivalTime)
	set(&m.PassengerCount, p.PassengerCount)
	set(&m.AdultCount, p.AdultCount)
	set(&m.ChildrenCount, p.ChildrenCount)
	set(&m.MaleCount, p.MaleCount)
	set(&m.FemaleCount, p.FemaleCount)
	setRef(&m.CargoWeight, p.CargoWeight)
	set(&m.Status, p.Status)
	return m
}
