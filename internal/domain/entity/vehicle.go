package entity

import "time"

// Vehicle status
const (
	VehicleActive      = "active"
	VehicleMaintenance = "maintenance"
	VehicleInactive    = "inactive"
)

// Vehicle tracking status
const (
	TrackingOnSchedule = "on_schedule"
	TrackingDelayed    = "delayed"
	TrackingStopped    = "stopped"
	TrackingAlert      = "alert"
)

// Vehicle represents a registered fleet vehicle and its live tracking state
type Vehicle struct {
	ID                int64      `json:"id"`
	PlateNumber       string     `json:"plateNumber"` // unique
	Model             string     `json:"model"`
	Type              string     `json:"type"`
	SeatingCapacity   int        `json:"seatingCapacity"`
	CorporateID       *int64     `json:"corporateId"`
	DriverID          *int64     `json:"driverId"`
	CurrentParkID     *int64     `json:"currentParkId"`
	Status            string     `json:"status"`
	CurrentLocation   *string    `json:"currentLocation"`
	DestinationParkID *int64     `json:"destinationParkId"`
	ExpectedArrival   *time.Time `json:"expectedArrival"`
	CurrentRoute      *string    `json:"currentRoute"`
	OnboardPassengers int        `json:"onboardPassengers"`
	TrackingStatus    string     `json:"trackingStatus"`
}

// VehiclePatch holds the fields of a vehicle partial update
type VehiclePatch struct {
	PlateNumber       *string    `json:"plateNumber,omitempty" binding:"omitempty,min=1"`
	Model             *string    `json:"model,omitempty"`
	Type              *string    `json:"type,omitempty"`
	SeatingCapacity   *int       `json:"seatingCapacity,omitempty" binding:"omitempty,min=0"`
	CorporateID       *int64     `json:"corporateId,omitempty"`
	DriverID          *int64     `json:"driverId,omitempty"`
	CurrentParkID     *int64     `json:"currentParkId,omitempty"`
	Status            *string    `json:"status,omitempty" binding:"omitempty,oneof=active maintenance inactive"`
	CurrentLocation   *string    `json:"currentLocation,omitempty"`
	DestinationParkID *int64     `json:"destinationParkId,omitempty"`
	ExpectedArrival   *time.Time `json:"expectedArrival,omitempty"`
	CurrentRoute      *string    `json:"currentRoute,omitempty"`
	OnboardPassengers *int       `json:"onboardPassengers,omitempty" binding:"omitempty,min=0"`
	TrackingStatus    *string    `json:"trackingStatus,omitempty" binding:"omitempty,oneof=on_schedule delayed stopped alert"`
}

// Apply merges the patch over v and returns the result
func (p VehiclePatch) Apply(v Vehicle) Vehicle {
	set(&v.PlateNumber, p.PlateNumber)
	set(&v.Model, p.Model)
	set(&v.Type, p.Type)
	set(&v.SeatingCapacity, p.SeatingCapacity)
	setRef(&v.CorporateID, p.CorporateID)
	setRef(&v.DriverID, p.DriverID)
	setRef(&v.CurrentParkID, p.CurrentParkID)
	set(&v.Status, p.Status)
	setRef(&v.CurrentLocation, p.CurrentLocation)
	setRef(&v.DestinationParkID, p.DestinationParkID)
	setRef(&v.ExpectedArrival, p.ExpectedArrival)
	setRef(&v.CurrentRoute, p.CurrentRoute)
	set(&v.OnboardPassengers, p.OnboardPassengers)
	set(&v.TrackingStatus, p.TrackingStatus)
	return v
}
