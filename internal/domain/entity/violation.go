package entity

import "time"

// Violation status
const (
	ViolationReported    = "reported"
	ViolationUnderReview = "under_review"
	ViolationResolved    = "resolved"
)

// Violation is a traffic or compliance offence recorded against a vehicle
type Violation struct {
	ID          int64     `json:"id"`
	VehicleID   int64     `json:"vehicleId"`
	DriverID    *int64    `json:"driverId"`
	Type        string    `json:"type"` // speeding, overloading, documentation
	Description string    `json:"description"`
	Location    *string   `json:"location"`
	Timestamp   time.Time `json:"timestamp"`
	ReportedBy  int64     `json:"reportedBy"` // user ID
	Status      string    `json:"status"`
}

// ViolationPatch holds the fields of a violation partial update. Status
// transitions are not validated here.
type ViolationPatch struct {
	VehicleID   *int64  `json:"vehicleId,omitempty"`
	DriverID    *int64  `json:"driverId,omitempty"`
	Type        *string `json:"type,omitempty" binding:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	ReportedBy  *int64  `json:"reportedBy,omitempty"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=reported under_review resolved"`
}

// Apply merges the patch over v and returns the result
func (p ViolationPatch) Apply(v Violation) Violation {
	set(&v.VehicleID, p.VehicleID)
	setRef(&v.DriverID, p.DriverID)
	set(&v.Type, p.Type)
	set(&v.Description, p.Description)
	setRef(&v.Location, p.Location)
	set(&v.ReportedBy, p.ReportedBy)
	set(&v.Status, p.Status)
	return v
}
