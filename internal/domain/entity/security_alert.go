package entity

import "time"

// Alert priority
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Alert status
const (
	AlertActive     = "active"
	AlertResolved   = "resolved"
	AlertFalseAlarm = "false_alarm"
)

// SecurityAlert is an incident shared with connected agencies
type SecurityAlert struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	VehicleID   *int64    `json:"vehicleId"`
	Location    *string   `json:"location"`
	AgencyID    *int64    `json:"agencyId"`
	Timestamp   time.Time `json:"timestamp"`
	Status      string    `json:"status"`
}

// SecurityAlertPatch holds the fields of an alert partial update
type SecurityAlertPatch struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty" binding:"omitempty,oneof=high medium low"`
	VehicleID   *int64  `json:"vehicleId,omitempty"`
	Location    *string `json:"location,omitempty"`
	AgencyID    *int64  `json:"agencyId,omitempty"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=active resolved false_alarm"`
}

// Apply merges the patch over a and returns the result
func (p SecurityAlertPatch) Apply(a SecurityAlert) SecurityAlert {
	set(&a.Title, p.Title)
	set(&a.Description, p.Description)
	set(&a.Priority, p.Priority)
	setRef(&a.VehicleID, p.VehicleID)
	setRef(&a.Location, p.Location)
	setRef(&a.AgencyID, p.AgencyID)
	set(&a.Status, p.Status)
	return a
}
