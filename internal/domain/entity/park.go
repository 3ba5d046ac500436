package entity

// Park status
const (
	ParkActive      = "active"
	ParkMaintenance = "maintenance"
	ParkClosed      = "closed"
)

// Park represents a terminal or station where vehicles are based or stop
type Park struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Code              string  `json:"code"` // unique
	Location          string  `json:"location"`
	Region            string  `json:"region"`
	Capacity          int     `json:"capacity"`
	CurrentVehicles   int     `json:"currentVehicles"`
	PassengerCapacity int     `json:"passengerCapacity"`
	Status            string  `json:"status"`
	Coordinates       *string `json:"coordinates"`
}

// ParkPatch holds the fields of a park partial update
type ParkPatch struct {
	Name              *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Code              *string `json:"code,omitempty" binding:"omitempty,min=1"`
	Location          *string `json:"location,omitempty"`
	Region            *string `json:"region,omitempty"`
	Capacity          *int    `json:"capacity,omitempty" binding:"omitempty,min=0"`
	CurrentVehicles   *int    `json:"currentVehicles,omitempty" binding:"omitempty,min=0"`
	PassengerCapacity *int    `json:"passengerCapacity,omitempty" binding:"omitempty,min=0"`
	Status            *string `json:"status,omitempty" binding:"omitempty,oneof=active maintenance closed"`
	Coordinates       *string `json:"coordinates,omitempty"`
}

// Apply merges the patch over park and returns the result
func (p ParkPatch) Apply(park Park) Park {
	set(&park.Name, p.Name)
	set(&park.Code, p.Code)
	set(&park.Location, p.Location)
	set(&park.Region, p.Region)
	set(&park.Capacity, p.Capacity)
	set(&park.CurrentVehicles, p.CurrentVehicles)
	set(&park.PassengerCapacity, p.PassengerCapacity)
	set(&park.Status, p.Status)
	setRef(&park.Coordinates, p.Coordinates)
	return park
}
