package entity

// DashboardStats are the headline figures computed live from storage
type DashboardStats struct {
	ActiveVehicles  int `json:"activeVehicles"`
	PassengersToday int `json:"passengersToday"`
	RegisteredParks int `json:"registeredParks"`
	ViolationsToday int `json:"violationsToday"`
}
