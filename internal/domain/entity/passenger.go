package entity

import "encoding/json"

// Passenger is a traveller listed on a manifest
type Passenger struct {
	ID               int64           `json:"id"`
	ManifestID       int64           `json:"manifestId"`
	FullName         string          `json:"fullName"`
	Gender           string          `json:"gender"`
	Age              *int            `json:"age"`
	ContactPhone     *string         `json:"contactPhone"`
	Luggage          json.RawMessage `json:"luggage"`
	EmergencyContact *string         `json:"emergencyContact"`
}
