package entity

import "time"

// Congestion levels
const (
	CongestionLow    = "low"
	CongestionMedium = "medium"
	CongestionHigh   = "high"
)

// TrafficReport is a point-in-time traffic density reading for a named route
type TrafficReport struct {
	ID              int64     `json:"id"`
	Route           string    `json:"route"`
	VehicleCount    int       `json:"vehicleCount"`
	CongestionLevel string    `json:"congestionLevel"`
	Timestamp       time.Time `json:"timestamp"`
	PredictedTrend  *string   `json:"predictedTrend"` // increasing, decreasing, stable
}
