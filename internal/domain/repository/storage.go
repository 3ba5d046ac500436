package repository

// DefaultRecentLimit is the number of records returned by the List*Recent*
// operations when the caller does not ask for a specific amount.
const DefaultRecentLimit = 5

// Storage is the full data access surface consumed by the request handlers.
// One handle is built at startup and shared by every handler.
type Storage interface {
	UserRepository
	AgencyRepository
	CorporateRepository
	ParkRepository
	VehicleRepository
	DriverRepository
	ManifestRepository
	PassengerRepository
	ParcelRepository
	TrafficReportRepository
	SecurityAlertRepository
	ViolationRepository
}
