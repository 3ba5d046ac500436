package repository

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"fleetwatch-service/internal/domain/entity"
)

// GORM models for database mapping. Column names follow the relational
// schema shared with the dashboard; unique indexes back the unique fields.

type Users struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Username    string `gorm:"column:username;not null;uniqueIndex"`
	Password    string `gorm:"column:password;not null"`
	FullName    string `gorm:"column:full_name;not null"`
	Email       string `gorm:"column:email;not null"`
	Role        string `gorm:"column:role;not null"`
	AgencyID    *int64 `gorm:"column:agency_id"`
	CorporateID *int64 `gorm:"column:corporate_id"`
}

func (Users) TableName() string {
	return "users"
}

type Agencies struct {
	ID                int64  `gorm:"primaryKey;autoIncrement"`
	Name              string `gorm:"column:name;not null"`
	Type              string `gorm:"column:type;not null"`
	ConnectionStatus  string `gorm:"column:connection_status;not null"`
	ActiveConnections int    `gorm:"column:active_connections;not null"`
}

func (Agencies) TableName() string {
	return "agencies"
}

type Corporates struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"column:name;not null"`
	ContactPerson string `gorm:"column:contact_person;not null"`
	Email         string `gorm:"column:email;not null"`
	Phone         string `gorm:"column:phone;not null"`
	Subscription  string `gorm:"column:subscription;not null"`
	FleetCount    int    `gorm:"column:fleet_count;not null"`
}

func (Corporates) TableName() string {
	return "corporates"
}

type Parks struct {
	ID                int64   `gorm:"primaryKey;autoIncrement"`
	Name              string  `gorm:"column:name;not null"`
	Code              string  `gorm:"column:code;not null;uniqueIndex"`
	Location          string  `gorm:"column:location;not null"`
	Region            string  `gorm:"column:region;not null"`
	Capacity          int     `gorm:"column:capacity;not null"`
	CurrentVehicles   int     `gorm:"column:current_vehicles;not null"`
	PassengerCapacity int     `gorm:"column:passenger_capacity;not null"`
	Status            string  `gorm:"column:status;not null"`
	Coordinates       *string `gorm:"column:coordinates"`
}

func (Parks) TableName() string {
	return "parks"
}

type Vehicles struct {
	ID                int64      `gorm:"primaryKey;autoIncrement"`
	PlateNumber       string     `gorm:"column:plate_number;not null;uniqueIndex"`
	Model             string     `gorm:"column:model;not null"`
	Type              string     `gorm:"column:type;not null"`
	SeatingCapacity   int        `gorm:"column:seating_capacity;not null"`
	CorporateID       *int64     `gorm:"column:corporate_id;index"`
	DriverID          *int64     `gorm:"column:driver_id"`
	CurrentParkID     *int64     `gorm:"column:current_park_id"`
	Status            string     `gorm:"column:status;not null;index"`
	CurrentLocation   *string    `gorm:"column:current_location"`
	DestinationParkID *int64     `gorm:"column:destination_park_id"`
	ExpectedArrival   *time.Time `gorm:"column:expected_arrival"`
	CurrentRoute      *string    `gorm:"column:current_route"`
	OnboardPassengers int        `gorm:"column:onboard_passengers"`
	TrackingStatus    string     `gorm:"column:tracking_status"`
}

func (Vehicles) TableName() string {
	return "vehicles"
}

type Drivers struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	FullName      string `gorm:"column:full_name;not null"`
	LicenseNumber string `gorm:"column:license_number;not null;uniqueIndex"`
	ContactPhone  string `gorm:"column:contact_phone;not null"`
	CorporateID   *int64 `gorm:"column:corporate_id;index"`
	Status        string `gorm:"column:status;not null"`
}

func (Drivers) TableName() string {
	return "drivers"
}

type Manifests struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement"`
	ManifestCode        string    `gorm:"column:manifest_code;not null;uniqueIndex"`
	VehicleID           int64     `gorm:"column:vehicle_id;not null"`
	DriverID            int64     `gorm:"column:driver_id;not null"`
	OriginParkID        int64     `gorm:"column:origin_park_id;not null"`
	DestinationParkID   int64     `gorm:"column:destination_park_id;not null"`
	DepartureTime       time.Time `gorm:"column:departure_time;not null"`
	ExpectedArrivalTime time.Time `gorm:"column:expected_arrival_time;not null"`
	PassengerCount      int       `gorm:"column:passenger_count;not null"`
	AdultCount          int       `gorm:"column:adult_count;not null"`
	ChildrenCount       int       `gorm:"column:children_count;not null"`
	MaleCount           int       `gorm:"column:male_count;not null"`
	FemaleCount         int       `gorm:"column:female_count;not null"`
	CargoWeight         *int      `gorm:"column:cargo_weight"`
	Status              string    `gorm:"column:status;not null;index"`
	CreatedAt           time.Time `gorm:"column:created_at;not null;index"`
}

func (Manifests) TableName() string {
	return "manifests"
}

type Passengers struct {
	ID               int64           `gorm:"primaryKey;autoIncrement"`
	ManifestID       int64           `gorm:"column:manifest_id;not null;index"`
	FullName         string          `gorm:"column:full_name;not null"`
	Gender           string          `gorm:"column:gender;not null"`
	Age              *int            `gorm:"column:age"`
	ContactPhone     *string         `gorm:"column:contact_phone"`
	Luggage          *datatypes.JSON `gorm:"column:luggage"`
	EmergencyContact *string         `gorm:"column:emergency_contact"`
}

func (Passengers) TableName() string {
	return "passengers"
}

type Parcels struct {
	ID                 int64  `gorm:"primaryKey;autoIncrement"`
	TrackingCode       string `gorm:"column:tracking_code;not null;uniqueIndex"`
	ManifestID         int64  `gorm:"column:manifest_id;not null;index"`
	SenderName         string `gorm:"column:sender_name;not null"`
	SenderContact      string `gorm:"column:sender_contact;not null"`
	RecipientName      string `gorm:"column:recipient_name;not null"`
	RecipientContact   string `gorm:"column:recipient_contact;not null"`
	Weight             int    `gorm:"column:weight;not null"`
	Description        string `gorm:"column:description;not null"`
	Status             string `gorm:"column:status;not null"`
	VerificationStatus string `gorm:"column:verification_status;not null"`
}

func (Parcels) TableName() string {
	return "parcels"
}

type TrafficReports struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	Route           string    `gorm:"column:route;not null"`
	VehicleCount    int       `gorm:"column:vehicle_count;not null"`
	CongestionLevel string    `gorm:"column:congestion_level;not null"`
	Timestamp       time.Time `gorm:"column:timestamp;not null;index"`
	PredictedTrend  *string   `gorm:"column:predicted_trend"`
}

func (TrafficReports) TableName() string {
	return "traffic_reports"
}

type SecurityAlerts struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"column:title;not null"`
	Description string    `gorm:"column:description;not null"`
	Priority    string    `gorm:"column:priority;not null"`
	VehicleID   *int64    `gorm:"column:vehicle_id"`
	Location    *string   `gorm:"column:location"`
	AgencyID    *int64    `gorm:"column:agency_id"`
	Timestamp   time.Time `gorm:"column:timestamp;not null;index"`
	Status      string    `gorm:"column:status;not null"`
}

func (SecurityAlerts) TableName() string {
	return "security_alerts"
}

type Violations struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	VehicleID   int64     `gorm:"column:vehicle_id;not null;index"`
	DriverID    *int64    `gorm:"column:driver_id"`
	Type        string    `gorm:"column:type;not null"`
	Description string    `gorm:"column:description;not null"`
	Location    *string   `gorm:"column:location"`
	Timestamp   time.Time `gorm:"column:timestamp;not null;index"`
	ReportedBy  int64     `gorm:"column:reported_by;not null"`
	Status      string    `gorm:"column:status;not null"`
}

func (Violations) TableName() string {
	return "violations"
}

// allModels lists every table managed by AutoMigrate
func allModels() []interface{} {
	return []interface{}{
		&Users{}, &Agencies{}, &Corporates{}, &Parks{}, &Vehicles{}, &Drivers{},
		&Manifests{}, &Passengers{}, &Parcels{}, &TrafficReports{},
		&SecurityAlerts{}, &Violations{},
	}
}

// Conversions between GORM models and domain entities

func (m Users) toEntity() entity.User {
	return entity.User{
		ID:          m.ID,
		Username:    m.Username,
		Password:    m.Password,
		FullName:    m.FullName,
		Email:       m.Email,
		Role:        m.Role,
		AgencyID:    m.AgencyID,
		CorporateID: m.CorporateID,
	}
}

func usersFromEntity(e entity.User) Users {
	return Users{
		ID:          e.ID,
		Username:    e.Username,
		Password:    e.Password,
		FullName:    e.FullName,
		Email:       e.Email,
		Role:        e.Role,
		AgencyID:    e.AgencyID,
		CorporateID: e.CorporateID,
	}
}

func (m Agencies) toEntity() entity.Agency {
	return entity.Agency{
		ID:                m.ID,
		Name:              m.Name,
		Type:              m.Type,
		ConnectionStatus:  m.ConnectionStatus,
		ActiveConnections: m.ActiveConnections,
	}
}

func agenciesFromEntity(e entity.Agency) Agencies {
	return Agencies{
		ID:                e.ID,
		Name:              e.Name,
		Type:              e.Type,
		ConnectionStatus:  e.ConnectionStatus,
		ActiveConnections: e.ActiveConnections,
	}
}

func (m Corporates) toEntity() entity.Corporate {
	return entity.Corporate{
		ID:            m.ID,
		Name:          m.Name,
		ContactPerson: m.ContactPerson,
		Email:         m.Email,
		Phone:         m.Phone,
		Subscription:  m.Subscription,
		FleetCount:    m.FleetCount,
	}
}

func corporatesFromEntity(e entity.Corporate) Corporates {
	return Corporates{
		ID:            e.ID,
		Name:          e.Name,
		ContactPerson: e.ContactPerson,
		Email:         e.Email,
		Phone:         e.Phone,
		Subscription:  e.Subscription,
		FleetCount:    e.FleetCount,
	}
}

func (m Parks) toEntity() entity.Park {
	return entity.Park{
		ID:                m.ID,
		Name:              m.Name,
		Code:              m.Code,
		Location:          m.Location,
		Region:            m.Region,
		Capacity:          m.Capacity,
		CurrentVehicles:   m.CurrentVehicles,
		PassengerCapacity: m.PassengerCapacity,
		Status:            m.Status,
		Coordinates:       m.Coordinates,
	}
}

func parksFromEntity(e entity.Park) Parks {
	return Parks{
		ID:                e.ID,
		Name:              e.Name,
		Code:              e.Code,
		Location:          e.Location,
		Region:            e.Region,
		Capacity:          e.Capacity,
		CurrentVehicles:   e.CurrentVehicles,
		PassengerCapacity: e.PassengerCapacity,
		Status:            e.Status,
		Coordinates:       e.Coordinates,
	}
}

func (m Vehicles) toEntity() entity.Vehicle {
	return entity.Vehicle{
		ID:                m.ID,
		PlateNumber:       m.PlateNumber,
		Model:             m.Model,
		Type:              m.Type,
		SeatingCapacity:   m.SeatingCapacity,
		CorporateID:       m.CorporateID,
		DriverID:          m.DriverID,
		CurrentParkID:     m.CurrentParkID,
		Status:            m.Status,
		CurrentLocation:   m.CurrentLocation,
		DestinationParkID: m.DestinationParkID,
		ExpectedArrival:   m.ExpectedArrival,
		CurrentRoute:      m.CurrentRoute,
		OnboardPassengers: m.OnboardPassengers,
		TrackingStatus:    m.TrackingStatus,
	}
}

func vehiclesFromEntity(e entity.Vehicle) Vehicles {
	return Vehicles{
		ID:                e.ID,
		PlateNumber:       e.PlateNumber,
		Model:             e.Model,
		Type:              e.Type,
		SeatingCapacity:   e.SeatingCapacity,
		CorporateID:       e.CorporateID,
		DriverID:          e.DriverID,
		CurrentParkID:     e.CurrentParkID,
		Status:            e.Status,
		CurrentLocation:   e.CurrentLocation,
		DestinationParkID: e.DestinationParkID,
		ExpectedArrival:   e.ExpectedArrival,
		CurrentRoute:      e.CurrentRoute,
		OnboardPassengers: e.OnboardPassengers,
		TrackingStatus:    e.TrackingStatus,
	}
}

func (m Drivers) toEntity() entity.Driver {
	return entity.Driver{
		ID:            m.ID,
		FullName:      m.FullName,
		LicenseNumber: m.LicenseNumber,
		ContactPhone:  m.ContactPhone,
		CorporateID:   m.CorporateID,
		Status:        m.Status,
	}
}

func driversFromEntity(e entity.Driver) Drivers {
	return Drivers{
		ID:            e.ID,
		FullName:      e.FullName,
		LicenseNumber: e.LicenseNumber,
		ContactPhone:  e.ContactPhone,
		CorporateID:   e.CorporateID,
		Status:        e.Status,
	}
}

func (m Manifests) toEntity() entity.Manifest {
	return entity.Manifest{
		ID:                  m.ID,
		ManifestCode:        m.ManifestCode,
		VehicleID:           m.VehicleID,
		DriverID:            m.DriverID,
		OriginParkID:        m.OriginParkID,
		DestinationParkID:   m.DestinationParkID,
		DepartureTime:       m.DepartureTime,
		ExpectedArrivalTime: m.ExpectedArrivalTime,
		PassengerCount:      m.PassengerCount,
		AdultCount:          m.AdultCount,
		ChildrenCount:       m.ChildrenCount,
		MaleCount:           m.MaleCount,
		FemaleCount:         m.FemaleCount,
		CargoWeight:         m.CargoWeight,
		Status:              m.Status,
		CreatedAt:           m.CreatedAt,
	}
}

func manifestsFromEntity(e entity.Manifest) Manifests {
	return Manifests{
		ID:                  e.ID,
		ManifestCode:        e.ManifestCode,
		VehicleID:           e.VehicleID,
		DriverID:            e.DriverID,
		OriginParkID:        e.OriginParkID,
		DestinationParkID:   e.DestinationParkID,
		DepartureTime:       e.DepartureTime,
		ExpectedArrivalTime: e.ExpectedArrivalTime,
		PassengerCount:      e.PassengerCount,
		AdultCount:          e.AdultCount,
		ChildrenCount:       e.ChildrenCount,
		MaleCount:           e.MaleCount,
		FemaleCount:         e.FemaleCount,
		CargoWeight:         e.CargoWeight,
		Status:              e.Status,
		CreatedAt:           e.CreatedAt,
	}
}

func (m Passengers) toEntity() entity.Passenger {
	var luggage json.RawMessage
	if m.Luggage != nil && len(*m.Luggage) > 0 {
		luggage = json.RawMessage(*m.Luggage)
	}
	return entity.Passenger{
		ID:               m.ID,
		ManifestID:       m.ManifestID,
		FullName:         m.FullName,
		Gender:           m.Gender,
		Age:              m.Age,
		ContactPhone:     m.ContactPhone,
		Luggage:          luggage,
		EmergencyContact: m.EmergencyContact,
	}
}

func passengersFromEntity(e entity.Passenger) Passengers {
	var luggage *datatypes.JSON
	if len(e.Luggage) > 0 {
		j := datatypes.JSON(append([]byte(nil), e.Luggage...))
		luggage = &j
	}
	return Passengers{
		ID:               e.ID,
		ManifestID:       e.ManifestID,
		FullName:         e.FullName,
		Gender:           e.Gender,
		Age:              e.Age,
		ContactPhone:     e.ContactPhone,
		Luggage:          luggage,
		EmergencyContact: e.EmergencyContact,
	}
}

func (m Parcels) toEntity() entity.Parcel {
	return entity.Parcel{
		ID:                 m.ID,
		TrackingCode:       m.TrackingCode,
		ManifestID:         m.ManifestID,
		SenderName:         m.SenderName,
		SenderContact:      m.SenderContact,
		RecipientName:      m.RecipientName,
		RecipientContact:   m.RecipientContact,
		Weight:             m.Weight,
		Description:        m.Description,
		Status:             m.Status,
		VerificationStatus: m.VerificationStatus,
	}
}

func parcelsFromEntity(e entity.Parcel) Parcels {
	return Parcels{
		ID:                 e.ID,
		TrackingCode:       e.TrackingCode,
		ManifestID:         e.ManifestID,
		SenderName:         e.SenderName,
		SenderContact:      e.SenderContact,
		RecipientName:      e.RecipientName,
		RecipientContact:   e.RecipientContact,
		Weight:             e.Weight,
		Description:        e.Description,
		Status:             e.Status,
		VerificationStatus: e.VerificationStatus,
	}
}

func (m TrafficReports) toEntity() entity.TrafficReport {
	return entity.TrafficReport{
		ID:              m.ID,
		Route:           m.Route,
		VehicleCount:    m.VehicleCount,
		CongestionLevel: m.CongestionLevel,
		Timestamp:       m.Timestamp,
		PredictedTrend:  m.PredictedTrend,
	}
}

func trafficReportsFromEntity(e entity.TrafficReport) TrafficReports {
	return TrafficReports{
		ID:              e.ID,
		Route:           e.Route,
		VehicleCount:    e.VehicleCount,
		CongestionLevel: e.CongestionLevel,
		Timestamp:       e.Timestamp,
		PredictedTrend:  e.PredictedTrend,
	}
}

func (m SecurityAlerts) toEntity() entity.SecurityAlert {
	return entity.SecurityAlert{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Priority:    m.Priority,
		VehicleID:   m.VehicleID,
		Location:    m.Location,
		AgencyID:    m.AgencyID,
		Timestamp:   m.Timestamp,
		Status:      m.Status,
	}
}

func securityAlertsFromEntity(e entity.SecurityAlert) SecurityAlerts {
	return SecurityAlerts{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Priority:    e.Priority,
		VehicleID:   e.VehicleID,
		Location:    e.Location,
		AgencyID:    e.AgencyID,
		Timestamp:   e.Timestamp,
		Status:      e.Status,
	}
}

func (m Violations) toEntity() entity.Violation {
	return entity.Violation{
		ID:          m.ID,
		VehicleID:   m.VehicleID,
		DriverID:    m.DriverID,
		Type:        m.Type,
		Description: m.Description,
		Location:    m.Location,
		Timestamp:   m.Timestamp,
		ReportedBy:  m.ReportedBy,
		Status:      m.Status,
	}
}

func violationsFromEntity(e entity.Violation) Violations {
	return Violations{
		ID:          e.ID,
		VehicleID:   e.VehicleID,
		DriverID:    e.DriverID,
		Type:        e.Type,
		Description: e.Description,
		Location:    e.Location,
		Timestamp:   e.Timestamp,
		ReportedBy:  e.ReportedBy,
		Status:      e.Status,
	}
}
