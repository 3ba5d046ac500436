package api

import (
	"encoding/json"
	"time"

	"fleetwatch-service/internal/domain/entity"
)

// Create request bodies. Optional fields left out of the body get the
// defaults of the relational schema.

func orDefault[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}

func orString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

type CreateAgencyRequest struct {
	Name              string `json:"name" binding:"required"`
	Type              string `json:"type" binding:"required,oneof=police immigration road_safety customs"`
	ConnectionStatus  string `json:"connectionStatus" binding:"omitempty,oneof=active partial inactive"`
	ActiveConnections *int   `json:"activeConnections" binding:"omitempty,min=0"`
}

func (r CreateAgencyRequest) toEntity() *entity.Agency {
	return &entity.Agency{
		Name:              r.Name,
		Type:              r.Type,
		ConnectionStatus:  orString(r.ConnectionStatus, entity.ConnectionActive),
		ActiveConnections: orDefault(r.ActiveConnections, 0),
	}
}

type CreateCorporateRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contactPerson" binding:"required"`
	Email         string `json:"email" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Subscription  string `json:"subscription" binding:"omitempty,oneof=basic premium"`
	FleetCount    *int   `json:"fleetCount" binding:"omitempty,min=0"`
}

func (r CreateCorporateRequest) toEntity() *entity.Corporate {
	return &entity.Corporate{
		Name:          r.Name,
		ContactPerson: r.ContactPerson,
		Email:         r.Email,
		Phone:         r.Phone,
		Subscription:  orString(r.Subscription, entity.SubscriptionBasic),
		FleetCount:    orDefault(r.FleetCount, 0),
	}
}

type CreateParkRequest struct {
	Name              string  `json:"name" binding:"required"`
	Code              string  `json:"code" binding:"required"`
	Location          string  `json:"location" binding:"required"`
	Region            string  `json:"region" binding:"required"`
	Capacity          *int    `json:"capacity" binding:"required,min=0"`
	CurrentVehicles   *int    `json:"currentVehicles" binding:"omitempty,min=0"`
	PassengerCapacity *int    `json:"passengerCapacity" binding:"required,min=0"`
	Status            string  `json:"status" binding:"omitempty,oneof=active maintenance closed"`
	Coordinates       *string `json:"coordinates"`
}

func (r CreateParkRequest) toEntity() *entity.Park {
	return &entity.Park{
		Name:              r.Name,
		Code:              r.Code,
		Location:          r.Location,
		Region:            r.Region,
		Capacity:          *r.Capacity,
		CurrentVehicles:   orDefault(r.CurrentVehicles, 0),
		PassengerCapacity: *r.PassengerCapacity,
		Status:            orString(r.Status, entity.ParkActive),
		Coordinates:       r.Coordinates,
	}
}

type CreateVehicleRequest struct {
	PlateNumber       string     `json:"plateNumber" binding:"required"`
	Model             string     `json:"model" binding:"required"`
	Type              string     `json:"type" binding:"required"`
	SeatingCapacity   *int       `json:"seatingCapacity" binding:"required,min=0"`
	CorporateID       *int64     `json:"corporateId"`
	DriverID          *int64     `json:"driverId"`
	CurrentParkID     *int64     `json:"currentParkId"`
	Status            string     `json:"status" binding:"omitempty,oneof=active maintenance inactive"`
	CurrentLocation   *string    `json:"currentLocation"`
	DestinationParkID *int64     `json:"destinationParkId"`
	ExpectedArrival   *time.Time `json:"expectedArrival"`
	CurrentRoute      *string    `json:"currentRoute"`
	OnboardPassengers *int       `json:"onboardPassengers" binding:"omitempty,min=0"`
	TrackingStatus    string     `json:"trackingStatus" binding:"omitempty,oneof=on_schedule delayed stopped alert"`
}

func (r CreateVehicleRequest) toEntity() *entity.Vehicle {
	return &entity.Vehicle{
		PlateNumber:       r.PlateNumber,
		Model:             r.Model,
		Type:              r.Type,
		SeatingCapacity:   *r.SeatingCapacity,
		CorporateID:       r.CorporateID,
		DriverID:          r.DriverID,
		CurrentParkID:     r.CurrentParkID,
		Status:            orString(r.Status, entity.VehicleActive),
		CurrentLocation:   r.CurrentLocation,
		DestinationParkID: r.DestinationParkID,
		ExpectedArrival:   r.ExpectedArrival,
		CurrentRoute:      r.CurrentRoute,
		OnboardPassengers: orDefault(r.OnboardPassengers, 0),
		TrackingStatus:    orString(r.TrackingStatus, entity.TrackingOnSchedule),
	}
}

type CreateDriverRequest struct {
	FullName      string `json:"fullName" binding:"required"`
	LicenseNumber string `json:"licenseNumber" binding:"required"`
	ContactPhone  string `json:"contactPhone" binding:"required"`
	CorporateID   *int64 `json:"corporateId"`
	Status        string `json:"status" binding:"omitempty,oneof=active suspended inactive"`
}

func (r CreateDriverRequest) toEntity() *entity.Driver {
	return &entity.Driver{
		FullName:      r.FullName,
		LicenseNumber: r.LicenseNumber,
		ContactPhone:  r.ContactPhone,
		CorporateID:   r.CorporateID,
		Status:        orString(r.Status, entity.DriverActive),
	}
}

// CreateManifestRequest leaves manifestCode optional; the storage generates
// one when it is blank.
type CreateManifestRequest struct {
	ManifestCode        string     `json:"manifestCode"`
	VehicleID           *int64     `json:"vehicleId" binding:"required"`
	DriverID            *int64     `json:"driverId" binding:"required"`
	OriginParkID        *int64     `json:"originParkId" binding:"required"`
	DestinationParkID   *int64     `json:"destinationParkId" binding:"required"`
	DepartureTime       *time.Time `json:"departureTime" binding:"required"`
	ExpectedArrivalTime *time.Time `json:"expectedArrivalTime" binding:"required"`
	PassengerCount      *int       `json:"passengerCount" binding:"omitempty,min=0"`
	AdultCount          *int       `json:"adultCount" binding:"omitempty,min=0"`
	ChildrenCount       *int       `json:"childrenCount" binding:"omitempty,min=0"`
	MaleCount           *int       `json:"maleCount" binding:"omitempty,min=0"`
	FemaleCount         *int       `json:"femaleCount" binding:"omitempty,min=0"`
	CargoWeight         *int       `json:"cargoWeight" binding:"omitempty,min=0"`
	Status              string     `json:"status" binding:"omitempty,oneof=active completed cancelled"`
}

func (r CreateManifestRequest) toEntity() *entity.Manifest {
	return &entity.Manifest{
		ManifestCode:        r.ManifestCode,
		VehicleID:           *r.VehicleID,
		DriverID:            *r.DriverID,
		OriginParkID:        *r.OriginParkID,
		DestinationParkID:   *r.DestinationParkID,
		DepartureTime:       *r.DepartureTime,
		ExpectedArrivalTime: *r.ExpectedArrivalTime,
		PassengerCount:      orDefault(r.PassengerCount, 0),
		AdultCount:          orDefault(r.AdultCount, 0),
		ChildrenCount:       orDefault(r.ChildrenCount, 0),
		MaleCount:           orDefault(r.MaleCount, 0),
		FemaleCount:         orDefault(r.FemaleCount, 0),
		CargoWeight:         entity.Ref(orDefault(r.CargoWeight, 0)),
		Status:              orString(r.Status, entity.ManifestActive),
	}
}

type CreatePassengerRequest struct {
	ManifestID       *int64          `json:"manifestId" binding:"required"`
	FullName         string          `json:"fullName" binding:"required"`
	Gender           string          `json:"gender" binding:"required"`
	Age              *int            `json:"age" binding:"omitempty,min=0"`
	ContactPhone     *string         `json:"contactPhone"`
	Luggage          json.RawMessage `json:"luggage"`
	EmergencyContact *string         `json:"emergencyContact"`
}

func (r CreatePassengerRequest) toEntity() *entity.Passenger {
	luggage := r.Luggage
	if string(luggage) == "null" {
		luggage = nil
	}
	return &entity.Passenger{
		ManifestID:       *r.ManifestID,
		FullName:         r.FullName,
		Gender:           r.Gender,
		Age:              r.Age,
		ContactPhone:     r.ContactPhone,
		Luggage:          luggage,
		EmergencyContact: r.EmergencyContact,
	}
}

type CreateParcelRequest struct {
	TrackingCode       string `json:"trackingCode" binding:"required"`
	ManifestID         *int64 `json:"manifestId" binding:"required"`
	SenderName         string `json:"senderName" binding:"required"`
	SenderContact      string `json:"senderContact" binding:"required"`
	RecipientName      string `json:"recipientName" binding:"required"`
	RecipientContact   string `json:"recipientContact" binding:"required"`
	Weight             *int   `json:"weight" binding:"required,min=0"`
	Description        string `json:"description" binding:"required"`
	Status             string `json:"status" binding:"omitempty,oneof=in_transit delivered returned"`
	VerificationStatus string `json:"verificationStatus" binding:"omitempty,oneof=verified pending rejected"`
}

func (r CreateParcelRequest) toEntity() *entity.Parcel {
	return &entity.Parcel{
		TrackingCode:       r.TrackingCode,
		ManifestID:         *r.ManifestID,
		SenderName:         r.SenderName,
		SenderContact:      r.SenderContact,
		RecipientName:      r.RecipientName,
		RecipientContact:   r.RecipientContact,
		Weight:             *r.Weight,
		Description:        r.Description,
		Status:             orString(r.Status, entity.ParcelInTransit),
		VerificationStatus: orString(r.VerificationStatus, entity.VerificationVerified),
	}
}

type CreateTrafficReportRequest struct {
	Route           string  `json:"route" binding:"required"`
	VehicleCount    *int    `json:"vehicleCount" binding:"required,min=0"`
	CongestionLevel string  `json:"congestionLevel" binding:"required,oneof=low medium high"`
	PredictedTrend  *string `json:"predictedTrend"`
}

func (r CreateTrafficReportRequest) toEntity() *entity.TrafficReport {
	return &entity.TrafficReport{
		Route:           r.Route,
		VehicleCount:    *r.VehicleCount,
		CongestionLevel: r.CongestionLevel,
		PredictedTrend:  r.PredictedTrend,
	}
}

type CreateSecurityAlertRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Priority    string  `json:"priority" binding:"required,oneof=high medium low"`
	VehicleID   *int64  `json:"vehicleId"`
	Location    *string `json:"location"`
	AgencyID    *int64  `json:"agencyId"`
	Status      string  `json:"status" binding:"omitempty,oneof=active resolved false_alarm"`
}

func (r CreateSecurityAlertRequest) toEntity() *entity.SecurityAlert {
	return &entity.SecurityAlert{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		VehicleID:   r.VehicleID,
		Location:    r.Location,
		AgencyID:    r.AgencyID,
		Status:      orString(r.Status, entity.AlertActive),
	}
}

type CreateViolationRequest struct {
	VehicleID   *int64  `json:"vehicleId" binding:"required"`
	DriverID    *int64  `json:"driverId"`
	Type        string  `json:"type" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Location    *string `json:"location"`
	ReportedBy  *int64  `json:"reportedBy" binding:"required"`
	Status      string  `json:"status" binding:"omitempty,oneof=reported under_review resolved"`
}

func (r CreateViolationRequest) toEntity() *entity.Violation {
	return &entity.Violation{
		VehicleID:   *r.VehicleID,
		DriverID:    r.DriverID,
		Type:        r.Type,
		Description: r.Description,
		Location:    r.Location,
		ReportedBy:  *r.ReportedBy,
		Status:      orString(r.Status, entity.ViolationReported),
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
