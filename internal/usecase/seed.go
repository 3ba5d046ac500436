package usecase

import (
	"context"
	"fmt"
	"time"

	"fleetwatch-service/internal/domain/entity"
	"fleetwatch-service/internal/domain/repository"
	"fleetwatch-service/pkg/logger"
)

// Seed loads the demo dataset into an empty store. It does nothing when any
// park already exists, so restarting against a persistent backend is safe.
func Seed(ctx context.Context, store repository.Storage, log logger.Logger) error {
	return seedAt(ctx, store, log, time.Now())
}

func seedAt(ctx context.Context, store repository.Storage, log logger.Logger, now time.Time) error {
	parks, err := store.ListParks(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing data: %w", err)
	}
	if len(parks) > 0 {
		log.Info("Store already holds data, skipping seed", "parks", len(parks))
		return nil
	}

	password, err := HashPassword("admin123")
	if err != nil {
		return err
	}
	if _, err := store.CreateUser(ctx, &entity.User{
		Username: "admin",
		Password: password,
		FullName: "Admin User",
		Email:    "admin@visionone.com",
		Role:     entity.RoleAdmin,
	}); err != nil {
		return fmt.Errorf("failed to seed user: %w", err)
	}

	for _, a := range seedAgencies {
		if _, err := store.CreateAgency(ctx, &a); err != nil {
			return fmt.Errorf("failed to seed agency %s: %w", a.Name, err)
		}
	}

	for _, p := range seedParks() {
		if _, err := store.CreatePark(ctx, &p); err != nil {
			return fmt.Errorf("failed to seed park %s: %w", p.Code, err)
		}
	}

	vehicles := seedVehicles()
	vehicleIDs := make([]int64, 0, len(vehicles))
	for _, v := range vehicles {
		created, err := store.CreateVehicle(ctx, &v)
		if err != nil {
			return fmt.Errorf("failed to seed vehicle %s: %w", v.PlateNumber, err)
		}
		vehicleIDs = append(vehicleIDs, created.ID)
	}

	for _, m := range seedManifests(now) {
		if _, err := store.CreateManifest(ctx, &m); err != nil {
			return fmt.Errorf("failed to seed manifest %s: %w", m.ManifestCode, err)
		}
	}

	for _, r := range seedTrafficReports() {
		if _, err := store.CreateTrafficReport(ctx, &r); err != nil {
			return fmt.Errorf("failed to seed traffic report %s: %w", r.Route, err)
		}
	}

	for _, a := range seedSecurityAlerts() {
		if _, err := store.CreateSecurityAlert(ctx, &a); err != nil {
			return fmt.Errorf("failed to seed security alert %s: %w", a.Title, err)
		}
	}

	// drivers come last and are then assigned to the first vehicles
	for i, d := range seedDrivers {
		created, err := store.CreateDriver(ctx, &d)
		if err != nil {
			return fmt.Errorf("failed to seed driver %s: %w", d.LicenseNumber, err)
		}
		if i < len(vehicleIDs) {
			patch := entity.VehiclePatch{DriverID: entity.Ref(created.ID)}
			if _, err := store.UpdateVehicle(ctx, vehicleIDs[i], patch); err != nil {
				return fmt.Errorf("failed to assign driver %s: %w", d.LicenseNumber, err)
			}
		}
	}

	log.Info("Seeded demo data",
		"agencies", len(seedAgencies),
		"vehicles", len(vehicleIDs),
		"drivers", len(seedDrivers))
	return nil
}

var seedAgencies = []entity.Agency{
	{Name: "Nigeria Police Force", Type: entity.AgencyPolice, ConnectionStatus: entity.ConnectionActive, ActiveConnections: 87},
	{Name: "Immigration Service", Type: entity.AgencyImmigration, ConnectionStatus: entity.ConnectionActive, ActiveConnections: 42},
	{Name: "Road Safety Corps", Type: entity.AgencyRoadSafety, ConnectionStatus: entity.ConnectionActive, ActiveConnections: 104},
	{Name: "Customs Service", Type: entity.AgencyCustoms, ConnectionStatus: entity.ConnectionActive, ActiveConnections: 36},
}

var seedDrivers = []entity.Driver{
	{FullName: "John Doe", LicenseNumber: "DRV-001-NG", ContactPhone: "08012345678", Status: entity.DriverActive},
	{FullName: "Jane Smith", LicenseNumber: "DRV-002-NG", ContactPhone: "08023456789", Status: entity.DriverActive},
	{FullName: "Peter Obi", LicenseNumber: "DRV-003-NG", ContactPhone: "08034567890", Status: entity.DriverActive},
	{FullName: "Mary Johnson", LicenseNumber: "DRV-004-NG", ContactPhone: "08045678901", Status: entity.DriverActive},
}

func seedParks() []entity.Park {
	park := func(name, code, location, region string, capacity, passengers, current int, status, coords string) entity.Park {
		return entity.Park{
			Name:              name,
			Code:              code,
			Location:          location,
			Region:            region,
			Capacity:          capacity,
			PassengerCapacity: passengers,
			CurrentVehicles:   current,
			Status:            status,
			Coordinates:       entity.Ref(coords),
		}
	}
	return []entity.Park{
		park("Jibowu Central Park", "PRK-001-LG", "Lagos", "South West", 120, 1200, 78, entity.ParkActive, "6.5244,3.3792"),
		park("Utako Modern Park", "PRK-023-AB", "Abuja", "FCT", 95, 850, 45, entity.ParkActive, "9.0765,7.4815"),
		park("Mile 3 Transport Hub", "PRK-045-PH", "Port Harcourt", "South South", 80, 720, 62, entity.ParkActive, "4.8156,7.0498"),
		park("New Market Park", "PRK-067-EN", "Enugu", "South East", 60, 550, 35, entity.ParkMaintenance, "6.4584,7.5464"),
		park("Central Motor Park", "PRK-092-KD", "Kaduna", "North West", 75, 680, 58, entity.ParkActive, "10.5222,7.4383"),
	}
}

func seedVehicles() []entity.Vehicle {
	vehicle := func(plate, model string, seats int, park int64, location string, dest int64, route string, onboard int, tracking string) entity.Vehicle {
		return entity.Vehicle{
			PlateNumber:       plate,
			Model:             model,
			Type:              "bus",
			SeatingCapacity:   seats,
			CurrentParkID:     entity.Ref(park),
			Status:            entity.VehicleActive,
			CurrentLocation:   entity.Ref(location),
			DestinationParkID: entity.Ref(dest),
			CurrentRoute:      entity.Ref(route),
			OnboardPassengers: onboard,
			TrackingStatus:    tracking,
		}
	}
	return []entity.Vehicle{
		vehicle("ABC-123-XY", "Toyota Hiace", 14, 1, "6.5244,3.3792", 2, "Lagos to Abuja", 12, entity.TrackingOnSchedule),
		vehicle("DEF-456-YZ", "Mercedes Sprinter", 18, 3, "4.8156,7.0498", 4, "Enugu to Port Harcourt", 18, entity.TrackingDelayed),
		vehicle("GHI-789-AB", "Iveco Bus", 30, 5, "10.5222,7.4383", 2, "Kaduna to Kano", 22, entity.TrackingOnSchedule),
		vehicle("JKL-012-CD", "Scania Bus", 45, 2, "9.0765,7.4815", 5, "Abuja to Jos", 36, entity.TrackingStopped),
		vehicle("MNO-345-EF", "Toyota Coaster", 25, 4, "6.4584,7.5464", 3, "Benin to Asaba", 15, entity.TrackingAlert),
	}
}

func seedManifests(now time.Time) []entity.Manifest {
	manifest := func(code string, vehicle, origin, dest int64, departedAgo, arrivesIn time.Duration, adults, children, male, female int) entity.Manifest {
		return entity.Manifest{
			ManifestCode:        code,
			VehicleID:           vehicle,
			DriverID:            vehicle,
			OriginParkID:        origin,
			DestinationParkID:   dest,
			DepartureTime:       now.Add(-departedAgo),
			ExpectedArrivalTime: now.Add(arrivesIn),
			PassengerCount:      male + female,
			AdultCount:          adults,
			ChildrenCount:       children,
			MaleCount:           male,
			FemaleCount:         female,
			CargoWeight:         entity.Ref(0),
			Status:              entity.ManifestActive,
		}
	}
	return []entity.Manifest{
		manifest("MNF-20230812-0045", 1, 1, 2, 2*time.Hour, 4*time.Hour, 12, 2, 8, 6),
		manifest("MNF-20230812-0044", 2, 3, 4, 1*time.Hour, 2*time.Hour, 7, 1, 5, 3),
		manifest("MNF-20230812-0043", 3, 5, 2, 3*time.Hour, 1*time.Hour, 20, 2, 12, 10),
		manifest("MNF-20230812-0042", 4, 1, 4, 5*time.Hour, 3*time.Hour, 14, 2, 9, 7),
	}
}

func seedTrafficReports() []entity.TrafficReport {
	return []entity.TrafficReport{
		{Route: "Lagos - Ibadan", VehicleCount: 342, CongestionLevel: entity.CongestionHigh, PredictedTrend: entity.Ref("increasing")},
		{Route: "Abuja - Kaduna", VehicleCount: 254, CongestionLevel: entity.CongestionMedium, PredictedTrend: entity.Ref("stable")},
		{Route: "Port Harcourt - Aba", VehicleCount: 187, CongestionLevel: entity.CongestionMedium, PredictedTrend: entity.Ref("decreasing")},
	}
}

func seedSecurityAlerts() []entity.SecurityAlert {
	alert := func(title, description, priority, location string, agency int64) entity.SecurityAlert {
		return entity.SecurityAlert{
			Title:       title,
			Description: description,
			Priority:    priority,
			Location:    entity.Ref(location),
			AgencyID:    entity.Ref(agency),
			Status:      entity.AlertActive,
		}
	}
	return []entity.SecurityAlert{
		alert("High Priority Alert", "Vehicle XYZ-123-AB reported suspicious activity", entity.PriorityHigh, "Lagos-Ore Highway", 1),
		alert("Medium Priority Alert", "4 unregistered passengers detected on LMN-567-CD", entity.PriorityMedium, "Abuja Expressway", 2),
		alert("Information Notice", "Checkpoint established on Abuja-Kaduna highway", entity.PriorityLow, "Abuja-Kaduna Highway", 3),
	}
}
