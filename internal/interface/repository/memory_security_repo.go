package repository

import (
	"context"
	"time"

	"fleetwatch-service/internal/domain/entity"
)

// Traffic report operations

// GetTrafficReport finds a traffic report by ID
func (s *MemoryStorage) GetTrafficReport(ctx context.Context, id int64) (*entity.TrafficReport, error) {
	r, ok := s.trafficReports.get(id)
	return found(r, ok)
}

// ListTrafficReports returns every traffic reports
func (s *MemoryStorage) ListTrafficReports(ctx context.Context) ([]*entity.TrafficReport, error) {
	return refs(s.trafficReports.list()), nil
}

// ListRecentTrafficReports returns up to limit traffic reports, newest first
func (s *MemoryStorage) ListRecentTrafficReports(ctx context.Context, limit int) ([]*entity.TrafficReport, error) {
	return refs(mostRecent(s.trafficReports.list(), func(r entity.TrafficReport) time.Time {
		return r.Timestamp
	}, limit)), nil
}

// CreateTrafficReport stores a new traffic report
func (s *MemoryStorage) CreateTrafficReport(ctx context.Context, report *entity.TrafficReport) (*entity.TrafficReport, error) {
	now := s.opts.now()
	return s.trafficReports.create(func(id int64) entity.TrafficReport {
		r := *report
		r.ID = id
		r.Timestamp = now
		return r
	})
}

// Security alert operations

// GetSecurityAlert finds a security alert by ID
func (s *MemoryStorage) GetSecurityAlert(ctx context.Context, id int64) (*entity.SecurityAlert, error) {
	a, ok := s.securityAlerts.get(id)
	return found(a, ok)
}

// ListSecurityAlerts returns every security alerts
func (s *MemoryStorage) ListSecurityAlerts(ctx context.Context) ([]*entity.SecurityAlert, error) {
	return refs(s.securityAlerts.list()), nil
}

// ListRecentSecurityAlerts returns up to limit security alerts, newest first
func (s *MemoryStorage) ListRecentSecurityAlerts(ctx context.Context, limit int) ([]*entity.SecurityAlert, error) {
	return refs(mostRecent(s.securityAlerts.list(), func(a entity.SecurityAlert) time.Time {
		return a.Timestamp
	}, limit)), nil
}

// CreateSecurityAlert stores a new security alert
func (s *MemoryStorage) CreateSecurityAlert(ctx context.Context, alert *entity.SecurityAlert) (*entity.SecurityAlert, error) {
	now := s.opts.now()
	return s.securityAlerts.create(func(id int64) entity.SecurityAlert {
		a := *alert
		a.ID = id
		a.Timestamp = now
		return a
	})
}

// UpdateSecurityAlert applies a partial update to a security alert
func (s *MemoryStorage) UpdateSecurityAlert(ctx context.Context, id int64, patch entity.SecurityAlertPatch) (*entity.SecurityAlert, error) {
	a, ok := s.securityAlerts.update(id, patch.Apply)
	return found(a, ok)
}

// Violation operations

// GetViolation finds a violation by ID
func (s *MemoryStorage) GetViolation(ctx context.Context, id int64) (*entity.Violation, error) {
	v, ok := s.violations.get(id)
	return found(v, ok)
}

// ListViolations returns every violations
func (s *MemoryStorage) ListViolations(ctx context.Context) ([]*entity.Violation, error) {
	return refs(s.violations.list()), nil
}

// ListVehicleViolations returns the violations recorded against a vehicle
func (s *MemoryStorage) ListVehicleViolations(ctx context.Context, vehicleID int64) ([]*entity.Violation, error) {
	return refs(s.violations.filter(func(v entity.Violation) bool {
		return v.VehicleID == vehicleID
	})), nil
}

// ListRecentViolations returns up to limit violations, newest first
func (s *MemoryStorage) ListRecentViolations(ctx context.Context, limit int) ([]*entity.Violation, error) {
	return refs(mostRecent(s.violations.list(), func(v entity.Violation) time.Time {
		return v.Timestamp
	}, limit)), nil
}

// CreateViolation stores a new violation
func (s *MemoryStorage) CreateViolation(ctx context.Context, violation *entity.Violation) (*entity.Violation, error) {
	now := s.opts.now()
	return s.violations.create(func(id int64) entity.Violation {
		v := *violation
		v.ID = id
		v.Timestamp = now
		return v
	})
}

// UpdateViolation applies a partial update to a violation
func (s *MemoryStorage) UpdateViolation(ctx context.Context, id int64, patch entity.ViolationPatch) (*entity.Violation, error) {
	v, ok := s.violations.update(id, patch.Apply)
	return found(v, ok)
}
