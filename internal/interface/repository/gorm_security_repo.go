package repository

import (
	"context"

	"fleetwatch-service/internal/domain/entity"
)

// Traffic report operations

// GetTrafficReport finds a traffic report by ID
func (s *GormStorage) GetTrafficReport(ctx context.Context, id int64) (*entity.TrafficReport, error) {
	return findOne(ctx, s.db, TrafficReports.toEntity, "id = ?", id)
}

// ListTrafficReports returns every traffic reports
func (s *GormStorage) ListTrafficReports(ctx context.Context) ([]*entity.TrafficReport, error) {
	return findAll(ctx, s.db, TrafficReports.toEntity, nil)
}

// ListRecentTrafficReports returns up to limit traffic reports, newest first
func (s *GormStorage) ListRecentTrafficReports(ctx context.Context, limit int) ([]*entity.TrafficReport, error) {
	return findRecent(ctx, s.db, TrafficReports.toEntity, "timestamp", limit)
}

// CreateTrafficReport persists a new traffic report
func (s *GormStorage) CreateTrafficReport(ctx context.Context, report *entity.TrafficReport) (*entity.TrafficReport, error) {
	r := *report
	r.ID = 0
	r.Timestamp = s.opts.now()
	return insert(ctx, s.db, r, trafficReportsFromEntity, TrafficReports.toEntity)
}

// Security alert operations

// GetSecurityAlert finds a security alert by ID
func (s *GormStorage) GetSecurityAlert(ctx context.Context, id int64) (*entity.SecurityAlert, error) {
	return findOne(ctx, s.db, SecurityAlerts.toEntity, "id = ?", id)
}

// ListSecurityAlerts returns every security alerts
func (s *GormStorage) ListSecurityAlerts(ctx context.Context) ([]*entity.SecurityAlert, error) {
	return findAll(ctx, s.db, SecurityAlerts.toEntity, nil)
}

// ListRecentSecurityAlerts returns up to limit security alerts, newest first
func (s *GormStorage) ListRecentSecurityAlerts(ctx context.Context, limit int) ([]*entity.SecurityAlert, error) {
	return findRecent(ctx, s.db, SecurityAlerts.toEntity, "timestamp", limit)
}

// CreateSecurityAlert persists a new security alert
func (s *GormStorage) CreateSecurityAlert(ctx context.Context, alert *entity.SecurityAlert) (*entity.SecurityAlert, error) {
	a := *alert
	a.ID = 0
	a.Timestamp = s.opts.now()
	return insert(ctx, s.db, a, securityAlertsFromEntity, SecurityAlerts.toEntity)
}

// UpdateSecurityAlert applies a partial update to a security alert
func (s *GormStorage) UpdateSecurityAlert(ctx context.Context, id int64, patch entity.SecurityAlertPatch) (*entity.SecurityAlert, error) {
	return modify(ctx, s.db, id, patch.Apply, securityAlertsFromEntity, SecurityAlerts.toEntity)
}

// Violation operations

// GetViolation finds a violation by ID
func (s *GormStorage) GetViolation(ctx context.Context, id int64) (*entity.Violation, error) {
	return findOne(ctx, s.db, Violations.toEntity, "id = ?", id)
}

// ListViolations returns every violations
func (s *GormStorage) ListViolations(ctx context.Context) ([]*entity.Violation, error) {
	return findAll(ctx, s.db, Violations.toEntity, nil)
}

// ListVehicleViolations returns the violations recorded against a vehicle
func (s *GormStorage) ListVehicleViolations(ctx context.Context, vehicleID int64) ([]*entity.Violation, error) {
	return findAll(ctx, s.db, Violations.toEntity, whereEq("vehicle_id", vehicleID))
}

// ListRecentViolations returns up to limit violations, newest first
func (s *GormStorage) ListRecentViolations(ctx context.Context, limit int) ([]*entity.Violation, error) {
	return findRecent(ctx, s.db, Violations.toEntity, "timestamp", limit)
}

// CreateViolation persists a new violation
func (s *GormStorage) CreateViolation(ctx context.Context, violation *entity.Violation) (*entity.Violation, error) {
	v := *violation
	v.ID = 0
	v.Timestamp = s.opts.now()
	return insert(ctx, s.db, v, violationsFromEntity, Violations.toEntity)
}

// UpdateViolation applies a partial update to a violation
func (s *GormStorage) UpdateViolation(ctx context.Context, id int64, patch entity.ViolationPatch) (*entity.Violation, error) {
	return modify(ctx, s.db, id, patch.Apply, violationsFromEntity, Violations.toEntity)
}
