package repository

import (
	"context"

	"fleetwatch-service/internal/domain/entity"
)

// SecurityAlertRepository defines the interface for security alert operations
type SecurityAlertRepository interface {
	GetSecurityAlert(ctx context.Context, id int64) (*entity.SecurityAlert, error)
	ListSecurityAlerts(ctx context.Context) ([]*entity.SecurityAlert, error)
	ListRecentSecurityAlerts(ctx context.Context, limit int) ([]*entity.SecurityAlert, error)
	CreateSecurityAlert(ctx context.Context, alert *entity.SecurityAlert) (*entity.SecurityAlert, error)
	UpdateSecurityAlert(ctx context.Context, id int64, patch entity.SecurityAlertPatch) (*entity.SecurityAlert, error)
}
