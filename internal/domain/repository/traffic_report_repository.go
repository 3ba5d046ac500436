package repository

import (
	"context"

	"fleetwatch-service/internal/domain/entity"
)

// TrafficReportRepository defines the interface for traffic report operations
type TrafficReportRepository interface {
	GetTrafficReport(ctx context.Context, id int64) (*entity.TrafficReport, error)
	ListTrafficReports(ctx context.Context) ([]*entity.TrafficReport, error)
	ListRecentTrafficReports(ctx context.Context, limit int) ([]*entity.TrafficReport, error)
	CreateTrafficReport(ctx context.Context, report *entity.TrafficReport) (*entity.TrafficReport, error)
}
