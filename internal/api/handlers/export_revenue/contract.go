package export_revenue

import (
	"context"
	"time"

	"github.com/m04kA/SPA-AdminService/internal/service/stats/models"
)

type StatsService interface {
	ExportXLSX(ctx context.Context, from, to time.Time) (*models.ExportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
