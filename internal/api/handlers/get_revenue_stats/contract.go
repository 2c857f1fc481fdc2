package get_revenue_stats

import (
	"context"
	"time"

	"github.com/m04kA/SPA-AdminService/internal/service/stats/models"
)

type StatsService interface {
	RevenueRange(ctx context.Context, from, to time.Time) (*models.RevenueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
