package cancel_order

import (
	"context"

	"github.com/m04kA/SPA-AdminService/internal/service/orders/models"
)

type OrderService interface {
	Cancel(ctx context.Context, id int64, req *models.CancelOrderRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
