package deliver_order

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPA-AdminService/internal/api/handlers"
	"github.com/m04kA/SPA-AdminService/internal/service/orders"
)

const (
	msgInvalidOrderID = "некорректный ID заказа"
	msgNotFound       = "заказ не найден"
	msgCannotDeliver  = "доставить можно только новый заказ"
)

type Handler struct {
	service OrderService
	logger  Logger
}

func NewHandler(service OrderService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/orders/{orderId}/deliver
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	orderID, err := strconv.ParseInt(vars["orderId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /orders/{id}/deliver - Invalid order ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	if err := h.service.Deliver(r.Context(), orderID); err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			h.logger.Warn("PUT /orders/{id}/deliver - Order not found: order_id=%d", orderID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, orders.ErrCannotDeliver):
			h.logger.Warn("PUT /orders/{id}/deliver - Cannot deliver: order_id=%d", orderID)
			handlers.RespondError(w, http.StatusConflict, msgCannotDeliver)

		default:
			h.logger.Error("PUT /orders/{id}/deliver - Failed to deliver: order_id=%d, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /orders/{id}/deliver - Order delivered: order_id=%d", orderID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
