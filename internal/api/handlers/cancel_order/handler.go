package cancel_order

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPA-AdminService/internal/api/handlers"
	"github.com/m04kA/SPA-AdminService/internal/service/orders"
	"github.com/m04kA/SPA-AdminService/internal/service/orders/models"
)

const (
	msgInvalidOrderID     = "некорректный ID заказа"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "заказ не найден"
	msgCannotCancel       = "отменить можно только новый заказ"
	msgReasonRequired     = "причина отмены обязательна"
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

// Handle PUT /api/v1/orders/{orderId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	orderID, err := strconv.ParseInt(vars["orderId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /orders/{id}/cancel - Invalid order ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	var req models.CancelOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /orders/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Cancel(r.Context(), orderID, &req); err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			h.logger.Warn("PUT /orders/{id}/cancel - Order not found: order_id=%d", orderID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, orders.ErrCannotCancel):
			h.logger.Warn("PUT /orders/{id}/cancel - Cannot cancel: order_id=%d", orderID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		case errors.Is(err, orders.ErrInvalidInput):
			h.logger.Warn("PUT /orders/{id}/cancel - Invalid input: order_id=%d, error=%v", orderID, err)
			handlers.RespondBadRequest(w, msgReasonRequired)

		default:
			h.logger.Error("PUT /orders/{id}/cancel - Failed to cancel: order_id=%d, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /orders/{id}/cancel - Order cancelled: order_id=%d", orderID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
