package export_revenue

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SPA-AdminService/internal/api/handlers"
	"github.com/m04kA/SPA-AdminService/internal/domain"
	"github.com/m04kA/SPA-AdminService/internal/service/stats"
)

const (
	msgMissingPeriod = "параметры from и to обязательны"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPeriod = "некорректный период отчёта"

	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Handler struct {
	service StatsService
	logger  Logger
}

func NewHandler(service StatsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stats/revenue/export
// Query params: from (required, YYYY-MM-DD), to (required, YYYY-MM-DD)
// Отдаёт xlsx файл с отчётом о выручке
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	fromStr := query.Get("from")
	toStr := query.Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /stats/revenue/export - Missing period")
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		h.logger.Warn("GET /stats/revenue/export - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		h.logger.Warn("GET /stats/revenue/export - Invalid to date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ExportXLSX(r.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, stats.ErrInvalidPeriod):
			h.logger.Warn("GET /stats/revenue/export - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /stats/revenue/export - Failed to export: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(result.Content); err != nil {
		h.logger.Error("GET /stats/revenue/export - Failed to write response: %v", err)
		return
	}

	h.logger.Info("GET /stats/revenue/export - Exported %s (%d bytes)", result.FileName, len(result.Content))
}
