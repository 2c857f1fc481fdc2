package get_revenue_stats

import (
	"errors"
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

// Handle GET /api/v1/stats/revenue
// Query params: from (required, YYYY-MM-DD), to (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from, to, ok := parsePeriod(w, r, h.logger)
	if !ok {
		return
	}

	result, err := h.service.RevenueRange(r.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, stats.ErrInvalidPeriod):
			h.logger.Warn("GET /stats/revenue - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /stats/revenue - Failed to build report: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stats/revenue - Report built: %d days, total=%.2f", len(result.Days), result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// parsePeriod извлекает период отчёта из query параметров
func parsePeriod(w http.ResponseWriter, r *http.Request, logger Logger) (time.Time, time.Time, bool) {
	query := r.URL.Query()

	fromStr := query.Get("from")
	toStr := query.Get("to")
	if fromStr == "" || toStr == "" {
		logger.Warn("GET /stats/revenue - Missing period")
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return time.Time{}, time.Time{}, false
	}

	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		logger.Warn("GET /stats/revenue - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return time.Time{}, time.Time{}, false
	}

	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		logger.Warn("GET /stats/revenue - Invalid to date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return time.Time{}, time.Time{}, false
	}

	return from, to, true
}
