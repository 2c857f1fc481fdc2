package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SPA-AdminService/internal/api/handlers"
	"github.com/m04kA/SPA-AdminService/internal/domain"
	getAvailableSlots "github.com/m04kA/SPA-AdminService/internal/usecase/get_available_slots"
	"github.com/m04kA/SPA-AdminService/pkg/types"
)

const (
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidSelected = "некорректный формат выбранного слота, ожидается HH:MM"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/available
// Query params: date (required, YYYY-MM-DD), selected (optional, HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /slots/available - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	selectedStr := r.URL.Query().Get("selected")

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		// Нечитаемая дата не считается ошибкой: отдаём пустой список слотов,
		// а текущий выбор формы сбрасываем
		h.logger.Warn("GET /slots/available - Invalid date %q, degrading to empty slot set: %v", dateStr, err)
		handlers.RespondJSON(w, http.StatusOK, &AvailableSlotsResponse{
			Date:             dateStr,
			Slots:            []string{},
			SelectionCleared: selectedStr != "",
		})
		return
	}

	req := &getAvailableSlots.Request{Date: date}

	// Текущий выбор формы (опционально): сервер сбрасывает его,
	// если слот выпал из доступных
	if selectedStr != "" {
		selected, err := types.NewTimeStringFromString(selectedStr)
		if err != nil {
			h.logger.Warn("GET /slots/available - Invalid selected slot: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSelected)
			return
		}
		req.SelectedTime = &selected
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots/available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /slots/available - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots/available - %d slots returned for date=%s", len(result.Slots), dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
