package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SPA-AdminService/internal/domain"
)

// UseCase use case для получения доступных слотов для записи
// Слоты пересчитываются от фиксированного дневного каталога с учётом
// часового запаса на сегодняшнюю дату
type UseCase struct {
	catalogue    domain.SlotCatalogue
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalogue domain.SlotCatalogue, logger Logger) *UseCase {
	return &UseCase{
		catalogue:    catalogue,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, selected=%v",
		req.Date.Format(domain.DateFormat), req.SelectedTime)

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Фильтруем каталог по правилам доступности
	slots := uc.catalogue.Bookable(req.Date, now)

	resp := &Response{
		Date:  req.Date,
		Slots: slots,
	}

	// 4. Проверяем прежний выбор: выпавший из доступных сбрасывается,
	// чтобы форма не отправила устаревший слот
	if req.SelectedTime != nil {
		if containsSlot(slots, *req.SelectedTime) {
			resp.SelectedTime = req.SelectedTime
		} else {
			resp.SelectionCleared = true
			uc.logger.Info("GetAvailableSlots: selection %s no longer available, cleared", *req.SelectedTime)
		}
	}

	uc.logger.Info("GetAvailableSlots: %d slots available for %s",
		len(slots), req.Date.Format(domain.DateFormat))

	return resp, nil
}
