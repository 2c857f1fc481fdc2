package get_available_slots

import (
	"time"

	"github.com/m04kA/SPA-AdminService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // Дата для получения слотов (без времени)

	// SelectedTime слот, выбранный в форме записи на данный момент (опционально).
	// Если после пересчёта он выпал из доступных, выбор сбрасывается
	SelectedTime *types.TimeString
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date  time.Time          // Дата, на которую запрашивались слоты
	Slots []types.TimeString // Доступные слоты (подпоследовательность каталога)

	// SelectedTime прежний выбор, если он всё ещё доступен; nil - если сброшен
	// или не был передан
	SelectedTime *types.TimeString

	// SelectionCleared true, если переданный выбор выпал из доступных и был сброшен
	SelectionCleared bool
}
