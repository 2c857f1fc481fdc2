package create_appointment

import (
	"time"

	"github.com/m04kA/SPA-AdminService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerName  string           // Имя клиента
	CustomerPhone *string          // Телефон клиента (опционально)
	StaffID       *int64           // ID мастера (опционально, может быть назначен позже)
	Date          time.Time        // Дата записи (без времени)
	StartTime     types.TimeString // Время начала слота (например, "10:00")
	ServiceIDs    []int64          // Выбранные услуги (минимум одна)
	Notes         *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	CustomerName    string           // Имя клиента
	CustomerPhone   *string          // Телефон клиента
	StaffID         *int64           // ID мастера
	AppointmentDate time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Суммарная длительность услуг в минутах
	Status          string           // Статус записи
	TotalPrice      float64          // Суммарная стоимость услуг

	// Денормализованные данные
	ServiceIDs   []int64  // ID услуг
	ServiceNames []string // Названия услуг
	StaffName    *string  // Имя мастера
	Notes        *string  // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
