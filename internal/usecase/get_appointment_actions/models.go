package get_appointment_actions

// Request модель запроса на получение доступных действий
type Request struct {
	ID int64 // ID записи
}

// Response снимок доступных действий и обратного отсчёта на момент запроса.
// Снимок пересчитывается при каждом обращении; кнопки в интерфейсе строятся
// только по нему
type Response struct {
	ID     int64  // ID записи
	Status string // Текущий статус записи

	CanConfirm  bool // Можно подтвердить (pending)
	CanComplete bool // Можно завершить (scheduled)
	CanCancel   bool // Можно отменить (с учётом запаса времени)
	CanPay      bool // Можно провести оплату

	// TimeLeftDisplay строка обратного отсчёта "HH:MM:SS"; после наступления
	// времени записи - фиксированное сообщение; для терминальных статусов пустая
	TimeLeftDisplay string
}
