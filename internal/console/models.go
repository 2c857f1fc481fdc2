package console

// Appointment запись, как её отдаёт API консоли
type Appointment struct {
	ID              int64    `json:"id"`
	CustomerName    string   `json:"customerName"`
	CustomerPhone   *string  `json:"customerPhone,omitempty"`
	StaffID         *int64   `json:"staffId,omitempty"`
	AppointmentDate string   `json:"appointmentDate"`
	StartTime       string   `json:"startTime"`
	DurationMinutes int      `json:"durationMinutes"`
	Status          string   `json:"status"`
	TotalPrice      float64  `json:"totalPrice"`
	ServiceNames    []string `json:"serviceNames"`
	StaffName       *string  `json:"staffName,omitempty"`

	TimeLeftDisplay string  `json:"timeLeftDisplay,omitempty"`
	Actions         Actions `json:"actions"`
}

// Actions снимок доступных действий по записи
type Actions struct {
	CanConfirm  bool `json:"canConfirm"`
	CanComplete bool `json:"canComplete"`
	CanCancel   bool `json:"canCancel"`
	CanPay      bool `json:"canPay"`
}

// ActionsSnapshot снимок действий и обратного отсчёта одной записи
type ActionsSnapshot struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`

	CanConfirm  bool `json:"canConfirm"`
	CanComplete bool `json:"canComplete"`
	CanCancel   bool `json:"canCancel"`
	CanPay      bool `json:"canPay"`

	TimeLeftDisplay string `json:"timeLeftDisplay,omitempty"`
}

// appointmentList обёртка ответа списка записей
type appointmentList struct {
	Appointments []Appointment `json:"appointments"`
}

// Order заказ, как его отдаёт API консоли
type Order struct {
	ID           int64   `json:"id"`
	Number       string  `json:"number"`
	CustomerName string  `json:"customerName"`
	TotalPrice   float64 `json:"totalPrice"`
	ItemsCount   int     `json:"itemsCount"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes,omitempty"`

	Actions OrderActions `json:"actions"`
}

// OrderActions снимок доступных действий по заказу
type OrderActions struct {
	CanDeliver bool `json:"canDeliver"`
	CanCancel  bool `json:"canCancel"`
	CanPay     bool `json:"canPay"`
}

// orderList обёртка ответа списка заказов
type orderList struct {
	Orders []Order `json:"orders"`
}

// AvailableSlots ответ по доступным слотам на дату
type AvailableSlots struct {
	Date             string   `json:"date"`
	Slots            []string `json:"slots"`
	SelectedTime     *string  `json:"selectedTime,omitempty"`
	SelectionCleared bool     `json:"selectionCleared"`
}
