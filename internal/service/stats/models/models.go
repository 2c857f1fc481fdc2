package models

// DayRevenue выручка за один день периода
type DayRevenue struct {
	Date         string  `json:"date"` // "2025-10-15"
	Appointments float64 `json:"appointments"`
	Orders       float64 `json:"orders"`
	Total        float64 `json:"total"`
}

// RevenueResponse отчёт о выручке за период
// Дни идут подряд от начала к концу периода, дни без оплат включены с нулями
type RevenueResponse struct {
	From string       `json:"from"`
	To   string       `json:"to"`
	Days []DayRevenue `json:"days"`

	TotalAppointments float64 `json:"totalAppointments"`
	TotalOrders       float64 `json:"totalOrders"`
	Total             float64 `json:"total"`
}

// ExportResponse сформированный файл отчёта
type ExportResponse struct {
	FileName string `json:"fileName"`
	Content  []byte `json:"-"`
}
