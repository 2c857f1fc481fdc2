package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SPA-AdminService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date             string   `json:"date"`  // "2025-10-15"
	Slots            []string `json:"slots"` // ["08:00", "09:00", ...]
	SelectedTime     *string  `json:"selectedTime,omitempty"`
	SelectionCleared bool     `json:"selectionCleared"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.String())
	}

	result := &AvailableSlotsResponse{
		Date:             resp.Date.Format("2006-01-02"),
		Slots:            slots,
		SelectionCleared: resp.SelectionCleared,
	}

	if resp.SelectedTime != nil {
		selected := resp.SelectedTime.String()
		result.SelectedTime = &selected
	}

	return result
}
