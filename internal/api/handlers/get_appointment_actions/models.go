package get_appointment_actions

import (
	getAppointmentActions "github.com/m04kA/SPA-AdminService/internal/usecase/get_appointment_actions"
)

// AppointmentActionsResponse HTTP response model
type AppointmentActionsResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`

	CanConfirm  bool `json:"canConfirm"`
	CanComplete bool `json:"canComplete"`
	CanCancel   bool `json:"canCancel"`
	CanPay      bool `json:"canPay"`

	TimeLeftDisplay string `json:"timeLeftDisplay,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAppointmentActions.Response) *AppointmentActionsResponse {
	return &AppointmentActionsResponse{
		ID:              resp.ID,
		Status:          resp.Status,
		CanConfirm:      resp.CanConfirm,
		CanComplete:     resp.CanComplete,
		CanCancel:       resp.CanCancel,
		CanPay:          resp.CanPay,
		TimeLeftDisplay: resp.TimeLeftDisplay,
	}
}
