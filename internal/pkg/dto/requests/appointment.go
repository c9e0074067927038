package requests

type CreateAppointment struct {
	PatientID string `json:"paciente" validate:"required"`
	Fecha     string `json:"fecha" validate:"required,calendar_date"`
	Tipo      string `json:"tipo" validate:"required,not_blank"`
}
