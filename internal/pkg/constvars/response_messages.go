package constvars

const (
	ResponseUnknown = "unknown"

	GetPatientSuccessMessage        = "get patient successfully"
	CreatePatientSuccessMessage     = "patient created successfully"
	UpdatePatientSuccessMessage     = "patient updated successfully"
	GetAppointmentsSuccessMessage   = "get appointments successfully"
	CreateAppointmentSuccessMessage = "appointment created successfully"
	DeleteAppointmentSuccessMessage = "appointment deleted successfully"
	AppointmentNotDeletedMessage    = "no appointment was deleted"
	HealthCheckSuccessMessage       = "service is healthy"
)
