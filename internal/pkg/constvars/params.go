package constvars

const (
	URLParamPatientID     = "patient_id"
	URLParamAppointmentID = "appointment_id"
)

const (
	PhoneValidatorPath             = "/v1/validatephone"
	PhoneValidatorQueryParamNumber = "number"
	HeaderXApiKey                  = "X-Api-Key"
)
