package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "CLNC_SVC_"
)

const (
	MongoCollectionPatients     = "pacientes"
	MongoCollectionAppointments = "citas"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

const (
	EventExchangeName = "clinic.events"
	EventExchangeType = "topic"
	EventServiceName  = "clinic-service"

	EventPatientCreated     = "patient.created"
	EventPatientUpdated     = "patient.updated"
	EventAppointmentCreated = "appointment.created"
	EventAppointmentDeleted = "appointment.deleted"
)

const (
	LockKeyPatientEmailFormat  = "lock:patients:email:%s"
	LockKeyAppointmentFormat   = "lock:appointments:%s:%s"
	DefaultLockTTLInSeconds    = 10
	DefaultShutdownTimeoutSecs = 10
)
