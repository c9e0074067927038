package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"not_blank":     "must not be blank",
	"calendar_date": "must start with a calendar date in YYYY-MM-DD format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
}

// Error codes exposed to clients, one per error kind
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeConflict      = "CONFLICT"
	ErrCodeValidation    = "VALIDATION"
	ErrCodeUpstreamError = "UPSTREAM_ERROR"
	ErrCodeInternal      = "INTERNAL"
	ErrCodeConfig        = "CONFIG_ERROR"
)

// Error messages for clients
const (
	ErrClientPatientNotExists              = "patient does not exist"
	ErrClientEmailAlreadyRegistered        = "email already registered"
	ErrClientAppointmentAlreadyExists      = "appointment already exists for this patient on this date"
	ErrClientInvalidPhone                  = "invalid phone"
	ErrClientInvalidID                     = "invalid id"
	ErrClientPhoneValidationFailed         = "phone validation service failed"
	ErrClientRequestAlreadyInProgress      = "request already in progress"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientServiceUnavailable            = "service is temporarily unavailable"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotParseJSON        = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON      = "cannot convert struct or other data types to JSON"
	ErrDevValidationFailed       = "validation failed"
	ErrDevMissingRequestID       = "request id missing from context"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"

	// Usecase messages
	ErrDevPatientNotExists            = "patient with id %s not exists"
	ErrDevEmailAlreadyRegistered      = "email %s already registered by another patient"
	ErrDevAppointmentAlreadyExists    = "appointment for patient %s on %s already exists"
	ErrDevInvalidObjectID             = "given ID %q is not valid object ID"
	ErrDevPhoneReportedInvalid        = "phone validator reported the phone as invalid"
	ErrDevLockAlreadyHeld             = "lock %s already held by another request"
	ErrDevDanglingPatientReference    = "appointment %s references patient %s which not exists"
	ErrDevPhoneValidatorUnexpectedRes = "phone validator responded with status %d"
	ErrDevPhoneValidatorDecode        = "failed to decode phone validator response"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBPingFailed               = "failed to ping database"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message to exchange %s with routing key %s"

	// Config messages
	ErrDevMissingConfig = "missing required configuration: %s"
)

const (
	ErrEnvParsing = "Error parsing %s: %v, will use default value"
)
