package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingOperationKey      = "operation"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingErrorCodeKey      = "error_code"
	LoggingErrorTypeKey      = "error_type"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingPatientIDKey      = "patient_id"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingAppointmentDayKey = "appointment_day"
	LoggingAppointmentCount  = "appointment_count"
	LoggingUpdatedFieldsKey  = "updated_fields"
	LoggingPhoneCountryKey   = "phone_country"
	LoggingPhoneValidKey     = "phone_valid"
	LoggingAttemptKey        = "attempt"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingRoutingKey        = "routing_key"
	LoggingMessageIDKey      = "message_id"
)
