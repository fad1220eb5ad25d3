package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingUserIDKey        = "user_id"
	LoggingPhysicianIDKey   = "physician_id"
	LoggingAppointmentIDKey = "appointment_id"
	LoggingAuthTypeKey      = "auth_type"
	LoggingFilenameKey      = "filename"
)
