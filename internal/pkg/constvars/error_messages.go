package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"email":       "must be a valid email",
	"alphanum":    "must contain only alphanumeric characters",
	"min":         "must be at least %s characters long",
	"max":         "maximum at %s characters long",
	"len":         "must be %s characters long",
	"oneof":       "must be one of [%s]",
	"gt":          "must be greater than %s",
	"gte":         "must be greater than or equal to %s",
	"numeric":     "must be a number",
	"password":    "must be at least 8 characters long, contain at least 1 uppercase, 1 lowercase letter and 1 numeric character",
	"mobile":      "must be a valid 10-digit Indian mobile number",
	"zipcode":     "must be a valid 6-digit zip code",
	"date":        "must be a valid date in dd/mm/yyyy format",
	"booked_time": "must be in the format: dd/mm/yyyy hh:mm AM/PM",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gt":    true,
	"gte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"

	ErrClientNoTokenProvided = "No token provided"
	ErrClientInvalidToken    = "Invalid token"

	ErrClientUsernameAlreadyExists = "Username already exists"
	ErrClientEmailAlreadyExists    = "Email already exists"
	ErrClientMobileAlreadyExists   = "Mobile number already exists"

	ErrClientUserNotFound        = "Username/Email/Mobile number not found"
	ErrClientUserNotExists       = "User not exists"
	ErrClientInvalidPassword     = "Invalid password"
	ErrClientPhysicianNotFound   = "Physician not found"
	ErrClientAppointmentNotFound = "Appointment not found"
	ErrClientDemographicNotFound = "Demographic not found"
	ErrClientReportNotFound      = "PDF file not found"

	ErrClientSlotAlreadyBooked    = "Slot is already booked"
	ErrClientNewSlotAlreadyBooked = "New slot is already booked"

	ErrClientInvalidImageType = "Invalid image type. Only PNG, JPG, JPEG, and GIF are allowed."
	ErrClientImageTooLarge    = "Profile picture must be less than 5MB"
	ErrClientMissingPDFFile   = "PDF file is required"
	ErrClientInvalidPDFType   = "Only PDF files are allowed"

	ErrClientTooManyRequests = "too many requests, please try again later"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "request validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevImageValidationFailed    = "image validation failed"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded while processing request"
	ErrDevServerProcess            = "unexpected failure while processing request"

	ErrDevFailedToHashPassword = "failed to hash password with bcrypt"
	ErrDevInvalidCredentials   = "credentials do not match any user record"

	ErrDevRateLimitExceeded = "rate limit exceeded for this window"

	ErrDevAuthTokenMissing          = "authorization header is missing"
	ErrDevAuthTokenInvalidOrExpired = "token is invalid or already expired"
	ErrDevAuthGenerateToken         = "failed to sign token"
	ErrDevAuthSigningMethod         = "unexpected token signing method"

	ErrDevUsernameAlreadyExists = "username already registered"
	ErrDevEmailAlreadyExists    = "email already registered"
	ErrDevMobileAlreadyExists   = "mobile number already registered"
	ErrDevUserNotExists         = "user document does not exist"
	ErrDevPhysicianNotExists    = "physician document does not exist"
	ErrDevAppointmentNotExists  = "appointment document does not exist"
	ErrDevDemographicNotExists  = "demographic document does not exist"
	ErrDevReportNotExists       = "report document does not exist for this user"
	ErrDevSlotConflict          = "an appointment with the same user, physician and time is already booked"

	ErrDevDBFailedToFindDocument     = "database failed to find document"
	ErrDevDBFailedToInsertDocument   = "database failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "database failed to update document"
	ErrDevDBFailedToDeleteDocument   = "database failed to delete document"
	ErrDevDBFailedToIterateDocuments = "database failed to iterate over documents"
	ErrDevDBStringNotObjectID        = "string cannot be converted into mongo ObjectID"

	ErrDevRedisGetData        = "redis failed to get data"
	ErrDevRedisSetData        = "redis failed to set data"
	ErrDevRedisDeleteData     = "redis failed to delete data"
	ErrDevRedisIncrementValue = "redis failed to increment value"

	ErrDevMinioFailedToCreateObject = "minio failed to create object in bucket %s"
	ErrDevMinioFailedToGetObject    = "minio failed to get object from bucket %s"

	ErrDevRabbitMQPublishMessage = "rabbitmq failed to publish message to queue %s"
)
