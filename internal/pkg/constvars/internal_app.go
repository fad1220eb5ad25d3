package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_PRINCIPAL_KEY            ContextKey = "principal"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "MDBK_SVC_"
)

const (
	MongoCollectionUsers        = "users"
	MongoCollectionPhysicians   = "physicians"
	MongoCollectionAppointments = "appointments"
	MongoCollectionDemographics = "demographics"
	MongoCollectionServices     = "services"
	MongoCollectionReports      = "reports"
)

const (
	AuthTypeExternal = "external"
	AuthTypeLocal    = "local"
)

const (
	AppointmentStatusBooked      = "booked"
	AppointmentStatusCancelled   = "cancelled"
	AppointmentStatusRescheduled = "rescheduled"
)

const (
	URLParamUserID        = "id"
	URLParamPhysicianID   = "physicianId"
	URLParamAppointmentID = "appointmentId"
	URLParamDemographicID = "id"
	URLParamFilename      = "filename"
)

const (
	MultipartFieldProfilePicture = "profilePicture"
	MultipartFieldPDF            = "pdf"
)

// ImageAllowedProfilePictureFormats lists accepted profile picture
// extensions, compared against the lowercased filename.
var ImageAllowedProfilePictureFormats = []string{".png", ".jpg", ".jpeg", ".gif"}

const (
	ProfilePictureMaxSizeInMB = 5
)

var ServiceCategories = []string{"General", "Specialist", "Diagnostic", "Therapeutic"}

var DemographicGenders = []string{"Male", "Female", "Other", "Prefer not to say"}

var DemographicBloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

var DemographicMaritalStatuses = []string{"Single", "Married", "Divorced", "Widowed"}

var PhysicianWorkingDayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}
