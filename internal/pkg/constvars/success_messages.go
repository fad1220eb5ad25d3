package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// User-related messages
	RegisterSuccessMessage   = "user created successfully"
	LoginSuccessMessage      = "successfully login"
	GetProfileSuccessMessage = "get profile successfully"
	UpdateUserSuccessMessage = "User updated Successfully"
	DeleteUserSuccessMessage = "User deleted Successfully"

	// Physician and catalog messages
	GetPhysiciansSuccessMessage = "physicians retrieved successfully"
	GetServicesSuccessMessage   = "services retrieved successfully"

	// Appointment messages
	BookAppointmentSuccessMessage   = "appointment booked successfully"
	GetAppointmentsSuccessMessage   = "appointments retrieved successfully"
	UpdateAppointmentSuccessMessage = "appointment updated successfully"

	// Demographic messages
	CreateDemographicSuccessMessage = "demographic created successfully"
	GetDemographicSuccessMessage    = "demographics retrieved successfully"
	UpdateDemographicSuccessMessage = "demographic updated successfully"
	NoDemographicsFoundMessage      = "No demographics found"

	// Report messages
	UploadReportSuccessMessage = "PDF uploaded successfully"
	GetReportsSuccessMessage   = "reports retrieved successfully"
)
