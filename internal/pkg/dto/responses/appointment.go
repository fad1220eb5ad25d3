package responses

type AppointmentResponse struct {
	ID            string                `json:"id"`
	UserID        string                `json:"userId"`
	PhysicianID   string                `json:"physicianId"`
	PhysicianName string                `json:"physicianName,omitempty"`
	Physician     *AppointmentPhysician `json:"physician,omitempty"`
	BookedTime    string                `json:"bookedTime"`
	Status        string                `json:"status"`
	CreatedAt     string                `json:"createdAt,omitempty"`
}

// AppointmentPhysician is the physician summary embedded in appointment
// listings so clients do not need a second lookup.
type AppointmentPhysician struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	MobileNumber   string   `json:"mobileNumber,omitempty"`
	ClinicNames    []string `json:"clinicNames,omitempty"`
}
