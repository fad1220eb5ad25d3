package responses

type PhysicianResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Specialization string            `json:"specialization"`
	Qualification  string            `json:"qualification,omitempty"`
	Experience     int               `json:"experience,omitempty"`
	ConsultingFee  int               `json:"consultingFee,omitempty"`
	Clinics        []Clinic          `json:"clinics,omitempty"`
	Contact        *PhysicianContact `json:"contact,omitempty"`
}

type Clinic struct {
	ClinicName  string       `json:"clinicName"`
	Address     string       `json:"address,omitempty"`
	City        string       `json:"city,omitempty"`
	WorkingDays []WorkingDay `json:"workingDays,omitempty"`
}

type WorkingDay struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type PhysicianContact struct {
	Email        string `json:"email,omitempty"`
	MobileNumber string `json:"mobileNumber,omitempty"`
}
