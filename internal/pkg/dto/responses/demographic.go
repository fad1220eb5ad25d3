package responses

type DemographicResponse struct {
	ID                string  `json:"id"`
	UserName          string  `json:"userName"`
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName,omitempty"`
	DateOfBirth       string  `json:"dob,omitempty"`
	Gender            string  `json:"gender,omitempty"`
	BloodGroup        string  `json:"bloodGroup,omitempty"`
	MaritalStatus     string  `json:"maritalStatus,omitempty"`
	Height            float64 `json:"height,omitempty"`
	Weight            float64 `json:"weight,omitempty"`
	Occupation        string  `json:"occupation,omitempty"`
	Address           string  `json:"address,omitempty"`
	City              string  `json:"city,omitempty"`
	State             string  `json:"state,omitempty"`
	ZipCode           string  `json:"zipCode,omitempty"`
	EmergencyContact  string  `json:"emergencyContact,omitempty"`
	ProfilePictureURL string  `json:"profilePictureUrl,omitempty"`
}

// DemographicFallback is returned when the user has no demographic
// document yet, the account details ride along so clients can prefill.
type DemographicFallback struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}
