package requests

type Demographic struct {
	UserName         string  `json:"userName" validate:"omitempty,alphanum,min=3,max=30"`
	FirstName        string  `json:"firstName" validate:"required,max=50"`
	LastName         string  `json:"lastName" validate:"omitempty,max=50"`
	DateOfBirth      string  `json:"dob" validate:"omitempty,date"`
	Gender           string  `json:"gender" validate:"omitempty,oneof=Male Female Other 'Prefer not to say'"`
	BloodGroup       string  `json:"bloodGroup" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	MaritalStatus    string  `json:"maritalStatus" validate:"omitempty,oneof=Single Married Divorced Widowed"`
	Height           float64 `json:"height" validate:"omitempty,gt=0"`
	Weight           float64 `json:"weight" validate:"omitempty,gt=0"`
	Occupation       string  `json:"occupation" validate:"omitempty,max=60"`
	Address          string  `json:"address" validate:"omitempty,max=200"`
	City             string  `json:"city" validate:"omitempty,max=60"`
	State            string  `json:"state" validate:"omitempty,max=60"`
	ZipCode          string  `json:"zipCode" validate:"omitempty,zipcode"`
	EmergencyContact string  `json:"emergencyContact" validate:"omitempty,mobile"`

	ProfilePicture     []byte `json:"-"`
	ProfilePictureName string `json:"-"`
}
