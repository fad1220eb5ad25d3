package requests

type RegisterUser struct {
	UserName     string `json:"userName" validate:"required,alphanum,min=3,max=30"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"passWord" validate:"required,password"`
	MobileNumber string `json:"mobileNumber" validate:"omitempty,mobile"`
}

type LoginUser struct {
	EmailOrUsername string `json:"emailOrUsername" validate:"required"`
	Password        string `json:"passWord" validate:"required"`
}

// FirebaseSignin carries the identity asserted by an external provider.
// The provider UID doubles as the stored credential for such accounts.
type FirebaseSignin struct {
	UserName string `json:"userName" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	UID      string `json:"uid" validate:"required"`
}

type UpdateUser struct {
	UserName     string `json:"userName" validate:"omitempty,alphanum,min=3,max=30"`
	Email        string `json:"email" validate:"omitempty,email"`
	Password     string `json:"passWord" validate:"omitempty,password"`
	MobileNumber string `json:"mobileNumber" validate:"omitempty,mobile"`
}
