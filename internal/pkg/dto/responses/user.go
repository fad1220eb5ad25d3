package responses

type UserResponse struct {
	ID           string `json:"id"`
	UserName     string `json:"userName"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber,omitempty"`
	AuthProvider string `json:"authProvider,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}
