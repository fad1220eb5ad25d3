package models

// Principal is the authenticated identity attached to the request
// context by the authentication middleware.
type Principal struct {
	UserID   string
	UserName string
	Email    string
	AuthType string
}
