package model

// User is the authenticated account, as returned by the login endpoint.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Tokens holds the bearer credentials issued at login.
type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
