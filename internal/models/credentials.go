package models

// LoginCredentials is the login form payload.
type LoginCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterCredentials is the new-account form payload.
type RegisterCredentials struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
