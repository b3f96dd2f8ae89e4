package models

// User is the authenticated principal. A successful login or registration
// replaces any prior value wholesale; logout destroys it.
//
// Token is optional: the auth service includes it on login but not on
// registration. JSON tags match both the wire payload and the locally
// persisted copy.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Token     string `json:"token,omitempty"`
}
