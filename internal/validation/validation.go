// Package validation performs local, pre-network credential validation.
// Failures never reach the network: callers must not submit a form whose
// payload fails these checks.
package validation

import (
	"net/mail"
	"sort"
	"strings"

	"skillup/internal/models"
)

const (
	MsgRequired     = "This field is required"
	MsgEmailInvalid = "Please enter a valid email address"
	MsgPasswordMin  = "Password must be at least 6 characters"
	MsgUsernameMin  = "Username must be at least 3 characters"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

// ValidationError carries one message per offending field. It is a local,
// field-level error and is never sent to a server.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return strings.Join(parts, "; ")
}

// ValidateLogin checks the login form. Username must be present and at least
// 3 characters, password present and at least 6. Returns *ValidationError
// with the first failure per field, or nil.
func ValidateLogin(c models.LoginCredentials) error {
	fields := map[string]string{}

	checkRequiredMin(fields, "username", c.Username, minUsernameLen, MsgUsernameMin)
	checkRequiredMin(fields, "password", c.Password, minPasswordLen, MsgPasswordMin)

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidateRegister checks the registration form: login rules plus email
// format and required first/last name.
func ValidateRegister(c models.RegisterCredentials) error {
	fields := map[string]string{}

	checkRequiredMin(fields, "username", c.Username, minUsernameLen, MsgUsernameMin)
	checkRequiredMin(fields, "password", c.Password, minPasswordLen, MsgPasswordMin)

	if c.Email == "" {
		fields["email"] = MsgRequired
	} else if _, err := mail.ParseAddress(c.Email); err != nil {
		fields["email"] = MsgEmailInvalid
	}

	if c.FirstName == "" {
		fields["firstName"] = MsgRequired
	}
	if c.LastName == "" {
		fields["lastName"] = MsgRequired
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func checkRequiredMin(fields map[string]string, name, value string, min int, minMsg string) {
	if value == "" {
		fields[name] = MsgRequired
		return
	}
	if len(value) < min {
		fields[name] = minMsg
	}
}
