package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"skillup/internal/models"
	"skillup/internal/validation"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// login prompts for credentials and authenticates. A validation failure is
// rendered field by field and nothing is submitted; an API failure is
// rendered once from the auth slice and then cleared.
func (a *App) login(ctx context.Context) {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}
	password, err := getPassword(a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}

	creds := models.LoginCredentials{Username: username, Password: password}
	if err := a.actions.Login(ctx, creds); err != nil {
		a.renderAuthError(err)
		return
	}

	if u := a.store.Auth().User; u != nil {
		a.printf("Logged in as %s\n", u.Username)
	}
}

// register prompts for the registration form and creates the account.
// Creating an account does not log the user in.
func (a *App) register(ctx context.Context) {
	creds := models.RegisterCredentials{}
	prompts := []struct {
		label string
		dst   *string
	}{
		{"Choose a username", &creds.Username},
		{"Enter email", &creds.Email},
		{"Enter first name", &creds.FirstName},
		{"Enter last name", &creds.LastName},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.label, a.out)
		if err != nil {
			a.printf("error: %v\n", err)
			return
		}
		*p.dst = v
	}
	password, err := getPassword(a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}
	creds.Password = password

	if err := a.actions.Register(ctx, creds); err != nil {
		a.renderAuthError(err)
		return
	}

	fmt.Fprintln(a.out, "Account created. Use 'login' to start a session.")
}

func (a *App) logout(ctx context.Context) {
	if err := a.actions.Logout(ctx); err != nil {
		a.printf("warning: %v\n", err)
	}
	fmt.Fprintln(a.out, "Logged out")
}

// renderAuthError distinguishes local form errors from slice errors. Local
// validation errors never make it into the store, so they are printed
// directly; everything else is read from the auth slice and cleared so the
// message shows exactly once.
func (a *App) renderAuthError(err error) {
	var vErr *validation.ValidationError
	if errors.As(err, &vErr) {
		fields := make([]string, 0, len(vErr.Fields))
		for f := range vErr.Fields {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			a.printf("  %s: %s\n", f, vErr.Fields[f])
		}
		return
	}
	if msg := a.store.Auth().Err; msg != "" {
		a.printf("error: %s\n", msg)
		a.store.ClearAuthError()
		return
	}
	a.printf("error: %v\n", err)
}
