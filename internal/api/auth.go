package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"skillup/internal/logging"
	"skillup/internal/models"
)

const (
	loginPath    = "/auth/login"
	registerPath = "/users/add"

	loginFailedMsg    = "Login failed"
	registerFailedMsg = "Registration failed"
)

// AuthClient talks to the auth/product service. Login and registration share
// the same failure contract: a non-2xx response becomes an *AuthError with
// the server's message (or a generic fallback), a transport failure is
// wrapped and propagated.
type AuthClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewAuthClient returns an AuthClient for the service at baseURL.
func NewAuthClient(baseURL string, timeout time.Duration, log logging.Logger) *AuthClient {
	return &AuthClient{
		baseURL: baseURL,
		http:    newHTTPClient(timeout),
		log:     log.With("component", "auth_client"),
	}
}

// userPayload is the auth service's user record. Newer deployments return
// the session token as accessToken, older ones as token.
type userPayload struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Token       string `json:"token"`
	AccessToken string `json:"accessToken"`
}

func (p userPayload) toUser() models.User {
	token := p.Token
	if token == "" {
		token = p.AccessToken
	}
	return models.User{
		ID:        p.ID,
		Username:  p.Username,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Token:     token,
	}
}

type errorPayload struct {
	Message string `json:"message"`
}

// Login authenticates the credentials and returns the user, token included
// when the server issued one.
func (c *AuthClient) Login(ctx context.Context, creds models.LoginCredentials) (models.User, error) {
	return c.postUser(ctx, loginPath, creds, loginFailedMsg)
}

// Register creates a new account. The returned user has no token: creating
// an account does not start a session.
func (c *AuthClient) Register(ctx context.Context, creds models.RegisterCredentials) (models.User, error) {
	return c.postUser(ctx, registerPath, creds, registerFailedMsg)
}

func (c *AuthClient) postUser(ctx context.Context, path string, body any, fallbackMsg string) (models.User, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return models.User{}, wrapTransport("encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return models.User{}, wrapTransport("build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return models.User{}, wrapTransport("post "+path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fallbackMsg
		var ep errorPayload
		if err := decodeJSON(resp.Body, &ep); err == nil && ep.Message != "" {
			msg = ep.Message
		}
		c.log.Warn(ctx, "auth request rejected", "path", path, "status", resp.StatusCode)
		return models.User{}, &AuthError{StatusCode: resp.StatusCode, Message: msg}
	}

	var up userPayload
	if err := decodeJSON(resp.Body, &up); err != nil {
		return models.User{}, err
	}
	return up.toUser(), nil
}
