package authmodel

import "github.com/jrsteele09/go-blog-client/users"

// TokenResponse is returned by POST /auth/login.
type TokenResponse struct {
	// AccessToken is the short-lived bearer credential for API calls.
	// Usage: Include in Authorization header: "Bearer <access_token>"
	AccessToken string `json:"access_token"`

	// RefreshToken is used solely against /auth/refresh, itself as a bearer credential.
	RefreshToken string `json:"refresh_token"`

	// User is the authenticated account.
	User *users.User `json:"user,omitempty"`

	// Message is the human readable outcome from the server.
	Message string `json:"message,omitempty"`
}

// RefreshResponse is returned by POST /auth/refresh. RefreshToken is only set
// when the server rotates it.
type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// ProfileResponse is returned by GET /auth/profile.
type ProfileResponse struct {
	User *users.User `json:"user"`
}

// MessageResponse is the body of the one-shot auth endpoints (signup, verify, reset).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error body. The API is not consistent about which key it
// uses, so all three are accepted.
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Msg     string `json:"msg,omitempty"`
}

// Reason returns the first non-empty human readable field.
func (e ErrorResponse) Reason() string {
	for _, s := range []string{e.Error, e.Message, e.Msg} {
		if s != "" {
			return s
		}
	}
	return ""
}
