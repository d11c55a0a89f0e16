package authmodel

import "net/url"

// Paths relative to the API base URL.
const (
	LoginPath                = "/auth/login"
	SignupPath               = "/auth/signup"
	RefreshPath              = "/auth/refresh"
	ProfilePath              = "/auth/profile"
	ResetPasswordRequestPath = "/auth/reset-password-request"
)

func VerifyEmailPath(token string) string {
	return "/auth/verify-email/" + url.PathEscape(token)
}

func ResetPasswordPath(token string) string {
	return "/auth/reset-password/" + url.PathEscape(token)
}
