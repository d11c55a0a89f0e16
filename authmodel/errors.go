package authmodel

// Fallback messages used when the server gives no reason.
const (
	LoginFailed             = "Login failed"
	SignupFailed            = "Signup failed"
	ResetRequestFailed      = "Reset request failed"
	PasswordResetFailed     = "Password reset failed"
	EmailVerificationFailed = "Email verification failed"
)
