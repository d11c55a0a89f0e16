package authmodel

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetPasswordRequestBody is the body of POST /auth/reset-password-request.
type ResetPasswordRequestBody struct {
	Email string `json:"email"`
}

// ResetPasswordBody is the body of POST /auth/reset-password/{token}.
type ResetPasswordBody struct {
	Password string `json:"password"`
}
