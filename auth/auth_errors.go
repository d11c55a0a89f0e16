package auth

import "errors"

var (
	PasswordsDontMatchErr = errors.New("passwords do not match")
	MissingTokenErr       = errors.New("token is missing")
)
