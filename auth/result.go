package auth

import (
	"github.com/jrsteele09/go-blog-client/apiclient"
)

// Result is the outcome of a one-shot auth operation. Message is the server's
// text on success, or the best available reason on failure.
type Result struct {
	Success bool   `json:"success" yaml:"success"`
	Message string `json:"message" yaml:"message"`
}

func succeeded(message string) Result {
	return Result{Success: true, Message: message}
}

// failed extracts the server's reason from err, falling back to fallback.
func failed(err error, fallback string) Result {
	return Result{Success: false, Message: apiclient.Message(err, fallback)}
}
