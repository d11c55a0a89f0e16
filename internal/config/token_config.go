package config

import (
	"strconv"
	"time"
)

// TokenConfig controls how the development API issues credentials.
type TokenConfig interface {
	GetJWTSecret() string
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
	GetOneTimeTokenExpiry() time.Duration
	GetOneTimeTokenLength() int
	GetRotateRefreshTokens() bool
}

type Tokens struct{}

var _ TokenConfig = Tokens{}

func (Tokens) GetJWTSecret() string {
	return GetEnv("JWT_SECRET", "dev-secret-change-me")
}

func (Tokens) GetAccessTokenExpiry() time.Duration {
	return GetDuration("ACCESS_TOKEN_EXPIRY", 15*time.Minute)
}

func (Tokens) GetRefreshTokenExpiry() time.Duration {
	return GetDuration("REFRESH_TOKEN_EXPIRY", 30*24*time.Hour) // 30 days
}

// GetOneTimeTokenExpiry covers email verification and password reset links.
func (Tokens) GetOneTimeTokenExpiry() time.Duration {
	return 1 * time.Hour
}

func (Tokens) GetOneTimeTokenLength() int {
	return 32 // 32 bytes = 256 bits
}

// GetRotateRefreshTokens makes /auth/refresh return a new refresh token and
// revoke the one presented.
func (Tokens) GetRotateRefreshTokens() bool {
	rotate, err := strconv.ParseBool(GetEnv("ROTATE_REFRESH_TOKENS", "false"))
	return err == nil && rotate
}
