package users

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is the account record returned by the API. The client treats everything
// beyond the identifying fields as display data.
type User struct {
	ID           int       `json:"id" yaml:"id"`                                    // Unique identifier for the user
	Username     string    `json:"username" yaml:"username"`                        // Unique username
	Email        string    `json:"email,omitempty" yaml:"email,omitempty"`          // User's email address, only present on the owner's profile
	PasswordHash string    `json:"-" yaml:"-"`                                      // Hashed version of the user's password - never serialize
	Verified     bool      `json:"is_verified" yaml:"is_verified"`                  // Verified, has the user confirmed their email
	CreatedAt    time.Time `json:"created_at,omitzero" yaml:"created_at,omitempty"` // Date and time when the user registered
}

// Public returns a copy of the user without private fields, suitable for other users to see.
func (u *User) Public() *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:        u.ID,
		Username:  u.Username,
		Verified:  u.Verified,
		CreatedAt: u.CreatedAt,
	}
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// CheckPassword compares password against the user's stored hash
func (u *User) CheckPassword(password string) bool {
	return CheckPasswordHash(password, u.PasswordHash)
}

// NormaliseEmail lower-cases and trims an email so lookups are case insensitive.
func NormaliseEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
