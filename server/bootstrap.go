package server

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/jrsteele09/go-blog-client/blogs"
	"github.com/jrsteele09/go-blog-client/users"
	"github.com/rs/zerolog/log"
)

const (
	DemoUsername = "demo"
	DemoEmail    = "demo@blog.local"
)

// SeedDemoData creates a verified demo account with one published post so a
// fresh development API has something to log in to and read.
// Returns the generated password on first creation (empty string if the account already exists)
func (s *Server) SeedDemoData() (generatedPassword string, err error) {
	if existing, err := s.repos.Users.GetByEmail(DemoEmail); err == nil {
		log.Info().Str("email", existing.Email).Msg("Bootstrap: demo account already exists")
		return "", nil
	}

	// Generate a secure random password
	passwordBytes := make([]byte, 12)
	if _, err := rand.Read(passwordBytes); err != nil {
		return "", fmt.Errorf("[Server.SeedDemoData] failed to generate password: %w", err)
	}
	generatedPassword = base64.URLEncoding.EncodeToString(passwordBytes)

	passwordHash, err := users.HashPassword(generatedPassword)
	if err != nil {
		return "", fmt.Errorf("[Server.SeedDemoData] failed to hash password: %w", err)
	}

	demo := &users.User{
		Username:     DemoUsername,
		Email:        DemoEmail,
		PasswordHash: passwordHash,
		Verified:     true,
		CreatedAt:    s.nowFunc().UTC(),
	}
	if err := s.repos.Users.Create(demo); err != nil {
		return "", fmt.Errorf("[Server.SeedDemoData] failed to create demo user: %w", err)
	}

	welcome := &blogs.Blog{
		Title:     "Welcome to " + s.config.GetAppName(),
		Content:   "This post was created when the development API started. Log in as the demo user to write your own.",
		Timestamp: s.nowFunc().UTC(),
		Category:  "others",
		Author:    demo.Username,
		UserID:    demo.ID,
		Tags:      []string{"welcome"},
	}
	if err := s.repos.Blogs.Create(welcome); err != nil {
		return "", fmt.Errorf("[Server.SeedDemoData] failed to create welcome blog: %w", err)
	}

	log.Info().
		Str("email", demo.Email).
		Str("password", generatedPassword).
		Msg("Bootstrap: created demo account, save this password - it will not be displayed again")
	return generatedPassword, nil
}
