package server

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/jrsteele09/go-blog-client/authmodel"
	apperrors "github.com/jrsteele09/go-blog-client/internal/errors"
	"github.com/jrsteele09/go-blog-client/token"
	"github.com/jrsteele09/go-blog-client/users"
	"github.com/rs/zerolog/log"
)

const resetRequestedMsg = "If an account with that email exists, a password reset link has been sent."

// SignupHandler creates an unverified account and mails its verification link.
func (s *Server) SignupHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req authmodel.SignupRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		req.Username = strings.TrimSpace(req.Username)
		if req.Username == "" || req.Email == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "Username, email and password are required")
			return
		}

		if _, err := s.repos.Users.GetByEmail(req.Email); err == nil {
			writeError(w, http.StatusBadRequest, "Email already registered")
			return
		}
		if _, err := s.repos.Users.GetByUsername(req.Username); err == nil {
			writeError(w, http.StatusBadRequest, "Username already taken")
			return
		}

		hash, err := users.HashPassword(req.Password)
		if err != nil {
			log.Error().Err(err).Msg("[Server.SignupHandler] HashPassword")
			writeError(w, http.StatusInternalServerError, "Could not create user")
			return
		}
		user := &users.User{
			Username:     req.Username,
			Email:        users.NormaliseEmail(req.Email),
			PasswordHash: hash,
			CreatedAt:    s.nowFunc().UTC(),
		}
		if err := s.repos.Users.Create(user); err != nil {
			if apperrors.Is(err, apperrors.ErrUserExists) {
				writeError(w, http.StatusBadRequest, "User already exists")
				return
			}
			log.Error().Err(err).Msg("[Server.SignupHandler] Create")
			writeError(w, http.StatusInternalServerError, "Could not create user")
			return
		}

		if err := s.sendOneTimeLink(r, user.Email, token.PurposeVerifyEmail); err != nil {
			log.Error().Err(err).Str("email", user.Email).Msg("[Server.SignupHandler] verification mail")
		}
		writeMessage(w, http.StatusCreated, "User created successfully. Please check your email to verify your account.")
	}
}

func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req authmodel.LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		user, err := s.repos.Users.GetByEmail(req.Email)
		if err != nil || !user.CheckPassword(req.Password) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		if !user.Verified {
			writeError(w, http.StatusForbidden, "Please verify your email before logging in")
			return
		}

		pair, err := s.tokens.Issue(user)
		if err != nil {
			log.Error().Err(err).Msg("[Server.LoginHandler] Issue")
			writeError(w, http.StatusInternalServerError, "Could not issue tokens")
			return
		}
		writeJSON(w, http.StatusOK, authmodel.TokenResponse{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			User:         user,
			Message:      "Login successful",
		})
	}
}

// RefreshHandler takes the refresh token as the bearer credential and returns a new access token.
func (s *Server) RefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r)
		if !ok {
			writeMsg(w, http.StatusUnauthorized, missingBearerMsg)
			return
		}

		pair, claims, err := s.tokens.Refresh(raw)
		if err != nil {
			writeTokenError(w, err)
			return
		}
		if _, err := s.repos.Users.GetByID(claims.UserID); err != nil {
			writeMsg(w, http.StatusUnauthorized, "User not found")
			return
		}
		writeJSON(w, http.StatusOK, authmodel.RefreshResponse{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		})
	}
}

func (s *Server) ProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())
		user, err := s.repos.Users.GetByID(userID)
		if err != nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeJSON(w, http.StatusOK, authmodel.ProfileResponse{User: user})
	}
}

func (s *Server) VerifyEmailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, err := s.oneTime.Redeem(r.PathValue("token"), token.PurposeVerifyEmail)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrTokenExpired) {
				writeError(w, http.StatusBadRequest, "Verification link has expired")
				return
			}
			writeError(w, http.StatusBadRequest, "Invalid or expired verification link")
			return
		}
		if err := s.repos.Users.SetVerified(email, true); err != nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeMessage(w, http.StatusOK, "Email verified successfully. You can now log in.")
	}
}

// ResetPasswordRequestHandler always answers with the same message so accounts cannot be probed.
func (s *Server) ResetPasswordRequestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req authmodel.ResetPasswordRequestBody
		if !decodeJSON(w, r, &req) {
			return
		}
		if strings.TrimSpace(req.Email) == "" {
			writeError(w, http.StatusBadRequest, "Email is required")
			return
		}

		if user, err := s.repos.Users.GetByEmail(req.Email); err == nil {
			if err := s.sendOneTimeLink(r, user.Email, token.PurposeResetPassword); err != nil {
				log.Error().Err(err).Str("email", user.Email).Msg("[Server.ResetPasswordRequestHandler] reset mail")
			}
		}
		writeMessage(w, http.StatusOK, resetRequestedMsg)
	}
}

func (s *Server) ResetPasswordHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req authmodel.ResetPasswordBody
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Password == "" {
			writeError(w, http.StatusBadRequest, "Password is required")
			return
		}

		email, err := s.oneTime.Redeem(r.PathValue("token"), token.PurposeResetPassword)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid or expired reset link")
			return
		}
		hash, err := users.HashPassword(req.Password)
		if err != nil {
			log.Error().Err(err).Msg("[Server.ResetPasswordHandler] HashPassword")
			writeError(w, http.StatusInternalServerError, "Could not reset password")
			return
		}
		if err := s.repos.Users.SetPasswordHash(email, hash); err != nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeMessage(w, http.StatusOK, "Password has been reset successfully")
	}
}

func (s *Server) sendOneTimeLink(r *http.Request, email string, purpose token.Purpose) error {
	tok, err := s.oneTime.Issue(email, purpose)
	if err != nil {
		return fmt.Errorf("[Server.sendOneTimeLink] Issue: %w", err)
	}

	mail := Mail{To: email}
	switch purpose {
	case token.PurposeVerifyEmail:
		mail.Subject = "Verify your email"
		mail.Link = s.config.GetFrontendURL() + "/verify-email/" + url.PathEscape(tok)
		mail.Body = "Welcome! Confirm your email address to finish signing up."
	case token.PurposeResetPassword:
		mail.Subject = "Reset your password"
		mail.Link = s.config.GetFrontendURL() + "/reset-password/" + url.PathEscape(tok)
		mail.Body = "Someone asked to reset your password. Ignore this mail if it was not you."
	}
	return s.mailer.Send(r.Context(), mail)
}
