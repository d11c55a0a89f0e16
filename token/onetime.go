package token

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	apperrors "github.com/jrsteele09/go-blog-client/internal/errors"
	"github.com/jrsteele09/go-blog-client/users"
	"github.com/pkg/errors"
)

// Purpose scopes a one-time token to the flow that issued it.
type Purpose string

const (
	PurposeVerifyEmail   Purpose = "verify_email"
	PurposeResetPassword Purpose = "reset_password"
)

// OneTimeToken is an emailed link token. Only the random Token string leaves
// the server; the rest is metadata used when it is redeemed.
type OneTimeToken struct {
	Token   string
	Email   string
	Purpose Purpose
	Iat     time.Time
}

// OneTimeManager issues and redeems single-use tokens for email verification and
// password reset.
type OneTimeManager struct {
	repo    OneTimeTokenRepo
	length  int
	expiry  time.Duration
	nowFunc func() time.Time
}

type OneTimeOption func(*OneTimeManager)

func WithOneTimeExpiry(expiry time.Duration) OneTimeOption {
	return func(m *OneTimeManager) {
		m.expiry = expiry
	}
}

// WithOneTimeLength sets the number of random bytes in each token.
func WithOneTimeLength(length int) OneTimeOption {
	return func(m *OneTimeManager) {
		m.length = length
	}
}

func WithOneTimeNowFunc(now func() time.Time) OneTimeOption {
	return func(m *OneTimeManager) {
		m.nowFunc = now
	}
}

func NewOneTimeManager(repo OneTimeTokenRepo, options ...OneTimeOption) *OneTimeManager {
	m := &OneTimeManager{
		repo:    repo,
		length:  32,
		expiry:  time.Hour,
		nowFunc: time.Now,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// Issue creates a token for email. Any earlier token for the same email and
// purpose stops working.
func (m *OneTimeManager) Issue(email string, purpose Purpose) (string, error) {
	email = users.NormaliseEmail(email)
	if existing, err := m.repo.GetByEmail(email, string(purpose)); err == nil && existing != nil {
		if err := m.repo.Delete(existing.Token); err != nil {
			return "", errors.Wrap(err, "OneTimeManager.Issue Delete")
		}
	}

	tokenBytes := make([]byte, m.length)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", errors.Wrap(err, "OneTimeManager.Issue rand.Read")
	}

	tokenStr := hex.EncodeToString(tokenBytes)
	if err := m.repo.Upsert(&OneTimeToken{
		Token:   tokenStr,
		Email:   email,
		Purpose: purpose,
		Iat:     m.nowFunc(),
	}); err != nil {
		return "", errors.Wrap(err, "OneTimeManager.Issue Upsert")
	}
	return tokenStr, nil
}

// Redeem consumes token and returns the email it was issued for. A token can be
// redeemed once; expired or foreign-purpose tokens are rejected.
func (m *OneTimeManager) Redeem(token string, purpose Purpose) (string, error) {
	ot, err := m.repo.Get(token)
	if err != nil || ot.Purpose != purpose {
		return "", apperrors.ErrInvalidToken
	}
	if err := m.repo.Delete(token); err != nil {
		return "", apperrors.ErrInvalidToken
	}
	if m.nowFunc().Sub(ot.Iat) > m.expiry {
		return "", apperrors.ErrTokenExpired
	}
	return ot.Email, nil
}
