package token

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	apperrors "github.com/jrsteele09/go-blog-client/internal/errors"
	"github.com/jrsteele09/go-blog-client/users"
	"github.com/pkg/errors"
)

// Type distinguishes access from refresh JWTs. A token of one type is never
// accepted where the other is expected.
type Type string

const (
	TypeAccess  Type = "access"
	TypeRefresh Type = "refresh"
)

const defaultIssuer = "blog-dev-api"

// Claims is what the API needs back from a verified token.
type Claims struct {
	UserID    int
	Type      Type
	JTI       string
	ExpiresAt time.Time
}

// Pair is a freshly issued access token with its refresh token.
type Pair struct {
	AccessToken  string
	RefreshToken string
}

type Manager struct {
	signer             Signer
	issuer             string
	revoked            RevocationList
	accessTokenExpiry  time.Duration
	refreshTokenExpiry time.Duration
	rotateRefresh      bool
	nowFunc            func() time.Time
}

type ManagerOption func(*Manager)

func WithTokenExpiry(accessTokenExpiry, refreshTokenExpiry time.Duration) ManagerOption {
	return func(m *Manager) {
		m.accessTokenExpiry = accessTokenExpiry
		m.refreshTokenExpiry = refreshTokenExpiry
	}
}

func WithNowFunc(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.nowFunc = now
	}
}

func WithIssuer(issuer string) ManagerOption {
	return func(m *Manager) {
		m.issuer = issuer
	}
}

// WithRefreshRotation makes Refresh issue a new refresh token and revoke the old one.
func WithRefreshRotation(rotate bool) ManagerOption {
	return func(m *Manager) {
		m.rotateRefresh = rotate
	}
}

func WithRevocationList(list RevocationList) ManagerOption {
	return func(m *Manager) {
		m.revoked = list
	}
}

func New(signer Signer, options ...ManagerOption) *Manager {
	m := &Manager{
		signer:       signer,
		issuer:       defaultIssuer,
		revoked: NewMemoryRevocationList(),
	}

	for _, opt := range options {
		opt(m)
	}

	if m.accessTokenExpiry == 0 {
		m.accessTokenExpiry = 15 * time.Minute
	}
	if m.refreshTokenExpiry == 0 {
		m.refreshTokenExpiry = 30 * 24 * time.Hour
	}
	if m.nowFunc == nil {
		m.nowFunc = time.Now
	}
	return m
}

// Issue creates an access and refresh token for user.
func (c *Manager) Issue(user *users.User) (*Pair, error) {
	access, err := c.create(user.ID, TypeAccess, c.accessTokenExpiry)
	if err != nil {
		return nil, errors.Wrap(err, "Manager.Issue access")
	}
	refresh, err := c.create(user.ID, TypeRefresh, c.refreshTokenExpiry)
	if err != nil {
		return nil, errors.Wrap(err, "Manager.Issue refresh")
	}
	return &Pair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh verifies rawRefresh and issues a new access token. The refresh token
// in the returned pair is empty unless rotation is enabled.
func (c *Manager) Refresh(rawRefresh string) (*Pair, *Claims, error) {
	claims, err := c.Verify(rawRefresh, TypeRefresh)
	if err != nil {
		return nil, nil, err
	}

	// Rotation spends the presented token before anything is minted.
	if c.rotateRefresh {
		fresh, err := c.revoked.Revoke(claims.JTI, claims.ExpiresAt)
		if err != nil {
			return nil, nil, errors.Wrap(err, "Manager.Refresh revoke")
		}
		if !fresh {
			return nil, nil, errors.Wrap(apperrors.ErrInvalidToken, "token revoked")
		}
	}

	access, err := c.create(claims.UserID, TypeAccess, c.accessTokenExpiry)
	if err != nil {
		return nil, nil, errors.Wrap(err, "Manager.Refresh access")
	}
	pair := &Pair{AccessToken: access}

	if c.rotateRefresh {
		pair.RefreshToken, err = c.create(claims.UserID, TypeRefresh, c.refreshTokenExpiry)
		if err != nil {
			return nil, nil, errors.Wrap(err, "Manager.Refresh rotate")
		}
	}
	return pair, claims, nil
}

// Verify checks rawToken's signature, expiry, type and revocation.
func (c *Manager) Verify(rawToken string, want Type) (*Claims, error) {
	parsed, err := jwt.Parse(rawToken, c.signer.GetVerificationKey,
		jwt.WithValidMethods([]string{c.signer.GetSigningMethod().Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithTimeFunc(c.nowFunc),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, errors.Wrap(apperrors.ErrInvalidToken, err.Error())
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}

	typ, _ := mapClaims["type"].(string)
	if Type(typ) != want {
		return nil, errors.Wrapf(apperrors.ErrInvalidToken, "expected %s token", want)
	}

	sub, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(apperrors.ErrInvalidToken, "missing subject")
	}
	userID, err := strconv.Atoi(sub)
	if err != nil {
		return nil, errors.Wrap(apperrors.ErrInvalidToken, "malformed subject")
	}

	jti, _ := mapClaims["jti"].(string)
	if jti != "" && c.revoked.IsRevoked(jti) {
		return nil, errors.Wrap(apperrors.ErrInvalidToken, "token revoked")
	}

	exp, _ := mapClaims.GetExpirationTime()
	claims := &Claims{UserID: userID, Type: want, JTI: jti}
	if exp != nil {
		claims.ExpiresAt = exp.Time
	}
	return claims, nil
}

// Revoke invalidates a verified refresh token before its expiry.
func (c *Manager) Revoke(rawRefresh string) error {
	claims, err := c.Verify(rawRefresh, TypeRefresh)
	if err != nil {
		return err
	}
	_, err = c.revoked.Revoke(claims.JTI, claims.ExpiresAt)
	return err
}

// CleanupRevokedTokens forgets revoked refresh tokens that have since expired.
func (c *Manager) CleanupRevokedTokens() int {
	return c.revoked.Purge(c.nowFunc())
}

func (c *Manager) create(userID int, typ Type, expiry time.Duration) (string, error) {
	now := c.nowFunc()
	claims := jwt.MapClaims{
		"iss":  c.issuer,               // The issuer of the token
		"sub":  strconv.Itoa(userID),   // The user the token belongs to
		"type": string(typ),            // access or refresh
		"iat":  now.Unix(),             // Issued At: the time at which the token was issued
		"exp":  now.Add(expiry).Unix(), // Expiry: when the token will expire
		"jti":  uuid.New().String(),    // Unique token ID for revocation
	}
	return c.signer.Sign(claims)
}
