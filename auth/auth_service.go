package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/jrsteele09/go-blog-client/apiclient"
	"github.com/jrsteele09/go-blog-client/authmodel"
	apperrors "github.com/jrsteele09/go-blog-client/internal/errors"
	"github.com/jrsteele09/go-blog-client/sessions"
	"github.com/jrsteele09/go-blog-client/users"
	"github.com/rs/zerolog/log"
)

// Service owns the client session: it signs users in and out, refreshes the
// access token and runs the startup session check.
type Service struct {
	session *sessions.Manager
	// public sends calls without the session's bearer token.
	public *apiclient.Client
	// api sends calls through the authenticated gateway.
	api *apiclient.Client

	startOnce sync.Once
	ready     chan struct{}
	readyOnce sync.Once
}

type ServiceOption func(*Service)

// WithAuthenticatedClient sets the client used for calls that need the session,
// normally one built on the gateway transport.
func WithAuthenticatedClient(c *apiclient.Client) ServiceOption {
	return func(s *Service) {
		s.api = c
	}
}

// NewService builds the auth service. Without WithAuthenticatedClient the
// profile check uses the public client and sends the bearer itself.
func NewService(session *sessions.Manager, public *apiclient.Client, options ...ServiceOption) (*Service, error) {
	if session == nil {
		return nil, errors.New("[NewService] session manager is required")
	}
	if public == nil {
		return nil, errors.New("[NewService] public api client is required")
	}

	s := &Service{
		session: session,
		public:  public,
		ready:   make(chan struct{}),
	}
	for _, opt := range options {
		opt(s)
	}
	return s, nil
}

// Login exchanges credentials for tokens and stores the new session.
func (s *Service) Login(ctx context.Context, email, password string) Result {
	var resp authmodel.TokenResponse
	err := s.public.Do(ctx, http.MethodPost, authmodel.LoginPath, authmodel.LoginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		log.Debug().Err(err).Msg("login failed")
		return failed(err, authmodel.LoginFailed)
	}
	if resp.AccessToken == "" {
		return Result{Message: authmodel.LoginFailed}
	}

	if err := s.session.Set(sessions.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		User:         resp.User,
	}); err != nil {
		log.Warn().Err(err).Msg("session could not be persisted")
	}
	return succeeded(resp.Message)
}

// Signup registers an account. The user still has to verify their email and log
// in, so no session is created.
func (s *Service) Signup(ctx context.Context, username, email, password string) Result {
	var resp authmodel.MessageResponse
	err := s.public.Do(ctx, http.MethodPost, authmodel.SignupPath, authmodel.SignupRequest{
		Username: username,
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return failed(err, authmodel.SignupFailed)
	}
	return succeeded(resp.Message)
}

// Logout clears the session from memory and durable storage. Calling it with no
// session is a no-op.
func (s *Service) Logout() {
	if err := s.session.Clear(); err != nil {
		log.Warn().Err(err).Msg("stored tokens could not be removed")
	}
}

// Refresh obtains a new access token using the refresh token as bearer. Any
// failure other than ctx ending clears the session before returning.
func (s *Service) Refresh(ctx context.Context) (string, error) {
	refreshToken := s.session.RefreshToken()
	if refreshToken == "" {
		s.Logout()
		return "", apperrors.ErrNoRefreshToken
	}

	var resp authmodel.RefreshResponse
	err := s.public.Do(ctx, http.MethodPost, authmodel.RefreshPath, nil, &resp, apiclient.WithBearer(refreshToken))
	if err != nil && ctx.Err() != nil {
		return "", fmt.Errorf("[Service.Refresh] %w", err)
	}
	if err == nil && resp.AccessToken == "" {
		err = errors.New("response has no access token")
	}
	if err != nil {
		s.Logout()
		return "", fmt.Errorf("[Service.Refresh] %w: %w", apperrors.ErrRefreshFailed, err)
	}

	if err := s.session.SetAccessToken(resp.AccessToken, resp.RefreshToken); err != nil {
		if errors.Is(err, apperrors.ErrNoSession) {
			// Logged out while the refresh was in flight.
			return "", fmt.Errorf("[Service.Refresh] %w", err)
		}
		log.Warn().Err(err).Msg("refreshed token could not be persisted")
	}
	return resp.AccessToken, nil
}

func (s *Service) ResetPasswordRequest(ctx context.Context, email string) Result {
	var resp authmodel.MessageResponse
	err := s.public.Do(ctx, http.MethodPost, authmodel.ResetPasswordRequestPath, authmodel.ResetPasswordRequestBody{
		Email: email,
	}, &resp)
	if err != nil {
		return failed(err, authmodel.ResetRequestFailed)
	}
	return succeeded(resp.Message)
}

func (s *Service) ResetPassword(ctx context.Context, token, password string) Result {
	if err := NewValidator().ValidateToken(token); err != nil {
		return Result{Message: authmodel.PasswordResetFailed}
	}
	var resp authmodel.MessageResponse
	err := s.public.Do(ctx, http.MethodPost, authmodel.ResetPasswordPath(token), authmodel.ResetPasswordBody{
		Password: password,
	}, &resp)
	if err != nil {
		return failed(err, authmodel.PasswordResetFailed)
	}
	return succeeded(resp.Message)
}

// VerifyEmail confirms an address. It never signs the user in.
func (s *Service) VerifyEmail(ctx context.Context, token string) Result {
	if err := NewValidator().ValidateToken(token); err != nil {
		return Result{Message: authmodel.EmailVerificationFailed}
	}
	var resp authmodel.MessageResponse
	if err := s.public.Do(ctx, http.MethodGet, authmodel.VerifyEmailPath(token), nil, &resp); err != nil {
		return failed(err, authmodel.EmailVerificationFailed)
	}
	return succeeded(resp.Message)
}

// Start runs the startup session check once: tokens persisted by an earlier run
// are loaded and, if an access token exists, confirmed against the profile
// endpoint. A failed check logs out; an abandoned one (ctx ended) keeps the
// tokens. Ready is closed when the check resolves.
func (s *Service) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		defer s.markReady()

		found, err := s.session.Load()
		if err != nil {
			log.Warn().Err(err).Msg("stored tokens could not be read")
			s.Logout()
			return
		}
		if !found {
			return
		}

		user, err := s.Profile(ctx)
		if err != nil && ctx.Err() != nil {
			log.Debug().Err(err).Msg("startup check abandoned")
			return
		}
		if err != nil {
			log.Info().Err(err).Msg("stored session is no longer valid")
			s.Logout()
			return
		}
		if err := s.session.SetUser(user); err != nil {
			log.Debug().Err(err).Msg("session ended during startup check")
		}
	})
}

// Profile fetches the signed-in user's profile through the authenticated client.
func (s *Service) Profile(ctx context.Context) (*users.User, error) {
	client := s.api
	var opts []apiclient.RequestOption
	if client == nil {
		client = s.public
		opts = append(opts, apiclient.WithBearer(s.session.AccessToken()))
	}

	var resp authmodel.ProfileResponse
	if err := client.Do(ctx, http.MethodGet, authmodel.ProfilePath, nil, &resp, opts...); err != nil {
		return nil, fmt.Errorf("[Service.Profile] %w", err)
	}
	if resp.User == nil {
		return nil, fmt.Errorf("[Service.Profile] %w", apperrors.ErrUserNotFound)
	}
	return resp.User, nil
}

func (s *Service) markReady() {
	s.readyOnce.Do(func() { close(s.ready) })
}

// Ready is closed once the startup check has resolved.
func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// Loading reports whether the startup check is still pending.
func (s *Service) Loading() bool {
	select {
	case <-s.ready:
		return false
	default:
		return true
	}
}

// WaitReady blocks until the startup check resolves or ctx ends.
func (s *Service) WaitReady(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("[Service.WaitReady] %w: %w", apperrors.ErrSessionNotReady, ctx.Err())
	}
}

func (s *Service) CurrentUser() *users.User {
	return s.session.User()
}

// IsAuthenticated reports whether an access token is held. It does not prove
// the token is still accepted by the server.
func (s *Service) IsAuthenticated() bool {
	return s.session.AccessToken() != ""
}

// Session exposes the underlying session manager.
func (s *Service) Session() *sessions.Manager {
	return s.session
}
