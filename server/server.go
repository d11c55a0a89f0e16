package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jrsteele09/go-blog-client/blogs"
	"github.com/jrsteele09/go-blog-client/internal/config"
	"github.com/jrsteele09/go-blog-client/token"
	"github.com/jrsteele09/go-blog-client/users"
	"github.com/rs/zerolog/log"
)

// Repos is the storage the development API runs on.
type Repos struct {
	Users    users.UserRepo
	Blogs    blogs.BlogRepo
	Comments blogs.CommentRepo
	Tokens   token.OneTimeTokenRepo
}

type Server struct {
	env     string // Environment (e.g., "DEV", "PROD")
	mux     *http.ServeMux
	routes  []string
	config  config.Config
	repos   Repos
	tokens  *token.Manager
	oneTime *token.OneTimeManager
	mailer  Mailer
	views   *viewTracker
	nowFunc func() time.Time
}

type Option func(*Server)

// WithMailer replaces the logging mailer used for verification and reset links.
func WithMailer(m Mailer) Option {
	return func(s *Server) {
		s.mailer = m
	}
}

// WithTokenManager replaces the JWT manager built from config.
func WithTokenManager(m *token.Manager) Option {
	return func(s *Server) {
		s.tokens = m
	}
}

func WithOneTimeManager(m *token.OneTimeManager) Option {
	return func(s *Server) {
		s.oneTime = m
	}
}

func WithNowFunc(now func() time.Time) Option {
	return func(s *Server) {
		s.nowFunc = now
	}
}

func New(config config.Config, repos Repos, options ...Option) (*Server, error) {
	if repos.Users == nil || repos.Blogs == nil || repos.Comments == nil || repos.Tokens == nil {
		return nil, fmt.Errorf("[Server New] every repo is required")
	}

	s := &Server{
		mux:     http.NewServeMux(),
		config:  config,
		repos:   repos,
		mailer:  LogMailer{},
		nowFunc: time.Now,
	}
	s.env = config.GetEnv()

	for _, opt := range options {
		opt(s)
	}

	if s.tokens == nil {
		s.tokens = token.New(
			token.NewHMACSigner(config.GetJWTSecret()),
			token.WithTokenExpiry(config.GetAccessTokenExpiry(), config.GetRefreshTokenExpiry()),
			token.WithRefreshRotation(config.GetRotateRefreshTokens()),
			token.WithNowFunc(s.nowFunc),
		)
	}
	if s.oneTime == nil {
		s.oneTime = token.NewOneTimeManager(repos.Tokens,
			token.WithOneTimeExpiry(config.GetOneTimeTokenExpiry()),
			token.WithOneTimeLength(config.GetOneTimeTokenLength()),
			token.WithOneTimeNowFunc(s.nowFunc),
		)
	}
	s.views = newViewTracker(viewCooldown, s.nowFunc)

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

// CleanupRevokedTokens drops revoked refresh tokens that have expired anyway.
func (s *Server) CleanupRevokedTokens() int {
	return s.tokens.CleanupRevokedTokens()
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	log.Info().Msgf("[%-19s] %s", colouredMethod(method), path)
}

func colouredMethod(method string) string {
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		return color + paddedMethod + ResetColor
	}
	return Gray + paddedMethod + ResetColor
}
