package gateway

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
)

// RequestIDHeader correlates a call with its retry in logs.
const RequestIDHeader = "X-Request-ID"

// TokenProvider is the read side of the session. Token supplies the bearer for
// the first attempt and fails when no session is live.
type TokenProvider interface {
	oauth2.TokenSource
	AccessToken() string
	RefreshToken() string
}

// Refresher obtains a new access token. On failure it has already cleared the
// session, so the gateway only reports the original response.
type Refresher interface {
	Refresh(ctx context.Context) (string, error)
}

type RefreshFunc func(ctx context.Context) (string, error)

func (f RefreshFunc) Refresh(ctx context.Context) (string, error) {
	return f(ctx)
}

// Transport attaches the session's bearer token to every call and recovers from
// a single 401 by refreshing and re-issuing the call once.
type Transport struct {
	base      http.RoundTripper
	tokens    TokenProvider
	refresher Refresher
	refreshes singleflight.Group
}

var _ http.RoundTripper = (*Transport)(nil)

type Option func(*Transport)

// WithBase sets the transport that performs the network call. Defaults to http.DefaultTransport.
func WithBase(base http.RoundTripper) Option {
	return func(t *Transport) {
		t.base = base
	}
}

func New(tokens TokenProvider, refresher Refresher, options ...Option) *Transport {
	t := &Transport{
		base:      http.DefaultTransport,
		tokens:    tokens,
		refresher: refresher,
	}
	for _, opt := range options {
		opt(t)
	}
	return t
}

// Client returns an http.Client that sends every call through the gateway.
func (t *Transport) Client(base *http.Client) *http.Client {
	c := &http.Client{Transport: t}
	if base != nil {
		c.Timeout = base.Timeout
		c.Jar = base.Jar
		c.CheckRedirect = base.CheckRedirect
	}
	return c
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	if req.Header.Get(RequestIDHeader) == "" {
		req = req.Clone(ctx)
		req.Header.Set(RequestIDHeader, uuid.NewString())
	}

	// Calls that carry their own credentials are not the session's to manage.
	if req.Header.Get("Authorization") != "" {
		return t.base.RoundTrip(req)
	}

	pending, err := capture(req)
	if err != nil {
		return nil, err
	}

	// With no live session Token fails and the call goes out without credentials.
	tok, _ := t.tokens.Token()
	var sent string
	if tok != nil {
		sent = tok.AccessToken
	}
	resp, err := t.base.RoundTrip(pending.build(ctx, tok))
	if err != nil {
		return nil, err
	}

	state := RetryStateFrom(ctx)
	if resp.StatusCode != http.StatusUnauthorized || state == RetriedOnce || t.tokens.RefreshToken() == "" {
		return resp, nil
	}

	requestID := req.Header.Get(RequestIDHeader)
	original := bufferResponse(resp)

	next, err := t.nextAccessToken(ctx, sent)
	if err != nil && ctx.Err() != nil {
		original.Body.Close()
		return nil, ctx.Err()
	}
	if err != nil {
		log.Warn().Err(err).Str("request_id", requestID).Str("url", req.URL.Redacted()).Msg("token refresh failed")
		return original, nil
	}

	log.Debug().Str("request_id", requestID).Str("url", req.URL.Redacted()).Msg("retrying with refreshed token")
	retryCtx := WithRetryState(ctx, RetriedOnce)
	return t.base.RoundTrip(pending.build(retryCtx, &oauth2.Token{AccessToken: next, TokenType: "Bearer"}))
}

// nextAccessToken returns a token to retry with. When another call has already
// refreshed since sent was read, its token is reused instead of refreshing again.
// Concurrent callers share one in-flight refresh.
func (t *Transport) nextAccessToken(ctx context.Context, sent string) (string, error) {
	if current := t.tokens.AccessToken(); current != "" && current != sent {
		return current, nil
	}

	log.Debug().Msg("access token rejected, refreshing")
	ch := t.refreshes.DoChan("refresh", func() (any, error) {
		// Detached so one caller giving up does not fail the refresh for the rest.
		return t.refresher.Refresh(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}
