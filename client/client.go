package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jrsteele09/go-blog-client/apiclient"
	"github.com/jrsteele09/go-blog-client/auth"
	"github.com/jrsteele09/go-blog-client/blogs"
	"github.com/jrsteele09/go-blog-client/gateway"
	"github.com/jrsteele09/go-blog-client/internal/config"
	"github.com/jrsteele09/go-blog-client/localstore"
	"github.com/jrsteele09/go-blog-client/sessions"
)

// Client is the assembled blog API client: one session shared by the auth
// service and every authenticated call.
type Client struct {
	store   localstore.Store
	session *sessions.Manager
	auth    *auth.Service
	blogs   *blogs.Service
}

type options struct {
	store      localstore.Store
	httpClient *http.Client
	baseURL    string
}

type Option func(*options)

// WithStore replaces the token file named by config, e.g. with localstore.NewMemoryStore().
func WithStore(store localstore.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithHTTPClient sets the client whose transport and timeout every call uses.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

func New(cfg config.ClientConfig, opts ...Option) (*Client, error) {
	o := options{baseURL: cfg.GetAPIBaseURL()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.store == nil {
		o.store = localstore.NewFileStore(cfg.GetTokenFile())
	}
	if o.httpClient == nil {
		o.httpClient = &http.Client{Timeout: cfg.GetHTTPTimeout()}
	}
	base := o.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	session := sessions.NewManager(o.store)
	public := apiclient.New(o.baseURL, o.httpClient)

	// The gateway refreshes through the auth service, which is built after it.
	var service *auth.Service
	gw := gateway.New(session, gateway.RefreshFunc(func(ctx context.Context) (string, error) {
		return service.Refresh(ctx)
	}), gateway.WithBase(base))
	authed := apiclient.New(o.baseURL, gw.Client(o.httpClient))

	service, err := auth.NewService(session, public, auth.WithAuthenticatedClient(authed))
	if err != nil {
		return nil, fmt.Errorf("[client.New] %w", err)
	}

	return &Client{
		store:   o.store,
		session: session,
		auth:    service,
		blogs:   blogs.NewService(authed),
	}, nil
}

// Start runs the startup session check and waits for it to resolve.
func (c *Client) Start(ctx context.Context) error {
	c.auth.Start(ctx)
	return c.auth.WaitReady(ctx)
}

func (c *Client) Auth() *auth.Service {
	return c.auth
}

func (c *Client) Blogs() *blogs.Service {
	return c.blogs
}

func (c *Client) Session() *sessions.Manager {
	return c.session
}

func (c *Client) Store() localstore.Store {
	return c.store
}
