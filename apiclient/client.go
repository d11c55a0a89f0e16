package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/jrsteele09/go-blog-client/authmodel"
	"github.com/rs/zerolog/log"
)

// maxErrorBody caps how much of an error response is read when looking for a reason.
const maxErrorBody = 64 << 10

// Client sends JSON requests to the blog API. The underlying http.Client decides
// whether the call is authenticated: the gateway transport for authenticated
// calls, a plain transport for the credential endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// BaseURL returns the API root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type requestOptions struct {
	bearer string
	query  url.Values
}

type RequestOption func(*requestOptions)

// WithBearer sets the Authorization header explicitly, e.g. the refresh token on
// /auth/refresh. A transport that attaches its own header does not override it.
func WithBearer(token string) RequestOption {
	return func(o *requestOptions) {
		o.bearer = token
	}
}

func WithQuery(query url.Values) RequestOption {
	return func(o *requestOptions) {
		o.query = query
	}
}

// Do sends in as the JSON body (when non-nil) and decodes a 2xx response into
// out (when non-nil). Non-2xx responses return *APIError. Transport failures are
// returned wrapped so callers can tell them apart.
func (c *Client) Do(ctx context.Context, method, path string, in, out any, opts ...RequestOption) error {
	options := &requestOptions{}
	for _, opt := range opts {
		opt(options)
	}

	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(options.query) > 0 {
		target += "?" + options.query.Encode()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("[Client.Do] encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("[Client.Do] build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if options.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+options.bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp)
		log.Debug().Str("method", method).Str("path", path).Int("status", apiErr.Status).Str("reason", apiErr.Message).Msg("api call failed")
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("[Client.Do] decode %s %s: %w", method, path, err)
	}
	return nil
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return apiErr
	}
	var body authmodel.ErrorResponse
	if json.Unmarshal(data, &body) == nil {
		apiErr.Message = body.Reason()
	}
	return apiErr
}
