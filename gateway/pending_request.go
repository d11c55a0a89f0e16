package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
)

// pendingRequest is everything needed to re-issue a call after a refresh.
type pendingRequest struct {
	original *http.Request
	header   http.Header
	body     []byte
}

// capture buffers the request body so the call can be sent twice. The caller's
// request is left untouched.
func capture(req *http.Request) (*pendingRequest, error) {
	p := &pendingRequest{
		original: req,
		header:   req.Header.Clone(),
	}
	if req.Body == nil || req.Body == http.NoBody {
		return p, nil
	}

	var (
		body io.ReadCloser
		err  error
	)
	if req.GetBody != nil {
		req.Body.Close()
		body, err = req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("[capture] get body: %w", err)
		}
	} else {
		body = req.Body
	}
	defer body.Close()

	p.body, err = io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("[capture] read body: %w", err)
	}
	return p, nil
}

// build returns a fresh request carrying tok as bearer. A nil or empty token
// sends the call without credentials.
func (p *pendingRequest) build(ctx context.Context, tok *oauth2.Token) *http.Request {
	req := p.original.Clone(ctx)
	req.Header = p.header.Clone()
	if p.body != nil {
		req.Body = io.NopCloser(bytes.NewReader(p.body))
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(p.body)), nil
		}
		req.ContentLength = int64(len(p.body))
	}
	if tok != nil && tok.AccessToken != "" {
		tok.SetAuthHeader(req)
	}
	return req
}

// bufferResponse reads resp's body so it can be returned after the body of a
// different call has been consumed.
func bufferResponse(resp *http.Response) *http.Response {
	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		data = nil
	}
	resp.Body = io.NopCloser(bytes.NewReader(data))
	resp.ContentLength = int64(len(data))
	return resp
}
