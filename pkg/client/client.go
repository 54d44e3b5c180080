// Package client is the Go SDK for the PropertyAI platform API. It wraps
// every endpoint, classifies failures into a typed APIError and transparently
// retries an authenticated request once after a 401 by refreshing the access
// token.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	apiPrefix      = "/api/v1"
	defaultTimeout = 30 * time.Second
)

// TokenRefresher supplies a fresh access token after a 401. Implemented by
// Session; custom implementations can plug in their own token source.
type TokenRefresher interface {
	RefreshAccessToken(ctx context.Context) (string, error)
}

// Client talks to the platform API. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration

	mu          sync.RWMutex
	accessToken string
	refresher   TokenRefresher
}

// Option customises a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the underlying transport. Mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithTimeout overrides the default 30s per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// New builds a Client for the given base URL (scheme://host, no path).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		timeout:    defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetAccessToken installs the bearer token attached to authenticated calls.
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	c.accessToken = token
	c.mu.Unlock()
}

// AccessToken returns the currently installed bearer token.
func (c *Client) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// SetRefresher installs the token refresher consulted after a 401.
func (c *Client) SetRefresher(r TokenRefresher) {
	c.mu.Lock()
	c.refresher = r
	c.mu.Unlock()
}

// call describes one API request. Bodies are kept as values, not readers, so
// the 401 retry can rebuild the request.
type call struct {
	method   string
	path     string
	jsonBody any
	formBody url.Values
	query    url.Values
	out      any
	authed   bool
}

func (c *Client) do(ctx context.Context, cl call) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	status, body, err := c.send(ctx, cl, c.AccessToken())
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && cl.authed {
		original := apiErrorFrom(status, body)

		c.mu.RLock()
		refresher := c.refresher
		c.mu.RUnlock()
		if refresher == nil {
			return original
		}

		// One retry only. A second 401 with a fresh token means the
		// session is genuinely dead.
		token, refreshErr := refresher.RefreshAccessToken(ctx)
		if refreshErr != nil {
			return original
		}
		c.SetAccessToken(token)

		status, body, err = c.send(ctx, cl, token)
		if err != nil {
			return err
		}
	}

	if status < 200 || status > 299 {
		return apiErrorFrom(status, body)
	}

	if cl.out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, cl.out); err != nil {
			return &APIError{Code: CodeUnexpected, Status: status, Message: "failed to decode response: " + err.Error()}
		}
	}
	return nil
}

// send performs one HTTP round trip and returns the status and raw body.
// Transport-level failures come back as an *APIError.
func (c *Client) send(ctx context.Context, cl call, token string) (int, []byte, error) {
	var (
		reader      io.Reader
		contentType string
	)
	switch {
	case cl.formBody != nil:
		reader = strings.NewReader(cl.formBody.Encode())
		contentType = "application/x-www-form-urlencoded"
	case cl.jsonBody != nil:
		raw, err := json.Marshal(cl.jsonBody)
		if err != nil {
			return 0, nil, &APIError{Code: CodeUnexpected, Message: "failed to encode request: " + err.Error()}
		}
		reader = bytes.NewReader(raw)
		contentType = "application/json"
	}

	endpoint := c.baseURL + apiPrefix + cl.path
	if len(cl.query) > 0 {
		endpoint += "?" + cl.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, endpoint, reader)
	if err != nil {
		return 0, nil, &APIError{Code: CodeUnexpected, Message: "failed to build request: " + err.Error()}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if cl.authed && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, nil, &APIError{Code: CodeTimeout, Message: "request timed out"}
		}
		return 0, nil, &APIError{Code: CodeNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &APIError{Code: CodeNetwork, Message: "failed to read response: " + err.Error()}
	}
	return resp.StatusCode, body, nil
}

// apiErrorFrom turns a non-2xx response into a typed APIError, extracting the
// server's message from whichever envelope key it used.
func apiErrorFrom(status int, body []byte) *APIError {
	apiErr := &APIError{
		Code:   codeForStatus(status),
		Status: status,
	}

	var data any
	if len(body) > 0 && json.Unmarshal(body, &data) == nil {
		apiErr.Data = data
		apiErr.Message = extractMessage(data)
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}
