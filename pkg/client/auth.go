package client

import (
	"context"
	"net/http"
	"net/url"
)

// Login authenticates with form-encoded credentials (the username field
// carries the email) and returns the token pair. The token is not installed
// on the client; Session does that.
func (c *Client) Login(ctx context.Context, email, password string) (*Tokens, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var tokens Tokens
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/auth/login",
		formBody: form,
		out:      &tokens,
	})
	if err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Register creates a new agent account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var user User
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/auth/register",
		jsonBody: req,
		out:      &user,
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Refresh exchanges a refresh token for a new pair. The presented token is
// revoked server-side.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*Tokens, error) {
	var tokens Tokens
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/auth/refresh",
		jsonBody: map[string]string{"refresh_token": refreshToken},
		out:      &tokens,
	})
	if err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Me returns the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/auth/me",
		out:    &user,
		authed: true,
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
