package client

import (
	"context"
	"net/http"
)

// CreateProperty creates a new listing for the authenticated agent.
func (c *Client) CreateProperty(ctx context.Context, req CreatePropertyRequest) (*Property, error) {
	var property Property
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/properties",
		jsonBody: req,
		out:      &property,
		authed:   true,
	})
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// ListProperties returns the authenticated agent's listings.
func (c *Client) ListProperties(ctx context.Context) ([]*Property, error) {
	var properties []*Property
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/properties",
		out:    &properties,
		authed: true,
	})
	if err != nil {
		return nil, err
	}
	return properties, nil
}

// GetProperty returns one listing by ID.
func (c *Client) GetProperty(ctx context.Context, id string) (*Property, error) {
	var property Property
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/properties/" + id,
		out:    &property,
		authed: true,
	})
	if err != nil {
		return nil, err
	}
	return &property, nil
}
