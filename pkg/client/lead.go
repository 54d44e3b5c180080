package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// CaptureLead submits a prospect through the public capture endpoint. No
// authentication required: capture forms are embedded on listing pages.
func (c *Client) CaptureLead(ctx context.Context, req CaptureLeadRequest) (*Lead, error) {
	var lead Lead
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/leads",
		jsonBody: req,
		out:      &lead,
	})
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// ListLeadsOptions filters and paginates the lead list.
type ListLeadsOptions struct {
	Status string
	Page   int
	Limit  int
}

// ListLeads returns one page of the authenticated agent's leads.
func (c *Client) ListLeads(ctx context.Context, opts ListLeadsOptions) (*LeadPage, error) {
	query := url.Values{}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}

	var page LeadPage
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/leads",
		query:  query,
		out:    &page,
		authed: true,
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// UpdateLeadStatus moves a lead along the qualification pipeline.
func (c *Client) UpdateLeadStatus(ctx context.Context, leadID, status string) (*Lead, error) {
	var lead Lead
	err := c.do(ctx, call{
		method:   http.MethodPatch,
		path:     "/leads/" + leadID + "/status",
		jsonBody: map[string]string{"status": status},
		out:      &lead,
		authed:   true,
	})
	if err != nil {
		return nil, err
	}
	return &lead, nil
}
