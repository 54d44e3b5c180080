package client

import (
	"context"
	"net/http"
)

// GenerateDrafts requests AI drafts for every language that has none yet.
// Languages already drafted come back flagged Existing.
func (c *Client) GenerateDrafts(ctx context.Context, req GenerateRequest) ([]GeneratedDraft, error) {
	var results []GeneratedDraft
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/social/generate",
		jsonBody: req,
		out:      &results,
		authed:   true,
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// ListDrafts returns a property's unpublished drafts.
func (c *Client) ListDrafts(ctx context.Context, propertyID string) ([]*Draft, error) {
	var drafts []*Draft
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/social/drafts/" + propertyID,
		out:    &drafts,
		authed: true,
	})
	if err != nil {
		return nil, err
	}
	return drafts, nil
}

// UpdateDraft applies reviewer edits to a draft.
func (c *Client) UpdateDraft(ctx context.Context, draftID string, patch DraftPatch) (*Draft, error) {
	var draft Draft
	err := c.do(ctx, call{
		method:   http.MethodPatch,
		path:     "/social/drafts/" + draftID,
		jsonBody: patch,
		out:      &draft,
		authed:   true,
	})
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

// MarkDraftReady approves a draft for publishing.
func (c *Client) MarkDraftReady(ctx context.Context, draftID string) (*Draft, error) {
	var draft Draft
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/social/drafts/" + draftID + "/ready",
		out:    &draft,
		authed: true,
	})
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

// PublishDrafts publishes a batch of ready drafts. Every draft must be ready
// or the whole batch is rejected.
func (c *Client) PublishDrafts(ctx context.Context, draftIDs []string) (*PublishResult, error) {
	var result PublishResult
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/social/publish",
		jsonBody: map[string][]string{"draft_ids": draftIDs},
		out:      &result,
		authed:   true,
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
