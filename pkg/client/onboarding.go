package client

import (
	"context"
	"net/http"
)

type saveStepRequest struct {
	StepNumber int               `json:"step_number"`
	Data       map[string]string `json:"data"`
	Completed  bool              `json:"completed"`
}

// SaveOnboardingStep persists one wizard step's form data.
func (c *Client) SaveOnboardingStep(ctx context.Context, userID string, step int, data map[string]string, completed bool) (*OnboardingProgress, error) {
	var progress OnboardingProgress
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/onboarding/" + userID,
		jsonBody: saveStepRequest{StepNumber: step, Data: data, Completed: completed},
		out:      &progress,
		authed:   true,
	})
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// CompleteOnboarding marks the wizard as finished.
func (c *Client) CompleteOnboarding(ctx context.Context, userID string) (*OnboardingProgress, error) {
	var progress OnboardingProgress
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/onboarding/" + userID + "/complete",
		out:    &progress,
		authed: true,
	})
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// OnboardingProgress returns the wizard's server-side position.
func (c *Client) OnboardingProgress(ctx context.Context, userID string) (*OnboardingProgress, error) {
	var progress OnboardingProgress
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/onboarding/" + userID,
		out:    &progress,
		authed: true,
	})
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// BrandingSuggest asks the AI service for brand identity proposals.
func (c *Client) BrandingSuggest(ctx context.Context, req BrandingSuggestRequest) ([]BrandingSuggestion, error) {
	var suggestions []BrandingSuggestion
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/agent/branding-suggest",
		jsonBody: req,
		out:      &suggestions,
		authed:   true,
	})
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}
