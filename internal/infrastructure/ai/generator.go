// Package ai talks to the external content-generation service and provides a
// deterministic template fallback for environments without one.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/propertyai/agent-platform/internal/core/ports"
)

const defaultTimeout = 30 * time.Second

// Config carries the settings for the external generation service. An empty
// BaseURL selects the template generator instead.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// New returns the HTTP-backed generator when a base URL is configured, and
// the template generator otherwise.
func New(cfg Config, logger zerolog.Logger) ports.ContentGenerator {
	if cfg.BaseURL == "" {
		logger.Info().Msg("no AI service configured, using template generator")
		return NewTemplateGenerator()
	}
	return NewClient(cfg, logger)
}

// Client calls the external AI service over HTTP with bearer authentication.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewClient(cfg Config, logger zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type generateRequest struct {
	Title     string   `json:"title"`
	Location  string   `json:"location"`
	Price     float64  `json:"price"`
	Bedrooms  int      `json:"bedrooms"`
	Bathrooms int      `json:"bathrooms"`
	AreaSqft  float64  `json:"area_sqft"`
	Features  []string `json:"features"`
	Language  string   `json:"language"`
	Channels  []string `json:"channels"`
	Tone      string   `json:"tone,omitempty"`
	Length    string   `json:"length,omitempty"`
}

type generateResponse struct {
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Hashtags []string `json:"hashtags"`
}

func (c *Client) GeneratePost(ctx context.Context, req ports.PostRequest) (*ports.PostContent, error) {
	payload := generateRequest{
		Title:     req.Property.Title,
		Location:  req.Property.Location,
		Price:     req.Property.Price,
		Bedrooms:  req.Property.Bedrooms,
		Bathrooms: req.Property.Bathrooms,
		AreaSqft:  req.Property.AreaSqft,
		Features:  req.Property.Features,
		Language:  req.Language,
		Channels:  req.Channels,
		Tone:      req.Tone,
		Length:    req.Length,
	}

	var resp generateResponse
	if err := c.post(ctx, "/v1/generate", payload, &resp); err != nil {
		return nil, err
	}
	return &ports.PostContent{
		Title:    resp.Title,
		Body:     resp.Body,
		Hashtags: resp.Hashtags,
	}, nil
}

type brandingRequest struct {
	CompanyName string `json:"company_name"`
	AgentName   string `json:"agent_name,omitempty"`
	Style       string `json:"style,omitempty"`
}

type brandingResponse struct {
	Suggestions []struct {
		Tagline        string `json:"tagline"`
		About          string `json:"about"`
		PrimaryColor   string `json:"primary_color"`
		SecondaryColor string `json:"secondary_color"`
		AccentColor    string `json:"accent_color"`
	} `json:"suggestions"`
}

func (c *Client) BrandingSuggestions(ctx context.Context, req ports.BrandingRequest) ([]ports.BrandingSuggestion, error) {
	payload := brandingRequest{
		CompanyName: req.CompanyName,
		AgentName:   req.AgentName,
		Style:       req.Style,
	}

	var resp brandingResponse
	if err := c.post(ctx, "/v1/branding", payload, &resp); err != nil {
		return nil, err
	}

	suggestions := make([]ports.BrandingSuggestion, 0, len(resp.Suggestions))
	for _, s := range resp.Suggestions {
		suggestions = append(suggestions, ports.BrandingSuggestion{
			Tagline:        s.Tagline,
			About:          s.About,
			PrimaryColor:   s.PrimaryColor,
			SecondaryColor: s.SecondaryColor,
			AccentColor:    s.AccentColor,
		})
	}
	return suggestions, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ai service request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error().Int("status", resp.StatusCode).Str("path", path).Msg("ai service error")
		return fmt.Errorf("ai service %s: status %d: %s", path, resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
