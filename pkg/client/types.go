package client

import (
	"encoding/json"
	"time"
)

// User mirrors the server's user payload.
type User struct {
	ID                  string    `json:"id"`
	Email               string    `json:"email"`
	FirstName           string    `json:"first_name"`
	LastName            string    `json:"last_name"`
	Phone               string    `json:"phone,omitempty"`
	Company             string    `json:"company,omitempty"`
	Position            string    `json:"position,omitempty"`
	LicenseNumber       string    `json:"license_number,omitempty"`
	Role                string    `json:"role"`
	OnboardingStep      int       `json:"onboarding_step"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	Branding            Branding  `json:"branding"`
	PhotoURL            string    `json:"photo_url,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// Branding is the agent's brand identity.
type Branding struct {
	Tagline string      `json:"tagline"`
	About   string      `json:"about"`
	Colors  BrandColors `json:"colors"`
}

type BrandColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// Tokens is the credential pair returned by login and refresh.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// UnmarshalJSON normalizes the two token key spellings seen in the wild
// (snake_case and camelCase) into one shape.
func (t *Tokens) UnmarshalJSON(data []byte) error {
	var raw struct {
		AccessToken     string `json:"access_token"`
		AccessTokenAlt  string `json:"accessToken"`
		RefreshToken    string `json:"refresh_token"`
		RefreshTokenAlt string `json:"refreshToken"`
		TokenType       string `json:"token_type"`
		ExpiresIn       int64  `json:"expires_in"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.AccessToken = raw.AccessToken
	if t.AccessToken == "" {
		t.AccessToken = raw.AccessTokenAlt
	}
	t.RefreshToken = raw.RefreshToken
	if t.RefreshToken == "" {
		t.RefreshToken = raw.RefreshTokenAlt
	}
	t.TokenType = raw.TokenType
	t.ExpiresIn = raw.ExpiresIn
	return nil
}

// RegisterRequest carries the account-creation payload.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Company   string `json:"company,omitempty"`
}

// OnboardingProgress is the wizard's server-side position.
type OnboardingProgress struct {
	UserID      string `json:"user_id"`
	CurrentStep int    `json:"current_step"`
	StepName    string `json:"step_name"`
	Completed   bool   `json:"completed"`
}

// BrandingSuggestRequest asks the server for brand identity proposals.
type BrandingSuggestRequest struct {
	CompanyName string `json:"company_name"`
	AgentName   string `json:"agent_name,omitempty"`
	Style       string `json:"style,omitempty"`
}

// BrandingSuggestion is one proposal.
type BrandingSuggestion struct {
	Tagline string      `json:"tagline"`
	About   string      `json:"about"`
	Colors  BrandColors `json:"colors"`
}

// Property mirrors the server's listing payload.
type Property struct {
	ID        string    `json:"id"`
	AgentID   string    `json:"agent_id"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	Price     float64   `json:"price"`
	Bedrooms  int       `json:"bedrooms"`
	Bathrooms int       `json:"bathrooms"`
	AreaSqft  float64   `json:"area_sqft"`
	Features  []string  `json:"features"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePropertyRequest carries the listing-creation payload.
type CreatePropertyRequest struct {
	Title     string   `json:"title"`
	Location  string   `json:"location"`
	Price     float64  `json:"price"`
	Bedrooms  int      `json:"bedrooms"`
	Bathrooms int      `json:"bathrooms"`
	AreaSqft  float64  `json:"area_sqft"`
	Features  []string `json:"features,omitempty"`
	Type      string   `json:"type"`
}

// Draft is an AI-generated social post awaiting review.
type Draft struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"property_id"`
	AgentID    string    `json:"agent_id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Hashtags   []string  `json:"hashtags"`
	Channels   []string  `json:"channels"`
	Language   string    `json:"language"`
	Tone       string    `json:"tone,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// GenerateRequest asks for drafts across languages and channels.
type GenerateRequest struct {
	PropertyID string   `json:"property_id"`
	Languages  []string `json:"languages"`
	Channels   []string `json:"channels"`
	Tone       string   `json:"tone,omitempty"`
	Length     string   `json:"length,omitempty"`
}

// GeneratedDraft pairs a draft with a flag telling whether it pre-existed.
type GeneratedDraft struct {
	Draft    *Draft `json:"draft"`
	Existing bool   `json:"existing"`
}

// DraftPatch carries the reviewer-editable fields. Nil fields are left
// unchanged.
type DraftPatch struct {
	Title    *string  `json:"title,omitempty"`
	Body     *string  `json:"body,omitempty"`
	Hashtags []string `json:"hashtags,omitempty"`
}

// PublishResult reports a successful batch publish.
type PublishResult struct {
	Published []*Draft `json:"published"`
	Count     int      `json:"count"`
}

// Lead is a captured prospect.
type Lead struct {
	ID        string    `json:"id"`
	AgentID   string    `json:"agent_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Source    string    `json:"source,omitempty"`
	Status    string    `json:"status"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CaptureLeadRequest is the public lead-capture payload.
type CaptureLeadRequest struct {
	AgentID string `json:"agent_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Source  string `json:"source,omitempty"`
	Message string `json:"message,omitempty"`
}

// LeadPage is one page of leads plus the total count.
type LeadPage struct {
	Items []*Lead `json:"items"`
	Total int64   `json:"total"`
	Page  int     `json:"page"`
	Limit int     `json:"limit"`
}

// Summary is the dashboard aggregate. Sample is true when the values come
// from the built-in sample data because the request failed.
type Summary struct {
	TotalLeads          int64            `json:"total_leads"`
	LeadsByStatus       map[string]int64 `json:"leads_by_status"`
	TotalProperties     int64            `json:"total_properties"`
	DraftsGenerated     int64            `json:"drafts_generated"`
	DraftsPublished     int64            `json:"drafts_published"`
	OnboardingCompleted bool             `json:"onboarding_completed"`
	GeneratedAt         time.Time        `json:"generated_at"`
	Sample              bool             `json:"-"`
}
