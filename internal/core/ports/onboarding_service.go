package ports

import "context"

// StepInput carries one onboarding step submission.
type StepInput struct {
	UserID     string
	StepNumber int
	Data       map[string]string
	Completed  bool
}

// ProgressResult is the onboarding progress view returned to the client.
type ProgressResult struct {
	UserID      string
	CurrentStep int
	Completed   bool
	StepName    string
}

// BrandingRequest carries the metadata sent to the branding suggestion
// generator.
type BrandingRequest struct {
	CompanyName string
	AgentName   string
	Style       string
}

// BrandingSuggestion is one AI-generated brand identity proposal.
type BrandingSuggestion struct {
	Tagline        string
	About          string
	PrimaryColor   string
	SecondaryColor string
	AccentColor    string
}

// OnboardingService drives the 6-step agent setup wizard server-side.
type OnboardingService interface {
	// SaveStep validates the step's required fields, merges the step data
	// into the user profile and advances the stored step monotonically
	// (a replayed earlier step never moves progress backwards).
	SaveStep(ctx context.Context, in StepInput) (*ProgressResult, error)
	Complete(ctx context.Context, userID string) (*ProgressResult, error)
	Progress(ctx context.Context, userID string) (*ProgressResult, error)
	// BrandingSuggestions requires a non-empty company name.
	BrandingSuggestions(ctx context.Context, req BrandingRequest) ([]BrandingSuggestion, error)
}
