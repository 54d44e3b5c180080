package ports

import (
	"context"

	"github.com/propertyai/agent-platform/internal/core/domain"
)

// DraftRepository defines persistence operations for AI post drafts.
type DraftRepository interface {
	Create(ctx context.Context, d *domain.Draft) error
	FindByID(ctx context.Context, id string) (*domain.Draft, error)
	// FindUnpublished returns the single unpublished draft for a
	// (property, language) pair, or domain.ErrDraftNotFound.
	FindUnpublished(ctx context.Context, propertyID, language string) (*domain.Draft, error)
	// ListUnpublished returns all unpublished drafts for a property.
	ListUnpublished(ctx context.Context, propertyID string) ([]*domain.Draft, error)
	Update(ctx context.Context, d *domain.Draft) error
}

// GenerateInput carries a content-generation request for one property across
// several languages and channels.
type GenerateInput struct {
	PropertyID string
	AgentID    string
	Languages  []string
	Channels   []string
	Tone       string
	Length     string
}

// GeneratedDraft pairs a draft with a flag telling whether it pre-existed.
// Existing drafts are returned untouched: generation is idempotent per
// language until the draft is published.
type GeneratedDraft struct {
	Draft    *domain.Draft
	Existing bool
}

// DraftPatch carries the reviewer-editable fields. Nil fields are left
// unchanged.
type DraftPatch struct {
	Title    *string
	Body     *string
	Hashtags []string
}

// PublishingService drives the social publishing workflow server-side.
type PublishingService interface {
	// Generate issues one generation request per language that has no
	// unpublished draft yet, sequentially, and persists the results.
	Generate(ctx context.Context, in GenerateInput) ([]GeneratedDraft, error)
	Drafts(ctx context.Context, propertyID string) ([]*domain.Draft, error)
	UpdateDraft(ctx context.Context, id string, patch DraftPatch) (*domain.Draft, error)
	MarkReady(ctx context.Context, id string) (*domain.Draft, error)
	// PublishBatch publishes all listed drafts in one pass. Every draft must
	// be in ready status; otherwise nothing is published and
	// domain.ErrDraftNotReady is returned.
	PublishBatch(ctx context.Context, draftIDs []string) ([]*domain.Draft, error)
}

// PostRequest is the payload sent to the content generator for one language.
type PostRequest struct {
	Property *domain.Property
	Language string
	Channels []string
	Tone     string
	Length   string
}

// PostContent is the generator's answer for one language.
type PostContent struct {
	Title    string
	Body     string
	Hashtags []string
}

// ContentGenerator abstracts the external AI content service.
type ContentGenerator interface {
	GeneratePost(ctx context.Context, req PostRequest) (*PostContent, error)
	BrandingSuggestions(ctx context.Context, req BrandingRequest) ([]BrandingSuggestion, error)
}
