package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/propertyai/agent-platform/internal/api/metrics"
	"github.com/propertyai/agent-platform/internal/core/domain"
	"github.com/propertyai/agent-platform/internal/core/ports"
)

// PublishingService implements the social publishing workflow: generation,
// review edits, ready-marking and batch publish.
type PublishingService struct {
	drafts     ports.DraftRepository
	properties ports.PropertyRepository
	generator  ports.ContentGenerator
	logger     zerolog.Logger
}

func NewPublishingService(drafts ports.DraftRepository, properties ports.PropertyRepository, generator ports.ContentGenerator, logger zerolog.Logger) *PublishingService {
	return &PublishingService{
		drafts:     drafts,
		properties: properties,
		generator:  generator,
		logger:     logger,
	}
}

// Generate issues one generation request per language that has no
// unpublished draft yet. Requests are sequential, one language at a time;
// languages already drafted are returned as-is with Existing set, so
// regeneration never overwrites review work.
func (s *PublishingService) Generate(ctx context.Context, in ports.GenerateInput) ([]ports.GeneratedDraft, error) {
	property, err := s.properties.FindByID(ctx, in.PropertyID)
	if err != nil {
		return nil, err
	}

	results := make([]ports.GeneratedDraft, 0, len(in.Languages))
	for _, lang := range in.Languages {
		existing, err := s.drafts.FindUnpublished(ctx, in.PropertyID, lang)
		if err == nil {
			s.logger.Debug().
				Str("property_id", in.PropertyID).
				Str("language", lang).
				Msg("using existing draft")
			results = append(results, ports.GeneratedDraft{Draft: existing, Existing: true})
			continue
		}
		if err != domain.ErrDraftNotFound {
			return nil, err
		}

		content, err := s.generator.GeneratePost(ctx, ports.PostRequest{
			Property: property,
			Language: lang,
			Channels: in.Channels,
			Tone:     in.Tone,
			Length:   in.Length,
		})
		if err != nil {
			return nil, fmt.Errorf("generate %s: %w", lang, err)
		}

		now := time.Now().UTC()
		draft := &domain.Draft{
			ID:         uuid.NewString(),
			PropertyID: in.PropertyID,
			AgentID:    in.AgentID,
			Title:      content.Title,
			Body:       content.Body,
			Hashtags:   content.Hashtags,
			Channels:   in.Channels,
			Language:   lang,
			Tone:       in.Tone,
			Status:     domain.DraftGenerated,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := s.drafts.Create(ctx, draft); err != nil {
			return nil, err
		}

		metrics.DraftsGeneratedTotal.WithLabelValues(lang).Inc()
		results = append(results, ports.GeneratedDraft{Draft: draft})
	}

	s.logger.Info().
		Str("property_id", in.PropertyID).
		Int("languages", len(in.Languages)).
		Msg("draft generation finished")

	return results, nil
}

func (s *PublishingService) Drafts(ctx context.Context, propertyID string) ([]*domain.Draft, error) {
	return s.drafts.ListUnpublished(ctx, propertyID)
}

// UpdateDraft applies reviewer edits and moves the draft to edited status.
// Published drafts are immutable.
func (s *PublishingService) UpdateDraft(ctx context.Context, id string, patch ports.DraftPatch) (*domain.Draft, error) {
	draft, err := s.drafts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.Status == domain.DraftPublished {
		return nil, domain.ErrDraftImmutable
	}
	if !draft.Status.CanTransitionTo(domain.DraftEdited) {
		return nil, domain.ErrInvalidTransition
	}

	if patch.Title != nil {
		draft.Title = *patch.Title
	}
	if patch.Body != nil {
		draft.Body = *patch.Body
	}
	if patch.Hashtags != nil {
		draft.Hashtags = patch.Hashtags
	}
	draft.Status = domain.DraftEdited
	draft.UpdatedAt = time.Now().UTC()

	if err := s.drafts.Update(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *PublishingService) MarkReady(ctx context.Context, id string) (*domain.Draft, error) {
	draft, err := s.drafts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !draft.Status.CanTransitionTo(domain.DraftReady) {
		if draft.Status == domain.DraftPublished {
			return nil, domain.ErrDraftImmutable
		}
		return nil, domain.ErrInvalidTransition
	}

	draft.Status = domain.DraftReady
	draft.UpdatedAt = time.Now().UTC()

	if err := s.drafts.Update(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// PublishBatch publishes all listed drafts in one pass. The readiness check
// runs first across the whole batch: if any draft is not ready, nothing is
// published.
func (s *PublishingService) PublishBatch(ctx context.Context, draftIDs []string) ([]*domain.Draft, error) {
	batch := make([]*domain.Draft, 0, len(draftIDs))
	for _, id := range draftIDs {
		draft, err := s.drafts.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if draft.Status != domain.DraftReady {
			return nil, fmt.Errorf("%w: draft %s is %s", domain.ErrDraftNotReady, id, draft.Status)
		}
		batch = append(batch, draft)
	}

	now := time.Now().UTC()
	for _, draft := range batch {
		draft.Status = domain.DraftPublished
		draft.UpdatedAt = now
		if err := s.drafts.Update(ctx, draft); err != nil {
			return nil, err
		}
		metrics.DraftsPublishedTotal.WithLabelValues(draft.Language).Inc()
	}

	s.logger.Info().Int("count", len(batch)).Msg("drafts published")
	return batch, nil
}
