package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/propertyai/agent-platform/internal/api/metrics"
	"github.com/propertyai/agent-platform/internal/core/domain"
	"github.com/propertyai/agent-platform/internal/core/ports"
)

const maxLeadPageSize = 100

// LeadService implements lead capture and pipeline management.
type LeadService struct {
	repo   ports.LeadRepository
	logger zerolog.Logger
}

func NewLeadService(repo ports.LeadRepository, logger zerolog.Logger) *LeadService {
	return &LeadService{repo: repo, logger: logger}
}

func (s *LeadService) Capture(ctx context.Context, in ports.CaptureLeadInput) (*domain.Lead, error) {
	now := time.Now().UTC()
	lead := &domain.Lead{
		ID:        uuid.NewString(),
		AgentID:   in.AgentID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Source:    in.Source,
		Status:    domain.LeadNew,
		Message:   in.Message,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, lead); err != nil {
		s.logger.Error().Err(err).Str("email", in.Email).Msg("failed to capture lead")
		return nil, err
	}

	metrics.LeadsCapturedTotal.WithLabelValues(sourceLabel(in.Source)).Inc()
	s.logger.Info().Str("lead_id", lead.ID).Str("agent_id", in.AgentID).Msg("lead captured")
	return lead, nil
}

func (s *LeadService) List(ctx context.Context, filter ports.ListLeadsFilter) (*ports.ListLeadsResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > maxLeadPageSize {
		filter.Limit = maxLeadPageSize
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListLeadsResult{
		Items: items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *LeadService) UpdateStatus(ctx context.Context, id string, status domain.LeadStatus) (*domain.Lead, error) {
	lead, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !lead.Status.CanTransitionTo(status) {
		return nil, domain.ErrInvalidLeadTransition
	}

	lead.Status = status
	lead.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func sourceLabel(source string) string {
	if source == "" {
		return "direct"
	}
	return source
}
