package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/propertyai/agent-platform/internal/core/domain"
	"github.com/propertyai/agent-platform/internal/core/ports"
)

// PropertyService implements listing management.
type PropertyService struct {
	repo   ports.PropertyRepository
	logger zerolog.Logger
}

func NewPropertyService(repo ports.PropertyRepository, logger zerolog.Logger) *PropertyService {
	return &PropertyService{repo: repo, logger: logger}
}

func (s *PropertyService) Create(ctx context.Context, in ports.CreatePropertyInput) (*domain.Property, error) {
	property := &domain.Property{
		ID:        uuid.NewString(),
		AgentID:   in.AgentID,
		Title:     in.Title,
		Location:  in.Location,
		Price:     in.Price,
		Bedrooms:  in.Bedrooms,
		Bathrooms: in.Bathrooms,
		AreaSqft:  in.AreaSqft,
		Features:  in.Features,
		Type:      in.Type,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, property); err != nil {
		s.logger.Error().Err(err).Msg("failed to create property")
		return nil, err
	}

	s.logger.Info().Str("property_id", property.ID).Str("agent_id", in.AgentID).Msg("property created")
	return property, nil
}

func (s *PropertyService) Get(ctx context.Context, id string) (*domain.Property, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PropertyService) ListByAgent(ctx context.Context, agentID string) ([]*domain.Property, error) {
	return s.repo.ListByAgent(ctx, agentID)
}
