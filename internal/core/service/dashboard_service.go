package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/propertyai/agent-platform/internal/core/ports"
)

// summaryTTL matches the dashboard's 30-second auto-refresh interval, so
// racing manual and automatic refreshes hit the cache instead of the
// repositories.
const summaryTTL = 30 * time.Second

// DashboardService aggregates per-agent metrics for the dashboard view.
type DashboardService struct {
	leads      ports.LeadRepository
	properties ports.PropertyRepository
	drafts     ports.DraftStatsRepository
	users      ports.UserRepository
	cache      ports.SummaryCache
	logger     zerolog.Logger
}

func NewDashboardService(
	leads ports.LeadRepository,
	properties ports.PropertyRepository,
	drafts ports.DraftStatsRepository,
	users ports.UserRepository,
	cache ports.SummaryCache,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		leads:      leads,
		properties: properties,
		drafts:     drafts,
		users:      users,
		cache:      cache,
		logger:     logger,
	}
}

func (s *DashboardService) Summary(ctx context.Context, agentID string) (*ports.DashboardSummary, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, agentID); err == nil && cached != nil {
			return cached, nil
		}
	}

	byStatus, err := s.leads.CountByStatus(ctx, agentID)
	if err != nil {
		return nil, err
	}

	var totalLeads int64
	statuses := make(map[string]int64, len(byStatus))
	for status, n := range byStatus {
		statuses[string(status)] = n
		totalLeads += n
	}

	totalProperties, err := s.properties.Count(ctx, agentID)
	if err != nil {
		return nil, err
	}

	generated, published, err := s.drafts.CountByAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, agentID)
	if err != nil {
		return nil, err
	}

	summary := &ports.DashboardSummary{
		TotalLeads:          totalLeads,
		LeadsByStatus:       statuses,
		TotalProperties:     totalProperties,
		DraftsGenerated:     generated,
		DraftsPublished:     published,
		OnboardingCompleted: user.OnboardingCompleted,
		GeneratedAt:         time.Now().UTC(),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, agentID, summary, summaryTTL); err != nil {
			s.logger.Warn().Err(err).Str("agent_id", agentID).Msg("failed to cache dashboard summary")
		}
	}

	return summary, nil
}
