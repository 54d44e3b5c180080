package ports

import (
	"context"
	"time"
)

// DashboardSummary aggregates the metrics shown on the agent dashboard.
type DashboardSummary struct {
	TotalLeads          int64            `json:"total_leads"`
	LeadsByStatus       map[string]int64 `json:"leads_by_status"`
	TotalProperties     int64            `json:"total_properties"`
	DraftsGenerated     int64            `json:"drafts_generated"`
	DraftsPublished     int64            `json:"drafts_published"`
	OnboardingCompleted bool             `json:"onboarding_completed"`
	GeneratedAt         time.Time        `json:"generated_at"`
}

// SummaryCache caches computed summaries for the dashboard refresh interval,
// so racing manual and automatic refreshes do not hammer the repositories.
type SummaryCache interface {
	Get(ctx context.Context, agentID string) (*DashboardSummary, error)
	Set(ctx context.Context, agentID string, s *DashboardSummary, ttl time.Duration) error
}

// DashboardService computes per-agent dashboard summaries.
type DashboardService interface {
	Summary(ctx context.Context, agentID string) (*DashboardSummary, error)
}

// DraftStatsRepository exposes the aggregate draft counts the dashboard
// needs, implemented by the draft repository.
type DraftStatsRepository interface {
	CountByAgent(ctx context.Context, agentID string) (generated, published int64, err error)
}
