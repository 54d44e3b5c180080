package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/propertyai/agent-platform/internal/core/domain"
	"github.com/propertyai/agent-platform/internal/core/ports"
)

type stubDraftStats struct {
	generated, published int64
}

func (s *stubDraftStats) CountByAgent(_ context.Context, _ string) (int64, int64, error) {
	return s.generated, s.published, nil
}

type memorySummaryCache struct {
	entries map[string]*ports.DashboardSummary
	sets    int
}

func newMemorySummaryCache() *memorySummaryCache {
	return &memorySummaryCache{entries: make(map[string]*ports.DashboardSummary)}
}

func (c *memorySummaryCache) Get(_ context.Context, agentID string) (*ports.DashboardSummary, error) {
	return c.entries[agentID], nil
}

func (c *memorySummaryCache) Set(_ context.Context, agentID string, s *ports.DashboardSummary, _ time.Duration) error {
	c.entries[agentID] = s
	c.sets++
	return nil
}

func TestDashboardService_Summary_Aggregates(t *testing.T) {
	users := newStubUserRepo()
	agent, _ := users.Create(context.Background(), &domain.User{Email: "a@example.com", OnboardingCompleted: true})

	leads := newStubLeadRepo()
	_ = leads.Create(context.Background(), &domain.Lead{ID: "l1", AgentID: agent.ID, Status: domain.LeadNew})
	_ = leads.Create(context.Background(), &domain.Lead{ID: "l2", AgentID: agent.ID, Status: domain.LeadNew})
	_ = leads.Create(context.Background(), &domain.Lead{ID: "l3", AgentID: agent.ID, Status: domain.LeadQualified})

	properties := newStubPropertyRepo()
	_ = properties.Create(context.Background(), &domain.Property{ID: "p1", AgentID: agent.ID})

	cache := newMemorySummaryCache()
	svc := NewDashboardService(leads, properties, &stubDraftStats{generated: 7, published: 3}, users, cache, zerolog.Nop())

	summary, err := svc.Summary(context.Background(), agent.ID)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if summary.TotalLeads != 3 {
		t.Fatalf("expected 3 leads, got %d", summary.TotalLeads)
	}
	if summary.LeadsByStatus["new"] != 2 || summary.LeadsByStatus["qualified"] != 1 {
		t.Fatalf("unexpected status counts: %+v", summary.LeadsByStatus)
	}
	if summary.TotalProperties != 1 {
		t.Fatalf("expected 1 property, got %d", summary.TotalProperties)
	}
	if summary.DraftsGenerated != 7 || summary.DraftsPublished != 3 {
		t.Fatalf("unexpected draft counts: %+v", summary)
	}
	if !summary.OnboardingCompleted {
		t.Fatalf("expected onboarding completed")
	}
	if cache.sets != 1 {
		t.Fatalf("expected summary to be cached")
	}
}

func TestDashboardService_Summary_ServedFromCache(t *testing.T) {
	users := newStubUserRepo()
	agent, _ := users.Create(context.Background(), &domain.User{Email: "b@example.com"})

	cache := newMemorySummaryCache()
	cache.entries[agent.ID] = &ports.DashboardSummary{TotalLeads: 45}

	svc := NewDashboardService(newStubLeadRepo(), newStubPropertyRepo(), &stubDraftStats{}, users, cache, zerolog.Nop())

	summary, err := svc.Summary(context.Background(), agent.ID)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if summary.TotalLeads != 45 {
		t.Fatalf("expected cached summary, got %+v", summary)
	}
	if cache.sets != 0 {
		t.Fatalf("cache should not be rewritten on hit")
	}
}
