package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/propertyai/agent-platform/internal/core/domain"
	"github.com/propertyai/agent-platform/internal/core/ports"
)

type stubLeadRepo struct {
	leads map[string]*domain.Lead
}

func newStubLeadRepo() *stubLeadRepo {
	return &stubLeadRepo{leads: make(map[string]*domain.Lead)}
}

func (r *stubLeadRepo) Create(_ context.Context, l *domain.Lead) error {
	copy := *l
	r.leads[l.ID] = &copy
	return nil
}

func (r *stubLeadRepo) FindByID(_ context.Context, id string) (*domain.Lead, error) {
	if l, ok := r.leads[id]; ok {
		copy := *l
		return &copy, nil
	}
	return nil, domain.ErrLeadNotFound
}

func (r *stubLeadRepo) List(_ context.Context, filter ports.ListLeadsFilter) ([]*domain.Lead, int64, error) {
	var out []*domain.Lead
	for _, l := range r.leads {
		if filter.AgentID != "" && l.AgentID != filter.AgentID {
			continue
		}
		if filter.Status != "" && string(l.Status) != filter.Status {
			continue
		}
		copy := *l
		out = append(out, &copy)
	}
	return out, int64(len(out)), nil
}

func (r *stubLeadRepo) Update(_ context.Context, l *domain.Lead) error {
	if _, ok := r.leads[l.ID]; !ok {
		return domain.ErrLeadNotFound
	}
	copy := *l
	r.leads[l.ID] = &copy
	return nil
}

func (r *stubLeadRepo) CountByStatus(_ context.Context, agentID string) (map[domain.LeadStatus]int64, error) {
	counts := make(map[domain.LeadStatus]int64)
	for _, l := range r.leads {
		if agentID != "" && l.AgentID != agentID {
			continue
		}
		counts[l.Status]++
	}
	return counts, nil
}

func TestLeadService_Capture(t *testing.T) {
	repo := newStubLeadRepo()
	svc := NewLeadService(repo, zerolog.Nop())

	lead, err := svc.Capture(context.Background(), ports.CaptureLeadInput{
		AgentID: "agent_1",
		Name:    "Pat Buyer",
		Email:   "pat@example.com",
		Source:  "website",
	})
	if err != nil {
		t.Fatalf("Capture failed: %v", err)
	}
	if lead.ID == "" {
		t.Fatalf("expected generated lead ID")
	}
	if lead.Status != domain.LeadNew {
		t.Fatalf("expected new status, got %s", lead.Status)
	}
}

func TestLeadService_UpdateStatus_Transitions(t *testing.T) {
	repo := newStubLeadRepo()
	svc := NewLeadService(repo, zerolog.Nop())

	lead, _ := svc.Capture(context.Background(), ports.CaptureLeadInput{AgentID: "agent_1", Name: "Pat", Email: "p@example.com"})

	if _, err := svc.UpdateStatus(context.Background(), lead.ID, domain.LeadQualified); err != domain.ErrInvalidLeadTransition {
		t.Fatalf("expected ErrInvalidLeadTransition for new->qualified, got %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), lead.ID, domain.LeadContacted)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.Status != domain.LeadContacted {
		t.Fatalf("expected contacted, got %s", updated.Status)
	}
}

func TestLeadService_List_CapsLimit(t *testing.T) {
	repo := newStubLeadRepo()
	svc := NewLeadService(repo, zerolog.Nop())

	result, err := svc.List(context.Background(), ports.ListLeadsFilter{AgentID: "agent_1", Limit: 5000})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if result.Limit != 100 {
		t.Fatalf("expected capped limit 100, got %d", result.Limit)
	}
	if result.Page != 1 {
		t.Fatalf("expected default page 1, got %d", result.Page)
	}
}
