package ports

import (
	"context"

	"github.com/propertyai/agent-platform/internal/core/domain"
)

// ListLeadsFilter carries the query parameters for listing leads.
type ListLeadsFilter struct {
	AgentID string // empty = no filter (admin); non-empty = scoped to agent
	Status  string // optional: filter by lead status
	Page    int    // 1-based
	Limit   int    // capped at 100 by the service
}

// LeadRepository defines persistence operations for leads.
type LeadRepository interface {
	Create(ctx context.Context, l *domain.Lead) error
	FindByID(ctx context.Context, id string) (*domain.Lead, error)
	List(ctx context.Context, filter ListLeadsFilter) ([]*domain.Lead, int64, error)
	Update(ctx context.Context, l *domain.Lead) error
	CountByStatus(ctx context.Context, agentID string) (map[domain.LeadStatus]int64, error)
}

// CaptureLeadInput is the payload of the public lead-capture endpoint.
type CaptureLeadInput struct {
	AgentID string
	Name    string
	Email   string
	Phone   string
	Source  string
	Message string
}

// ListLeadsResult is one page of leads plus the total count.
type ListLeadsResult struct {
	Items []*domain.Lead
	Total int64
	Page  int
	Limit int
}

// LeadService implements lead capture and pipeline management.
type LeadService interface {
	Capture(ctx context.Context, in CaptureLeadInput) (*domain.Lead, error)
	List(ctx context.Context, filter ListLeadsFilter) (*ListLeadsResult, error)
	UpdateStatus(ctx context.Context, id string, status domain.LeadStatus) (*domain.Lead, error)
}
