package ports

import (
	"context"

	"github.com/propertyai/agent-platform/internal/core/domain"
)

// PropertyRepository defines persistence operations for listings.
type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	ListByAgent(ctx context.Context, agentID string) ([]*domain.Property, error)
	Count(ctx context.Context, agentID string) (int64, error)
}

// CreatePropertyInput carries the fields accepted when creating a listing.
type CreatePropertyInput struct {
	AgentID   string
	Title     string
	Location  string
	Price     float64
	Bedrooms  int
	Bathrooms int
	AreaSqft  float64
	Features  []string
	Type      string
}

// PropertyService implements listing management.
type PropertyService interface {
	Create(ctx context.Context, in CreatePropertyInput) (*domain.Property, error)
	Get(ctx context.Context, id string) (*domain.Property, error)
	ListByAgent(ctx context.Context, agentID string) ([]*domain.Property, error)
}
