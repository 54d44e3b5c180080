package domain

import (
	"errors"
	"time"
)

// LeadStatus represents the qualification pipeline of a captured lead.
type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadQualified LeadStatus = "qualified"
	LeadClosed    LeadStatus = "closed"
)

var leadTransitions = map[LeadStatus][]LeadStatus{
	LeadNew:       {LeadContacted, LeadClosed},
	LeadContacted: {LeadQualified, LeadClosed},
	LeadQualified: {LeadClosed},
}

var ErrLeadNotFound = errors.New("lead not found")
var ErrInvalidLeadTransition = errors.New("invalid lead status transition")

// CanTransitionTo reports whether a lead may move from the current status to
// next.
func (s LeadStatus) CanTransitionTo(next LeadStatus) bool {
	for _, allowed := range leadTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Lead is a captured prospect assigned to an agent.
type Lead struct {
	ID        string     `json:"id" bson:"_id,omitempty"`
	AgentID   string     `json:"agent_id" bson:"agent_id"`
	Name      string     `json:"name" bson:"name"`
	Email     string     `json:"email" bson:"email"`
	Phone     string     `json:"phone,omitempty" bson:"phone,omitempty"`
	Source    string     `json:"source,omitempty" bson:"source,omitempty"`
	Status    LeadStatus `json:"status" bson:"status"`
	Message   string     `json:"message,omitempty" bson:"message,omitempty"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}
