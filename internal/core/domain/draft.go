package domain

import (
	"errors"
	"time"
)

// DraftStatus represents the review lifecycle of an AI-generated post.
type DraftStatus string

const (
	DraftGenerated DraftStatus = "generated"
	DraftEdited    DraftStatus = "edited"
	DraftReady     DraftStatus = "ready"
	DraftPublished DraftStatus = "published"
)

// draftTransitions defines the allowed status transitions. Published is
// terminal: published drafts are immutable.
var draftTransitions = map[DraftStatus][]DraftStatus{
	DraftGenerated: {DraftEdited, DraftReady},
	DraftEdited:    {DraftEdited, DraftReady},
	DraftReady:     {DraftEdited, DraftPublished},
}

var ErrDraftNotFound = errors.New("draft not found")
var ErrDraftImmutable = errors.New("published draft cannot be modified")
var ErrDraftNotReady = errors.New("draft is not ready for publishing")
var ErrInvalidTransition = errors.New("invalid draft status transition")

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s DraftStatus) CanTransitionTo(next DraftStatus) bool {
	for _, allowed := range draftTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Draft is an AI-generated social media post for one property in one
// language, awaiting review and approval. At most one unpublished draft
// exists per (property, language) pair; regeneration returns the existing
// draft instead of creating a duplicate.
type Draft struct {
	ID         string      `json:"id" bson:"_id,omitempty"`
	PropertyID string      `json:"property_id" bson:"property_id"`
	AgentID    string      `json:"agent_id" bson:"agent_id"`
	Title      string      `json:"title" bson:"title"`
	Body       string      `json:"body" bson:"body"`
	Hashtags   []string    `json:"hashtags" bson:"hashtags"`
	Channels   []string    `json:"channels" bson:"channels"`
	Language   string      `json:"language" bson:"language"`
	Tone       string      `json:"tone,omitempty" bson:"tone,omitempty"`
	Status     DraftStatus `json:"status" bson:"status"`
	CreatedAt  time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at" bson:"updated_at"`
}
