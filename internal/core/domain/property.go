package domain

import (
	"errors"
	"time"
)

var ErrPropertyNotFound = errors.New("property not found")

// Property is a real-estate listing. The publishing workflow treats it as
// read-only context for content generation.
type Property struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	AgentID   string    `json:"agent_id" bson:"agent_id"`
	Title     string    `json:"title" bson:"title"`
	Location  string    `json:"location" bson:"location"`
	Price     float64   `json:"price" bson:"price"`
	Bedrooms  int       `json:"bedrooms" bson:"bedrooms"`
	Bathrooms int       `json:"bathrooms" bson:"bathrooms"`
	AreaSqft  float64   `json:"area_sqft" bson:"area_sqft"`
	Features  []string  `json:"features" bson:"features"`
	Type      string    `json:"type" bson:"type"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
