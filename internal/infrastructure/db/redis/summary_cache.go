package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/propertyai/agent-platform/internal/core/ports"
)

const summaryKeyPrefix = "dashboard:summary:"

// SummaryCache stores computed dashboard summaries in Redis for the refresh
// interval, absorbing racing manual and automatic refreshes.
type SummaryCache struct {
	client *redis.Client
}

func NewSummaryCache(client *redis.Client) *SummaryCache {
	return &SummaryCache{client: client}
}

// Get returns the cached summary for an agent, or (nil, nil) on a miss.
func (c *SummaryCache) Get(ctx context.Context, agentID string) (*ports.DashboardSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	raw, err := c.client.Get(ctx, summaryKeyPrefix+agentID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get summary: %w", err)
	}

	var summary ports.DashboardSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, fmt.Errorf("decode summary: %w", err)
	}
	return &summary, nil
}

func (c *SummaryCache) Set(ctx context.Context, agentID string, s *ports.DashboardSummary, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}

	if err := c.client.Set(ctx, summaryKeyPrefix+agentID, raw, ttl).Err(); err != nil {
		return fmt.Errorf("set summary: %w", err)
	}
	return nil
}
