// Package events publishes work lifecycle notifications over redis pub/sub.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	ChannelWorkCreated = "works:created"
	ChannelWorkStatus  = "works:status"
)

type WorkEvent struct {
	WorkID   int64  `json:"work_id"`
	AuthorID int64  `json:"author_id"`
	Status   string `json:"status"`
}

type Publisher struct {
	client redis.UniversalClient
}

func NewPublisher(client redis.UniversalClient) *Publisher {
	return &Publisher{client: client}
}

func (p *Publisher) Publish(ctx context.Context, channel string, event WorkEvent) error {
	payload, err := Encode(event)
	if err != nil {
		return err
	}
	if err := p.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", channel, err)
	}
	return nil
}

func Encode(event WorkEvent) (string, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("failed to encode event: %w", err)
	}
	return string(payload), nil
}
