package repository

import (
	"context"

	"github.com/trip-planner/internal/domain"
)

// StreamRepository moves plan-generated events between the API and the
// archive worker over Redis Streams.
type StreamRepository interface {
	// PublishPlanGenerated appends an event to the plan-generated stream.
	PublishPlanGenerated(ctx context.Context, event domain.PlanGeneratedEvent) error

	// CreateConsumerGroup creates the consumer group for a stream, tolerating
	// an already-existing group.
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeStream reads messages for a consumer group; the channel closes
	// when ctx is cancelled.
	ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error)

	// AckMessage acknowledges a processed message.
	AckMessage(ctx context.Context, stream, group, messageID string) error
}
