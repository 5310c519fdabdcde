package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/domain/repository"
	"github.com/trip-planner/internal/worker"
	"go.uber.org/zap"
)

// ArchiveWorker drains plan-generated events from the stream and writes each
// one into the Postgres plan archive. Records are keyed by the event's plan
// ID, so a redelivered message is a no-op insert.
type ArchiveWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	archiveRepo  repository.ArchiveRepository
	consumerName string
	maxRetries   int
}

func NewArchiveWorker(
	streamRepo repository.StreamRepository,
	archiveRepo repository.ArchiveRepository,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *ArchiveWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &ArchiveWorker{
		BaseWorker:   worker.NewBaseWorker("plan-archive", consumerGroup, logger),
		streamRepo:   streamRepo,
		archiveRepo:  archiveRepo,
		consumerName: consumerName,
		maxRetries:   maxRetries,
	}
}

func (w *ArchiveWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting ArchiveWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamPlanGenerated, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	messages, err := w.streamRepo.ConsumeStream(ctx, domain.StreamPlanGenerated, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-messages:
			if !ok {
				logger.Info("Message channel closed")
				return nil
			}
			w.handleMessage(ctx, msg)
		}
	}
}

func (w *ArchiveWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	var event domain.PlanGeneratedEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Error("Failed to unmarshal plan event, dropping message",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		// Malformed payloads can never succeed, ack and move on
		w.ack(ctx, msg.ID)
		return
	}

	rec := domain.PlanArchiveRecord{
		ID:          event.PlanID,
		City:        event.City,
		Category:    event.Category,
		Subcategory: event.Subcategory,
		Filename:    event.Filename,
		Content:     event.Content,
		Fallback:    event.Fallback,
		GeneratedAt: event.GeneratedAt,
		ArchivedAt:  time.Now().UTC(),
	}

	var err error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		if err = w.archiveRepo.SaveRecord(ctx, rec); err == nil {
			break
		}
		logger.Warn("Archive insert failed, retrying",
			zap.String("message_id", msg.ID),
			zap.Int("attempt", attempt),
			zap.Error(err))
		time.Sleep(time.Duration(attempt) * time.Second)
	}

	if err != nil {
		// Leave the message pending, the consumer group redelivers it
		logger.Error("Archive insert failed after retries",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		return
	}

	w.ack(ctx, msg.ID)
	logger.Debug("Plan archived",
		zap.String("message_id", msg.ID),
		zap.String("filename", event.Filename))
}

func (w *ArchiveWorker) ack(ctx context.Context, messageID string) {
	if err := w.streamRepo.AckMessage(ctx, domain.StreamPlanGenerated, w.ConsumerGroup(), messageID); err != nil {
		w.Logger().Error("Failed to ack message",
			zap.String("message_id", messageID),
			zap.Error(err))
	}
}
