package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/domain/repository"
	"github.com/trip-planner/internal/pkg/errors"
	"go.uber.org/zap"
)

type PlanUseCase struct {
	generator      repository.GeneratorRepository
	store          repository.StoreRepository
	stream         repository.StreamRepository
	logger         *zap.Logger
	simulatedDelay time.Duration
}

// NewPlanUseCase wires the generation workflow. stream may be nil when event
// publishing is not deployed.
func NewPlanUseCase(
	generator repository.GeneratorRepository,
	store repository.StoreRepository,
	stream repository.StreamRepository,
	logger *zap.Logger,
	simulatedDelay time.Duration,
) *PlanUseCase {
	return &PlanUseCase{
		generator:      generator,
		store:          store,
		stream:         stream,
		logger:         logger,
		simulatedDelay: simulatedDelay,
	}
}

// Generate produces the itinerary for a completed selection. The core
// contract: this method never fails because of the outbound model call. With
// no credential the network is skipped entirely; with a credential any call
// failure falls back to the deterministic template. The only error returned
// is an incomplete selection.
func (uc *PlanUseCase) Generate(ctx context.Context, sel domain.PlanningSelection) (*domain.PlanResult, error) {
	if !sel.Complete() {
		return nil, errors.ErrMissingSelection
	}

	credential := uc.store.GetCredential(ctx)

	var (
		plan     string
		fallback bool
	)
	if credential == "" {
		uc.logger.Info("No credential set, using fallback plan",
			zap.String("city", sel.City),
			zap.String("category", sel.Category),
			zap.String("subcategory", sel.Subcategory))
		uc.simulateLatency(ctx)
		plan = buildFallbackPlan(sel.City, sel.Category, sel.Subcategory)
		fallback = true
	} else {
		generated, err := uc.generator.GeneratePlan(ctx, sel.City, sel.Category, sel.Subcategory, credential)
		if err != nil {
			uc.logger.Warn("Plan generation call failed, using fallback plan",
				zap.String("city", sel.City),
				zap.Error(err))
			plan = buildFallbackPlan(sel.City, sel.Category, sel.Subcategory)
			fallback = true
		} else {
			plan = generated
		}
	}

	result := &domain.PlanResult{
		City:        sel.City,
		Category:    sel.Category,
		Subcategory: sel.Subcategory,
		Plan:        plan,
		Filename:    deriveFilename(sel),
	}

	uc.publishGenerated(ctx, result, fallback)

	return result, nil
}

// SavePlan appends the document to the saved-plans list.
func (uc *PlanUseCase) SavePlan(ctx context.Context, filename, content string) error {
	if err := uc.store.AppendSavedPlan(ctx, filename, content); err != nil {
		uc.logger.Error("Failed to save plan",
			zap.String("filename", filename),
			zap.Error(err))
		return errors.ErrStoreError
	}

	uc.logger.Info("Plan saved", zap.String("filename", filename))
	return nil
}

func (uc *PlanUseCase) ListSavedPlans(ctx context.Context) ([]domain.SavedPlan, error) {
	plans, err := uc.store.ListSavedPlans(ctx)
	if err != nil {
		uc.logger.Error("Failed to list saved plans", zap.Error(err))
		return nil, errors.ErrStoreError
	}
	return plans, nil
}

func (uc *PlanUseCase) GetCredential(ctx context.Context) string {
	return uc.store.GetCredential(ctx)
}

func (uc *PlanUseCase) SetCredential(ctx context.Context, credential string) error {
	if err := uc.store.SetCredential(ctx, credential); err != nil {
		return errors.ErrStoreError
	}
	return nil
}

// deriveFilename builds {city}-{category}-{subcategory}-{epochMillis}.md. The
// timestamp suffix is wall-clock-dependent and therefore opaque to callers.
func deriveFilename(sel domain.PlanningSelection) string {
	return fmt.Sprintf("%s-%s-%s-%d.md", sel.City, sel.Category, sel.Subcategory, time.Now().UnixMilli())
}

// simulateLatency keeps the no-credential path from completing instantly, so
// the client progress UI behaves the same on both paths. Zero disables it.
func (uc *PlanUseCase) simulateLatency(ctx context.Context) {
	if uc.simulatedDelay <= 0 {
		return
	}
	select {
	case <-time.After(uc.simulatedDelay):
	case <-ctx.Done():
	}
}

// publishGenerated emits the plan-generated event best-effort: archiving is an
// offline concern and must never affect the user-facing result.
func (uc *PlanUseCase) publishGenerated(ctx context.Context, result *domain.PlanResult, fallback bool) {
	if uc.stream == nil {
		return
	}

	event := domain.PlanGeneratedEvent{
		PlanID:      uuid.New(),
		City:        result.City,
		Category:    result.Category,
		Subcategory: result.Subcategory,
		Filename:    result.Filename,
		Content:     result.Plan,
		Fallback:    fallback,
		GeneratedAt: time.Now().UTC(),
	}

	if err := uc.stream.PublishPlanGenerated(ctx, event); err != nil {
		uc.logger.Warn("Failed to publish plan event", zap.Error(err))
	}
}
