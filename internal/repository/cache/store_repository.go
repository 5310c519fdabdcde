package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/domain/repository"
	"go.uber.org/zap"
)

// Durable store keys. One scalar for the credential, one JSON list for saved
// plans, one JSON object for the resumable selection, one JSON list for the
// cached city catalog.
const (
	keyCredential        = "deepseek_api_key"
	keySavedPlans        = "saved_plans"
	keyPlanningSelection = "planning_data"
	keyCachedCities      = "cached_cities"
)

type storeRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewStoreRepository(redis *Redis) repository.StoreRepository {
	return &storeRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

// GetCredential never surfaces a read failure: a missing key, a closed
// connection or any other error all read as "no credential", which routes
// generation to the fallback template instead of blocking the user.
func (r *storeRepository) GetCredential(ctx context.Context) string {
	val, err := r.client.Get(ctx, keyCredential).Result()
	if err == redis.Nil {
		return ""
	}
	if err != nil {
		r.logger.Warn("Failed to read credential, treating as unset", zap.Error(err))
		return ""
	}
	return val
}

func (r *storeRepository) SetCredential(ctx context.Context, credential string) error {
	if credential == "" {
		if err := r.client.Del(ctx, keyCredential).Err(); err != nil {
			r.logger.Error("Failed to clear credential", zap.Error(err))
			return fmt.Errorf("store clear credential: %w", err)
		}
		return nil
	}

	if err := r.client.Set(ctx, keyCredential, credential, 0).Err(); err != nil {
		r.logger.Error("Failed to save credential", zap.Error(err))
		return fmt.Errorf("store set credential: %w", err)
	}
	return nil
}

// AppendSavedPlan reads the whole list, appends one entry and writes the list
// back. Not an atomic append: concurrent writers can race and lose updates,
// accepted under the single-user assumption.
func (r *storeRepository) AppendSavedPlan(ctx context.Context, filename, content string) error {
	plans, err := r.ListSavedPlans(ctx)
	if err != nil {
		return err
	}

	plans = append(plans, domain.SavedPlan{
		Filename: filename,
		Content:  content,
		SaveDate: time.Now().UTC(),
	})

	data, err := json.Marshal(plans)
	if err != nil {
		return fmt.Errorf("marshal saved plans: %w", err)
	}

	if err := r.client.Set(ctx, keySavedPlans, data, 0).Err(); err != nil {
		r.logger.Error("Failed to write saved plans", zap.Error(err))
		return fmt.Errorf("store append saved plan: %w", err)
	}

	r.logger.Debug("Saved plan appended",
		zap.String("filename", filename),
		zap.Int("total", len(plans)))
	return nil
}

func (r *storeRepository) ListSavedPlans(ctx context.Context) ([]domain.SavedPlan, error) {
	data, err := r.client.Get(ctx, keySavedPlans).Bytes()
	if err == redis.Nil {
		return []domain.SavedPlan{}, nil
	}
	if err != nil {
		r.logger.Error("Failed to read saved plans", zap.Error(err))
		return nil, fmt.Errorf("store list saved plans: %w", err)
	}

	var plans []domain.SavedPlan
	if err := json.Unmarshal(data, &plans); err != nil {
		return nil, fmt.Errorf("unmarshal saved plans: %w", err)
	}
	return plans, nil
}

func (r *storeRepository) GetPlanningSelection(ctx context.Context) (*domain.PlanningSelection, error) {
	data, err := r.client.Get(ctx, keyPlanningSelection).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to read planning selection", zap.Error(err))
		return nil, fmt.Errorf("store get selection: %w", err)
	}

	var sel domain.PlanningSelection
	if err := json.Unmarshal(data, &sel); err != nil {
		return nil, fmt.Errorf("unmarshal selection: %w", err)
	}
	return &sel, nil
}

func (r *storeRepository) SetPlanningSelection(ctx context.Context, sel domain.PlanningSelection) error {
	data, err := json.Marshal(sel)
	if err != nil {
		return fmt.Errorf("marshal selection: %w", err)
	}

	if err := r.client.Set(ctx, keyPlanningSelection, data, 0).Err(); err != nil {
		r.logger.Error("Failed to persist planning selection", zap.Error(err))
		return fmt.Errorf("store set selection: %w", err)
	}
	return nil
}

func (r *storeRepository) ClearPlanningSelection(ctx context.Context) error {
	if err := r.client.Del(ctx, keyPlanningSelection).Err(); err != nil {
		r.logger.Error("Failed to clear planning selection", zap.Error(err))
		return fmt.Errorf("store clear selection: %w", err)
	}
	return nil
}

func (r *storeRepository) GetCachedCities(ctx context.Context) ([]domain.City, error) {
	data, err := r.client.Get(ctx, keyCachedCities).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to read cities cache", zap.Error(err))
		return nil, fmt.Errorf("cache get cities: %w", err)
	}

	var cities []domain.City
	if err := json.Unmarshal(data, &cities); err != nil {
		return nil, fmt.Errorf("unmarshal cached cities: %w", err)
	}

	r.logger.Debug("Cities cache hit", zap.Int("count", len(cities)))
	return cities, nil
}

func (r *storeRepository) SetCachedCities(ctx context.Context, cities []domain.City, ttl time.Duration) error {
	data, err := json.Marshal(cities)
	if err != nil {
		return fmt.Errorf("marshal cities: %w", err)
	}

	if err := r.client.Set(ctx, keyCachedCities, data, ttl).Err(); err != nil {
		r.logger.Error("Failed to write cities cache", zap.Error(err))
		return fmt.Errorf("cache set cities: %w", err)
	}

	r.logger.Debug("Cities cache set", zap.Int("count", len(cities)), zap.Duration("ttl", ttl))
	return nil
}
