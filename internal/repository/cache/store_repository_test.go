package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trip-planner/internal/config"
	"github.com/trip-planner/internal/domain"
)

// getTestStore connects to a local Redis and clears the store keys. Skips when
// no Redis is reachable.
func getTestStore(t *testing.T) (*Redis, *storeRepository) {
	cfg := &config.RedisConfig{
		Host: "localhost",
		Port: 6379,
		DB:   1, // Use DB 1 for tests
	}

	rdb, err := NewRedis(cfg, zap.NewNop())
	if err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	ctx := context.Background()
	rdb.Client().Del(ctx, keyCredential, keySavedPlans, keyPlanningSelection, keyCachedCities)

	return rdb, NewStoreRepository(rdb).(*storeRepository)
}

func TestStoreRepository_Credential(t *testing.T) {
	rdb, repo := getTestStore(t)
	defer rdb.Close()

	ctx := context.Background()

	t.Run("unset credential reads as empty", func(t *testing.T) {
		assert.Empty(t, repo.GetCredential(ctx))
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, repo.SetCredential(ctx, "sk-test"))
		assert.Equal(t, "sk-test", repo.GetCredential(ctx))
	})

	t.Run("empty value clears the credential", func(t *testing.T) {
		require.NoError(t, repo.SetCredential(ctx, "sk-test"))
		require.NoError(t, repo.SetCredential(ctx, ""))
		assert.Empty(t, repo.GetCredential(ctx))
	})
}

func TestStoreRepository_SavedPlans(t *testing.T) {
	rdb, repo := getTestStore(t)
	defer rdb.Close()

	ctx := context.Background()

	t.Run("empty store lists no plans", func(t *testing.T) {
		plans, err := repo.ListSavedPlans(ctx)
		require.NoError(t, err)
		assert.Empty(t, plans)
	})

	t.Run("appends keep insertion order", func(t *testing.T) {
		require.NoError(t, repo.AppendSavedPlan(ctx, "first.md", "# 第一份"))
		require.NoError(t, repo.AppendSavedPlan(ctx, "second.md", "# 第二份"))

		plans, err := repo.ListSavedPlans(ctx)
		require.NoError(t, err)
		require.Len(t, plans, 2)

		assert.Equal(t, "first.md", plans[0].Filename)
		assert.Equal(t, "# 第一份", plans[0].Content)
		assert.Equal(t, "second.md", plans[1].Filename)
		assert.False(t, plans[0].SaveDate.IsZero())
		assert.False(t, plans[0].SaveDate.After(plans[1].SaveDate))
	})
}

func TestStoreRepository_PlanningSelection(t *testing.T) {
	rdb, repo := getTestStore(t)
	defer rdb.Close()

	ctx := context.Background()

	t.Run("missing selection reads as nil", func(t *testing.T) {
		sel, err := repo.GetPlanningSelection(ctx)
		require.NoError(t, err)
		assert.Nil(t, sel)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		want := domain.PlanningSelection{
			City:        "beijing",
			Category:    "人文景观",
			Subcategory: "故宫博物院",
		}
		require.NoError(t, repo.SetPlanningSelection(ctx, want))

		got, err := repo.GetPlanningSelection(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, want, *got)
	})

	t.Run("clear removes the selection", func(t *testing.T) {
		require.NoError(t, repo.ClearPlanningSelection(ctx))

		sel, err := repo.GetPlanningSelection(ctx)
		require.NoError(t, err)
		assert.Nil(t, sel)
	})
}

func TestStoreRepository_CachedCities(t *testing.T) {
	rdb, repo := getTestStore(t)
	defer rdb.Close()

	ctx := context.Background()

	t.Run("miss reads as nil without error", func(t *testing.T) {
		cities, err := repo.GetCachedCities(ctx)
		require.NoError(t, err)
		assert.Nil(t, cities)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		want := []domain.City{
			{ID: "beijing", Name: "北京", CulturalAttractions: []string{"故宫博物院"}},
			{ID: "hangzhou", Name: "杭州"},
		}
		require.NoError(t, repo.SetCachedCities(ctx, want, time.Minute))

		got, err := repo.GetCachedCities(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("ttl is applied", func(t *testing.T) {
		require.NoError(t, repo.SetCachedCities(ctx, []domain.City{{ID: "beijing"}}, time.Minute))

		ttl, err := rdb.Client().TTL(ctx, keyCachedCities).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
	})
}
