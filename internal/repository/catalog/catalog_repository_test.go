package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trip-planner/internal/config"
	"github.com/trip-planner/internal/pkg/errors"
)

func newTestRepository() *catalogRepository {
	cfg := &config.CatalogConfig{ImageBaseURL: "https://static.example.com"}
	return NewCatalogRepository(cfg, zap.NewNop()).(*catalogRepository)
}

func TestCatalogRepository_ListCities(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	cities, err := repo.ListCities(ctx)
	require.NoError(t, err)
	require.Len(t, cities, 16)

	t.Run("ids are unique and names non-empty", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, city := range cities {
			assert.NotEmpty(t, city.ID)
			assert.NotEmpty(t, city.Name)
			assert.False(t, seen[city.ID], "duplicate city id %s", city.ID)
			seen[city.ID] = true
		}
	})

	t.Run("every city has an image reference", func(t *testing.T) {
		for _, city := range cities {
			assert.NotEmpty(t, city.Image, "city %s has no image", city.ID)
		}
	})

	t.Run("explicit image is kept", func(t *testing.T) {
		for _, city := range cities {
			if city.ID == "xian" {
				assert.Contains(t, city.Image, "unsplash.com")
			}
		}
	})

	t.Run("missing image is synthesized from the id", func(t *testing.T) {
		for _, city := range cities {
			if city.ID == "beijing" {
				assert.Equal(t, "https://static.example.com/images/cities/beijing.jpg", city.Image)
			}
		}
	})

	t.Run("repeated calls return identical data", func(t *testing.T) {
		again, err := repo.ListCities(ctx)
		require.NoError(t, err)
		assert.Equal(t, cities, again)
	})
}

func TestCatalogRepository_GetCity(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	t.Run("lookup by id", func(t *testing.T) {
		city, err := repo.GetCity(ctx, "beijing")
		require.NoError(t, err)
		assert.Equal(t, "北京", city.Name)
		assert.NotEmpty(t, city.Image)
	})

	t.Run("lookup by display name", func(t *testing.T) {
		city, err := repo.GetCity(ctx, "杭州")
		require.NoError(t, err)
		assert.Equal(t, "hangzhou", city.ID)
	})

	t.Run("unknown city", func(t *testing.T) {
		city, err := repo.GetCity(ctx, "atlantis")
		assert.Nil(t, city)
		assert.ErrorIs(t, err, errors.ErrCityNotFound)
	})
}

func TestCatalogRepository_ListCategories(t *testing.T) {
	repo := newTestRepository()

	cats, err := repo.ListCategories(context.Background(), "beijing")
	require.NoError(t, err)
	require.Len(t, cats, 3)

	assert.Equal(t, "culture", cats[0].ID)
	assert.Equal(t, "人文景观", cats[0].Name)
	assert.Equal(t, "nature", cats[1].ID)
	assert.Equal(t, "自然景观", cats[1].Name)
	assert.Equal(t, "food", cats[2].ID)
	assert.Equal(t, "饮食文化", cats[2].Name)

	for _, c := range cats {
		assert.NotEmpty(t, c.Icon)
		assert.NotEmpty(t, c.Description)
	}
}

func TestCatalogRepository_ListSubcategories(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	t.Run("cultural attractions by category id", func(t *testing.T) {
		subs, err := repo.ListSubcategories(ctx, "beijing", "culture")
		require.NoError(t, err)
		require.Len(t, subs, 3)

		assert.Equal(t, "cultural-0", subs[0].ID)
		assert.Equal(t, "故宫博物院", subs[0].Name)
		assert.Equal(t, "北京的人文景观 - 故宫博物院", subs[0].Description)
		assert.Equal(t, "cultural-2", subs[2].ID)
	})

	t.Run("category matched by display name", func(t *testing.T) {
		byID, err := repo.ListSubcategories(ctx, "beijing", "culture")
		require.NoError(t, err)
		byName, err := repo.ListSubcategories(ctx, "beijing", "人文景观")
		require.NoError(t, err)
		assert.Equal(t, byID, byName)
	})

	t.Run("natural attractions", func(t *testing.T) {
		subs, err := repo.ListSubcategories(ctx, "hangzhou", "nature")
		require.NoError(t, err)
		require.NotEmpty(t, subs)

		assert.Equal(t, "natural-0", subs[0].ID)
		assert.Equal(t, "西湖", subs[0].Name)
		assert.Equal(t, "杭州的自然景观 - 西湖", subs[0].Description)
	})

	t.Run("food culture", func(t *testing.T) {
		subs, err := repo.ListSubcategories(ctx, "chongqing", "food")
		require.NoError(t, err)
		require.NotEmpty(t, subs)

		assert.Equal(t, "food-0", subs[0].ID)
		assert.Equal(t, "重庆火锅", subs[0].Name)
		assert.Equal(t, "重庆的特色美食 - 重庆火锅", subs[0].Description)
	})

	t.Run("unknown city falls back", func(t *testing.T) {
		subs, err := repo.ListSubcategories(ctx, "atlantis", "culture")
		require.NoError(t, err)
		require.Len(t, subs, 4)
		assert.Equal(t, "history", subs[0].ID)
		assert.Equal(t, "performance", subs[3].ID)
	})

	t.Run("unknown category falls back", func(t *testing.T) {
		subs, err := repo.ListSubcategories(ctx, "beijing", "shopping")
		require.NoError(t, err)
		require.Len(t, subs, 4)
	})

	t.Run("fallback entries never share ids", func(t *testing.T) {
		subs, err := repo.ListSubcategories(ctx, "atlantis", "nature")
		require.NoError(t, err)
		seen := make(map[string]bool)
		for _, sub := range subs {
			assert.False(t, seen[sub.ID])
			seen[sub.ID] = true
		}
	})
}
