package repository

import (
	"context"
	"time"

	"github.com/trip-planner/internal/domain"
)

// StoreRepository is the durable key-value store behind the credential, the
// saved-plans list, the persisted planning selection and the city-list cache.
type StoreRepository interface {
	// GetCredential returns the stored API credential, or an empty string when
	// unset. Read failures are swallowed and logged; this method never errors.
	GetCredential(ctx context.Context) string

	// SetCredential overwrites the credential. An empty value removes it.
	SetCredential(ctx context.Context, credential string) error

	// AppendSavedPlan appends one entry to the saved-plans list. The append is
	// read-modify-write, not atomic; acceptable under the single-writer
	// assumption.
	AppendSavedPlan(ctx context.Context, filename, content string) error

	// ListSavedPlans returns the saved-plans list, oldest first.
	ListSavedPlans(ctx context.Context) ([]domain.SavedPlan, error)

	// GetPlanningSelection returns the persisted selection, or nil when none.
	GetPlanningSelection(ctx context.Context) (*domain.PlanningSelection, error)

	// SetPlanningSelection persists a completed selection for reload resume.
	SetPlanningSelection(ctx context.Context, sel domain.PlanningSelection) error

	// ClearPlanningSelection removes the persisted selection.
	ClearPlanningSelection(ctx context.Context) error

	// GetCachedCities returns the cached city list, or nil on a miss.
	GetCachedCities(ctx context.Context) ([]domain.City, error)

	// SetCachedCities caches the city list with a TTL.
	SetCachedCities(ctx context.Context, cities []domain.City, ttl time.Duration) error
}
