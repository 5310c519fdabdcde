package repository

import (
	"context"

	"github.com/trip-planner/internal/domain"
)

// ArchiveRepository persists generated plans for offline history and
// analytics. Only the archive worker writes here.
type ArchiveRepository interface {
	SaveRecord(ctx context.Context, rec domain.PlanArchiveRecord) error
	ListRecent(ctx context.Context, limit int) ([]domain.PlanArchiveRecord, error)
}
