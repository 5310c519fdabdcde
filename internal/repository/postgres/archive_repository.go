package postgres

import (
	"context"
	"fmt"

	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/domain/repository"
	"go.uber.org/zap"
)

type archiveRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewArchiveRepository creates the plan archive repository. Schema:
//
//	CREATE TABLE IF NOT EXISTS plan_archive (
//	    id           UUID PRIMARY KEY,
//	    city         TEXT NOT NULL,
//	    category     TEXT NOT NULL,
//	    subcategory  TEXT NOT NULL,
//	    filename     TEXT NOT NULL,
//	    content      TEXT NOT NULL,
//	    fallback     BOOLEAN NOT NULL DEFAULT FALSE,
//	    generated_at TIMESTAMPTZ NOT NULL,
//	    archived_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
func NewArchiveRepository(db *DB, logger *zap.Logger) repository.ArchiveRepository {
	return &archiveRepository{
		db:     db,
		logger: logger,
	}
}

func (r *archiveRepository) SaveRecord(ctx context.Context, rec domain.PlanArchiveRecord) error {
	const query = `
		INSERT INTO plan_archive (id, city, category, subcategory, filename, content, fallback, generated_at, archived_at)
		VALUES (:id, :city, :category, :subcategory, :filename, :content, :fallback, :generated_at, :archived_at)
		ON CONFLICT (id) DO NOTHING`

	if _, err := r.db.NamedExecContext(ctx, query, rec); err != nil {
		r.logger.Error("failed to archive plan",
			zap.String("filename", rec.Filename),
			zap.Error(err))
		return fmt.Errorf("insert plan archive: %w", err)
	}

	r.logger.Debug("Plan archived",
		zap.String("id", rec.ID.String()),
		zap.String("filename", rec.Filename))
	return nil
}

func (r *archiveRepository) ListRecent(ctx context.Context, limit int) ([]domain.PlanArchiveRecord, error) {
	const query = `
		SELECT id, city, category, subcategory, filename, content, fallback, generated_at, archived_at
		FROM plan_archive
		ORDER BY archived_at DESC
		LIMIT $1`

	records := []domain.PlanArchiveRecord{}
	if err := r.db.SelectContext(ctx, &records, query, limit); err != nil {
		r.logger.Error("failed to list archived plans", zap.Error(err))
		return nil, fmt.Errorf("select plan archive: %w", err)
	}
	return records, nil
}
