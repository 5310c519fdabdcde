package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names (must match the archive worker's consumer group setup)
const (
	StreamPlanGenerated = "stream:plan:generated"
)

// PlanGeneratedEvent is published after every successful generation, whether
// the document came from the model or from the fallback template.
type PlanGeneratedEvent struct {
	PlanID      uuid.UUID `json:"plan_id"`
	City        string    `json:"city"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	Filename    string    `json:"filename"`
	Content     string    `json:"content"`
	Fallback    bool      `json:"fallback"`
	GeneratedAt time.Time `json:"generated_at"`
}

// StreamMessage wraps a raw stream entry: the entry ID for acking plus the
// JSON payload from the "data" field.
type StreamMessage struct {
	ID   string
	Data string
}

// PlanArchiveRecord is the Postgres row the archive worker writes.
type PlanArchiveRecord struct {
	ID          uuid.UUID `db:"id"`
	City        string    `db:"city"`
	Category    string    `db:"category"`
	Subcategory string    `db:"subcategory"`
	Filename    string    `db:"filename"`
	Content     string    `db:"content"`
	Fallback    bool      `db:"fallback"`
	GeneratedAt time.Time `db:"generated_at"`
	ArchivedAt  time.Time `db:"archived_at"`
}
