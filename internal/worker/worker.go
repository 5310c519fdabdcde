package worker

import (
	"context"
)

// Worker is the contract every background worker implements.
type Worker interface {
	// Start runs the worker loop until stopped or ctx is cancelled.
	Start(ctx context.Context) error

	// Stop signals the worker to finish.
	Stop() error

	// Name identifies the worker in logs.
	Name() string
}
