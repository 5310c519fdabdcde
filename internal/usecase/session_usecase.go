package usecase

import (
	"context"
	"sync"

	"github.com/trip-planner/internal/domain"
	"github.com/trip-planner/internal/domain/repository"
	"github.com/trip-planner/internal/pkg/errors"
	"github.com/trip-planner/internal/usecase/dto"
	"go.uber.org/zap"
)

// SessionUseCase owns the per-session application state for the lifetime of
// the process. Cells are last-write-wins; a session has a single logical
// writer, so a plain mutex around the map is all the arbitration needed.
// The durable store is only touched on the documented transitions: selection
// completed, restore, reset.
type SessionUseCase struct {
	store  repository.StoreRepository
	logger *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*domain.SessionState
}

func NewSessionUseCase(store repository.StoreRepository, logger *zap.Logger) *SessionUseCase {
	return &SessionUseCase{
		store:    store,
		logger:   logger,
		sessions: make(map[string]*domain.SessionState),
	}
}

// Get returns a snapshot of the session state, creating the session on first
// use.
func (uc *SessionUseCase) Get(sessionID string) domain.SessionState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return *uc.state(sessionID)
}

// UpdateSelection sets the provided selection cells one at a time. Once the
// selection becomes complete it is persisted to the durable store so a reload
// can resume it; a persistence failure is logged but does not block the flow.
func (uc *SessionUseCase) UpdateSelection(ctx context.Context, sessionID string, req dto.SelectionRequest) domain.SessionState {
	uc.mu.Lock()
	state := uc.state(sessionID)
	if req.CityID != nil {
		state.CityID = *req.CityID
	}
	if req.Category != nil {
		state.Category = *req.Category
	}
	if req.Subcategory != nil {
		state.Subcategory = *req.Subcategory
	}
	snapshot := *state
	uc.mu.Unlock()

	if sel := snapshot.Selection(); sel.Complete() {
		if err := uc.store.SetPlanningSelection(ctx, sel); err != nil {
			uc.logger.Warn("Failed to persist planning selection", zap.Error(err))
		}
	}

	return snapshot
}

// Restore loads the persisted selection back into the session cells. A store
// miss leaves the session untouched.
func (uc *SessionUseCase) Restore(ctx context.Context, sessionID string) domain.SessionState {
	sel, err := uc.store.GetPlanningSelection(ctx)
	if err != nil {
		uc.logger.Warn("Failed to restore planning selection", zap.Error(err))
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	state := uc.state(sessionID)
	if sel != nil {
		state.CityID = sel.City
		state.Category = sel.Category
		state.Subcategory = sel.Subcategory
	}
	return *state
}

// Reset clears every cell back to its initial empty value and removes the
// persisted selection.
func (uc *SessionUseCase) Reset(ctx context.Context, sessionID string) domain.SessionState {
	uc.mu.Lock()
	state := domain.NewSessionState()
	uc.sessions[sessionID] = state
	snapshot := *state
	uc.mu.Unlock()

	if err := uc.store.ClearPlanningSelection(ctx); err != nil {
		uc.logger.Warn("Failed to clear persisted selection", zap.Error(err))
	}

	return snapshot
}

// PushHistory appends a path to the navigation history, skipping a repeat of
// the current top entry.
func (uc *SessionUseCase) PushHistory(sessionID, path string) domain.SessionState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	state := uc.state(sessionID)
	if n := len(state.History); n == 0 || state.History[n-1] != path {
		state.History = append(state.History, path)
	}
	return *state
}

// NavigateBack pops the current entry and returns the new top. It only
// computes the target; performing the navigation stays with the client.
func (uc *SessionUseCase) NavigateBack(sessionID string) (string, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	state := uc.state(sessionID)
	if len(state.History) < 2 {
		return "", errors.ErrNoHistory
	}
	state.History = state.History[:len(state.History)-1]
	return state.History[len(state.History)-1], nil
}

// SetPlanResult stores the generated result in the session.
func (uc *SessionUseCase) SetPlanResult(sessionID string, result *domain.PlanResult) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state(sessionID).PlanResult = result
}

// SetLoading flips the loading cell.
func (uc *SessionUseCase) SetLoading(sessionID string, loading bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state(sessionID).Loading = loading
}

// SetError records a user-visible error message in the session.
func (uc *SessionUseCase) SetError(sessionID, message string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state(sessionID).ErrorMessage = message
}

// state returns the live session entry; callers must hold mu.
func (uc *SessionUseCase) state(sessionID string) *domain.SessionState {
	if s, ok := uc.sessions[sessionID]; ok {
		return s
	}
	s := domain.NewSessionState()
	uc.sessions[sessionID] = s
	return s
}
