package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/trip-planner/internal/domain"
)

// MockCatalogRepository is a mock of CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListCities(ctx context.Context) ([]domain.City, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.City), args.Error(1)
}

func (m *MockCatalogRepository) GetCity(ctx context.Context, cityID string) (*domain.City, error) {
	args := m.Called(ctx, cityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

func (m *MockCatalogRepository) ListCategories(ctx context.Context, cityID string) ([]domain.Category, error) {
	args := m.Called(ctx, cityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCatalogRepository) ListSubcategories(ctx context.Context, cityID, category string) ([]domain.Subcategory, error) {
	args := m.Called(ctx, cityID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subcategory), args.Error(1)
}

// MockStoreRepository is a mock of StoreRepository
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) GetCredential(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}

func (m *MockStoreRepository) SetCredential(ctx context.Context, credential string) error {
	args := m.Called(ctx, credential)
	return args.Error(0)
}

func (m *MockStoreRepository) AppendSavedPlan(ctx context.Context, filename, content string) error {
	args := m.Called(ctx, filename, content)
	return args.Error(0)
}

func (m *MockStoreRepository) ListSavedPlans(ctx context.Context) ([]domain.SavedPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedPlan), args.Error(1)
}

func (m *MockStoreRepository) GetPlanningSelection(ctx context.Context) (*domain.PlanningSelection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlanningSelection), args.Error(1)
}

func (m *MockStoreRepository) SetPlanningSelection(ctx context.Context, sel domain.PlanningSelection) error {
	args := m.Called(ctx, sel)
	return args.Error(0)
}

func (m *MockStoreRepository) ClearPlanningSelection(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStoreRepository) GetCachedCities(ctx context.Context) ([]domain.City, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.City), args.Error(1)
}

func (m *MockStoreRepository) SetCachedCities(ctx context.Context, cities []domain.City, ttl time.Duration) error {
	args := m.Called(ctx, cities, ttl)
	return args.Error(0)
}

// MockGeneratorRepository is a mock of GeneratorRepository
type MockGeneratorRepository struct {
	mock.Mock
}

func (m *MockGeneratorRepository) GeneratePlan(ctx context.Context, city, category, subcategory, credential string) (string, error) {
	args := m.Called(ctx, city, category, subcategory, credential)
	return args.String(0), args.Error(1)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) PublishPlanGenerated(ctx context.Context, event domain.PlanGeneratedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func ptrString(s string) *string {
	return &s
}
