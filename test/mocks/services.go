package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	cmpdomain "github.com/narwhalmedia/greenroom/internal/comparison/domain"
	"github.com/narwhalmedia/greenroom/internal/discovery/domain"
	"github.com/narwhalmedia/greenroom/internal/discovery/service"
	"github.com/narwhalmedia/greenroom/pkg/models"
)

// MockMediaService is a mock implementation of the discovery service surface
type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Discover(ctx context.Context, params service.DiscoverParams) (*models.MediaList, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MediaList), args.Error(1)
}

func (m *MockMediaService) Genres(ctx context.Context) (*models.GenreList, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GenreList), args.Error(1)
}

func (m *MockMediaService) ProviderName() string {
	return m.Called().String(0)
}

func (m *MockMediaService) SupportedMediaTypes() []models.MediaType {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.MediaType)
}

func (m *MockMediaService) Adapter(mt models.MediaType) (domain.MediaTypeAdapter, bool) {
	args := m.Called(mt)
	return args.Get(0).(domain.MediaTypeAdapter), args.Bool(1)
}

// MockComparisonService is a mock implementation of the comparison service surface
type MockComparisonService struct {
	mock.Mock
}

func (m *MockComparisonService) Compare(ctx context.Context, prompt string, temperature float64, maxTokens int) (*models.ComparisonResult, error) {
	args := m.Called(ctx, prompt, temperature, maxTokens)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ComparisonResult), args.Error(1)
}

func (m *MockComparisonService) Sample(ctx context.Context, req cmpdomain.SamplingRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}
