package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/narwhalmedia/greenroom/internal/comparison/domain"
)

// MockCatalogClient is a mock catalog transport
type MockCatalogClient struct {
	mock.Mock
}

func (m *MockCatalogClient) ServiceName() string {
	return m.Called().String(0)
}

func (m *MockCatalogClient) Get(ctx context.Context, endpoint string, params map[string]any) (map[string]any, error) {
	args := m.Called(ctx, endpoint, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

// MockLLMClient is a mock alternative backend
type MockLLMClient struct {
	mock.Mock
}

func (m *MockLLMClient) ServiceName() string {
	return m.Called().String(0)
}

func (m *MockLLMClient) Generate(ctx context.Context, prompt, model string, temperature float64, maxTokens int) (map[string]any, error) {
	args := m.Called(ctx, prompt, model, temperature, maxTokens)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

// MockSampler is a mock sampling capability
type MockSampler struct {
	mock.Mock
}

func (m *MockSampler) Name() string {
	return m.Called().String(0)
}

func (m *MockSampler) Sample(ctx context.Context, req domain.SamplingRequest) (domain.SamplingContent, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.SamplingContent), args.Error(1)
}
