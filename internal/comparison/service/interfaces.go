package service

import (
	"context"

	"github.com/narwhalmedia/greenroom/internal/comparison/domain"
	"github.com/narwhalmedia/greenroom/pkg/models"
)

// LLMClient is the request/response transport of the alternative backend.
type LLMClient interface {
	ServiceName() string
	Generate(ctx context.Context, prompt, model string, temperature float64, maxTokens int) (map[string]any, error)
}

// Sampler is the opaque sampling capability behind the resample backend. Its
// own error taxonomy is not interpreted; every failure becomes a sampling
// failure.
type Sampler interface {
	Name() string
	Sample(ctx context.Context, req domain.SamplingRequest) (domain.SamplingContent, error)
}

// ComparisonServiceInterface is the surface consumed by the tool layer.
type ComparisonServiceInterface interface {
	Compare(ctx context.Context, prompt string, temperature float64, maxTokens int) (*models.ComparisonResult, error)
	Sample(ctx context.Context, req domain.SamplingRequest) (string, error)
}
