package service

import (
	"context"

	"github.com/narwhalmedia/greenroom/internal/discovery/domain"
	"github.com/narwhalmedia/greenroom/pkg/models"
)

// CatalogClient is the transport to the upstream media catalog. Implementations
// return *errors.AppError values of type UPSTREAM_RESPONSE (non-2xx status,
// malformed JSON, non-object JSON) or UPSTREAM_CONNECTION (network failure).
type CatalogClient interface {
	ServiceName() string
	Get(ctx context.Context, endpoint string, params map[string]any) (map[string]any, error)
}

// MediaServiceInterface is the surface consumed by the tool layer.
type MediaServiceInterface interface {
	Discover(ctx context.Context, params DiscoverParams) (*models.MediaList, error)
	Genres(ctx context.Context) (*models.GenreList, error)
	ProviderName() string
	SupportedMediaTypes() []models.MediaType
	Adapter(mt models.MediaType) (domain.MediaTypeAdapter, bool)
}
