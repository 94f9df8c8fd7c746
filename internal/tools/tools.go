// Package tools exposes the gateway operations as named, JSON-argument tools.
package tools

import (
	comparison "github.com/narwhalmedia/greenroom/internal/comparison/service"
	discovery "github.com/narwhalmedia/greenroom/internal/discovery/service"
	"github.com/narwhalmedia/greenroom/pkg/interfaces"
	"github.com/narwhalmedia/greenroom/pkg/models"
)

// NewGatewayRegistry registers every gateway tool.
func NewGatewayRegistry(
	media discovery.MediaServiceInterface,
	compare comparison.ComparisonServiceInterface,
	logger interfaces.Logger,
) (*Registry, error) {
	registry := NewRegistry(logger)

	for _, tool := range []Tool{
		discoverTool("discover_films", "films", models.MediaTypeFilm, media),
		discoverTool("discover_television", "television shows", models.MediaTypeTelevision, media),
		listGenresTool(media),
		listGenresSimplifiedTool(media, compare),
		categorizeGenresTool(media, compare),
		compareTool(compare),
	} {
		if err := registry.Register(tool); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
