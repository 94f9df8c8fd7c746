package service

import (
	"context"
	"fmt"

	"github.com/narwhalmedia/greenroom/internal/discovery/domain"
	"github.com/narwhalmedia/greenroom/pkg/errors"
	"github.com/narwhalmedia/greenroom/pkg/interfaces"
	"github.com/narwhalmedia/greenroom/pkg/logger"
	"github.com/narwhalmedia/greenroom/pkg/models"
)

// GenreAggregator merges the genre vocabularies of several media types into a
// single list keyed by genre name.
type GenreAggregator struct {
	client  CatalogClient
	sources []domain.MediaTypeAdapter
	logger  interfaces.Logger
}

// NewGenreAggregator creates an aggregator. Sources are fetched and merged in
// the given order, so the first source wins the id of a shared name.
func NewGenreAggregator(client CatalogClient, sources []domain.MediaTypeAdapter, logger interfaces.Logger) *GenreAggregator {
	return &GenreAggregator{
		client:  client,
		sources: sources,
		logger:  logger,
	}
}

// Genres fetches every source vocabulary sequentially and merges them.
func (g *GenreAggregator) Genres(ctx context.Context) (*models.GenreList, error) {
	log := logger.FromContext(ctx, g.logger)

	merged := &models.GenreList{Genres: []models.Genre{}}
	index := make(map[string]int)

	for _, source := range g.sources {
		data, err := g.client.Get(ctx, source.GenreEndpoint(), map[string]any{})
		if err != nil {
			return nil, err
		}

		var raw []any
		switch v := data["genres"].(type) {
		case nil:
		case []any:
			raw = v
		default:
			return nil, errors.UpstreamResponse(
				fmt.Sprintf("%s genre response for %s has a non-array genres field", g.client.ServiceName(), source.Endpoint), nil)
		}

		records, rejected := domain.GenreSchema().Filter(raw)
		for _, rej := range rejected {
			log.Debug("Dropped genre record",
				interfaces.String("media_type", string(source.MediaType)),
				interfaces.String("reason", rej.Error()))
		}

		for _, rec := range records {
			id, _ := rec.Int(domain.FieldID)
			name, _ := rec.String(domain.FieldName)

			if i, ok := index[name]; ok {
				markAvailability(&merged.Genres[i], source.MediaType)
				continue
			}

			genre := models.Genre{ID: id, Name: name}
			markAvailability(&genre, source.MediaType)
			index[name] = len(merged.Genres)
			merged.Genres = append(merged.Genres, genre)
		}
	}

	log.Debug("Merged genre vocabularies", interfaces.Int("genres", len(merged.Genres)))
	return merged, nil
}

func markAvailability(g *models.Genre, mt models.MediaType) {
	switch mt {
	case models.MediaTypeFilm:
		g.HasFilms = true
	case models.MediaTypeTelevision:
		g.HasTVShows = true
	}
}
