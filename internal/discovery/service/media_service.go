package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/narwhalmedia/greenroom/internal/discovery/domain"
	"github.com/narwhalmedia/greenroom/pkg/errors"
	"github.com/narwhalmedia/greenroom/pkg/interfaces"
	"github.com/narwhalmedia/greenroom/pkg/logger"
	"github.com/narwhalmedia/greenroom/pkg/models"
)

const (
	DefaultPage       = 1
	DefaultMaxResults = 20
	DefaultSortBy     = "popularity.desc"
)

// DiscoverParams are the filters of one discovery request. Nil pointers mean
// the filter is not sent upstream. Zero Page and MaxResults take the defaults.
type DiscoverParams struct {
	MediaType  models.MediaType
	GenreID    *int
	Year       *int
	Language   *string
	SortBy     *string
	Page       int
	MaxResults int
}

// MediaService normalizes provider catalog responses into models.Media.
type MediaService struct {
	client   CatalogClient
	adapters map[models.MediaType]domain.MediaTypeAdapter
	genres   *GenreAggregator
	logger   interfaces.Logger
}

// NewMediaService creates a media service over the TMDB adapter table.
func NewMediaService(client CatalogClient, logger interfaces.Logger) *MediaService {
	return NewMediaServiceWithAdapters(client, domain.TMDBAdapters(), logger)
}

// NewMediaServiceWithAdapters creates a media service with an explicit adapter
// table. The table is copied; later changes to the argument have no effect.
func NewMediaServiceWithAdapters(
	client CatalogClient,
	adapters map[models.MediaType]domain.MediaTypeAdapter,
	logger interfaces.Logger,
) *MediaService {
	table := make(map[models.MediaType]domain.MediaTypeAdapter, len(adapters))
	for mt, a := range adapters {
		table[mt] = a.Clone()
	}

	// Genre vocabularies merge film first, then television.
	var sources []domain.MediaTypeAdapter
	for _, mt := range []models.MediaType{models.MediaTypeFilm, models.MediaTypeTelevision} {
		if a, ok := table[mt]; ok {
			sources = append(sources, a)
		}
	}

	return &MediaService{
		client:   client,
		adapters: table,
		genres:   NewGenreAggregator(client, sources, logger),
		logger:   logger,
	}
}

// ProviderName returns the name of the catalog backend.
func (s *MediaService) ProviderName() string {
	return s.client.ServiceName()
}

// SupportedMediaTypes lists media types with a registered adapter, in the
// canonical media type order.
func (s *MediaService) SupportedMediaTypes() []models.MediaType {
	var out []models.MediaType
	for _, mt := range models.MediaTypes {
		if _, ok := s.adapters[mt]; ok {
			out = append(out, mt)
		}
	}
	return out
}

// Adapter returns a copy of the adapter registered for a media type.
func (s *MediaService) Adapter(mt models.MediaType) (domain.MediaTypeAdapter, bool) {
	a, ok := s.adapters[mt]
	if !ok {
		return domain.MediaTypeAdapter{}, false
	}
	return a.Clone(), true
}

// Genres returns the merged genre vocabulary.
func (s *MediaService) Genres(ctx context.Context) (*models.GenreList, error) {
	return s.genres.Genres(ctx)
}

// Discover fetches one page of media matching params.
func (s *MediaService) Discover(ctx context.Context, params DiscoverParams) (*models.MediaList, error) {
	adapter, ok := s.adapters[params.MediaType]
	if !ok {
		return nil, errors.Wrap(errors.ErrorTypeInvalidArgument,
			fmt.Sprintf("no adapter registered for %q", params.MediaType), domain.ErrUnsupportedMediaType)
	}

	page := params.Page
	if page == 0 {
		page = DefaultPage
	}
	maxResults := params.MaxResults
	if maxResults == 0 {
		maxResults = DefaultMaxResults
	}
	if page < 1 {
		return nil, errors.InvalidArgument("page must be 1 or greater")
	}
	if maxResults < 1 {
		return nil, errors.InvalidArgument("max_results must be 1 or greater")
	}

	query := buildQuery(adapter, params, page)

	data, err := s.client.Get(ctx, adapter.DiscoverEndpoint(), query)
	if err != nil {
		return nil, err
	}

	rawResults, ok := data["results"].([]any)
	if !ok {
		return nil, errors.UpstreamResponse(
			fmt.Sprintf("%s discover response has no results array", s.client.ServiceName()), nil)
	}

	records, rejected := adapter.Schema.Filter(rawResults)
	log := logger.FromContext(ctx, s.logger)
	for _, rej := range rejected {
		log.Debug("Dropped catalog record", interfaces.String("reason", rej.Error()))
	}

	items := make([]models.Media, 0, len(records))
	for _, rec := range records {
		items = append(items, toMedia(rec, adapter))
	}

	if len(items) > maxResults {
		items = items[:maxResults]
	}

	result := &models.MediaList{
		Results:      items,
		TotalResults: intOrZero(data["total_results"]),
		Page:         page,
		TotalPages:   intOrZero(data["total_pages"]),
	}

	log.Info("Discovered media",
		interfaces.String("media_type", string(params.MediaType)),
		interfaces.Int("page", page),
		interfaces.Int("returned", len(items)),
		interfaces.Int("dropped", len(rejected)))

	return result, nil
}

// buildQuery assembles the provider query parameters.
func buildQuery(adapter domain.MediaTypeAdapter, params DiscoverParams, page int) map[string]any {
	sortBy := DefaultSortBy
	if params.SortBy != nil {
		sortBy = *params.SortBy
	}

	query := map[string]any{
		"sort_by":       sortBy,
		"page":          page,
		"include_adult": false,
		"include_video": false,
	}
	if params.GenreID != nil {
		query["with_genres"] = *params.GenreID
	}
	if params.Year != nil {
		query[adapter.YearParam] = *params.Year
	}
	if params.Language != nil {
		query["with_original_language"] = *params.Language
	}
	return query
}

// toMedia maps a validated record onto the provider-agnostic model.
func toMedia(rec domain.Record, adapter domain.MediaTypeAdapter) models.Media {
	id, _ := rec.Int(domain.FieldID)
	m := models.Media{
		ID:        strconv.Itoa(id),
		MediaType: adapter.MediaType,
		GenreIDs:  []int{},
	}
	if title, ok := rec.String(adapter.TitleField); ok {
		m.Title = title
	}
	if date, ok := rec.String(adapter.DateField); ok {
		m.Date = models.ParseDate(date)
	}
	if rating, ok := rec.Float(domain.FieldVoteAverage); ok {
		m.Rating = &rating
	}
	if overview, ok := rec.String(domain.FieldOverview); ok {
		m.Description = &overview
	}
	if ids, ok := rec.IntList(domain.FieldGenreIDs); ok {
		m.GenreIDs = ids
	}
	return m
}

func intOrZero(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	}
	return 0
}
