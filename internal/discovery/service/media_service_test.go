package service_test

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/narwhalmedia/greenroom/internal/discovery/domain"
	"github.com/narwhalmedia/greenroom/internal/discovery/service"
	"github.com/narwhalmedia/greenroom/pkg/errors"
	"github.com/narwhalmedia/greenroom/pkg/logger"
	"github.com/narwhalmedia/greenroom/pkg/models"
	"github.com/narwhalmedia/greenroom/test/mocks"
)

type MediaServiceTestSuite struct {
	suite.Suite

	ctx     context.Context
	client  *mocks.MockCatalogClient
	service *service.MediaService
}

func (suite *MediaServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.client = new(mocks.MockCatalogClient)
	suite.client.On("ServiceName").Return("TMDB").Maybe()
	suite.service = service.NewMediaService(suite.client, logger.NewNoop())
}

func (suite *MediaServiceTestSuite) TearDownTest() {
	suite.client.AssertExpectations(suite.T())
}

func (suite *MediaServiceTestSuite) body(s string) map[string]any {
	var out map[string]any
	suite.Require().NoError(json.Unmarshal([]byte(s), &out))
	return out
}

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

func (suite *MediaServiceTestSuite) TestDiscoverFilms() {
	suite.client.On("Get", suite.ctx, "/discover/movie", map[string]any{
		"sort_by":                "vote_average.desc",
		"page":                   1,
		"include_adult":          false,
		"include_video":          false,
		"with_genres":            28,
		"primary_release_year":   2020,
		"with_original_language": "en",
	}).Return(suite.body(`{
		"page": 1,
		"total_results": 120,
		"total_pages": 6,
		"results": [
			{"id": 10, "title": "Good", "release_date": "2020-05-01", "vote_average": 7.2, "overview": "ok", "genre_ids": [28]},
			{"title": "missing id"},
			{"id": 11, "title": "Bad date", "release_date": "soon"},
			{"id": 12, "release_date": ""}
		]
	}`), nil)

	list, err := suite.service.Discover(suite.ctx, service.DiscoverParams{
		MediaType: models.MediaTypeFilm,
		GenreID:   intPtr(28),
		Year:      intPtr(2020),
		Language:  strPtr("en"),
		SortBy:    strPtr("vote_average.desc"),
	})
	suite.Require().NoError(err)

	suite.Equal(120, list.TotalResults)
	suite.Equal(6, list.TotalPages)
	suite.Equal(1, list.Page)
	suite.Require().Len(list.Results, 3)

	first := list.Results[0]
	suite.Equal("10", first.ID)
	suite.Equal(models.MediaTypeFilm, first.MediaType)
	suite.Equal("Good", first.Title)
	suite.Require().NotNil(first.Date)
	suite.Equal("2020-05-01", first.Date.String())
	suite.Require().NotNil(first.Rating)
	suite.Equal(7.2, *first.Rating)
	suite.Equal([]int{28}, first.GenreIDs)

	suite.Nil(list.Results[1].Date)
	suite.Nil(list.Results[2].Date)
	suite.Equal("", list.Results[2].Title)
	suite.Nil(list.Results[2].Rating)
	suite.Nil(list.Results[2].Description)
	suite.Equal([]int{}, list.Results[2].GenreIDs)
}

func (suite *MediaServiceTestSuite) TestDiscoverTelevisionUsesNativeFields() {
	suite.client.On("Get", suite.ctx, "/discover/tv", map[string]any{
		"sort_by":             "popularity.desc",
		"page":                3,
		"include_adult":       false,
		"include_video":       false,
		"first_air_date_year": 2019,
	}).Return(suite.body(`{"page": 3, "results": [{"id": 1399, "name": "Thrones", "first_air_date": "2011-04-17"}]}`), nil)

	list, err := suite.service.Discover(suite.ctx, service.DiscoverParams{
		MediaType: models.MediaTypeTelevision,
		Year:      intPtr(2019),
		Page:      3,
	})
	suite.Require().NoError(err)
	suite.Require().Len(list.Results, 1)
	suite.Equal("Thrones", list.Results[0].Title)
	suite.Equal("2011-04-17", list.Results[0].Date.String())
	suite.Equal(models.MediaTypeTelevision, list.Results[0].MediaType)
	suite.Equal(0, list.TotalResults)
}

func (suite *MediaServiceTestSuite) TestDiscoverTruncatesToMaxResults() {
	suite.client.On("Get", suite.ctx, "/discover/movie", mock.Anything).
		Return(suite.body(`{"results": [{"id": 1}, {"id": 2}, {"id": 3}, {"id": 4}]}`), nil)

	list, err := suite.service.Discover(suite.ctx, service.DiscoverParams{
		MediaType:  models.MediaTypeFilm,
		MaxResults: 2,
	})
	suite.Require().NoError(err)
	suite.Require().Len(list.Results, 2)
	suite.Equal("1", list.Results[0].ID)
	suite.Equal("2", list.Results[1].ID)
}

func (suite *MediaServiceTestSuite) TestDiscoverUnsupportedMediaType() {
	_, err := suite.service.Discover(suite.ctx, service.DiscoverParams{MediaType: models.MediaTypePodcast})
	suite.Require().Error(err)
	suite.True(errors.IsInvalidArgument(err))
	suite.True(stderrors.Is(err, domain.ErrUnsupportedMediaType))
	suite.client.AssertNotCalled(suite.T(), "Get", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MediaServiceTestSuite) TestDiscoverRejectsNegativePage() {
	_, err := suite.service.Discover(suite.ctx, service.DiscoverParams{MediaType: models.MediaTypeFilm, Page: -1})
	suite.Require().Error(err)
	suite.True(errors.IsInvalidArgument(err))
}

func (suite *MediaServiceTestSuite) TestDiscoverMissingResults() {
	suite.client.On("Get", suite.ctx, "/discover/movie", mock.Anything).
		Return(suite.body(`{"status_message": "weird"}`), nil)

	_, err := suite.service.Discover(suite.ctx, service.DiscoverParams{MediaType: models.MediaTypeFilm})
	suite.Require().Error(err)
	suite.True(errors.IsUpstreamResponse(err))
}

func (suite *MediaServiceTestSuite) TestDiscoverPropagatesClientError() {
	suite.client.On("Get", suite.ctx, "/discover/movie", mock.Anything).
		Return(nil, errors.UpstreamConnection("TMDB connection error", stderrors.New("refused")))

	_, err := suite.service.Discover(suite.ctx, service.DiscoverParams{MediaType: models.MediaTypeFilm})
	suite.Require().Error(err)
	suite.True(errors.IsUpstreamConnection(err))
}

func (suite *MediaServiceTestSuite) TestGenresMergeByName() {
	suite.client.On("Get", suite.ctx, "/genre/movie/list", map[string]any{}).
		Return(suite.body(`{"genres": [{"id": 28, "name": "Action"}, {"id": 9648, "name": "Mystery"}, {"id": 1}]}`), nil)
	suite.client.On("Get", suite.ctx, "/genre/tv/list", map[string]any{}).
		Return(suite.body(`{"genres": [{"id": 9999, "name": "Mystery"}, {"id": 10759, "name": "Action & Adventure"}]}`), nil)

	list, err := suite.service.Genres(suite.ctx)
	suite.Require().NoError(err)

	suite.Equal([]models.Genre{
		{ID: 28, Name: "Action", HasFilms: true},
		{ID: 9648, Name: "Mystery", HasFilms: true, HasTVShows: true},
		{ID: 10759, Name: "Action & Adventure", HasTVShows: true},
	}, list.Genres)

	again, err := suite.service.Genres(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(list, again)
}

func (suite *MediaServiceTestSuite) TestGenresMissingFieldIsEmpty() {
	suite.client.On("Get", suite.ctx, "/genre/movie/list", mock.Anything).Return(suite.body(`{}`), nil)
	suite.client.On("Get", suite.ctx, "/genre/tv/list", mock.Anything).
		Return(suite.body(`{"genres": [{"id": 18, "name": "Drama"}]}`), nil)

	list, err := suite.service.Genres(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal([]models.Genre{{ID: 18, Name: "Drama", HasTVShows: true}}, list.Genres)
}

func (suite *MediaServiceTestSuite) TestGenresNonArrayField() {
	suite.client.On("Get", suite.ctx, "/genre/movie/list", mock.Anything).
		Return(suite.body(`{"genres": "nope"}`), nil)

	_, err := suite.service.Genres(suite.ctx)
	suite.Require().Error(err)
	suite.True(errors.IsUpstreamResponse(err))
}

func (suite *MediaServiceTestSuite) TestGenresPropagatesError() {
	suite.client.On("Get", suite.ctx, "/genre/movie/list", mock.Anything).
		Return(nil, errors.UpstreamStatus("TMDB", 401, "Invalid API key"))

	_, err := suite.service.Genres(suite.ctx)
	suite.Require().Error(err)
	suite.True(errors.IsUpstreamResponse(err))
	suite.client.AssertNotCalled(suite.T(), "Get", suite.ctx, "/genre/tv/list", mock.Anything)
}

func (suite *MediaServiceTestSuite) TestSupportedMediaTypes() {
	suite.Equal([]models.MediaType{models.MediaTypeFilm, models.MediaTypeTelevision}, suite.service.SupportedMediaTypes())
	suite.Equal("TMDB", suite.service.ProviderName())

	adapter, ok := suite.service.Adapter(models.MediaTypeTelevision)
	suite.True(ok)
	suite.Equal("tv", adapter.Endpoint)
}

func (suite *MediaServiceTestSuite) TestCustomAdapterTable() {
	table := map[models.MediaType]domain.MediaTypeAdapter{
		models.MediaTypeFilm: domain.TMDBFilmAdapter(),
	}
	svc := service.NewMediaServiceWithAdapters(suite.client, table, logger.NewNoop())
	delete(table, models.MediaTypeFilm)

	suite.Equal([]models.MediaType{models.MediaTypeFilm}, svc.SupportedMediaTypes())
}

func (suite *MediaServiceTestSuite) TestDiscoverIsIdempotent() {
	const raw = `{
		"page": 1,
		"total_results": 2,
		"total_pages": 1,
		"results": [
			{"id": 10, "title": "Good", "release_date": "2020-05-01", "vote_average": 7.2, "genre_ids": [28, 12]},
			{"id": "bad"},
			{"id": 11, "title": "No date", "release_date": ""}
		]
	}`
	body := suite.body(raw)
	snapshot := suite.body(raw)
	suite.client.On("Get", suite.ctx, "/discover/movie", mock.Anything).Return(body, nil).Twice()

	params := service.DiscoverParams{MediaType: models.MediaTypeFilm, MaxResults: 5}
	first, err := suite.service.Discover(suite.ctx, params)
	suite.Require().NoError(err)
	second, err := suite.service.Discover(suite.ctx, params)
	suite.Require().NoError(err)

	suite.Equal(first, second)
	suite.Len(first.Results, 2)
	suite.Equal(snapshot, body)
}

func (suite *MediaServiceTestSuite) TestAdapterReturnsCopy() {
	adapter, ok := suite.service.Adapter(models.MediaTypeFilm)
	suite.Require().True(ok)
	adapter.Schema.Fields[0].Required = false
	adapter.DateSortPrefix = "changed"

	again, ok := suite.service.Adapter(models.MediaTypeFilm)
	suite.Require().True(ok)
	suite.True(again.Schema.Fields[0].Required)
	suite.Contains(again.SortOptions(), "release_date.desc")

	_, ok = suite.service.Adapter(models.MediaTypeBook)
	suite.False(ok)
}

func TestMediaServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MediaServiceTestSuite))
}
