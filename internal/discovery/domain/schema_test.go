package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/greenroom/internal/discovery/domain"
	"github.com/narwhalmedia/greenroom/pkg/models"
)

func decode(t *testing.T, s string) []any {
	t.Helper()
	var out []any
	require.NoError(t, json.Unmarshal([]byte(s), &out))
	return out
}

func TestSchema_FilterKeepsOrderAndDropsInvalid(t *testing.T) {
	items := decode(t, `[
		{"id": 1, "title": "A"},
		{"title": "no id"},
		"not an object",
		{"id": "2"},
		{"id": 3, "vote_average": 8, "genre_ids": [1, 2]},
		{"id": 4.5},
		{"id": 5, "title": null, "overview": null}
	]`)

	records, rejected := domain.TMDBFilmAdapter().Schema.Filter(items)
	require.Len(t, records, 3)
	require.Len(t, rejected, 4)

	ids := make([]int, len(records))
	for i, r := range records {
		ids[i], _ = r.Int(domain.FieldID)
	}
	assert.Equal(t, []int{1, 3, 5}, ids)

	rating, ok := records[1].Float(domain.FieldVoteAverage)
	assert.True(t, ok)
	assert.Equal(t, 8.0, rating)

	genreIDs, ok := records[1].IntList(domain.FieldGenreIDs)
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2}, genreIDs)

	_, ok = records[2].String("title")
	assert.False(t, ok)

	assert.Equal(t, 1, rejected[0].Index)
	assert.Equal(t, "id", rejected[0].Field)
	assert.Equal(t, 2, rejected[1].Index)
	assert.Contains(t, rejected[1].Error(), "expected object")
}

func TestSchema_WrongOptionalTypeRejects(t *testing.T) {
	_, rej := domain.TMDBFilmAdapter().Schema.Validate(map[string]any{
		"id":        float64(1),
		"genre_ids": []any{float64(1), "two"},
	})
	require.NotNil(t, rej)
	assert.Equal(t, "genre_ids", rej.Field)
	assert.Contains(t, rej.Error(), "expected list[int]")
}

func TestGenreSchema_RequiresName(t *testing.T) {
	records, rejected := domain.GenreSchema().Filter(decode(t, `[{"id": 28, "name": "Action"}, {"id": 12}]`))
	assert.Len(t, records, 1)
	assert.Len(t, rejected, 1)
}

func TestAdapters(t *testing.T) {
	adapters := domain.TMDBAdapters()
	require.Len(t, adapters, 2)

	film := adapters[models.MediaTypeFilm]
	assert.Equal(t, "/discover/movie", film.DiscoverEndpoint())
	assert.Equal(t, "/genre/movie/list", film.GenreEndpoint())
	assert.Contains(t, film.SortOptions(), "release_date.asc")
	assert.NotContains(t, film.SortOptions(), "first_air_date.asc")

	tv := adapters[models.MediaTypeTelevision]
	assert.Equal(t, "/discover/tv", tv.DiscoverEndpoint())
	assert.Equal(t, "first_air_date_year", tv.YearParam)
	assert.Equal(t, "name", tv.TitleField)
	assert.Contains(t, tv.SortOptions(), "first_air_date.desc")
	assert.Len(t, tv.SortOptions(), 6)

	// The table is a fresh copy each call.
	delete(adapters, models.MediaTypeFilm)
	assert.Len(t, domain.TMDBAdapters(), 2)
}

func TestAdapterCopiesAreIndependent(t *testing.T) {
	film := domain.TMDBFilmAdapter()
	film.Schema.Fields[0].Required = false
	film.Endpoint = "changed"
	assert.True(t, domain.TMDBFilmAdapter().Schema.Fields[0].Required)
	assert.Equal(t, "movie", domain.TMDBFilmAdapter().Endpoint)

	original := domain.TMDBTelevisionAdapter()
	clone := original.Clone()
	clone.Schema.Fields[0].Name = "changed"
	assert.Equal(t, domain.FieldID, original.Schema.Fields[0].Name)

	genres := domain.GenreSchema()
	genres.Fields = genres.Fields[:0]
	assert.Len(t, domain.GenreSchema().Fields, 2)
}
