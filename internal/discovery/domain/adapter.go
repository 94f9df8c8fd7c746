package domain

import "github.com/narwhalmedia/greenroom/pkg/models"

// Field names shared by every TMDB media schema.
const (
	FieldID          = "id"
	FieldName        = "name"
	FieldVoteAverage = "vote_average"
	FieldOverview    = "overview"
	FieldGenreIDs    = "genre_ids"
)

// MediaTypeAdapter maps one media type onto a provider's native schema.
// Holders hand out clones so a caller cannot change a shared table.
type MediaTypeAdapter struct {
	MediaType      models.MediaType
	Endpoint       string // "movie" or "tv"
	YearParam      string // discover query parameter filtering by year
	TitleField     string
	DateField      string
	DateSortPrefix string
	Schema         Schema
}

// SortOptions lists the sort keys the provider accepts for this media type.
func (a MediaTypeAdapter) SortOptions() []string {
	return []string{
		"popularity.desc", "popularity.asc",
		"vote_average.desc", "vote_average.asc",
		a.DateSortPrefix + ".desc", a.DateSortPrefix + ".asc",
	}
}

// Clone returns a copy that shares no slices with a.
func (a MediaTypeAdapter) Clone() MediaTypeAdapter {
	a.Schema.Fields = append([]FieldSpec(nil), a.Schema.Fields...)
	return a
}

// DiscoverEndpoint is the catalog path used for discovery.
func (a MediaTypeAdapter) DiscoverEndpoint() string {
	return "/discover/" + a.Endpoint
}

// GenreEndpoint is the catalog path of the genre vocabulary.
func (a MediaTypeAdapter) GenreEndpoint() string {
	return "/genre/" + a.Endpoint + "/list"
}

func mediaSchema(name, titleField, dateField string) Schema {
	return Schema{
		Name: name,
		Fields: []FieldSpec{
			{Name: FieldID, Kind: KindInt, Required: true},
			{Name: titleField, Kind: KindString},
			{Name: dateField, Kind: KindString},
			{Name: FieldVoteAverage, Kind: KindFloat},
			{Name: FieldOverview, Kind: KindString},
			{Name: FieldGenreIDs, Kind: KindIntList},
		},
	}
}

// GenreSchema validates TMDB genre records; both fields are required.
func GenreSchema() Schema {
	return Schema{
		Name: "tmdb_genre",
		Fields: []FieldSpec{
			{Name: FieldID, Kind: KindInt, Required: true},
			{Name: FieldName, Kind: KindString, Required: true},
		},
	}
}

// TMDBFilmAdapter describes TMDB movies.
func TMDBFilmAdapter() MediaTypeAdapter {
	return MediaTypeAdapter{
		MediaType:      models.MediaTypeFilm,
		Endpoint:       "movie",
		YearParam:      "primary_release_year",
		TitleField:     "title",
		DateField:      "release_date",
		DateSortPrefix: "release_date",
		Schema:         mediaSchema("tmdb_film", "title", "release_date"),
	}
}

// TMDBTelevisionAdapter describes TMDB TV shows.
func TMDBTelevisionAdapter() MediaTypeAdapter {
	return MediaTypeAdapter{
		MediaType:      models.MediaTypeTelevision,
		Endpoint:       "tv",
		YearParam:      "first_air_date_year",
		TitleField:     "name",
		DateField:      "first_air_date",
		DateSortPrefix: "first_air_date",
		Schema:         mediaSchema("tmdb_television", "name", "first_air_date"),
	}
}

// TMDBAdapters returns a fresh adapter table for the TMDB provider.
func TMDBAdapters() map[models.MediaType]MediaTypeAdapter {
	return map[models.MediaType]MediaTypeAdapter{
		models.MediaTypeFilm:       TMDBFilmAdapter(),
		models.MediaTypeTelevision: TMDBTelevisionAdapter(),
	}
}
