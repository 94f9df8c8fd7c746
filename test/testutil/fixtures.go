package testutil

import (
	"strconv"

	"github.com/narwhalmedia/greenroom/pkg/models"
)

// CreateTestGenres returns a small merged vocabulary covering both media
// types, a film-only genre and a television-only genre.
func CreateTestGenres() *models.GenreList {
	return &models.GenreList{Genres: []models.Genre{
		{ID: 35, Name: "Comedy", HasFilms: true, HasTVShows: true},
		{ID: 28, Name: "Action", HasFilms: true},
		{ID: 37, Name: "Western", HasFilms: true, HasTVShows: true},
		{ID: 10764, Name: "Reality", HasTVShows: true},
	}}
}

// CreateTestFilm creates a film with every optional field set.
func CreateTestFilm(id int, title, date string) models.Media {
	rating := 7.5
	overview := title + " overview"
	return models.Media{
		ID:          strconv.Itoa(id),
		MediaType:   models.MediaTypeFilm,
		Title:       title,
		Date:        models.ParseDate(date),
		Rating:      &rating,
		Description: &overview,
		GenreIDs:    []int{18},
	}
}

// CreateBareMedia creates a record with only the required id set.
func CreateBareMedia(id int, mt models.MediaType) models.Media {
	return models.Media{
		ID:        strconv.Itoa(id),
		MediaType: mt,
		GenreIDs:  []int{},
	}
}

// CreateTestComparison builds a result with a successful resample and a
// failed alternative.
func CreateTestComparison(prompt, text, failure string) *models.ComparisonResult {
	return &models.ComparisonResult{
		Prompt: prompt,
		Responses: []models.ResponseEntry{
			models.SucceededEntry("claude resample", text),
			{Source: "ollama alternative", Error: &failure},
		},
	}
}
