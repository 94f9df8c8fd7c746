package models

// MediaType represents the type of media content.
type MediaType string

const (
	MediaTypeFilm       MediaType = "film"
	MediaTypeTelevision MediaType = "television"
	MediaTypePodcast    MediaType = "podcast"
	MediaTypeBook       MediaType = "book"
	MediaTypeMusic      MediaType = "music"
	MediaTypeGame       MediaType = "game"
)

// MediaTypes lists every media type the model knows about, whether or not a
// provider supports it.
var MediaTypes = []MediaType{
	MediaTypeFilm,
	MediaTypeTelevision,
	MediaTypePodcast,
	MediaTypeBook,
	MediaTypeMusic,
	MediaTypeGame,
}

// Valid reports whether t is one of the known media types.
func (t MediaType) Valid() bool {
	for _, known := range MediaTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Media is one normalized catalog entry, independent of the provider that
// produced it. Optional upstream values degrade to nil rather than failing.
type Media struct {
	ID          string    `json:"id"`
	MediaType   MediaType `json:"media_type"`
	Title       string    `json:"title"`
	Date        *Date     `json:"date"`
	Rating      *float64  `json:"rating"`
	Description *string   `json:"description"`
	GenreIDs    []int     `json:"genre_ids"`
}

// MediaList is one page of media results with provider pagination metadata.
type MediaList struct {
	Results      []Media `json:"results"`
	TotalResults int     `json:"total_results"`
	Page         int     `json:"page"`
	TotalPages   int     `json:"total_pages"`
}
