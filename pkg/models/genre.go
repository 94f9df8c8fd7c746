package models

// Genre is a categorization tag merged across media types. Name is the merge
// key; ID is whichever provider vocabulary contributed the name first.
type Genre struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	HasFilms   bool   `json:"has_films"`
	HasTVShows bool   `json:"has_tv_shows"`
}

// GenreList is the merged genre vocabulary in insertion order.
type GenreList struct {
	Genres []Genre `json:"genres"`
}

// Names returns the genre names in list order.
func (l *GenreList) Names() []string {
	names := make([]string, len(l.Genres))
	for i, g := range l.Genres {
		names[i] = g.Name
	}
	return names
}
