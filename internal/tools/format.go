package tools

import "github.com/narwhalmedia/greenroom/pkg/models"

func formatMediaList(list *models.MediaList, provider string) map[string]any {
	results := make([]any, 0, len(list.Results))
	for _, m := range list.Results {
		results = append(results, formatMedia(m))
	}
	return map[string]any{
		"results":       results,
		"total_results": list.TotalResults,
		"page":          list.Page,
		"total_pages":   list.TotalPages,
		"provider":      provider,
	}
}

func formatMedia(m models.Media) map[string]any {
	out := map[string]any{
		"id":          m.ID,
		"media_type":  string(m.MediaType),
		"title":       m.Title,
		"date":        nil,
		"rating":      nil,
		"description": nil,
	}
	if m.Date != nil {
		out["date"] = m.Date.String()
	}
	if m.Rating != nil {
		out["rating"] = *m.Rating
	}
	if m.Description != nil {
		out["description"] = *m.Description
	}

	ids := make([]any, len(m.GenreIDs))
	for i, id := range m.GenreIDs {
		ids[i] = id
	}
	out["genre_ids"] = ids
	return out
}

func formatGenres(list *models.GenreList) map[string]any {
	out := make(map[string]any, len(list.Genres))
	for _, g := range list.Genres {
		out[g.Name] = map[string]any{
			"id":           g.ID,
			"has_films":    g.HasFilms,
			"has_tv_shows": g.HasTVShows,
		}
	}
	return out
}

func formatComparison(result *models.ComparisonResult) map[string]any {
	responses := make([]any, 0, len(result.Responses))
	for _, r := range result.Responses {
		entry := map[string]any{
			"source": r.Source,
			"text":   nil,
			"error":  nil,
			"length": r.Length,
		}
		if r.Text != nil {
			entry["text"] = *r.Text
		}
		if r.Error != nil {
			entry["error"] = *r.Error
		}
		responses = append(responses, entry)
	}
	return map[string]any{
		"prompt":    result.Prompt,
		"responses": responses,
	}
}
