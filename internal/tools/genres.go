package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/narwhalmedia/greenroom/internal/comparison/domain"
	"github.com/narwhalmedia/greenroom/internal/comparison/service"
	discovery "github.com/narwhalmedia/greenroom/internal/discovery/service"
	"github.com/narwhalmedia/greenroom/pkg/interfaces"
	"github.com/narwhalmedia/greenroom/pkg/logger"
)

// Mood is a coarse tone bucket for genres.
type Mood string

const (
	MoodDark    Mood = "Dark"
	MoodLight   Mood = "Light"
	MoodSerious Mood = "Serious"
	MoodFun     Mood = "Fun"
	MoodOther   Mood = "Other"
)

// Moods lists every bucket in output order.
var Moods = []Mood{MoodDark, MoodLight, MoodSerious, MoodFun, MoodOther}

// GenreMoods maps well-known genre names to their mood. Names missing here
// are classified by the sampler.
var GenreMoods = map[string]Mood{
	"Horror":             MoodDark,
	"Thriller":           MoodDark,
	"Crime":              MoodDark,
	"Mystery":            MoodDark,
	"Comedy":             MoodLight,
	"Family":             MoodLight,
	"Kids":               MoodLight,
	"Animation":          MoodLight,
	"Romance":            MoodLight,
	"Documentary":        MoodSerious,
	"History":            MoodSerious,
	"War":                MoodSerious,
	"Drama":              MoodSerious,
	"News":               MoodSerious,
	"War & Politics":     MoodSerious,
	"Action":             MoodFun,
	"Adventure":          MoodFun,
	"Fantasy":            MoodFun,
	"Science Fiction":    MoodFun,
	"Action & Adventure": MoodFun,
	"Sci-Fi & Fantasy":   MoodFun,
}

const (
	simplifySystemPrompt = "You are a data formatter. Return only a clean, sorted list of genre names, nothing else."

	categorizeSystemPrompt = "You are a genre categorization system. Classify genres by mood/tone:\n" +
		"- Dark: suspenseful, scary, intense\n" +
		"- Light: uplifting, cheerful, entertaining\n" +
		"- Serious: educational, thought-provoking, heavy topics\n" +
		"- Fun: exciting, adventurous, escapist\n" +
		"Respond with only one word."
)

func listGenresTool(media discovery.MediaServiceInterface) Tool {
	return Tool{
		Name:        "list_genres",
		Description: "List every genre across films and television with its id and availability per media type.",
		Handler: func(ctx context.Context, _ Args) (any, error) {
			list, err := media.Genres(ctx)
			if err != nil {
				return nil, err
			}
			return formatGenres(list), nil
		},
	}
}

func listGenresSimplifiedTool(media discovery.MediaServiceInterface, sampler service.ComparisonServiceInterface) Tool {
	return Tool{
		Name:        "list_genres_simplified",
		Description: "Return the genre names as a sorted, comma-separated list.",
		Handler: func(ctx context.Context, _ Args) (any, error) {
			list, err := media.Genres(ctx)
			if err != nil {
				return nil, err
			}

			names := list.Names()
			sort.Strings(names)
			fallback := strings.Join(names, ", ")

			data, err := json.Marshal(formatGenres(list))
			if err != nil {
				return fallback, nil
			}

			text, err := sampler.Sample(ctx, domain.SamplingRequest{
				Prompt:       "Extract just the genre names from this data and return as a simple sorted comma-separated list:\n" + string(data),
				SystemPrompt: simplifySystemPrompt,
				Temperature:  0,
				MaxTokens:    500,
			})
			if err != nil {
				logger.FromContext(ctx, nil).Warn("Sampling failed, using fallback", interfaces.Error(err))
				return fallback, nil
			}
			return text, nil
		},
	}
}

func categorizeGenresTool(media discovery.MediaServiceInterface, sampler service.ComparisonServiceInterface) Tool {
	return Tool{
		Name:        "categorize_genres",
		Description: "Group genre names by mood: Dark, Light, Serious, Fun or Other.",
		Handler: func(ctx context.Context, _ Args) (any, error) {
			list, err := media.Genres(ctx)
			if err != nil {
				return nil, err
			}

			buckets := make(map[Mood][]any, len(Moods))
			for _, m := range Moods {
				buckets[m] = []any{}
			}

			names := list.Names()
			sort.Strings(names)
			for _, name := range names {
				mood := categorize(ctx, sampler, name)
				buckets[mood] = append(buckets[mood], name)
			}

			out := make(map[string]any, len(buckets))
			for mood, names := range buckets {
				out[string(mood)] = names
			}
			return out, nil
		},
	}
}

// categorize resolves one genre's mood. Unknown names go to the sampler;
// failures and unrecognized answers land in Other.
func categorize(ctx context.Context, sampler service.ComparisonServiceInterface, name string) Mood {
	if mood, ok := GenreMoods[name]; ok {
		return mood
	}

	text, err := sampler.Sample(ctx, domain.SamplingRequest{
		Prompt: fmt.Sprintf("Categorize the genre '%s' into exactly one of these moods: Dark, Light, Serious, or Fun. "+
			"Respond with only the single mood word, nothing else.", name),
		SystemPrompt: categorizeSystemPrompt,
		Temperature:  0,
		MaxTokens:    10,
	})
	if err != nil {
		logger.FromContext(ctx, nil).Warn("Genre categorization failed",
			interfaces.String("genre", name), interfaces.Error(err))
		return MoodOther
	}

	answer := Mood(strings.TrimSpace(text))
	for _, m := range Moods {
		if answer == m {
			return m
		}
	}
	return MoodOther
}
