package tools

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/language"

	"github.com/narwhalmedia/greenroom/internal/discovery/domain"
	"github.com/narwhalmedia/greenroom/internal/discovery/service"
	"github.com/narwhalmedia/greenroom/pkg/errors"
	"github.com/narwhalmedia/greenroom/pkg/models"
)

const (
	MinYear       = 1900
	MaxMaxResults = 100
)

// discoverTool builds the discovery tool for one media type.
func discoverTool(name, noun string, mt models.MediaType, media service.MediaServiceInterface) Tool {
	return Tool{
		Name: name,
		Description: fmt.Sprintf("Discover %s filtered by genre, year and original language, "+
			"sorted by popularity, rating or date.", noun),
		Handler: func(ctx context.Context, args Args) (any, error) {
			adapter, ok := media.Adapter(mt)
			if !ok {
				return nil, errors.Wrap(errors.ErrorTypeInvalidArgument,
					fmt.Sprintf("%s does not support %s", media.ProviderName(), mt), domain.ErrUnsupportedMediaType)
			}

			params, err := discoverParams(args, adapter)
			if err != nil {
				return nil, err
			}

			list, err := media.Discover(ctx, params)
			if err != nil {
				return nil, err
			}
			return formatMediaList(list, media.ProviderName()), nil
		},
	}
}

// discoverParams decodes and validates discovery arguments. Nothing is sent
// upstream unless every argument is valid.
func discoverParams(args Args, adapter domain.MediaTypeAdapter) (service.DiscoverParams, error) {
	params := service.DiscoverParams{MediaType: adapter.MediaType}

	var err error
	if params.GenreID, err = args.Int("genre_id"); err != nil {
		return params, err
	}
	if params.Year, err = args.Int("year"); err != nil {
		return params, err
	}
	if params.Language, err = args.String("language"); err != nil {
		return params, err
	}
	if params.SortBy, err = args.String("sort_by"); err != nil {
		return params, err
	}
	if params.Page, err = args.IntOr("page", service.DefaultPage); err != nil {
		return params, err
	}
	if params.MaxResults, err = args.IntOr("max_results", service.DefaultMaxResults); err != nil {
		return params, err
	}

	if params.Year != nil && *params.Year < MinYear {
		return params, errors.InvalidArgumentf("year must be %d or later", MinYear)
	}
	if params.Page < 1 {
		return params, errors.InvalidArgument("page must be 1 or greater")
	}
	if params.MaxResults < 1 || params.MaxResults > MaxMaxResults {
		return params, errors.InvalidArgumentf("max_results must be between 1 and %d", MaxMaxResults)
	}
	if params.SortBy != nil && !contains(adapter.SortOptions(), *params.SortBy) {
		return params, errors.InvalidArgumentf("sort_by must be one of: %s",
			strings.Join(adapter.SortOptions(), ", "))
	}
	if params.Language != nil && !validLanguage(*params.Language) {
		return params, errors.InvalidArgument("language must be a 2-character ISO 639-1 code (e.g., 'en', 'es', 'fr')")
	}

	return params, nil
}

// validLanguage accepts two-letter codes that x/text knows as a base language.
func validLanguage(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, r := range code {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return false
		}
	}
	_, err := language.ParseBase(code)
	return err == nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
