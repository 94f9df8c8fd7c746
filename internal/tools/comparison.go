package tools

import (
	"context"

	"github.com/narwhalmedia/greenroom/internal/comparison/domain"
	"github.com/narwhalmedia/greenroom/internal/comparison/service"
	"github.com/narwhalmedia/greenroom/pkg/errors"
)

func compareTool(comparison service.ComparisonServiceInterface) Tool {
	return Tool{
		Name:        "compare_llm_responses",
		Description: "Send the same prompt to the resample and alternative backends and return both answers side by side.",
		Handler: func(ctx context.Context, args Args) (any, error) {
			prompt, err := args.String("prompt")
			if err != nil {
				return nil, err
			}
			if prompt == nil {
				return nil, errors.InvalidArgument("prompt cannot be empty")
			}
			temperature, err := args.FloatOr("temperature", domain.DefaultTemperature)
			if err != nil {
				return nil, err
			}
			maxTokens, err := args.IntOr("max_tokens", domain.DefaultMaxTokens)
			if err != nil {
				return nil, err
			}

			result, err := comparison.Compare(ctx, *prompt, temperature, maxTokens)
			if err != nil {
				return nil, err
			}
			return formatComparison(result), nil
		},
	}
}
