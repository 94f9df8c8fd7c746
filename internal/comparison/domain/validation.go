package domain

import (
	"strings"

	"github.com/narwhalmedia/greenroom/pkg/errors"
)

const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 500

	MinTemperature = 0.0
	MaxTemperature = 2.0
	MinMaxTokens   = 1
	MaxMaxTokens   = 4000
)

// ValidateRequest checks comparison inputs. It never touches the network.
func ValidateRequest(prompt string, temperature float64, maxTokens int) error {
	if strings.TrimSpace(prompt) == "" {
		return errors.InvalidArgument("prompt cannot be empty")
	}
	// Written so NaN fails as well.
	if !(temperature >= MinTemperature && temperature <= MaxTemperature) {
		return errors.InvalidArgumentf("temperature must be between %g and %g, got %g", MinTemperature, MaxTemperature, temperature)
	}
	if maxTokens < MinMaxTokens || maxTokens > MaxMaxTokens {
		return errors.InvalidArgumentf("max_tokens must be between %d and %d, got %d", MinMaxTokens, MaxMaxTokens, maxTokens)
	}
	return nil
}
