package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/narwhalmedia/greenroom/internal/comparison/domain"
	"github.com/narwhalmedia/greenroom/pkg/errors"
	"github.com/narwhalmedia/greenroom/pkg/events"
	"github.com/narwhalmedia/greenroom/pkg/interfaces"
	"github.com/narwhalmedia/greenroom/pkg/logger"
	"github.com/narwhalmedia/greenroom/pkg/models"
)

// EventComparisonCompleted is published after every comparison run.
const EventComparisonCompleted = "comparison.completed"

// ComparisonService runs the same prompt against two LLM backends and reports
// both outcomes side by side.
type ComparisonService struct {
	sampler  Sampler
	client   LLMClient
	model    string
	eventBus interfaces.EventBus
	logger   interfaces.Logger
}

// NewComparisonService creates a comparison service. eventBus may be nil.
func NewComparisonService(
	sampler Sampler,
	client LLMClient,
	model string,
	eventBus interfaces.EventBus,
	logger interfaces.Logger,
) *ComparisonService {
	return &ComparisonService{
		sampler:  sampler,
		client:   client,
		model:    model,
		eventBus: eventBus,
		logger:   logger,
	}
}

// ResampleSource labels the resample backend's entry, e.g. "claude resample".
func (s *ComparisonService) ResampleSource() string {
	return strings.ToLower(s.sampler.Name()) + " resample"
}

// AlternativeSource labels the alternative backend's entry.
func (s *ComparisonService) AlternativeSource() string {
	return strings.ToLower(s.client.ServiceName()) + " alternative"
}

// Compare validates the inputs, then queries both backends concurrently. A
// failing backend is reported in its own entry and never affects the other.
func (s *ComparisonService) Compare(ctx context.Context, prompt string, temperature float64, maxTokens int) (*models.ComparisonResult, error) {
	if err := domain.ValidateRequest(prompt, temperature, maxTokens); err != nil {
		return nil, err
	}

	comparisonID := uuid.New()
	log := logger.FromContext(ctx, s.logger).WithFields(
		interfaces.String("comparison_id", comparisonID.String()))

	var (
		resampled, alternative      string
		resampleErr, alternativeErr error
	)

	// Neither branch returns an error to the group, so Wait never
	// short-circuits and each branch owns its result slot.
	var g errgroup.Group
	g.Go(func() error {
		resampled, resampleErr = s.Sample(ctx, domain.SamplingRequest{
			Prompt:      prompt,
			Temperature: temperature,
			MaxTokens:   maxTokens,
		})
		return nil
	})
	g.Go(func() error {
		alternative, alternativeErr = s.GenerateAlternative(ctx, prompt, temperature, maxTokens)
		return nil
	})
	_ = g.Wait()

	result := &models.ComparisonResult{
		Prompt: prompt,
		Responses: []models.ResponseEntry{
			entry(s.ResampleSource(), resampled, resampleErr),
			entry(s.AlternativeSource(), alternative, alternativeErr),
		},
	}

	if resampleErr != nil {
		log.Warn("Resample backend failed", interfaces.Error(resampleErr))
	}
	if alternativeErr != nil {
		log.Warn("Alternative backend failed", interfaces.Error(alternativeErr))
	}
	log.Info("Comparison completed",
		interfaces.Int("prompt_length", len(prompt)),
		interfaces.Int("failures", result.Failures()))

	s.publishCompleted(ctx, log, comparisonID, result)

	return result, nil
}

// Sample calls the sampling capability and returns its text. Any failure,
// including a panic or a non-text answer, is returned as SAMPLING_FAILURE.
func (s *ComparisonService) Sample(ctx context.Context, req domain.SamplingRequest) (text string, err error) {
	name := s.sampler.Name()
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = errors.SamplingFailure(fmt.Sprintf("%s sampling panicked", name), fmt.Errorf("%v", r))
		}
	}()

	content, err := s.sampler.Sample(ctx, req)
	if err != nil {
		if errors.IsSamplingFailure(err) {
			return "", err
		}
		return "", errors.SamplingFailure(fmt.Sprintf("%s API error", name), err)
	}

	textContent, ok := content.(domain.TextContent)
	if !ok {
		contentType := "<nil>"
		if content != nil {
			contentType = content.ContentType()
		}
		return "", errors.SamplingFailure(
			fmt.Sprintf("%s API returned unexpected content type: %s", name, contentType), nil)
	}
	return textContent.Text, nil
}

// GenerateAlternative asks the alternative backend for a completion. A body
// without a string "response" field yields empty text.
func (s *ComparisonService) GenerateAlternative(ctx context.Context, prompt string, temperature float64, maxTokens int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = errors.Wrap(errors.ErrorTypeInternal,
				fmt.Sprintf("%s client panicked", s.client.ServiceName()), fmt.Errorf("%v", r))
		}
	}()

	data, err := s.client.Generate(ctx, prompt, s.model, temperature, maxTokens)
	if err != nil {
		return "", err
	}
	response, _ := data["response"].(string)
	return response, nil
}

func entry(source, text string, err error) models.ResponseEntry {
	if err != nil {
		return models.FailedEntry(source, err)
	}
	return models.SucceededEntry(source, text)
}

func (s *ComparisonService) publishCompleted(ctx context.Context, log interfaces.Logger, id uuid.UUID, result *models.ComparisonResult) {
	if s.eventBus == nil {
		return
	}

	sources := make([]string, len(result.Responses))
	for i, r := range result.Responses {
		sources[i] = r.Source
	}

	event := events.NewAggregateEvent(EventComparisonCompleted, id.String(), map[string]interface{}{
		"prompt_length": len(result.Prompt),
		"sources":       sources,
		"failures":      result.Failures(),
	})
	if err := s.eventBus.Publish(ctx, event); err != nil {
		log.Error("Failed to publish comparison event", interfaces.Error(err))
	}
}
