package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/narwhalmedia/greenroom/internal/comparison/domain"
	"github.com/narwhalmedia/greenroom/pkg/errors"
)

const (
	samplerName = "Claude"
	apiVersion  = "2023-06-01"
	maxBodySize = 10 << 20
)

// Sampler implements the sampling capability on top of the Messages API.
type Sampler struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewSampler creates a new Messages API sampler
func NewSampler(baseURL, apiKey, model string, timeout time.Duration) *Sampler {
	return &Sampler{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	System      string    `json:"system,omitempty"`
	Messages    []message `json:"messages"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
}

// Name labels this sampler in comparison results.
func (s *Sampler) Name() string {
	return samplerName
}

// Sample sends a single user message and returns the first content block.
func (s *Sampler) Sample(ctx context.Context, req domain.SamplingRequest) (domain.SamplingContent, error) {
	if s.apiKey == "" {
		return nil, errors.SamplingFailure("sampling API key not configured", nil)
	}

	payload, err := json.Marshal(messagesRequest{
		Model:       s.model,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		System:      req.SystemPrompt,
		Messages:    []message{{Role: "user", Content: req.Prompt}},
	})
	if err != nil {
		return nil, errors.SamplingFailure("encoding sampling request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.SamplingFailure("building sampling request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", s.apiKey)
	httpReq.Header.Set("anthropic-version", apiVersion)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.SamplingFailure(fmt.Sprintf("%s API unreachable", samplerName), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, errors.SamplingFailure("reading sampling response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.SamplingFailure(
			fmt.Sprintf("%s API error", samplerName), errors.UpstreamStatus(samplerName, resp.StatusCode, string(body)))
	}

	var decoded messagesResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, errors.SamplingFailure(fmt.Sprintf("%s API returned invalid JSON", samplerName), err)
	}
	if len(decoded.Content) == 0 {
		return nil, errors.SamplingFailure(fmt.Sprintf("%s API returned no content", samplerName), nil)
	}

	first := decoded.Content[0]
	if first.Type != "text" {
		return domain.OtherContent{Type: first.Type}, nil
	}
	return domain.TextContent{Text: first.Text}, nil
}
