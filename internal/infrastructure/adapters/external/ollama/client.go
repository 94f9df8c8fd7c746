package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/narwhalmedia/greenroom/pkg/errors"
)

const serviceName = "Ollama"

const maxBodySize = 10 << 20

// Client talks to the Ollama generate endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Ollama client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

// ServiceName returns the backend name used in error messages and source labels.
func (c *Client) ServiceName() string {
	return serviceName
}

// Generate runs a single non-streaming completion and returns the decoded
// JSON object.
func (c *Client) Generate(ctx context.Context, prompt, model string, temperature float64, maxTokens int) (map[string]any, error) {
	payload, err := json.Marshal(generateRequest{
		Model:  model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: temperature,
			NumPredict:  maxTokens,
		},
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrorTypeInternal, "encoding generate request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.UpstreamConnection(c.connectionMessage(), err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.UpstreamConnection(c.connectionMessage(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, errors.UpstreamConnection(c.connectionMessage(), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.UpstreamStatus(serviceName, resp.StatusCode, string(body))
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, errors.UpstreamResponse(fmt.Sprintf("%s API returned invalid JSON", serviceName), err)
	}
	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, errors.UpstreamResponse(
			fmt.Sprintf("%s API returned unexpected type: %T", serviceName, decoded), nil)
	}
	return obj, nil
}

func (c *Client) connectionMessage() string {
	return fmt.Sprintf("failed to connect to %s API at %s, is the %s server running?", serviceName, c.baseURL, serviceName)
}
