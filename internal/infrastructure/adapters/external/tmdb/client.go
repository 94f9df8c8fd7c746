package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/narwhalmedia/greenroom/pkg/errors"
)

const serviceName = "TMDB"

// maxBodySize caps how much of a catalog response is read.
const maxBodySize = 10 << 20

// Client is a minimal TMDB v3 API client. It returns decoded JSON objects and
// leaves interpretation to the discovery service.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new TMDB client
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ServiceName returns the provider name used in error messages and tool output.
func (c *Client) ServiceName() string {
	return serviceName
}

// Get issues a GET to endpoint with params plus the API key and returns the
// decoded JSON object.
func (c *Client) Get(ctx context.Context, endpoint string, params map[string]any) (map[string]any, error) {
	query := url.Values{}
	query.Set("api_key", c.apiKey)
	for _, key := range sortedKeys(params) {
		query.Set(key, encodeParam(params[key]))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.UpstreamConnection(fmt.Sprintf("%s request could not be built", serviceName), err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.UpstreamConnection(fmt.Sprintf("%s connection error", serviceName), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, errors.UpstreamConnection(fmt.Sprintf("%s response could not be read", serviceName), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.UpstreamStatus(serviceName, resp.StatusCode, string(body))
	}

	return decodeObject(body)
}

func decodeObject(body []byte) (map[string]any, error) {
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

func encodeParam(v any) string {
	switch p := v.(type) {
	case string:
		return p
	case bool:
		return strconv.FormatBool(p)
	case int:
		return strconv.Itoa(p)
	case float64:
		return strconv.FormatFloat(p, 'f', -1, 64)
	default:
		return fmt.Sprint(p)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
