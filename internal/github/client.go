package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Fuabioo/ghmcp/internal/errors"
)

const (
	// DefaultBaseURL is the root URL of the public GitHub REST API.
	DefaultBaseURL = "https://api.github.com"

	// DefaultUserAgent identifies ghmcp when no user agent is configured.
	DefaultUserAgent = "ghmcp"

	acceptHeader = "application/vnd.github.v3+json"
)

// Config holds configuration for creating a Client.
type Config struct {
	// BaseURL is prefixed to relative endpoints. Defaults to DefaultBaseURL.
	BaseURL string

	// Token is sent as a bearer credential on every request. Required.
	Token string

	// UserAgent defaults to DefaultUserAgent.
	UserAgent string

	// HTTPClient defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Response is one upstream reply. Value holds the decoded JSON document,
// or the body as a string when it is not JSON (raw file blobs, for example).
type Response struct {
	Body  []byte
	Value any
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Fetcher performs a single GET against the GitHub API.
type Fetcher interface {
	FetchJSON(ctx context.Context, endpoint string) (*Response, error)
}

// Client is a minimal GitHub REST client: one authenticated GET per call,
// no retries, no pagination, no status code interpretation.
type Client struct {
	baseURL    string
	authHeader string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Client from the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.MissingToken()
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    baseURL,
		authHeader: "Bearer " + cfg.Token,
		userAgent:  userAgent,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// FetchJSON issues a GET for endpoint and returns the whole body. The
// endpoint is either a path under the API root ("/user") or an absolute URL.
//
// Only transport failures are returned as errors. GitHub's error replies
// (404, 401, ...) come back as ordinary responses; see UpstreamError.
func (c *Client) FetchJSON(ctx context.Context, endpoint string) (*Response, error) {
	url := c.resolve(endpoint)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.UpstreamUnreachable(endpoint, err)
	}

	request.Header.Set("Authorization", c.authHeader)
	request.Header.Set("Accept", acceptHeader)
	request.Header.Set("User-Agent", c.userAgent)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, errors.UpstreamUnreachable(endpoint, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, errors.UpstreamUnreachable(endpoint, fmt.Errorf("reading response body: %w", err))
	}

	c.logger.Debug("github request",
		"endpoint", endpoint,
		"status", response.StatusCode,
		"bytes", len(body),
	)

	return NewResponse(body), nil
}

// resolve turns an endpoint into an absolute URL.
func (c *Client) resolve(endpoint string) string {
	if strings.HasPrefix(endpoint, "https://") || strings.HasPrefix(endpoint, "http://") {
		return endpoint
	}
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return c.baseURL + endpoint
}

// NewResponse wraps a body, decoding it as JSON when possible.
func NewResponse(body []byte) *Response {
	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		value = string(body)
	}
	return &Response{Body: body, Value: value}
}
