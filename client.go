package pxshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const (
	defaultBaseURL        = "https://api.pxshot.com"
	defaultTimeoutSeconds = 60
)

// ClientConfig configures a Client. APIKey is required; everything else has
// a sensible default. The config is copied at construction and never read
// again, so mutating it afterwards has no effect.
type ClientConfig struct {
	APIKey         string      // Required: Pxshot API key
	BaseURL        string      // API base URL (default: https://api.pxshot.com)
	TimeoutSeconds int         // Request timeout (default: 60)
	UserAgent      string      // Custom User-Agent (default: pxshot-go/<version>)
	Logger         *log.Logger // Optional: request/response logging; nil disables logging
}

// Client is a Pxshot API client. It is safe for concurrent use; each request
// is an independent transaction and no per-request state is retained. The
// API key is never written to logs or error messages.
type Client struct {
	httpClient *http.Client
	config     ClientConfig
	userAgent  string
}

// NewClient creates a client with the given API key and default configuration.
func NewClient(apiKey string) (*Client, error) {
	return NewClientWithConfig(ClientConfig{APIKey: apiKey})
}

// NewClientWithConfig creates a client with full configuration.
func NewClientWithConfig(config ClientConfig) (*Client, error) {
	if config.APIKey == "" {
		return nil, &ValidationError{Message: "API key is required"}
	}
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	if config.TimeoutSeconds <= 0 {
		config.TimeoutSeconds = defaultTimeoutSeconds
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		config:    config,
		userAgent: userAgent,
	}, nil
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// Screenshot captures a screenshot of the page at options.URL. The result
// holds either the raw image bytes or, when the server stored the artifact,
// a StoredScreenshot descriptor. Invalid options fail with *ValidationError
// before any request is made; see *HTTPError and *APIError for the failure
// modes of the request itself.
func (c *Client) Screenshot(options ScreenshotOptions) (*ScreenshotResult, error) {
	if err := validateOptions(options); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(options)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, body, err := c.do(http.MethodPost, "/v1/screenshot", payload)
	if err != nil {
		return nil, err
	}

	// The response is a stored-screenshot descriptor when storage was
	// requested or the server says the body is JSON. Anything else is the
	// raw image.
	storeMode := options.Store != nil && *options.Store
	isJSON := strings.Contains(resp.Header.Get("Content-Type"), "application/json")

	if storeMode || isJSON {
		stored, err := decodeStoredScreenshot(body)
		if err != nil {
			return nil, err
		}
		return &ScreenshotResult{stored: stored}, nil
	}

	return &ScreenshotResult{bytes: body}, nil
}

// Usage returns API usage statistics for the current billing period.
func (c *Client) Usage() (*Usage, error) {
	_, body, err := c.do(http.MethodGet, "/v1/usage", nil)
	if err != nil {
		return nil, err
	}
	return decodeUsage(body)
}

func validateOptions(options ScreenshotOptions) error {
	if options.URL == "" {
		return &ValidationError{Message: "URL is required"}
	}
	if options.Quality != nil && (*options.Quality < 0 || *options.Quality > 100) {
		return &ValidationError{Message: "quality must be between 0 and 100"}
	}
	if options.Width != nil && *options.Width <= 0 {
		return &ValidationError{Message: "width must be positive"}
	}
	if options.Height != nil && *options.Height <= 0 {
		return &ValidationError{Message: "height must be positive"}
	}
	return nil
}

// do performs a single authenticated request and returns the response along
// with its fully buffered body. Statuses >= 400 are translated into
// *APIError or *HTTPError; a transport failure yields *HTTPError with
// status 0.
func (c *Client) do(method, path string, payload []byte) (*http.Response, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.config.BaseURL+path, reqBody)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("User-Agent", c.userAgent)
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.config.Logger != nil {
		c.config.Logger.Info(method, "endpoint", path)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.config.Logger != nil {
			c.config.Logger.Error("Request failed", "endpoint", path, "error", err)
		}
		return nil, nil, &HTTPError{StatusCode: 0, Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &HTTPError{StatusCode: 0, Message: fmt.Sprintf("failed to read response: %v", err)}
	}

	if c.config.Logger != nil {
		c.config.Logger.Debug("Response", "endpoint", path, "status", resp.StatusCode, "bytes", len(body))
	}

	if resp.StatusCode >= 400 {
		return nil, nil, classifyErrorResponse(resp.StatusCode, body)
	}

	return resp, body, nil
}

// classifyErrorResponse maps an HTTP error status to *APIError when the body
// carries the {code, message} envelope, falling back to *HTTPError.
func classifyErrorResponse(status int, body []byte) error {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &HTTPError{StatusCode: status, Message: fmt.Sprintf("HTTP %d", status)}
	}

	code := envelope.Code
	if code == "" {
		code = "unknown"
	}
	message := envelope.Message
	if message == "" {
		message = string(body)
	}
	return &APIError{Code: code, Message: message}
}
