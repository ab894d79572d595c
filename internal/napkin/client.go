package napkin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ThoughtSender defines the interface for creating thoughts on Napkin.
// This interface is implemented by *Client and can be used for testing.
type ThoughtSender interface {
	CreateThought(ctx context.Context, req ThoughtRequest) (*ThoughtResponse, error)
}

// Ensure Client implements ThoughtSender at compile time.
var _ ThoughtSender = (*Client)(nil)

// Client talks to the Napkin HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultBaseURL   = "https://app.napkin.one"
	defaultUserAgent = "napt/0.1"
	createPath       = "/api/createThought"

	// DefaultTimeout bounds a single createThought round trip.
	DefaultTimeout = 30 * time.Second
)

// StatusError reports a non-2xx response. The Napkin API does not document
// its error body shape, so only the status code is carried.
type StatusError struct {
	Code int
	Path string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.Path, e.Code)
}

// NewClient builds a Client using the provided base URL. An empty baseURL
// selects the public Napkin endpoint; a zero timeout selects DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// CreateThought submits a single thought and returns the created record.
// Non-2xx responses are reported as *StatusError.
func (c *Client) CreateThought(ctx context.Context, req ThoughtRequest) (*ThoughtResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	reqURL := c.baseURL.ResolveReference(&url.URL{Path: createPath})
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused; the error body schema is
		// unconfirmed and is never parsed.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
		return nil, &StatusError{Code: resp.StatusCode, Path: createPath}
	}

	var payload ThoughtResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &payload, nil
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
