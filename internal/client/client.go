// Package client provides an HTTP client for the portfolio backend.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/evcraddock/portfolio/internal/comment"
	"github.com/evcraddock/portfolio/internal/metrics"
)

// Client is an HTTP client for the portfolio backend.
type Client struct {
	baseURL    string
	cookie     string
	httpClient *http.Client
}

// New creates a new backend client. cookie is sent verbatim as the Cookie
// header when non-empty so the backend can see the visitor's session.
func New(baseURL, cookie string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		cookie:  cookie,
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(&timedTransport{next: http.DefaultTransport}),
		},
	}
}

// BaseURL returns the backend root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListComments returns at most limit comments in the order the backend sends them.
func (c *Client) ListComments(ctx context.Context, limit int) ([]*comment.Comment, error) {
	params := url.Values{"limit": {strconv.Itoa(limit)}}

	path := "/data?" + params.Encode()
	var comments []*comment.Comment
	if err := c.get(ctx, path, &comments); err != nil {
		return nil, err
	}
	for i, cm := range comments {
		if cm == nil {
			return nil, &ParseError{Path: path, Err: fmt.Errorf("comment %d is null", i)}
		}
	}
	return comments, nil
}

// DeleteAll asks the backend to delete every stored comment.
func (c *Client) DeleteAll(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/delete-data", nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	_, err = c.do(req, "/delete-data")
	return err
}

// LoginInfo returns the raw HTML fragment describing the visitor's login state.
func (c *Client) LoginInfo(ctx context.Context) (string, error) {
	return c.getText(ctx, "/login-info")
}

// Nickname returns the raw HTML fragment holding the nickname form.
func (c *Client) Nickname(ctx context.Context) (string, error) {
	return c.getText(ctx, "/nickname")
}

// Chart returns how many times each item was liked.
func (c *Client) Chart(ctx context.Context) (map[string]int64, error) {
	likes := make(map[string]int64)
	if err := c.get(ctx, "/chart", &likes); err != nil {
		return nil, err
	}
	return likes, nil
}

// get performs a GET request and decodes the JSON response into result.
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	body, err := c.do(req, path)
	if err != nil {
		return err
	}

	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return &ParseError{Path: path, Err: err}
	}
	return nil
}

// getText performs a GET request and returns the body as a string.
func (c *Client) getText(ctx context.Context, path string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	body, err := c.do(req, path)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// do executes an HTTP request with the session cookie and maps failures to
// NetworkError or StatusError.
func (c *Client) do(req *http.Request, path string) ([]byte, error) {
	if c.cookie != "" {
		req.Header.Set("Cookie", c.cookie)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Method: req.Method, Path: path, Err: err}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			slog.Warn("closing response body", "path", path, "err", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Method: req.Method, Path: path, Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		statusErr := &StatusError{Code: resp.StatusCode}
		if json.Unmarshal(respBody, &errResp) == nil {
			statusErr.Message = errResp.Error
		}
		return nil, statusErr
	}

	return respBody, nil
}

// timedTransport records backend latency per route.
type timedTransport struct {
	next http.RoundTripper
}

func (t *timedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)

	code := "error"
	if err == nil {
		code = strconv.Itoa(resp.StatusCode)
	}
	metrics.BackendRequestDuration.
		WithLabelValues(req.Method, req.URL.Path, code).
		Observe(time.Since(start).Seconds())

	return resp, err
}
