// Package apiclient is the HTTP transport to the credit backend: JSON
// requests with per-call timeouts, a typed error taxonomy, and an
// authenticated variant that refreshes expired session tokens.
package apiclient

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

// RequestConfig carries per-call options for a transport request.
type RequestConfig struct {
	Headers map[string]string
	Params  map[string]string
	Timeout time.Duration
}

// Client performs JSON HTTP calls against a single base URL.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a transport rooted at baseURL. The default timeout
// applies when a call supplies no RequestConfig.Timeout.
func NewClient(baseURL string, defaultTimeout time.Duration) *Client {
	if defaultTimeout == 0 {
		defaultTimeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any, cfg *RequestConfig) error {
	return c.do(ctx, http.MethodGet, path, nil, out, cfg)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any, cfg *RequestConfig) error {
	return c.do(ctx, http.MethodPost, path, body, out, cfg)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any, cfg *RequestConfig) error {
	return c.do(ctx, http.MethodPut, path, body, out, cfg)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any, cfg *RequestConfig) error {
	return c.do(ctx, http.MethodDelete, path, nil, out, cfg)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, cfg *RequestConfig) error {
	if cfg != nil && cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	req, err := c.newRequest(ctx, method, path, body, cfg)
	if err != nil {
		return err
	}
	return c.send(req, out)
}

// newRequest builds the full request: base URL + path + query string,
// JSON defaults, and caller-supplied header overrides.
func (c *Client) newRequest(ctx context.Context, method, path string, body any, cfg *RequestConfig) (*http.Request, error) {
	fullURL := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if cfg != nil && len(cfg.Params) > 0 {
		q := url.Values{}
		for k, v := range cfg.Params {
			q.Set(k, v)
		}
		sep := "?"
		if strings.Contains(fullURL, "?") {
			sep = "&"
		}
		fullURL += sep + q.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if cfg != nil {
		for k, v := range cfg.Headers {
			req.Header.Set(k, v)
		}
	}
	return req, nil
}

// send executes the request and decodes the response. Non-2xx responses
// become typed errors; failures before any response arrives are Network
// errors. A 2xx with an empty body is only accepted when out is nil.
func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return NewNetworkError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewNetworkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return FromResponse(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if len(data) == 0 {
		return &Error{
			Kind:    KindUnknown,
			Status:  resp.StatusCode,
			Code:    "EMPTY_RESPONSE",
			Message: "server indicated success but returned no body",
		}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{
			Kind:    KindUnknown,
			Status:  resp.StatusCode,
			Code:    "DECODE_ERROR",
			Message: fmt.Sprintf("decoding response body: %v", err),
		}
	}
	return nil
}
