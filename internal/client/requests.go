package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultTimeout = 30 * time.Second

// Client is the low-level request layer shared by the task client. It
// normalizes method, body, and headers, and raises on any response status
// outside [200, 400).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string) *Client {
	return NewClientWithHTTPClient(baseURL, &http.Client{Timeout: defaultTimeout})
}

// NewClientWithHTTPClient creates a client with a caller-supplied transport.
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// RequestError carries the status line and, best effort, the response body
// text of a failed request.
type RequestError struct {
	StatusCode int
	Status     string
	Body       string
}

// Error implements the error interface
func (e *RequestError) Error() string {
	message := fmt.Sprintf("%d %s", e.StatusCode, e.Status)
	if e.Body != "" {
		message += ": " + e.Body
	}
	return message
}

// do sends a single request. When a body is present it is JSON-serialized
// and a Content-Type header is injected; an absent body sends no payload.
func (c *Client) do(ctx context.Context, method string, path string, body interface{}, headers map[string]string) (*http.Response, error) {
	hasBody := body != nil

	var reader io.Reader
	if hasBody {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if err := assertOk(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp, nil
}

// assertOk returns an error when the response status indicates failure.
// Success and redirect codes both count as ok.
func assertOk(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 400 {
		return nil
	}

	reqErr := &RequestError{
		StatusCode: resp.StatusCode,
		Status:     statusText(resp),
	}
	// Body read errors are ignored; the status line alone is enough
	if text, err := io.ReadAll(resp.Body); err == nil {
		reqErr.Body = strings.TrimSpace(string(text))
	}
	return reqErr
}

func statusText(resp *http.Response) string {
	return strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
}

// Get sends a GET request to the given path.
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	return c.do(ctx, http.MethodGet, path, nil, nil)
}

// Post sends a POST request with a JSON body to the given path.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*http.Response, error) {
	return c.do(ctx, http.MethodPost, path, body, nil)
}

// Delete sends a DELETE request to the given path.
func (c *Client) Delete(ctx context.Context, path string) (*http.Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// No Put helper: the server mounts no update route yet.
