// Package client is a thin REST client for the Databricks Workspace and
// Unity Catalog APIs. It performs no parsing of notebook content; exported
// SOURCE text is handed to pkg/notebook by the caller.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

func New(host string, httpClient *http.Client) (*Client, error) {
	if !strings.Contains(host, "://") {
		host = "https://" + host
	}
	u, err := url.Parse(host)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid host %q", host)
	}
	if httpClient == nil {
		httpClient = NewHTTPClient(nil)
	}
	return &Client{baseURL: u, httpClient: httpClient}, nil
}

// APIError is a non-2xx response decoded from the standard Databricks
// error body.
type APIError struct {
	StatusCode int
	ErrorCode  string `json:"error_code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.ErrorCode != "" {
		return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
	}
	return fmt.Sprintf("unexpected response status %d", e.StatusCode)
}

func (c *Client) do(ctx context.Context, method, apiPath string, query url.Values, payload, result interface{}) error {
	u := *c.baseURL
	u.Path = apiPath
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "failed to marshal request body")
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "request to %s failed", apiPath)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		// The error body is best-effort; the status code alone is
		// enough to report a failure.
		_ = json.Unmarshal(data, apiErr)
		return apiErr
	}

	if result == nil {
		return nil
	}
	return errors.Wrap(json.Unmarshal(data, result), "failed to decode response body")
}
