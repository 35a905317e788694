// Package rest is the HTTP driver for the storefront backend. The backend is
// an opaque collaborator; this package knows its paths and payload shapes and
// nothing about domain semantics.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// Client wraps the storefront REST API. All requests go through the supplied
// HTTP client, which carries the authorized transport.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a new API client.
func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	if !isValidURL(baseURL) {
		return nil, fmt.Errorf("invalid API base URL: %s", baseURL)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}, nil
}

// StatusError is an error response from the backend, with the message pulled
// out of whichever envelope the endpoint used.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api responded %d: %s", e.StatusCode, e.Message)
}

// do issues a JSON request. A nil out discards the response body. Request
// bodies go out as bytes.Reader so the transport can replay them on a
// refresh retry.
func (c *Client) do(ctx context.Context, method, path string, header http.Header, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.errorFromResponse(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorFromResponse turns an error response into a StatusError. The backend
// answers with either {"success": false, "error": ...} or {"detail": ...}.
func (c *Client) errorFromResponse(resp *http.Response) error {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return &StatusError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	var envelope struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	message := http.StatusText(resp.StatusCode)
	if err := json.Unmarshal(data, &envelope); err == nil {
		switch {
		case envelope.Error != "":
			message = envelope.Error
		case envelope.Detail != "":
			message = envelope.Detail
		}
	}

	return &StatusError{StatusCode: resp.StatusCode, Message: message}
}

func isValidURL(raw string) bool {
	if raw == "" {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}
