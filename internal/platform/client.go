// Package platform is the connector to the shipment-bidding platform REST
// API. Every console read and mutation goes through the Client; callers pass
// the bearer token explicitly, the package keeps no ambient credential state.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client issues JSON requests against the platform admin API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the given API base URL, e.g.
// "http://localhost:5000/api".
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// envelope is the common {message, data} response shape. Endpoints that
// return fields at the top level are decoded from the raw body instead.
type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do executes one request and returns the status code and raw body. A bearer
// header is attached only when token is non-empty; unauthenticated calls go
// out bare and rely on backend rejection.
func (c *Client) do(ctx context.Context, method, path, token string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}

	return resp.StatusCode, raw, nil
}

// apiError converts a non-2xx body into an APIError, preferring the backend
// message over the fallback.
func apiError(status int, raw []byte, fallback string) error {
	var env envelope
	msg := fallback
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		msg = env.Message
	}
	return &APIError{Status: status, Message: msg}
}

func success(status int) bool {
	return status >= 200 && status < 300
}

// getList fetches an {message, data: []T} endpoint. A data field that is
// missing or not an array yields an empty slice, never an error.
func getList[T any](ctx context.Context, c *Client, token, path, fallback string) ([]T, error) {
	status, raw, err := c.do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, apiError(status, raw, fallback)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, decodeErr(err)
	}

	items := []T{}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &items); err != nil {
			return []T{}, nil
		}
	}
	return items, nil
}

// getObject fetches an {message, data: T} endpoint.
func getObject[T any](ctx context.Context, c *Client, token, path, fallback string) (T, error) {
	var zero T

	status, raw, err := c.do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return zero, err
	}
	if !success(status) {
		return zero, apiError(status, raw, fallback)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return zero, decodeErr(err)
	}
	if len(env.Data) == 0 {
		return zero, decodeErr(fmt.Errorf("missing data field"))
	}

	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return zero, decodeErr(err)
	}
	return out, nil
}

// postNoContent issues a mutation whose success carries no payload of
// interest.
func (c *Client) postNoContent(ctx context.Context, token, path string, body any, fallback string) error {
	status, raw, err := c.do(ctx, http.MethodPost, path, token, body)
	if err != nil {
		return err
	}
	if !success(status) {
		return apiError(status, raw, fallback)
	}
	return nil
}
