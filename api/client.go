// Package api implements the client for the remote Pixelarium commerce API.
// All endpoints share one JSON request core; responses outside the 2xx range
// become a domain.APIError carrying the HTTP status.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"pixelarium/domain"
)

// defaultBaseURL points at a locally running backend.
const defaultBaseURL = "http://localhost:8080/api"

// Client talks JSON over HTTP to the commerce API. It holds no session
// state; identity lives in the stores.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New constructs a Client. An empty baseURL falls back to the local
// development backend; nil httpClient and logger fall back to the defaults.
func New(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// roundTrip performs one API request and returns the raw response body on
// success. The body is fully read and the response closed before returning.
func (c *Client) roundTrip(ctx context.Context, method, endpoint string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("api request failed",
			slog.String("method", method),
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	// The error body is intentionally discarded: the contract is status
	// code plus status text only.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("api returned error status",
			slog.String("method", method),
			slog.String("endpoint", endpoint),
			slog.Int("http_status", resp.StatusCode),
		)
		return nil, domain.NewAPIError(resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	return respBody, nil
}

// request performs an API call and decodes the JSON response into T. The
// server is trusted: no schema validation beyond what encoding/json does.
func request[T any](ctx context.Context, c *Client, method, endpoint string, body any) (T, error) {
	var out T
	respBody, err := c.roundTrip(ctx, method, endpoint, body)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(respBody, &out); err != nil {
		return out, fmt.Errorf("decoding response: %w", err)
	}
	return out, nil
}

// requestNoContent performs an API call whose response body is ignored.
func requestNoContent(ctx context.Context, c *Client, method, endpoint string, body any) error {
	_, err := c.roundTrip(ctx, method, endpoint, body)
	return err
}
