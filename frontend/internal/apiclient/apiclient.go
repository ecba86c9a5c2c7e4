package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dondesang/dondesang/shared/api"
	internal_errors "github.com/dondesang/dondesang/shared/errors"
	"github.com/dondesang/dondesang/shared/logger"
	"github.com/dondesang/dondesang/shared/middleware"
	"github.com/dondesang/dondesang/shared/middleware/metrics"
	"github.com/dondesang/dondesang/shared/utils"
)

// ErrUnavailable is returned when the API could not be reached at all.
var ErrUnavailable = &internal_errors.ErrorWithStatusCode{
	Message:    "The server is unreachable. Please try again later.",
	StatusCode: http.StatusBadGateway,
}

// APIClient struct handles all communication with the donation API.
type APIClient struct {
	BaseURL    string
	HttpClient *http.Client
}

// New creates a new client for interacting with the API.
func New(baseURL string) *APIClient {
	return &APIClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HttpClient: &http.Client{},
	}
}

// do is the single, unified helper for making API requests. The request id of
// ctx is forwarded so both sides log the same id.
func (c *APIClient) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if id := middleware.RequestIDFromContext(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	start := time.Now()
	resp, err := c.HttpClient.Do(req)
	if err != nil {
		metrics.ObserveAPICall(method, path, 0, time.Since(start))
		logger.Log.Error("api request failed", "method", method, "path", path, "error", err)
		return nil, ErrUnavailable
	}
	metrics.ObserveAPICall(method, path, resp.StatusCode, time.Since(start))
	return resp, nil
}

// getJSON fetches path and decodes the body into out.
func (c *APIClient) getJSON(ctx context.Context, path string, out any, fallback string) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return responseError(resp, fallback)
	}
	return utils.Decode(resp.Body, out)
}

// postJSON sends in as JSON and decodes the answer into out.
func (c *APIClient) postJSON(ctx context.Context, path string, in, out any, fallback string) error {
	jsonBody, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, path, bytes.NewReader(jsonBody), "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return responseError(resp, fallback)
	}
	return utils.Decode(resp.Body, out)
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// responseError surfaces the detail of an API error body, or fallback when
// the body carries none.
func responseError(resp *http.Response, fallback string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	msg := fallback
	var e api.ErrorResponse
	if err := json.Unmarshal(body, &e); err == nil {
		if detail := detailMessage(e.Detail); detail != "" {
			msg = detail
		}
	}
	logger.Log.Debug("api returned error", "status", resp.StatusCode, "message", msg)
	return &internal_errors.ErrorWithStatusCode{Message: msg, StatusCode: resp.StatusCode}
}

// detailMessage flattens a detail field. Validation failures come as a list
// of {loc, msg, type} objects.
func detailMessage(detail any) string {
	switch d := detail.(type) {
	case string:
		return d
	case []any:
		var msgs []string
		for _, item := range d {
			if obj, ok := item.(map[string]any); ok {
				if m, ok := obj["msg"].(string); ok && m != "" {
					msgs = append(msgs, m)
				}
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
