// Package api talks to the two external services the app depends on: the
// auth/product service and the open catalog service. Raw payloads are decoded
// into explicit structs at this boundary and transformed into domain records;
// no untyped data leaves the package.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// newHTTPClient returns an http.Client with the fixed request timeout all
// calls in this package share. There are no retries anywhere: every failure
// is surfaced (or absorbed by the caller's fallback) exactly once.
func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func doGet(ctx context.Context, c *http.Client, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return c.Do(req)
}

func decodeJSON(body io.Reader, out any) error {
	if err := json.NewDecoder(body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
