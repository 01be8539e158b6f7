package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"os-project/internal/requests"
	"os-project/internal/responses"
)

// Client talks to a running scheduler API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Simulate posts request to /api/v1/simulate.
func (c *Client) Simulate(ctx context.Context, request requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	var response responses.ScheduleResponse
	err := c.post(ctx, "/api/v1/simulate", request, &response)
	return response, err
}

// SimulateAll posts request to /api/v1/all and returns one response per
// policy name.
func (c *Client) SimulateAll(ctx context.Context, request requests.ScheduleRequest) (map[string]responses.ScheduleResponse, error) {
	var response map[string]responses.ScheduleResponse
	err := c.post(ctx, "/api/v1/all", request, &response)
	return response, err
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error == "" {
			apiErr.Error = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("%s returned %d: %s", path, resp.StatusCode, apiErr.Error)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
