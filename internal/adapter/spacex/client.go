// Package spacex fetches launch resource collections from the SpaceX v4 REST
// API. Calls are single-attempt: a network or decode failure is returned to
// the caller, which treats it as fatal for the stage.
package spacex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/launch-data-pipeline/internal/domain"
)

// DefaultBaseURL is the public SpaceX v4 API root.
const DefaultBaseURL = "https://api.spacexdata.com/v4"

// Client is a read-only SpaceX API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a SpaceX API client with the given request timeout.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Launches fetches all launch records.
func (c *Client) Launches(ctx context.Context) ([]domain.Launch, error) {
	return getJSON[domain.Launch](ctx, c, "/launches")
}

// Rockets fetches the rocket lookup collection.
func (c *Client) Rockets(ctx context.Context) ([]domain.Rocket, error) {
	return getJSON[domain.Rocket](ctx, c, "/rockets")
}

// Payloads fetches the payload lookup collection.
func (c *Client) Payloads(ctx context.Context) ([]domain.Payload, error) {
	return getJSON[domain.Payload](ctx, c, "/payloads")
}

// Launchpads fetches the launchpad lookup collection.
func (c *Client) Launchpads(ctx context.Context) ([]domain.Launchpad, error) {
	return getJSON[domain.Launchpad](ctx, c, "/launchpads")
}

// FetchAll retrieves the four resource collections the join needs, in order.
// The first failure aborts the whole fetch.
func (c *Client) FetchAll(ctx context.Context) (domain.APIData, error) {
	var data domain.APIData
	var err error

	if data.Launches, err = c.Launches(ctx); err != nil {
		return domain.APIData{}, err
	}
	c.logger.Info("fetched launches", "count", len(data.Launches))

	if data.Rockets, err = c.Rockets(ctx); err != nil {
		return domain.APIData{}, err
	}
	c.logger.Info("fetched rockets", "count", len(data.Rockets))

	if data.Payloads, err = c.Payloads(ctx); err != nil {
		return domain.APIData{}, err
	}
	c.logger.Info("fetched payloads", "count", len(data.Payloads))

	if data.Launchpads, err = c.Launchpads(ctx); err != nil {
		return domain.APIData{}, err
	}
	c.logger.Info("fetched launchpads", "count", len(data.Launchpads))

	return data, nil
}

func getJSON[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("spacex API error: %s: status %d: %s", path, resp.StatusCode, body)
	}

	var out []T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", path, err)
	}
	return out, nil
}
