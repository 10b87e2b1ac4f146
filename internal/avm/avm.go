// Package avm is a client for an automated-valuation-model provider: an
// external service that returns current market value estimates for
// residential addresses. The valuation refresh job uses it to keep the
// latest-valuation data current without manual entry.
package avm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client provides methods for fetching value estimates from the AVM
// provider. It wraps an HTTP client and carries the provider base URL and
// API token.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a new AVM client for the given provider base URL and
// API token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		token:      token,
	}
}

// GetEstimate fetches the current value estimate for one address and
// returns the point estimate with its as-of date. This is the shape the
// valuation refresh job consumes; callers needing the confidence band use
// QueryEstimate directly.
func (c *Client) GetEstimate(ctx context.Context, address, suburb, state string) (float64, time.Time, error) {
	response, err := c.QueryEstimate(ctx, address, suburb, state)
	if err != nil {
		return 0, time.Time{}, err
	}

	estimate, err := c.ParseEstimate(response)
	if err != nil {
		return 0, time.Time{}, err
	}

	return estimate.Value, estimate.AsOf, nil
}

// QueryEstimate executes the estimate request for one address.
//
// Returns an error if the HTTP request fails, the response cannot be
// parsed, or the provider reports an error.
func (c *Client) QueryEstimate(ctx context.Context, address, suburb, state string) (Response, error) {
	query := url.Values{}
	query.Set("address", address)
	query.Set("suburb", suburb)
	query.Set("state", state)

	endpoint := fmt.Sprintf("%s/v1/estimates?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Response{}, err
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}

	if resp.StatusCode != http.StatusOK {
		return Response{}, fmt.Errorf("avm provider returned status %d", resp.StatusCode)
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return Response{}, err
	}

	if response.Error != nil {
		return response, fmt.Errorf("avm error: %s", *response.Error)
	}

	return response, nil
}

// ParseEstimate converts a raw provider response into a structured
// Estimate. The provider may match several candidate addresses; the first
// result is the provider's best match and is the one used.
func (c *Client) ParseEstimate(response Response) (Estimate, error) {
	if len(response.Estimates) == 0 {
		return Estimate{}, fmt.Errorf("no estimates returned")
	}

	raw := response.Estimates[0]

	if raw.Estimate <= 0 {
		return Estimate{}, fmt.Errorf("provider returned non-positive estimate")
	}

	asOf, err := time.Parse("2006-01-02", raw.AsOf)
	if err != nil {
		return Estimate{}, fmt.Errorf("failed to parse as_of date: %w", err)
	}

	return Estimate{
		Address:        raw.Address,
		Suburb:         raw.Suburb,
		State:          raw.State,
		Value:          raw.Estimate,
		ConfidenceLow:  raw.ConfidenceLow,
		ConfidenceHigh: raw.ConfidenceHigh,
		AsOf:           asOf.UTC(),
	}, nil
}
