// Package client talks to the Travel Diary HTTP API.
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
	"time"

	"github.com/njprem/Travel_Diary_BackEnd/internal/domain"
)

// APIError is returned for any non-success response the client has no sentinel for.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type saveResponse struct {
	Success     bool                `json:"success"`
	Destination *domain.Destination `json:"destination"`
	Error       string              `json:"error"`
}

// ListUser fetches the stored user destinations.
func (c *Client) ListUser(ctx context.Context) ([]domain.Destination, error) {
	var out []domain.Destination
	if err := c.getJSON(ctx, "/api/destinations", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Catalog fetches the merged list the page renders.
func (c *Client) Catalog(ctx context.Context) ([]domain.Destination, error) {
	var out []domain.Destination
	if err := c.getJSON(ctx, "/api/catalog", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ImageURL(ctx context.Context, query string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	if err := c.getJSON(ctx, "/api/unsplash-image?query="+url.QueryEscape(query), &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// Create submits a destination. A duplicate (name, country) yields domain.ErrDestinationExists.
func (c *Client) Create(ctx context.Context, input domain.DestinationInput) (*domain.Destination, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("encode destination: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/destinations", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	var payload saveResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &APIError{Status: resp.StatusCode, Message: "undecodable response"}
	}

	if resp.StatusCode == http.StatusOK && payload.Success && payload.Destination != nil {
		return payload.Destination, nil
	}
	if resp.StatusCode == http.StatusBadRequest && payload.Error == domain.MessageDestinationExists {
		return nil, domain.ErrDestinationExists
	}
	return nil, &APIError{Status: resp.StatusCode, Message: payload.Error}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
