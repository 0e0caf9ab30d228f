package unsplash

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/njprem/Travel_Diary_BackEnd/internal/repository/ports"
)

const DefaultBaseURL = "https://api.unsplash.com"

var (
	ErrMissingAccessKey = errors.New("unsplash: missing access key")
	ErrNoImage          = errors.New("unsplash: response has no usable image url")
)

var _ ports.ImageSearch = (*Client)(nil)

// Client calls the Unsplash random photo endpoint.
type Client struct {
	baseURL    string
	accessKey  string
	httpClient *http.Client
}

type Option func(*Client)

func WithBaseURL(base string) Option {
	return func(c *Client) {
		if strings.TrimSpace(base) != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func NewClient(accessKey string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	c := &Client{
		baseURL:    DefaultBaseURL,
		accessKey:  strings.TrimSpace(accessKey),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type randomPhotoResponse struct {
	URLs struct {
		Custom  string `json:"custom"`
		Regular string `json:"regular"`
	} `json:"urls"`
}

// RandomPhotoURL returns the "custom" url of a random landscape photo matching
// query, or the "regular" one when no custom rendition is present.
func (c *Client) RandomPhotoURL(ctx context.Context, query string) (string, error) {
	if c.accessKey == "" {
		return "", ErrMissingAccessKey
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("orientation", "landscape")
	params.Set("client_id", c.accessKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/photos/random?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create unsplash request: %w", err)
	}
	req.Header.Set("Accept-Version", "v1")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send unsplash request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("unsplash api error: %s - %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var payload randomPhotoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode unsplash response: %w", err)
	}

	if payload.URLs.Custom != "" {
		return payload.URLs.Custom, nil
	}
	if payload.URLs.Regular != "" {
		return payload.URLs.Regular, nil
	}
	return "", ErrNoImage
}
