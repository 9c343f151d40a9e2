// Package pexels fetches product imagery from the Pexels photo search API.
// Results are cached in Redis per product so the upstream is hit at most once
// per product per TTL window.
package pexels

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	pkgerrors "github.com/Saksham10-11/GSD/pkg/errors"
)

const (
	defaultBaseURL             = "https://api.pexels.com/v1"
	responseBodyReadLimit int64 = 1024

	// PlaceholderImageURL is served when no API key is configured or the
	// search returns nothing. Storefronts always get a renderable image.
	PlaceholderImageURL = "https://placehold.co/600x400?text=eco+product"
)

// Client wraps the Pexels search API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the configured Pexels base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// NewClient builds a Pexels client. An empty API key is allowed; SearchImage
// then short-circuits to the placeholder so local setups work without a key.
func NewClient(apiKey string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	client := &Client{
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client
}

// SearchImage returns the URL of the first landscape photo matching the
// query, or the placeholder when the search comes up empty.
func (c *Client) SearchImage(ctx context.Context, query string) (string, error) {
	if c == nil {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "pexels client not configured")
	}
	if strings.TrimSpace(query) == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "image search query is required")
	}
	if c.apiKey == "" {
		return PlaceholderImageURL, nil
	}

	endpoint := fmt.Sprintf("%s/search?query=%s&per_page=1&orientation=landscape",
		strings.TrimRight(c.baseURL, "/"), url.QueryEscape(query))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build image search request")
	}
	httpReq.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute image search request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))), "image search failed")
	}

	var apiResp struct {
		Photos []struct {
			Src struct {
				Landscape string `json:"landscape"`
				Medium    string `json:"medium"`
			} `json:"src"`
		} `json:"photos"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode image search response")
	}

	if len(apiResp.Photos) == 0 {
		return PlaceholderImageURL, nil
	}
	if src := apiResp.Photos[0].Src.Landscape; src != "" {
		return src, nil
	}
	if src := apiResp.Photos[0].Src.Medium; src != "" {
		return src, nil
	}
	return PlaceholderImageURL, nil
}
