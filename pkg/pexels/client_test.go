package pexels

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestSearchImageRequest(t *testing.T) {
	respBody := `{"photos":[{"src":{"landscape":"https://images.pexels.com/photo-1.jpg","medium":"https://images.pexels.com/photo-1-med.jpg"}}]}`

	var capturedURL string
	var capturedAuth string
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		capturedURL = req.URL.String()
		capturedAuth = req.Header.Get("Authorization")
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(respBody)),
			Header:     http.Header{},
		}, nil
	})

	client := NewClient("test-key", time.Second,
		WithBaseURL("http://pexels.test/v1"),
		WithHTTPClient(&http.Client{Transport: rt}))

	got, err := client.SearchImage(context.Background(), "bamboo toothbrush")
	if err != nil {
		t.Fatalf("SearchImage returned error: %v", err)
	}
	if got != "https://images.pexels.com/photo-1.jpg" {
		t.Fatalf("unexpected image URL %q", got)
	}
	if !strings.Contains(capturedURL, "query=bamboo+toothbrush") {
		t.Fatalf("query not encoded in URL %q", capturedURL)
	}
	if capturedAuth != "test-key" {
		t.Fatalf("authorization header = %q", capturedAuth)
	}
}

func TestSearchImageEmptyResults(t *testing.T) {
	rt := roundTripFunc(func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"photos":[]}`)),
			Header:     http.Header{},
		}, nil
	})

	client := NewClient("test-key", time.Second, WithHTTPClient(&http.Client{Transport: rt}))
	got, err := client.SearchImage(context.Background(), "nothing matches this")
	if err != nil {
		t.Fatalf("SearchImage returned error: %v", err)
	}
	if got != PlaceholderImageURL {
		t.Fatalf("expected placeholder, got %q", got)
	}
}

func TestSearchImageWithoutAPIKey(t *testing.T) {
	called := false
	rt := roundTripFunc(func(*http.Request) (*http.Response, error) {
		called = true
		return nil, nil
	})

	client := NewClient("", time.Second, WithHTTPClient(&http.Client{Transport: rt}))
	got, err := client.SearchImage(context.Background(), "anything")
	if err != nil {
		t.Fatalf("SearchImage returned error: %v", err)
	}
	if got != PlaceholderImageURL {
		t.Fatalf("expected placeholder, got %q", got)
	}
	if called {
		t.Fatal("upstream must not be called without an API key")
	}
}

type memCache struct {
	data map[string]string
	sets int
}

func (m *memCache) Get(_ context.Context, key string) (string, error) {
	v, ok := m.data[key]
	if !ok {
		return "", goredis.Nil
	}
	return v, nil
}

func (m *memCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	m.data[key] = value.(string)
	m.sets++
	return nil
}

func (m *memCache) ProductImageKey(productID string) string {
	return "test:product_image:" + productID
}

func TestResolverCachesLookups(t *testing.T) {
	calls := 0
	rt := roundTripFunc(func(*http.Request) (*http.Response, error) {
		calls++
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"photos":[{"src":{"landscape":"https://images.pexels.com/solar.jpg"}}]}`)),
			Header:     http.Header{},
		}, nil
	})

	client := NewClient("test-key", time.Second, WithHTTPClient(&http.Client{Transport: rt}))
	cache := &memCache{data: map[string]string{}}
	resolver := &Resolver{client: client, cache: cache, ttl: time.Hour}

	for i := 0; i < 3; i++ {
		got, err := resolver.ResolveProductImage(context.Background(), "prod-1", "solar charger")
		if err != nil {
			t.Fatalf("ResolveProductImage returned error: %v", err)
		}
		if got != "https://images.pexels.com/solar.jpg" {
			t.Fatalf("unexpected image URL %q", got)
		}
	}

	if calls != 1 {
		t.Fatalf("upstream called %d times, want 1", calls)
	}
	if cache.sets != 1 {
		t.Fatalf("cache written %d times, want 1", cache.sets)
	}
}
