package pexels

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

type imageCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	ProductImageKey(productID string) string
}

type searcher interface {
	SearchImage(ctx context.Context, query string) (string, error)
}

// Resolver answers product image lookups from Redis before falling back to
// the Pexels API, caching whatever the API returns.
type Resolver struct {
	client searcher
	cache  imageCache
	ttl    time.Duration
}

func NewResolver(client *Client, cache imageCache, ttl time.Duration) (*Resolver, error) {
	if client == nil {
		return nil, errors.New("image resolver requires a pexels client")
	}
	if cache == nil {
		return nil, errors.New("image resolver requires a cache")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Resolver{client: client, cache: cache, ttl: ttl}, nil
}

// ResolveProductImage returns a cached image URL for the product, searching
// Pexels on a miss. Cache write failures are ignored; the URL still flows
// back to the caller.
func (r *Resolver) ResolveProductImage(ctx context.Context, productID, query string) (string, error) {
	key := r.cache.ProductImageKey(productID)

	cached, err := r.cache.Get(ctx, key)
	if err == nil && cached != "" {
		return cached, nil
	}
	if err != nil && !errors.Is(err, goredis.Nil) {
		return "", err
	}

	imageURL, err := r.client.SearchImage(ctx, query)
	if err != nil {
		return "", err
	}

	_ = r.cache.Set(ctx, key, imageURL, r.ttl)
	return imageURL, nil
}
